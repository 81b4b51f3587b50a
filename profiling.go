package main

import (
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"sync"
	"time"
)

// startDefaultPGORecording begins writing CPU profiles to the provided path.
func startDefaultPGORecording(path string) (func(), error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating profile %q: %w", path, err)
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		f.Close()
		return nil, fmt.Errorf("starting CPU profile: %w", err)
	}
	var once sync.Once
	stop := func() {
		once.Do(func() {
			pprof.StopCPUProfile()
			if err := f.Close(); err != nil {
				log.Printf("closing profile %q: %v", path, err)
				return
			}
			log.Printf("wrote %s", path)
		})
	}
	return stop, nil
}

// beginPGORecording hands control to the autopilot for d while a CPU profile
// is written to path. The profile stops when the autopilot expires or the
// game closes.
func (g *Game) beginPGORecording(path string, d time.Duration) error {
	stop, err := startDefaultPGORecording(path)
	if err != nil {
		return err
	}
	g.stopRecording = stop
	g.enableAutopilot(d)
	log.Printf("recording %s for %s", path, d)
	return nil
}
