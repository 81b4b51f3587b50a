package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	flag.Parse()

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g, err := newGame(*variantFlag, seed)
	if err != nil {
		log.Fatalf("Game setup failed: %v", err)
	}
	defer g.close()

	if *enableAudioFlag {
		if err := g.enableAudio(*musicFlag); err != nil {
			log.Printf("Audio disabled: %v", err)
		}
	}
	if *recordDefaultPGO {
		if err := g.beginPGORecording("default.pgo", pgoRecordDuration); err != nil {
			log.Printf("PGO recording failed: %v", err)
		}
	} else if *autopilotFlag {
		g.enableAutopilot(0)
	}

	scale := *scaleFlag
	if scale < 1 {
		scale = 1
	}
	ebiten.SetWindowSize(screenW*scale, screenH*scale)
	ebiten.SetWindowTitle("Portal Runner")
	ebiten.SetTPS(defaultTPS)
	if err := ebiten.RunGame(g); err != nil {
		log.Printf("ebiten: %v", err)
	}
}
