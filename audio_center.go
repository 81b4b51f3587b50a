package main

import (
	"math"
	"math/rand"
	"sync"
)

// voice is one decaying tone or noise burst.
type voice struct {
	freq      float64
	sweep     float64 // Hz per second
	phase     float64
	amp       float64
	decay     float64 // per-sample amplitude multiplier
	noise     bool
	remaining int
}

// cueVoices maps gameplay cues to their sound.
var cueVoices = map[cue]voice{
	cueJump:   {freq: 520, sweep: 900, amp: 0.35, decay: 0.99985, remaining: audioSampleRate / 8},
	cuePortal: {freq: 330, sweep: 1100, amp: 0.4, decay: 0.99995, remaining: audioSampleRate * 2 / 5},
	cueCrash:  {amp: 0.6, decay: 0.99990, noise: true, remaining: audioSampleRate / 2},
}

// cueStream is an endless 16-bit stereo PCM stream for ebiten's audio player.
// Cues arrive from the game loop while Read runs on the audio goroutine.
type cueStream struct {
	mu     sync.Mutex
	voices []voice
	music  *musicLoop
	noise  *rand.Rand
}

func newCueStream(seed int64) *cueStream {
	return &cueStream{noise: rand.New(rand.NewSource(seed))}
}

// Cue starts the sound for c.
func (s *cueStream) Cue(c cue) {
	v, ok := cueVoices[c]
	if !ok {
		return
	}
	s.mu.Lock()
	s.voices = append(s.voices, v)
	s.mu.Unlock()
}

// SetMusic installs a background loop mixed under the cues.
func (s *cueStream) SetMusic(m *musicLoop) {
	s.mu.Lock()
	s.music = m
	s.mu.Unlock()
}

func (s *cueStream) Read(p []byte) (int, error) {
	// Whole stereo frames only (4 bytes per frame).
	frameBytes := len(p) - len(p)%4
	if frameBytes == 0 {
		return 0, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := 0; i < frameBytes; i += 4 {
		v := int16(clampFloat(s.nextSample(), -1, 1) * 32767)
		p[i] = byte(v)
		p[i+1] = byte(v >> 8)
		p[i+2] = p[i]
		p[i+3] = p[i+1]
	}
	return frameBytes, nil
}

func (s *cueStream) Close() error {
	return nil
}

// nextSample mixes one mono sample and retires finished voices. Callers hold
// s.mu.
func (s *cueStream) nextSample() float64 {
	var sum float64
	if s.music != nil {
		sum += float64(s.music.next()) * musicGain
	}
	live := s.voices[:0]
	for _, v := range s.voices {
		if v.noise {
			sum += (s.noise.Float64()*2 - 1) * v.amp
		} else {
			sum += math.Sin(v.phase) * v.amp
			v.phase += 2 * math.Pi * v.freq / audioSampleRate
			v.freq += v.sweep / audioSampleRate
		}
		v.amp *= v.decay
		v.remaining--
		if v.remaining > 0 {
			live = append(live, v)
		}
	}
	s.voices = live
	return sum
}

// active reports the number of voices still sounding.
func (s *cueStream) active() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.voices)
}
