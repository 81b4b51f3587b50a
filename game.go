package main

import (
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// hud is the scoreboard the renderer reads from.
type hud struct {
	score    int
	final    int
	gameOver bool
}

func (h *hud) ShowScore(score int)    { h.score = score }
func (h *hud) ShowGameOver(final int) { h.final, h.gameOver = final, true }
func (h *hud) HideGameOver()          { h.gameOver = false }

// Game adapts a session to ebiten and owns the pieces around it: input,
// audio, the variant toggle and profiling.
type Game struct {
	variant string
	seed    int64
	session *session
	hud     hud

	keyboard *pointerInput
	pilot    *autopilot

	lastTickDuration time.Duration
	stopRecording    func()

	cues        *cueStream
	audioCtx    *audio.Context
	audioPlayer *audio.Player
}

// newGame constructs a Game running the named variant.
func newGame(variant string, seed int64) (*Game, error) {
	g := &Game{
		seed:     seed,
		keyboard: &pointerInput{},
	}
	if err := g.switchVariant(variant); err != nil {
		return nil, err
	}
	return g, nil
}

// enableAudio starts the cue player and, when musicPath is set, the music
// loop mixed under it.
func (g *Game) enableAudio(musicPath string) error {
	g.audioCtx = audio.NewContext(audioSampleRate)
	g.cues = newCueStream(g.seed)
	if musicPath != "" {
		samples, err := loadLoopSamples(audioSampleRate, musicPath)
		if err != nil {
			log.Printf("Music disabled: %v", err)
		} else {
			g.cues.SetMusic(newMusicLoop(samples))
		}
	}
	player, err := g.audioCtx.NewPlayer(g.cues)
	if err != nil {
		g.cues = nil
		return fmt.Errorf("creating audio player: %w", err)
	}
	g.audioPlayer = player
	g.audioPlayer.SetBufferSize(audioPlayerBufferLatency)
	g.audioPlayer.Play()
	g.session.cues = g.cues
	return nil
}

// switchVariant tears down the current session and starts the named variant
// from scratch.
func (g *Game) switchVariant(name string) error {
	t, err := tuningFor(name)
	if err != nil {
		return err
	}
	if g.session != nil {
		g.session.cleanup()
	}
	g.variant = name
	g.hud = hud{}
	var cues cueSink
	if g.cues != nil {
		cues = g.cues
	}
	g.session = newSession(t, g.seed, &g.hud, cues)
	g.session.init()
	log.Printf("variant: %s (seed %d)", name, g.seed)
	return nil
}

// enableAutopilot hands input to the autopilot, for d or until a key is
// pressed when d is zero.
func (g *Game) enableAutopilot(d time.Duration) {
	g.pilot = &autopilot{}
	if d > 0 {
		g.pilot.deadline = time.Now().Add(d)
	}
}

func (g *Game) disableAutopilot() {
	g.pilot = nil
	if g.stopRecording != nil {
		g.stopRecording()
		g.stopRecording = nil
	}
}

// Update samples input and advances the session by one tick.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		if err := g.switchVariant(otherVariant(g.variant)); err != nil {
			return err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.session.restart()
	}

	in := g.keyboard.Sample(g.session)
	if g.pilot != nil {
		switch {
		case g.pilot.expired(time.Now()):
			g.disableAutopilot()
		case g.pilot.deadline.IsZero() && in.Jump:
			g.disableAutopilot()
			in = controls{}
		default:
			in = g.pilot.Sample(g.session)
		}
	}
	g.step(in)
	return nil
}

// step runs one session tick. A jump after game over starts a new run, and
// the autopilot restarts on its own.
func (g *Game) step(in controls) {
	if g.session.phase == phaseGameOver && (in.Jump || g.pilot != nil) {
		g.session.restart()
		return
	}
	start := time.Now()
	g.session.tick(in)
	g.lastTickDuration = time.Since(start)
}

// close flushes any profile still being recorded.
func (g *Game) close() {
	if g.stopRecording != nil {
		g.stopRecording()
		g.stopRecording = nil
	}
	if g.audioPlayer != nil {
		if err := g.audioPlayer.Close(); err != nil {
			log.Printf("Audio player close failed: %v", err)
		}
	}
}
