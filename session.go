package main

import (
	"log"
	"math"
	"math/rand"
)

// phase is the lifecycle state of a session.
type phase uint8

const (
	phaseUninitialized phase = iota
	phaseRunning
	phaseGameOver
)

func (ph phase) String() string {
	switch ph {
	case phaseUninitialized:
		return "uninitialized"
	case phaseRunning:
		return "running"
	case phaseGameOver:
		return "game over"
	}
	return "unknown"
}

// cue names a moment the audio layer may want to sound.
type cue uint8

const (
	cueJump cue = iota
	cuePortal
	cueCrash
)

// scoreboard receives score and game-over updates for display.
type scoreboard interface {
	ShowScore(score int)
	ShowGameOver(final int)
	HideGameOver()
}

// cueSink receives gameplay cues.
type cueSink interface {
	Cue(c cue)
}

// controls is one tick's input snapshot. Jump is edge-triggered, Thrust is
// level-triggered.
type controls struct {
	Jump   bool
	Thrust bool
}

// session owns all simulation state for one variant. It is driven by a
// single goroutine, one tick per frame.
type session struct {
	tune tuning

	levelRand *rand.Rand
	fxRand    *rand.Rand

	board scoreboard
	cues  cueSink

	phase  phase
	player *player

	ground    []groundSegment
	spikes    []spike
	platforms []platform
	barriers  []barrier
	asteroids []asteroid
	portals   []portal
	particles []particle

	score float64
	speed float64
	ticks int
}

// newSession constructs an uninitialized session. Call init before ticking.
// The level generator and cosmetic effects draw from separate sources so the
// layout for a seed does not depend on how many particles were spawned.
func newSession(t tuning, seed int64, board scoreboard, cues cueSink) *session {
	s := &session{
		tune:      t,
		levelRand: rand.New(rand.NewSource(seed)),
		fxRand:    rand.New(rand.NewSource(seed + 1)),
		board:     board,
		cues:      cues,
	}
	s.reset()
	return s
}

// reset restores the scalar game state.
func (s *session) reset() {
	s.score = 0
	s.speed = s.tune.baseSpeed
	s.ticks = 0
}

// init builds the player, floor, opening course and first portal.
func (s *session) init() {
	s.player = newPlayer(formCube, playerStartX, groundY+playerRestOffset)
	s.layGround()
	s.layCourse(s.tune.opening, openingPatterns, openingCursorX)
	s.portals = append(s.portals, portal{x: firstPortalX, target: formPlane})
	s.phase = phaseRunning
	s.showScore()
}

// tick advances the simulation by one frame: input and physics, then the
// obstacle pass, then portals, then score.
func (s *session) tick(in controls) {
	switch s.phase {
	case phaseRunning:
	case phaseGameOver:
		s.updateParticles()
		return
	default:
		return
	}
	s.ticks++

	s.integrate(in)
	s.updateParticles()

	s.advanceObstacles()
	if s.phase != phaseRunning {
		return
	}
	s.updatePortals()
	s.accumulateScore()
}

// integrate applies input and gravity to the player for its current form.
func (s *session) integrate(in controls) {
	p := s.player
	switch p.form {
	case formCube:
		if in.Jump && jump(p, &s.tune) {
			s.burst(p.x, p.y-0.4, jumpBurst)
			s.cue(cueJump)
		}
		stepCube(p, &s.tune, s.platforms)
	case formPlane:
		stepPlane(p, &s.tune.plane, in.Thrust || in.Jump)
	}
}

func (s *session) accumulateScore() {
	s.score += s.tune.scorePerTick
	s.speed = s.tune.baseSpeed + s.score*s.tune.speedPerScore
	s.showScore()
}

// displayScore is the integer score shown to the player.
func (s *session) displayScore() int {
	return int(math.Floor(s.score))
}

func (s *session) showScore() {
	if s.board != nil {
		s.board.ShowScore(s.displayScore())
	}
}

func (s *session) cue(c cue) {
	if s.cues != nil {
		s.cues.Cue(c)
	}
}

// gameOver ends the run. Calls after the first are no-ops.
func (s *session) gameOver() {
	if s.phase != phaseRunning {
		return
	}
	s.phase = phaseGameOver
	s.burst(s.player.x, s.player.y, s.tune.crashBurst)
	s.cue(cueCrash)
	final := s.displayScore()
	log.Printf("game over: %s variant, %s form, score %d after %d ticks", s.tune.name, s.player.form, final, s.ticks)
	if s.board != nil {
		s.board.ShowGameOver(final)
	}
}

// restart tears everything down, resets the score and builds a new run.
func (s *session) restart() {
	s.cleanup()
	s.reset()
	if s.board != nil {
		s.board.HideGameOver()
	}
	s.init()
}

// cleanup releases every pool and the player without touching the score.
// The session must be re-initialized before it ticks again.
func (s *session) cleanup() {
	s.player = nil
	s.ground = nil
	s.clearCourse()
	s.clearHazards()
	s.portals = nil
	s.particles = nil
	s.phase = phaseUninitialized
}
