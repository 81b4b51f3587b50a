package main

import (
	"math"
	"reflect"
	"testing"
)

type recordingBoard struct {
	scores []int
	finals []int
	hides  int
}

func (b *recordingBoard) ShowScore(score int)    { b.scores = append(b.scores, score) }
func (b *recordingBoard) ShowGameOver(final int) { b.finals = append(b.finals, final) }
func (b *recordingBoard) HideGameOver()          { b.hides++ }

type recordingCues struct {
	got []cue
}

func (r *recordingCues) Cue(c cue) { r.got = append(r.got, c) }

func (r *recordingCues) count(c cue) int {
	n := 0
	for _, g := range r.got {
		if g == c {
			n++
		}
	}
	return n
}

func newTestSession(t *testing.T, tn tuning) (*session, *recordingBoard, *recordingCues) {
	t.Helper()
	board := &recordingBoard{}
	cues := &recordingCues{}
	s := newSession(tn, 42, board, cues)
	s.init()
	return s, board, cues
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func onlyPattern(tn tuning, p pattern) tuning {
	tn.opening = []pattern{p}
	tn.refill = []pattern{p}
	return tn
}

func TestNewSessionIsUninitialized(t *testing.T) {
	s := newSession(prototypeTuning, 1, nil, nil)
	s.tick(controls{Jump: true})

	if s.phase != phaseUninitialized {
		t.Errorf("phase = %v, want %v", s.phase, phaseUninitialized)
	}
	if s.ticks != 0 || s.score != 0 {
		t.Errorf("uninitialized tick advanced state: ticks=%d score=%v", s.ticks, s.score)
	}
}

func TestInitBuildsOpeningCourse(t *testing.T) {
	for _, tn := range []tuning{prototypeTuning, fullTuning} {
		t.Run(tn.name, func(t *testing.T) {
			s, board, _ := newTestSession(t, tn)

			if s.phase != phaseRunning {
				t.Fatalf("phase = %v, want running", s.phase)
			}
			p := s.player
			if p.form != formCube || p.x != playerStartX || p.y != groundY+playerRestOffset {
				t.Errorf("player = %+v, want cube at (%v, %v)", *p, playerStartX, groundY+playerRestOffset)
			}
			if len(s.ground) != groundSegments {
				t.Errorf("ground segments = %d, want %d", len(s.ground), groundSegments)
			}
			if len(s.spikes)+len(s.platforms) == 0 {
				t.Error("opening course is empty")
			}
			if len(s.barriers) != 0 || len(s.asteroids) != 0 {
				t.Errorf("plane pools populated in cube form: %d barriers, %d asteroids", len(s.barriers), len(s.asteroids))
			}
			want := []portal{{x: firstPortalX, target: formPlane}}
			if !reflect.DeepEqual(s.portals, want) {
				t.Errorf("portals = %+v, want %+v", s.portals, want)
			}
			if s.score != 0 || s.speed != tn.baseSpeed {
				t.Errorf("score=%v speed=%v, want 0 and %v", s.score, s.speed, tn.baseSpeed)
			}
			if !reflect.DeepEqual(board.scores, []int{0}) {
				t.Errorf("scoreboard saw %v, want [0]", board.scores)
			}
		})
	}
}

func TestScoreDrivesSpeed(t *testing.T) {
	s, board, _ := newTestSession(t, prototypeTuning)
	s.clearCourse()

	for i := 0; i < 10; i++ {
		s.tick(controls{})
	}

	if !approx(s.score, 2.0) {
		t.Errorf("score = %v, want 2.0", s.score)
	}
	if want := prototypeTuning.baseSpeed + s.score*prototypeTuning.speedPerScore; s.speed != want {
		t.Errorf("speed = %v, want %v", s.speed, want)
	}
	if last := board.scores[len(board.scores)-1]; last != int(math.Floor(s.score)) {
		t.Errorf("displayed score = %d, want floor(%v)", last, s.score)
	}
	for i := 1; i < len(board.scores); i++ {
		if board.scores[i] < board.scores[i-1] {
			t.Fatalf("score went backwards: %v", board.scores)
		}
	}
}

func TestFirstSpikeEndsRun(t *testing.T) {
	for _, base := range []tuning{prototypeTuning, fullTuning} {
		t.Run(base.name, func(t *testing.T) {
			tn := onlyPattern(base, pattern{name: "spike", weight: 1, stride: 4, spikes: []float64{0}})
			s, board, cues := newTestSession(t, tn)

			for i := 0; i < 200 && s.phase == phaseRunning; i++ {
				s.tick(controls{})
			}

			if s.phase != phaseGameOver {
				t.Fatalf("phase = %v after 200 idle ticks, want game over", s.phase)
			}
			if dx := math.Abs(s.spikes[0].x - s.player.x); dx >= spikeHitX {
				t.Errorf("first spike is %v away from the player, want < %v", dx, spikeHitX)
			}
			if !reflect.DeepEqual(board.finals, []int{s.displayScore()}) {
				t.Errorf("final scores = %v, want [%d]", board.finals, s.displayScore())
			}
			if n := cues.count(cueCrash); n != 1 {
				t.Errorf("crash cues = %d, want 1", n)
			}

			score, y, ticks := s.score, s.player.y, s.ticks
			for i := 0; i < 10; i++ {
				s.tick(controls{Jump: true})
			}
			if s.score != score || s.player.y != y || s.ticks != ticks {
				t.Errorf("ticks after game over changed state: score %v->%v y %v->%v", score, s.score, y, s.player.y)
			}
		})
	}
}

func TestPlatformsAreNotLethal(t *testing.T) {
	tn := onlyPattern(prototypeTuning, pattern{name: "low platform", weight: 1, stride: 5, platform: true, platformMin: 0.5, platformSpread: 1.5})
	s, _, _ := newTestSession(t, tn)

	for i := 0; i < 200; i++ {
		s.tick(controls{})
		if s.phase != phaseRunning {
			t.Fatalf("run ended on tick %d with only platforms on the course", i)
		}
	}
}

func TestGameOverIsIdempotent(t *testing.T) {
	s, board, cues := newTestSession(t, fullTuning)

	s.gameOver()
	s.gameOver()

	if len(board.finals) != 1 {
		t.Errorf("ShowGameOver called %d times, want 1", len(board.finals))
	}
	if n := cues.count(cueCrash); n != 1 {
		t.Errorf("crash cues = %d, want 1", n)
	}
	if len(s.particles) != fullTuning.crashBurst {
		t.Errorf("particles = %d, want one burst of %d", len(s.particles), fullTuning.crashBurst)
	}
}

func TestRestartResetsState(t *testing.T) {
	s, board, _ := newTestSession(t, prototypeTuning)
	s.clearCourse()
	for i := 0; i < 20; i++ {
		s.tick(controls{})
	}
	s.transform(formPlane)
	s.gameOver()

	s.restart()

	if s.phase != phaseRunning {
		t.Errorf("phase = %v, want running", s.phase)
	}
	if s.score != 0 || s.ticks != 0 || s.speed != prototypeTuning.baseSpeed {
		t.Errorf("score=%v ticks=%d speed=%v, want reset", s.score, s.ticks, s.speed)
	}
	if s.player.form != formCube || s.player.x != playerStartX {
		t.Errorf("player = %+v, want a fresh cube", *s.player)
	}
	if len(s.barriers) != 0 || len(s.ground) != groundSegments || len(s.portals) != 1 {
		t.Errorf("pools after restart: %d barriers, %d ground, %d portals", len(s.barriers), len(s.ground), len(s.portals))
	}
	if len(s.particles) != 0 {
		t.Errorf("particles survived restart: %d", len(s.particles))
	}
	if board.hides != 1 {
		t.Errorf("HideGameOver called %d times, want 1", board.hides)
	}
}

func TestCleanupTearsDownWithoutReset(t *testing.T) {
	s, _, _ := newTestSession(t, fullTuning)
	s.clearCourse()
	for i := 0; i < 5; i++ {
		s.tick(controls{})
	}
	score := s.score

	s.cleanup()

	if s.player != nil {
		t.Error("player survived cleanup")
	}
	if n := len(s.ground) + len(s.spikes) + len(s.platforms) + len(s.barriers) + len(s.asteroids) + len(s.portals) + len(s.particles); n != 0 {
		t.Errorf("%d entities survived cleanup", n)
	}
	if s.phase != phaseUninitialized {
		t.Errorf("phase = %v, want uninitialized", s.phase)
	}
	if s.score != score {
		t.Errorf("cleanup reset score %v -> %v", score, s.score)
	}

	s.tick(controls{})
	if s.score != score {
		t.Error("tick after cleanup advanced the score")
	}
}

func TestSameSeedSameLayout(t *testing.T) {
	for _, tn := range []tuning{prototypeTuning, fullTuning} {
		a := newSession(tn, 99, nil, nil)
		b := newSession(tn, 99, nil, nil)
		a.init()
		b.init()
		a.burst(0, 0, 50)

		if !reflect.DeepEqual(a.spikes, b.spikes) || !reflect.DeepEqual(a.platforms, b.platforms) {
			t.Errorf("%s: same seed produced different courses", tn.name)
		}
		a.transform(formPlane)
		b.transform(formPlane)
		if !reflect.DeepEqual(a.barriers, b.barriers) || !reflect.DeepEqual(a.asteroids, b.asteroids) {
			t.Errorf("%s: same seed produced different hazards", tn.name)
		}
	}
}

func TestJumpEmitsBurstAndCue(t *testing.T) {
	s, _, cues := newTestSession(t, prototypeTuning)
	s.clearCourse()

	s.tick(controls{})
	if !s.player.grounded {
		t.Fatal("player not grounded after the first tick")
	}
	s.tick(controls{Jump: true})

	if s.player.velocity <= 0 {
		t.Errorf("velocity = %v after jump, want > 0", s.player.velocity)
	}
	if len(s.particles) != jumpBurst {
		t.Errorf("particles = %d, want %d", len(s.particles), jumpBurst)
	}
	if n := cues.count(cueJump); n != 1 {
		t.Errorf("jump cues = %d, want 1", n)
	}

	// Holding the key in the air does nothing.
	s.tick(controls{Jump: true})
	if n := cues.count(cueJump); n != 1 {
		t.Errorf("jump cues = %d after an airborne press, want 1", n)
	}
}

func TestParticlesExpire(t *testing.T) {
	s := newSession(fullTuning, 3, nil, nil)
	s.burst(0, 0, 10)

	for i := 0; i < 10; i++ {
		s.updateParticles()
	}
	if len(s.particles) != 10 {
		t.Fatalf("particles = %d after 10 ticks, want 10", len(s.particles))
	}
	for i := 0; i < 50; i++ {
		s.updateParticles()
	}
	if len(s.particles) != 0 {
		t.Errorf("particles = %d after 60 ticks, want 0", len(s.particles))
	}
}
