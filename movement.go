package main

import (
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// inputSource produces one controls snapshot per tick. The session is passed
// read-only so scripted sources can look at the course.
type inputSource interface {
	Sample(view *session) controls
}

var (
	_ inputSource = (*pointerInput)(nil)
	_ inputSource = (*autopilot)(nil)
)

var jumpKeys = []ebiten.Key{ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW}

// pointerInput reads the keyboard, touches and the left mouse button. A new
// touch or click raises the one-shot mobile jump flag, which is consumed by
// the next Sample.
type pointerInput struct {
	touchIDs   []ebiten.TouchID
	mobileJump bool
}

func (in *pointerInput) Sample(_ *session) controls {
	var c controls
	for _, k := range jumpKeys {
		if inpututil.IsKeyJustPressed(k) {
			c.Jump = true
		}
		if ebiten.IsKeyPressed(k) {
			c.Thrust = true
		}
	}

	in.touchIDs = inpututil.AppendJustPressedTouchIDs(in.touchIDs[:0])
	if len(in.touchIDs) > 0 || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		in.mobileJump = true
	}
	if in.mobileJump {
		c.Jump = true
		c.Thrust = true
		in.mobileJump = false
	}

	in.touchIDs = ebiten.AppendTouchIDs(in.touchIDs[:0])
	if len(in.touchIDs) > 0 || ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		c.Thrust = true
	}
	return c
}

// autopilot plays the game on its own. It is used to record PGO profiles and
// for the -autopilot demo.
type autopilot struct {
	deadline time.Time
}

// expired reports whether a time-limited autopilot has run out.
func (a *autopilot) expired(now time.Time) bool {
	return !a.deadline.IsZero() && now.After(a.deadline)
}

func (a *autopilot) Sample(view *session) controls {
	if view == nil || view.player == nil {
		return controls{}
	}
	p := view.player
	switch p.form {
	case formCube:
		return controls{Jump: a.spikeAhead(view)}
	case formPlane:
		return controls{Thrust: p.y < a.flightTarget(view)}
	}
	return controls{}
}

// spikeAhead reports whether a spike will reach the player within the jump
// lead time at the current speed.
func (a *autopilot) spikeAhead(view *session) bool {
	p := view.player
	lead := float64(autopilotJumpLead) * view.speed
	for _, sp := range view.spikes {
		if ahead := sp.x - p.x; ahead > 0 && ahead < lead {
			return true
		}
	}
	return false
}

// flightTarget picks the height the plane should hold to clear the next
// hazard in front of it.
func (a *autopilot) flightTarget(view *session) float64 {
	p := view.player
	target := autopilotCruiseY
	nearest := math.Inf(1)
	for _, b := range view.barriers {
		if ahead := b.x - p.x; ahead > -barrierHitX && ahead < nearest {
			nearest = ahead
			target = b.gapY
		}
	}
	for _, as := range view.asteroids {
		ahead := as.x - p.x
		if ahead <= -(as.size+asteroidHitPad) || ahead >= nearest {
			continue
		}
		nearest = ahead
		clearance := as.size + asteroidHitPad + planeHitRadius
		above := as.y + clearance
		if above < view.tune.plane.ceiling {
			target = above
		} else {
			target = as.y - clearance
		}
	}
	return target
}
