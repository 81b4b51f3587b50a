package main

import (
	"log"
	"math"
)

// portal swaps the player's form when crossed. activated latches on first
// contact and is only cleared when the portal respawns off-screen, so one
// crossing fires at most one transition.
type portal struct {
	x         float64
	target    form
	activated bool
}

func (pt *portal) reached(p *player) bool {
	return !pt.activated && math.Abs(p.x-pt.x) < portalRadius
}

// recycle respawns a portal that scrolled past the left edge with its target
// flipped and its latch cleared.
func (pt *portal) recycle() bool {
	if pt.x >= recycleX {
		return false
	}
	pt.x = portalRespawnX
	pt.target = pt.target.other()
	pt.activated = false
	return true
}

// updatePortals scrolls the portals and fires transitions.
func (s *session) updatePortals() {
	for i := range s.portals {
		pt := &s.portals[i]
		pt.x -= s.speed
		if pt.reached(s.player) {
			pt.activated = true
			if pt.target != s.player.form {
				s.transform(pt.target)
			}
		}
		pt.recycle()
	}
}

// transform rebuilds the player in the target form at the same position and
// swaps the obstacle pools over to the incoming form.
func (s *session) transform(to form) {
	prev := s.player
	s.player = newPlayer(to, prev.x, prev.y)

	switch to {
	case formPlane:
		s.clearCourse()
		s.spawnHazards()
	case formCube:
		s.clearHazards()
		s.layCourse(s.tune.refill, refillPatterns, refillCursorX)
	}

	s.burst(s.player.x, s.player.y, transitionBurst)
	s.cue(cuePortal)
	log.Printf("portal: %s -> %s at score %d", prev.form, to, s.displayScore())
}
