package main

import "math"

// groundSegment is one tile of the scrolling floor.
type groundSegment struct {
	x float64
}

// spike is a lethal ground hazard in cube form.
type spike struct {
	x, y float64
}

// hits uses an axis-aligned box; both bounds are exclusive.
func (s spike) hits(p *player) bool {
	return math.Abs(p.x-s.x) < spikeHitX && math.Abs(p.y-s.y) < spikeHitY
}

// platform is a supportive ledge in cube form. It never kills.
type platform struct {
	x, y   float64
	height float64
}

// catches reports whether a falling player should land on top of pl.
func (pl platform) catches(p *player) bool {
	if p.velocity >= 0 {
		return false
	}
	dy := p.y - pl.y
	return math.Abs(p.x-pl.x) < platformCatchX && dy > 0 && dy < platformCatchY
}

// barrier is a pipe pair with an open gap, the prototype plane hazard.
type barrier struct {
	x       float64
	gapY    float64
	gapSize float64
}

func (b barrier) gapTop() float64    { return b.gapY + b.gapSize/2 }
func (b barrier) gapBottom() float64 { return b.gapY - b.gapSize/2 }

// hits reports whether the plane's vertical extent leaves the gap while it
// is level with the pipes.
func (b barrier) hits(p *player) bool {
	if math.Abs(p.x-b.x) >= barrierHitX {
		return false
	}
	return p.y+planeHitRadius > b.gapTop() || p.y-planeHitRadius < b.gapBottom()
}

// asteroid is a drifting rock, the full-variant plane hazard.
type asteroid struct {
	x, y float64
	size float64
}

func (a asteroid) hits(p *player) bool {
	dx := p.x - a.x
	dy := p.y - a.y
	return math.Sqrt(dx*dx+dy*dy) < a.size+asteroidHitPad
}

// layGround creates the floor tiles at their starting offsets.
func (s *session) layGround() {
	s.ground = make([]groundSegment, groundSegments)
	for i := range s.ground {
		s.ground[i].x = float64(i)*groundSpacing + groundStartX
	}
}

// advanceObstacles scrolls every pool by the current speed, recycles what
// left the screen and runs the collision tests of the active form. It stops
// at the first lethal hit.
func (s *session) advanceObstacles() {
	speed := s.speed
	for i := range s.ground {
		g := &s.ground[i]
		g.x -= speed
		if g.x < recycleX {
			g.x += groundWrap
		}
	}

	for i := range s.platforms {
		pl := &s.platforms[i]
		pl.x -= speed
		if pl.x < recycleX {
			pl.x = platformRespawnX
			pl.y = groundY + platformRespawnLo + s.levelRand.Float64()*platformRespawnHi
		}
	}

	for i := range s.spikes {
		sp := &s.spikes[i]
		sp.x -= speed
		if sp.x < recycleX {
			sp.x = spikeRespawnX
		}
		if sp.hits(s.player) {
			s.gameOver()
			return
		}
	}

	hz := &s.tune.hazard
	for i := range s.barriers {
		b := &s.barriers[i]
		b.x -= speed
		if b.x < recycleX {
			b.x = hz.respawnX
			b.gapY = hz.respawnGapYMin + s.levelRand.Float64()*hz.respawnGapYSpread
			b.gapSize = hz.respawnGapSizeMin + s.levelRand.Float64()*hz.respawnGapSizeSpread
		}
		if b.hits(s.player) {
			s.gameOver()
			return
		}
	}

	for i := range s.asteroids {
		a := &s.asteroids[i]
		a.x -= speed
		if a.x < recycleX {
			a.x = hz.respawnX
			a.y = groundY + hz.liftMin + s.levelRand.Float64()*hz.liftSpread
		}
		if a.hits(s.player) {
			s.gameOver()
			return
		}
	}
}
