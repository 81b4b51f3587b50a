package main

import "math"

const quarterTurn = math.Pi / 2

// jump launches a grounded cube. It reports whether the jump fired.
func jump(p *player, t *tuning) bool {
	if p.form != formCube || !p.grounded {
		return false
	}
	p.velocity = t.jumpVelocity
	p.grounded = false
	return true
}

// stepCube integrates one tick of cube motion. Ground and platform contact
// stop the fall; platforms only support a player dropping onto them.
func stepCube(p *player, t *tuning, platforms []platform) {
	p.velocity = clampFloat(p.velocity-t.gravity, -t.maxVelocity, t.maxVelocity)
	p.y += p.velocity

	p.grounded = false
	if floor := groundY + playerRestOffset; p.y <= floor {
		p.y = floor
		p.velocity = 0
		p.grounded = true
	}
	for i := range platforms {
		if platforms[i].catches(p) {
			p.y = platforms[i].y + platformLanding
			p.velocity = 0
			p.grounded = true
		}
	}

	if p.grounded {
		p.rotation = snapQuarterTurn(p.rotation)
	} else {
		p.rotation += t.spinPerTick
	}
}

// stepPlane integrates one tick of plane flight. Thrust is level-triggered:
// every tick it is held adds one impulse.
func stepPlane(p *player, pt *planeTuning, thrust bool) {
	if thrust {
		p.velocity += pt.thrust
	}
	p.velocity -= pt.gravity
	p.velocity *= pt.drag
	p.velocity = clampFloat(p.velocity, -pt.maxDown, pt.maxUp)

	p.y += p.velocity
	p.rotation = -p.velocity * pt.bank

	floor := groundY + pt.floorOffset
	p.grounded = false
	if p.y > pt.ceiling {
		p.y = pt.ceiling
		p.velocity = 0
	}
	if p.y <= floor {
		p.y = floor
		p.velocity = 0
		p.grounded = true
	}
}

// snapQuarterTurn rounds an angle to the nearest multiple of 90 degrees.
func snapQuarterTurn(angle float64) float64 {
	return math.Round(angle/quarterTurn) * quarterTurn
}

// clampFloat constrains v to lie within the inclusive [lo, hi] range.
func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
