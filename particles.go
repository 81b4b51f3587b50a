package main

// particle is a short-lived cosmetic fleck from a jump, portal or crash.
type particle struct {
	x, y   float64
	vx, vy float64
	life   float64
}

// burst emits n particles at (x, y).
func (s *session) burst(x, y float64, n int) {
	for i := 0; i < n; i++ {
		s.particles = append(s.particles, particle{
			x:    x,
			y:    y,
			vx:   (s.fxRand.Float64() - 0.5) * s.tune.burstSpreadX,
			vy:   s.fxRand.Float64() * s.tune.burstLift,
			life: 1,
		})
	}
}

// updateParticles moves every particle and drops the expired ones in place.
func (s *session) updateParticles() {
	live := s.particles[:0]
	for _, pt := range s.particles {
		pt.x += pt.vx
		pt.y += pt.vy
		pt.vy -= particleGravity
		pt.life -= particleFade
		if pt.life > 0 {
			live = append(live, pt)
		}
	}
	s.particles = live
}
