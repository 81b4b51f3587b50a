package main

// pattern is one entry of the weighted obstacle sequence. Offsets are
// relative to the generator cursor, which advances by stride afterwards.
type pattern struct {
	name   string
	weight int
	stride float64

	spikes []float64

	platform       bool
	platformMin    float64
	platformSpread float64
}

// pickPattern draws a pattern with probability proportional to its weight.
func (s *session) pickPattern(patterns []pattern) pattern {
	total := 0
	for _, p := range patterns {
		if p.weight > 0 {
			total += p.weight
		}
	}
	if total == 0 {
		return pattern{}
	}
	n := s.levelRand.Intn(total)
	for _, p := range patterns {
		if p.weight <= 0 {
			continue
		}
		if n < p.weight {
			return p
		}
		n -= p.weight
	}
	return patterns[len(patterns)-1]
}

// layCourse procedurally appends count patterns of cube obstacles starting
// at cursor.
func (s *session) layCourse(patterns []pattern, count int, cursor float64) {
	for i := 0; i < count; i++ {
		p := s.pickPattern(patterns)
		if p.platform {
			height := p.platformMin + s.levelRand.Float64()*p.platformSpread
			s.platforms = append(s.platforms, platform{
				x:      cursor,
				y:      groundY + height,
				height: platformThickness,
			})
		}
		for _, off := range p.spikes {
			s.spikes = append(s.spikes, spike{x: cursor + off, y: groundY + spikeLift})
		}
		cursor += p.stride
	}
}

// spawnHazards fills the plane pool for the variant's hazard kind.
func (s *session) spawnHazards() {
	hz := &s.tune.hazard
	for i := 0; i < hazardCount; i++ {
		x := hazardStartX + float64(i)*hazardSpacing
		switch hz.kind {
		case hazardBarriers:
			s.barriers = append(s.barriers, barrier{
				x:       x,
				gapY:    hz.gapYMin + s.levelRand.Float64()*hz.gapYSpread,
				gapSize: hz.gapSizeMin + s.levelRand.Float64()*hz.gapSizeSpread,
			})
		case hazardAsteroids:
			y := groundY + hz.liftMin + s.levelRand.Float64()*hz.liftSpread
			s.asteroids = append(s.asteroids, asteroid{
				x:    x,
				y:    y,
				size: hz.sizeMin + s.levelRand.Float64()*hz.sizeSpread,
			})
		}
	}
}

// clearCourse drops the cube pools.
func (s *session) clearCourse() {
	s.spikes = nil
	s.platforms = nil
}

// clearHazards drops the plane pools.
func (s *session) clearHazards() {
	s.barriers = nil
	s.asteroids = nil
}
