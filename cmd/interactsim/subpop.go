package main

import (
	"math/rand"

	interaction "github.com/jgallowa07/SLiM"
)

// demoSubpop is a minimal Subpopulation with individuals scattered
// uniformly over a square/cube domain, female-then-male as the engine
// requires.
type demoSubpop struct {
	id         int
	domainSize float64
	x, y, z    []float64
	firstMale  int
}

func newDemoSubpop(id int, conf *Config, rng *rand.Rand) *demoSubpop {
	n := conf.SubpopSize
	s := &demoSubpop{
		id:         id,
		domainSize: conf.DomainSize,
		x:          make([]float64, n),
		y:          make([]float64, n),
		z:          make([]float64, n),
		firstMale:  n / 2,
	}
	for i := 0; i < n; i++ {
		s.x[i] = rng.Float64() * conf.DomainSize
		s.y[i] = rng.Float64() * conf.DomainSize
		s.z[i] = rng.Float64() * conf.DomainSize
	}
	return s
}

func (s *demoSubpop) ID() int   { return s.id }
func (s *demoSubpop) Size() int { return len(s.x) }

func (s *demoSubpop) FirstMaleIndex() int { return s.firstMale }

func (s *demoSubpop) Bounds() (x1, y1, z1 float64) {
	return s.domainSize, s.domainSize, s.domainSize
}

func (s *demoSubpop) Position(index int) (x, y, z float64) {
	return s.x[index], s.y[index], s.z[index]
}

func (s *demoSubpop) SexOf(index int) interaction.Sex {
	if index < s.firstMale {
		return interaction.SexFemale
	}
	return interaction.SexMale
}
