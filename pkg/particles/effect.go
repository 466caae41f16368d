package particles

import "github.com/gonewx/sparks/pkg/pmath"

// Effect is a named group of emitters ticked and positioned together. Layered
// effects (smoke plus embers plus flash) are authored as one effect with one
// emitter per layer.
type Effect struct {
	Name     string
	Emitters []*Emitter
}

// SetPosition moves the whole effect by setting every child emitter's world
// position to p. Per-emitter placement differences are authored into each
// emitter's emission profile.
func (e *Effect) SetPosition(p pmath.Vec2) {
	for _, em := range e.Emitters {
		em.Position = p
	}
}

// Tick advances every child emitter by elapsed seconds, in declaration
// order.
func (e *Effect) Tick(elapsed float64) {
	for _, em := range e.Emitters {
		em.Tick(elapsed)
	}
}

// Burst releases count particles from every child emitter.
func (e *Effect) Burst(count int) {
	for _, em := range e.Emitters {
		em.Burst(count)
	}
}

// Count returns the total number of live particles across all emitters.
func (e *Effect) Count() int {
	total := 0
	for _, em := range e.Emitters {
		total += em.Count()
	}
	return total
}

// Each visits every live particle of every emitter. The underlying views
// are only valid until the next Tick or Burst.
func (e *Effect) Each(fn func(p *Particle)) {
	for _, em := range e.Emitters {
		em.Each(fn)
	}
}
