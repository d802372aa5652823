package services

import (
	"fmt"
	"math/rand/v2"
	"sync"
	"time"
)

const firstPickupCounter = 1000

// PickupCodeGenerator issues pickup codes of the form
// "PK" + (unix seconds mod 10000) + counter. The counter starts at 1000 on
// every process start, so codes are not guaranteed unique across restarts.
type PickupCodeGenerator struct {
	mu      sync.Mutex
	counter int
}

func NewPickupCodeGenerator() *PickupCodeGenerator {
	return &PickupCodeGenerator{counter: firstPickupCounter}
}

// Next returns a code for an intake happening at now.
func (g *PickupCodeGenerator) Next(now time.Time) string {
	g.mu.Lock()
	defer g.mu.Unlock()

	code := fmt.Sprintf("PK%d%03d", now.Unix()%10000, g.counter)
	g.counter++
	return code
}

// ShelfAssigner picks a shelf slot code for a new package.
type ShelfAssigner interface {
	Assign() string
}

// RandomShelfAssigner draws a slot uniformly from SH00..SH99. Slots are not
// reserved, so two packages may share one.
type RandomShelfAssigner struct {
	rnd *rand.Rand
	mu  sync.Mutex
}

// NewRandomShelfAssigner uses seed for reproducible draws; pass 0 to seed
// from the runtime's random source.
func NewRandomShelfAssigner(seed uint64) *RandomShelfAssigner {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return &RandomShelfAssigner{rnd: rand.New(rand.NewPCG(seed, seed>>1|1))}
}

func (a *RandomShelfAssigner) Assign() string {
	a.mu.Lock()
	defer a.mu.Unlock()

	return fmt.Sprintf("SH%02d", a.rnd.IntN(100))
}
