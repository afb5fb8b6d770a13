package display

import (
	"fmt"
	"math/rand"
	"sync"
	"time"
)

const seatLetters = "ABCDEF"

// Assigner hands out seat and gate labels from a seedable source.
type Assigner struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func NewAssigner(src rand.Source) *Assigner {
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}
	return &Assigner{rnd: rand.New(src)}
}

func (a *Assigner) Seat() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return AssignSeat(a.rnd)
}

func (a *Assigner) Gate() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return AssignGate(a.rnd)
}

// AssignSeat is a row 1-30 followed by a letter A-F, e.g. "17C".
func AssignSeat(r *rand.Rand) string {
	return fmt.Sprintf("%d%c", r.Intn(30)+1, seatLetters[r.Intn(len(seatLetters))])
}

// AssignGate is "A" followed by 1-20.
func AssignGate(r *rand.Rand) string {
	return fmt.Sprintf("A%d", r.Intn(20)+1)
}
