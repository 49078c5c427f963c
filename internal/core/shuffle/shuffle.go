// Package shuffle implements the meal assignment engine
// Pipeline
// 1 Fisher-Yates permutation of the candidate meal ids
// 2 In-order walk of the slot window assigning permuted meals to open active slots
// 3 Wrap-around once the deck is exhausted counting each repeat assignment
package shuffle

import (
	"crypto/rand"
	"math/big"
)

// Slot is a snapshot of one plan slot as seen by the engine
// MealID nil means the slot is open
type Slot struct {
	ID       string
	IsActive bool
	MealID   *string
}

// Result carries the slot window after assignment
// DuplicateCount is how many assignments reused an already dealt meal
type Result struct {
	Slots          []Slot
	DuplicateCount int
}

// Engine deals meals onto slots
// the intn seam exists so tests can fix the permutation
type Engine struct {
	intn func(n int) int
}

// New constructs an Engine backed by crypto/rand
func New() *Engine {
	return &Engine{intn: cryptoIntn}
}

// NewWithSource constructs an Engine with a caller supplied uniform source
// intn must return a value in [0, n) for n >= 1
func NewWithSource(intn func(n int) int) *Engine {
	if intn == nil {
		intn = cryptoIntn
	}
	return &Engine{intn: intn}
}

// cryptoIntn draws a uniform int in [0, n) from crypto/rand
func cryptoIntn(n int) int {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		// crypto/rand only fails when the platform entropy source is broken
		panic(err)
	}
	return int(v.Int64())
}

// Permute returns a uniformly shuffled copy of ids
// the input slice is never mutated
func (e *Engine) Permute(ids []string) []string {
	out := make([]string, len(ids))
	copy(out, ids)
	for i := len(out) - 1; i >= 1; i-- {
		j := e.intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// Assign deals a permutation of mealIDs onto the open active slots in window order
// Slots that are inactive or already hold a meal pass through untouched
// When every meal has been dealt once the deck wraps and repeats are counted
// Empty mealIDs or a window with no open active slot is a no-op
func (e *Engine) Assign(mealIDs []string, slots []Slot) Result {
	out := make([]Slot, len(slots))
	copy(out, slots)

	if len(mealIDs) == 0 {
		return Result{Slots: out}
	}

	eligible := 0
	for _, s := range out {
		if s.IsActive && s.MealID == nil {
			eligible++
		}
	}
	if eligible == 0 {
		return Result{Slots: out}
	}

	deck := e.Permute(mealIDs)

	dealt := 0
	dups := 0
	for i := range out {
		if !out[i].IsActive || out[i].MealID != nil {
			continue
		}
		if dealt >= len(deck) {
			dups++
		}
		id := deck[dealt%len(deck)]
		out[i].MealID = &id
		dealt++
	}

	return Result{Slots: out, DuplicateCount: dups}
}
