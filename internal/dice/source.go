package dice

import "math/rand"

// Source supplies the random draws for die rolls. Implementations must be
// safe for concurrent use. Intn follows math/rand semantics: it returns a
// value in [0, n) and panics if n <= 0.
type Source interface {
	Intn(n int) int
}

// mathSource draws from the process-global math/rand source, which is
// seeded and locked by the runtime.
type mathSource struct{}

func (mathSource) Intn(n int) int {
	return rand.Intn(n) //nolint:gosec // dice rolls are not security sensitive
}

// NewSource returns the production randomness source.
func NewSource() Source {
	return mathSource{}
}
