package processor

import "errors"

var (
	// ErrAlreadyPlayed is returned when a fixture is processed twice.
	ErrAlreadyPlayed = errors.New("fixture already played")
	// ErrPlayoffTie is returned when a playoff fixture ends level. Playoff
	// scores must be split before processing.
	ErrPlayoffTie = errors.New("playoff fixture cannot end in a tie")
)

// Processor turns two final scores into a verdict and applies it.
type Processor struct {
	store Store
}
