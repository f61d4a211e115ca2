package bank

import (
	"errors"
	"fmt"
	"slices"

	"BaselExplorer/internal/model"
)

var (
	ErrNotInitialized     = errors.New("bank state not initialized")
	ErrAlreadyInitialized = errors.New("bank state already initialized")
	ErrInvalidParameter   = errors.New("invalid bank parameter")
)

// MinAssets is the smallest opening balance sheet, in $M. It is the
// one-decimal floor that a -20% year still rounds back to.
const MinAssets = 0.1

// Store owns the state of one simulation run.
// It is not safe for concurrent use; callers serving several goroutines
// must serialise access.
type Store struct {
	state *model.BankState
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{}
}

// Initialize creates the bank with an empty history.
func (s *Store) Initialize(initialCapital, initialAssets, rwaFraction float64, startYear int) error {
	if s.state != nil {
		return ErrAlreadyInitialized
	}
	if !(initialAssets >= MinAssets) {
		return fmt.Errorf("%w: assets must be at least %v, got %v", ErrInvalidParameter, MinAssets, initialAssets)
	}
	if rwaFraction <= 0 || rwaFraction > 1 {
		return fmt.Errorf("%w: rwa fraction must be in (0, 1], got %v", ErrInvalidParameter, rwaFraction)
	}

	s.state = &model.BankState{
		Year:           startYear,
		Capital:        initialCapital,
		Assets:         initialAssets,
		RWAFraction:    rwaFraction,
		History:        []model.YearRecord{},
		StartYear:      startYear,
		InitialCapital: initialCapital,
		InitialAssets:  initialAssets,
	}
	return nil
}

// Initialized reports whether a state exists.
func (s *Store) Initialized() bool {
	return s.state != nil
}

// CurrentState returns a copy of the state. The history slice is cloned,
// so callers cannot alter committed records.
func (s *Store) CurrentState() (model.BankState, error) {
	if s.state == nil {
		return model.BankState{}, ErrNotInitialized
	}
	st := *s.state
	st.History = slices.Clone(s.state.History)
	return st, nil
}

// CommitYear records the current year with the supplied outcome and moves
// the bank to the next year. A year that leaves no assets is rejected and
// the state is left untouched.
func (s *Store) CommitYear(nextCapital, nextAssets float64, metrics model.Metrics) (model.YearRecord, error) {
	if s.state == nil {
		return model.YearRecord{}, ErrNotInitialized
	}
	if !(nextAssets > 0) {
		return model.YearRecord{}, fmt.Errorf("%w: year %d leaves assets at %v", ErrInvalidParameter, s.state.Year, nextAssets)
	}

	rec := model.YearRecord{
		Year:        s.state.Year,
		Capital:     nextCapital,
		Assets:      nextAssets,
		CAR:         metrics.CAR,
		Leverage:    metrics.Leverage,
		RWAFraction: s.state.RWAFraction,
	}
	s.state.History = append(s.state.History, rec)
	s.state.Capital = nextCapital
	s.state.Assets = nextAssets
	s.state.Year++
	return rec, nil
}

// Reset discards the state. Resetting an empty store is a no-op.
func (s *Store) Reset() {
	s.state = nil
}
