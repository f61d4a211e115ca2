package simulation

import (
	"fmt"

	"BaselExplorer/internal/bank"
	"BaselExplorer/internal/model"
)

// Preview clamps params and computes the next year for the bank held in
// store without committing it.
func Preview(store *bank.Store, policy Policy, params model.YearParams) (model.YearTransition, error) {
	state, err := store.CurrentState()
	if err != nil {
		return model.YearTransition{}, err
	}
	return AdvanceYear(state, policy.Clamp(params)), nil
}

// Confirm commits a transition previously computed for the store's current year.
func Confirm(store *bank.Store, t model.YearTransition) (model.YearRecord, error) {
	rec, err := store.CommitYear(t.NewCapital, t.NewAssets, t.Metrics())
	if err != nil {
		return model.YearRecord{}, fmt.Errorf("commit year: %w", err)
	}
	return rec, nil
}

// Step previews and confirms one year.
func Step(store *bank.Store, policy Policy, params model.YearParams) (model.YearTransition, model.YearRecord, error) {
	t, err := Preview(store, policy, params)
	if err != nil {
		return model.YearTransition{}, model.YearRecord{}, err
	}
	rec, err := Confirm(store, t)
	if err != nil {
		return model.YearTransition{}, model.YearRecord{}, err
	}
	return t, rec, nil
}
