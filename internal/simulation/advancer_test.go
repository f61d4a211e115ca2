package simulation

import (
	"errors"
	"math"
	"testing"

	"BaselExplorer/internal/bank"
	"BaselExplorer/internal/model"
)

func baseState() model.BankState {
	return model.BankState{Year: 2025, Capital: 150, Assets: 1000, RWAFraction: 0.70}
}

func TestAdvanceYear_NormalYear(t *testing.T) {
	tr := AdvanceYear(baseState(), model.YearParams{GrowthRatePercent: 12, ROAPercent: 4.0})

	checks := []struct {
		name      string
		got, want float64
	}{
		{"NewAssets", tr.NewAssets, 1120.0},
		{"GrossProfit", tr.GrossProfit, 44.8},
		{"Dividends", tr.Dividends, 22.4},
		{"Provision", tr.Provision, 9.0},
		{"NewCapital", tr.NewCapital, 163.4},
		{"CAR", tr.CAR, 20.8},
		{"Leverage", tr.Leverage, 14.6},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %v, want %v", c.name, c.got, c.want)
		}
	}
	if math.Abs(tr.CapitalDelta-13.4) > 1e-9 {
		t.Errorf("CapitalDelta = %v, want 13.4", tr.CapitalDelta)
	}
}

func TestAdvanceYear_StressYear(t *testing.T) {
	tr := AdvanceYear(baseState(), model.YearParams{GrowthRatePercent: 12, ROAPercent: 4.0, Stress: true})
	if tr.Provision != 44.8 {
		t.Errorf("Provision = %v, want 44.8", tr.Provision)
	}
	if math.Abs(tr.CapitalDelta+22.4) > 1e-9 {
		t.Errorf("CapitalDelta = %v, want -22.4", tr.CapitalDelta)
	}
	if tr.NewCapital != 127.6 {
		t.Errorf("NewCapital = %v, want 127.6", tr.NewCapital)
	}
}

func TestAdvanceYear_StressNeverImprovesCapital(t *testing.T) {
	for _, growth := range []float64{-20, -5, 0, 12, 60} {
		for _, roa := range []float64{0, 1.5, 4, 8} {
			p := model.YearParams{GrowthRatePercent: growth, ROAPercent: roa}
			normal := AdvanceYear(baseState(), p)
			p.Stress = true
			stressed := AdvanceYear(baseState(), p)
			if stressed.Provision <= normal.Provision {
				t.Errorf("growth=%v roa=%v: stress provision %v not above normal %v",
					growth, roa, stressed.Provision, normal.Provision)
			}
			if stressed.CapitalDelta > normal.CapitalDelta {
				t.Errorf("growth=%v roa=%v: stress delta %v above normal %v",
					growth, roa, stressed.CapitalDelta, normal.CapitalDelta)
			}
		}
	}
}

func TestAdvanceYear_IsPure(t *testing.T) {
	st := baseState()
	st.History = []model.YearRecord{{Year: 2024, Capital: 140}}
	p := model.YearParams{GrowthRatePercent: 10, ROAPercent: 2}
	a := AdvanceYear(st, p)
	b := AdvanceYear(st, p)
	if a != b {
		t.Errorf("repeated calls differ: %+v vs %+v", a, b)
	}
	if st.Capital != 150 || st.Assets != 1000 || len(st.History) != 1 {
		t.Errorf("input state mutated: %+v", st)
	}
}

func TestAdvanceYear_FloorKeepsAssetsPositive(t *testing.T) {
	st := baseState()
	for i := 0; i < 30; i++ {
		tr := AdvanceYear(st, model.YearParams{GrowthRatePercent: DefaultPolicy().GrowthMin, ROAPercent: 0, Stress: true})
		if tr.NewAssets <= 0 {
			t.Fatalf("year %d: assets fell to %v", i, tr.NewAssets)
		}
		st.Assets, st.Capital = tr.NewAssets, tr.NewCapital
	}
}

func TestStep_SmallestBankKeepsAssets(t *testing.T) {
	store := bank.NewStore()
	if err := store.Initialize(0.01, bank.MinAssets, 0.70, 2025); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 5; i++ {
		_, rec, err := Step(store, DefaultPolicy(), model.YearParams{GrowthRatePercent: -20, ROAPercent: 0})
		if err != nil {
			t.Fatalf("year %d: %v", i, err)
		}
		if rec.Assets <= 0 {
			t.Fatalf("year %d: committed assets %v", i, rec.Assets)
		}
	}
}

func TestStep_RejectsYearThatWipesOutAssets(t *testing.T) {
	store := bank.NewStore()
	if err := store.Initialize(0.01, bank.MinAssets, 0.70, 2025); err != nil {
		t.Fatal(err)
	}
	steep := Policy{GrowthMin: -90, GrowthMax: 60, ROAMin: 0, ROAMax: 8}
	_, _, err := Step(store, steep, model.YearParams{GrowthRatePercent: -90})
	if !errors.Is(err, bank.ErrInvalidParameter) {
		t.Fatalf("err = %v, want ErrInvalidParameter", err)
	}
	st, _ := store.CurrentState()
	if len(st.History) != 0 || st.Assets != bank.MinAssets {
		t.Errorf("state after rejected year = %+v", st)
	}
}

func TestPolicy_Clamp(t *testing.T) {
	p := DefaultPolicy()
	got := p.Clamp(model.YearParams{GrowthRatePercent: -50, ROAPercent: 12, Stress: true})
	if got.GrowthRatePercent != -20 || got.ROAPercent != 8 || !got.Stress {
		t.Errorf("Clamp = %+v", got)
	}
	got = p.Clamp(model.YearParams{GrowthRatePercent: math.NaN(), ROAPercent: -1})
	if got.GrowthRatePercent != -20 || got.ROAPercent != 0 {
		t.Errorf("Clamp NaN/negative = %+v", got)
	}
}

func TestPolicy_Validate(t *testing.T) {
	if err := DefaultPolicy().Validate(); err != nil {
		t.Fatalf("default policy invalid: %v", err)
	}
	bad := []Policy{
		{GrowthMin: 10, GrowthMax: 0, ROAMin: 0, ROAMax: 8},
		{GrowthMin: -100, GrowthMax: 60, ROAMin: 0, ROAMax: 8},
		{GrowthMin: -20, GrowthMax: 60, ROAMin: -1, ROAMax: 8},
	}
	for _, p := range bad {
		if err := p.Validate(); err == nil {
			t.Errorf("expected error for %+v", p)
		}
	}
}

func TestStep_CommitsPreview(t *testing.T) {
	store := bank.NewStore()
	if err := store.Initialize(150, 1000, 0.70, 2025); err != nil {
		t.Fatal(err)
	}
	params := model.YearParams{GrowthRatePercent: 12, ROAPercent: 4}

	preview, err := Preview(store, DefaultPolicy(), params)
	if err != nil {
		t.Fatal(err)
	}
	tr, rec, err := Step(store, DefaultPolicy(), params)
	if err != nil {
		t.Fatal(err)
	}
	if tr != preview {
		t.Errorf("step transition %+v differs from preview %+v", tr, preview)
	}
	want := model.YearRecord{Year: 2025, Capital: 163.4, Assets: 1120, CAR: 20.8, Leverage: 14.6, RWAFraction: 0.70}
	if rec != want {
		t.Errorf("record = %+v, want %+v", rec, want)
	}
	st, _ := store.CurrentState()
	if st.Year != 2026 || st.Capital != 163.4 || st.Assets != 1120 {
		t.Errorf("state after step = %+v", st)
	}
}

func TestPreview_NotInitialized(t *testing.T) {
	_, err := Preview(bank.NewStore(), DefaultPolicy(), model.YearParams{})
	if err != bank.ErrNotInitialized {
		t.Errorf("err = %v, want ErrNotInitialized", err)
	}
}
