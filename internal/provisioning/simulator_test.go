package provisioning

import (
	"math"
	"testing"

	"BaselExplorer/internal/model"
)

func TestPDs_LiteralTables(t *testing.T) {
	tests := []struct {
		s    model.Scenario
		want [Years]float64
	}{
		{model.ScenarioBoom, [Years]float64{0.5, 0.4, 0.3, 0.4, 0.5}},
		{model.ScenarioNormal, [Years]float64{1.0, 1.2, 1.5, 1.8, 1.6}},
		{model.ScenarioRecession, [Years]float64{2.0, 3.5, 6.0, 12.0, 8.0}},
	}
	for _, tt := range tests {
		if got := PDs(tt.s); got != tt.want {
			t.Errorf("PDs(%s) = %v, want %v", tt.s, got, tt.want)
		}
	}
}

func TestSimulate_RecessionIAS39(t *testing.T) {
	res, err := Simulate(Input{LoanBook: 500, InterestRate: 15, Scenario: model.ScenarioRecession, Model: model.IAS39})
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(res.TotalRealizedLoss-78.75) > 1e-9 {
		t.Errorf("total realized loss = %v, want 78.75", res.TotalRealizedLoss)
	}
	want := []float64{0, 3.9, 11.8, 27.6, 35.4}
	for i, row := range res.Rows {
		if row.Provision != want[i] {
			t.Errorf("year %d provision = %v, want %v", row.Year, row.Provision, want[i])
		}
		if row.Interest != 75 {
			t.Errorf("year %d interest = %v, want 75", row.Year, row.Interest)
		}
	}
	if res.Rows[0].NetProfit != 75 || res.Rows[4].NetProfit != 39.6 {
		t.Errorf("net profit first/last = %v/%v, want 75/39.6", res.Rows[0].NetProfit, res.Rows[4].NetProfit)
	}
	if res.Rows[0].Year != 2025 || res.Rows[4].Year != 2029 {
		t.Errorf("years = %d..%d", res.Rows[0].Year, res.Rows[4].Year)
	}
}

func TestSimulate_RecessionIFRS9FrontLoads(t *testing.T) {
	res, err := Simulate(Input{LoanBook: 500, InterestRate: 15, Scenario: model.ScenarioRecession, Model: model.IFRS9})
	if err != nil {
		t.Fatal(err)
	}
	if res.Rows[0].Provision != 32.6 {
		t.Errorf("first-year provision = %v, want 32.6", res.Rows[0].Provision)
	}
	if res.Rows[4].Provision != 8.9 {
		t.Errorf("last-year provision = %v, want 8.9", res.Rows[4].Provision)
	}
	for i := 1; i < Years; i++ {
		if res.Rows[i].Provision > res.Rows[i-1].Provision {
			t.Errorf("IFRS 9 provision rose in %d", res.Rows[i].Year)
		}
	}
}

func TestSimulate_GoodTimes(t *testing.T) {
	for _, s := range []model.Scenario{model.ScenarioBoom, model.ScenarioNormal} {
		ifrs, err := Simulate(Input{LoanBook: 500, InterestRate: 15, Scenario: s, Model: model.IFRS9})
		if err != nil {
			t.Fatal(err)
		}
		ias, err := Simulate(Input{LoanBook: 500, InterestRate: 15, Scenario: s, Model: model.IAS39})
		if err != nil {
			t.Fatal(err)
		}
		for i := 0; i < Years; i++ {
			if ifrs.Rows[i].Provision != 5 {
				t.Errorf("%s IFRS 9 provision = %v, want 5", s, ifrs.Rows[i].Provision)
			}
			if ias.Rows[i].Provision != 0 {
				t.Errorf("%s IAS 39 provision = %v, want 0", s, ias.Rows[i].Provision)
			}
		}
		if ifrs.CumulativeProvisions != 25 || ifrs.CumulativeProfit != 350 {
			t.Errorf("%s IFRS 9 totals = %v/%v, want 25/350", s, ifrs.CumulativeProvisions, ifrs.CumulativeProfit)
		}
		if ias.CumulativeProfit != 375 {
			t.Errorf("%s IAS 39 cumulative profit = %v, want 375", s, ias.CumulativeProfit)
		}
	}
}

func TestCompare_SameTotalLossDifferentTiming(t *testing.T) {
	cmp, err := Compare(1000, 12, model.ScenarioRecession)
	if err != nil {
		t.Fatal(err)
	}
	if cmp.IAS39.Input.Model != model.IAS39 || cmp.IFRS9.Input.Model != model.IFRS9 {
		t.Fatal("models not assigned")
	}
	if cmp.IFRS9.Rows[0].Provision <= cmp.IAS39.Rows[0].Provision {
		t.Error("IFRS 9 should provision more in the first year")
	}
	if cmp.IFRS9.Rows[4].Provision >= cmp.IAS39.Rows[4].Provision {
		t.Error("IAS 39 should provision more in the last year")
	}
	if cmp.IAS39.Insight == cmp.IFRS9.Insight {
		t.Error("expected distinct insights")
	}
}

func TestSimulate_InvalidScenario(t *testing.T) {
	if _, err := Simulate(Input{LoanBook: 500, InterestRate: 15, Scenario: model.Scenario(9)}); err == nil {
		t.Error("expected error for unknown scenario")
	}
}

func TestInput_Clamp(t *testing.T) {
	in := Input{LoanBook: 5000, InterestRate: 3}.Clamp()
	if in.LoanBook != MaxBook || in.InterestRate != MinRate {
		t.Errorf("Clamp = %+v", in)
	}
}
