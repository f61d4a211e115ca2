package report

import (
	"strings"
	"testing"

	"BaselExplorer/internal/bank"
	"BaselExplorer/internal/calculator"
	"BaselExplorer/internal/model"
	"BaselExplorer/internal/portfolio"
	"BaselExplorer/internal/provisioning"
)

func TestFormatYear(t *testing.T) {
	st := model.BankState{Year: 2025, Capital: 150, Assets: 1000, RWAFraction: 0.7}
	tr := model.YearTransition{NewCapital: 127.6, NewAssets: 1120, CAR: 16.3, Leverage: 11.4, CapitalDelta: -22.4, Dividends: 22.4, Provision: 44.8, GrossProfit: 44.8}
	out := FormatYear(2025, st, tr)
	for _, want := range []string{"Year 2025", "$128M (-22M)", "RWA / assets:   70%", "CAR:            16.3% OK", "$22.4M"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
}

func TestFormatSummary_Outcomes(t *testing.T) {
	rec := model.YearRecord{Year: 2027, Capital: 20, Assets: 1000, CAR: 2.9, Leverage: 2.0, RWAFraction: 0.7}
	status := bank.StatusOf(rec)
	sum := bank.Summary{Years: 3, Last: &rec, LastStatus: &status, MinCAR: 2.9, BreachYears: []int{2026, 2027}, Complete: true, Outcome: bank.OutcomeIntervention}

	out := FormatSummary(sum)
	if !strings.Contains(out, "intervention") || !strings.Contains(out, "2026, 2027") {
		t.Errorf("unexpected summary:\n%s", out)
	}
	if !strings.Contains(FormatSummary(bank.Summary{}), "No year committed") {
		t.Error("empty summary should say no year committed")
	}
}

func TestFormatHistory(t *testing.T) {
	out := FormatHistory([]model.YearRecord{{Year: 2025, Capital: 163.4, Assets: 1120, CAR: 20.8, Leverage: 14.6, RWAFraction: 0.7}})
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if !strings.Contains(lines[1], "163.4") || !strings.Contains(lines[1], "20.8%") {
		t.Errorf("row = %q", lines[1])
	}
}

func TestFormatPortfolio(t *testing.T) {
	out := FormatPortfolio(portfolio.Evaluate(model.Portfolio{Cash: 20, GovBonds: 15, Mortgages: 30, CorpLoans: 20, HighYield: 10, Unrated: 5}))
	if !strings.Contains(out, "$56.0M") || !strings.Contains(out, "$4.5M") {
		t.Errorf("unexpected portfolio report:\n%s", out)
	}
}

func TestFormatProvisioning(t *testing.T) {
	res, err := provisioning.Simulate(provisioning.Input{LoanBook: 500, InterestRate: 15, Scenario: model.ScenarioRecession, Model: model.IAS39})
	if err != nil {
		t.Fatal(err)
	}
	out := FormatProvisioning(res)
	if !strings.Contains(out, "Recession | IAS 39") || !strings.Contains(out, "cliff effect") {
		t.Errorf("unexpected provisioning report:\n%s", out)
	}
}

func TestFormatConstraint(t *testing.T) {
	out := FormatConstraint(calculator.EvaluateDualConstraint(140, 5000, 20))
	if !strings.Contains(out, "leverage ratio") {
		t.Errorf("unexpected constraint report:\n%s", out)
	}
}

func TestDiffRuns(t *testing.T) {
	a := "Year Capital\n2025 163.4\n2026 180.1\n"
	b := "Year Capital\n2025 163.4\n2026 138.3\n"
	out := DiffRuns(a, b)
	want := " Year Capital\n 2025 163.4\n-2026 180.1\n+2026 138.3\n"
	if out != want {
		t.Errorf("DiffRuns =\n%q\nwant\n%q", out, want)
	}
	if strings.ContainsAny(DiffRuns(a, a), "+-") {
		t.Error("identical inputs should produce no changes")
	}
}
