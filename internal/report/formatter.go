package report

import (
	"fmt"
	"strings"

	"BaselExplorer/internal/bank"
	"BaselExplorer/internal/calculator"
	"BaselExplorer/internal/model"
	"BaselExplorer/internal/portfolio"
	"BaselExplorer/internal/provisioning"
)

// FormatYear renders the dashboard of a previewed year.
func FormatYear(year int, state model.BankState, tr model.YearTransition) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Year %d\n\n", year))
	b.WriteString(fmt.Sprintf("Capital:        $%.0fM (%+.0fM)\n", tr.NewCapital, tr.CapitalDelta))
	b.WriteString(fmt.Sprintf("Total assets:   $%.0fM\n", tr.NewAssets))
	b.WriteString(fmt.Sprintf("RWA / assets:   %.0f%%\n\n", state.RWAFraction*100))

	b.WriteString(fmt.Sprintf("CAR:            %.1f%% %s\n", tr.CAR, mark(calculator.ClassifyCAR(tr.CAR) == model.CARAdequate)))
	b.WriteString(fmt.Sprintf("Leverage ratio: %.1f%% %s\n", tr.Leverage, mark(calculator.ClassifyLeverage(tr.Leverage) == model.LeverageAdequate)))
	b.WriteString(fmt.Sprintf("Gross profit:   $%.1fM\n", tr.GrossProfit))
	b.WriteString(fmt.Sprintf("Provisions:     $%.1fM\n", tr.Provision))
	b.WriteString(fmt.Sprintf("Dividends paid: 50%% of profit -> $%.1fM\n", tr.Dividends))
	return b.String()
}

func mark(ok bool) string {
	if ok {
		return "OK"
	}
	return "BELOW REQUIREMENT"
}

// FormatHistory renders committed years as a fixed-width table.
func FormatHistory(history []model.YearRecord) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%-6s %10s %10s %7s %9s %6s\n", "Year", "Capital", "Assets", "CAR", "Leverage", "RWA%"))
	for _, r := range history {
		b.WriteString(fmt.Sprintf("%-6d %10.1f %10.1f %6.1f%% %8.1f%% %5.0f%%\n",
			r.Year, r.Capital, r.Assets, r.CAR, r.Leverage, r.RWAFraction*100))
	}
	return b.String()
}

// FormatSummary renders the verdict of a run.
func FormatSummary(sum bank.Summary) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Years simulated: %d\n", sum.Years))
	if sum.Last == nil {
		b.WriteString("No year committed yet.\n")
		return b.String()
	}
	b.WriteString(fmt.Sprintf("Final CAR:       %.1f%% (%s)\n", sum.Last.CAR, sum.LastStatus.CAR.Label()))
	b.WriteString(fmt.Sprintf("Final leverage:  %.1f%% (%s)\n", sum.Last.Leverage, sum.LastStatus.Leverage.Label()))
	b.WriteString(fmt.Sprintf("Lowest CAR:      %.1f%%\n", sum.MinCAR))
	b.WriteString(fmt.Sprintf("Capital change:  %+.1fM\n", sum.CapitalChange))
	if len(sum.BreachYears) > 0 {
		years := make([]string, len(sum.BreachYears))
		for i, y := range sum.BreachYears {
			years[i] = fmt.Sprint(y)
		}
		b.WriteString(fmt.Sprintf("Breach years:    %s\n", strings.Join(years, ", ")))
	}

	switch sum.Outcome {
	case bank.OutcomeSurvived:
		b.WriteString("\nSimulation complete: your bank survived and is well capitalised.\n")
	case bank.OutcomeIntervention:
		b.WriteString("\nSimulation complete: your bank breached regulatory requirements, supervisory intervention.\n")
	}
	return b.String()
}

// FormatPortfolio renders the RWA playground result.
func FormatPortfolio(res portfolio.Result) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%-18s %12s %8s %10s\n", "Asset class", "Allocation", "Weight", "RWA"))
	for _, c := range res.Contributions {
		b.WriteString(fmt.Sprintf("%-18s %11.1fM %7.0f%% %9.1fM\n", c.Name, c.Allocation, c.Weight*100, c.RWA))
	}
	b.WriteString("\n")
	if res.Warning != "" {
		b.WriteString("Warning: " + res.Warning + "\n")
	}
	b.WriteString(fmt.Sprintf("Total assets:              $%.0fM\n", res.Total))
	b.WriteString(fmt.Sprintf("Total RWA:                 $%.1fM\n", res.RWA))
	b.WriteString(fmt.Sprintf("Minimum capital (8%%):      $%.1fM\n", res.RequiredCapital))
	b.WriteString(fmt.Sprintf("CAR:                       %.1f%% (%s)\n", res.CAR, res.Status.Label()))
	return b.String()
}

// FormatProvisioning renders a credit-cycle run.
func FormatProvisioning(res provisioning.Result) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s | %s | book $%.0fM @ %.1f%%\n\n",
		res.Input.Scenario, res.Input.Model, res.Input.LoanBook, res.Input.InterestRate))
	b.WriteString(fmt.Sprintf("%-6s %6s %10s %12s %12s\n", "Year", "PD", "Interest", "Provisions", "Net profit"))
	for _, r := range res.Rows {
		b.WriteString(fmt.Sprintf("%-6d %5.1f%% %10.1f %12.1f %12.1f\n", r.Year, r.PD, r.Interest, r.Provision, r.NetProfit))
	}
	b.WriteString(fmt.Sprintf("\nCumulative provisions: $%.1fM\n", res.CumulativeProvisions))
	b.WriteString(fmt.Sprintf("Cumulative profit:     $%.1fM\n", res.CumulativeProfit))
	b.WriteString("\n" + res.Insight + "\n")
	return b.String()
}

// FormatConstraint renders the dual-constraint check.
func FormatConstraint(dc calculator.DualConstraint) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("RWA:            $%.1fM (%.0f%% of assets)\n", dc.RWA, dc.RWAPercent))
	b.WriteString(fmt.Sprintf("CAR:            %.1f%% (buffer %.1f%%)\n", dc.CAR, calculator.BufferCAR))
	b.WriteString(fmt.Sprintf("Leverage ratio: %.1f%% (minimum %.0f%%)\n\n", dc.Leverage, calculator.MinimumLeverage))

	switch dc.Binding {
	case model.ConstraintNone:
		b.WriteString("The bank meets both requirements.\n")
	case model.ConstraintRiskBased:
		b.WriteString("Binding constraint: risk-based capital requirement.\n")
	case model.ConstraintLeverage:
		b.WriteString("Binding constraint: leverage ratio (large balance sheet of low-risk assets).\n")
	case model.ConstraintBoth:
		b.WriteString("Critical: the bank violates both rules.\n")
	}
	return b.String()
}
