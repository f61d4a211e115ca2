package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"BaselExplorer/internal/bank"
	"BaselExplorer/internal/calculator"
	"BaselExplorer/internal/model"
	"BaselExplorer/internal/portfolio"
	"BaselExplorer/internal/provisioning"
	"BaselExplorer/internal/report"
)

func newRWACmd() *cobra.Command {
	var p model.Portfolio
	cmd := &cobra.Command{
		Use:   "rwa",
		Short: "Compute risk-weighted assets and CAR of a $100M portfolio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), report.FormatPortfolio(portfolio.Evaluate(p)))
			return nil
		},
	}
	f := cmd.Flags()
	f.Float64Var(&p.Cash, "cash", 20, "Cash and central bank reserves, $M (0%)")
	f.Float64Var(&p.GovBonds, "gov", 15, "AAA sovereign bonds, $M (10%)")
	f.Float64Var(&p.Mortgages, "mortgages", 30, "Residential mortgages, $M (50%)")
	f.Float64Var(&p.CorpLoans, "corp", 20, "Investment-grade corporate loans, $M (100%)")
	f.Float64Var(&p.HighYield, "high-yield", 10, "High-yield exposures, $M (120%)")
	f.Float64Var(&p.Unrated, "unrated", 5, "Unrated exposures, $M (150%)")
	return cmd
}

func newProvisionCmd() *cobra.Command {
	var (
		book     float64
		rate     float64
		scenario string
		regime   string
		compare  bool
	)
	cmd := &cobra.Command{
		Use:   "provision",
		Short: "Simulate five years of credit provisioning under IAS 39 or IFRS 9",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := model.ParseScenario(scenario)
			if err != nil {
				return codeError(3, "%s", err)
			}
			pm, err := model.ParseProvisioningModel(regime)
			if err != nil {
				return codeError(3, "%s", err)
			}
			in := provisioning.Input{LoanBook: book, InterestRate: rate, Scenario: sc, Model: pm}.Clamp()

			w := cmd.OutOrStdout()
			if compare {
				cmp, err := provisioning.Compare(in.LoanBook, in.InterestRate, in.Scenario)
				if err != nil {
					return codeError(2, "%s", err)
				}
				fmt.Fprintln(w, report.FormatProvisioning(cmp.IAS39))
				fmt.Fprint(w, report.FormatProvisioning(cmp.IFRS9))
				return nil
			}
			res, err := provisioning.Simulate(in)
			if err != nil {
				return codeError(2, "%s", err)
			}
			fmt.Fprint(w, report.FormatProvisioning(res))
			return nil
		},
	}
	f := cmd.Flags()
	f.Float64Var(&book, "book", 500, "Loan book in $M (100-2000)")
	f.Float64Var(&rate, "rate", 15, "Average annual interest rate in percent (10-25)")
	f.StringVar(&scenario, "scenario", "Normal", "Economic scenario: Boom, Normal or Recession")
	f.StringVar(&regime, "model", "IFRS9", "Provisioning model: IAS39 or IFRS9")
	f.BoolVar(&compare, "compare", false, "Show both provisioning models")
	return cmd
}

func newConstraintCmd() *cobra.Command {
	var capital, assets, rwaPct float64
	cmd := &cobra.Command{
		Use:   "constraint",
		Short: "Compare the risk-based and leverage capital requirements",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), report.FormatConstraint(calculator.EvaluateDualConstraint(capital, assets, rwaPct)))
			return nil
		},
	}
	f := cmd.Flags()
	f.Float64Var(&capital, "capital", 100, "Equity capital in $M")
	f.Float64Var(&assets, "assets", 1500, "Total assets in $M")
	f.Float64Var(&rwaPct, "rwa-percent", 70, "Share of assets that is risk-weighted, percent")
	return cmd
}

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <snapshot.json>",
		Short: "Render a run exported with simulate --out",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := bank.LoadSnapshot(args[0])
			if err != nil {
				return codeError(3, "load snapshot: %s", err)
			}
			w := cmd.OutOrStdout()
			fmt.Fprintln(w, report.FormatHistory(snap.State.History))
			fmt.Fprint(w, report.FormatSummary(snap.Summary))
			return nil
		},
	}
}
