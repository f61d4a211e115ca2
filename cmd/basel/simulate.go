package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/spf13/cobra"

	"BaselExplorer/internal/bank"
	"BaselExplorer/internal/config"
	"BaselExplorer/internal/model"
	"BaselExplorer/internal/report"
	"BaselExplorer/internal/simulation"
)

// simulateFlags holds the parsed flags for the simulate command.
type simulateFlags struct {
	years         int
	growth        float64
	roa           float64
	stressYears   []int
	capital       float64
	assets        float64
	rwa           float64
	startYear     int
	compareStress bool
	jsonOut       bool
	out           string
}

// runResult is one scripted simulation.
type runResult struct {
	State       model.BankState        `json:"state"`
	Transitions []model.YearTransition `json:"transitions"`
	Summary     bank.Summary           `json:"summary"`
}

func newSimulateCmd(loadConfig func() (*config.Config, error)) *cobra.Command {
	var flags simulateFlags
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run the build-your-bank simulation with fixed yearly decisions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return runSimulate(cmd.OutOrStdout(), cfg, flags)
		},
	}

	f := cmd.Flags()
	f.IntVar(&flags.years, "years", 0, "Years to simulate (default: up to the configured horizon)")
	f.Float64Var(&flags.growth, "growth", 12, "Annual asset growth in percent")
	f.Float64Var(&flags.roa, "roa", 4, "Expected return on assets in percent")
	f.IntSliceVar(&flags.stressYears, "stress-years", nil, "Years hit by a credit-loss shock (repeatable or comma separated)")
	f.Float64Var(&flags.capital, "capital", 0, "Initial capital in $M (default from config)")
	f.Float64Var(&flags.assets, "assets", 0, "Initial total assets in $M (default from config)")
	f.Float64Var(&flags.rwa, "rwa", 0, "Risk-weighted share of assets, 0-1 (default from config)")
	f.IntVar(&flags.startYear, "start-year", 0, "First simulated year (default from config)")
	f.BoolVar(&flags.compareStress, "compare-stress", false, "Diff the run against the same run stressed every year")
	f.BoolVar(&flags.jsonOut, "json", false, "Print the run as JSON")
	f.StringVar(&flags.out, "out", "", "Write a JSON snapshot of the run to this file")
	return cmd
}

func runSimulate(w io.Writer, cfg *config.Config, flags simulateFlags) error {
	sim := cfg.Simulation
	capital, assets, rwa, start := sim.InitialCapital, sim.InitialAssets, sim.RWAFraction, sim.StartYear
	if flags.capital != 0 {
		capital = flags.capital
	}
	if flags.assets != 0 {
		assets = flags.assets
	}
	if flags.rwa != 0 {
		rwa = flags.rwa
	}
	if flags.startYear != 0 {
		start = flags.startYear
	}
	horizon := sim.HorizonEndYear - sim.StartYear + 1
	years := flags.years
	if years <= 0 {
		years = horizon
	}
	horizonEnd := start + horizon - 1

	schedule := func(year int) model.YearParams {
		return model.YearParams{
			GrowthRatePercent: flags.growth,
			ROAPercent:        flags.roa,
			Stress:            slices.Contains(flags.stressYears, year),
		}
	}

	base, err := runScripted(cfg.Policy(), capital, assets, rwa, start, years, horizonEnd, schedule)
	if err != nil {
		return simulateError(err)
	}

	if flags.out != "" {
		if err := bank.SaveSnapshot(flags.out, &bank.Snapshot{State: base.State, Summary: base.Summary}); err != nil {
			return codeError(1, "write snapshot: %s", err)
		}
	}

	if flags.jsonOut {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(base)
	}

	for i, tr := range base.Transitions {
		fmt.Fprintln(w, report.FormatYear(start+i, base.State, tr))
	}
	fmt.Fprintln(w, report.FormatHistory(base.State.History))
	fmt.Fprint(w, report.FormatSummary(base.Summary))

	if flags.compareStress {
		stressed, err := runScripted(cfg.Policy(), capital, assets, rwa, start, years, horizonEnd, func(year int) model.YearParams {
			p := schedule(year)
			p.Stress = true
			return p
		})
		if err != nil {
			return simulateError(err)
		}
		fmt.Fprintln(w, "\nBaseline vs. stressed every year:")
		fmt.Fprint(w, report.DiffRuns(report.FormatHistory(base.State.History), report.FormatHistory(stressed.State.History)))
	}
	return nil
}

// simulateError maps rejected inputs to exit code 3 and anything else to 2.
func simulateError(err error) error {
	if errors.Is(err, bank.ErrInvalidParameter) {
		return codeError(3, "simulate: %s", err)
	}
	return codeError(2, "simulate: %s", err)
}

// runScripted plays years decisions from schedule on a fresh bank.
func runScripted(policy simulation.Policy, capital, assets, rwa float64, start, years, horizonEnd int, schedule func(year int) model.YearParams) (*runResult, error) {
	store := bank.NewStore()
	if err := store.Initialize(capital, assets, rwa, start); err != nil {
		return nil, err
	}

	res := &runResult{}
	for i := 0; i < years; i++ {
		tr, _, err := simulation.Step(store, policy, schedule(start+i))
		if err != nil {
			return nil, err
		}
		res.Transitions = append(res.Transitions, tr)
	}

	state, err := store.CurrentState()
	if err != nil {
		return nil, err
	}
	res.State = state
	res.Summary = bank.Summarize(state, horizonEnd)
	return res, nil
}
