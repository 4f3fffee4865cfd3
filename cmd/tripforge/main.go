package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/tripforge/tripforge/config"
	"github.com/tripforge/tripforge/engine"
	"github.com/tripforge/tripforge/planner"
	"github.com/tripforge/tripforge/trip"
)

var (
	flagConfig      string
	flagData        string
	flagVerbose     bool
	flagFrom        string
	flagTo          string
	flagStart       string
	flagEnd         string
	flagBudget      float64
	flagPreferences string
	flagShowSteps   bool
)

func main() {
	root := &cobra.Command{
		Use:          "tripforge",
		Short:        "AI trip planner with deterministic fallback",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if flagVerbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		},
	}
	root.PersistentFlags().StringVar(&flagConfig, "config", "", "path to a YAML config file")
	root.PersistentFlags().StringVar(&flagData, "data", "", "base directory of the JSON datasets")
	root.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")

	plan := &cobra.Command{
		Use:   "plan",
		Short: "Plan a trip and print the itinerary",
		RunE:  runPlan,
	}
	plan.Flags().StringVar(&flagFrom, "from", "", "source city")
	plan.Flags().StringVar(&flagTo, "to", "", "destination city")
	plan.Flags().StringVar(&flagStart, "start", "", "start date (YYYY-MM-DD)")
	plan.Flags().StringVar(&flagEnd, "end", "", "end date (YYYY-MM-DD)")
	plan.Flags().Float64Var(&flagBudget, "budget", 0, "optional budget ceiling in INR")
	plan.Flags().StringVar(&flagPreferences, "preferences", "", "free-text trip preferences")
	plan.Flags().BoolVar(&flagShowSteps, "steps", false, "print the executed tool invocations")
	for _, name := range []string{"from", "to", "start", "end"} {
		_ = plan.MarkFlagRequired(name)
	}

	detect := &cobra.Command{
		Use:   "detect",
		Short: "Report which reasoning engine would be used",
		RunE:  runDetect,
	}

	root.AddCommand(plan, detect)
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig() (config.Config, error) {
	cfg := config.Default()
	if flagConfig != "" {
		loaded, err := config.Load(flagConfig)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}
	cfg.ApplyEnv()
	if flagData != "" {
		cfg.DataPath = flagData
	}
	return cfg, nil
}

func runPlan(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	start, err := trip.ParseDate(flagStart)
	if err != nil {
		return err
	}
	end, err := trip.ParseDate(flagEnd)
	if err != nil {
		return err
	}
	req := trip.Request{
		Source:      flagFrom,
		Destination: flagTo,
		StartDate:   start,
		EndDate:     end,
		Budget:      flagBudget,
		Preferences: flagPreferences,
	}

	ctx := cmd.Context()
	p := planner.New(ctx, cfg, planner.WithLogger(slog.Default()))
	res := p.PlanTrip(ctx, req)
	if res.Status != trip.StatusSuccess {
		return fmt.Errorf("planning failed (%s): %s", res.Provider, res.Message)
	}
	if flagShowSteps && res.HasSteps() {
		for i, step := range res.Steps {
			marker := "ok"
			if step.IsError {
				marker = "error"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "[step %d] %s (%s)\n%s\n\n", i+1, step.Op, marker, step.Output)
		}
	}
	fmt.Fprintln(cmd.OutOrStdout(), res.Report)
	return nil
}

func runDetect(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	eng, provider := engine.Detect(cmd.Context(), cfg)
	if eng == nil {
		fmt.Fprintf(cmd.OutOrStdout(), "provider: %s (deterministic synthesis, no engine found)\n", provider)
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "provider: %s\nmodel: %s\n", provider, eng.Model())
	return nil
}
