package main

import (
	"log"

	"github.com/retireplan/engine/internal/config"
	"github.com/retireplan/engine/internal/domain"
	"github.com/retireplan/engine/internal/output"
	"github.com/retireplan/engine/internal/simulation"
	"github.com/spf13/cobra"
)

func simulateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate [input-file]",
		Short: "Run the retirement simulation engine against a plan file",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			plan, err := config.LoadPlanInput(args[0])
			if err != nil {
				log.Fatal(err)
			}

			debugMode, _ := cmd.Flags().GetBool("debug")
			var result *domain.PlanResult
			if debugMode {
				result, err = simulation.SimulateWithLogger(plan, simpleCLILogger{})
			} else {
				result, err = simulation.Simulate(plan)
			}
			if err != nil {
				log.Fatal(err)
			}

			format, _ := cmd.Flags().GetString("format")
			if err := output.GenerateReport(result, format); err != nil {
				log.Fatal(err)
			}
		},
	}

	cmd.Flags().StringP("format", "f", "console", "Output format (console, json, yaml, csv)")
	cmd.Flags().Bool("debug", false, "Enable per-year debug logging")
	return cmd
}
