package main

import (
	"fmt"
	"log"

	"github.com/retireplan/engine/internal/config"
	"github.com/spf13/cobra"
)

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [input-file]",
		Short: "Validate a plan file without running the simulation",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if _, err := config.LoadPlanInput(args[0]); err != nil {
				log.Fatal(err)
			}
			fmt.Printf("Plan file %s is valid\n", args[0])
		},
	}
}
