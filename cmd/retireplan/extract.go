package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/retireplan/engine/internal/domain"
	"github.com/retireplan/engine/internal/extraction"
	"github.com/spf13/cobra"
)

func extractCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "extract [document-file]...",
		Short: "Extract and aggregate income fields from one or more tax-form text dumps",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			results := make([]domain.ExtractionResult, 0, len(args))
			for _, path := range args {
				raw, err := os.ReadFile(path)
				if err != nil {
					log.Fatal(err)
				}

				text := string(raw)
				tmpl, confidence := extraction.IdentifyForm(text)
				if tmpl == nil {
					fmt.Fprintf(os.Stderr, "warning: %s: no known form template matched, skipping\n", path)
					continue
				}

				result := extraction.ExtractFields(text, tmpl)
				if confidence < extraction.DefaultConfidenceThreshold {
					fmt.Fprintf(os.Stderr, "warning: %s: form identification confidence %.2f below threshold\n", path, confidence)
				}
				results = append(results, result)
			}

			aggregated := extraction.Aggregate(results)

			output := struct {
				Documents  []domain.ExtractionResult `json:"documents"`
				Aggregated domain.AggregatedIncome    `json:"aggregated"`
			}{Documents: results, Aggregated: aggregated}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(output); err != nil {
				log.Fatal(err)
			}
		},
	}
}
