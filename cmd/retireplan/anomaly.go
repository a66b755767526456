package main

import (
	"encoding/json"
	"log"
	"os"
	"strconv"

	"github.com/retireplan/engine/internal/anomaly"
	"github.com/retireplan/engine/internal/domain"
	"github.com/spf13/cobra"
)

// anomalyInput is the JSON file shape consumed by the anomaly command: a
// household's full recorded tax-year history plus each year's document list,
// keyed by year.
type anomalyInput struct {
	Records         []domain.TaxYearRecord         `json:"records"`
	DocumentsByYear map[string][]domain.DocumentRef `json:"documentsByYear,omitempty"`
}

func anomalyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "anomaly [input-file]",
		Short: "Detect year-over-year anomalies across a household's tax-year history",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			data, err := os.ReadFile(args[0])
			if err != nil {
				log.Fatal(err)
			}

			var in anomalyInput
			if err := json.Unmarshal(data, &in); err != nil {
				log.Fatalf("failed to parse anomaly input: %v", err)
			}

			docsByYear := make(map[int][]domain.DocumentRef, len(in.DocumentsByYear))
			for yearStr, docs := range in.DocumentsByYear {
				year, err := strconv.Atoi(yearStr)
				if err != nil {
					log.Fatalf("invalid year key %q in documentsByYear", yearStr)
				}
				docsByYear[year] = docs
			}

			anomalies := anomaly.DetectAcrossYears(in.Records, docsByYear)

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(anomalies); err != nil {
				log.Fatal(err)
			}
		},
	}
}
