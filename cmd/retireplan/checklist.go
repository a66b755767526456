package main

import (
	"encoding/json"
	"log"
	"os"

	"github.com/retireplan/engine/internal/checklist"
	"github.com/retireplan/engine/internal/domain"
	"github.com/spf13/cobra"
)

// checklistInput is the JSON file shape consumed by the checklist command:
// the current and (optional) prior tax-year records, each year's recorded
// document list, and the household's accounts/income streams (rules 2-4).
type checklistInput struct {
	Year             int                    `json:"year"`
	Current          *domain.TaxYearRecord  `json:"current"`
	Prior            *domain.TaxYearRecord  `json:"prior,omitempty"`
	PriorDocuments   []domain.DocumentRef   `json:"priorDocuments,omitempty"`
	CurrentDocuments []domain.DocumentRef   `json:"currentDocuments,omitempty"`
	Accounts         []domain.Account       `json:"accounts,omitempty"`
	IncomeStreams    []domain.IncomeStream  `json:"incomeStreams,omitempty"`
}

func checklistCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "checklist [input-file]",
		Short: "Generate a deterministic tax-year preparation checklist",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			data, err := os.ReadFile(args[0])
			if err != nil {
				log.Fatal(err)
			}

			var in checklistInput
			if err := json.Unmarshal(data, &in); err != nil {
				log.Fatalf("failed to parse checklist input: %v", err)
			}

			items := checklist.Generate(in.Year, in.Current, in.Prior, in.PriorDocuments, in.CurrentDocuments, in.Accounts, in.IncomeStreams)
			result := domain.Checklist{
				Year:          in.Year,
				Items:         items,
				CompletionPct: checklist.CompletionPct(items),
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(result); err != nil {
				log.Fatal(err)
			}
		},
	}
}
