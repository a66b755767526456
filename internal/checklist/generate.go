// Package checklist deterministically builds a tax-year preparation
// checklist from a household's recorded and prior-year tax data (spec §4.4).
// No teacher precedent exists for this concern; it shares the issuer-name
// matching helper with internal/anomaly and otherwise follows the same
// plain-function, one-struct-per-concern style as internal/tax.
package checklist

import (
	"fmt"
	"sort"

	"github.com/retireplan/engine/internal/anomaly"
	"github.com/retireplan/engine/internal/domain"
	"github.com/shopspring/decimal"
)

// Generate builds the deterministic checklist for current, comparing against
// prior (if any), the document lists recorded for each year, and the
// household's accounts/income streams (rules 2-4 need account names and
// active income streams, which a TaxYearRecord does not itself carry).
func Generate(year int, current, prior *domain.TaxYearRecord, priorDocs, currentDocs []domain.DocumentRef, accounts []domain.Account, incomeStreams []domain.IncomeStream) []domain.ChecklistItem {
	var items []domain.ChecklistItem
	idx := 0
	next := func() string {
		id := fmt.Sprintf("checklist-%d-%d", year, idx)
		idx++
		return id
	}

	// Rule 1: one document item per prior-year document, received iff a
	// matching (form type, issuer) document has already been recorded this
	// year.
	for _, ref := range priorDocs {
		status := domain.StatusPending
		if documentReceived(ref, currentDocs) {
			status = domain.StatusReceived
		}
		items = append(items, domain.ChecklistItem{
			ID:     next(),
			Type:   domain.ChecklistDocument,
			Label:  fmt.Sprintf("%s from %s", ref.FormType, ref.IssuerName),
			Status: status,
		})
	}

	// Rule 2: each taxable account with a positive balance expects a
	// 1099-INT/DIV.
	for _, a := range accounts {
		if a.Type == domain.AccountTaxable && a.CurrentBalance.IsPositive() {
			items = append(items, domain.ChecklistItem{
				ID:     next(),
				Type:   domain.ChecklistIncome,
				Label:  fmt.Sprintf("1099-INT/DIV expected from %s", a.Name),
				Status: domain.StatusPending,
			})
		}
	}

	// Rule 3: each tax-deferred/Roth account expects a 1099-R, received iff a
	// current-year 1099-R's issuer matches the account name.
	for _, a := range accounts {
		if a.Type != domain.AccountTaxDeferred && a.Type != domain.AccountRoth {
			continue
		}
		status := domain.StatusPending
		if documentReceived(domain.DocumentRef{FormType: "1099-R", IssuerName: a.Name}, currentDocs) {
			status = domain.StatusReceived
		}
		items = append(items, domain.ChecklistItem{
			ID:     next(),
			Type:   domain.ChecklistDocument,
			Label:  fmt.Sprintf("1099-R from %s", a.Name),
			Status: status,
		})
	}

	// Rule 4: each income stream active in year gets an income item.
	for _, s := range incomeStreams {
		if s.Active(year, true, false) {
			items = append(items, domain.ChecklistItem{
				ID:     next(),
				Type:   domain.ChecklistIncome,
				Label:  fmt.Sprintf("Income expected from %s", s.Name),
				Status: domain.StatusPending,
			})
		}
	}

	if current != nil {
		// Rule 5: review item for each itemized deduction category with a
		// positive prior-year value.
		if prior != nil {
			for _, key := range sortedKeys(prior.ItemizedDeductions) {
				if prior.ItemizedDeductions[key].IsPositive() {
					items = append(items, domain.ChecklistItem{
						ID:     next(),
						Type:   domain.ChecklistDeduction,
						Label:  fmt.Sprintf("Review %s deduction", key),
						Status: domain.StatusPending,
					})
				}
			}
		}

		// Rule 6: filing-status or state-of-residence change is a life event.
		if prior != nil && (prior.FilingStatus != current.FilingStatus || prior.StateOfResidence != current.StateOfResidence) {
			items = append(items, domain.ChecklistItem{
				ID:     next(),
				Type:   domain.ChecklistLifeEvent,
				Label:  fmt.Sprintf("Filing status/residence changed from %s/%s to %s/%s; confirm details", prior.FilingStatus, prior.StateOfResidence, current.FilingStatus, current.StateOfResidence),
				Status: domain.StatusPending,
			})
		}

		// Rule 7: federal filing deadline.
		items = append(items, domain.ChecklistItem{
			ID:      next(),
			Type:    domain.ChecklistDeadline,
			Label:   "Federal return due",
			Status:  domain.StatusPending,
			DueDate: fmt.Sprintf("%04d-04-15", year+1),
		})

		// Rule 8: if prior year had estimated payments, four quarterly
		// deadlines for the current year.
		if prior != nil && prior.EstimatedPaymentsMade {
			for i, due := range []string{"04-15", "06-15", "09-15"} {
				items = append(items, domain.ChecklistItem{
					ID:      next(),
					Type:    domain.ChecklistDeadline,
					Label:   fmt.Sprintf("Estimated payment Q%d due", i+1),
					Status:  domain.StatusPending,
					DueDate: fmt.Sprintf("%04d-%s", year, due),
				})
			}
			items = append(items, domain.ChecklistItem{
				ID:      next(),
				Type:    domain.ChecklistDeadline,
				Label:   "Estimated payment Q4 due",
				Status:  domain.StatusPending,
				DueDate: fmt.Sprintf("%04d-01-15", year+1),
			})
		}
	}

	return items
}

func documentReceived(ref domain.DocumentRef, currentDocs []domain.DocumentRef) bool {
	for _, d := range currentDocs {
		if d.FormType == ref.FormType && anomaly.IssuersMatch(d.IssuerName, ref.IssuerName) {
			return true
		}
	}
	return false
}

func sortedKeys(m map[string]decimal.Decimal) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// CompletionPct returns completed/total*100, where "completed" is any status
// other than pending (spec §4.4).
func CompletionPct(items []domain.ChecklistItem) float64 {
	if len(items) == 0 {
		return 100.0
	}
	completed := 0
	for _, it := range items {
		if it.Status != domain.StatusPending {
			completed++
		}
	}
	return float64(completed) / float64(len(items)) * 100.0
}
