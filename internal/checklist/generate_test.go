package checklist

import (
	"testing"

	"github.com/retireplan/engine/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

func baseRecord(year int) *domain.TaxYearRecord {
	return &domain.TaxYearRecord{
		Year:             year,
		FilingStatus:     domain.FilingMFJ,
		StateOfResidence: "CA",
	}
}

func TestGenerate_DocumentReceived(t *testing.T) {
	current := baseRecord(2025)
	priorDocs := []domain.DocumentRef{{FormType: "W-2", IssuerName: "Acme Corp"}}
	currentDocs := []domain.DocumentRef{{FormType: "W-2", IssuerName: "Acme Corp."}}

	items := Generate(2025, current, baseRecord(2024), priorDocs, currentDocs, nil, nil)

	var doc *domain.ChecklistItem
	for i := range items {
		if items[i].Type == domain.ChecklistDocument {
			doc = &items[i]
		}
	}
	if assert.NotNil(t, doc) {
		assert.Equal(t, domain.StatusReceived, doc.Status)
	}
}

func TestGenerate_DocumentPendingWhenNotYetMatched(t *testing.T) {
	current := baseRecord(2025)
	priorDocs := []domain.DocumentRef{{FormType: "1099-INT", IssuerName: "Big Bank"}}

	items := Generate(2025, current, baseRecord(2024), priorDocs, nil, nil, nil)

	var doc *domain.ChecklistItem
	for i := range items {
		if items[i].Type == domain.ChecklistDocument {
			doc = &items[i]
		}
	}
	if assert.NotNil(t, doc) {
		assert.Equal(t, domain.StatusPending, doc.Status)
	}
}

func TestGenerate_TaxableAccountExpectsIncomeDocument(t *testing.T) {
	accounts := []domain.Account{
		{ID: "brokerage", Name: "Brokerage", Type: domain.AccountTaxable, CurrentBalance: d(50000)},
		{ID: "empty", Name: "Empty Taxable", Type: domain.AccountTaxable, CurrentBalance: d(0)},
	}

	items := Generate(2025, baseRecord(2025), nil, nil, nil, accounts, nil)

	found := false
	for _, item := range items {
		if item.Type == domain.ChecklistIncome && item.Label == "1099-INT/DIV expected from Brokerage" {
			found = true
		}
		assert.NotEqual(t, "1099-INT/DIV expected from Empty Taxable", item.Label)
	}
	assert.True(t, found)
}

func TestGenerate_TaxDeferredAccountExpects1099R(t *testing.T) {
	accounts := []domain.Account{
		{ID: "ira", Name: "Traditional IRA", Type: domain.AccountTaxDeferred, CurrentBalance: d(200000)},
	}
	currentDocs := []domain.DocumentRef{{FormType: "1099-R", IssuerName: "Traditional IRA"}}

	items := Generate(2025, baseRecord(2025), nil, nil, currentDocs, accounts, nil)

	var doc *domain.ChecklistItem
	for i := range items {
		if items[i].Type == domain.ChecklistDocument && items[i].Label == "1099-R from Traditional IRA" {
			doc = &items[i]
		}
	}
	if assert.NotNil(t, doc) {
		assert.Equal(t, domain.StatusReceived, doc.Status)
	}
}

func TestGenerate_RothAccountAlsoExpects1099R(t *testing.T) {
	accounts := []domain.Account{
		{ID: "roth", Name: "Roth IRA", Type: domain.AccountRoth, CurrentBalance: d(90000)},
	}

	items := Generate(2025, baseRecord(2025), nil, nil, nil, accounts, nil)

	found := false
	for _, item := range items {
		if item.Type == domain.ChecklistDocument && item.Label == "1099-R from Roth IRA" {
			found = true
			assert.Equal(t, domain.StatusPending, item.Status)
		}
	}
	assert.True(t, found)
}

func TestGenerate_ActiveIncomeStreamExpectsIncomeItem(t *testing.T) {
	streams := []domain.IncomeStream{
		{ID: "pension", Name: "State Pension", StartYear: 2020, AnnualAmount: d(30000)},
	}

	items := Generate(2025, baseRecord(2025), nil, nil, nil, nil, streams)

	found := false
	for _, item := range items {
		if item.Type == domain.ChecklistIncome && item.Label == "Income expected from State Pension" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestGenerate_InactiveIncomeStreamOmitted(t *testing.T) {
	endYear := 2019
	streams := []domain.IncomeStream{
		{ID: "old", Name: "Old Contract", StartYear: 2015, EndYear: &endYear, AnnualAmount: d(10000)},
	}

	items := Generate(2025, baseRecord(2025), nil, nil, nil, nil, streams)

	for _, item := range items {
		assert.NotEqual(t, "Income expected from Old Contract", item.Label)
	}
}

func TestGenerate_ItemizedDeductionReview(t *testing.T) {
	prior := baseRecord(2024)
	prior.ItemizedDeductions = map[string]decimal.Decimal{"mortgageInterest": d(8000)}
	current := baseRecord(2025)
	current.UseItemized = true

	items := Generate(2025, current, prior, nil, nil, nil, nil)

	found := false
	for _, item := range items {
		if item.Type == domain.ChecklistDeduction {
			found = true
		}
	}
	assert.True(t, found)
}

func TestGenerate_FilingStatusChangeIsLifeEvent(t *testing.T) {
	prior := baseRecord(2024)
	prior.FilingStatus = domain.FilingMFJ
	current := baseRecord(2025)
	current.FilingStatus = domain.FilingSurvivor

	items := Generate(2025, current, prior, nil, nil, nil, nil)

	found := false
	for _, item := range items {
		if item.Type == domain.ChecklistLifeEvent {
			found = true
		}
	}
	assert.True(t, found)
}

func TestGenerate_FilingDeadlineAlwaysPresent(t *testing.T) {
	items := Generate(2025, baseRecord(2025), nil, nil, nil, nil, nil)
	found := false
	for _, item := range items {
		if item.Type == domain.ChecklistDeadline && item.DueDate == "2026-04-15" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestGenerate_EstimatedPaymentDeadlinesFromPriorYear(t *testing.T) {
	prior := baseRecord(2024)
	prior.EstimatedPaymentsMade = true
	current := baseRecord(2025)

	items := Generate(2025, current, prior, nil, nil, nil, nil)

	count := 0
	for _, item := range items {
		if item.Type == domain.ChecklistDeadline {
			count++
		}
	}
	// 1 federal filing deadline + 4 quarterly estimated deadlines.
	assert.Equal(t, 5, count)
}

func TestCompletionPct(t *testing.T) {
	items := []domain.ChecklistItem{
		{Status: domain.StatusDone},
		{Status: domain.StatusReceived},
		{Status: domain.StatusPending},
		{Status: domain.StatusPending},
	}
	assert.InDelta(t, 50.0, CompletionPct(items), 0.001)
}

func TestCompletionPct_Empty(t *testing.T) {
	assert.Equal(t, 100.0, CompletionPct(nil))
}
