package extraction

import (
	"testing"

	"github.com/retireplan/engine/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestIdentifyForm_W2(t *testing.T) {
	text := "Form W-2 Wage and Tax Statement 2025\nEmployer's name, address: Acme Corp\n1 Wages, tips, other comp. $80,000.00"
	tmpl, confidence := IdentifyForm(text)
	if assert.NotNil(t, tmpl) {
		assert.Equal(t, "W-2", tmpl.FormType)
	}
	assert.Greater(t, confidence, 0.0)
}

func TestIdentifyForm_NoMatch(t *testing.T) {
	tmpl, confidence := IdentifyForm("just some random unrelated text")
	assert.Nil(t, tmpl)
	assert.Equal(t, 0.0, confidence)
}

func TestExtractFields_W2DollarPrefixed(t *testing.T) {
	text := "Form W-2 Wage and Tax Statement\nEmployer's name: Acme Corp\n1 Wages, tips, other comp. $80,000.00\n2 Federal income tax withheld $15,000.00"
	tmpl, _ := IdentifyForm(text)
	result := ExtractFields(text, tmpl)

	assert.Equal(t, "W-2", result.FormType)
	assert.Equal(t, "Acme Corp", result.IssuerName)
	assert.InDelta(t, 80000.0, result.Fields["wages"].Currency, 0.01)
	assert.Equal(t, 1.0, result.Fields["wages"].Confidence)
	assert.InDelta(t, 15000.0, result.Fields["federalWithheld"].Currency, 0.01)
}

func TestExtractFields_ParenthesizedNegative(t *testing.T) {
	text := "Form 1099-B Proceeds From Broker\nProceeds $10,000.00\nCost basis $12,000.00\nGain/Loss ($2,000.00)"
	tmpl, _ := IdentifyForm(text)
	result := ExtractFields(text, tmpl)
	assert.InDelta(t, -2000.0, result.Fields["gainLoss"].Currency, 0.01)
}

func TestExtractFields_LeadingMinusSign(t *testing.T) {
	text := "Form 1099-B Proceeds From Broker\nProceeds $5,000.00\nCost basis $6,500.00\nGain/Loss -1,500.00"
	tmpl, _ := IdentifyForm(text)
	result := ExtractFields(text, tmpl)
	assert.InDelta(t, -1500.0, result.Fields["gainLoss"].Currency, 0.01)
}

func TestExtractFields_BareNumberFallback(t *testing.T) {
	text := "Form 1099-INT Interest Income\nInterest income 2500.00"
	tmpl, _ := IdentifyForm(text)
	result := ExtractFields(text, tmpl)
	assert.InDelta(t, 2500.0, result.Fields["interestIncome"].Currency, 0.01)
	assert.Equal(t, 0.8, result.Fields["interestIncome"].Confidence)
}

func TestExtractFields_DollarMatchWinsOverHeaderBareNumber(t *testing.T) {
	// The header line's label match is immediately followed by a bare
	// number that looks like a year, not a value; the later, $-prefixed
	// match on the real field line must win instead.
	text := "Form 1099-INT Interest Income 2025\nBox 1 Interest income $2,500.00"
	tmpl, _ := IdentifyForm(text)
	result := ExtractFields(text, tmpl)
	assert.InDelta(t, 2500.0, result.Fields["interestIncome"].Currency, 0.01)
	assert.Equal(t, 1.0, result.Fields["interestIncome"].Confidence)
}

func TestExtractFields_LowConfidenceFlaggedWhenMissing(t *testing.T) {
	text := "Form 1099-DIV Dividends and Distributions\nTotal ordinary dividends $500.00"
	tmpl, _ := IdentifyForm(text)
	result := ExtractFields(text, tmpl)
	assert.Contains(t, result.LowConfidenceFields, "qualifiedDividends")
	assert.NotContains(t, result.LowConfidenceFields, "ordinaryDividends")
}

func TestExtractIssuerName_StripsEINAndTruncates(t *testing.T) {
	text := "Payer's name: Big Bank NA   EIN: 12-3456789   more stuff"
	name := extractIssuerName(text)
	assert.Equal(t, "Big Bank NA", name)
}

func TestExtractIssuerName_DefaultsUnknown(t *testing.T) {
	assert.Equal(t, "Unknown", extractIssuerName("no issuer cues here"))
}

func TestAggregate_GT11MultiFormDocument(t *testing.T) {
	w2A := "Form W-2 Wage and Tax Statement\nEmployer's name: Employer A\n1 Wages, tips, other comp. $80,000.00\n2 Federal income tax withheld $15,000.00"
	w2B := "Form W-2 Wage and Tax Statement\nEmployer's name: Employer B\n1 Wages, tips, other comp. $45,000.00\n2 Federal income tax withheld $8,500.00"
	int1099 := "Form 1099-INT Interest Income\nPayer's name: Some Bank\nInterest income $2,500.00"

	tmplA, _ := IdentifyForm(w2A)
	tmplB, _ := IdentifyForm(w2B)
	tmplC, _ := IdentifyForm(int1099)

	rA := ExtractFields(w2A, tmplA)
	rB := ExtractFields(w2B, tmplB)
	rC := ExtractFields(int1099, tmplC)

	agg := Aggregate([]domain.ExtractionResult{rA, rB, rC})

	assert.InDelta(t, 125000.0, agg.Wages, 0.01)
	assert.InDelta(t, 2500.0, agg.InterestIncome, 0.01)
	assert.InDelta(t, 23500.0, agg.FederalWithheld, 0.01)
	assert.Equal(t, 3, agg.DocumentCount)
}
