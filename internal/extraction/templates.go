// Package extraction identifies tax-form layouts in plain text and pulls
// labeled fields out of them via anchored regular expressions (spec §4.5).
// It is the one component built on the standard library's regexp package
// rather than a pack dependency: label-anchored free-text field extraction
// has no ecosystem library in the teacher or the rest of the pack, so the
// core parsing loop is stdlib (see DESIGN.md).
package extraction

import (
	"regexp"

	"github.com/retireplan/engine/internal/domain"
)

// DefaultConfidenceThreshold is the per-field bar below which a field is
// reported in lowConfidenceFields. IdentifyForm does not use it: any
// template with at least one matched identifier can be identified.
const DefaultConfidenceThreshold = 0.8

var (
	w2Template = domain.FormTemplate{
		FormType:        "W-2",
		FormIdentifiers: []string{"Form W-2", "Wage and Tax Statement"},
		Fields: []domain.FieldSpec{
			{Key: "wages", Label: "Wages, tips, other comp.", Box: "1", LabelPatterns: []string{`(?i)wages,?\s*tips,?\s*other\s*comp`}, ValueType: domain.ValueCurrency, Required: true},
			{Key: "federalWithheld", Label: "Federal income tax withheld", Box: "2", LabelPatterns: []string{`(?i)federal\s+income\s+tax\s+withheld`}, ValueType: domain.ValueCurrency, Required: true},
			{Key: "stateWithheld", Label: "State income tax", Box: "17", LabelPatterns: []string{`(?i)state\s+income\s+tax`}, ValueType: domain.ValueCurrency},
		},
	}

	form1099INT = domain.FormTemplate{
		FormType:        "1099-INT",
		FormIdentifiers: []string{"Form 1099-INT", "Interest Income"},
		Fields: []domain.FieldSpec{
			{Key: "interestIncome", Label: "Interest income", Box: "1", LabelPatterns: []string{`(?i)interest\s+income`}, ValueType: domain.ValueCurrency, Required: true},
		},
	}

	form1099DIV = domain.FormTemplate{
		FormType:        "1099-DIV",
		FormIdentifiers: []string{"Form 1099-DIV", "Dividends and Distributions"},
		Fields: []domain.FieldSpec{
			{Key: "ordinaryDividends", Label: "Total ordinary dividends", Box: "1a", LabelPatterns: []string{`(?i)total\s+ordinary\s+dividends`}, ValueType: domain.ValueCurrency, Required: true},
			{Key: "qualifiedDividends", Label: "Qualified dividends", Box: "1b", LabelPatterns: []string{`(?i)qualified\s+dividends`}, ValueType: domain.ValueCurrency},
			{Key: "capitalGainDistributions", Label: "Total capital gain distr.", Box: "2a", LabelPatterns: []string{`(?i)total\s+capital\s+gain\s+distr`}, ValueType: domain.ValueCurrency},
		},
	}

	form1099R = domain.FormTemplate{
		FormType:        "1099-R",
		FormIdentifiers: []string{"Form 1099-R", "Distributions From Pensions"},
		Fields: []domain.FieldSpec{
			{Key: "taxableAmount", Label: "Taxable amount", Box: "2a", LabelPatterns: []string{`(?i)taxable\s+amount`}, ValueType: domain.ValueCurrency, Required: true},
			{Key: "distributionCode", Label: "Distribution code", Box: "7", LabelPatterns: []string{`(?i)distribution\s+code`}, ValueType: domain.ValueCode},
		},
	}

	form1099B = domain.FormTemplate{
		FormType:        "1099-B",
		FormIdentifiers: []string{"Form 1099-B", "Proceeds From Broker"},
		Fields: []domain.FieldSpec{
			{Key: "proceeds", Label: "Proceeds", Box: "1d", LabelPatterns: []string{`(?i)proceeds`}, ValueType: domain.ValueCurrency, Required: true},
			{Key: "costBasis", Label: "Cost basis", Box: "1e", LabelPatterns: []string{`(?i)cost\s+basis`}, ValueType: domain.ValueCurrency},
			{Key: "gainLoss", Label: "Gain/loss", Box: "", LabelPatterns: []string{`(?i)gain\s*/?\s*loss`}, ValueType: domain.ValueCurrency},
		},
	}

	form1099MISC = domain.FormTemplate{
		FormType:        "1099-MISC",
		FormIdentifiers: []string{"Form 1099-MISC", "Miscellaneous Income"},
		Fields: []domain.FieldSpec{
			{Key: "rents", Label: "Rents", Box: "1", LabelPatterns: []string{`(?i)^rents`, `(?i)\brents\b`}, ValueType: domain.ValueCurrency},
			{Key: "otherIncome", Label: "Other income", Box: "3", LabelPatterns: []string{`(?i)other\s+income`}, ValueType: domain.ValueCurrency},
		},
	}

	form1099NEC = domain.FormTemplate{
		FormType:        "1099-NEC",
		FormIdentifiers: []string{"Form 1099-NEC", "Nonemployee Compensation"},
		Fields: []domain.FieldSpec{
			{Key: "nonemployeeCompensation", Label: "Nonemployee compensation", Box: "1", LabelPatterns: []string{`(?i)nonemployee\s+compensation`}, ValueType: domain.ValueCurrency, Required: true},
		},
	}

	form1098 = domain.FormTemplate{
		FormType:        "1098",
		FormIdentifiers: []string{"Form 1098", "Mortgage Interest Statement"},
		Fields: []domain.FieldSpec{
			{Key: "mortgageInterest", Label: "Mortgage interest received", Box: "1", LabelPatterns: []string{`(?i)mortgage\s+interest\s+received`}, ValueType: domain.ValueCurrency, Required: true},
		},
	}

	formK1 = domain.FormTemplate{
		FormType:        "K-1",
		FormIdentifiers: []string{"Schedule K-1", "Partner's Share"},
		Fields: []domain.FieldSpec{
			{Key: "interestIncome", Label: "Interest income", Box: "5", LabelPatterns: []string{`(?i)interest\s+income`}, ValueType: domain.ValueCurrency},
			{Key: "ordinaryDividends", Label: "Ordinary dividends", Box: "6a", LabelPatterns: []string{`(?i)ordinary\s+dividends`}, ValueType: domain.ValueCurrency},
			{Key: "qualifiedDividends", Label: "Qualified dividends", Box: "6b", LabelPatterns: []string{`(?i)qualified\s+dividends`}, ValueType: domain.ValueCurrency},
			{Key: "netRentalRealEstate", Label: "Net rental real estate income", Box: "2", LabelPatterns: []string{`(?i)net\s+rental\s+real\s+estate`}, ValueType: domain.ValueCurrency},
			{Key: "ordinaryBusinessIncome", Label: "Ordinary business income", Box: "1", LabelPatterns: []string{`(?i)ordinary\s+business\s+income`}, ValueType: domain.ValueCurrency},
			{Key: "netShortTermCapitalGain", Label: "Net short-term capital gain", Box: "8", LabelPatterns: []string{`(?i)net\s+short-term\s+capital\s+gain`}, ValueType: domain.ValueCurrency},
			{Key: "netLongTermCapitalGain", Label: "Net long-term capital gain", Box: "9a", LabelPatterns: []string{`(?i)net\s+long-term\s+capital\s+gain`}, ValueType: domain.ValueCurrency},
		},
	}

	// Templates is every supported form layout, in the tie-breaking order
	// IdentifyForm falls back to when two templates score equally.
	Templates = []domain.FormTemplate{
		w2Template, form1099INT, form1099DIV, form1099R, form1099B,
		form1099MISC, form1099NEC, form1098, formK1,
	}
)

var issuerCuePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)employer'?s?\s+name[,:]?\s*(.*)`),
	regexp.MustCompile(`(?i)payer'?s?\s+name[,:]?\s*(.*)`),
	regexp.MustCompile(`(?i)filer'?s?\s+name[,:]?\s*(.*)`),
	regexp.MustCompile(`(?i)lender'?s?\s+name[,:]?\s*(.*)`),
	regexp.MustCompile(`(?i)recipient'?s?\s+name[,:]?\s*(.*)`),
}

var einPattern = regexp.MustCompile(`(?i)(EIN[:\s]*)?\d{2}-\d{7}`)
