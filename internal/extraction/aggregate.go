package extraction

import "github.com/retireplan/engine/internal/domain"

// Aggregate sums extracted fields across documents into one income/
// withholding total, form type by form type (spec §4.5). Unknown or
// unrecognized form types (and 1098) do not contribute.
func Aggregate(results []domain.ExtractionResult) domain.AggregatedIncome {
	var agg domain.AggregatedIncome

	for _, r := range results {
		agg.DocumentCount++
		switch r.FormType {
		case "W-2":
			agg.Wages += value(r, "wages")
			agg.FederalWithheld += value(r, "federalWithheld")
			agg.StateWithheld += value(r, "stateWithheld")
		case "1099-INT":
			agg.InterestIncome += value(r, "interestIncome")
		case "1099-DIV":
			agg.Dividends += value(r, "ordinaryDividends")
			agg.QualifiedDividends += value(r, "qualifiedDividends")
			agg.CapitalGainDistributions += value(r, "capitalGainDistributions")
		case "1099-R":
			agg.RetirementDistributions += value(r, "taxableAmount")
		case "1099-B":
			gainLoss := value(r, "gainLoss")
			if gainLoss == 0 {
				gainLoss = value(r, "proceeds") - value(r, "costBasis")
			}
			if gainLoss >= 0 {
				agg.CapitalGains += gainLoss
			} else {
				agg.CapitalLosses += -gainLoss
			}
		case "1099-MISC":
			agg.Rents += value(r, "rents")
			agg.OtherIncome += value(r, "otherIncome")
		case "1099-NEC":
			agg.SelfEmploymentIncome += value(r, "nonemployeeCompensation")
		case "K-1":
			agg.InterestIncome += value(r, "interestIncome")
			agg.Dividends += value(r, "ordinaryDividends")
			agg.QualifiedDividends += value(r, "qualifiedDividends")
			agg.Rents += value(r, "netRentalRealEstate")
			agg.OtherIncome += value(r, "ordinaryBusinessIncome")

			shortTerm := value(r, "netShortTermCapitalGain")
			if shortTerm >= 0 {
				agg.CapitalGains += shortTerm
			} else {
				agg.CapitalLosses += -shortTerm
			}
			longTerm := value(r, "netLongTermCapitalGain")
			if longTerm >= 0 {
				agg.CapitalGains += longTerm
			} else {
				agg.CapitalLosses += -longTerm
			}
		case "1098":
			// mortgage interest paid is a deduction input, not income; no
			// contribution to AggregatedIncome.
		}
	}
	return agg
}

func value(r domain.ExtractionResult, key string) float64 {
	if field, ok := r.Fields[key]; ok && field.Found {
		return field.Currency
	}
	return 0
}
