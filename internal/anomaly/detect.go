// Package anomaly flags year-over-year irregularities across a household's
// recorded tax years: documents that vanish without explanation, individual
// income fields that swing well outside their historical pattern, and
// multi-year trends that reverse direction (spec §4.3). There is no direct
// teacher analog; it is grounded on the teacher's general year-over-year
// comparison idiom (before/after structural diffing) adapted to field-level
// percent/dollar threshold comparison plus an issuer-name similarity matcher.
package anomaly

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/retireplan/engine/internal/domain"
	"github.com/shopspring/decimal"
)

// Default thresholds: a field anomaly requires both bars cleared, so a huge
// percent swing on a tiny dollar amount (or vice versa) doesn't fire.
const (
	defaultThresholdPct = 25.0
	defaultThresholdAbs = 5000.0
)

var noiseWords = map[string]bool{
	"inc": true, "llc": true, "corp": true, "ltd": true, "co": true, "the": true,
}

var punctuation = regexp.MustCompile(`[^\w\s]`)

// NormalizeIssuer lowercases name, strips punctuation and common entity
// suffixes, and collapses whitespace, so "Acme Corp." and "ACME CORP" both
// normalize to "acme". Only the short suffixes in noiseWords are stripped:
// "The Acme Corporation" normalizes to "acme corporation".
func NormalizeIssuer(name string) string {
	lower := strings.ToLower(name)
	stripped := punctuation.ReplaceAllString(lower, " ")
	fields := strings.Fields(stripped)
	kept := fields[:0]
	for _, f := range fields {
		if !noiseWords[f] {
			kept = append(kept, f)
		}
	}
	return strings.Join(kept, " ")
}

// IssuersMatch reports whether two issuer names refer to the same payer:
// exact match after normalization, or token-set Jaccard similarity >= 0.6.
func IssuersMatch(a, b string) bool {
	na, nb := NormalizeIssuer(a), NormalizeIssuer(b)
	if na == nb {
		return true
	}
	setA := tokenSet(na)
	setB := tokenSet(nb)
	if len(setA) == 0 || len(setB) == 0 {
		return false
	}
	return jaccard(setA, setB) >= 0.6
}

func tokenSet(s string) map[string]bool {
	set := make(map[string]bool)
	for _, tok := range strings.Fields(s) {
		set[tok] = true
	}
	return set
}

func jaccard(a, b map[string]bool) float64 {
	intersection := 0
	for tok := range a {
		if b[tok] {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

// docMatches reports whether any document in docs has the same form type and
// a matching issuer name as ref.
func docMatches(ref domain.DocumentRef, docs []domain.DocumentRef) bool {
	for _, d := range docs {
		if d.FormType == ref.FormType && IssuersMatch(d.IssuerName, ref.IssuerName) {
			return true
		}
	}
	return false
}

type trackedField struct {
	name   string
	access func(domain.TaxYearRecord) decimal.Decimal
}

var trackedFields = []trackedField{
	{"wages", func(r domain.TaxYearRecord) decimal.Decimal { return r.Wages }},
	{"interestIncome", func(r domain.TaxYearRecord) decimal.Decimal { return r.InterestIncome }},
	{"ordinaryDividends", func(r domain.TaxYearRecord) decimal.Decimal { return r.OrdinaryDividends }},
	{"retirementDistributions", func(r domain.TaxYearRecord) decimal.Decimal { return r.RetirementDistributions }},
	{"capitalGains", func(r domain.TaxYearRecord) decimal.Decimal { return r.CapitalGains }},
	{"socialSecurityBenefits", func(r domain.TaxYearRecord) decimal.Decimal { return r.SocialSecurityBenefits }},
	{"selfEmploymentIncome", func(r domain.TaxYearRecord) decimal.Decimal { return r.SelfEmploymentIncome }},
	{"rentsAndOther", func(r domain.TaxYearRecord) decimal.Decimal { return r.RentsAndOther }},
}

// Detect runs the year-over-year comparison for one (current, prior) pair,
// plus document-omission checks against the recorded document lists for each
// year (spec §4.3 rules 1 and 2). IDs are assigned by the caller's index
// sequence via DetectAcrossYears; called standalone, Detect numbers from 0.
func Detect(current domain.TaxYearRecord, prior *domain.TaxYearRecord, priorDocs, currentDocs []domain.DocumentRef) []domain.Anomaly {
	var anomalies []domain.Anomaly
	idx := 0
	next := func() string {
		id := fmt.Sprintf("anomaly-%d-%d", current.Year, idx)
		idx++
		return id
	}

	for _, ref := range priorDocs {
		if !docMatches(ref, currentDocs) {
			anomalies = append(anomalies, domain.Anomaly{
				ID:       next(),
				Kind:     domain.AnomalyDocumentOmission,
				Severity: domain.SeverityWarning,
				Field:    ref.FormType,
				Message:  fmt.Sprintf("%s from %s was filed in %d and is missing in %d", ref.FormType, ref.IssuerName, current.Year-1, current.Year),
			})
		}
	}

	if prior == nil {
		return anomalies
	}

	for _, f := range trackedFields {
		priorVal := f.access(*prior).InexactFloat64()
		curVal := f.access(current).InexactFloat64()

		if priorVal == 0 && curVal > 0 {
			anomalies = append(anomalies, domain.Anomaly{
				ID:           next(),
				Kind:         domain.AnomalyFieldChange,
				Severity:     domain.SeverityInfo,
				Field:        f.name,
				Message:      fmt.Sprintf("%s is a new income source in %d", f.name, current.Year),
				PriorValue:   priorVal,
				CurrentValue: curVal,
			})
			continue
		}
		if priorVal == 0 {
			continue
		}
		deltaAbs := curVal - priorVal
		deltaPct := deltaAbs / priorVal * 100
		if absF(deltaPct) > defaultThresholdPct && absF(deltaAbs) > defaultThresholdAbs {
			severity := domain.SeverityWarning
			if absF(deltaPct) > 2*defaultThresholdPct && absF(deltaAbs) > 2*defaultThresholdAbs {
				severity = domain.SeverityCritical
			}
			anomalies = append(anomalies, domain.Anomaly{
				ID:           next(),
				Kind:         domain.AnomalyFieldChange,
				Severity:     severity,
				Field:        f.name,
				Message:      fmt.Sprintf("%s changed %.1f%% ($%.2f) from %d to %d", f.name, deltaPct, deltaAbs, prior.Year, current.Year),
				PriorValue:   priorVal,
				CurrentValue: curVal,
			})
		}
	}
	return anomalies
}

func absF(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// DetectAcrossYears runs Detect pairwise over a sorted run of tax years plus
// the pattern-break rule (spec §4.3 rule 3, which needs at least 3 years of
// history), assigning deterministic anomaly-{year}-{index} IDs per year
// (a year's pattern breaks continue after its pairwise anomalies).
func DetectAcrossYears(records []domain.TaxYearRecord, docsByYear map[int][]domain.DocumentRef) []domain.Anomaly {
	sorted := make([]domain.TaxYearRecord, len(records))
	copy(sorted, records)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Year < sorted[j].Year })

	var all []domain.Anomaly
	nextIndex := make(map[int]int)
	for i, current := range sorted {
		var prior *domain.TaxYearRecord
		var priorDocs []domain.DocumentRef
		if i > 0 {
			prior = &sorted[i-1]
			priorDocs = docsByYear[prior.Year]
		}
		pairAnomalies := Detect(current, prior, priorDocs, docsByYear[current.Year])
		for j := range pairAnomalies {
			pairAnomalies[j].ID = fmt.Sprintf("anomaly-%d-%d", current.Year, j)
		}
		nextIndex[current.Year] = len(pairAnomalies)
		all = append(all, pairAnomalies...)
	}
	all = append(all, detectPatternBreaks(sorted, nextIndex)...)
	return all
}

// detectPatternBreaks implements rule 3: with at least 3 years of history, a
// trend reversal (the last two deltas have opposite signs) where the latest
// delta clears half the percent bar and the full dollar bar is salient enough
// to flag even though it isn't a simple magnitude swing.
func detectPatternBreaks(sorted []domain.TaxYearRecord, nextIndex map[int]int) []domain.Anomaly {
	var anomalies []domain.Anomaly
	if len(sorted) < 3 {
		return anomalies
	}
	for _, f := range trackedFields {
		for i := 2; i < len(sorted); i++ {
			v0 := f.access(sorted[i-2]).InexactFloat64()
			v1 := f.access(sorted[i-1]).InexactFloat64()
			v2 := f.access(sorted[i]).InexactFloat64()

			priorDelta := v1 - v0
			latestDelta := v2 - v1
			if priorDelta == 0 || latestDelta == 0 {
				continue
			}
			if (priorDelta > 0) == (latestDelta > 0) {
				continue
			}
			if v1 == 0 {
				continue
			}
			latestPct := absF(latestDelta) / absF(v1) * 100
			if absF(latestDelta) > defaultThresholdAbs && latestPct > defaultThresholdPct/2 {
				year := sorted[i].Year
				id := fmt.Sprintf("anomaly-%d-%d", year, nextIndex[year])
				nextIndex[year]++
				anomalies = append(anomalies, domain.Anomaly{
					ID:           id,
					Kind:         domain.AnomalyPatternBreak,
					Severity:     domain.SeverityWarning,
					Field:        f.name,
					Message:      fmt.Sprintf("%s reversed trend in %d after moving the other direction in %d", f.name, sorted[i].Year, sorted[i-1].Year),
					PriorValue:   v1,
					CurrentValue: v2,
				})
			}
		}
	}
	return anomalies
}
