package extraction

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/retireplan/engine/internal/domain"
)

// lookaheadChars bounds how far past a label match a field's value is
// searched for (spec §4.5: "the next ~100 characters of text").
const lookaheadChars = 100

// IdentifyForm scores every template by how many of its formIdentifiers
// appear in text and returns the highest scorer (ties broken by Templates
// order), plus a confidence in [0,1] — the fraction of that template's
// identifiers that matched. Returns (nil, 0) when no template has at least
// one identifier in text; DefaultConfidenceThreshold is not applied here.
func IdentifyForm(text string) (*domain.FormTemplate, float64) {
	var best *domain.FormTemplate
	bestScore := 0
	bestConfidence := 0.0

	for i := range Templates {
		tmpl := &Templates[i]
		matched := 0
		for _, ident := range tmpl.FormIdentifiers {
			if strings.Contains(text, ident) {
				matched++
			}
		}
		if matched == 0 {
			continue
		}
		if matched > bestScore {
			bestScore = matched
			best = tmpl
			bestConfidence = float64(matched) / float64(len(tmpl.FormIdentifiers))
		}
	}
	if best == nil {
		return nil, 0
	}
	return best, bestConfidence
}

// ExtractFields pulls every field in tmpl out of text and computes the
// overall confidence and low-confidence field list (spec §4.5).
func ExtractFields(text string, tmpl *domain.FormTemplate) domain.ExtractionResult {
	result := domain.ExtractionResult{
		FormType: tmpl.FormType,
		Fields:   make(map[string]domain.ExtractedField, len(tmpl.Fields)),
	}
	result.IssuerName = extractIssuerName(text)

	sum := 0.0
	for _, field := range tmpl.Fields {
		extracted := extractField(text, field)
		result.Fields[field.Key] = extracted
		sum += extracted.Confidence
		if extracted.Confidence < DefaultConfidenceThreshold {
			result.LowConfidenceFields = append(result.LowConfidenceFields, field.Key)
		}
	}
	if len(tmpl.Fields) > 0 {
		result.OverallConfidence = sum / float64(len(tmpl.Fields))
	}
	return result
}

func extractField(text string, spec domain.FieldSpec) domain.ExtractedField {
	for _, patternSrc := range spec.LabelPatterns {
		pattern, err := regexp.Compile(patternSrc)
		if err != nil {
			continue
		}
		locs := pattern.FindAllStringIndex(text, -1)
		if len(locs) == 0 {
			continue
		}
		switch spec.ValueType {
		case domain.ValueCode:
			if field, ok := extractCode(text, locs[0][1], spec.Key); ok {
				return field
			}
		default:
			if field, ok := extractCurrency(text, locs, spec.Key); ok {
				return field
			}
		}
	}
	return domain.ExtractedField{Key: spec.Key, Found: false}
}

// currencyToken matches one currency-shaped substring regardless of whether
// a "(" or "$" comes first: optional open-paren, optional sign (ASCII
// minus, en-dash, or Unicode minus), optional "$", digits/commas/decimal,
// optional close-paren.
var currencyToken = regexp.MustCompile(`(\()?[-−–]?\s*\$?\s*[\d,]+(?:\.\d+)?(\))?`)

const leadingMinusSet = "-−–"

// extractCurrency parses the currency value found after locs (one per label
// match), preferring the first $-prefixed value (confidence 1.0); falls back
// to a bare number (confidence 0.8) only when no later match of the same
// label carries a usable value, so the last label match's bare number wins.
func extractCurrency(text string, locs [][]int, key string) (domain.ExtractedField, bool) {
	var fallback *domain.ExtractedField
	for _, loc := range locs {
		window := windowAfter(text, loc[1])
		m := currencyToken.FindString(window)
		if m == "" {
			continue
		}
		amount, ok := parseCurrencyAmount(m)
		if !ok {
			continue
		}
		if strings.Contains(m, "$") {
			return domain.ExtractedField{Key: key, RawValue: m, Currency: amount, Confidence: 1.0, Found: true}, true
		}
		f := domain.ExtractedField{Key: key, RawValue: m, Currency: amount, Confidence: 0.8, Found: true}
		fallback = &f
	}
	if fallback != nil {
		return *fallback, true
	}
	return domain.ExtractedField{}, false
}

func extractCode(text string, from int, key string) (domain.ExtractedField, bool) {
	window := windowAfter(text, from)
	fields := strings.Fields(window)
	if len(fields) == 0 {
		return domain.ExtractedField{}, false
	}
	return domain.ExtractedField{Key: key, RawValue: fields[0], Code: fields[0], Confidence: 1.0, Found: true}, true
}

func windowAfter(text string, from int) string {
	end := from + lookaheadChars
	if end > len(text) {
		end = len(text)
	}
	if from > len(text) {
		return ""
	}
	return text[from:end]
}

// parseCurrencyAmount parses a matched currency token: strips "$" and
// commas, honors parenthesized negatives and a leading minus sign (ASCII,
// en-dash, or Unicode minus).
func parseCurrencyAmount(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	negative := false

	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = s[1 : len(s)-1]
	}
	s = strings.TrimSpace(s)
	for _, minus := range leadingMinusSet {
		if strings.HasPrefix(s, string(minus)) {
			negative = true
			s = strings.TrimSpace(s[len(string(minus)):])
			break
		}
	}
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	amount, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	if negative {
		amount = -amount
	}
	return amount, true
}

// extractIssuerName searches for a labeled cue line, captures its tail,
// strips EIN/TIN patterns, truncates at 3+ consecutive spaces, and clamps
// to 200 characters (spec §4.5). Defaults to "Unknown".
func extractIssuerName(text string) string {
	for _, cue := range issuerCuePatterns {
		m := cue.FindStringSubmatch(text)
		if m == nil || len(m) < 2 {
			continue
		}
		name := m[1]
		if idx := strings.Index(name, "\n"); idx >= 0 {
			name = name[:idx]
		}
		name = einPattern.ReplaceAllString(name, "")
		if idx := strings.Index(name, "   "); idx >= 0 {
			name = name[:idx]
		}
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if len(name) > 200 {
			name = name[:200]
		}
		return name
	}
	return "Unknown"
}
