package imagegen

import (
	"regexp"
	"slices"
	"strings"
	"unicode"
)

var requestPhraseRes = compilePhrases(requestPhrases)

func compilePhrases(phrases []string) []*regexp.Regexp {
	res := make([]*regexp.Regexp, len(phrases))
	for i, p := range phrases {
		res[i] = regexp.MustCompile("(?i)" + regexp.QuoteMeta(p))
	}
	return res
}

// Styles returns the supported styles in detection order.
func Styles() []Style {
	return slices.Clone(styles)
}

// DetectStyle returns the first style whose name, with underscores read
// as spaces, appears in the query.
func DetectStyle(query string) string {
	lower := strings.ToLower(query)
	for _, s := range styles {
		if strings.Contains(lower, strings.ReplaceAll(s.Name, "_", " ")) {
			return s.Name
		}
	}
	return ""
}

// StripRequestPhrase drops everything up to and including the first
// matching request phrase. Matching is case-insensitive; the rest of the
// query keeps its case.
func StripRequestPhrase(query string) string {
	for _, re := range requestPhraseRes {
		if loc := re.FindStringIndex(query); loc != nil {
			return strings.TrimSpace(query[loc[1]:])
		}
	}
	return query
}

// SafeFileName keeps the first runes of prompt that are letters, digits,
// spaces, dashes or underscores, and turns spaces into underscores.
func SafeFileName(prompt string) string {
	r := []rune(prompt)
	if len(r) > fileNamePromptLen {
		r = r[:fileNamePromptLen]
	}

	var b strings.Builder
	for _, c := range r {
		if unicode.IsLetter(c) || unicode.IsDigit(c) || c == ' ' || c == '-' || c == '_' {
			b.WriteRune(c)
		}
	}
	return strings.ReplaceAll(strings.TrimSpace(b.String()), " ", "_")
}

func ValidSize(size string) bool {
	return slices.Contains(Sizes, size)
}

func ValidQuality(quality string) bool {
	return slices.Contains(Qualities, quality)
}
