package posting

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NormalizeText lowercases s, strips diacritics and collapses whitespace.
func NormalizeText(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, err := transform.String(t, s)
	if err != nil {
		result = s
	}
	return strings.Join(strings.Fields(strings.ToLower(result)), " ")
}

// KeywordPattern is the case-insensitive text selector body for a keyword,
// e.g. "/python/i". Regex metacharacters in the keyword are escaped. Accents
// are kept since the page text is matched as rendered.
func KeywordPattern(keyword string) string {
	k := strings.Join(strings.Fields(strings.ToLower(keyword)), " ")
	return "/" + regexp.QuoteMeta(k) + "/i"
}

// MentionsKeyword reports whether text mentions keyword as a whole word,
// ignoring case and accents.
func MentionsKeyword(text, keyword string) bool {
	k := NormalizeText(keyword)
	if k == "" {
		return false
	}
	re, err := regexp.Compile(`(^|[^\pL\pN])` + regexp.QuoteMeta(k) + `($|[^\pL\pN])`)
	if err != nil {
		return false
	}
	return re.MatchString(NormalizeText(text))
}
