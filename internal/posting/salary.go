package posting

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	amountRegex = regexp.MustCompile(`([$€£])\s?(\d{1,3}(?:,\d{3})+|\d+(?:\.\d+)?)\s*([kK])?`)
	periodRegex = regexp.MustCompile(`(?i)\b(?:a|per|/)\s*(year|yr|month|mo|hour|hr)\b`)
)

// SalaryRange is the compensation band shown on a posting.
type SalaryRange struct {
	Currency string
	Min      int
	Max      int
	Period   string
	Raw      string
}

// ParseSalaryRange extracts the band from text like "$100,000 - $150,000 a year".
// A single amount yields Min == Max. ok is false when no amount is present.
func ParseSalaryRange(text string) (SalaryRange, bool) {
	matches := amountRegex.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return SalaryRange{}, false
	}

	var amounts []int
	for _, m := range matches {
		n, ok := parseAmount(m[2], m[3] != "")
		if !ok {
			continue
		}
		amounts = append(amounts, n)
	}
	if len(amounts) == 0 {
		return SalaryRange{}, false
	}

	r := SalaryRange{
		Currency: matches[0][1],
		Min:      amounts[0],
		Max:      amounts[0],
		Raw:      strings.TrimSpace(text),
	}
	if len(amounts) > 1 {
		r.Max = amounts[1]
	}
	//some postings list the band high to low
	if r.Min > r.Max {
		r.Min, r.Max = r.Max, r.Min
	}

	if m := periodRegex.FindStringSubmatch(text); m != nil {
		r.Period = normalizePeriod(m[1])
	}
	return r, true
}

func parseAmount(digits string, thousands bool) (int, bool) {
	f, err := strconv.ParseFloat(strings.ReplaceAll(digits, ",", ""), 64)
	if err != nil {
		return 0, false
	}
	if thousands {
		f *= 1000
	}
	return int(f), true
}

func normalizePeriod(p string) string {
	switch strings.ToLower(p) {
	case "year", "yr":
		return "year"
	case "month", "mo":
		return "month"
	default:
		return "hour"
	}
}
