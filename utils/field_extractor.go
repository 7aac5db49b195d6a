package utils

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/ThilankaPerera/AI-Bill-Explanator/dto"
)

// Amount candidates are collected from every pattern in order. The pool is
// deliberately not deduplicated: the same figure printed twice is two candidates.
var amountPatterns = []*regexp.Regexp{
	// Currency-prefixed: Rs. 1,250.00 / LKR 900
	regexp.MustCompile(`(?i)(?:rs\.?|lkr|₹)\s*([0-9][0-9,]*(?:\.[0-9]+)?)`),
	// Currency-suffixed: 1,250.00 Rs
	regexp.MustCompile(`(?i)([0-9][0-9,]*(?:\.[0-9]+)?)\s*(?:rs\.?|lkr)`),
	// Trailing-colon numeric at line end: "Amount Payable: 4,520.75"
	regexp.MustCompile(`(?m):\s*([0-9][0-9,]*(?:\.[0-9]+)?)\s*$`),
}

// Dates are collected as raw substrings, never parsed. Ambiguous or invalid
// dates are the consumer's problem.
var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b\d{1,2}[-/]\d{1,2}[-/]\d{2,4}\b`),
	regexp.MustCompile(`\b\d{4}[-/]\d{1,2}[-/]\d{1,2}\b`),
}

var accountPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)account\s*(?:no|number)?\s*[:#\-]?\s*([A-Za-z0-9\-]+)`),
	regexp.MustCompile(`(?i)reference\s*(?:no|number)?\s*[:#\-]?\s*([A-Za-z0-9\-]+)`),
	regexp.MustCompile(`(?i)bill\s*(?:no|number)?\s*[:#\-]?\s*([A-Za-z0-9\-]+)`),
}

// billTypeKeywords is checked in declaration order; the first bill type with
// any keyword present in the text wins. A hospital invoice that mentions "CEB"
// for unrelated reasons will therefore classify as electricity.
var billTypeKeywords = []struct {
	Type     dto.BillType
	Keywords []string
}{
	{dto.BillTypeElectricity, []string{"electricity", "ceb", "leco", "kwh"}},
	{dto.BillTypeWater, []string{"water", "nwsdb"}},
	{dto.BillTypeTelecom, []string{"dialog", "mobitel", "slt", "hutch", "airtel", "telecom", "broadband"}},
	{dto.BillTypeHospital, []string{"hospital", "medical", "patient", "channelling", "pharmacy"}},
}

// ExtractFields pulls amount, date and account-number candidates out of raw
// bill text and classifies the bill type. Pure function of the text.
func ExtractFields(text string) dto.StructuredFields {
	return dto.StructuredFields{
		Amounts:        extractAmounts(text),
		Dates:          extractDates(text),
		AccountNumbers: extractAccountNumbers(text),
		BillType:       classifyBillType(text),
	}
}

func extractAmounts(text string) []float64 {
	var amounts []float64
	for _, re := range amountPatterns {
		for _, match := range re.FindAllStringSubmatch(text, -1) {
			if len(match) < 2 {
				continue
			}
			amount, ok := ParseAmount(match[1])
			if !ok {
				// Malformed numeric token, drop the candidate.
				continue
			}
			amounts = append(amounts, amount)
		}
	}
	return amounts
}

// ParseAmount parses a numeric token with optional thousands separators.
// Returns false for tokens that do not survive strconv.
func ParseAmount(token string) (float64, bool) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(token), ",", "")
	amount, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return amount, true
}

func extractDates(text string) []string {
	var dates []string
	for _, re := range datePatterns {
		dates = append(dates, re.FindAllString(text, -1)...)
	}
	return dates
}

func extractAccountNumbers(text string) []string {
	var numbers []string
	for _, re := range accountPatterns {
		for _, match := range re.FindAllStringSubmatch(text, -1) {
			if len(match) > 1 && match[1] != "" {
				numbers = append(numbers, match[1])
			}
		}
	}
	return numbers
}

func classifyBillType(text string) dto.BillType {
	lower := strings.ToLower(text)
	for _, entry := range billTypeKeywords {
		for _, keyword := range entry.Keywords {
			if strings.Contains(lower, keyword) {
				return entry.Type
			}
		}
	}
	return dto.BillTypeUnknown
}
