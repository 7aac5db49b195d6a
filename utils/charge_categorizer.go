package utils

import (
	"regexp"
	"strings"

	"github.com/ThilankaPerera/AI-Bill-Explanator/dto"
)

// categoryKeywords is matched per line item in this priority order; the first
// category with a keyword substring in the lowered description wins.
// Matching is substring-based, not tokenized ("kwh" matches inside any word).
var categoryKeywords = []struct {
	Category dto.Category
	Keywords []string
}{
	{dto.CategoryFixedCharges, []string{"fixed charge", "rental", "basic charge", "standing charge"}},
	{dto.CategoryUsageCharges, []string{"usage", "consumption", "units", "kwh", "mb", "gb"}},
	{dto.CategoryTaxes, []string{"vat", "tax", "levy", "nbt", "cess"}},
	{dto.CategoryAdditionalCharges, []string{"surcharge", "penalty", "late fee", "reconnection", "interest"}},
	{dto.CategoryDiscounts, []string{"discount", "concession", "rebate", "waiver"}},
}

// lineAmountPattern matches a numeric token anchored at the end of a line.
var lineAmountPattern = regexp.MustCompile(`([0-9][0-9,]*(?:\.[0-9]+)?)\s*$`)

// trailingCurrencyPattern strips a currency marker left dangling at the end of
// a description once the amount has been peeled off ("Late Fee Rs. 1,250.00").
var trailingCurrencyPattern = regexp.MustCompile(`(?i)(?:rs\.?|lkr|₹)\s*$`)

// Explicit total labels, symmetric: label before amount and amount before label.
// First match wins, label-first checked first.
var totalPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:grand\s+total|total\s+amount|amount\s+due|amount\s+payable|total\s+due|net\s+amount|total)\s*[:\-]?\s*(?:rs\.?|lkr|₹)?\s*([0-9][0-9,]*(?:\.[0-9]+)?)`),
	regexp.MustCompile(`(?i)(?:rs\.?|lkr|₹)?\s*([0-9][0-9,]*(?:\.[0-9]+)?)\s*(?:grand\s+total|total\s+amount|amount\s+due|amount\s+payable|total)`),
}

// CategorizeCharges splits raw bill text into line items, classifies each into
// a charge category and aggregates per-category totals. Pure and idempotent:
// identical input yields an identical ChargeSet.
func CategorizeCharges(text string, fields dto.StructuredFields) dto.ChargeSet {
	charges := dto.ChargeSet{
		CategoryTotals:  make(map[dto.Category]float64),
		ItemsByCategory: make(map[dto.Category][]dto.LineItem),
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		loc := lineAmountPattern.FindStringSubmatchIndex(line)
		if loc == nil {
			continue
		}

		amount, ok := ParseAmount(line[loc[2]:loc[3]])
		if !ok || amount < 0 {
			continue
		}

		description := strings.TrimSpace(line[:loc[0]])
		description = trailingCurrencyPattern.ReplaceAllString(description, "")
		description = strings.TrimRight(description, " \t:-")
		// Anything this short is noise: page numbers, stray figures, column
		// artifacts. Short genuine descriptions are knowingly sacrificed.
		if len(description) <= 3 {
			continue
		}

		item := dto.LineItem{
			Description: description,
			Amount:      amount,
			Category:    classifyCategory(description),
		}
		charges.LineItems = append(charges.LineItems, item)
		charges.ItemsByCategory[item.Category] = append(charges.ItemsByCategory[item.Category], item)
		charges.CategoryTotals[item.Category] += item.Amount
	}

	charges.TotalAmount = resolveTotal(text, fields)
	return charges
}

func classifyCategory(description string) dto.Category {
	lower := strings.ToLower(description)
	for _, entry := range categoryKeywords {
		for _, keyword := range entry.Keywords {
			if strings.Contains(lower, keyword) {
				return entry.Category
			}
		}
	}
	return dto.CategoryOther
}

// resolveTotal finds the bill's grand total. An explicitly labelled total wins;
// otherwise the largest amount candidate stands in for it, since the grand
// total is typically the largest single figure printed on a bill.
func resolveTotal(text string, fields dto.StructuredFields) float64 {
	for _, re := range totalPatterns {
		if match := re.FindStringSubmatch(text); len(match) > 1 {
			if amount, ok := ParseAmount(match[1]); ok {
				return amount
			}
		}
	}

	var max float64
	for _, amount := range fields.Amounts {
		if amount > max {
			max = amount
		}
	}
	return max
}
