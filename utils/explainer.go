package utils

import (
	"fmt"
	"strings"

	"github.com/ThilankaPerera/AI-Bill-Explanator/dto"
)

var categoryLabels = map[dto.Category]string{
	dto.CategoryFixedCharges:      "Fixed charges",
	dto.CategoryUsageCharges:      "Usage charges",
	dto.CategoryTaxes:             "Taxes",
	dto.CategoryAdditionalCharges: "Additional charges",
	dto.CategoryDiscounts:         "Discounts",
	dto.CategoryOther:             "Other charges",
}

var fallbackTips = map[dto.BillType][]string{
	dto.BillTypeElectricity: {
		"Usage charges track your metered consumption; fixed charges apply regardless of use.",
		"Reducing consumption during peak hours has the biggest effect on the next bill.",
	},
	dto.BillTypeTelecom: {
		"Package rental is billed in advance; usage beyond the package is billed in arrears.",
		"Taxes on telecom services are levied on top of both rental and usage.",
	},
}

var fallbackTipsDefault = []string{
	"Fixed charges recur every period; usage charges depend on consumption.",
	"Question any charge category you cannot map to a service you received.",
}

// FallbackExplanation renders a deterministic Markdown explanation of a charge
// set. It is the substitute used whenever the language-model generator is
// unavailable, so it must never fail and must produce the same text for the
// same input.
func FallbackExplanation(charges dto.ChargeSet, fields dto.StructuredFields) string {
	var b strings.Builder

	b.WriteString("## Your Bill at a Glance\n\n")
	b.WriteString(fmt.Sprintf("The total amount on this bill is **Rs. %.2f**.\n\n", charges.TotalAmount))

	var categorized float64
	for _, category := range dto.AllCategories {
		categorized += charges.CategoryTotals[category]
	}

	if categorized > 0 {
		b.WriteString("### Where the money goes\n\n")
		for _, category := range dto.AllCategories {
			total := charges.CategoryTotals[category]
			if total == 0 {
				continue
			}
			percentage := total / categorized * 100
			b.WriteString(fmt.Sprintf("- %s: Rs. %.2f (%.1f%%)\n", categoryLabels[category], total, percentage))
		}
		b.WriteString("\n")
	}

	tips, ok := fallbackTips[fields.BillType]
	if !ok {
		tips = fallbackTipsDefault
	}
	b.WriteString("### Tips\n\n")
	for _, tip := range tips {
		b.WriteString("- " + tip + "\n")
	}

	return b.String()
}
