package utils

import (
	"testing"

	"github.com/ThilankaPerera/AI-Bill-Explanator/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleBillText = `
	Ceylon Electricity Board
	Account No: 4012-556677
	Fixed Charge 540.00
	Energy Charge 120 kWh 3,250.50
	Fuel Surcharge 180.25
	VAT 15% 450.00
	Late Fee Charge  1250.00
	Loyalty Discount 100.00
	Amount Payable: 5,670.75
`

func TestCategorizeCharges(t *testing.T) {
	fields := ExtractFields(sampleBillText)
	charges := CategorizeCharges(sampleBillText, fields)

	require.NotEmpty(t, charges.LineItems)
	assert.Equal(t, 5670.75, charges.TotalAmount)

	byDescription := make(map[string]dto.LineItem)
	for _, item := range charges.LineItems {
		byDescription[item.Description] = item
	}

	assert.Equal(t, dto.CategoryFixedCharges, byDescription["Fixed Charge"].Category)
	assert.Equal(t, dto.CategoryUsageCharges, byDescription["Energy Charge 120 kWh"].Category)
	assert.Equal(t, dto.CategoryTaxes, byDescription["VAT 15%"].Category)
	assert.Equal(t, dto.CategoryAdditionalCharges, byDescription["Late Fee Charge"].Category)
	assert.Equal(t, dto.CategoryDiscounts, byDescription["Loyalty Discount"].Category)
	assert.Equal(t, 1250.00, byDescription["Late Fee Charge"].Amount)
}

func TestCategorizeChargesIdempotent(t *testing.T) {
	fields := ExtractFields(sampleBillText)

	first := CategorizeCharges(sampleBillText, fields)
	second := CategorizeCharges(sampleBillText, fields)

	assert.Equal(t, first, second)
}

func TestCategoryTotalsInvariant(t *testing.T) {
	fields := ExtractFields(sampleBillText)
	charges := CategorizeCharges(sampleBillText, fields)

	for category, items := range charges.ItemsByCategory {
		var sum float64
		for _, item := range items {
			sum += item.Amount
		}
		assert.Equal(t, sum, charges.CategoryTotals[category], "category %s", category)
	}
	for category := range charges.CategoryTotals {
		assert.NotEmpty(t, charges.ItemsByCategory[category])
	}
}

func TestShortDescriptionsFiltered(t *testing.T) {
	text := "ABC 120.00\n1 540.00\n2\nService Charges 340.00"
	charges := CategorizeCharges(text, dto.StructuredFields{})

	require.Len(t, charges.LineItems, 1)
	assert.Equal(t, "Service Charges", charges.LineItems[0].Description)
	for _, item := range charges.LineItems {
		assert.Greater(t, len(item.Description), 3)
	}
}

func TestTotalFallsBackToLargestCandidate(t *testing.T) {
	// No recognizable label anywhere in the text, so the largest candidate
	// from the pool stands in for the grand total.
	text := "Fixed Charge 85.00\nEnergy Charge 340.25"
	fields := dto.StructuredFields{Amounts: []float64{1200.50, 85.00, 340.25}}

	charges := CategorizeCharges(text, fields)

	assert.Equal(t, 1200.50, charges.TotalAmount)
}

func TestTotalZeroWhenNoCandidates(t *testing.T) {
	charges := CategorizeCharges("no figures here", dto.StructuredFields{})
	assert.Equal(t, 0.0, charges.TotalAmount)
}

func TestExplicitTotalBeatsCandidatePool(t *testing.T) {
	text := "Deposit held 9,999.00\nTotal Amount Due: Rs. 4,520.75"
	fields := dto.StructuredFields{Amounts: []float64{9999.00, 4520.75}}

	charges := CategorizeCharges(text, fields)

	assert.Equal(t, 4520.75, charges.TotalAmount)
}

func TestAmountBeforeLabelTotal(t *testing.T) {
	text := "5,670.75 Total for this period"
	charges := CategorizeCharges(text, dto.StructuredFields{})

	assert.Equal(t, 5670.75, charges.TotalAmount)
}
