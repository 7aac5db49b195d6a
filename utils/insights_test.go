package utils

import (
	"testing"

	"github.com/ThilankaPerera/AI-Bill-Explanator/dto"
	"github.com/stretchr/testify/assert"
)

func TestInsightsForKnownType(t *testing.T) {
	insights := InsightsFor(dto.BillTypeElectricity)

	assert.NotEmpty(t, insights)
	// Type-specific advice first, generic advice appended.
	assert.Contains(t, insights[0], "off-peak")
	assert.Contains(t, insights, genericInsights[0])
}

func TestInsightsForUnknownType(t *testing.T) {
	assert.Equal(t, genericInsights, InsightsFor(dto.BillTypeUnknown))
}

func TestFallbackExplanation(t *testing.T) {
	charges := dto.ChargeSet{
		TotalAmount: 4000.00,
		CategoryTotals: map[dto.Category]float64{
			dto.CategoryFixedCharges: 1000.00,
			dto.CategoryUsageCharges: 3000.00,
		},
	}
	fields := dto.StructuredFields{BillType: dto.BillTypeElectricity}

	text := FallbackExplanation(charges, fields)

	assert.Contains(t, text, "Rs. 4000.00")
	assert.Contains(t, text, "Fixed charges: Rs. 1000.00 (25.0%)")
	assert.Contains(t, text, "Usage charges: Rs. 3000.00 (75.0%)")
	assert.Contains(t, text, "peak hours")

	// Deterministic: identical input, identical text.
	assert.Equal(t, text, FallbackExplanation(charges, fields))
}

func TestFallbackExplanationDefaultTips(t *testing.T) {
	text := FallbackExplanation(dto.ChargeSet{TotalAmount: 900.00}, dto.StructuredFields{})
	assert.Contains(t, text, fallbackTipsDefault[0])
}
