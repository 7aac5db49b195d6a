package utils

import (
	"fmt"
	"strings"

	"github.com/ThilankaPerera/AI-Bill-Explanator/dto"
)

const (
	// highTotalThreshold is a nominal value for one regional market, in
	// currency units. Exceeding it strictly triggers the high_total rule.
	highTotalThreshold = 50000.0

	// Expected VAT-like tax rate is 15%; the band is +/- 3 points.
	taxRatioLowerBound = 12.0
	taxRatioUpperBound = 18.0
)

var penaltyKeywords = []string{"penalty", "late fee", "interest", "arrears"}

// DetectAnomalies runs the heuristic rule set over a categorized charge set.
// Rules evaluate independently and all applicable rules fire; findings come
// out in rule declaration order, then item order within a rule. Missing data
// suppresses a rule silently, it never errors.
func DetectAnomalies(charges dto.ChargeSet) []dto.Anomaly {
	var anomalies []dto.Anomaly

	if charges.TotalAmount > highTotalThreshold {
		anomalies = append(anomalies, dto.Anomaly{
			Kind:       dto.AnomalyHighTotal,
			Severity:   dto.SeverityWarning,
			Message:    fmt.Sprintf("Bill total of %.2f is unusually high", charges.TotalAmount),
			Suggestion: "Compare with your previous bills and verify the usage readings",
		})
	}

	for _, item := range charges.LineItems {
		lower := strings.ToLower(item.Description)
		for _, keyword := range penaltyKeywords {
			if strings.Contains(lower, keyword) {
				anomalies = append(anomalies, dto.Anomaly{
					Kind:       dto.AnomalyPenaltyCharge,
					Severity:   dto.SeverityAlert,
					Message:    fmt.Sprintf("Penalty charge found: %s (%.2f)", item.Description, item.Amount),
					Suggestion: "Pay before the due date to avoid this charge next month",
				})
				break
			}
		}
	}

	if taxes := charges.CategoryTotals[dto.CategoryTaxes]; taxes > 0 {
		if other := charges.TotalAmount - taxes; other > 0 {
			vatPercentage := taxes / other * 100
			if vatPercentage > taxRatioUpperBound || vatPercentage < taxRatioLowerBound {
				anomalies = append(anomalies, dto.Anomaly{
					Kind:       dto.AnomalyUnusualTax,
					Severity:   dto.SeverityInfo,
					Message:    fmt.Sprintf("Tax amounts to %.1f%% of the pre-tax charges, outside the usual range", vatPercentage),
					Suggestion: "Check whether all tax line items belong on this bill",
				})
			}
		}
	}

	return anomalies
}
