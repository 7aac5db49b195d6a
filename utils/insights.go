package utils

import "github.com/ThilankaPerera/AI-Bill-Explanator/dto"

var billTypeInsights = map[dto.BillType][]string{
	dto.BillTypeElectricity: {
		"Shift heavy appliance use to off-peak hours where time-of-use tariffs apply",
		"Compare the units consumed against the same month last year, not last month",
		"A sudden jump in usage charges with normal habits can indicate a faulty meter reading",
	},
	dto.BillTypeWater: {
		"A usage increase without a habit change often points to a hidden leak",
		"Check the meter reading on the bill against the physical meter",
	},
	dto.BillTypeTelecom: {
		"Review data add-ons and value-added services you may have been subscribed to",
		"Out-of-bundle usage is billed at much higher rates than package quotas",
	},
	dto.BillTypeHospital: {
		"Ask for an itemized breakdown of ward, drug and consultant fees",
		"Check which line items are claimable under your insurance policy",
	},
}

var genericInsights = []string{
	"Verify the account number on the bill matches your own records",
	"Keep this bill for comparison when the next one arrives",
	"Contact the provider's hotline if any charge looks unfamiliar",
}

// InsightsFor returns advisory text for a bill type. Unknown types get the
// generic advice only.
func InsightsFor(billType dto.BillType) []string {
	insights, ok := billTypeInsights[billType]
	if !ok {
		return genericInsights
	}
	return append(append([]string{}, insights...), genericInsights...)
}
