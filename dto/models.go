package dto

// BillType classifies the issuer of a bill.
type BillType string

const (
	BillTypeElectricity BillType = "electricity"
	BillTypeWater       BillType = "water"
	BillTypeTelecom     BillType = "telecom"
	BillTypeHospital    BillType = "hospital"
	BillTypeUnknown     BillType = ""
)

// Category is the closed set of charge categories a line item can belong to.
type Category string

const (
	CategoryFixedCharges      Category = "fixed_charges"
	CategoryUsageCharges      Category = "usage_charges"
	CategoryTaxes             Category = "taxes"
	CategoryAdditionalCharges Category = "additional_charges"
	CategoryDiscounts         Category = "discounts"
	CategoryOther             Category = "other"
)

// AllCategories lists every category in classification priority order.
// CategoryOther is last because it is the fallback, never matched by keyword.
var AllCategories = []Category{
	CategoryFixedCharges,
	CategoryUsageCharges,
	CategoryTaxes,
	CategoryAdditionalCharges,
	CategoryDiscounts,
	CategoryOther,
}

// RawDocument is the ingestor's output for a single PDF. Immutable once produced.
type RawDocument struct {
	Text           string            `json:"text"`
	Tables         [][][]string      `json:"tables,omitempty"`
	PageCount      int               `json:"page_count"`
	SourceMetadata map[string]string `json:"source_metadata,omitempty"`
}

// StructuredFields holds the regex-extracted candidates from the raw bill text.
// Amounts is a candidate pool: duplicates are allowed and nothing is validated
// beyond parsing as a number.
type StructuredFields struct {
	Amounts        []float64 `json:"amounts"`
	Dates          []string  `json:"dates"`
	AccountNumbers []string  `json:"account_numbers"`
	BillType       BillType  `json:"bill_type,omitempty"`
}

// LineItem is one categorized charge entry.
type LineItem struct {
	Description string   `json:"description"`
	Amount      float64  `json:"amount"`
	Category    Category `json:"category"`
}

// ChargeSet is the categorizer's output. CategoryTotals is always recomputed
// from ItemsByCategory, never adjusted independently.
type ChargeSet struct {
	TotalAmount     float64                 `json:"total_amount"`
	LineItems       []LineItem              `json:"line_items"`
	CategoryTotals  map[Category]float64    `json:"category_totals"`
	ItemsByCategory map[Category][]LineItem `json:"items_by_category"`
}

// AnomalyKind identifies the heuristic rule that produced an anomaly.
type AnomalyKind string

const (
	AnomalyHighTotal     AnomalyKind = "high_total"
	AnomalyPenaltyCharge AnomalyKind = "penalty_charge"
	AnomalyUnusualTax    AnomalyKind = "unusual_tax"
)

// Severity grades an anomaly finding.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityAlert   Severity = "alert"
)

// Anomaly is a heuristic-flagged irregularity in the charge data.
type Anomaly struct {
	Kind       AnomalyKind `json:"kind"`
	Severity   Severity    `json:"severity"`
	Message    string      `json:"message"`
	Suggestion string      `json:"suggestion"`
}
