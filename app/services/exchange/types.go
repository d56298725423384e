package exchange

import "github.com/shopspring/decimal"

type Brand string

const (
	BrandAquaguard Brand = "aquaguard"
	BrandKent      Brand = "kent"
	BrandPureit    Brand = "pureit"
	BrandLivpure   Brand = "livpure"
	BrandAOSmith   Brand = "ao_smith"
	BrandBlueStar  Brand = "blue_star"
	BrandOther     Brand = "other"
)

type Condition string

const (
	ConditionExcellent Condition = "EXCELLENT"
	ConditionGood      Condition = "GOOD"
	ConditionFair      Condition = "FAIR"
	ConditionPoor      Condition = "POOR"
)

// Conditions lists the grades from best to worst.
func Conditions() []Condition {
	return []Condition{ConditionExcellent, ConditionGood, ConditionFair, ConditionPoor}
}

type ValuationRequest struct {
	Brand        Brand           `json:"brand" validate:"required,oneof=aquaguard kent pureit livpure ao_smith blue_star other"`
	AgeYears     decimal.Decimal `json:"age_years" validate:"gte=0"`
	Condition    Condition       `json:"condition" validate:"required,oneof=EXCELLENT GOOD FAIR POOR"`
	PurifierType string          `json:"purifier_type,omitempty"`
}

type ValuationResult struct {
	EstimatedValue int64 `json:"estimated_value"`
}
