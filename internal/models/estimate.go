package models

// Budget is a rounded project price in local currency and USD.
type Budget struct {
	Local int64 `json:"local"`
	USD   int64 `json:"usd"`
}

// Estimate is the output of the estimator: a budget and a delivery time.
type Estimate struct {
	Budget       Budget `json:"budget"`
	TimelineDays int    `json:"timeline_days"`
}

// LineItem is one contribution to an estimate, used for summaries.
type LineItem struct {
	Kind   string `json:"kind"` // base, feature, team, addon, pages
	Label  string `json:"label"`
	Amount Money  `json:"amount"`
}
