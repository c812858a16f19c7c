package domain

import (
	"time"

	"github.com/govalues/decimal"
)

// Criteria is a declarative loan filter used by remote callers that cannot
// pass predicate functions. Zero-valued fields do not filter.
type Criteria struct {
	Terms        []int64  `json:"terms,omitempty"`
	Grades       []string `json:"grades,omitempty"`
	MinAnnualInc float64  `json:"minAnnualInc,omitempty"`
	MaxAnnualInc float64  `json:"maxAnnualInc,omitempty"`
	MinIntRate   float64  `json:"minIntRate,omitempty"`
	MaxIntRate   float64  `json:"maxIntRate,omitempty"`
	ExcludeOwned bool     `json:"excludeOwned,omitempty"`
}

// Preset is a saved Criteria together with the order parameters used when
// investing through it.
type Preset struct {
	Name            string
	Description     string
	Criteria        Criteria
	RequestedAmount decimal.Decimal
	PortfolioID     *int64
	CreatedAt       time.Time
}
