package internal

import (
	"fmt"
	"time"
)

// AnalysisType selects which result table an analysis run produces.
type AnalysisType string

const (
	Categorical AnalysisType = "Categorical"
	Aggregate   AnalysisType = "Aggregate"
	Prognosis   AnalysisType = "Prognosis"
)

// AnalysisTypes lists the supported analysis types.
var AnalysisTypes = []AnalysisType{Categorical, Aggregate, Prognosis}

// IsKnownAnalysisType reports whether name is a supported analysis type.
func IsKnownAnalysisType(name string) bool {
	for _, t := range AnalysisTypes {
		if string(t) == name {
			return true
		}
	}
	return false
}

// Request carries everything one analysis run needs. The caller owns the
// record slices and is expected to keep transactions in append order; the
// prognosis anchor is the last element of that slice, not the chronological
// maximum. From and To are normalized to the first and last day of their
// months before they get here.
type Request struct {
	Type         AnalysisType
	From         time.Time
	To           time.Time
	Transactions []Record
	Upcomings    []Record

	// Category is the filter token for Categorical runs. It is matched by
	// substring containment against each record's category name.
	Category string

	// Baselines for Prognosis runs. Nil means not supplied.
	AccountBalance   *float64
	AverageRevenue   *float64
	AverageSpendings *float64

	// Now anchors a Prognosis run with no transactions. Zero means wall clock.
	Now time.Time
}

// Run executes one analysis and returns its result table. It errors only on
// invalid call contracts; degenerate data (empty windows, one-sided months,
// zero income) flows into defined table shapes instead.
func Run(req Request) (*Table, error) {
	switch req.Type {
	case Categorical:
		if req.Category == "" {
			return nil, fmt.Errorf("categorical analysis requires a category filter")
		}
		return calculateCategorical(req), nil
	case Aggregate:
		return calculateAggregate(req), nil
	case Prognosis:
		if req.AccountBalance == nil || req.AverageRevenue == nil || req.AverageSpendings == nil {
			return nil, fmt.Errorf("prognosis requires account balance, average revenue and average spendings")
		}
		return calculatePrognosis(req), nil
	default:
		return nil, fmt.Errorf("unknown analysis type: %q (available: %v)", req.Type, AnalysisTypes)
	}
}
