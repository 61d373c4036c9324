// Package screener evaluates ticker snapshots against named rule sets to
// decide universe membership (weak large caps, momentum mid caps, the
// universe-independent super-green list). Rules are data, not code.
package screener

import (
	"stockscore/internal/domain"
	"stockscore/internal/scoring"

	"github.com/montanaflynn/stats"
)

type Op string

const (
	OpLT  Op = "<"
	OpLTE Op = "<="
	OpGT  Op = ">"
	OpGTE Op = ">="
)

// Condition is one numeric comparison. Exactly one of Value, OtherField or
// UniverseMeanOf names the right-hand side:
//   - Value: a fixed threshold
//   - OtherField: another snapshot field (e.g. price < VWMA)
//   - UniverseMeanOf: Scale x the batch mean of a field, which requires a
//     pre-pass over the full universe (see Means)
type Condition struct {
	Field          string
	Op             Op
	Value          *float64
	OtherField     string
	UniverseMeanOf string
	Scale          float64
}

// RuleSet is a named conjunction of conditions. A missing field makes the
// whole rule evaluate false; it never errors. Universe scopes the rule to
// rows of one universe; relative-mean conditions average over that same
// universe. An empty Universe applies the rule everywhere.
type RuleSet struct {
	Name       string
	Universe   string
	Conditions []Condition
}

// WeakLargeCap flags large caps in a drawdown with weak sentiment.
func WeakLargeCap() RuleSet {
	return RuleSet{
		Name:     "weak-large-cap",
		Universe: "LargeCap",
		Conditions: []Condition{
			{Field: domain.FieldPctChange1M, Op: OpLT, Value: ptr(-3)},
			{Field: domain.FieldPctChange1W, Op: OpLT, Value: ptr(-2)},
			{Field: domain.FieldRSI, Op: OpLT, Value: ptr(45)},
			{Field: domain.FieldCurrentPrice, Op: OpLT, OtherField: domain.FieldVWMA},
			{Field: domain.FieldSentimentRatio, Op: OpLT, Value: ptr(0.5)},
		},
	}
}

// MomentumMidCap flags mid caps breaking out on above-average volume.
func MomentumMidCap() RuleSet {
	return RuleSet{
		Name:     "momentum-mid-cap",
		Universe: "MidCap",
		Conditions: []Condition{
			{Field: domain.FieldPctChange1M, Op: OpGT, Value: ptr(5)},
			{Field: domain.FieldPctChange1W, Op: OpGT, Value: ptr(3)},
			{Field: domain.FieldRSI, Op: OpGTE, Value: ptr(50)},
			{Field: domain.FieldRSI, Op: OpLTE, Value: ptr(75)},
			{Field: domain.FieldCurrentPrice, Op: OpGT, OtherField: domain.FieldVWMA},
			{Field: domain.FieldVolume, Op: OpGT, UniverseMeanOf: domain.FieldVolume, Scale: 1.2},
			{Field: domain.FieldSentimentRatio, Op: OpGT, Value: ptr(0.7)},
		},
	}
}

// Means computes the batch means a relative-threshold condition compares
// against. Unknown values are skipped, matching how the sheet mean treated
// blank cells.
func Means(snapshots []domain.TickerSnapshot, fields ...string) map[string]float64 {
	out := map[string]float64{}
	for _, field := range fields {
		values := []float64{}
		for _, s := range snapshots {
			if v := s.Field(field); v != nil {
				values = append(values, *v)
			}
		}
		if len(values) == 0 {
			continue
		}
		mean, err := stats.Mean(values)
		if err != nil {
			continue
		}
		out[field] = mean
	}
	return out
}

// MeanFields lists every field a rule set's relative conditions reference,
// for feeding Means in the batch pre-pass.
func MeanFields(rules ...RuleSet) []string {
	seen := map[string]bool{}
	fields := []string{}
	for _, rs := range rules {
		for _, c := range rs.Conditions {
			if c.UniverseMeanOf != "" && !seen[c.UniverseMeanOf] {
				seen[c.UniverseMeanOf] = true
				fields = append(fields, c.UniverseMeanOf)
			}
		}
	}
	return fields
}

// Classify returns the names of every rule set the snapshot matches. The
// caller is responsible for passing only the rules (and means) that apply to
// the snapshot's universe.
func Classify(snapshot domain.TickerSnapshot, rules []RuleSet, means map[string]float64) []string {
	matched := []string{}
	for _, rs := range rules {
		if Match(snapshot, rs, means) {
			matched = append(matched, rs.Name)
		}
	}
	return matched
}

// SuperGreen is the universe-independent membership test on the composite
// score.
func SuperGreen(score *float64) bool {
	return score != nil && *score >= scoring.SuperGreenThreshold
}

// Match evaluates a single rule set against one snapshot. The means map
// should come from the rule's own universe frame.
func Match(snapshot domain.TickerSnapshot, rs RuleSet, means map[string]float64) bool {
	for _, c := range rs.Conditions {
		left := snapshot.Field(c.Field)
		if left == nil {
			return false
		}

		var right float64
		switch {
		case c.OtherField != "":
			other := snapshot.Field(c.OtherField)
			if other == nil {
				return false
			}
			right = *other
		case c.UniverseMeanOf != "":
			mean, ok := means[c.UniverseMeanOf]
			if !ok {
				return false
			}
			scale := c.Scale
			if scale == 0 {
				scale = 1
			}
			right = mean * scale
		case c.Value != nil:
			right = *c.Value
		default:
			return false
		}

		if !compare(*left, c.Op, right) {
			return false
		}
	}
	return true
}

func compare(left float64, op Op, right float64) bool {
	switch op {
	case OpLT:
		return left < right
	case OpLTE:
		return left <= right
	case OpGT:
		return left > right
	case OpGTE:
		return left >= right
	}
	return false
}

func ptr(v float64) *float64 {
	return &v
}
