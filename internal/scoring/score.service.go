// Package scoring turns a normalized ticker snapshot into the composite
// attractiveness score, applies the configured news-recency decay and maps
// scores onto category bands.
package scoring

import (
	"fmt"
	"math"

	"stockscore/internal/domain"
	"stockscore/internal/normalize"

	"github.com/maja42/goval"
)

// NewsDecayPolicy selects between the two incompatible decay formulas the
// system historically ran with. Both are kept; the cliff variant is the
// canonical default.
type NewsDecayPolicy string

const (
	// NewsDecayCliff multiplies the raw score by 0.8 once the latest news is
	// older than 90 days.
	NewsDecayCliff NewsDecayPolicy = "cliff"
	// NewsDecayTiered adds the finer-grained age+sentiment adjustment into
	// the raw score instead of decaying it afterwards.
	NewsDecayTiered NewsDecayPolicy = "tiered"
)

const (
	cliffAgeDays = 90
	cliffFactor  = 0.8
)

// Weights are the fixed business-rule weights of the composite score.
type Weights struct {
	PctChange1M    float64
	PctChange1W    float64
	PctChange1D    float64
	Volume         float64
	RSI            float64
	SentimentRatio float64
	ATR            float64
	VWMAGate       float64
}

// DefaultWeights is the balanced weight set (volume at 0.05). The older
// variant ran volume at 0.10; both remain reachable through config.
func DefaultWeights() Weights {
	return Weights{
		PctChange1M:    0.30,
		PctChange1W:    0.20,
		PctChange1D:    0.15,
		Volume:         0.05,
		RSI:            0.10,
		SentimentRatio: 0.10,
		ATR:            0.05,
		VWMAGate:       0.05,
	}
}

// Config controls scoring behavior per run.
type Config struct {
	Weights     Weights
	DecayPolicy NewsDecayPolicy
	// RenormalizeWeights switches missing metrics from silent
	// zero-contribution to renormalizing the remaining weights.
	RenormalizeWeights bool
	// CustomExpression, when set, replaces the weighted sum entirely. It is
	// evaluated with the snapshot fields bound as variables.
	CustomExpression string

	rsiBandLow  float64
	rsiBandHigh float64
}

func DefaultConfig() Config {
	return Config{
		Weights:     DefaultWeights(),
		DecayPolicy: NewsDecayCliff,
		rsiBandLow:  30,
		rsiBandHigh: 70,
	}
}

// Score computes the raw composite score for a snapshot. It is pure:
// identical snapshots always produce identical output.
//
// The snapshot is expected to carry score-space values (percent changes in
// percent units, volume in millions, ATR inverted) - PrepareFields does the
// conversion from store-space rows.
func Score(snapshot domain.TickerSnapshot, cfg Config, newsAgeDays float64) (float64, error) {
	if cfg.CustomExpression != "" {
		return customScore(snapshot, cfg.CustomExpression)
	}

	if cfg.rsiBandLow == 0 && cfg.rsiBandHigh == 0 {
		cfg.rsiBandLow, cfg.rsiBandHigh = 30, 70
	}

	type term struct {
		value  *float64
		weight float64
	}
	terms := []term{
		{snapshot.Field(domain.FieldPctChange1M), cfg.Weights.PctChange1M},
		{snapshot.Field(domain.FieldPctChange1W), cfg.Weights.PctChange1W},
		{snapshot.Field(domain.FieldPctChange1D), cfg.Weights.PctChange1D},
		{snapshot.Field(domain.FieldVolume), cfg.Weights.Volume},
		{gatedRSI(snapshot.Field(domain.FieldRSI), cfg.rsiBandLow, cfg.rsiBandHigh), cfg.Weights.RSI},
		{snapshot.Field(domain.FieldSentimentRatio), cfg.Weights.SentimentRatio},
		{snapshot.Field(domain.FieldATR), cfg.Weights.ATR},
		{vwmaGate(snapshot.Field(domain.FieldVWMAVsPrice)), cfg.Weights.VWMAGate},
	}

	var score, presentWeight, totalWeight float64
	for _, t := range terms {
		totalWeight += t.weight
		if t.value == nil {
			// missing metrics contribute zero; they are deliberately not
			// excluded from the weight denominator unless renormalizing
			continue
		}
		score += *t.value * t.weight
		presentWeight += t.weight
	}
	if cfg.RenormalizeWeights && presentWeight > 0 {
		score = score * totalWeight / presentWeight
	}

	if cfg.DecayPolicy == NewsDecayTiered {
		score += newsAdjustment(newsAgeDays, normalize.Float(snapshot.Field(domain.FieldSentimentRatio)))
	}

	return math.Round(score*100) / 100, nil
}

// gatedRSI passes RSI through only inside the healthy band; outside it the
// metric contributes nothing.
func gatedRSI(rsi *float64, low, high float64) *float64 {
	if rsi == nil || *rsi < low || *rsi > high {
		return nil
	}
	return rsi
}

// vwmaGate converts the VWMA-vs-price distance into a boolean contribution:
// the full weight when price is above VWMA, nothing otherwise.
func vwmaGate(dist *float64) *float64 {
	if dist == nil || *dist <= 0 {
		return nil
	}
	return normalize.Ptr(1)
}

// newsAdjustment is the tiered decay variant: an additive bump or penalty by
// news age and sentiment strength.
func newsAdjustment(newsAgeDays, sentimentRatio float64) float64 {
	switch {
	case newsAgeDays <= 3:
		if sentimentRatio >= 0.75 {
			return 1.0
		} else if sentimentRatio >= 0.5 {
			return 0.75
		}
		return 0.5
	case newsAgeDays <= 7:
		if sentimentRatio >= 0.75 {
			return 0.5
		} else if sentimentRatio >= 0.5 {
			return 0.25
		}
		return 0
	case newsAgeDays <= 14:
		return 0.1
	default:
		if sentimentRatio >= 0.75 {
			return -0.5
		} else if sentimentRatio >= 0.5 {
			return -0.75
		}
		return -1.0
	}
}

// Adjust applies the post-hoc news-recency decay to a raw score. Under the
// tiered policy the adjustment already happened inside Score, so the raw
// score passes through unchanged.
func Adjust(rawScore float64, newsAgeDays float64, policy NewsDecayPolicy) float64 {
	if policy == NewsDecayCliff && newsAgeDays > cliffAgeDays {
		return rawScore * cliffFactor
	}
	return rawScore
}

func customScore(snapshot domain.TickerSnapshot, expression string) (float64, error) {
	variables := map[string]interface{}{
		"symbol":      snapshot.Symbol,
		"pct1m":       normalize.Float(snapshot.Field(domain.FieldPctChange1M)),
		"pct1w":       normalize.Float(snapshot.Field(domain.FieldPctChange1W)),
		"pct1d":       normalize.Float(snapshot.Field(domain.FieldPctChange1D)),
		"volume":      normalize.Float(snapshot.Field(domain.FieldVolume)),
		"rsi":         normalize.Float(snapshot.Field(domain.FieldRSI)),
		"sentiment":   normalize.Float(snapshot.Field(domain.FieldSentimentRatio)),
		"atr":         normalize.Float(snapshot.Field(domain.FieldATR)),
		"vwmaVsPrice": normalize.Float(snapshot.Field(domain.FieldVWMAVsPrice)),
	}

	eval := goval.NewEvaluator()
	result, err := eval.Evaluate(expression, variables, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to evaluate score expression: %w", err)
	}

	var r float64
	switch v := result.(type) {
	case float64:
		r = v
	case int:
		r = float64(v)
	default:
		return 0, fmt.Errorf("score expression returned %T, want a number", result)
	}
	if math.IsNaN(r) {
		return 0, fmt.Errorf("score expression produced NaN")
	}
	if math.IsInf(r, 0) {
		return 0, fmt.Errorf("score expression produced infinity")
	}

	return math.Round(r*100) / 100, nil
}

// Category is the ordered score band.
type Category string

const (
	CategoryStrongBuy Category = "Strong Buy"
	CategoryBuy       Category = "Buy"
	CategoryNeutral   Category = "Neutral"
	CategoryCaution   Category = "Caution / Weak"
	CategoryAvoid     Category = "Avoid / Sell"
)

// SuperGreenThreshold is the universe-independent cutoff for the
// "super green" pick list.
const SuperGreenThreshold = 6.8

// Categorize maps a score onto its band. Bands are inclusive-lower /
// exclusive-upper except the unbounded ends.
func Categorize(score float64) Category {
	switch {
	case score >= SuperGreenThreshold:
		return CategoryStrongBuy
	case score >= 5.5:
		return CategoryBuy
	case score >= 4.0:
		return CategoryNeutral
	case score >= 3.0:
		return CategoryCaution
	default:
		return CategoryAvoid
	}
}

// PrepareFields converts a raw store row snapshot into score-space: volume
// in millions, ATR inverted so that low volatility scores higher. Percent
// changes are stored in percent units already and pass through unchanged.
// The input snapshot is not mutated.
func PrepareFields(snapshot domain.TickerSnapshot) domain.TickerSnapshot {
	fields := make(map[string]*float64, len(snapshot.Fields))
	for k, v := range snapshot.Fields {
		fields[k] = v
	}

	scale := func(name string, f func(float64) float64) {
		if v := fields[name]; v != nil {
			fields[name] = normalize.FromFloat(f(*v))
		}
	}
	scale(domain.FieldVolume, func(v float64) float64 { return v / 1e6 })
	scale(domain.FieldATR, func(v float64) float64 { return 1 / (v + 1) })

	if price, vwmaV := fields[domain.FieldCurrentPrice], fields[domain.FieldVWMA]; price != nil && vwmaV != nil {
		fields[domain.FieldVWMAVsPrice] = normalize.FromFloat(*price - *vwmaV)
	}

	return domain.TickerSnapshot{
		Symbol:         snapshot.Symbol,
		Fields:         fields,
		LatestNewsDate: snapshot.LatestNewsDate,
	}
}
