// Package analysis extracts structured fields from the free-form text the
// generator produces. The generator is asked to follow a fixed response
// template, but nothing guarantees it does: every extraction here degrades
// to an unknown/empty default instead of failing.
package analysis

import (
	"regexp"
	"strings"

	"stockscore/internal/normalize"
)

type Decision string

const (
	DecisionBuy     Decision = "Buy"
	DecisionHold    Decision = "Hold"
	DecisionSell    Decision = "Sell"
	DecisionUnknown Decision = "Unknown"
)

// PriceRange is an optional min/max pair; both bounds are nil or both set.
type PriceRange struct {
	Low  *float64
	High *float64
}

func (r PriceRange) Known() bool {
	return r.Low != nil && r.High != nil
}

// Parsed is the structured view of one generated analysis.
type Parsed struct {
	Decision  Decision
	BuyRange  PriceRange
	SellRange PriceRange
	Summary   string
	Raw       string
}

var (
	decisionRe = regexp.MustCompile(`(?i)Recommendation:?\s*\**\s*(?P<decision>Buy|Hold|Sell)`)
	buyRe      = regexp.MustCompile(`(?is)Recommended Buy Price.*?\$(?P<low>[\d,.]+)\s*-\s*\$(?P<high>[\d,.]+)`)
	sellRe     = regexp.MustCompile(`(?is)Recommended Sell Price.*?\$(?P<low>[\d,.]+)\s*-\s*\$(?P<high>[\d,.]+)`)
	summaryRe  = regexp.MustCompile(`(?is)Technical Analysis Summary\**:?\s*(?P<summary>.*?)(?:\n#|\z)`)
)

// Parse extracts the decision, price ranges and technical summary from the
// generated text. It never returns an error; callers can log which pieces
// came back unknown.
func Parse(text string) Parsed {
	out := Parsed{
		Decision: DecisionUnknown,
		Raw:      text,
	}

	if m := decisionRe.FindStringSubmatch(text); m != nil {
		switch strings.ToLower(m[decisionRe.SubexpIndex("decision")]) {
		case "buy":
			out.Decision = DecisionBuy
		case "hold":
			out.Decision = DecisionHold
		case "sell":
			out.Decision = DecisionSell
		}
	}

	out.BuyRange = parseRange(buyRe, text)
	out.SellRange = parseRange(sellRe, text)

	if m := summaryRe.FindStringSubmatch(text); m != nil {
		out.Summary = strings.TrimSpace(m[summaryRe.SubexpIndex("summary")])
	}

	return out
}

// parseRange pulls the first "$X - $Y" pair after the section heading,
// stripping currency symbols and thousands separators. A half-parseable
// pair degrades to fully unknown.
func parseRange(re *regexp.Regexp, text string) PriceRange {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return PriceRange{}
	}
	low := normalize.Parse(m[re.SubexpIndex("low")])
	high := normalize.Parse(m[re.SubexpIndex("high")])
	if low == nil || high == nil {
		return PriceRange{}
	}
	return PriceRange{Low: low, High: high}
}
