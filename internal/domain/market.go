package domain

import "time"

// Quote is the latest snapshot-level view of a listed symbol, as returned
// by the market data provider. Fundamental fields are nil when the provider
// omits them for the asset class (ETFs, indices).
type Quote struct {
	Symbol        string
	Name          string
	Price         *float64
	PreviousClose *float64
	Open          *float64
	Volume        *float64
	MarketCap     *float64
	PERatio       *float64
	EPS           *float64
	EarningsDate  *time.Time
}

// AssetPrice is a realtime price observation from the brokerage feed.
type AssetPrice struct {
	Symbol string
	Price  float64
	Date   time.Time
}
