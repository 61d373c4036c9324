package app

import (
	"encoding/json"
	"fmt"
	"os"
	"stockscore/internal/scoring"
)

// AppConfig is the operator-tunable configuration, loaded from json. Zero
// values fall back to the defaults baked into the packages.
type AppConfig struct {
	Universes []string `json:"universes"`

	// PicksPerUniverse caps how many super-green candidates each universe
	// feeds into the ranker; zero keeps the whole list
	PicksPerUniverse int `json:"picksPerUniverse"`

	Weights            *scoring.Weights `json:"weights,omitempty"`
	DecayPolicy        string           `json:"decayPolicy"`
	RenormalizeWeights bool             `json:"renormalizeWeights"`
	CustomExpression   string           `json:"customExpression"`

	Schedule ScheduleConfig `json:"schedule"`

	MarketDataRequestsPerSecond float64 `json:"marketDataRequestsPerSecond"`
	GptRequestsPerSecond        float64 `json:"gptRequestsPerSecond"`
	UseRealtimePrices           bool    `json:"useRealtimePrices"`
}

func DefaultAppConfig() AppConfig {
	return AppConfig{
		Universes:                   []string{"LargeCap", "MidCap"},
		DecayPolicy:                 string(scoring.NewsDecayCliff),
		Schedule:                    DefaultScheduleConfig(),
		MarketDataRequestsPerSecond: 2,
		GptRequestsPerSecond:        0.5,
	}
}

// LoadAppConfig overlays the json file at path onto the defaults. An empty
// path returns the defaults untouched.
func LoadAppConfig(path string) (*AppConfig, error) {
	cfg := DefaultAppConfig()
	if path == "" {
		return &cfg, nil
	}

	f, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not open config %s: %w", path, err)
	}
	err = json.Unmarshal(f, &cfg)
	if err != nil {
		return nil, fmt.Errorf("could not parse config %s: %w", path, err)
	}

	if len(cfg.Universes) == 0 {
		cfg.Universes = DefaultAppConfig().Universes
	}

	return &cfg, nil
}

// ScoringConfig translates the operator config into the scorer's terms.
func (c AppConfig) ScoringConfig() scoring.Config {
	out := scoring.DefaultConfig()
	if c.Weights != nil {
		out.Weights = *c.Weights
	}
	if c.DecayPolicy != "" {
		out.DecayPolicy = scoring.NewsDecayPolicy(c.DecayPolicy)
	}
	out.RenormalizeWeights = c.RenormalizeWeights
	out.CustomExpression = c.CustomExpression
	return out
}
