package app

import (
	"context"
	"sort"
	"stockscore/internal/db/models/postgres/public/model"
	"stockscore/internal/domain"
	"stockscore/internal/logger"
	"stockscore/internal/repository"
	"stockscore/internal/screener"
)

// SuperGreenSheet collects every ticker whose score clears the standout
// threshold, regardless of which rule set it matched.
const SuperGreenSheet = "Super Green"

// HybridSheet merges every rule sheet into one list, biggest names first.
const HybridSheet = "Hybrid"

type ScreenSummary struct {
	Matched map[string]int `json:"matched"`
}

type ScreenService interface {
	RunScreens(ctx context.Context) (*ScreenSummary, error)
}

type screenServiceHandler struct {
	UniverseTickerRepository repository.UniverseTickerRepository
	ScreenResultRepository   repository.ScreenResultRepository
	Rules                    []screener.RuleSet
}

func NewScreenService(
	universeTickerRepository repository.UniverseTickerRepository,
	screenResultRepository repository.ScreenResultRepository,
) ScreenService {
	return screenServiceHandler{
		UniverseTickerRepository: universeTickerRepository,
		ScreenResultRepository:   screenResultRepository,
		Rules: []screener.RuleSet{
			screener.WeakLargeCap(),
			screener.MomentumMidCap(),
		},
	}
}

// RunScreens classifies every stored ticker against the rule sets scoped to
// its universe and replaces each result sheet wholesale. Relative-mean
// conditions average over the rule's own universe, so a thin mid cap is
// never measured against large-cap volume.
func (h screenServiceHandler) RunScreens(ctx context.Context) (*ScreenSummary, error) {
	log := logger.FromContext(ctx)

	rows, err := h.UniverseTickerRepository.ListAll()
	if err != nil {
		return nil, err
	}

	snapshots := make([]domain.TickerSnapshot, 0, len(rows))
	byUniverse := map[string][]domain.TickerSnapshot{}
	for _, row := range rows {
		s := snapshotFromRow(row)
		snapshots = append(snapshots, s)
		byUniverse[row.Universe] = append(byUniverse[row.Universe], s)
	}

	meansByRule := map[string]map[string]float64{}
	for _, rs := range h.Rules {
		frame := byUniverse[rs.Universe]
		if rs.Universe == "" {
			frame = snapshots
		}
		meansByRule[rs.Name] = screener.Means(frame, screener.MeanFields(rs)...)
	}

	now := timeNow()
	bySheet := map[string][]model.ScreenResult{}
	for i, row := range rows {
		sheets := []string{}
		for _, rs := range h.Rules {
			if rs.Universe != "" && rs.Universe != row.Universe {
				continue
			}
			if screener.Match(snapshots[i], rs, meansByRule[rs.Name]) {
				sheets = append(sheets, rs.Name)
			}
		}
		if screener.SuperGreen(row.Score) {
			sheets = append(sheets, SuperGreenSheet)
		}
		for _, sheet := range sheets {
			bySheet[sheet] = append(bySheet[sheet], model.ScreenResult{
				Sheet:          sheet,
				Symbol:         row.Symbol,
				Universe:       row.Universe,
				Rule:           sheet,
				MarketCap:      row.MarketCap,
				CurrentPrice:   row.CurrentPrice,
				Score:          row.Score,
				SentimentRatio: row.SentimentRatio,
				CreatedAt:      now,
			})
		}
	}
	bySheet[HybridSheet] = h.hybridRows(bySheet)

	summary := &ScreenSummary{Matched: map[string]int{}}
	sheetNames := make([]string, 0, len(h.Rules)+2)
	for _, rs := range h.Rules {
		sheetNames = append(sheetNames, rs.Name)
	}
	sheetNames = append(sheetNames, HybridSheet, SuperGreenSheet)

	// every sheet gets replaced, including ones with no matches this run
	for _, sheet := range sheetNames {
		err = h.ScreenResultRepository.Replace(nil, sheet, bySheet[sheet])
		if err != nil {
			return nil, err
		}
		summary.Matched[sheet] = len(bySheet[sheet])
		log.Infof("screen %q matched %d tickers", sheet, len(bySheet[sheet]))
	}

	return summary, nil
}

// hybridRows concatenates the rule sheets in rule order and re-sorts by
// market cap descending, unknown caps last. Rule names are kept so a hybrid
// row still says which screen put it there.
func (h screenServiceHandler) hybridRows(bySheet map[string][]model.ScreenResult) []model.ScreenResult {
	hybrid := []model.ScreenResult{}
	for _, rs := range h.Rules {
		for _, row := range bySheet[rs.Name] {
			row.Sheet = HybridSheet
			hybrid = append(hybrid, row)
		}
	}
	sort.SliceStable(hybrid, func(i, j int) bool {
		return marketCapOrZero(hybrid[i]) > marketCapOrZero(hybrid[j])
	})
	return hybrid
}

func marketCapOrZero(row model.ScreenResult) float64 {
	if row.MarketCap == nil {
		return 0
	}
	return *row.MarketCap
}
