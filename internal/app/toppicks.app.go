package app

import (
	"context"
	"sort"
	"stockscore/internal"
	"stockscore/internal/aicache"
	"stockscore/internal/analysis"
	"stockscore/internal/db/models/postgres/public/model"
	"stockscore/internal/domain"
	"stockscore/internal/logger"
	"stockscore/internal/ranker"
	"stockscore/internal/repository"
	"stockscore/internal/scoring"
	"stockscore/internal/screener"
	"time"

	"github.com/google/uuid"
)

type TopPicksSummary struct {
	RunID        uuid.UUID       `json:"runId"`
	Picks        int             `json:"picks"`
	CacheReused  int             `json:"cacheReused"`
	CacheMissed  int             `json:"cacheMissed"`
	FailedToRank []SkippedTicker `json:"failedToRank,omitempty"`
}

type TopPicksService interface {
	GenerateTopPicks(ctx context.Context) (*TopPicksSummary, error)
}

type topPicksServiceHandler struct {
	UniverseTickerRepository repository.UniverseTickerRepository
	AiCacheRepository        repository.AiCacheRepository
	TopPickRepository        repository.TopPickRepository
	GptRepository            repository.GptRepository

	DecayPolicy      scoring.NewsDecayPolicy
	CachePolicy      aicache.Policy
	PicksPerUniverse int
}

func NewTopPicksService(
	universeTickerRepository repository.UniverseTickerRepository,
	aiCacheRepository repository.AiCacheRepository,
	topPickRepository repository.TopPickRepository,
	gptRepository repository.GptRepository,
	decayPolicy scoring.NewsDecayPolicy,
	picksPerUniverse int,
) TopPicksService {
	return topPicksServiceHandler{
		UniverseTickerRepository: universeTickerRepository,
		AiCacheRepository:        aiCacheRepository,
		TopPickRepository:        topPickRepository,
		GptRepository:            gptRepository,
		DecayPolicy:              decayPolicy,
		CachePolicy:              aicache.DefaultPolicy(),
		PicksPerUniverse:         picksPerUniverse,
	}
}

// GenerateTopPicks takes every super-green ticker from each universe, merges
// and ranks them, attaches an AI analysis to each pick (cached when the
// inputs barely moved) and writes the ranked rows under a fresh run id.
func (h topPicksServiceHandler) GenerateTopPicks(ctx context.Context) (*TopPicksSummary, error) {
	log := logger.FromContext(ctx)
	profile := internal.GetPerformanceProfile(ctx)

	rows, err := h.UniverseTickerRepository.ListAll()
	if err != nil {
		return nil, err
	}
	profile.Add("loaded universe rows")

	rowsBySymbol := map[string]model.UniverseTicker{}
	byUniverse := map[string][]model.UniverseTicker{}
	for _, row := range rows {
		if _, ok := rowsBySymbol[row.Symbol]; !ok {
			rowsBySymbol[row.Symbol] = row
		}
		byUniverse[row.Universe] = append(byUniverse[row.Universe], row)
	}

	universes := make([]string, 0, len(byUniverse))
	for name := range byUniverse {
		universes = append(universes, name)
	}
	sort.Strings(universes)

	now := timeNow()

	lists := make([][]domain.ScoredCandidate, 0, len(universes))
	for _, universe := range universes {
		lists = append(lists, h.topCandidates(universe, byUniverse[universe]))
	}

	ranked := ranker.Rank(lists, h.DecayPolicy, now)
	profile.Add("ranked candidates")
	if len(ranked) == 0 {
		log.Warn("no scored candidates to rank")
		return &TopPicksSummary{RunID: uuid.New()}, nil
	}

	summary := &TopPicksSummary{RunID: uuid.New()}

	picks := make([]model.TopPick, 0, len(ranked))
	for _, candidate := range ranked {
		row := rowsBySymbol[candidate.Symbol]

		analysisText, reused, err := h.analysisFor(ctx, row, candidate.Snapshot, now)
		if err != nil {
			log.Warnf("no analysis for %s: %v", candidate.Symbol, err)
			summary.FailedToRank = append(summary.FailedToRank, SkippedTicker{Symbol: candidate.Symbol, Reason: err.Error()})
		}
		if reused {
			summary.CacheReused++
		} else if err == nil {
			summary.CacheMissed++
		}

		picks = append(picks, buildPick(summary.RunID, candidate, row, analysisText, now))
	}
	profile.Add("analyses attached")

	err = h.TopPickRepository.Add(nil, picks)
	if err != nil {
		return nil, err
	}

	summary.Picks = len(picks)
	log.Infof("wrote %d top picks (run %s): %d cached, %d fresh", summary.Picks, summary.RunID, summary.CacheReused, summary.CacheMissed)

	return summary, nil
}

// topCandidates returns the universe's super-green rows ordered score
// descending. Membership comes from the score threshold alone; the whole
// list goes through unless PicksPerUniverse caps it.
func (h topPicksServiceHandler) topCandidates(universe string, rows []model.UniverseTicker) []domain.ScoredCandidate {
	scored := make([]model.UniverseTicker, 0, len(rows))
	for _, row := range rows {
		if screener.SuperGreen(row.Score) {
			scored = append(scored, row)
		}
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return *scored[i].Score > *scored[j].Score
	})

	if h.PicksPerUniverse > 0 && len(scored) > h.PicksPerUniverse {
		scored = scored[:h.PicksPerUniverse]
	}

	out := make([]domain.ScoredCandidate, 0, len(scored))
	for _, row := range scored {
		out = append(out, domain.ScoredCandidate{
			Symbol:   row.Symbol,
			Universe: universe,
			Snapshot: snapshotFromRow(row),
			RawScore: *row.Score,
		})
	}
	return out
}

// analysisFor returns the analysis text for a pick, preferring the cached
// one while the price, RSI and VWMA all sit inside the variance deadband.
func (h topPicksServiceHandler) analysisFor(ctx context.Context, row model.UniverseTicker, snapshot domain.TickerSnapshot, now time.Time) (string, bool, error) {
	cached, err := h.AiCacheRepository.Get(row.Symbol)
	if err != nil {
		return "", false, err
	}

	entry := cacheEntryFromModel(cached)
	if aicache.ShouldReuse(entry, snapshot, now, h.CachePolicy) {
		return entry.Analysis, true, nil
	}

	industry := ""
	if row.Industry != nil {
		industry = *row.Industry
	}
	name := ""
	if row.Name != nil {
		name = *row.Name
	}

	text, err := h.GptRepository.AnalyzeTicker(ctx, repository.TickerAnalysisRequest{
		Symbol:   row.Symbol,
		Name:     name,
		Industry: industry,
		Fields:   promptFields(row),
	})
	if err != nil {
		return "", false, err
	}

	err = h.AiCacheRepository.Put(nil, cacheModelFromEntry(aicache.NewEntry(snapshot, text, now)))
	if err != nil {
		return "", false, err
	}

	return text, false, nil
}

func buildPick(runID uuid.UUID, candidate domain.ScoredCandidate, row model.UniverseTicker, analysisText string, now time.Time) model.TopPick {
	pick := model.TopPick{
		RunID:          runID,
		Rank:           int32(candidate.Rank),
		Symbol:         candidate.Symbol,
		MarketCap:      row.MarketCap,
		CurrentPrice:   row.CurrentPrice,
		StopPrice:      candidate.StopPrice,
		BuyPrice:       candidate.BuyPrice,
		SellPrice:      candidate.SellPrice,
		Rsi:            row.Rsi,
		Vwma:           row.Vwma,
		Ema:            row.Ema,
		Atr:            row.Atr,
		Volume:         row.Volume,
		PctChange1d:    row.PctChange1d,
		PctChange1w:    row.PctChange1w,
		PctChange1m:    row.PctChange1m,
		SentimentRatio: row.SentimentRatio,
		RawScore:       candidate.RawScore,
		AdjustedScore:  candidate.AdjustedScore,
		CreatedAt:      now,
	}

	if analysisText == "" {
		return pick
	}

	parsed := analysis.Parse(analysisText)
	decision := string(parsed.Decision)
	pick.Decision = &decision
	pick.BuyRangeLow = parsed.BuyRange.Low
	pick.BuyRangeHigh = parsed.BuyRange.High
	pick.SellRangeLow = parsed.SellRange.Low
	pick.SellRangeHigh = parsed.SellRange.High
	if parsed.Summary != "" {
		summary := parsed.Summary
		pick.TechnicalSummary = &summary
	}
	pick.Analysis = &analysisText

	return pick
}
