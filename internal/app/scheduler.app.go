package app

import (
	"context"
	"fmt"
	"stockscore/internal/logger"

	"github.com/robfig/cron/v3"
)

// ScheduleConfig holds the cron expressions for each recurring pass. An
// empty expression disables that pass.
type ScheduleConfig struct {
	Refresh  string `json:"refresh"`
	Score    string `json:"score"`
	Screens  string `json:"screens"`
	Trend    string `json:"trend"`
	TopPicks string `json:"topPicks"`
}

func DefaultScheduleConfig() ScheduleConfig {
	// weekday passes around the US close, picks once a week
	return ScheduleConfig{
		Refresh:  "30 21 * * 1-5",
		Score:    "45 21 * * 1-5",
		Screens:  "0 22 * * 1-5",
		Trend:    "15 22 * * 1-5",
		TopPicks: "30 22 * * 5",
	}
}

type Scheduler struct {
	cron *cron.Cron
}

// NewScheduler wires the recurring passes onto a cron runner. Universes are
// refreshed and scored in the order given.
func NewScheduler(
	ctx context.Context,
	cfg ScheduleConfig,
	universes []string,
	refreshService RefreshService,
	scoreService ScoreService,
	screenService ScreenService,
	trendService TrendService,
	topPicksService TopPicksService,
) (*Scheduler, error) {
	log := logger.FromContext(ctx)
	c := cron.New()

	add := func(name, spec string, run func(context.Context) error) error {
		if spec == "" {
			return nil
		}
		_, err := c.AddFunc(spec, func() {
			if err := run(ctx); err != nil {
				log.Errorf("scheduled %s failed: %v", name, err)
			}
		})
		if err != nil {
			return fmt.Errorf("failed to schedule %s: %w", name, err)
		}
		return nil
	}

	jobs := []struct {
		name string
		spec string
		run  func(context.Context) error
	}{
		{"refresh", cfg.Refresh, func(ctx context.Context) error {
			for _, universe := range universes {
				if _, err := refreshService.Refresh(ctx, universe); err != nil {
					return err
				}
			}
			return nil
		}},
		{"score", cfg.Score, func(ctx context.Context) error {
			for _, universe := range universes {
				if _, err := scoreService.ScoreUniverse(ctx, universe); err != nil {
					return err
				}
			}
			return nil
		}},
		{"screens", cfg.Screens, func(ctx context.Context) error {
			_, err := screenService.RunScreens(ctx)
			return err
		}},
		{"trend", cfg.Trend, func(ctx context.Context) error {
			_, err := trendService.UpdateTrend(ctx)
			return err
		}},
		{"top picks", cfg.TopPicks, func(ctx context.Context) error {
			_, err := topPicksService.GenerateTopPicks(ctx)
			return err
		}},
	}
	for _, job := range jobs {
		if err := add(job.name, job.spec, job.run); err != nil {
			return nil, err
		}
	}

	return &Scheduler{cron: c}, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
}
