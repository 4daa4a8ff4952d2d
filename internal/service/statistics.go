package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"citizen_registry/internal/domain"

	"golang.org/x/sync/errgroup"
)

// StatisticsService aggregates counts over the citizens table. Nothing is cached.
type StatisticsService struct {
	stats StatsStore
	now   func() time.Time
}

// NewStatisticsService creates a statistics service. now defaults to time.Now
// and fixes the server-local day used for today's registrations.
func NewStatisticsService(stats StatsStore, now func() time.Time) (*StatisticsService, error) {
	if stats == nil {
		return nil, errors.New("stats store is required")
	}
	if now == nil {
		now = time.Now
	}
	return &StatisticsService{stats: stats, now: now}, nil
}

// Summary runs the four independent aggregate queries concurrently and fails
// if any one of them fails.
func (s *StatisticsService) Summary(ctx context.Context) (*domain.Statistics, error) {
	now := s.now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	var out domain.Statistics
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		out.TotalCitizens, err = s.stats.CountAll(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		out.TodayRegistrations, err = s.stats.CountCreatedBetween(gctx, dayStart, dayEnd)
		return err
	})
	g.Go(func() error {
		var err error
		out.StateDistribution, err = s.stats.CountByState(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		out.GenderDistribution, err = s.stats.CountByGender(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("statistics summary: %w", translate(err))
	}

	if out.StateDistribution == nil {
		out.StateDistribution = []domain.StateCount{}
	}
	if out.GenderDistribution == nil {
		out.GenderDistribution = []domain.GenderCount{}
	}
	return &out, nil
}
