package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"citizen_registry/internal/domain"
)

// UserStore is the credential store the auth service reads from
type UserStore interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
}

// CitizenStore is the citizen store used by the registry service
type CitizenStore interface {
	Create(ctx context.Context, citizen *domain.Citizen) error
	FindByNIN(ctx context.Context, nin string) (*domain.Citizen, error)
	Search(ctx context.Context, pattern string, limit, offset int) ([]domain.Citizen, error)
	CountMatching(ctx context.Context, pattern string) (int64, error)
}

// StatsStore holds the aggregate queries used by the statistics service
type StatsStore interface {
	CountAll(ctx context.Context) (int64, error)
	CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error)
	CountByState(ctx context.Context) ([]domain.StateCount, error)
	CountByGender(ctx context.Context) ([]domain.GenderCount, error)
}

// CitizenCache is an optional read-through cache for single-record lookups
type CitizenCache interface {
	Get(ctx context.Context, nin string) (*domain.Citizen, bool)
	Set(ctx context.Context, citizen *domain.Citizen)
}
