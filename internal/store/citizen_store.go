package store

import (
	"context"
	"fmt"
	"time"

	"citizen_registry/internal/domain"

	"gorm.io/gorm"
)

// searchClause matches a lowered, escaped LIKE pattern against the three searchable columns.
// '!' is the escape character because backslash handling differs between postgres and mysql.
const searchClause = "LOWER(first_name) LIKE ? ESCAPE '!' OR LOWER(last_name) LIKE ? ESCAPE '!' OR LOWER(nin) LIKE ? ESCAPE '!'"

// CitizenStore persists citizen records. It is pure I/O: validation and
// pattern building belong to the registry service.
type CitizenStore struct {
	db      *gorm.DB
	timeout time.Duration
}

// NewCitizenStore creates a citizen store whose operations are bounded by timeout
func NewCitizenStore(db *gorm.DB, timeout time.Duration) *CitizenStore {
	return &CitizenStore{db: db, timeout: timeout}
}

// Create inserts the record in a single statement. Uniqueness of nin and
// email is enforced by the database and surfaces as a *ConflictError.
func (s *CitizenStore) Create(ctx context.Context, citizen *domain.Citizen) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.db.WithContext(ctx).Create(citizen).Error; err != nil {
		return fmt.Errorf("insert citizen: %w", classify(err))
	}
	return nil
}

// FindByNIN returns the citizen with exactly this national identifier
func (s *CitizenStore) FindByNIN(ctx context.Context, nin string) (*domain.Citizen, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var citizen domain.Citizen
	if err := s.db.WithContext(ctx).Where("nin = ?", nin).First(&citizen).Error; err != nil {
		return nil, fmt.Errorf("find citizen by nin: %w", classify(err))
	}
	return &citizen, nil
}

// Search returns one page of citizens matching pattern, newest first
func (s *CitizenStore) Search(ctx context.Context, pattern string, limit, offset int) ([]domain.Citizen, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	citizens := make([]domain.Citizen, 0, limit)
	err := s.db.WithContext(ctx).
		Where(searchClause, pattern, pattern, pattern).
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Offset(offset).
		Find(&citizens).Error
	if err != nil {
		return nil, fmt.Errorf("search citizens: %w", classify(err))
	}
	return citizens, nil
}

// CountMatching counts citizens matching pattern
func (s *CitizenStore) CountMatching(ctx context.Context, pattern string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var total int64
	err := s.db.WithContext(ctx).Model(&domain.Citizen{}).
		Where(searchClause, pattern, pattern, pattern).
		Count(&total).Error
	if err != nil {
		return 0, fmt.Errorf("count matching citizens: %w", classify(err))
	}
	return total, nil
}

// CountAll counts every citizen record
func (s *CitizenStore) CountAll(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var total int64
	if err := s.db.WithContext(ctx).Model(&domain.Citizen{}).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("count citizens: %w", classify(err))
	}
	return total, nil
}

// CountCreatedBetween counts citizens created in [from, to)
func (s *CitizenStore) CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var total int64
	err := s.db.WithContext(ctx).Model(&domain.Citizen{}).
		Where("created_at >= ? AND created_at < ?", from, to).
		Count(&total).Error
	if err != nil {
		return 0, fmt.Errorf("count citizens created between: %w", classify(err))
	}
	return total, nil
}

// CountByState groups citizens by state of origin, NULL included
func (s *CitizenStore) CountByState(ctx context.Context) ([]domain.StateCount, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	rows := []domain.StateCount{}
	err := s.db.WithContext(ctx).Model(&domain.Citizen{}).
		Select("state_of_origin, COUNT(*) AS count").
		Group("state_of_origin").
		Order("count DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("count citizens by state: %w", classify(err))
	}
	return rows, nil
}

// CountByGender groups citizens by gender, NULL included
func (s *CitizenStore) CountByGender(ctx context.Context) ([]domain.GenderCount, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	rows := []domain.GenderCount{}
	err := s.db.WithContext(ctx).Model(&domain.Citizen{}).
		Select("gender, COUNT(*) AS count").
		Group("gender").
		Order("count DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("count citizens by gender: %w", classify(err))
	}
	return rows, nil
}
