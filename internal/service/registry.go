package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"citizen_registry/internal/domain"

	"golang.org/x/sync/errgroup"
)

// MaxPageSize bounds the caller-supplied page size
const MaxPageSize = 100

// RegisterCitizenInput carries every citizen field except identifiers and timestamps
type RegisterCitizenInput struct {
	NIN           string
	FirstName     string
	LastName      string
	Email         string
	Phone         string
	DateOfBirth   domain.Date
	StateOfOrigin string
	LGA           string
	Address       string
	Occupation    string
	Gender        string
	MaritalStatus string
}

// RegistryService registers, fetches and searches citizen records
type RegistryService struct {
	citizens CitizenStore
	cache    CitizenCache
}

// RegistryOption configures a RegistryService
type RegistryOption func(*RegistryService)

// WithCitizenCache enables read-through caching of single-record lookups
func WithCitizenCache(cache CitizenCache) RegistryOption {
	return func(s *RegistryService) { s.cache = cache }
}

// NewRegistryService creates a registry service over the citizen store
func NewRegistryService(citizens CitizenStore, opts ...RegistryOption) (*RegistryService, error) {
	if citizens == nil {
		return nil, errors.New("citizen store is required")
	}
	s := &RegistryService{citizens: citizens}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Register inserts a new citizen. Duplicate NIN or email is detected from the
// store's unique constraint, never by a prior lookup, so concurrent
// registrations of the same NIN yield exactly one success.
func (s *RegistryService) Register(ctx context.Context, in RegisterCitizenInput) (*domain.Citizen, error) {
	citizen, err := newCitizen(in)
	if err != nil {
		return nil, err
	}
	if err := s.citizens.Create(ctx, citizen); err != nil {
		return nil, translate(err)
	}
	if s.cache != nil {
		s.cache.Set(ctx, citizen)
	}
	return citizen, nil
}

// GetByIdentifier returns the citizen with exactly this NIN
func (s *RegistryService) GetByIdentifier(ctx context.Context, nin string) (*domain.Citizen, error) {
	nin = strings.TrimSpace(nin)
	if s.cache != nil {
		if cached, ok := s.cache.Get(ctx, nin); ok {
			return cached, nil
		}
	}
	citizen, err := s.citizens.FindByNIN(ctx, nin)
	if err != nil {
		return nil, translate(err)
	}
	if s.cache != nil {
		s.cache.Set(ctx, citizen)
	}
	return citizen, nil
}

// Search returns one page of citizens whose first name, last name or NIN
// contains query, case-insensitively. An empty query matches every record.
func (s *RegistryService) Search(ctx context.Context, query string, page, pageSize int) ([]domain.Citizen, domain.PageInfo, error) {
	if page < 1 || pageSize < 1 || pageSize > MaxPageSize {
		return nil, domain.PageInfo{}, ErrInvalidPageParameters
	}
	// the offset must fit in an int
	if page > math.MaxInt/pageSize {
		return nil, domain.PageInfo{}, ErrInvalidPageParameters
	}
	pattern := likePattern(query)
	offset := (page - 1) * pageSize

	var (
		citizens []domain.Citizen
		total    int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		citizens, err = s.citizens.Search(gctx, pattern, pageSize, offset)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.citizens.CountMatching(gctx, pattern)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, domain.PageInfo{}, fmt.Errorf("search citizens: %w", translate(err))
	}
	if citizens == nil {
		citizens = []domain.Citizen{}
	}

	return citizens, domain.PageInfo{
		CurrentPage:  page,
		TotalPages:   int((total + int64(pageSize) - 1) / int64(pageSize)),
		TotalItems:   total,
		ItemsPerPage: pageSize,
	}, nil
}

func newCitizen(in RegisterCitizenInput) (*domain.Citizen, error) {
	nin := strings.TrimSpace(in.NIN)
	if utf8.RuneCountInString(nin) != domain.NINLength {
		return nil, &ValidationError{Reason: fmt.Sprintf("NIN must be %d characters", domain.NINLength)}
	}
	if in.DateOfBirth.IsZero() {
		return nil, &ValidationError{Reason: "Date of birth is required"}
	}
	gender := optional(in.Gender)
	if gender != nil && !domain.IsValidGender(*gender) {
		return nil, &ValidationError{Reason: "Gender must be one of Male, Female, Other"}
	}
	return &domain.Citizen{
		NIN:           nin,
		FirstName:     strings.TrimSpace(in.FirstName),
		LastName:      strings.TrimSpace(in.LastName),
		Email:         optional(in.Email),
		Phone:         optional(in.Phone),
		DateOfBirth:   in.DateOfBirth,
		StateOfOrigin: optional(in.StateOfOrigin),
		LGA:           optional(in.LGA),
		Address:       optional(in.Address),
		Occupation:    optional(in.Occupation),
		Gender:        gender,
		MaritalStatus: optional(in.MaritalStatus),
	}, nil
}

// optional turns blank input into NULL so unique email indexes ignore absent values
func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// likePattern builds a lowered substring pattern using '!' as the LIKE escape character
func likePattern(query string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(query)) + "%"
}
