package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"citizen_registry/internal/config"
	"citizen_registry/internal/domain"
	"citizen_registry/internal/metrics"
	"citizen_registry/internal/middleware"
	"citizen_registry/internal/service"
	"citizen_registry/internal/service/mocks"
	"citizen_registry/internal/store"
	"citizen_registry/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "api-test-secret"

type APISuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	users    *mocks.MockUserStore
	citizens *mocks.MockCitizenStore
	stats    *mocks.MockStatsStore
	metrics  *metrics.Metrics
	router   *gin.Engine
	token    string
}

func TestAPISuite(t *testing.T) {
	gin.SetMode(gin.TestMode)
	suite.Run(t, new(APISuite))
}

func (s *APISuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.users = mocks.NewMockUserStore(s.ctrl)
	s.citizens = mocks.NewMockCitizenStore(s.ctrl)
	s.stats = mocks.NewMockStatsStore(s.ctrl)
	s.metrics = metrics.New()
	s.router = s.newRouter(nil)

	var err error
	s.token, _, err = utils.GenerateJWT(2, "officer1", domain.RoleOfficer, testSecret, time.Now(), time.Hour)
	s.Require().NoError(err)
}

func (s *APISuite) newRouter(limiter *middleware.RateLimiter) *gin.Engine {
	auth, err := service.NewAuthService(s.users, testSecret)
	s.Require().NoError(err)
	registry, err := service.NewRegistryService(s.citizens)
	s.Require().NoError(err)
	stats, err := service.NewStatisticsService(s.stats, nil)
	s.Require().NoError(err)

	r, err := NewRouter(Dependencies{
		Config:      &config.Config{ServiceName: "NIMC Backend API", AppEnv: "test", FrontendURL: "http://localhost:3000"},
		Auth:        auth,
		Registry:    registry,
		Statistics:  stats,
		Metrics:     s.metrics,
		RateLimiter: limiter,
	})
	s.Require().NoError(err)
	return r
}

func (s *APISuite) do(method, path, body string, authed bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if authed {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *APISuite) decode(w *httptest.ResponseRecorder) map[string]any {
	var out map[string]any
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

const validCitizenBody = `{
	"nin": "12345678901",
	"firstName": "Ngozi",
	"lastName": "Adeyemi",
	"email": "ngozi@example.com",
	"dateOfBirth": "1992-11-30",
	"stateOfOrigin": "Ogun",
	"gender": "Female"
}`

func (s *APISuite) TestHealth() {
	w := s.do(http.MethodGet, "/api/health", "", false)
	s.Equal(http.StatusOK, w.Code)

	body := s.decode(w)
	s.Equal("healthy", body["status"])
	s.Equal("NIMC Backend API", body["service"])
	s.Equal("test", body["environment"])
	_, err := time.Parse(time.RFC3339, body["timestamp"].(string))
	s.NoError(err)
	s.NotEmpty(w.Header().Get(middleware.RequestIDHeader))
	s.Equal("nosniff", w.Header().Get("X-Content-Type-Options"))
}

func (s *APISuite) TestLogin() {
	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.MinCost)
	s.Require().NoError(err)
	email := "admin@nimc.gov.ng"
	admin := &domain.User{ID: 1, Username: "admin", PasswordHash: string(hash), Role: domain.RoleAdmin, FullName: "System Administrator", Email: &email}

	s.Run("success", func() {
		s.users.EXPECT().FindByUsername(gomock.Any(), "admin").Return(admin, nil)

		w := s.do(http.MethodPost, "/api/auth/login", `{"username":"admin","password":"admin123"}`, false)
		s.Equal(http.StatusOK, w.Code)

		var resp LoginResponse
		s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
		s.True(resp.Success)
		s.Equal("Login successful", resp.Message)
		s.Equal(UserResponse{ID: 1, Username: "admin", Role: domain.RoleAdmin, FullName: "System Administrator", Email: &email}, resp.User)

		claims, err := utils.ParseJWT(resp.Token, testSecret)
		s.Require().NoError(err)
		s.Equal(domain.RoleAdmin, claims.Role)
	})

	s.Run("wrong password issues no token", func() {
		s.users.EXPECT().FindByUsername(gomock.Any(), "admin").Return(admin, nil)
		before := testutil.ToFloat64(s.metrics.LoginFailures)

		w := s.do(http.MethodPost, "/api/auth/login", `{"username":"admin","password":"nope"}`, false)
		s.Equal(http.StatusUnauthorized, w.Code)
		body := s.decode(w)
		s.Equal("Invalid credentials", body["error"])
		s.NotContains(body, "token")
		s.Equal(before+1, testutil.ToFloat64(s.metrics.LoginFailures))
	})

	s.Run("unknown user", func() {
		s.users.EXPECT().FindByUsername(gomock.Any(), "ghost").Return(nil, store.ErrNotFound)

		w := s.do(http.MethodPost, "/api/auth/login", `{"username":"ghost","password":"admin123"}`, false)
		s.Equal(http.StatusUnauthorized, w.Code)
	})

	s.Run("missing fields", func() {
		w := s.do(http.MethodPost, "/api/auth/login", `{"username":"admin"}`, false)
		s.Equal(http.StatusBadRequest, w.Code)
	})
}

func (s *APISuite) TestAuthGate() {
	for _, path := range []string{"/api/citizens", "/api/citizens/12345678901", "/api/statistics"} {
		w := s.do(http.MethodGet, path, "", false)
		s.Equal(http.StatusUnauthorized, w.Code, path)
		s.Equal("Access token required", s.decode(w)["error"])
	}

	req := httptest.NewRequest(http.MethodGet, "/api/statistics", nil)
	req.Header.Set("Authorization", "Bearer forged.token.value")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	s.Equal(http.StatusForbidden, w.Code)
	s.Equal("Invalid token", s.decode(w)["error"])
}

func (s *APISuite) TestRegisterTwiceSameNIN() {
	gomock.InOrder(
		s.citizens.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, c *domain.Citizen) error {
				c.ID = 1
				c.CreatedAt = time.Now()
				return nil
			}),
		s.citizens.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(&store.ConflictError{Constraint: "idx_citizens_nin"}),
	)

	w := s.do(http.MethodPost, "/api/citizens", validCitizenBody, true)
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	body := s.decode(w)
	s.Equal(true, body["success"])
	s.Equal("Citizen registered successfully", body["message"])
	citizen := body["citizen"].(map[string]any)
	s.Equal("12345678901", citizen["nin"])
	s.Equal("Ngozi", citizen["first_name"])
	s.Equal("1992-11-30", citizen["date_of_birth"])
	s.Nil(citizen["phone"])
	s.Equal(float64(1), testutil.ToFloat64(s.metrics.CitizensRegistered))

	w = s.do(http.MethodPost, "/api/citizens", validCitizenBody, true)
	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal("NIN already exists", s.decode(w)["error"])
}

func (s *APISuite) TestRegisterRejectsBadInput() {
	cases := map[string]string{
		"missing nin": `{"firstName":"A","lastName":"B","dateOfBirth":"1990-01-01"}`,
		"bad date":    `{"nin":"12345678901","firstName":"A","lastName":"B","dateOfBirth":"01/02/1990"}`,
		"short nin":   `{"nin":"123","firstName":"A","lastName":"B","dateOfBirth":"1990-01-01"}`,
		"bad gender":  `{"nin":"12345678901","firstName":"A","lastName":"B","dateOfBirth":"1990-01-01","gender":"X"}`,
		"not json":    `nin=1`,
	}
	for name, body := range cases {
		s.Run(name, func() {
			w := s.do(http.MethodPost, "/api/citizens", body, true)
			s.Equal(http.StatusBadRequest, w.Code)
			s.NotEmpty(s.decode(w)["error"])
		})
	}
}

func (s *APISuite) TestRegisterStoresEmailAsGiven() {
	s.citizens.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c *domain.Citizen) error {
			s.Require().NotNil(c.Email)
			s.Equal("not-an-address", *c.Email)
			c.ID = 7
			return nil
		})

	body := `{"nin":"12345678901","firstName":"A","lastName":"B","dateOfBirth":"1990-01-01","email":"not-an-address"}`
	w := s.do(http.MethodPost, "/api/citizens", body, true)
	s.Equal(http.StatusCreated, w.Code, w.Body.String())
}

func (s *APISuite) TestListCitizens() {
	s.Run("defaults", func() {
		s.citizens.EXPECT().Search(gomock.Any(), "%%", 10, 0).Return([]domain.Citizen{{ID: 1, NIN: "12345678901"}}, nil)
		s.citizens.EXPECT().CountMatching(gomock.Any(), "%%").Return(int64(1), nil)

		w := s.do(http.MethodGet, "/api/citizens", "", true)
		s.Require().Equal(http.StatusOK, w.Code)

		var resp ListCitizensResponse
		s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
		s.Len(resp.Citizens, 1)
		s.Equal(domain.PageInfo{CurrentPage: 1, TotalPages: 1, TotalItems: 1, ItemsPerPage: 10}, resp.Pagination)
	})

	s.Run("search and paging", func() {
		s.citizens.EXPECT().Search(gomock.Any(), "%okafor%", 5, 10).Return(nil, nil)
		s.citizens.EXPECT().CountMatching(gomock.Any(), "%okafor%").Return(int64(11), nil)

		w := s.do(http.MethodGet, "/api/citizens?search=Okafor&page=3&limit=5", "", true)
		s.Require().Equal(http.StatusOK, w.Code)
		s.JSONEq(`{"citizens":[],"pagination":{"currentPage":3,"totalPages":3,"totalItems":11,"itemsPerPage":5}}`, w.Body.String())
	})

	for _, query := range []string{"page=0", "page=abc", "limit=0", "limit=101", "limit=ten"} {
		s.Run(query, func() {
			w := s.do(http.MethodGet, "/api/citizens?"+query, "", true)
			s.Equal(http.StatusBadRequest, w.Code)
			s.Equal("Invalid pagination parameters", s.decode(w)["error"])
		})
	}

	s.Run("store saturated", func() {
		busy := errors.Join(store.ErrUnavailable, context.DeadlineExceeded)
		s.citizens.EXPECT().Search(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, busy)
		s.citizens.EXPECT().CountMatching(gomock.Any(), gomock.Any()).Return(int64(0), busy)

		w := s.do(http.MethodGet, "/api/citizens", "", true)
		s.Equal(http.StatusServiceUnavailable, w.Code)
		s.Equal(retryAfterSeconds, w.Header().Get("Retry-After"))
	})
}

func (s *APISuite) TestGetCitizen() {
	s.Run("found", func() {
		s.citizens.EXPECT().FindByNIN(gomock.Any(), "12345678901").
			Return(&domain.Citizen{ID: 4, NIN: "12345678901", FirstName: "Ngozi"}, nil)

		w := s.do(http.MethodGet, "/api/citizens/12345678901", "", true)
		s.Require().Equal(http.StatusOK, w.Code)
		citizen := s.decode(w)["citizen"].(map[string]any)
		s.Equal("Ngozi", citizen["first_name"])
	})

	s.Run("not found", func() {
		s.citizens.EXPECT().FindByNIN(gomock.Any(), "00000000000").Return(nil, store.ErrNotFound)

		w := s.do(http.MethodGet, "/api/citizens/00000000000", "", true)
		s.Equal(http.StatusNotFound, w.Code)
		s.Equal("Citizen not found", s.decode(w)["error"])
	})

	s.Run("unexpected failure", func() {
		s.citizens.EXPECT().FindByNIN(gomock.Any(), "11111111111").Return(nil, errors.New("connection reset"))

		w := s.do(http.MethodGet, "/api/citizens/11111111111", "", true)
		s.Equal(http.StatusInternalServerError, w.Code)
		s.Equal("Internal server error", s.decode(w)["error"])
	})
}

func (s *APISuite) TestStatistics() {
	lagos := "Lagos"
	female := domain.GenderFemale
	s.stats.EXPECT().CountAll(gomock.Any()).Return(int64(3), nil)
	s.stats.EXPECT().CountCreatedBetween(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(1), nil)
	s.stats.EXPECT().CountByState(gomock.Any()).Return([]domain.StateCount{{StateOfOrigin: &lagos, Count: 2}, {Count: 1}}, nil)
	s.stats.EXPECT().CountByGender(gomock.Any()).Return([]domain.GenderCount{{Gender: &female, Count: 3}}, nil)

	w := s.do(http.MethodGet, "/api/statistics", "", true)
	s.Require().Equal(http.StatusOK, w.Code)
	s.JSONEq(`{
		"totalCitizens": 3,
		"todayRegistrations": 1,
		"stateDistribution": [{"state_of_origin":"Lagos","count":2},{"state_of_origin":null,"count":1}],
		"genderDistribution": [{"gender":"Female","count":3}]
	}`, w.Body.String())
}

func (s *APISuite) TestRateLimit() {
	s.router = s.newRouter(middleware.NewRateLimiter(2, time.Minute, nil))

	s.Equal(http.StatusOK, s.do(http.MethodGet, "/api/health", "", false).Code)
	s.Equal(http.StatusOK, s.do(http.MethodGet, "/api/health", "", false).Code)
	w := s.do(http.MethodGet, "/api/health", "", false)
	s.Equal(http.StatusTooManyRequests, w.Code)
	s.NotEmpty(w.Header().Get("Retry-After"))
}

func (s *APISuite) TestMetricsEndpoint() {
	s.do(http.MethodGet, "/api/health", "", false)

	w := s.do(http.MethodGet, "/metrics", "", false)
	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), `citizen_registry_http_requests_total{method="GET",route="/api/health",status="200"} 1`)
}
