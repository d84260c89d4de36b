package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/event_split_app/internal/apperrors"
	"github.com/SscSPs/event_split_app/internal/core/domain"
	portsrepo "github.com/SscSPs/event_split_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/event_split_app/internal/core/ports/services"
	"github.com/SscSPs/event_split_app/internal/core/services"
	"github.com/SscSPs/event_split_app/internal/dto"
	"github.com/SscSPs/event_split_app/internal/handlers"
	"github.com/SscSPs/event_split_app/internal/middleware"
	"github.com/SscSPs/event_split_app/internal/platform/config"
	"github.com/SscSPs/event_split_app/internal/repositories/memory"
	"github.com/SscSPs/event_split_app/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const testJWTSecret = "handlers-test-secret"

// --- Mock BalanceService ---
type MockBalanceService struct {
	mock.Mock
}

func (m *MockBalanceService) ComputeBalances(ctx context.Context, eventID string) (map[string]int64, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int64), args.Error(1)
}

func (m *MockBalanceService) ComputeSettlements(ctx context.Context, eventID string) ([]domain.Settlement, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Settlement), args.Error(1)
}

func (m *MockBalanceService) Summary(ctx context.Context, eventID string) (*domain.EventSummary, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EventSummary), args.Error(1)
}

var _ portssvc.BalanceSvcFacade = (*MockBalanceService)(nil)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	hash, err := utils.HashPassword("organizer-pw")
	require.NoError(t, err)
	return &config.Config{
		IsProduction:          true,
		JWTSecret:             testJWTSecret,
		JWTExpiryDuration:     time.Hour,
		JWTIssuer:             "handlers-test",
		OrganizerPasswordHash: hash,
		JoinRateLimit:         "3-M",
	}
}

func newTestRouter(t *testing.T, cfg *config.Config, container *portssvc.ServiceContainer) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))))
	require.NoError(t, handlers.RegisterRoutes(r, cfg, container))
	return r
}

// HandlersTestSuite drives the HTTP surface against real services on an in-memory store.
type HandlersTestSuite struct {
	suite.Suite
	cfg       *config.Config
	container *portssvc.ServiceContainer
	router    *gin.Engine
	token     string
}

func (s *HandlersTestSuite) SetupTest() {
	s.cfg = testConfig(s.T())
	s.container = services.NewServiceContainer(s.cfg, portsrepo.RepositoryProvider{State: memory.NewStateStore()})
	s.Require().NoError(s.container.State.Load(context.Background()))
	s.router = newTestRouter(s.T(), s.cfg, s.container)

	token, _, err := utils.GenerateJWT("organizer", testJWTSecret, time.Hour, "handlers-test")
	s.Require().NoError(err)
	s.token = token
}

func TestHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(HandlersTestSuite))
}

func (s *HandlersTestSuite) do(method, path string, body any, authed bool) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if authed {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decode[T any](s *HandlersTestSuite, w *httptest.ResponseRecorder) T {
	var out T
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func (s *HandlersTestSuite) createEvent(title string) dto.EventResponse {
	w := s.do(http.MethodPost, "/api/v1/events", dto.CreateEventRequest{Title: title}, true)
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	return decode[dto.EventResponse](s, w)
}

func (s *HandlersTestSuite) addParticipant(eventID, name string) dto.ParticipantResponse {
	w := s.do(http.MethodPost, "/api/v1/events/"+eventID+"/participants", dto.CreateParticipantRequest{Name: name}, true)
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	return decode[dto.ParticipantResponse](s, w)
}

func (s *HandlersTestSuite) TestHealth() {
	w := s.do(http.MethodGet, "/health", nil, false)
	s.Assert().Equal(http.StatusOK, w.Code)
	s.Assert().Equal("OK", w.Body.String())
}

func (s *HandlersTestSuite) TestLogin() {
	w := s.do(http.MethodPost, "/auth/token", dto.LoginRequest{Password: "nope"}, false)
	s.Assert().Equal(http.StatusUnauthorized, w.Code)

	w = s.do(http.MethodPost, "/auth/token", dto.LoginRequest{Password: "organizer-pw"}, false)
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	resp := decode[dto.LoginResponse](s, w)
	s.Assert().NotEmpty(resp.Token)
	s.Assert().Greater(resp.ExpiresAt, time.Now().Unix())

	s.token = resp.Token
	w = s.do(http.MethodGet, "/api/v1/events", nil, true)
	s.Assert().Equal(http.StatusOK, w.Code)
}

func (s *HandlersTestSuite) TestOrganizerRoutesRequireToken() {
	w := s.do(http.MethodGet, "/api/v1/events", nil, false)
	s.Assert().Equal(http.StatusUnauthorized, w.Code)
}

func (s *HandlersTestSuite) TestEventLookup() {
	event := s.createEvent("Ski trip")
	s.Assert().Len(event.Code, domain.EventCodeLength)

	w := s.do(http.MethodGet, "/api/v1/public/events/"+strings.ToLower(event.Code), nil, false)
	s.Require().Equal(http.StatusOK, w.Code)
	public := decode[dto.PublicEventResponse](s, w)
	s.Assert().Equal("Ski trip", public.Title)

	w = s.do(http.MethodGet, "/api/v1/events/"+event.EventID, nil, true)
	s.Assert().Equal(http.StatusOK, w.Code)

	w = s.do(http.MethodGet, "/api/v1/events/missing", nil, true)
	s.Assert().Equal(http.StatusNotFound, w.Code)

	w = s.do(http.MethodPost, "/api/v1/events", map[string]string{}, true)
	s.Assert().Equal(http.StatusBadRequest, w.Code)
}

func (s *HandlersTestSuite) TestJoinRequestFlow() {
	event := s.createEvent("Dinner club")

	w := s.do(http.MethodPost, "/api/v1/public/join-requests", dto.CreateJoinRequestRequest{EventCode: "abc", Name: "Dana"}, false)
	s.Assert().Equal(http.StatusBadRequest, w.Code, "malformed code rejected at binding")

	w = s.do(http.MethodPost, "/api/v1/public/join-requests", dto.CreateJoinRequestRequest{
		EventCode: strings.ToLower(event.Code), Name: "Dana", Email: "dana@example.com",
	}, false)
	s.Require().Equal(http.StatusAccepted, w.Code, w.Body.String())
	created := decode[dto.CreateJoinRequestResponse](s, w)

	w = s.do(http.MethodGet, "/api/v1/events/"+event.EventID+"/join-requests", nil, true)
	s.Require().Equal(http.StatusOK, w.Code)
	pending := decode[dto.ListJoinRequestsResponse](s, w)
	s.Require().Len(pending.JoinRequests, 1)
	s.Assert().Equal(created.JoinRequestID, pending.JoinRequests[0].JoinRequestID)

	w = s.do(http.MethodPost, "/api/v1/join-requests/"+created.JoinRequestID+"/accept", nil, true)
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	participant := decode[dto.ParticipantResponse](s, w)
	s.Assert().Equal("Dana", participant.Name)
	s.Assert().Equal(event.EventID, participant.EventID)

	w = s.do(http.MethodPost, "/api/v1/join-requests/"+created.JoinRequestID+"/accept", nil, true)
	s.Assert().Equal(http.StatusConflict, w.Code)

	w = s.do(http.MethodGet, "/api/v1/events/"+event.EventID+"/join-requests", nil, true)
	s.Require().Equal(http.StatusOK, w.Code)
	s.Assert().Empty(decode[dto.ListJoinRequestsResponse](s, w).JoinRequests)

	w = s.do(http.MethodDelete, "/api/v1/join-requests/"+created.JoinRequestID, nil, true)
	s.Assert().Equal(http.StatusNoContent, w.Code)
	w = s.do(http.MethodDelete, "/api/v1/join-requests/"+created.JoinRequestID, nil, true)
	s.Assert().Equal(http.StatusNoContent, w.Code)
}

func (s *HandlersTestSuite) TestLedgerAndBalances() {
	event := s.createEvent("Road trip")
	a := s.addParticipant(event.EventID, "A")
	b := s.addParticipant(event.EventID, "B")

	w := s.do(http.MethodPost, "/api/v1/events/"+event.EventID+"/transactions", dto.CreateTransactionRequest{
		PayerID: a.ParticipantID, Participants: []string{a.ParticipantID, b.ParticipantID}, Amount: 300, Source: domain.SourceCard,
	}, true)
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	txn := decode[dto.TransactionResponse](s, w)
	s.Assert().Equal("3.00", txn.AmountFormatted)

	w = s.do(http.MethodPost, "/api/v1/events/"+event.EventID+"/transactions", dto.CreateTransactionRequest{
		PayerID: a.ParticipantID, Participants: []string{a.ParticipantID}, Amount: 10, Source: "cheque",
	}, true)
	s.Assert().Equal(http.StatusBadRequest, w.Code)

	w = s.do(http.MethodPost, "/api/v1/events/"+event.EventID+"/transactions", dto.CreateTransactionRequest{
		PayerID: a.ParticipantID, Participants: []string{b.ParticipantID}, Amount: math.MaxInt64, Source: domain.SourceCash,
	}, true)
	s.Assert().Equal(http.StatusBadRequest, w.Code)

	w = s.do(http.MethodGet, "/api/v1/events/"+event.EventID+"/balances", nil, true)
	s.Require().Equal(http.StatusOK, w.Code)
	balances := decode[dto.BalancesResponse](s, w)
	got := map[string]int64{}
	for _, bal := range balances.Balances {
		got[bal.ParticipantID] = bal.Amount
	}
	s.Assert().Equal(map[string]int64{a.ParticipantID: 150, b.ParticipantID: -150}, got)

	w = s.do(http.MethodGet, "/api/v1/events/"+event.EventID+"/settlements", nil, true)
	s.Require().Equal(http.StatusOK, w.Code)
	settlements := decode[dto.SettlementsResponse](s, w)
	s.Require().Len(settlements.Settlements, 1)
	s.Assert().Equal(b.ParticipantID, settlements.Settlements[0].FromID)
	s.Assert().Equal(a.ParticipantID, settlements.Settlements[0].ToID)
	s.Assert().Equal(int64(150), settlements.Settlements[0].Amount)

	w = s.do(http.MethodDelete, "/api/v1/participants/"+a.ParticipantID, nil, true)
	s.Assert().Equal(http.StatusConflict, w.Code)

	amount := int64(500)
	w = s.do(http.MethodPatch, "/api/v1/transactions/"+txn.TransactionID, dto.UpdateTransactionRequest{Amount: &amount}, true)
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	s.Assert().Equal(int64(500), decode[dto.TransactionResponse](s, w).Amount)

	w = s.do(http.MethodDelete, "/api/v1/transactions/"+txn.TransactionID, nil, true)
	s.Assert().Equal(http.StatusNoContent, w.Code)
	w = s.do(http.MethodDelete, "/api/v1/transactions/"+txn.TransactionID, nil, true)
	s.Assert().Equal(http.StatusNoContent, w.Code)

	w = s.do(http.MethodDelete, "/api/v1/participants/"+a.ParticipantID, nil, true)
	s.Assert().Equal(http.StatusNoContent, w.Code)
}

func (s *HandlersTestSuite) TestTransactionPagination() {
	event := s.createEvent("Weekend")
	a := s.addParticipant(event.EventID, "A")
	for i := 1; i <= 3; i++ {
		w := s.do(http.MethodPost, "/api/v1/events/"+event.EventID+"/transactions", dto.CreateTransactionRequest{
			PayerID: a.ParticipantID, Participants: []string{a.ParticipantID}, Amount: int64(i * 100),
		}, true)
		s.Require().Equal(http.StatusCreated, w.Code)
	}

	w := s.do(http.MethodGet, "/api/v1/events/"+event.EventID+"/transactions?limit=2", nil, true)
	s.Require().Equal(http.StatusOK, w.Code)
	first := decode[dto.ListTransactionsResponse](s, w)
	s.Require().Len(first.Transactions, 2)
	s.Assert().Equal(int64(300), first.Transactions[0].Amount, "newest first")
	s.Require().NotNil(first.NextToken)

	w = s.do(http.MethodGet, fmt.Sprintf("/api/v1/events/%s/transactions?limit=2&nextToken=%s", event.EventID, *first.NextToken), nil, true)
	s.Require().Equal(http.StatusOK, w.Code)
	second := decode[dto.ListTransactionsResponse](s, w)
	s.Require().Len(second.Transactions, 1)
	s.Assert().Equal(int64(100), second.Transactions[0].Amount)
	s.Assert().Nil(second.NextToken)

	w = s.do(http.MethodGet, "/api/v1/events/"+event.EventID+"/transactions?nextToken=%25%25", nil, true)
	s.Assert().Equal(http.StatusBadRequest, w.Code)

	w = s.do(http.MethodGet, "/api/v1/events/missing/transactions", nil, true)
	s.Assert().Equal(http.StatusNotFound, w.Code)
}

func (s *HandlersTestSuite) TestAdminSync() {
	w := s.do(http.MethodPost, "/api/v1/admin/sync?force=true", nil, true)
	s.Require().Equal(http.StatusOK, w.Code)
	resp := decode[dto.SyncResponse](s, w)
	s.Assert().Len(resp.Synced, 4)

	w = s.do(http.MethodPost, "/api/v1/admin/sync", nil, true)
	s.Require().Equal(http.StatusOK, w.Code)
	s.Assert().Empty(decode[dto.SyncResponse](s, w).Synced)

	w = s.do(http.MethodGet, "/api/v1/admin/state", nil, true)
	s.Require().Equal(http.StatusOK, w.Code)
	s.Assert().Empty(decode[dto.StateStatusResponse](s, w).Dirty)
}

func TestJoinRequestsAreRateLimited(t *testing.T) {
	cfg := testConfig(t)
	container := services.NewServiceContainer(cfg, portsrepo.RepositoryProvider{State: memory.NewStateStore()})
	r := newTestRouter(t, cfg, container)

	var last int
	for i := 0; i < 4; i++ {
		body := strings.NewReader(`{"eventCode":"ABCDEFGH","name":"Guest"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/public/join-requests", body)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		last = w.Code
		if i < 3 {
			assert.Equal(t, http.StatusNotFound, w.Code)
		}
	}
	assert.Equal(t, http.StatusTooManyRequests, last)
}

func TestBalanceErrorsMapToStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"unknown event", apperrors.NewNotFoundError("event x not found"), http.StatusNotFound},
		{"store down", apperrors.NewPersistenceError("failed to load", fmt.Errorf("dial tcp: refused")), http.StatusServiceUnavailable},
		{"corrupt ledger", apperrors.NewIntegrityError("unknown participant"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(t)
			container := services.NewServiceContainer(cfg, portsrepo.RepositoryProvider{State: memory.NewStateStore()})
			balances := new(MockBalanceService)
			balances.On("ComputeBalances", mock.Anything, "evt-1").Return(nil, tt.err)
			container.Balance = balances
			r := newTestRouter(t, cfg, container)

			token, _, err := utils.GenerateJWT("organizer", testJWTSecret, time.Hour, "handlers-test")
			require.NoError(t, err)
			req := httptest.NewRequest(http.MethodGet, "/api/v1/events/evt-1/balances", nil)
			req.Header.Set("Authorization", "Bearer "+token)
			req.Header.Set("X-Request-ID", "req-42")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.want, w.Code)
			var body handlers.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			if tt.want >= http.StatusInternalServerError {
				assert.Equal(t, "req-42", body.RequestID)
			} else {
				assert.Empty(t, body.RequestID)
			}
			balances.AssertExpectations(t)
		})
	}
}
