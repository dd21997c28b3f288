package http_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	httpin "wholesale/internal/adapters/in/http"
	"wholesale/internal/core/domain/model/kernel"
	"wholesale/internal/pkg/errs"

	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

type IdempotencyIntegrationTestSuite struct {
	suite.Suite
	ctx       context.Context
	container testcontainers.Container
	client    *redis.Client
}

func TestIdempotencyIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	suite.Run(t, new(IdempotencyIntegrationTestSuite))
}

func (s *IdempotencyIntegrationTestSuite) SetupSuite() {
	s.ctx = context.Background()

	container, err := testcontainers.GenericContainer(s.ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	s.Require().NoError(err)
	s.container = container

	endpoint, err := container.Endpoint(s.ctx, "")
	s.Require().NoError(err)
	s.client = redis.NewClient(&redis.Options{Addr: endpoint})
}

func (s *IdempotencyIntegrationTestSuite) TearDownSuite() {
	if s.client != nil {
		_ = s.client.Close()
	}
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func (s *IdempotencyIntegrationTestSuite) SetupTest() {
	s.Require().NoError(s.client.FlushAll(s.ctx).Err())
}

func (s *IdempotencyIntegrationTestSuite) router(handlers httpin.Handlers) *echo.Echo {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	e, err := httpin.NewRouter(httpin.NewServer(handlers), httpin.RouterConfig{
		Redis:          s.client,
		IdempotencyTTL: time.Minute,
	}, logger)
	s.Require().NoError(err)
	return e
}

func (s *IdempotencyIntegrationTestSuite) post(e *echo.Echo, key string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(validOrder))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if key != "" {
		req.Header.Set(httpin.IdempotencyKeyHeader, key)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func (s *IdempotencyIntegrationTestSuite) TestRetryReplaysFirstResponse() {
	createOrder := new(MockCreateOrderHandler)
	createOrder.On("Handle", mock.Anything, mock.Anything).Return(kernel.ID(42), nil).Once()
	e := s.router(httpin.Handlers{CreateOrder: createOrder})

	first := s.post(e, "order-42")
	second := s.post(e, "order-42")

	s.Equal(http.StatusCreated, first.Code)
	s.Equal(http.StatusCreated, second.Code)
	s.JSONEq(first.Body.String(), second.Body.String())
	s.Empty(first.Header().Get(httpin.IdempotentReplayHeader))
	s.Equal("true", second.Header().Get(httpin.IdempotentReplayHeader))
	createOrder.AssertNumberOfCalls(s.T(), "Handle", 1)
}

func (s *IdempotencyIntegrationTestSuite) TestDistinctKeysExecuteSeparately() {
	createOrder := new(MockCreateOrderHandler)
	createOrder.On("Handle", mock.Anything, mock.Anything).Return(kernel.ID(1), nil).Once()
	createOrder.On("Handle", mock.Anything, mock.Anything).Return(kernel.ID(2), nil).Once()
	e := s.router(httpin.Handlers{CreateOrder: createOrder})

	s.JSONEq(`{"id":1}`, s.post(e, "a").Body.String())
	s.JSONEq(`{"id":2}`, s.post(e, "b").Body.String())
}

func (s *IdempotencyIntegrationTestSuite) TestFailedRequestReleasesKey() {
	createOrder := new(MockCreateOrderHandler)
	createOrder.On("Handle", mock.Anything, mock.Anything).
		Return(kernel.ID(0), errs.NewTransientStoreError("insert order", io.ErrUnexpectedEOF)).Once()
	createOrder.On("Handle", mock.Anything, mock.Anything).Return(kernel.ID(7), nil).Once()
	e := s.router(httpin.Handlers{CreateOrder: createOrder})

	first := s.post(e, "retry-me")
	second := s.post(e, "retry-me")

	s.Equal(http.StatusServiceUnavailable, first.Code)
	s.Equal(http.StatusCreated, second.Code)
	s.JSONEq(`{"id":7}`, second.Body.String())
	createOrder.AssertExpectations(s.T())
}

func (s *IdempotencyIntegrationTestSuite) TestCommitFailedKeepsKey() {
	createOrder := new(MockCreateOrderHandler)
	createOrder.On("Handle", mock.Anything, mock.Anything).
		Return(kernel.ID(0), errs.NewCommitFailedError(io.ErrUnexpectedEOF)).Once()
	e := s.router(httpin.Handlers{CreateOrder: createOrder})

	first := s.post(e, "maybe-applied")
	second := s.post(e, "maybe-applied")

	s.Equal(http.StatusInternalServerError, first.Code)
	s.Contains(first.Body.String(), `"commitUnknown":true`)
	s.Equal(http.StatusConflict, second.Code)
	s.Contains(second.Body.String(), "re-read")
	createOrder.AssertNumberOfCalls(s.T(), "Handle", 1)

	marker, err := s.client.Get(s.ctx, "idempotency:/api/orders:maybe-applied").Result()
	s.Require().NoError(err)
	s.Equal("unknown", marker)
}

func (s *IdempotencyIntegrationTestSuite) TestPendingKeyConflicts() {
	s.Require().NoError(s.client.Set(s.ctx, "idempotency:/api/orders:busy", "pending", time.Minute).Err())
	createOrder := new(MockCreateOrderHandler)
	e := s.router(httpin.Handlers{CreateOrder: createOrder})

	rec := s.post(e, "busy")

	s.Equal(http.StatusConflict, rec.Code)
	createOrder.AssertNotCalled(s.T(), "Handle", mock.Anything, mock.Anything)
}

func (s *IdempotencyIntegrationTestSuite) TestRequestsWithoutKeyAreNotTracked() {
	createOrder := new(MockCreateOrderHandler)
	createOrder.On("Handle", mock.Anything, mock.Anything).Return(kernel.ID(3), nil).Twice()
	e := s.router(httpin.Handlers{CreateOrder: createOrder})

	s.post(e, "")
	s.post(e, "")

	keys, err := s.client.Keys(s.ctx, "idempotency:*").Result()
	s.Require().NoError(err)
	s.Empty(keys)
	createOrder.AssertExpectations(s.T())
}
