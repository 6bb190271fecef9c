package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-redis/redis_rate/v10"
	"github.com/google/go-cmp/cmp"
	"github.com/ijalalfrz/itinerary-diff-service/internal/app/dto"
	"github.com/ijalalfrz/itinerary-diff-service/internal/pkg/exception"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRateLimiter struct {
	mock.Mock
}

func (m *MockRateLimiter) Allow(ctx context.Context, key string, limit redis_rate.Limit) (*redis_rate.Result, error) {
	args := m.Called(ctx, key, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*redis_rate.Result), args.Error(1)
}

func TestRateLimit_Closure(t *testing.T) {
	rateLimitRequest := func(setupMock func(m *MockRateLimiter), wantStatus int) func(t *testing.T) {
		return func(t *testing.T) {
			m := &MockRateLimiter{}
			setupMock(m)
			defer m.AssertExpectations(t)

			handler := RateLimit(m, 5)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusNoContent)
			}))

			req := httptest.NewRequest(http.MethodGet, "/api/v1/itineraries/via_3", nil)
			req.RemoteAddr = "10.0.0.1:51234"
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)
			assert.Equal(t, wantStatus, rec.Code)
		}
	}

	key := "limit:itineraries:10.0.0.1"

	t.Run("allowed", rateLimitRequest(func(m *MockRateLimiter) {
		m.On("Allow", mock.Anything, key, redis_rate.PerSecond(5)).Return(&redis_rate.Result{Allowed: 1}, nil)
	}, http.StatusNoContent))

	t.Run("denied", rateLimitRequest(func(m *MockRateLimiter) {
		m.On("Allow", mock.Anything, key, redis_rate.PerSecond(5)).Return(&redis_rate.Result{Allowed: 0}, nil)
	}, http.StatusTooManyRequests))

	t.Run("limiter_failure_lets_request_through", rateLimitRequest(func(m *MockRateLimiter) {
		m.On("Allow", mock.Anything, key, redis_rate.PerSecond(5)).Return(nil, errors.New("redis down"))
	}, http.StatusNoContent))
}

func TestErrorResponse_Closure(t *testing.T) {
	errNotFound := exception.ApplicationError{StatusCode: http.StatusNotFound, Message: "unknown source"}

	errorRequest := func(err error, wantStatus int, want dto.ErrorResponse) func(t *testing.T) {
		return func(t *testing.T) {
			rec := httptest.NewRecorder()
			ErrorResponse(context.Background(), err, rec)

			assert.Equal(t, wantStatus, rec.Code)
			assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))

			var got dto.ErrorResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf("ErrorResponse() mismatch (-want +got):\n%s", diff)
			}
		}
	}

	t.Run("sentinel", errorRequest(errNotFound, http.StatusNotFound, dto.ErrorResponse{Error: "unknown source"}))
	t.Run("wrapped_sentinel", errorRequest(fmt.Errorf("source %q: %w", "amadeus", errNotFound), http.StatusNotFound,
		dto.ErrorResponse{Error: "unknown source", Detail: `source "amadeus": unknown source`}))
	t.Run("unknown_error", errorRequest(errors.New("boom"), http.StatusInternalServerError,
		dto.ErrorResponse{Error: "boom"}))
}

func TestDecodeRequest_Closure(t *testing.T) {
	require.NoError(t, dto.InitValidator())

	decodeRequest := func(body string, want *dto.DiffRequest, wantStatus int) func(t *testing.T) {
		return func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/itineraries/diff", strings.NewReader(body))
			req.Header.Set("Content-Type", "application/json")

			got, err := DecodeRequest[dto.DiffRequest](context.Background(), req)
			if wantStatus != 0 {
				var appErr exception.ApplicationError
				require.ErrorAs(t, err, &appErr)
				assert.Equal(t, wantStatus, appErr.StatusCode)
				return
			}

			require.NoError(t, err)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf("DecodeRequest() mismatch (-want +got):\n%s", diff)
			}
		}
	}

	t.Run("valid", decodeRequest(`{"baseline_source":"via_3","candidate_source":"via_ow"}`,
		&dto.DiffRequest{BaselineSource: "via_3", CandidateSource: "via_ow"}, 0))
	t.Run("validation_error", decodeRequest(`{"baseline_source":"via_3"}`, nil, http.StatusBadRequest))
	t.Run("invalid_json", decodeRequest(`{"baseline_source":`, nil, http.StatusBadRequest))
}
