package booking

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/mock"

	"github.com/hamzamalik/flight-booking-assistant/internal/pkg/flight"
)

func TestSessionStore_GetLockKey_Closure(t *testing.T) {
	getLockKeyRequest := func(sessionID, want string) func(t *testing.T) {
		return func(t *testing.T) {
			s := &SessionStore{}
			got := s.GetLockKey(sessionID)
			if got != want {
				t.Fatalf("expected %s, got %s", want, got)
			}
		}
	}

	t.Run("basic_lock_key", getLockKeyRequest("abc-123", "booking:lock:abc-123"))
}

func TestSessionStore_AcquireLock_Closure(t *testing.T) {
	acquireLockRequest := func(key string, timeout time.Duration, mockSetup func(m *MockRedisClient), want bool) func(t *testing.T) {
		return func(t *testing.T) {
			m := NewMockRedisClient(t)
			mockSetup(m)
			s := NewSessionStore(m)

			got, err := s.AcquireLock(context.Background(), key, timeout)
			if err != nil {
				t.Fatalf("AcquireLock returned error: %v", err)
			}
			if got != want {
				t.Fatalf("expected %v, got %v", want, got)
			}
		}
	}

	t.Run("lock_acquired", acquireLockRequest("test-key", 5*time.Second, func(m *MockRedisClient) {
		m.On("SetNX", mock.Anything, "test-key", "1", 5*time.Second).Return(redis.NewBoolResult(true, nil))
	}, true))

	t.Run("lock_not_acquired", acquireLockRequest("test-key", 5*time.Second, func(m *MockRedisClient) {
		m.On("SetNX", mock.Anything, "test-key", "1", 5*time.Second).Return(redis.NewBoolResult(false, nil))
	}, false))
}

func TestSessionStore_SetSession_Closure(t *testing.T) {
	setSessionRequest := func(session Session, exp time.Duration, mockSetup func(m *MockRedisClient)) func(t *testing.T) {
		return func(t *testing.T) {
			m := NewMockRedisClient(t)
			mockSetup(m)
			s := NewSessionStore(m)

			err := s.SetSession(context.Background(), session, exp)
			if err != nil {
				t.Fatalf("SetSession returned error: %v", err)
			}
		}
	}

	session := Session{ID: "abc-123", State: StateSearched}

	t.Run("success", setSessionRequest(session, 30*time.Minute, func(m *MockRedisClient) {
		m.On("Set", mock.Anything, "booking:session:abc-123", mock.Anything, 30*time.Minute).
			Return(redis.NewStatusResult("OK", nil))
	}))
}

func TestSessionStore_GetSession_Closure(t *testing.T) {
	getSessionRequest := func(sessionID string, mockSetup func(m *MockRedisClient), want Session, wantErr error) func(t *testing.T) {
		return func(t *testing.T) {
			m := NewMockRedisClient(t)
			mockSetup(m)
			s := NewSessionStore(m)

			got, err := s.GetSession(context.Background(), sessionID)
			if wantErr != nil {
				if !errors.Is(err, wantErr) {
					t.Fatalf("expected error %v, got %v", wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("GetSession returned error: %v", err)
			}

			diff := cmp.Diff(want, got)
			if diff != "" {
				t.Fatalf("GetSession mismatch (-want +got):\n%s", diff)
			}
		}
	}

	session := Session{
		ID:    "abc-123",
		State: StateSearched,
		Flights: []flight.Record{
			{FlightNo: "PK301", Departure: "Karachi", Arrival: "Islamabad", Time: "08:00 AM", Price: 15000},
		},
	}
	data, _ := json.Marshal(session)

	t.Run("success", getSessionRequest("abc-123", func(m *MockRedisClient) {
		m.On("Get", mock.Anything, "booking:session:abc-123").Return(redis.NewStringResult(string(data), nil))
	}, session, nil))

	t.Run("not_found", getSessionRequest("missing", func(m *MockRedisClient) {
		m.On("Get", mock.Anything, "booking:session:missing").Return(redis.NewStringResult("", redis.Nil))
	}, Session{}, ErrSessionNotFound))
}
