package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"commuta_admin/internal/models"
	"commuta_admin/internal/session"
)

func newTestClient(t *testing.T, h http.HandlerFunc, token string) (*Client, *session.Session, *int32) {
	t.Helper()
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		h(w, r)
	}))
	t.Cleanup(srv.Close)

	sess := session.New(session.NewMemoryStore(time.Hour), "sid")
	if token != "" {
		require.NoError(t, sess.SetToken(context.Background(), token))
	}
	return New(Config{BaseURL: srv.URL + "/", HTTPClient: srv.Client()}, sess), sess, &hits
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestClient_UnauthenticatedMakesNoRequest(t *testing.T) {
	c, _, hits := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, 200, map[string]any{"data": []any{}})
	}, "")

	calls := map[string]func() error{
		"riders":    func() error { _, err := c.Riders(context.Background()); return err },
		"drivers":   func() error { _, err := c.Drivers(context.Background()); return err },
		"trips":     func() error { _, err := c.Trips(context.Background()); return err },
		"forum":     func() error { _, err := c.ForumUsers(context.Background()); return err },
		"posts":     func() error { _, err := c.ForumActivity(context.Background()); return err },
		"contacts":  func() error { _, err := c.Contacts(context.Background()); return err },
		"owed":      func() error { _, err := c.DriversOwed(context.Background()); return err },
		"history":   func() error { _, err := c.PayoutHistory(context.Background()); return err },
		"summary":   func() error { _, err := c.Summary(context.Background(), 7); return err },
		"mark-paid": func() error { return c.MarkPaid(context.Background(), models.MarkPaidInput{DriverID: "D1", RideIDs: []int64{1}}) },
	}
	for name, call := range calls {
		err := call()
		assert.ErrorIs(t, err, ErrUnauthenticated, name)
		assert.True(t, IsUnauthorized(err), name)
	}
	assert.Equal(t, int32(0), atomic.LoadInt32(hits))
}

func TestClient_UnauthenticatedMessage(t *testing.T) {
	c, _, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {}, "")
	_, err := c.Riders(context.Background())
	require.Error(t, err)
	assert.Equal(t, "Not authenticated", err.Error())
}

func TestClient_TimeoutBoundsRequests(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
		writeJSON(w, 200, map[string]any{"data": []any{}})
	}))
	t.Cleanup(srv.Close)
	t.Cleanup(func() { close(release) })

	sess := session.New(session.NewMemoryStore(time.Hour), "sid")
	require.NoError(t, sess.SetToken(context.Background(), "tok"))
	base := srv.Client()
	c := New(Config{BaseURL: srv.URL, HTTPClient: base, Timeout: 30 * time.Millisecond}, sess)

	start := time.Now()
	_, err := c.Drivers(context.Background())
	require.Error(t, err)
	assert.Less(t, time.Since(start), 2*time.Second)
	assert.Zero(t, base.Timeout)
}

func TestClient_SendsBearerAndUnwrapsData(t *testing.T) {
	c, _, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		assert.Equal(t, "/drivers", r.URL.Path)
		writeJSON(w, 200, map[string]any{
			"status": 200, "error": false, "message": "ok",
			"data": []map[string]any{
				{"id": 7, "name": "John Doe", "isOnline": "1", "totalRides": "12", "averageRating": 4.5},
			},
		})
	}, "tok-1")

	drivers, err := c.Drivers(context.Background())
	require.NoError(t, err)
	require.Len(t, drivers, 1)
	assert.Equal(t, models.ID("7"), drivers[0].ID)
	assert.True(t, drivers[0].IsOnline.Bool())
	assert.Equal(t, models.Count(12), drivers[0].TotalRides)
	assert.Equal(t, models.Amount(4.5), drivers[0].AverageRating)
}

func TestClient_HTTPErrorUsesBodyMessage(t *testing.T) {
	c, _, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusForbidden, map[string]any{"status": 403, "error": true, "message": "Access denied"})
	}, "tok")

	_, err := c.Trips(context.Background())
	var apiErr *Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusForbidden, apiErr.Status)
	assert.Equal(t, "Access denied", apiErr.Message)
}

func TestClient_HTTPErrorFallsBackWhenBodyUnparseable(t *testing.T) {
	c, _, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>bad gateway</html>"))
	}, "tok")

	_, err := c.Contacts(context.Background())
	var apiErr *Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "Failed to fetch contacts", apiErr.Message)
}

func TestClient_EnvelopeErrorOnSuccessStatus(t *testing.T) {
	c, _, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, 200, map[string]any{"status": 422, "error": true, "message": "bad period"})
	}, "tok")

	_, err := c.Summary(context.Background(), 7)
	var apiErr *Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 422, apiErr.Status)
	assert.Equal(t, "bad period", apiErr.Message)
}

func TestClient_MissingDataIsMalformed(t *testing.T) {
	c, _, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, 200, map[string]any{"status": 200, "error": false, "data": nil})
	}, "tok")

	_, err := c.Riders(context.Background())
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestClient_Unauthorized401(t *testing.T) {
	c, _, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, map[string]any{"message": "token expired"})
	}, "tok")

	_, err := c.Riders(context.Background())
	assert.True(t, IsUnauthorized(err))
}

func TestClient_SummarySendsPeriod(t *testing.T) {
	c, _, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "30", r.URL.Query().Get("period"))
		writeJSON(w, 200, map[string]any{"data": map[string]any{
			"overview": map[string]any{"riders": map[string]any{"total": 10, "recent": 2}},
			"trends":   []map[string]any{{"date": "2024-W03", "riders": 3, "drivers": 1}},
		}})
	}, "tok")

	s, err := c.Summary(context.Background(), 30)
	require.NoError(t, err)
	assert.Equal(t, models.Count(10), s.Overview.Riders.Total)
	require.Len(t, s.Trends, 1)
	assert.Equal(t, "2024-W03", s.Trends[0].Date)
}

func TestClient_DriversOwedNormalised(t *testing.T) {
	c, _, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, 200, map[string]any{"data": []map[string]any{{
			"driverId": "D1", "driverName": "Ada", "expectedEarning": "1500.5",
			"trips": "3", "lastTripDate": "2024-05-01T10:00:00Z", "rideIds": []int{1, 2, 3},
		}}})
	}, "tok")

	owed, err := c.DriversOwed(context.Background())
	require.NoError(t, err)
	require.Len(t, owed, 1)
	assert.Equal(t, models.ID("D1"), owed[0].ID)
	assert.Equal(t, models.Amount(1500.5), owed[0].AmountOwed)
	assert.Equal(t, models.Count(3), owed[0].TripCount)
	assert.Equal(t, []int64{1, 2, 3}, owed[0].RideIDs)
}

func TestClient_MarkPaidPostsBody(t *testing.T) {
	c, _, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/payout/mark-paid", r.URL.Path)
		var in models.MarkPaidInput
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, "D1", in.DriverID)
		assert.Equal(t, []int64{1, 2, 3}, in.RideIDs)
		writeJSON(w, 200, map[string]any{"status": 200, "error": false, "message": "paid"})
	}, "tok")

	require.NoError(t, c.MarkPaid(context.Background(), models.MarkPaidInput{DriverID: "D1", RideIDs: []int64{1, 2, 3}}))
}

func TestClient_MarkPaidRejectsEmptyRides(t *testing.T) {
	c, _, hits := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {}, "tok")

	err := c.MarkPaid(context.Background(), models.MarkPaidInput{DriverID: "D1"})
	assert.Error(t, err)
	assert.Equal(t, int32(0), atomic.LoadInt32(hits))
}

func TestClient_LoginStoresToken(t *testing.T) {
	c, sess, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		var p loginPayload
		require.NoError(t, json.NewDecoder(r.Body).Decode(&p))
		assert.Equal(t, "admin@example.com", p.EmailAddress)
		writeJSON(w, 200, map[string]any{"status": 200, "error": false, "token": "fresh"})
	}, "")

	require.NoError(t, c.Login(context.Background(), "admin@example.com", "pw"))
	tok, err := sess.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "fresh", tok)

	require.NoError(t, c.Logout(context.Background()))
	tok, _ = sess.Token(context.Background())
	assert.Empty(t, tok)
}

func TestClient_LoginFailure(t *testing.T) {
	c, sess, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, map[string]any{"error": true, "message": "Invalid credentials"})
	}, "")

	err := c.Login(context.Background(), "a@b.c", "nope")
	require.Error(t, err)
	assert.Equal(t, "Invalid credentials", err.Error())
	tok, _ := sess.Token(context.Background())
	assert.Empty(t, tok)
}
