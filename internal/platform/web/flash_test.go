package web

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"petclinic/internal/platform/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlasher_RoundTrip(t *testing.T) {
	f := NewFlasher(NewMemoryFlashStore(), time.Minute, logger.Nop())

	rr := httptest.NewRecorder()
	require.NoError(t, f.Set(rr, httptest.NewRequest(http.MethodPost, "/owners/new", nil), Flash{Message: "New Owner Created"}))

	cookies := rr.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, flashCookie, cookies[0].Name)

	var seen []Flash
	h := f.Middleware(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		if fl, ok := FlashFrom(r.Context()); ok {
			seen = append(seen, fl)
		}
	}))

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodGet, "/owners/1", nil)
		req.AddCookie(cookies[0])
		h.ServeHTTP(httptest.NewRecorder(), req)
	}

	require.Len(t, seen, 1)
	assert.Equal(t, "New Owner Created", seen[0].Message)
}

func TestFlasher_ReusesValidCookie(t *testing.T) {
	f := NewFlasher(NewMemoryFlashStore(), time.Minute, nil)
	id := "3f2504e0-4f89-11d3-9a0c-0305e82c3301"

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.AddCookie(&http.Cookie{Name: flashCookie, Value: id})
	rr := httptest.NewRecorder()
	require.NoError(t, f.Set(rr, req, Flash{Error: "boom"}))
	assert.Equal(t, id, rr.Result().Cookies()[0].Value)

	req = httptest.NewRequest(http.MethodPost, "/", nil)
	req.AddCookie(&http.Cookie{Name: flashCookie, Value: "not-a-uuid"})
	rr = httptest.NewRecorder()
	require.NoError(t, f.Set(rr, req, Flash{Error: "boom"}))
	assert.NotEqual(t, "not-a-uuid", rr.Result().Cookies()[0].Value)
}

func TestMemoryFlashStore_Expires(t *testing.T) {
	s := NewMemoryFlashStore()
	now := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	require.NoError(t, s.Put(context.Background(), "a", Flash{Message: "hi"}, time.Minute))
	now = now.Add(2 * time.Minute)

	_, ok, err := s.Pop(context.Background(), "a")
	require.NoError(t, err)
	assert.False(t, ok)
}
