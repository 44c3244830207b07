package nfd

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const aliceAddr = "ALICE7Y2JOFGG2VGB4AKZWBXW4XKVCEF3VTLTBYJDHRCWC3GYVJ4DCBIRM"

func newTestServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL + "/")
}

func TestResolveDomainDepositAccount(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/nfd/alice.algo", r.URL.Path)
		assert.Equal(t, "brief", r.URL.Query().Get("view"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"name":"alice.algo","owner":"OWNER","depositAccount":"` + aliceAddr + `"}`))
	})

	addr, err := c.ResolveDomain(context.Background(), " Alice.Algo ")
	require.NoError(t, err)
	assert.Equal(t, aliceAddr, addr)
}

func TestResolveDomainFallsBackToOwner(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"name":"alice.algo","owner":"` + aliceAddr + `"}`))
	})

	addr, err := c.ResolveDomain(context.Background(), "alice.algo")
	require.NoError(t, err)
	assert.Equal(t, aliceAddr, addr)
}

func TestResolveDomainNotFound(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"name":"notFound"}`, http.StatusNotFound)
	})

	_, err := c.ResolveDomain(context.Background(), "nobody.algo")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResolveDomainServerError(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	})

	_, err := c.ResolveDomain(context.Background(), "alice.algo")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "429")
	assert.Contains(t, err.Error(), "rate limited")
}

func TestResolveDomainBadJSON(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>`))
	})

	_, err := c.ResolveDomain(context.Background(), "alice.algo")
	assert.ErrorContains(t, err, "decoding")
}

func TestResolveDomainHonoursContext(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("request must not be sent")
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.ResolveDomain(ctx, "alice.algo")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestResolveDomainEmptyName(t *testing.T) {
	c := NewClient(MainnetAPI)
	_, err := c.ResolveDomain(context.Background(), "  ")
	assert.Error(t, err)
}
