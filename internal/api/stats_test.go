package api

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStats(t *testing.T) {
	r, _ := newTestServer(t)
	token := registerAndLogin(t, r, "alice", "alice@example.com", "hunter22")

	for _, result := range []string{"10", "-5", "0", "20"} {
		createTrade(t, r, token, gin.H{"pair": "EURUSD", "side": "BUY", "entry": 1.1, "result": result})
	}

	w := doJSON(t, r, http.MethodGet, "/api/stats", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.EqualValues(t, 4, body["totalTrades"])
	assert.EqualValues(t, 2, body["wins"])   // 10 and 20
	assert.EqualValues(t, 1, body["losses"]) // -5; break-even counts toward neither
	assert.InDelta(t, 50.0, body["winrate"], 0.001)
	assert.InDelta(t, 25.0, body["totalPnl"], 0.001)
}

func TestStatsZeroTrades(t *testing.T) {
	r, _ := newTestServer(t)
	token := registerAndLogin(t, r, "alice", "alice@example.com", "hunter22")

	w := doJSON(t, r, http.MethodGet, "/api/stats", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.EqualValues(t, 0, body["totalTrades"])
	assert.EqualValues(t, 0, body["wins"])
	assert.EqualValues(t, 0, body["losses"])
	assert.EqualValues(t, 0, body["winrate"]) // No division by zero
	assert.EqualValues(t, 0, body["totalPnl"])
}

func TestStatsWinrateRounding(t *testing.T) {
	r, _ := newTestServer(t)
	token := registerAndLogin(t, r, "alice", "alice@example.com", "hunter22")

	// 1 win out of 3 trades: 33.333... rounds to 33.33
	for _, result := range []string{"7.5", "-2.5", "-1"} {
		createTrade(t, r, token, gin.H{"pair": "USDJPY", "side": "SELL", "entry": 155.02, "result": result})
	}

	w := doJSON(t, r, http.MethodGet, "/api/stats", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.InDelta(t, 33.33, body["winrate"], 0.001)
	assert.InDelta(t, 4.0, body["totalPnl"], 0.001)
}

func TestStatsAreOwnerScoped(t *testing.T) {
	r, _ := newTestServer(t)
	tokenA := registerAndLogin(t, r, "alice", "alice@example.com", "hunter22")
	tokenB := registerAndLogin(t, r, "bob", "bob@example.com", "hunter22")

	createTrade(t, r, tokenA, gin.H{"pair": "EURUSD", "side": "BUY", "entry": 1.1, "result": "10"})

	w := doJSON(t, r, http.MethodGet, "/api/stats", tokenB, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 0, decodeBody(t, w)["totalTrades"])
}
