package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sheikh-saqib/temporal-ledger/internal/historian"
	"github.com/sheikh-saqib/temporal-ledger/internal/id"
	"github.com/sheikh-saqib/temporal-ledger/internal/simulation"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	hist := historian.New()
	demo := newDepositDemo(id.NewSequence("id-"), decimal.NewFromInt(100))
	_, err := simulation.NewDriver(hist, nil).Run(context.Background(), demo.Ledgers(), 3, demo)
	require.NoError(t, err)

	srv := httptest.NewServer(newMux(hist, zap.NewNop()))
	t.Cleanup(srv.Close)
	return srv
}

type ledgerView struct {
	ID       string `json:"id"`
	Balance  string `json:"balance"`
	Accounts []struct {
		ID      string `json:"id"`
		Balance string `json:"balance"`
	} `json:"accounts"`
}

func getJSON(t *testing.T, url string, out any) int {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil && resp.StatusCode == http.StatusOK {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)
	var body map[string]string
	assert.Equal(t, http.StatusOK, getJSON(t, srv.URL+"/health", &body))
	assert.Equal(t, "ok", body["status"])
}

func TestListRecords(t *testing.T) {
	srv := newTestServer(t)

	var summaries []recordSummary
	require.Equal(t, http.StatusOK, getJSON(t, srv.URL+"/records", &summaries))
	require.Len(t, summaries, 1)
	assert.Equal(t, uint64(3), summaries[0].CompletedAt)
	assert.Equal(t, 2, summaries[0].Ledgers)
	assert.Equal(t, 4, summaries[0].Steps)
	assert.Equal(t, 12, summaries[0].Events)
}

func TestGetRecord(t *testing.T) {
	srv := newTestServer(t)

	assert.Equal(t, http.StatusOK, getJSON(t, srv.URL+"/records/0", nil))
	assert.Equal(t, http.StatusNotFound, getJSON(t, srv.URL+"/records/5", nil))
	assert.Equal(t, http.StatusBadRequest, getJSON(t, srv.URL+"/records/abc", nil))
}

func TestReconstructedLedgersEndpoint(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		query   string
		holding string
	}{
		{"?period=0", "0"},
		{"?period=2", "200"},
		{"", "300"},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			var body struct {
				Ledgers []ledgerView `json:"ledgers"`
			}
			require.Equal(t, http.StatusOK, getJSON(t, srv.URL+"/records/0/ledgers"+tt.query, &body))
			require.Len(t, body.Ledgers, 2)

			customer := body.Ledgers[1]
			assert.Equal(t, "id-2", customer.ID)
			assert.Equal(t, "0", customer.Balance)
			require.Len(t, customer.Accounts, 3)
			assert.Equal(t, tt.holding, customer.Accounts[1].Balance)
		})
	}

	assert.Equal(t, http.StatusBadRequest, getJSON(t, srv.URL+"/records/0/ledgers?period=-1", nil))
	assert.Equal(t, http.StatusNotFound, getJSON(t, srv.URL+"/records/9/ledgers", nil))
}
