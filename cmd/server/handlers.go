package main

import (
	"encoding/json"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/sheikh-saqib/temporal-ledger/internal/historian"
)

type recordSummary struct {
	ID          int    `json:"id"`
	StartedAt   uint64 `json:"started_at"`
	CompletedAt uint64 `json:"completed_at"`
	Ledgers     int    `json:"ledgers"`
	Steps       int    `json:"steps"`
	Events      int    `json:"events"`
}

func newMux(hist *historian.Historian, logger *zap.Logger) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	mux.HandleFunc("GET /records", func(w http.ResponseWriter, r *http.Request) {
		recs, err := hist.Records(r.Context())
		if err != nil {
			logger.Error("list records", zap.Error(err))
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		summaries := make([]recordSummary, 0, len(recs))
		for _, rec := range recs {
			summaries = append(summaries, recordSummary{
				ID:          rec.ID,
				StartedAt:   rec.StartedAt,
				CompletedAt: rec.CompletedAt,
				Ledgers:     len(rec.Snapshot),
				Steps:       len(rec.Steps),
				Events:      rec.EventCount(),
			})
		}
		writeJSON(w, summaries)
	})

	mux.HandleFunc("GET /records/{id}", func(w http.ResponseWriter, r *http.Request) {
		recordID, err := strconv.Atoi(r.PathValue("id"))
		if err != nil {
			http.Error(w, "record id must be an integer", http.StatusBadRequest)
			return
		}

		rec, ok, err := hist.Record(r.Context(), recordID)
		if err != nil {
			logger.Error("get record", zap.Int("record_id", recordID), zap.Error(err))
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if !ok {
			http.Error(w, "record not found", http.StatusNotFound)
			return
		}
		writeJSON(w, rec)
	})

	// period defaults to the completion period of the record
	mux.HandleFunc("GET /records/{id}/ledgers", func(w http.ResponseWriter, r *http.Request) {
		recordID, err := strconv.Atoi(r.PathValue("id"))
		if err != nil {
			http.Error(w, "record id must be an integer", http.StatusBadRequest)
			return
		}

		rec, ok, err := hist.Record(r.Context(), recordID)
		if err != nil {
			logger.Error("get record", zap.Int("record_id", recordID), zap.Error(err))
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if !ok {
			http.Error(w, "record not found", http.StatusNotFound)
			return
		}

		period := rec.CompletedAt
		if raw := r.URL.Query().Get("period"); raw != "" {
			period, err = strconv.ParseUint(raw, 10, 64)
			if err != nil {
				http.Error(w, "period must be a non-negative integer", http.StatusBadRequest)
				return
			}
		}

		ledgers, _, err := hist.ReconstructedLedgers(r.Context(), period, recordID)
		if err != nil {
			logger.Error("reconstruct ledgers", zap.Int("record_id", recordID), zap.Error(err))
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		response := struct {
			RecordID int    `json:"record_id"`
			Period   uint64 `json:"period"`
			Ledgers  any    `json:"ledgers"`
		}{
			RecordID: recordID,
			Period:   period,
			Ledgers:  ledgers,
		}
		writeJSON(w, response)
	})

	return mux
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
