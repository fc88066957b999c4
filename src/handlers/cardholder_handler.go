package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	db "fraudwatch-server/src/db/sql"
)

func GetCardholders(src TransactionSource, cache LookupCache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		holders, err := cardholders(r.Context(), src, cache)
		if err != nil {
			writeError(w, r, err, "failed to get cardholders")
			return
		}
		writeJSON(w, http.StatusOK, holders)
	}
}

// GetDateRange returns the default start and end dates for the report filter.
func GetDateRange(src TransactionSource, cache LookupCache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseCardholderID(chi.URLParam(r, "cardholder_id"))
		if err != nil {
			writeError(w, r, err, "invalid cardholder id")
			return
		}
		if dr, ok := cache.GetDateRange(id); ok {
			writeJSON(w, http.StatusOK, dr)
			return
		}

		dr, err := src.GetDateRange(r.Context(), id)
		if errors.Is(err, db.ErrCardholderNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "cardholder not found"})
			return
		}
		if errors.Is(err, db.ErrNoTransactions) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "no transactions for cardholder"})
			return
		}
		if err != nil {
			writeError(w, r, err, "failed to get date range")
			return
		}
		cache.SetDateRange(id, dr)
		writeJSON(w, http.StatusOK, dr)
	}
}

func ClearCache(cache LookupCache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "cache_name")
		if err := cache.Clear(name); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"message": name + " cache cleared"})
	}
}
