package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
)

func parseIDParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("id"), 10, 64)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func serverError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, msg string, err error) {
	logger.ErrorContext(r.Context(), msg, "error", err, "path", r.URL.Path)
	http.Error(w, "internal server error", http.StatusInternalServerError)
}
