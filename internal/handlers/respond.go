package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"go.uber.org/zap"
)

// writeJSON отправляет ответ в JSON с указанным статусом
func writeJSON(w http.ResponseWriter, logger *zap.Logger, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("failed to encode response", zap.Error(err))
	}
}

// writeError отправляет ошибку в JSON, чтобы клиент мог показать сообщение
func writeError(w http.ResponseWriter, logger *zap.Logger, status int, message string) {
	writeJSON(w, logger, status, map[string]string{"error": message})
}

// pagination читает limit и offset из query. Неверные значения игнорируются.
func pagination(r *http.Request) (limit, offset uint64) {
	limit, _ = strconv.ParseUint(r.URL.Query().Get("limit"), 10, 64)
	offset, _ = strconv.ParseUint(r.URL.Query().Get("offset"), 10, 64)
	return limit, offset
}
