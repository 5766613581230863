package handlers

import (
	"encoding/json"
	"log/slog"
	"mime"
	"net/http"
)

const (
	lenID        int    = 24
	typeError    string = "error"
	typeMessage  string = "message"
	muxVarID     string = "id"
	msgInternal  string = "internal error"
	msgBadJSON   string = "bad json"
	msgBadCType  string = "invalid Content-Type"
	contentJSON  string = "application/json"
	successField string = "success"
)

func DecodeJSONBody(w http.ResponseWriter, r *http.Request, req any) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || mediaType != contentJSON {
		writeError(w, http.StatusBadRequest, typeError, msgBadCType)
		return false
	}

	defer r.Body.Close()

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		writeError(w, http.StatusBadRequest, typeError, msgBadJSON)
		return false
	}

	return true
}

func hasBody(r *http.Request) bool {
	return r.Body != nil && r.Body != http.NoBody && r.ContentLength != 0
}

func writeJSON(w http.ResponseWriter, logger *slog.Logger, data any) bool {
	resp, err := json.Marshal(data)
	if err != nil {
		logger.Error("Failed to serialize JSON response", "error", err)
		writeError(w, http.StatusInternalServerError, typeError, "failed json marshal")
		return false
	}

	w.Header().Set("Content-Type", contentJSON)

	if _, err := w.Write(resp); err != nil {
		logger.Error("Failed to write response to client", "error", err)
		return false
	}
	return true
}

func writeError(w http.ResponseWriter, status int, field, msg string) {
	w.Header().Set("Content-Type", contentJSON)
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(map[string]string{field: msg}); err != nil {
		return
	}
}

// writeStorageError hides storage details from the client.
func writeStorageError(w http.ResponseWriter, logger *slog.Logger, action string, err error) {
	logger.Error(action, "error", err)
	writeError(w, http.StatusInternalServerError, typeError, msgInternal)
}
