package httpx

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	pkgrequestctx "tastedive-server/pkg/requestctx"
)

// WriteJSON writes a JSON response with the provided status code.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError standardizes error responses and logs with correlation id.
func WriteError(w http.ResponseWriter, r *http.Request, he *HTTPError) {
	WriteErrorWith(w, r, he, nil)
}

// WriteErrorWith renders the error envelope plus extra top-level fields.
// Handlers whose clients expect a safe default payload on failure (an empty
// recommendations list, all-false interaction flags) pass it in defaults so
// the response always has a renderable shape.
func WriteErrorWith(w http.ResponseWriter, r *http.Request, he *HTTPError, defaults map[string]any) {
	cid := pkgrequestctx.CorrelationID(r.Context())
	if cid != "" {
		w.Header().Set("X-Correlation-Id", cid)
	}
	errBody := map[string]any{
		"code":           he.Code,
		"message":        he.Message,
		"correlation_id": cid,
	}
	if he.Details != nil {
		errBody["details"] = he.Details
	}
	payload := map[string]any{
		"error":   errBody,
		"message": he.Message,
	}
	for k, v := range defaults {
		payload[k] = v
	}
	status := he.StatusCode
	if status == 0 {
		status = http.StatusInternalServerError
	}
	log.Error().Str("correlation_id", cid).Str("code", he.Code).Err(he.Err).Msg(he.Message)
	WriteJSON(w, status, payload)
}
