package shared

import (
	"errors"
	"net/http"

	json "github.com/goccy/go-json"

	"paie/internal/transport/http/api"
)

// DecodeJSON reads one JSON object into dst and rejects unknown fields.
// On failure it writes the error response and returns false.
func DecodeJSON(w http.ResponseWriter, r *http.Request, dst any, requestID string) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			api.Fail(w, http.StatusRequestEntityTooLarge, "payload_too_large", "request body too large", requestID)
			return false
		}
		api.Fail(w, http.StatusBadRequest, "invalid_json", "invalid request body", requestID)
		return false
	}
	return true
}
