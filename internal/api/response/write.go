package response

import (
	"encoding/json"
	"net/http"
)

// ContentTypeJSON is sent with every JSON body; board text is often Japanese
const ContentTypeJSON = "application/json; charset=utf-8"

// JSON writes a JSON response
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", ContentTypeJSON)
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}
