package httpx

import (
	"log"
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// MessageResponse is the body of every non-listing response.
type MessageResponse struct {
	Message string `json:"message"`
}

// JSON writes data as the response body with the given status. The body is
// the marshaled value with no trailing newline.
func JSON(w http.ResponseWriter, statusCode int, data interface{}) {
	body, err := json.Marshal(data)
	if err != nil {
		log.Printf("json marshal failed: error=%v", err)
		statusCode = http.StatusInternalServerError
		body = []byte(`{"message":"An internal error occurred"}`)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_, _ = w.Write(body)
}

// JSONMessage writes {"message": message} with the given status.
func JSONMessage(w http.ResponseWriter, statusCode int, message string) {
	JSON(w, statusCode, MessageResponse{Message: message})
}

// DecodeJSON decodes the request body into dst.
// Unknown fields are ignored.
func DecodeJSON(r *http.Request, dst interface{}) error {
	return json.NewDecoder(r.Body).Decode(dst)
}
