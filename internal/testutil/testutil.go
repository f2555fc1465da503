package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"

	"libraryapi/internal/book"
)

// SampleRecord is a complete, valid request body.
var SampleRecord = book.Record{
	Title:            "A",
	Author:           "B",
	PublicationYear:  "2020",
	Publisher:        "C",
	ISBN:             "123",
	TotalCopies:      2,
	AvailableCopies:  2,
	AcquisitionValue: 10.5,
	LoanStatus:       "none",
}

// NewRequest creates a new HTTP request for testing. A string or []byte body
// is sent as-is; anything else is JSON encoded.
func NewRequest(method, path string, body interface{}) *http.Request {
	var bodyBytes []byte
	switch b := body.(type) {
	case nil:
	case string:
		bodyBytes = []byte(b)
	case []byte:
		bodyBytes = b
	default:
		bodyBytes, _ = json.Marshal(body)
	}
	if bodyBytes == nil {
		return httptest.NewRequest(method, path, nil)
	}
	r := httptest.NewRequest(method, path, bytes.NewReader(bodyBytes))
	r.Header.Set("Content-Type", "application/json")
	return r
}

// NewRequestWithBookID is NewRequest with the bookId path value set, as the
// router would.
func NewRequestWithBookID(method, path, bookID string, body interface{}) *http.Request {
	r := NewRequest(method, path, body)
	r.SetPathValue("bookId", bookID)
	return r
}

// RecordResponse records the HTTP response for testing
type RecordResponse struct {
	Code   int
	Header http.Header
	Body   string
}

// RecordHTTPResponse records the HTTP response
func RecordHTTPResponse(w *httptest.ResponseRecorder) RecordResponse {
	result := w.Result()
	defer result.Body.Close()

	bodyBytes, _ := io.ReadAll(result.Body)

	return RecordResponse{
		Code:   result.StatusCode,
		Header: result.Header,
		Body:   string(bodyBytes),
	}
}

// MessageBody returns the JSON body the handlers write for message responses.
func MessageBody(message string) string {
	b, _ := json.Marshal(map[string]string{"message": message})
	return string(b)
}
