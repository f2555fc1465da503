package book

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"libraryapi/internal/httpx"
)

// Response messages. Logical failures (repository returned false) and caught
// errors use different text but the same status code.
const (
	MsgListFailed = "Could not access the book listing"

	MsgCreated      = "Book created successfully!"
	MsgCreateFalse  = "Error creating the book. Contact the system administrator."
	MsgCreateFailed = "Could not create the book. Contact the system administrator."

	MsgDeleted      = "The book was removed successfully!"
	MsgDeleteFalse  = "Error removing the book. Contact the system administrator."
	MsgDeleteFailed = "Could not remove the book. Contact the system administrator."

	MsgUpdated      = "The Book was updated successfully!"
	MsgUpdateFalse  = "Error updating the Book. Contact the system administrator"
	MsgUpdateFailed = "Could not update the book. Contact the system administrator"
)

type HTTPHandler struct {
	repo Repository
}

func NewHTTPHandler(repo Repository) *HTTPHandler {
	return &HTTPHandler{repo: repo}
}

// ListAll handles GET /books
func (h *HTTPHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	defer recoverAs(w, r, "list", MsgListFailed)

	books, err := h.repo.ListAll(r.Context())
	if err != nil {
		logFailure(r, "list", err)
		httpx.JSONMessage(w, http.StatusBadRequest, MsgListFailed)
		return
	}
	if books == nil {
		books = []Book{}
	}
	httpx.JSON(w, http.StatusOK, books)
}

// Create handles POST /books
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	defer recoverAs(w, r, "create", MsgCreateFailed)

	var rec Record
	if err := httpx.DecodeJSON(r, &rec); err != nil {
		logFailure(r, "create", err)
		httpx.JSONMessage(w, http.StatusBadRequest, MsgCreateFailed)
		return
	}

	ok, err := h.repo.Create(r.Context(), rec.ToBook())
	if err != nil {
		logFailure(r, "create", err)
		httpx.JSONMessage(w, http.StatusBadRequest, MsgCreateFailed)
		return
	}
	if !ok {
		httpx.JSONMessage(w, http.StatusBadRequest, MsgCreateFalse)
		return
	}
	httpx.JSONMessage(w, http.StatusOK, MsgCreated)
}

// Delete handles DELETE /books/{bookId}
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	defer recoverAs(w, r, "delete", MsgDeleteFailed)

	ok, err := h.repo.Delete(r.Context(), parseBookID(r))
	if err != nil {
		logFailure(r, "delete", err)
		httpx.JSONMessage(w, http.StatusBadRequest, MsgDeleteFailed)
		return
	}
	if !ok {
		httpx.JSONMessage(w, http.StatusBadRequest, MsgDeleteFalse)
		return
	}
	httpx.JSONMessage(w, http.StatusOK, MsgDeleted)
}

// Update handles PUT /books/{bookId}
func (h *HTTPHandler) Update(w http.ResponseWriter, r *http.Request) {
	defer recoverAs(w, r, "update", MsgUpdateFailed)

	var rec Record
	if err := httpx.DecodeJSON(r, &rec); err != nil {
		logFailure(r, "update", err)
		httpx.JSONMessage(w, http.StatusBadRequest, MsgUpdateFailed)
		return
	}

	b := rec.ToBook()
	b.ID = parseBookID(r)

	ok, err := h.repo.Update(r.Context(), b)
	if err != nil {
		logFailure(r, "update", err)
		httpx.JSONMessage(w, http.StatusBadRequest, MsgUpdateFailed)
		return
	}
	if !ok {
		httpx.JSONMessage(w, http.StatusBadRequest, MsgUpdateFalse)
		return
	}
	httpx.JSONMessage(w, http.StatusOK, MsgUpdated)
}

// parseBookID reads the bookId path value the way a lenient integer parse
// does: leading spaces and an optional sign, then the longest run of digits
// ("7abc" is 7, "3.9" is 3). No digits, or overflow, gives InvalidID;
// validation is left to the repository.
func parseBookID(r *http.Request) int64 {
	raw := strings.TrimLeft(r.PathValue("bookId"), " \t\n\r")
	end := 0
	if end < len(raw) && (raw[end] == '+' || raw[end] == '-') {
		end++
	}
	digitsStart := end
	for end < len(raw) && raw[end] >= '0' && raw[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return InvalidID
	}
	id, err := strconv.ParseInt(raw[:end], 10, 64)
	if err != nil {
		return InvalidID
	}
	return id
}

// recoverAs answers a panic raised while serving op with the operation's
// failure message, so the handler still writes exactly one response.
// It must be deferred directly.
func recoverAs(w http.ResponseWriter, r *http.Request, op, failMsg string) {
	if p := recover(); p != nil {
		logFailure(r, op, fmt.Errorf("panic: %v", p))
		httpx.JSONMessage(w, http.StatusBadRequest, failMsg)
	}
}

func logFailure(r *http.Request, op string, err error) {
	log.Printf("book %s failed: request_id=%s error=%v", op, httpx.RequestIDFrom(r), err)
}
