package httpx

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONMessage(t *testing.T) {
	w := httptest.NewRecorder()

	JSONMessage(w, http.StatusBadRequest, "Could not access the book listing")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"message":"Could not access the book listing"}`, w.Body.String())
}

func TestJSON_Array(t *testing.T) {
	w := httptest.NewRecorder()

	JSON(w, http.StatusOK, []int{})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

func TestJSONMessage_ExactBytes(t *testing.T) {
	w := httptest.NewRecorder()

	JSONMessage(w, http.StatusOK, "Book created successfully!")

	assert.Equal(t, `{"message":"Book created successfully!"}`, w.Body.String())
}

func TestJSON_UnencodableValue(t *testing.T) {
	w := httptest.NewRecorder()

	JSON(w, http.StatusOK, map[string]interface{}{"bad": make(chan int)})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, `{"message":"An internal error occurred"}`, w.Body.String())
}

func TestDecodeJSON(t *testing.T) {
	var dst struct {
		Title string `json:"title"`
		Count int    `json:"count"`
	}

	t.Run("unknown fields ignored", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"title":"x","count":2,"extra":true}`))
		require.NoError(t, DecodeJSON(r, &dst))
		assert.Equal(t, "x", dst.Title)
		assert.Equal(t, 2, dst.Count)
	})

	t.Run("wrong type", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"count":"two"}`))
		assert.Error(t, DecodeJSON(r, &dst))
	})

	t.Run("empty body", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(``))
		assert.Error(t, DecodeJSON(r, &dst))
	})
}
