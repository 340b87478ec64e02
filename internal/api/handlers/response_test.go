package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondError(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondNotFound(rec, "Theater not found.")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"Theater not found."}`, rec.Body.String())
}

func TestRespondInternalErrorHidesDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondInternalError(rec)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Internal server error."}`, rec.Body.String())
}

func TestDecodeJSON(t *testing.T) {
	var dst struct {
		ScreenID int64 `json:"screen_id"`
	}

	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"screen_id": 3, "extra": true}`))
	require.NoError(t, DecodeJSON(r, &dst))
	assert.Equal(t, int64(3), dst.ScreenID)

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(``))
	assert.Error(t, DecodeJSON(r, &dst))

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"screen_id": "three"}`))
	assert.Error(t, DecodeJSON(r, &dst))
}
