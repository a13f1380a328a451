package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"barbellfx-relay/internal/model"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus(t *testing.T) {
	e, repo := newTestServer(t)

	rec := do(e, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "BarbellFX Signal API running", body["status"])
	assert.Equal(t, "1.0.0", body["version"])
	assert.Nil(t, body["currentSignal"])

	repo.Set(model.Signal{Pair: "EURUSD", Action: "BUY"})
	rec = do(e, http.MethodGet, "/", "")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	current, ok := body["currentSignal"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "EURUSD", current["pair"])
}

func TestLegalPages(t *testing.T) {
	e, _ := newTestServer(t)

	for path, title := range map[string]string{
		"/privacy": "BarbellFX - Privacy Policy",
		"/terms":   "BarbellFX - Terms of Service",
	} {
		rec := do(e, http.MethodGet, path, "")
		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/html")
		assert.Contains(t, rec.Body.String(), title)
	}
}
