package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealth(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()

	Health("1.2.3")(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp HealthResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, "1.2.3", resp.Version)
}

func TestVersion(t *testing.T) {
	info := VersionInfo{Version: "1.2.3", Commit: "abc1234", BuildDate: "2026-01-15"}

	req := httptest.NewRequest(http.MethodGet, "/version", nil)
	rec := httptest.NewRecorder()

	Version(info)(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp VersionInfo
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, info, resp)
}
