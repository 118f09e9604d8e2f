package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/NicollasRezende/flow-management-app/application/services"
	"github.com/NicollasRezende/flow-management-app/infrastructure/config"
	"github.com/NicollasRezende/flow-management-app/infrastructure/di"
	"github.com/NicollasRezende/flow-management-app/infrastructure/messaging"
	"github.com/NicollasRezende/flow-management-app/infrastructure/persistence/memory"
)

type apiEnvelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	logger := zap.NewNop()
	svc := services.NewFlowService(memory.NewRepository(), messaging.NewNoopPublisher(), nil, logger)
	_, err := svc.Load(context.Background())
	require.NoError(t, err)

	cfg := &config.Config{Environment: "test", StorageDriver: config.StorageDriverMemory}
	router := NewRouter(di.ProvideCommandBus(svc, logger), di.ProvideQueryBus(svc, logger), cfg, logger)
	srv := httptest.NewServer(router.Setup())
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, method, url, body string) (*http.Response, apiEnvelope) {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var envelope apiEnvelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	return resp, envelope
}

func TestRouter_HealthEndpoints(t *testing.T) {
	srv := newTestServer(t)

	for _, path := range []string{"/health", "/ready"} {
		resp, err := http.Get(srv.URL + path)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	}
}

func TestRouter_GetFlow(t *testing.T) {
	srv := newTestServer(t)

	resp, envelope := doJSON(t, http.MethodGet, srv.URL+"/api/v1/flow", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.True(t, envelope.Success)

	var result struct {
		Graph struct {
			Nodes []struct {
				ID string `json:"id"`
			} `json:"nodes"`
		} `json:"graph"`
		Dirty bool `json:"dirty"`
	}
	require.NoError(t, json.Unmarshal(envelope.Data, &result))
	assert.Len(t, result.Graph.Nodes, 3)
	assert.False(t, result.Dirty)
}

func TestRouter_AddMenu(t *testing.T) {
	srv := newTestServer(t)

	resp, envelope := doJSON(t, http.MethodPost, srv.URL+"/api/v1/menus",
		`{"menu_id": "faq", "title": "FAQ", "menu_type": "button"}`)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.True(t, envelope.Success)

	// Adding the same menu again conflicts.
	resp, envelope = doJSON(t, http.MethodPost, srv.URL+"/api/v1/menus",
		`{"menu_id": "faq", "title": "FAQ", "menu_type": "button"}`)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "CONFLICT", envelope.Error.Code)
}

func TestRouter_AddMenuRejectsBadType(t *testing.T) {
	srv := newTestServer(t)

	resp, envelope := doJSON(t, http.MethodPost, srv.URL+"/api/v1/menus",
		`{"menu_id": "x", "menu_type": "carousel"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "VALIDATION", envelope.Error.Code)
}

func TestRouter_UpdateMenu(t *testing.T) {
	srv := newTestServer(t)

	resp, envelope := doJSON(t, http.MethodPut, srv.URL+"/api/v1/menus/info_menu",
		`{"title": "Renamed"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, envelope.Success)

	resp, _ = doJSON(t, http.MethodPut, srv.URL+"/api/v1/menus/nope",
		`{"title": "Renamed"}`)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRouter_MoveMenu(t *testing.T) {
	srv := newTestServer(t)

	resp, envelope := doJSON(t, http.MethodPut, srv.URL+"/api/v1/menus/info_menu/position",
		`{"x": 120, "y": 340}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, envelope.Success)
}

func TestRouter_DeleteMenu(t *testing.T) {
	srv := newTestServer(t)

	resp, _ := doJSON(t, http.MethodDelete, srv.URL+"/api/v1/menus/info_menu", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// The entry menu cannot be deleted.
	resp, envelope := doJSON(t, http.MethodDelete, srv.URL+"/api/v1/menus/initial", "")
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "PROTECTED", envelope.Error.Code)
}

func TestRouter_Connect(t *testing.T) {
	srv := newTestServer(t)

	resp, envelope := doJSON(t, http.MethodPost, srv.URL+"/api/v1/connections",
		`{"source_id": "info_menu", "target_id": "support_menu", "label": "Support"}`)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.True(t, envelope.Success)

	resp, _ = doJSON(t, http.MethodPost, srv.URL+"/api/v1/connections",
		`{"source_id": "", "target_id": "support_menu"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRouter_SaveAndDirtyFlag(t *testing.T) {
	srv := newTestServer(t)

	_, _ = doJSON(t, http.MethodPut, srv.URL+"/api/v1/menus/info_menu/position", `{"x": 1, "y": 2}`)

	resp, envelope := doJSON(t, http.MethodPost, srv.URL+"/api/v1/flow/save", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, envelope.Success)

	_, envelope = doJSON(t, http.MethodGet, srv.URL+"/api/v1/flow", "")
	var result struct {
		Dirty bool `json:"dirty"`
	}
	require.NoError(t, json.Unmarshal(envelope.Data, &result))
	assert.False(t, result.Dirty)
}

func TestRouter_ImportFlow(t *testing.T) {
	srv := newTestServer(t)

	doc := `{"menus": {"initial": {"title": "Main", "options": {"menu_type": "button"}}}}`
	resp, envelope := doJSON(t, http.MethodPost, srv.URL+"/api/v1/flow/import", doc)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.True(t, envelope.Success)

	var result struct {
		Graph struct {
			Nodes []struct {
				ID string `json:"id"`
			} `json:"nodes"`
		} `json:"graph"`
		Dirty bool `json:"dirty"`
	}
	require.NoError(t, json.Unmarshal(envelope.Data, &result))
	assert.Len(t, result.Graph.Nodes, 1)
	assert.True(t, result.Dirty)

	resp, envelope = doJSON(t, http.MethodPost, srv.URL+"/api/v1/flow/import", `{"greetings": {}}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.NotNil(t, envelope.Error)
}

func TestRouter_ExportFlow(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/v1/flow/export")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "menu-flow-")
	assert.Contains(t, resp.Header.Get("Content-Disposition"), ".json")

	var tree struct {
		Menus map[string]json.RawMessage `json:"menus"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&tree))
	assert.Contains(t, tree.Menus, "initial")
}

func TestRouter_ValidateFlow(t *testing.T) {
	srv := newTestServer(t)

	resp, envelope := doJSON(t, http.MethodPost, srv.URL+"/api/v1/flow/validate", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.True(t, envelope.Success)

	var result struct {
		Valid  bool              `json:"valid"`
		Issues []json.RawMessage `json:"issues"`
	}
	require.NoError(t, json.Unmarshal(envelope.Data, &result))
	assert.True(t, result.Valid)
	assert.Empty(t, result.Issues)
}

func TestRouter_AuthRequiredWhenConfigured(t *testing.T) {
	logger := zap.NewNop()
	svc := services.NewFlowService(memory.NewRepository(), messaging.NewNoopPublisher(), nil, logger)
	_, err := svc.Load(context.Background())
	require.NoError(t, err)

	cfg := &config.Config{
		Environment:   "test",
		StorageDriver: config.StorageDriverMemory,
		JWTSecret:     "test-secret",
		JWTIssuer:     "flow-management-app",
	}
	router := NewRouter(di.ProvideCommandBus(svc, logger), di.ProvideQueryBus(svc, logger), cfg, logger)
	srv := httptest.NewServer(router.Setup())
	t.Cleanup(srv.Close)

	resp, err := http.Get(srv.URL + "/api/v1/flow")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// Health stays open.
	resp, err = http.Get(srv.URL + "/health")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
