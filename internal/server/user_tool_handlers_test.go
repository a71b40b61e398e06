package server

import (
	"net/http"
	"testing"

	"toolverse/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserToolsLifecycle(t *testing.T) {
	_, app := newTestServer(t, newMiniredis(t))

	resp := doJSON(t, app, http.MethodGet, "/api/user/tools", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, decode[[]models.UserTool](t, resp))

	resp = doJSON(t, app, http.MethodPost, "/api/user/tools", map[string]any{
		"toolId":         "1",
		"collectionName": "Writing",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	link := decode[models.UserTool](t, resp)
	assert.Equal(t, "user-1", link.UserID)
	assert.False(t, link.IsFavorite)

	resp = doJSON(t, app, http.MethodPost, "/api/user/tools", map[string]any{"toolId": "1"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPatch, "/api/user/tools/1", map[string]any{"isFavorite": true})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	link = decode[models.UserTool](t, resp)
	assert.True(t, link.IsFavorite)
	require.NotNil(t, link.CollectionName)
	assert.Equal(t, "Writing", *link.CollectionName)

	resp = doJSON(t, app, http.MethodGet, "/api/user/tools", nil)
	links := decode[[]models.UserTool](t, resp)
	require.Len(t, links, 1)
	assert.True(t, links[0].IsFavorite)
	require.NotNil(t, links[0].Tool)
	assert.Equal(t, "ChatGPT", links[0].Tool.Name)

	resp = doJSON(t, app, http.MethodDelete, "/api/user/tools/1", nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp = doJSON(t, app, http.MethodDelete, "/api/user/tools/1", nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/user/tools", nil)
	assert.Empty(t, decode[[]models.UserTool](t, resp))
}

func TestAddUserTool_Invalid(t *testing.T) {
	_, app := newTestServer(t, nil)

	tests := []struct {
		name string
		body map[string]any
	}{
		{name: "missing toolId", body: map[string]any{"isFavorite": true}},
		{name: "unknown tool", body: map[string]any{"toolId": "nope"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := doJSON(t, app, http.MethodPost, "/api/user/tools", tt.body)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			body := decode[models.ErrorResponse](t, resp)
			require.Len(t, body.Fields, 1)
			assert.Equal(t, "toolId", body.Fields[0].Field)
		})
	}
}

func TestUpdateUserTool_NotLinked(t *testing.T) {
	_, app := newTestServer(t, nil)

	resp := doJSON(t, app, http.MethodPatch, "/api/user/tools/2", map[string]any{"isFavorite": true})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPatch, "/api/user/tools/2", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
