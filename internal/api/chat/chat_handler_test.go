package chat

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/planora-ai/planora-api/internal/api/destinations"
	"github.com/planora-ai/planora-api/internal/types"
)

func chatRequest(t *testing.T, model *MockModelClient, body string) *httptest.ResponseRecorder {
	t.Helper()
	gazetteer := destinations.NewService(slog.Default())
	svc := NewService(model, "gemini-2.0-flash", gazetteer, slog.Default())
	h := NewChatHandler(svc, gazetteer, slog.Default())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.Chat(rec, req)
	return rec
}

func TestChatHandlerNoMessages(t *testing.T) {
	rec := chatRequest(t, new(MockModelClient), `{"messages": []}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body types.ChatErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "BAD_REQUEST", body.Code)
	assert.Equal(t, "No messages provided.", body.Error)
	assert.NotEmpty(t, body.Destinations)
}

func TestChatHandlerOutOfScope(t *testing.T) {
	rec := chatRequest(t, new(MockModelClient), `{"messages": [{"role": "user", "content": "weekend in Goa"}]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body types.ChatErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "JHARKHAND_ONLY", body.Code)
	assert.Contains(t, body.Error, "Jharkhand destinations only")
	assert.Contains(t, body.Destinations, "ranchi")
}

func TestChatHandlerSuccess(t *testing.T) {
	model := new(MockModelClient)
	model.On("GenerateWithSystem", mock.Anything, mock.Anything, mock.Anything).
		Return("Try the Patratu valley drive.", nil)

	rec := chatRequest(t, model, `{"messages": [{"role": "user", "content": "what to do in ranchi?"}]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	assert.Equal(t, "PLANORA AI", rec.Header().Get("X-Powered-By"))

	var body types.ChatResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Try the Patratu valley drive.", body.Reply)
	assert.Equal(t, "gemini-2.0-flash", body.Model)
}

func TestChatHandlerModelFailure(t *testing.T) {
	model := new(MockModelClient)
	model.On("GenerateWithSystem", mock.Anything, mock.Anything, mock.Anything).
		Return("", types.ErrModelUnavailable)

	rec := chatRequest(t, model, `{"messages": [{"role": "user", "content": "deoghar temples"}]}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body types.ChatErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "SERVER_ERROR", body.Code)
}
