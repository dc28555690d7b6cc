package http_transcript

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moviemind/core/internal/model"
)

type stubReader struct {
	turns []model.ConversationTurn
	err   error

	gotSessionID model.SessionID
}

func (s *stubReader) BySession(_ context.Context, sessionID model.SessionID) ([]model.ConversationTurn, error) {
	s.gotSessionID = sessionID
	return s.turns, s.err
}

func newRouter(reader TranscriptReader) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	New(reader).RegisterRoutes(router.Group("/api/v1"))
	return router
}

func getTranscript(t *testing.T, router *gin.Engine, path string) (*httptest.ResponseRecorder, TranscriptResponseDTO) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp TranscriptResponseDTO
	if w.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return w, resp
}

func TestTranscriptBySession(t *testing.T) {
	reader := &stubReader{turns: []model.ConversationTurn{
		{User: "something tense", Assistant: "Watch Inception.\n[POSTER_URL: u1]"},
		{User: "more like it", Assistant: "Try Memento."},
	}}
	router := newRouter(reader)

	w, resp := getTranscript(t, router, "/api/v1/transcripts/s1")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, model.SessionID("s1"), reader.gotSessionID)
	assert.Equal(t, "s1", resp.SessionID)
	require.Len(t, resp.Turns, 2)
	assert.Equal(t, "something tense", resp.Turns[0].User)
	assert.Equal(t, "Watch Inception.\n[POSTER_URL: u1]", resp.Turns[0].Assistant)
}

func TestTranscriptEmptySession(t *testing.T) {
	router := newRouter(&stubReader{})

	w, resp := getTranscript(t, router, "/api/v1/transcripts/unknown")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "unknown", resp.SessionID)
	assert.Empty(t, resp.Turns)
}

func TestTranscriptReaderError(t *testing.T) {
	router := newRouter(&stubReader{err: errors.New("connection refused")})

	w, _ := getTranscript(t, router, "/api/v1/transcripts/s1")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
