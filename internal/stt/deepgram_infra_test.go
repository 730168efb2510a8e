package stt

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDeepgramClient(url string) *DeepgramClient {
	return &DeepgramClient{
		apiKey:  "test-key",
		baseURL: url,
		client:  &http.Client{},
	}
}

func TestDeepgramClient_Transcribe(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Token test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "audio/wav", r.Header.Get("Content-Type"))

		w.Write([]byte(`{"results":{"channels":[{"alternatives":[{"transcript":"Hello, how are you?"}]}]}}`))
	}))
	defer srv.Close()

	c := newTestDeepgramClient(srv.URL)
	text, err := c.Transcribe(context.Background(), writeFakeWAV(t))
	require.NoError(t, err)
	assert.Equal(t, "Hello, how are you?", text)
}

func TestDeepgramClient_EmptyTranscript(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"results":{"channels":[{"alternatives":[{"transcript":""}]}]}}`))
	}))
	defer srv.Close()

	c := newTestDeepgramClient(srv.URL)
	_, err := c.Transcribe(context.Background(), writeFakeWAV(t))
	assert.ErrorIs(t, err, ErrUnintelligible)
}

func TestDeepgramClient_NoChannels(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"results":{"channels":[]}}`))
	}))
	defer srv.Close()

	c := newTestDeepgramClient(srv.URL)
	_, err := c.Transcribe(context.Background(), writeFakeWAV(t))
	assert.ErrorIs(t, err, ErrUnintelligible)
}

func TestDeepgramClient_ServiceError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"err_msg":"quota exceeded"}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := newTestDeepgramClient(srv.URL)
	_, err := c.Transcribe(context.Background(), writeFakeWAV(t))
	assert.ErrorIs(t, err, ErrUnavailable)
}
