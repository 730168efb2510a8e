package stt

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFakeWAV(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "in.wav")
	require.NoError(t, os.WriteFile(path, []byte("RIFF....WAVEfake"), 0o644))
	return path
}

func newTestGoogleWebClient(url string) *GoogleWebClient {
	return &GoogleWebClient{
		apiKey:  "test-key",
		lang:    "en-US",
		baseURL: url,
		client:  &http.Client{},
	}
}

func TestGoogleWebClient_Transcribe(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "audio/l16; rate=16000", r.Header.Get("Content-Type"))
		assert.Equal(t, "chromium", r.URL.Query().Get("client"))
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		// The endpoint emits an empty result line before the real one.
		w.Write([]byte(`{"result":[]}` + "\n" +
			`{"result":[{"alternative":[{"transcript":"hello how are you","confidence":0.97}],"final":true}],"result_index":0}`))
	}))
	defer srv.Close()

	c := newTestGoogleWebClient(srv.URL)
	text, err := c.Transcribe(context.Background(), writeFakeWAV(t))
	require.NoError(t, err)
	assert.Equal(t, "hello how are you", text)
}

func TestGoogleWebClient_Unintelligible(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"result":[]}`))
	}))
	defer srv.Close()

	c := newTestGoogleWebClient(srv.URL)
	_, err := c.Transcribe(context.Background(), writeFakeWAV(t))
	assert.ErrorIs(t, err, ErrUnintelligible)
}

func TestGoogleWebClient_ServiceError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "backend error", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := newTestGoogleWebClient(srv.URL)
	_, err := c.Transcribe(context.Background(), writeFakeWAV(t))
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestGoogleWebClient_MissingFile(t *testing.T) {
	c := newTestGoogleWebClient("http://unused")
	_, err := c.Transcribe(context.Background(), filepath.Join(t.TempDir(), "missing.wav"))
	assert.Error(t, err)
}
