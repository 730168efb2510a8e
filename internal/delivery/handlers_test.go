package delivery

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Vovarama1992/voxlate/internal/capture"
	"github.com/Vovarama1992/voxlate/internal/detect"
	"github.com/Vovarama1992/voxlate/internal/session"
	"github.com/Vovarama1992/voxlate/internal/stt"
	"github.com/Vovarama1992/voxlate/internal/translate"
)

type stubSessions struct {
	recordRes    session.RecordResult
	recordErr    error
	translateRes session.TranslateResult
	translateErr error
	state        session.State

	gotTarget string
	gotSpeed  float64
}

func (s *stubSessions) Record(context.Context) (session.RecordResult, error) {
	return s.recordRes, s.recordErr
}

func (s *stubSessions) Translate(_ context.Context, targetCode string, speed float64) (session.TranslateResult, error) {
	s.gotTarget = targetCode
	s.gotSpeed = speed
	return s.translateRes, s.translateErr
}

func (s *stubSessions) Snapshot() session.State { return s.state }

func newTestServer(s *stubSessions) *httptest.Server {
	h := NewHandler(s, zap.NewNop().Sugar())
	r := chi.NewRouter()
	RegisterRoutes(r, h)
	return httptest.NewServer(r)
}

func TestLanguagesEndpoint(t *testing.T) {
	srv := newTestServer(&stubSessions{})
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/languages")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var langs []struct {
		Code string `json:"code"`
		Name string `json:"name"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&langs))
	assert.Len(t, langs, 11)
	assert.Equal(t, "English", langs[0].Name)
}

func TestRecordEndpoint(t *testing.T) {
	s := &stubSessions{
		recordRes: session.RecordResult{
			InputText: "Hello, how are you?",
			Detected:  detect.Detection{Code: "en", Name: "English", OK: true},
		},
	}
	srv := newTestServer(s)
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/api/record", "application/json", nil)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body session.RecordResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Hello, how are you?", body.InputText)
	assert.Equal(t, "English", body.Detected.Name)
}

func TestRecordEndpoint_ErrorMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"no speech", capture.ErrNoSpeech, http.StatusUnprocessableEntity},
		{"unintelligible", stt.ErrUnintelligible, http.StatusUnprocessableEntity},
		{"service down", stt.ErrUnavailable, http.StatusBadGateway},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := newTestServer(&stubSessions{recordErr: tc.err})
			defer srv.Close()

			resp, err := http.Post(srv.URL+"/api/record", "application/json", nil)
			require.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, tc.wantStatus, resp.StatusCode)

			var body map[string]string
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.NotEmpty(t, body["error"])
		})
	}
}

func TestTranslateEndpoint(t *testing.T) {
	s := &stubSessions{
		translateRes: session.TranslateResult{
			TranslatedText: "Hola, ¿cómo estás?",
			Audio:          []byte("mp3-bytes"),
			AudioFormat:    "audio/mpeg",
		},
	}
	srv := newTestServer(s)
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/api/translate", "application/json",
		strings.NewReader(`{"targetLanguage":"es","speed":1.2}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Equal(t, "es", s.gotTarget)
	assert.Equal(t, 1.2, s.gotSpeed)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Hola, ¿cómo estás?", body["translatedText"])
	assert.NotEmpty(t, body["audio"], "audio travels base64-encoded")
}

func TestTranslateEndpoint_DefaultSpeed(t *testing.T) {
	s := &stubSessions{}
	srv := newTestServer(s)
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/api/translate", "application/json",
		strings.NewReader(`{"targetLanguage":"fr"}`))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, 1.0, s.gotSpeed)
}

func TestTranslateEndpoint_BadJSON(t *testing.T) {
	srv := newTestServer(&stubSessions{})
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/api/translate", "application/json",
		strings.NewReader(`{not json`))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestTranslateEndpoint_ErrorMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"unknown target", session.ErrUnknownTarget, http.StatusBadRequest},
		{"speed out of range", session.ErrSpeedRange, http.StatusBadRequest},
		{"no input yet", session.ErrNoInput, http.StatusBadRequest},
		{"translation down", translate.ErrTranslate, http.StatusBadGateway},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := newTestServer(&stubSessions{translateErr: tc.err})
			defer srv.Close()

			resp, err := http.Post(srv.URL+"/api/translate", "application/json",
				strings.NewReader(`{"targetLanguage":"es","speed":1.0}`))
			require.NoError(t, err)
			resp.Body.Close()
			assert.Equal(t, tc.wantStatus, resp.StatusCode)
		})
	}
}

func TestSessionEndpoint(t *testing.T) {
	s := &stubSessions{state: session.State{
		InputText:      "hello",
		TargetLanguage: "en",
		SpeechSpeed:    1.0,
	}}
	srv := newTestServer(s)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/session")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var st session.State
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&st))
	assert.Equal(t, "hello", st.InputText)
}

func TestIndexServesUI(t *testing.T) {
	srv := newTestServer(&stubSessions{})
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
}
