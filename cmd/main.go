package main

import (
	"log"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/Vovarama1992/voxlate/internal/audio"
	"github.com/Vovarama1992/voxlate/internal/capture"
	"github.com/Vovarama1992/voxlate/internal/delivery"
	"github.com/Vovarama1992/voxlate/internal/detect"
	"github.com/Vovarama1992/voxlate/internal/player"
	"github.com/Vovarama1992/voxlate/internal/session"
	"github.com/Vovarama1992/voxlate/internal/stt"
	"github.com/Vovarama1992/voxlate/internal/translate"
	"github.com/Vovarama1992/voxlate/internal/tts"
)

func main() {

	// =========================================================================
	// ENV / LOGGER INIT
	// =========================================================================

	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	baseLogger, _ := zap.NewProduction()
	defer baseLogger.Sync()
	zl := baseLogger.Sugar()

	// =========================================================================
	// CLIENTS (STT / MT / TTS)
	// =========================================================================

	sttClient := newSTTClient(zl)
	translator := translate.NewGoogleClient()
	ttsService := tts.NewService(newTTSClient(zl), tts.NewCache(), zl)

	// =========================================================================
	// LOCAL AUDIO (microphone, ffmpeg, speakers)
	// =========================================================================

	recorder := capture.NewMicRecorder(zl)
	adjuster := audio.NewAdjuster(zl)

	var speaker session.Speaker
	if os.Getenv("LOCAL_PLAYBACK") == "1" {
		speaker = player.NewSpeaker(zl)
	}

	// =========================================================================
	// SESSION ORCHESTRATOR
	// =========================================================================

	detector := detect.NewLinguaDetector()

	orchestrator := session.NewOrchestrator(
		recorder,
		sttClient,
		detector,
		translator,
		ttsService,
		adjuster,
		speaker,
		zl,
	)

	// =========================================================================
	// HTTP ROUTER
	// =========================================================================

	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	handler := delivery.NewHandler(orchestrator, zl)
	delivery.RegisterRoutes(r, handler)

	r.With(middleware.Recoverer).Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(200)
		w.Write([]byte("pong"))
	})

	// =========================================================================
	// START SERVER
	// =========================================================================

	addr := ":" + port
	zl.Infow("listening", "addr", addr, "service", "voxlate")

	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

// newSTTClient picks the transcription backend: explicit STT_PROVIDER
// wins, otherwise the first provider with a configured key.
func newSTTClient(zl *zap.SugaredLogger) stt.Client {
	switch os.Getenv("STT_PROVIDER") {
	case "whisper":
		return stt.NewWhisperClient()
	case "google":
		return stt.NewGoogleWebClient()
	case "deepgram":
		return stt.NewDeepgramClient()
	}

	if os.Getenv("OPENAI_API_KEY") != "" {
		zl.Infow("speech-to-text provider", "provider", "whisper")
		return stt.NewWhisperClient()
	}
	if os.Getenv("GOOGLE_SPEECH_API_KEY") != "" {
		zl.Infow("speech-to-text provider", "provider", "google")
		return stt.NewGoogleWebClient()
	}
	if os.Getenv("DEEPGRAM_API_KEY") != "" {
		zl.Infow("speech-to-text provider", "provider", "deepgram")
		return stt.NewDeepgramClient()
	}

	log.Fatal("no speech-to-text provider configured: set OPENAI_API_KEY, GOOGLE_SPEECH_API_KEY or DEEPGRAM_API_KEY")
	return nil
}

// newTTSClient prefers ElevenLabs when a key is present; the Google
// endpoint needs no key and is the default.
func newTTSClient(zl *zap.SugaredLogger) tts.Client {
	if os.Getenv("ELEVENLABS_API_KEY") != "" {
		zl.Infow("text-to-speech provider", "provider", "elevenlabs")
		return tts.NewElevenLabsClient()
	}
	zl.Infow("text-to-speech provider", "provider", "google")
	return tts.NewGoogleClient()
}
