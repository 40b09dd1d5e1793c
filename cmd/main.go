package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	_ "github.com/joho/godotenv/autoload"
	gommon "github.com/labstack/gommon/log"

	"fusion/pkg/engine"
	"fusion/pkg/inference"
	"fusion/pkg/server"
	"fusion/pkg/store"
	"fusion/pkg/utils"
)

func main() {
	ctx, done := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	var eng *engine.Engine
	if inf := buildInferencer(); inf != nil {
		eng = engine.New(inf, nil)
	} else {
		log.Warn("No provider key configured, completion endpoints will return errors")
	}

	dbPath := os.Getenv("FUSION_DB")
	if dbPath == "" {
		dbPath = "fusion.db"
	}
	if !utils.Exists(dbPath) {
		log.Info("Creating new database", "path", dbPath)
	}
	kv, err := store.Open(dbPath)
	if err != nil {
		log.Fatal("Failed to open database", "path", dbPath, "err", err)
	}
	defer kv.Close()

	srv := server.NewServer(ctx, eng, store.NewAccounts(kv))
	srv.Echo.Logger.SetLevel(gommon.INFO)

	addr := ":8080"
	if envAddr := os.Getenv("PORT"); envAddr != "" {
		addr = ":" + envAddr
	}

	finishedShutDown := make(chan struct{})
	go func() {
		<-ctx.Done()
		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Shutdown failed", "err", err)
		}
		done()
		close(finishedShutDown)
	}()

	if err := srv.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("Server stopped", "err", err)
	}
	<-finishedShutDown
}

// buildInferencer picks the completion backend from the environment.
// Gemini wins when both keys are present; with no keys at all an OpenAI
// client pointed at a local endpoint is only used when explicitly asked.
func buildInferencer() inference.Inferencer {
	if apiKey := os.Getenv("GEMINI_API_KEY"); apiKey != "" {
		model := os.Getenv("GEMINI_MODEL")
		gem, err := inference.NewGeminiInferencer(apiKey, model)
		if err != nil {
			log.Fatal("Failed to create Gemini client", "err", err)
		}
		return gem
	}

	if apiKey := os.Getenv("OPENAI_API_KEY"); apiKey != "" {
		return inference.NewOpenAIInferencer(apiKey, os.Getenv("OPENAI_MODEL"))
	}

	if os.Getenv("LOCAL_INFERENCE") != "" {
		local := inference.NewOpenAIInferencer("", "")
		local.ChangeBaseURL("http://localhost:1234/v1")
		return local
	}

	return nil
}
