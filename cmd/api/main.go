// @title           Financial Document Q&A API
// @version         1.0
// @description     Upload financial documents, scan them for key metrics, and ask questions answered by a language model.
// @termsOfService  http://swagger.io/terms/

// @contact.name    me lol
// @contact.url
// @contact.email

// @license.name    Apache 2.0
// @license.url     http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:3000
// @BasePath  /
// @schemes   http https
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/akolanti/FinDocAPI/internal/config"
	"github.com/akolanti/FinDocAPI/internal/data/store"
	"github.com/akolanti/FinDocAPI/internal/domain/docModel"
	"github.com/akolanti/FinDocAPI/internal/handlers"
	"github.com/akolanti/FinDocAPI/internal/qa"
	"github.com/akolanti/FinDocAPI/internal/qa/llm"
	"github.com/akolanti/FinDocAPI/internal/qa/llm/gemini"
	"github.com/akolanti/FinDocAPI/internal/qa/llm/openaichat"
	"github.com/akolanti/FinDocAPI/internal/server"
	"github.com/akolanti/FinDocAPI/internal/session"
	"github.com/akolanti/FinDocAPI/pkg/logger_i"
)

var listenAddr string

func main() {

	logger_i.Init()
	var logger = logger_i.NewLogger("main")

	//config
	flag.StringVar(&listenAddr, "listen-addr", config.ServerListenAddr, "server listen address")
	flag.Parse()

	serviceContext, closeExternalServices := context.WithCancel(context.Background())
	defer closeExternalServices()

	//transcripts live in redis; fall back to memory when redis is offline
	var transcripts docModel.TranscriptStore
	if redisTranscripts := store.GetRedisTranscriptStore(serviceContext); redisTranscripts != nil {
		transcripts = redisTranscripts
	} else {
		logger.Error("Redis store is offline, transcripts will not survive a restart")
		transcripts = store.InitInMemoryTranscriptStore()
	}

	sessionManager := session.NewManager(transcripts)

	var provider llm.Provider
	switch config.LLMProvider {
	case config.LLMProviderGemini:
		provider = gemini.GetGeminiClient(serviceContext, config.LLMAPIKey, config.GeminiModelName)
	default:
		provider = openaichat.GetOpenAIClient(config.LLMBaseURL, config.LLMAPIKey, config.LLMModel)
	}
	if provider == nil {
		//questions will fail with 502 until the upstream is configured
		logger.Error("Language model provider failed to initialize", "provider", config.LLMProvider)
	}

	qaService := qa.NewService(provider)

	handlers.InitHandlers(sessionManager, qaService)

	//server handling
	gracefulShutdown := make(chan os.Signal, 1)
	signal.Notify(gracefulShutdown, syscall.SIGINT, syscall.SIGTERM)
	stopExecution := make(chan bool, 1)

	shutdownParams := server.ShutdownParams{
		GracefulShutdown: gracefulShutdown,
		StopExecution:    stopExecution,
		CloseServices:    closeExternalServices,
	}
	go server.ShutDownHandler(shutdownParams)
	go server.CreateServer(listenAddr)

	<-stopExecution
	logger.Info("Server stopped")
}
