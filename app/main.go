package main

import (
	"context"
	"encoding/base64"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osokin/briefvoice/app/api"
	"github.com/osokin/briefvoice/app/archive"
	"github.com/osokin/briefvoice/app/article"
	"github.com/osokin/briefvoice/app/cfg"
	"github.com/osokin/briefvoice/app/config"
	"github.com/osokin/briefvoice/app/pipeline"
	"github.com/osokin/briefvoice/app/speech"
	"github.com/osokin/briefvoice/app/summarize"
	"github.com/osokin/briefvoice/app/tasks"
)

func main() {
	appCfg, err := cfg.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}
	if appCfg == nil {
		// Help was shown, exit gracefully
		return
	}

	setupLogging(appCfg.Debug)

	slog.Info("Starting BriefVoice", "version", appCfg.Version)

	// Core pipeline components
	resolver := article.NewResolver(appCfg.UserAgent)
	extractor := article.NewExtractor(appCfg.UserAgent, article.DefaultFetchTimeout)
	synthesizer := speech.NewSynthesizer(appCfg.TTSURL, appCfg.TTSLang, appCfg.RefAudioPath, speech.DefaultTimeout)
	recorder := archive.NewRecorder(appCfg.LogsDir)

	prompts := func() (*config.PromptTemplate, error) {
		return config.LoadPromptTemplate(appCfg.PromptsFile)
	}

	providers := buildProviders(appCfg)

	orchestrator := pipeline.NewOrchestrator(resolver, extractor, synthesizer, recorder, prompts)

	if appCfg.URL != "" {
		runOnce(appCfg, orchestrator, providers)
		return
	}

	serve(appCfg, orchestrator, providers)
}

func setupLogging(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})))
}

// buildProviders constructs every summarization provider whose credentials
// are available. A provider with a missing key is left out of the registry
// and reported as unconfigured when selected.
func buildProviders(appCfg *cfg.Cfg) summarize.Registry {
	providers := summarize.Registry{}

	if key, err := config.LoadCredential(appCfg.GeminiKeyFile); err != nil {
		slog.Warn("Gemini provider not configured", "error", err)
	} else if gemini, err := summarize.NewGemini(context.Background(), key); err != nil {
		slog.Warn("Gemini provider not configured", "error", err)
	} else {
		providers[summarize.ProviderGemini] = gemini
	}

	if key, err := config.LoadCredential(appCfg.OpenRouterKeyFile); err != nil {
		slog.Warn("OpenRouter provider not configured", "error", err)
	} else if openRouter, err := summarize.NewOpenRouter(key); err != nil {
		slog.Warn("OpenRouter provider not configured", "error", err)
	} else {
		providers[summarize.ProviderOpenRouter] = openRouter
	}

	if len(providers) == 0 {
		log.Fatal("No summarization provider is configured, check the API key files")
	}

	return providers
}

// runOnce executes the pipeline for a single URL and exits.
func runOnce(appCfg *cfg.Cfg, orchestrator *pipeline.Orchestrator, providers summarize.Registry) {
	providerID, err := summarize.ParseProviderID(appCfg.Provider)
	if err != nil {
		log.Fatal("Invalid provider:", err)
	}

	provider, err := providers.Get(providerID)
	if err != nil {
		log.Fatal("Provider not available:", err)
	}

	source := pipeline.Source{URL: appCfg.URL, IsFeed: appCfg.URLIsFeed}

	result, err := orchestrator.Run(context.Background(), source, provider)
	if err != nil {
		log.Fatal("Pipeline run failed:", err)
	}

	fmt.Println(result.Summary)

	audio, err := base64.StdEncoding.DecodeString(result.AudioBase64)
	if err != nil {
		log.Fatal("Failed to decode audio:", err)
	}
	if err := os.WriteFile("output.wav", audio, 0644); err != nil {
		log.Fatal("Failed to save audio:", err)
	}
	slog.Info("Audio saved", "path", "output.wav", "bytes", len(audio))
}

// serve runs the HTTP service with the background feed sweep.
func serve(appCfg *cfg.Cfg, orchestrator *pipeline.Orchestrator, providers summarize.Registry) {
	feeds, err := config.LoadFeeds(appCfg.FeedsFile)
	if err != nil {
		log.Fatal("Failed to load feed list:", err)
	}
	slog.Info("Loaded scheduled feed list", "feeds", len(feeds), "file", appCfg.FeedsFile)

	// Background sweep
	var sweepScheduler tasks.SweepSchedulerInterface
	sweepProviderID, err := summarize.ParseProviderID(appCfg.SweepProvider)
	if err != nil {
		log.Fatal("Invalid sweep provider:", err)
	}
	if sweepProvider, err := providers.Get(sweepProviderID); err != nil {
		slog.Warn("Sweep disabled, provider unavailable", "provider", appCfg.SweepProvider, "error", err)
	} else {
		sweepScheduler = tasks.NewScheduler(orchestrator, sweepProvider, feeds,
			time.Duration(appCfg.SweepInterval)*time.Second,
			time.Duration(appCfg.SweepPause)*time.Second)
		sweepScheduler.Start()
		defer sweepScheduler.Stop()
		slog.Info("Sweep scheduler started", "interval_seconds", appCfg.SweepInterval, "provider", appCfg.SweepProvider)
	}

	// HTTP server
	handler := api.NewHandler(orchestrator, providers, feeds)
	server := api.NewServer(handler)

	httpServer := &http.Server{
		Addr:         ":" + appCfg.Port,
		Handler:      server,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 5 * time.Minute, // pipeline runs synchronously inside the request
		IdleTimeout:  120 * time.Second,
	}

	serverErrChan := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "port", appCfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		slog.Info("Received signal", "signal", sig.String())
	case err := <-serverErrChan:
		slog.Error("Server error", "error", err)
	}

	slog.Info("Shutting down gracefully")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	} else {
		slog.Info("HTTP server stopped")
	}

	// Sweep scheduler is stopped via defer
	slog.Info("Shutdown complete")
}
