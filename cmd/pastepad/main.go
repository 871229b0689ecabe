package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pastepad/cfg"
	"pastepad/svc/api"
	"pastepad/svc/cache"
	"pastepad/svc/store"
	"pastepad/svc/svc"
	"pastepad/svc/util"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	c, err := cfg.Load()
	if err != nil {
		util.Fatal().Err(err).Msg("failed to load configuration")
		os.Exit(1)
	}
	if err := cfg.Validate(c); err != nil {
		util.Fatal().Err(err).Msg("invalid configuration")
		os.Exit(1)
	}
	defer c.Wipe()
	util.InitLog(c.LogLevel, c.Environment == "development")
	util.Info().Msg("starting pastepad")

	st, err := store.Open(c)
	if err != nil {
		util.Fatal().Err(err).Str("backend", c.StoreBackend).Msg("failed to open store")
		os.Exit(1)
	}
	defer st.Close()
	util.Info().Str("backend", c.StoreBackend).Msg("store initialized")

	lru, err := cache.NewLRU(c.LRUCacheSize)
	if err != nil {
		util.Fatal().Err(err).Msg("failed to create LRU cache")
		os.Exit(1)
	}
	util.Info().Int("size", c.LRUCacheSize).Msg("LRU cache initialized")

	pasteSvc := svc.NewPaste(st, lru, c)
	server := api.NewServer(c, pasteSvc, st)

	util.Info().Str("port", c.Port).Str("environment", c.Environment).Msg("server starting")
	go func() {
		if err := server.Start(); err != nil {
			util.Fatal().Err(err).Msg("server failed")
			os.Exit(1)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh
	util.Info().Msg("shutting down gracefully...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		util.Error().Err(err).Msg("server shutdown error")
	}
	util.Info().Msg("shutdown complete")
}
