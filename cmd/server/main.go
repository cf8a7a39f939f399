package main

import (
	"log"

	_ "brainstorm/docs"
	"brainstorm/internal/config"
	"brainstorm/internal/logger"
	"brainstorm/internal/server"

	"go.uber.org/zap"
)

// @title           Brainstorm Board API
// @version         1.0
// @description     Shared brainstorming board: join, post stickies, vote, finish.

// @BasePath  /

// @securityDefinitions.apikey AccessCode
// @in header
// @name X-Access-Code

// @schemes http
func main() {
	cfg := config.Load()

	zl, err := logger.New(cfg.LogLevel, cfg.GinMode)
	if err != nil {
		log.Fatalf("❌ Logger initialization failed: %v", err)
	}
	defer zl.Sync() //nolint:errcheck

	s, err := server.Init(cfg, zl)
	if err != nil {
		zl.Fatal("❌ Server initialization failed", zap.Error(err))
	}

	s.Run()
}
