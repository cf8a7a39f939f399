package server

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"brainstorm/internal/board"
	"brainstorm/internal/config"
	"brainstorm/internal/handler"
	"brainstorm/internal/middleware"
	"brainstorm/internal/repository"
	"brainstorm/internal/web"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Server struct {
	Engine *gin.Engine
	Board  *board.Board
	Config *config.Config
	Log    *zap.Logger
}

func Init(cfg *config.Config, log *zap.Logger) (*Server, error) {
	archive, err := openArchive(cfg, log)
	if err != nil {
		return nil, err
	}

	var opts []board.Option
	if cfg.RandomSeed != 0 {
		opts = append(opts, board.WithRand(rand.New(rand.NewSource(cfg.RandomSeed))))
		log.Warn("board randomness is seeded; access codes are predictable", zap.Int64("seed", cfg.RandomSeed))
	}
	b := board.New(opts...)

	gin.SetMode(cfg.GinMode)
	r := NewRouter(b, archive, log)

	log.Info("board ready", zap.String("access_code", b.AccessCode()))

	return &Server{
		Engine: r,
		Board:  b,
		Config: cfg,
		Log:    log,
	}, nil
}

// openArchive connects the results archive when enabled, otherwise returns a
// store that drops writes.
func openArchive(cfg *config.Config, log *zap.Logger) (handler.ArchiveStore, error) {
	if !cfg.ArchiveEnabled {
		log.Info("results archive disabled")
		return repository.DisabledArchive{}, nil
	}

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName,
	)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to archive DB: %w", err)
	}

	repo := repository.NewArchiveRepository(db)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := repo.Migrate(ctx); err != nil {
		return nil, err
	}

	log.Info("connected to archive database", zap.String("host", cfg.DBHost), zap.String("db", cfg.DBName))
	return repo, nil
}

// NewRouter wires every route against the given board and archive.
func NewRouter(b *board.Board, archive handler.ArchiveStore, log *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(log))
	r.SetHTMLTemplate(web.Templates())

	boardHandler := handler.NewBoardHandler(b, archive, log)
	archiveHandler := handler.NewArchiveHandler(archive, log)
	pageHandler := handler.NewPageHandler(b)

	// Public routes
	r.GET("/", pageHandler.Index)
	r.GET("/board", pageHandler.Board)
	r.GET("/healthz", handler.Health)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes - require the board access code
	api := r.Group("/api")
	api.Use(middleware.AccessCode(b))
	{
		api.GET("/status", boardHandler.Status)
		api.POST("/join", boardHandler.Join)
		api.GET("/board", boardHandler.Board)

		api.POST("/stickies", boardHandler.AddSticky)
		api.POST("/stickies/:id/move", boardHandler.MoveSticky)
		api.DELETE("/stickies/:id", boardHandler.DeleteSticky)

		api.POST("/phase", boardHandler.ChangePhase)
		api.POST("/votes", boardHandler.Vote)
		api.POST("/reset", boardHandler.Reset)

		api.GET("/archives", archiveHandler.GetRecent)
		api.GET("/archives/:id", archiveHandler.GetByID)
	}

	return r
}

func (s *Server) Run() {
	srv := &http.Server{
		Addr:              ":" + s.Config.ServerPort,
		Handler:           s.Engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		s.Log.Info("🚀 server running", zap.String("port", s.Config.ServerPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.Log.Fatal("❌ failed to listen", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	s.Log.Info("🛑 shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		s.Log.Fatal("❌ server forced to shutdown", zap.Error(err))
	}

	s.Log.Info("✅ server exited properly")
}
