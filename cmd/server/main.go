package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tokendeck/internal/agent"
	"tokendeck/internal/cache"
	"tokendeck/internal/config"
	"tokendeck/internal/handler"
	"tokendeck/internal/provider"
	"tokendeck/internal/service"
	"tokendeck/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel/trace"

	_ "tokendeck/docs"
)

var (
	loadEnvFunc    = godotenv.Load
	loadConfigFunc = config.Load
	initTracerFunc = tracing.InitTracer
	newStoreFunc   = newStore
	newOracleFunc  = func(tracer trace.Tracer, cfg *config.Config) *agent.Oracle {
		if cfg.GroqAPIKey == "" {
			return nil
		}
		return agent.NewOracle(tracer, agent.NewGroqClient(cfg.GroqAPIKey, cfg.GroqBaseURL), cfg.GroqModel)
	}
	newRouterFunc          = gin.Default
	setupSignalNotify      = signal.Notify
	waitForSignalFunc      = func(quit <-chan os.Signal) { <-quit }
	startHTTPServerFunc    = func(srv *http.Server) error { return srv.ListenAndServe() }
	shutdownHTTPServerFunc = func(srv *http.Server, ctx context.Context) error { return srv.Shutdown(ctx) }
)

// newStore selects the cache backend. A Redis failure is not fatal for a
// localhost dashboard; it falls back to the in-process store.
func newStore(ctx context.Context, cfg *config.Config) cache.Store {
	if cfg.CacheBackend == "redis" {
		store, err := cache.NewRedisStore(ctx, cfg.RedisURL, cfg.CacheTTL)
		if err == nil {
			return store
		}
		log.Printf("Warning: redis cache unavailable (%v), falling back to memory", err)
	}
	return cache.NewMemoryStore(cfg.CacheTTL)
}

// @title           tokendeck API
// @version         1.0
// @description     Localhost market-data dashboard backend: prices, DEX pairs, candles, Solana wallets, swap simulation, and an agent verdict endpoint.

// @host      localhost:8080
// @BasePath  /
func main() {
	loadEnvFunc()

	cfg := loadConfigFunc()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tp, tracer, err := initTracerFunc(ctx)
	if err != nil {
		log.Fatalf("failed to initialize tracer: %v", err)
	}
	defer func() {
		if err := tp.Shutdown(ctx); err != nil {
			log.Printf("error shutting down tracer provider: %v", err)
		}
	}()

	store := newStoreFunc(ctx, cfg)

	coingecko := provider.NewCoinGeckoProvider(tracer)
	dexscreener := provider.NewDexscreenerProvider(tracer)
	geckoterminal := provider.NewGeckoTerminalProvider(tracer)
	solanaRPC := provider.NewSolanaClient(cfg.SolanaRPCURL, tracer)

	analyzer := agent.NewService(tracer, newOracleFunc(tracer, cfg))

	market := service.NewMarketService(tracer, store, coingecko, dexscreener, geckoterminal, analyzer)
	solana := service.NewSolanaService(tracer, store, solanaRPC, cfg.SolanaTxLimit)

	h := handler.New(tracer, market, solana)

	r := newRouterFunc()
	r.Use(otelgin.Middleware("tokendeck"))
	r.Use(handler.APIKeyAuth(cfg.APIKey))

	h.RegisterRoutes(r)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if info, err := os.Stat(cfg.StaticDir); err == nil && info.IsDir() {
		r.NoRoute(gin.WrapH(http.FileServer(http.Dir(cfg.StaticDir))))
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		if err := startHTTPServerFunc(srv); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	setupSignalNotify(quit, syscall.SIGINT, syscall.SIGTERM)
	waitForSignalFunc(quit)
	log.Println("Shutting down server...")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := shutdownHTTPServerFunc(srv, shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
