package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	apiv1alpha1 "github.com/KirkDiggler/toon-tailor/internal/api/toontailor/v1alpha1"
	"github.com/KirkDiggler/toon-tailor/internal/catalog"
	"github.com/KirkDiggler/toon-tailor/internal/clients/generator"
	"github.com/KirkDiggler/toon-tailor/internal/config"
	"github.com/KirkDiggler/toon-tailor/internal/engine"
	"github.com/KirkDiggler/toon-tailor/internal/errors"
	"github.com/KirkDiggler/toon-tailor/internal/handlers/toontailor/v1alpha1"
	characterorchestrator "github.com/KirkDiggler/toon-tailor/internal/orchestrators/character"
	"github.com/KirkDiggler/toon-tailor/internal/pkg/clock"
	"github.com/KirkDiggler/toon-tailor/internal/pkg/idgen"
	characterrepo "github.com/KirkDiggler/toon-tailor/internal/repositories/character"
	"github.com/KirkDiggler/toon-tailor/internal/services/transfer"
	"github.com/KirkDiggler/toon-tailor/internal/storage/backend"
)

const shutdownTimeout = 30 * time.Second

var (
	grpcPort   int
	storage    string
	logLevel   string
	envFile    string
	importMode string
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long: `Start the Toon Tailor gRPC server. Settings come from the environment
(and an optional .env file); flags override them.`,
	RunE: runServer,
}

func init() {
	serverCmd.Flags().IntVar(&grpcPort, "port", 0, "gRPC server port (overrides TOON_TAILOR_PORT)")
	serverCmd.Flags().StringVar(&storage, "storage", "", "storage backend: sqlite, redis or memory (overrides TOON_TAILOR_STORAGE)")
	serverCmd.Flags().StringVar(&logLevel, "log-level", "", "log level (overrides TOON_TAILOR_LOG_LEVEL)")
	serverCmd.Flags().StringVar(&importMode, "import-mode", "", "default import mode: strict or lenient")
	serverCmd.Flags().StringVar(&envFile, "env-file", config.DefaultEnvFile, "env file to load when present")
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(envFile)
	if err != nil {
		return nil, err
	}
	if grpcPort != 0 {
		cfg.Port = grpcPort
	}
	if storage != "" {
		cfg.Storage = storage
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if importMode != "" {
		cfg.ImportMode = importMode
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runServer(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("received shutdown signal, gracefully stopping")
		cancel()
	}()

	clk := clock.New()

	backendCfg := cfg.BackendConfig()
	backendCfg.Clock = clk
	store, err := backend.Open(ctx, backendCfg)
	if err != nil {
		return fmt.Errorf("failed to open %s storage: %w", cfg.Storage, err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			slog.Error("failed to close storage", "error", err)
		}
	}()

	idGen, err := idgen.New(cfg.IDStrategy, clk)
	if err != nil {
		return fmt.Errorf("failed to create id generator: %w", err)
	}

	characterRepo, err := characterrepo.New(&characterrepo.Config{
		Store:       store,
		IDGenerator: idGen,
		Key:         cfg.RepositoryKey(),
	})
	if err != nil {
		return fmt.Errorf("failed to create character repository: %w", err)
	}

	characterEngine, err := engine.New(&engine.Config{
		Catalog:    catalog.Default(),
		DiceRoller: dice.DefaultRoller,
	})
	if err != nil {
		return fmt.Errorf("failed to create engine: %w", err)
	}

	mode, err := transfer.ParseMode(cfg.ImportMode)
	if err != nil {
		return err
	}
	transferService, err := transfer.New(&transfer.Config{
		Engine:  characterEngine,
		Mode:    mode,
		MaxSize: cfg.ImportMaxBytes,
	})
	if err != nil {
		return fmt.Errorf("failed to create transfer service: %w", err)
	}

	if cfg.Generator.APIKey == "" {
		slog.Warn("OPENROUTER_API_KEY is not set; character generation will fail")
	}
	generatorClient, err := generator.New(cfg.GeneratorClientConfig())
	if err != nil {
		return fmt.Errorf("failed to create generator client: %w", err)
	}

	characterService, err := characterorchestrator.New(&characterorchestrator.Config{
		CharacterRepo: characterRepo,
		Engine:        characterEngine,
		Transfer:      transferService,
		Generator:     generatorClient,
		IDGenerator:   idGen,
	})
	if err != nil {
		return fmt.Errorf("failed to create character service: %w", err)
	}

	characterHandler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		CharacterService: characterService,
	})
	if err != nil {
		return fmt.Errorf("failed to create character handler: %w", err)
	}

	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(interceptorLogger(logger)),
			grpc_recovery.UnaryServerInterceptor(grpc_recovery.WithRecoveryHandlerContext(recoverPanic)),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(interceptorLogger(logger)),
			grpc_recovery.StreamServerInterceptor(grpc_recovery.WithRecoveryHandlerContext(recoverPanic)),
		),
	)

	apiv1alpha1.RegisterCharacterServiceServer(srv, characterHandler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)

	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(apiv1alpha1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(srv)

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.Port))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	errChan := make(chan error, 1)
	go func() {
		slog.Info("gRPC server starting", "port", cfg.Port, "storage", cfg.Storage, "import_mode", mode)
		if err := srv.Serve(lis); err != nil {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("shutting down gRPC server")
		healthServer.Shutdown()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer shutdownCancel()

		stopped := make(chan struct{})
		go func() {
			srv.GracefulStop()
			close(stopped)
		}()

		select {
		case <-shutdownCtx.Done():
			slog.Warn("graceful shutdown timeout exceeded, forcing stop")
			srv.Stop()
		case <-stopped:
			slog.Info("server stopped gracefully")
		}

		return nil
	case err := <-errChan:
		return err
	}
}

// interceptorLogger adapts slog to the middleware logger; the level values
// line up with slog's
func interceptorLogger(l *slog.Logger) grpc_logging.Logger {
	return grpc_logging.LoggerFunc(func(ctx context.Context, level grpc_logging.Level, msg string, fields ...any) {
		l.Log(ctx, slog.Level(level), msg, fields...)
	})
}

func recoverPanic(ctx context.Context, p any) error {
	slog.ErrorContext(ctx, "recovered from panic", "panic", p)
	return errors.ToGRPCError(errors.Internal("internal server error"))
}
