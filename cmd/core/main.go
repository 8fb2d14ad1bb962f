package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	grpc_adapter "github.com/JoeShih716/go-atm-ledger/internal/app/core/adapter/in/grpc"
	http_adapter "github.com/JoeShih716/go-atm-ledger/internal/app/core/adapter/in/http"
	memory_adapter "github.com/JoeShih716/go-atm-ledger/internal/app/core/adapter/out/memory"
	"github.com/JoeShih716/go-atm-ledger/internal/app/core/adapter/out/pinhash"
	"github.com/JoeShih716/go-atm-ledger/internal/app/core/adapter/out/session"
	"github.com/JoeShih716/go-atm-ledger/internal/app/core/adapter/out/sqlstore"
	"github.com/JoeShih716/go-atm-ledger/internal/app/core/config"
	"github.com/JoeShih716/go-atm-ledger/internal/app/core/domain"
	"github.com/JoeShih716/go-atm-ledger/internal/app/core/usecase"
	"github.com/JoeShih716/go-atm-ledger/pkg/database"
	"github.com/JoeShih716/go-atm-ledger/pkg/wal"
	pb "github.com/JoeShih716/go-atm-ledger/proto/atm/v1"
)

func main() {
	configPath := flag.String("config", config.DefaultPath, "path to config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		slog.Error("Server exited with error", "error", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	// 1. 載入設定
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger := cfg.Log.NewLogger()
	slog.SetDefault(logger)

	// 2. 初始化帳本 (Driven Adapter)
	st, err := newStore(cfg.Store)
	if err != nil {
		return fmt.Errorf("init %s ledger: %w", cfg.Store.Driver, err)
	}
	defer st.close()

	hasher, err := pinhash.New(cfg.Security.PINScheme, cfg.Security.BcryptCost)
	if err != nil {
		return fmt.Errorf("init pin hasher: %w", err)
	}
	tokens, err := session.NewTokenManager(cfg.Session.Secret)
	if err != nil {
		return fmt.Errorf("init session tokens: %w", err)
	}

	// 3. 初始化 UseCase
	coreUseCase := usecase.NewCoreUseCase(st.ledger, hasher,
		usecase.WithLogger(logger),
		usecase.WithOpTimeout(cfg.Store.OpTimeout),
		usecase.WithSessionTTL(cfg.Session.TTL),
		usecase.WithLockout(cfg.Security.FailureLimit(), cfg.Security.Lockout),
	)
	if err := seed(context.Background(), coreUseCase, cfg.Seed); err != nil {
		return fmt.Errorf("seed accounts: %w", err)
	}

	// 4. 啟動 gRPC Server (Driving Adapter)
	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", cfg.Server.GRPCAddr, err)
	}
	s := grpc.NewServer(grpc.ChainUnaryInterceptor(
		grpc_adapter.LoggingInterceptor(logger),
		grpc_adapter.AuthInterceptor(tokens),
	))
	pb.RegisterTellerServiceServer(s, grpc_adapter.NewGrpcServer(coreUseCase, tokens))
	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(s, healthServer)
	reflection.Register(s)

	ctx, stop := context.WithCancel(context.Background())
	defer stop()
	go watchHealth(ctx, healthServer, st.ping)

	go func() {
		logger.Info("Starting gRPC server", "addr", cfg.Server.GRPCAddr)
		if err := s.Serve(lis); err != nil {
			logger.Error("gRPC server stopped", "error", err)
		}
	}()

	// 5. 啟動 HTTP Server (可選)
	var httpApp interface{ ShutdownWithTimeout(time.Duration) error }
	if cfg.Server.HTTPAddr != "" {
		app := http_adapter.NewApp(&http_adapter.TellerHandler{Core: coreUseCase, Tokens: tokens, Health: st.ping})
		httpApp = app
		go func() {
			logger.Info("Starting HTTP server", "addr", cfg.Server.HTTPAddr)
			if err := app.Listen(cfg.Server.HTTPAddr); err != nil {
				logger.Error("HTTP server stopped", "error", err)
			}
		}()
	}

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	healthServer.Shutdown()
	if httpApp != nil {
		if err := httpApp.ShutdownWithTimeout(5 * time.Second); err != nil {
			logger.Warn("HTTP shutdown", "error", err)
		}
	}
	s.GracefulStop()
	logger.Info("Server exited")
	return nil
}

// store 帳本與其資源
//
// 結構:
//
//	ledger: 帳本
//	ping: 健康檢查，nil 代表記憶體帳本
//	close: 釋放資源 (WAL、資料庫連線、LMAX 迴圈)
type store struct {
	ledger usecase.Ledger
	ping   func(ctx context.Context) error
	close  func()
}

// newStore 依 store.driver 建立帳本
func newStore(cfg config.StoreConfig) (*store, error) {
	if cfg.InMemory() {
		walFile, err := wal.NewWAL(cfg.WALPath)
		if err != nil {
			return nil, err
		}
		if cfg.Driver == config.DriverLMAX {
			ledger, err := memory_adapter.NewLMAXLedger(nil, walFile)
			if err != nil {
				walFile.Close()
				return nil, err
			}
			ledger.Start(context.Background())
			return &store{ledger: ledger, close: func() {
				ledger.Stop()
				walFile.Close()
			}}, nil
		}
		ledger, err := memory_adapter.NewMutexLedger(nil, walFile)
		if err != nil {
			walFile.Close()
			return nil, err
		}
		return &store{ledger: ledger, close: func() { walFile.Close() }}, nil
	}

	strategy, err := sqlstore.ParseWithdrawStrategy(cfg.WithdrawStrategy)
	if err != nil {
		return nil, err
	}
	dbClient, err := database.NewClient(cfg.Database)
	if err != nil {
		return nil, err
	}
	ledger := sqlstore.NewSQLLedger(dbClient, sqlstore.WithWithdrawStrategy(strategy))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := ledger.Migrate(ctx); err != nil {
		dbClient.Close()
		return nil, err
	}
	slog.Info("Connected to database", "driver", dbClient.Driver(), "withdraw_strategy", string(strategy))
	return &store{ledger: ledger, ping: dbClient.Ping, close: func() { dbClient.Close() }}, nil
}

// watchHealth 定期 ping 儲存層並更新 gRPC health 狀態
func watchHealth(ctx context.Context, hs *health.Server, ping func(ctx context.Context) error) {
	check := func() {
		status := healthpb.HealthCheckResponse_SERVING
		if ping != nil {
			pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
			err := ping(pingCtx)
			cancel()
			if err != nil {
				slog.Warn("Store health check failed", "error", err)
				status = healthpb.HealthCheckResponse_NOT_SERVING
			}
		}
		hs.SetServingStatus("", status)
		hs.SetServingStatus(pb.TellerService_ServiceDesc.ServiceName, status)
	}

	check()
	ticker := time.NewTicker(15 * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			check()
		}
	}
}

// seed 建立設定檔中的帳戶，已存在的略過
func seed(ctx context.Context, core *usecase.CoreUseCase, accounts []config.SeedAccount) error {
	created := 0
	for _, a := range accounts {
		var balance domain.Amount
		if a.Balance != "" {
			b, err := domain.ParseBalance(a.Balance)
			if err != nil {
				return fmt.Errorf("seed %s: %w", a.AccountNumber, err)
			}
			balance = b
		}
		err := core.Provision(ctx, a.AccountNumber, a.PIN, balance)
		if errors.Is(err, domain.ErrAccountAlreadyExists) {
			continue
		}
		if err != nil {
			return err
		}
		created++
	}
	slog.Info("Seeded accounts", "created", created, "configured", len(accounts))
	return nil
}
