package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"

	grpchandler "github.com/Xausdorf/scheme-pay/internal/delivery/grpc"
	httpdelivery "github.com/Xausdorf/scheme-pay/internal/delivery/http"
	"github.com/Xausdorf/scheme-pay/internal/infrastructure/config"
	"github.com/Xausdorf/scheme-pay/internal/infrastructure/datastore"
	"github.com/Xausdorf/scheme-pay/internal/infrastructure/qrgenerator"
	"github.com/Xausdorf/scheme-pay/internal/usecase/account"
	"github.com/Xausdorf/scheme-pay/internal/usecase/generateqr"
	"github.com/Xausdorf/scheme-pay/internal/usecase/payment"
)

const (
	readHeaderTimeout     = 5 * time.Second
	gracefulShutdownDelay = 5 * time.Second
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	err := run(ctx, logger)
	cancel()
	if err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config load: %w", err)
	}

	accounts, closeStore, err := datastore.Open(ctx, cfg)
	if err != nil {
		return fmt.Errorf("account store init (%s): %w", cfg.DataStoreType, err)
	}
	defer closeStore()
	logger.Info("account store ready", "type", cfg.DataStoreType)

	paymentUC := payment.NewUseCase(accounts)
	accountUC := account.NewUseCase(accounts)
	generateQRUC := generateqr.NewUseCase(accounts, qrgenerator.NewGenerator(cfg.QRSize))

	grpcSrv := grpc.NewServer()
	grpchandler.RegisterPaymentServiceServer(grpcSrv, grpchandler.NewHandler(paymentUC, logger))
	reflection.Register(grpcSrv)

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}

	httpSrv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           httpdelivery.NewRouter(httpdelivery.NewHandler(paymentUC, accountUC, generateQRUC, logger)),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		logger.Info("gRPC server starting", "addr", cfg.GRPCAddr)
		if err := grpcSrv.Serve(lis); err != nil {
			logger.Error("grpc serve failed", "error", err)
		}
	}()

	go func() {
		logger.Info("HTTP server starting", "addr", cfg.HTTPAddr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http serve failed", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), gracefulShutdownDelay)
	defer shutdownCancel()
	_ = httpSrv.Shutdown(shutdownCtx)
	grpcSrv.GracefulStop()
	return nil
}
