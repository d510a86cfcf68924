package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Kotlang/accountGo/appconfig"
	"github.com/Kotlang/accountGo/callable"
	"github.com/Kotlang/accountGo/interceptors"
	"github.com/Kotlang/accountGo/logger"
	"github.com/gin-gonic/gin"
	grpc_middleware "github.com/grpc-ecosystem/go-grpc-middleware"
	grpc_auth "github.com/grpc-ecosystem/go-grpc-middleware/auth"
	grpc_zap "github.com/grpc-ecosystem/go-grpc-middleware/logging/zap"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/recovery"
	"github.com/improbable-eng/grpc-web/go/grpcweb"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"google.golang.org/grpc"
)

func main() {
	cfg, err := appconfig.Load(".env")
	if err != nil {
		// logger is not configured yet.
		_ = logger.Init("info", "console")
		logger.Fatal("Failed loading config", zap.Error(err))
	}

	if err := logger.Init(cfg.LogLevel, cfg.LogFormat); err != nil {
		panic(err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	inject, err := NewInject(ctx, cfg)
	if err != nil {
		logger.Fatal("Failed initializing services", zap.Error(err))
	}
	defer inject.Close(context.Background())

	grpcServer := NewGrpcServer(inject)
	webServer := &http.Server{
		Addr:    cfg.WebPort,
		Handler: NewWebHandler(inject, grpcServer),
	}

	lis, err := net.Listen("tcp", cfg.GrpcPort)
	if err != nil {
		logger.Fatal("Failed listening", zap.String("port", cfg.GrpcPort), zap.Error(err))
	}

	go func() {
		logger.Info("Starting grpc server", zap.String("port", cfg.GrpcPort), zap.String("backend", cfg.Backend))
		if err := grpcServer.Serve(lis); err != nil {
			logger.Error("Grpc server stopped", zap.Error(err))
			stop()
		}
	}()

	go func() {
		logger.Info("Starting web server", zap.String("port", cfg.WebPort))
		if err := webServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Web server stopped", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = webServer.Shutdown(shutdownCtx)
	grpcServer.GracefulStop()
}

func NewGrpcServer(inject *Inject) *grpc.Server {
	server := grpc.NewServer(
		grpc.UnaryInterceptor(grpc_middleware.ChainUnaryServer(
			grpc_recovery.UnaryServerInterceptor(),
			grpc_zap.UnaryServerInterceptor(logger.Get()),
			interceptors.MetricsUnaryInterceptor(inject.Metrics),
			grpc_auth.UnaryServerInterceptor(interceptors.VerifyToken(inject.Verifier)),
		)),
	)
	callable.RegisterFunctionsServer(server, inject.UserDeletionService)
	return server
}

// NewWebHandler serves grpc-web traffic with the wrapped grpc server and
// everything else (callable functions, metrics, health) with gin.
func NewWebHandler(inject *Inject, grpcServer *grpc.Server) http.Handler {
	wrapped := grpcweb.WrapServer(grpcServer, grpcweb.WithOriginFunc(func(origin string) bool { return true }))

	gin.SetMode(gin.ReleaseMode)
	router := callable.NewRouter(inject.Verifier, map[string]callable.Function{
		"deleteUser": inject.UserDeletionService.DeleteFunction(),
	})
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(inject.Registry, promhttp.HandlerOpts{})))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if wrapped.IsGrpcWebRequest(r) || wrapped.IsAcceptableGrpcCorsRequest(r) {
			wrapped.ServeHTTP(w, r)
			return
		}
		router.ServeHTTP(w, r)
	})
}
