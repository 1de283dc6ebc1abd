package main

import (
	"GenoFlow_Gateway/internal/api-gateway/api/handler"
	"GenoFlow_Gateway/internal/api-gateway/api/middleware"
	"GenoFlow_Gateway/internal/api-gateway/api/routes"
	"GenoFlow_Gateway/internal/api-gateway/config"
	"GenoFlow_Gateway/internal/api-gateway/jwt"
	"GenoFlow_Gateway/internal/api-gateway/metrics"
	"GenoFlow_Gateway/internal/api-gateway/ratelimit"
	"GenoFlow_Gateway/internal/api-gateway/registry"
	"GenoFlow_Gateway/internal/api-gateway/repository"
	"GenoFlow_Gateway/internal/api-gateway/service"
	"GenoFlow_Gateway/pkg/infra"
	"GenoFlow_Gateway/pkg/logger"
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

func main() {
	appConfig, err := config.LoadConfig("./.env")
	if err != nil {
		log.Fatal(fmt.Sprintf("load config error: %v", err))
	}

	// set up logger
	fileSyncer, err := logger.NewReopenableWriteSyncer(appConfig.Server.LogFile)
	if err != nil {
		log.Fatal(fmt.Sprintf("open log file error: %v", err))
	}
	zapLogger := logger.NewLogger(appConfig.Server.LogLevel, fileSyncer).With(zap.String("service.name", "api-gateway"))
	defer zapLogger.Sync()
	rootCtx, stop := context.WithCancel(context.Background())
	defer stop()
	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	go logger.ReloadOnSignal(rootCtx, fileSyncer, zapLogger, hup)

	// set up redis
	redisClient, err := infra.NewRedisConnection(infra.RedisConfig{
		Host:           appConfig.Redis.Host,
		Port:           appConfig.Redis.Port,
		Password:       appConfig.Redis.Password,
		DB:             appConfig.Redis.DB,
		MaxConnections: appConfig.Redis.MaxConnections,
	})
	if err != nil {
		zapLogger.Fatal("failed to connect to redis", zap.Error(err))
	} else {
		zapLogger.Info("connected to redis successfully")
	}
	defer redisClient.Close()

	//set up database
	db, err := infra.NewPostgresConnection(infra.PostgresConfig{
		Host:     appConfig.Postgres.Host,
		Port:     appConfig.Postgres.Port,
		User:     appConfig.Postgres.User,
		Password: appConfig.Postgres.Password,
		DBName:   appConfig.Postgres.DBName,
		SSLMode:  appConfig.Postgres.SSLMode,
	})
	if err != nil {
		zapLogger.Fatal("failed to connect to postgres", zap.Error(err))
	} else {
		zapLogger.Info("connected to postgres successfully")
	}
	sqlDB, err := db.DB()
	if err != nil {
		zapLogger.Fatal("failed to get sql.DB from gorm:", zap.Error(err))
	}
	defer sqlDB.Close()

	tokenRepo := repository.NewRefreshTokenRepository(redisClient)
	userRepo := repository.NewUserRepository(db)
	serviceRepo := repository.NewServiceRepository(redisClient)
	var rateLimitRepo repository.RateLimitRepository
	switch appConfig.RateLimit.Backend {
	case "memory":
		rateLimitRepo = repository.NewMemoryRateLimitRepository(time.Now)
	default:
		rateLimitRepo = repository.NewRateLimitRepository(redisClient)
	}

	jwtUtils := jwt.NewJwtUtils(appConfig.JWT.SecretKey, appConfig.JWT.AccessTokenTTL, appConfig.JWT.RefreshTokenTTL)
	authService := service.NewAuthService(userRepo, tokenRepo, jwtUtils, service.DefaultPermissionTable(), zapLogger)
	limiter := ratelimit.NewLimiter(rateLimitRepo, appConfig.RateLimit.Requests, appConfig.RateLimit.Window, zapLogger)

	// set up service registry
	serviceRegistry := registry.NewServiceRegistry(
		registry.NewHealthClient(appConfig.Registry.HealthCheckTimeout),
		serviceRepo,
		appConfig.Registry.ServiceRecordTTL,
		zapLogger,
	)
	for name, urls := range appConfig.Registry.ServiceURLs() {
		serviceRegistry.RegisterService(rootCtx, name, urls)
	}

	var healthWriter infra.KafkaWriter
	if len(appConfig.Kafka.Brokers) > 0 {
		kafkaWriter := infra.NewKafkaWriter(appConfig.Kafka.Brokers, appConfig.Kafka.HealthTopic)
		defer kafkaWriter.Close()
		healthWriter = kafkaWriter
	}
	prober := registry.NewProber(serviceRegistry, healthWriter, appConfig.Registry.HealthCheckTimeout, zapLogger)

	cronJob := cron.New()
	_, err = cronJob.AddFunc("@every "+appConfig.Registry.HealthCheckInterval.String(), func() {
		prober.ProbeAll(rootCtx)
	})
	if err != nil {
		zapLogger.Fatal("failed to create cron job for health checks", zap.Error(err))
	}
	cronJob.Start()

	// set up metrics
	promRegistry := prometheus.NewRegistry()
	promRegistry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		registry.NewCollector(serviceRegistry, metrics.DefaultNamespace),
	)
	httpMetrics := metrics.NewHTTPMetrics(metrics.HTTPMetricsOptions{
		Namespace:  metrics.DefaultNamespace,
		Registerer: promRegistry,
	})

	authMiddleware := middleware.NewAuthMiddleware(authService)

	handlerLogger := handler.NewLogger(zapLogger)
	authHandler := handler.NewAuthHandler(authService, handlerLogger)
	proxyHandler := handler.NewProxyHandler(serviceRegistry, &http.Client{}, appConfig.Registry.MaxForwardAttempts, handlerLogger)
	systemHandler := handler.NewSystemHandler(serviceRegistry, appConfig.Server.Version)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	routes.SetUpPipeline(r, routes.Pipeline{
		Errors:         middleware.NewErrorMiddleware(zapLogger),
		RateLimit:      middleware.NewRateLimitMiddleware(limiter, jwtUtils, "/health"),
		Auth:           authMiddleware,
		Metrics:        httpMetrics,
		Logger:         zapLogger,
		AllowedOrigins: appConfig.Server.AllowedOrigins,
	})
	routes.SetUpSystemRoutes(r, systemHandler)
	routes.SetUpAuthRoutes(r, authHandler, authMiddleware)
	routes.SetUpServiceRoutes(r, proxyHandler, authMiddleware, routes.ForwardTimeouts{
		Default: appConfig.Registry.ForwardTimeout,
		Upload:  appConfig.Registry.UploadTimeout,
	})

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", appConfig.Server.Port),
		Handler: r,
	}
	metricsSrv := &http.Server{
		Addr:    fmt.Sprintf(":%s", appConfig.Server.MetricsPort),
		Handler: promhttp.HandlerFor(promRegistry, promhttp.HandlerOpts{Registry: promRegistry}),
	}
	go func() {
		zapLogger.Info(fmt.Sprintf("starting server on %s", srv.Addr))
		if e := srv.ListenAndServe(); e != nil && !errors.Is(e, http.ErrServerClosed) {
			zapLogger.Fatal("failed to start server", zap.Error(e))
		}
	}()
	go func() {
		zapLogger.Info(fmt.Sprintf("starting metrics server on %s", metricsSrv.Addr))
		if e := metricsSrv.ListenAndServe(); e != nil && !errors.Is(e, http.ErrServerClosed) {
			zapLogger.Fatal("failed to start metrics server", zap.Error(e))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zapLogger.Info("shutting down server...")
	<-cronJob.Stop().Done()
	stop()
	ctx, cancel := context.WithTimeout(context.Background(), appConfig.Server.ShutdownTimeout)
	defer cancel()
	if err = srv.Shutdown(ctx); err != nil {
		zapLogger.Error("server forced to shutdown:", zap.Error(err))
	}
	if err = metricsSrv.Shutdown(ctx); err != nil {
		zapLogger.Error("metrics server forced to shutdown:", zap.Error(err))
	}
	zapLogger.Info("server exiting")
}
