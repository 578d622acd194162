package app

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	gormlogger "gorm.io/gorm/logger"

	"github.com/guih-henriqueee/agendamentos-api/internal/adapter/database"
	handlers "github.com/guih-henriqueee/agendamentos-api/internal/adapter/http"
	"github.com/guih-henriqueee/agendamentos-api/internal/adapter/memory"
	"github.com/guih-henriqueee/agendamentos-api/internal/app/agendamento"
	"github.com/guih-henriqueee/agendamentos-api/internal/app/fornecedor"
	"github.com/guih-henriqueee/agendamentos-api/internal/app/funcionario"
	"github.com/guih-henriqueee/agendamentos-api/internal/app/user"
	"github.com/guih-henriqueee/agendamentos-api/internal/auth"
	"github.com/guih-henriqueee/agendamentos-api/internal/domain/repository"
	"github.com/guih-henriqueee/agendamentos-api/internal/infra/metrics"
	"github.com/guih-henriqueee/agendamentos-api/internal/infra/middleware"
	"github.com/guih-henriqueee/agendamentos-api/pkg/cache"
	"github.com/guih-henriqueee/agendamentos-api/pkg/config"
	"github.com/guih-henriqueee/agendamentos-api/pkg/ratelimit"
	"go.uber.org/zap"
)

// App reúne todas as dependências da aplicação
type App struct {
	Logger     *zap.Logger
	Config     *config.Config
	DB         *database.Database
	Cache      cache.Cache
	Middleware *middleware.Middleware
	APIMetrics *metrics.APIMetrics

	userHandler        *handlers.UserHandler
	fornecedorHandler  *handlers.FornecedorHandler
	agendamentoHandler *handlers.AgendamentoHandler
	funcionarioHandler *handlers.FuncionarioHandler
	authHandler        *handlers.AuthHandler
	healthChecker      *handlers.HealthChecker
	metricsHandler     *middleware.MetricsHandler
}

// NewApp cria uma nova instância da aplicação com todas as dependências injetadas
func NewApp(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	apiMetrics := metrics.NewAPIMetrics()

	// Armazenamento: em memória por padrão, banco relacional quando configurado
	var (
		db              *database.Database
		userRepo        repository.UserRepository
		fornecedorRepo  repository.FornecedorRepository
		agendamentoRepo repository.AgendamentoRepository
		funcionarioRepo repository.FuncionarioRepository
	)

	if cfg.Storage.Driver == "memory" {
		userRepo = memory.NewUserRepository()
		fornecedorRepo = memory.NewFornecedorRepository()
		agendamentoRepo = memory.NewAgendamentoRepository()
		funcionarioRepo = memory.NewFuncionarioRepository()
		logger.Info("armazenamento em memória: os dados vivem apenas durante o processo")
	} else {
		var err error
		db, err = database.NewDatabase(ctx, database.Config{
			Driver:          cfg.Storage.Driver,
			DSN:             cfg.Storage.DSN,
			MaxIdleConns:    cfg.Storage.MaxIdleConns,
			MaxOpenConns:    cfg.Storage.MaxOpenConns,
			ConnMaxLifetime: cfg.Storage.ConnMaxLifetime,
			LogLevel:        gormLogLevel(cfg.Storage.LogLevel),
			SlowThreshold:   cfg.Storage.SlowThreshold,
		}, logger)
		if err != nil {
			return nil, fmt.Errorf("erro ao inicializar banco de dados: %w", err)
		}

		userRepo = database.NewUserRepository(db.DB(), logger)
		fornecedorRepo = database.NewFornecedorRepository(db.DB(), logger)
		agendamentoRepo = database.NewAgendamentoRepository(db.DB(), logger)
		funcionarioRepo = database.NewFuncionarioRepository(db.DB(), logger)
	}

	// Cache
	var appCache cache.Cache
	var redisClient *redis.Client

	switch {
	case !cfg.Cache.Enabled:
		appCache = &cache.NoOpCache{}
	case cfg.Cache.Type == "redis":
		redisCache, err := cache.NewRedisCache(cfg.Cache.Redis.Address, cfg.Cache.Redis.Password, cfg.Cache.Redis.DB, logger)
		if err != nil {
			return nil, fmt.Errorf("erro ao conectar ao Redis: %w", err)
		}
		appCache = redisCache
	default:
		appCache = cache.NewMemoryCache(cfg.Cache.TTL, 2*cfg.Cache.TTL, apiMetrics, logger)
	}

	// Rate limiter exige Redis; sem Redis o middleware vira no-op
	var limiter *ratelimit.RedisLimiter
	if cfg.Features.RateLimiter {
		var err error
		redisClient, err = cache.NewRedisClientWithConfig(&redis.Options{
			Addr:     cfg.Cache.Redis.Address,
			Password: cfg.Cache.Redis.Password,
			DB:       cfg.Cache.Redis.DB,
		}, logger)
		if err != nil {
			logger.Error("erro ao conectar ao Redis para rate limiting, middleware desabilitado", zap.Error(err))
		} else {
			limiter = ratelimit.NewRedisLimiter(redisClient, logger)
		}
	}

	// Serviços
	codec := auth.NewCodec()
	userService := user.NewService(userRepo, codec, appCache, logger, cfg.Auth.HashPasswords)
	fornecedorService := fornecedor.NewService(fornecedorRepo, appCache, logger)
	agendamentoService := agendamento.NewService(agendamentoRepo, appCache, logger)
	funcionarioService := funcionario.NewService(funcionarioRepo, logger)

	// Middlewares
	middlewares := middleware.NewMiddleware(logger, cfg.Tracing.ServiceName, limiter, apiMetrics, 100, time.Minute)
	middlewares.SetMetricsMiddleware(middleware.NewMetricsMiddleware(apiMetrics, logger))

	// Handlers
	userHandler := handlers.NewUserHandler(userService, logger)
	userHandler.SetMetrics(apiMetrics)
	agendamentoHandler := handlers.NewAgendamentoHandler(agendamentoService, logger)
	agendamentoHandler.SetMetrics(apiMetrics)

	var storageChecker handlers.StorageChecker
	if db != nil {
		storageChecker = db
	}
	healthChecker := handlers.NewHealthChecker(storageChecker, appCache, logger)

	return &App{
		Logger:             logger,
		Config:             cfg,
		DB:                 db,
		Cache:              appCache,
		Middleware:         middlewares,
		APIMetrics:         apiMetrics,
		userHandler:        userHandler,
		fornecedorHandler:  handlers.NewFornecedorHandler(fornecedorService, logger),
		agendamentoHandler: agendamentoHandler,
		funcionarioHandler: handlers.NewFuncionarioHandler(funcionarioService, logger),
		authHandler:        handlers.NewAuthHandler(userService, logger),
		healthChecker:      healthChecker,
		metricsHandler:     middleware.NewMetricsHandler(apiMetrics, logger),
	}, nil
}

// RegisterRoutes registra todas as rotas no router
func (a *App) RegisterRoutes(router *gin.Engine) {
	router.Use(a.Middleware.Recovery())
	router.Use(a.Middleware.Logger())
	router.Use(a.Middleware.SecurityHeaders())
	router.Use(a.Middleware.CORS())
	router.Use(a.Middleware.IgnoreFavicon())

	if a.Config.Tracing.Enabled {
		router.Use(a.Middleware.Tracing())
	}
	if a.Config.Metrics.Enabled {
		router.Use(a.Middleware.Metrics())
		a.metricsHandler.RegisterEndpoint(router)
	}
	if a.Config.Features.RateLimiter {
		router.Use(a.Middleware.IPRateLimit())
	}

	// Usuários
	router.GET("/users", a.userHandler.List)
	router.POST("/users", a.userHandler.Create)
	router.PUT("/users/:id", a.userHandler.Update)
	router.DELETE("/users/:id", a.userHandler.Delete)

	// Fornecedores
	router.GET("/fornecedores", a.fornecedorHandler.List)
	router.POST("/fornecedores", a.fornecedorHandler.Create)
	router.GET("/fornecedores/:id", a.fornecedorHandler.Get)
	router.PUT("/fornecedores/:id", a.fornecedorHandler.Update)
	router.DELETE("/fornecedores/:id", a.fornecedorHandler.Delete)

	// Agendamentos
	router.GET("/agendamentos", a.agendamentoHandler.List)
	router.POST("/agendamentos", a.agendamentoHandler.Create)
	router.PUT("/agendamentos/:id", a.agendamentoHandler.Update)
	router.DELETE("/agendamentos/:id", a.agendamentoHandler.Delete)

	// Funcionários
	router.GET("/funcionarios", a.funcionarioHandler.List)
	router.POST("/funcionarios", a.funcionarioHandler.Create)

	// Autenticação
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/validate", a.authHandler.Validate)
	}

	// Health checks
	if a.Config.Features.HealthCheck {
		router.GET("/health", a.healthChecker.LivenessCheck)
		router.GET("/health/liveness", a.healthChecker.LivenessCheck)
		router.GET("/health/readiness", a.healthChecker.ReadinessCheck)
		router.GET("/health/detailed", a.healthChecker.DetailedHealth)
	}
}

// Close libera os recursos da aplicação
func (a *App) Close() error {
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}

// gormLogLevel converte o nível de log textual para o nível do GORM
func gormLogLevel(level string) gormlogger.LogLevel {
	switch level {
	case "silent":
		return gormlogger.Silent
	case "error":
		return gormlogger.Error
	case "info":
		return gormlogger.Info
	default:
		return gormlogger.Warn
	}
}
