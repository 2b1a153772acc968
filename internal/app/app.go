package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/okazmarkt/core/internal/catalog/registry"
	"github.com/okazmarkt/core/internal/catalog/schema"
	"github.com/okazmarkt/core/internal/catalog/vehicleref"
	"github.com/okazmarkt/core/internal/catalog/validator"
	"github.com/okazmarkt/core/internal/config"
	"github.com/okazmarkt/core/internal/database"
	"github.com/okazmarkt/core/internal/middleware"
	pkgcron "github.com/okazmarkt/core/internal/pkg/cron"
	jwtpkg "github.com/okazmarkt/core/internal/pkg/jwt"
	pkgredis "github.com/okazmarkt/core/internal/pkg/redis"
)

// App holds all application dependencies.
type App struct {
	cfg    *config.AppConfig
	router *gin.Engine
	db     *gorm.DB
	logger *zap.Logger
	redis  *pkgredis.Client
	cancel context.CancelFunc
	sched  *pkgcron.Scheduler
}

// New initializes the application: config → DB → Redis → catalog snapshots →
// routes.
func New(logger *zap.Logger, configPath string) (*App, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	jwtpkg.SetSecret(cfg.JWTSecret)

	db, err := database.Connect(cfg, true)
	if err != nil {
		return nil, fmt.Errorf("database: %w", err)
	}
	if err := seedCategories(db); err != nil {
		return nil, fmt.Errorf("seed categories: %w", err)
	}

	rc, err := pkgredis.Connect(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("redis: %w", err)
	}

	reg, store, vehicles, err := loadCatalog(cfg)
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	engine, err := validator.New(reg, vehicles)
	if err != nil {
		return nil, fmt.Errorf("validator: %w", err)
	}
	store.LogLint(reg, logger.Named("catalog-lint"))

	if cfg.IsDev() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.Use(gin.Recovery())
	router.Use(middleware.Logger(logger))
	router.Use(cors.New(corsConfig(cfg)))

	ctx, cancel := context.WithCancel(context.Background())
	sched := pkgcron.New()
	registerCronJobs(sched, db, cfg, store, reg, logger)
	go sched.Start(ctx)

	app := &App{cfg: cfg, router: router, db: db, logger: logger, redis: rc, cancel: cancel, sched: sched}
	app.registerRoutes(rc, reg, store, vehicles, engine)
	return app, nil
}

// loadCatalog builds the registry, schema store and vehicle snapshot from the
// built-in seeds plus any configured overlay files.
func loadCatalog(cfg *config.AppConfig) (*registry.Registry, *schema.Store, *vehicleref.Snapshot, error) {
	var (
		reg *registry.Registry
		err error
	)
	if cfg.Catalog.FieldsFile != "" {
		reg, err = registry.LoadFile(cfg.Catalog.FieldsFile)
	} else {
		reg, err = registry.Default()
	}
	if err != nil {
		return nil, nil, nil, err
	}

	var store *schema.Store
	if cfg.Catalog.SchemasFile != "" {
		store, err = schema.LoadFile(cfg.Catalog.SchemasFile)
	} else {
		store, err = schema.DefaultStore()
	}
	if err != nil {
		return nil, nil, nil, err
	}

	vehicles := vehicleref.Default()
	if cfg.Catalog.VehiclesFile != "" {
		vehicles, err = vehicleref.LoadFile(cfg.Catalog.VehiclesFile)
		if err != nil {
			return nil, nil, nil, err
		}
	}
	return reg, store, vehicles, nil
}

func corsConfig(cfg *config.AppConfig) cors.Config {
	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "x-okaz-cache"},
		AllowCredentials: true,
	}
	if len(cfg.AllowedOrigins) > 0 && !cfg.IsDev() {
		patterns := cfg.AllowedOrigins
		corsCfg.AllowOriginFunc = func(origin string) bool {
			host := extractOriginHost(origin)
			for _, pattern := range patterns {
				if matchOriginPattern(pattern, host) {
					return true
				}
			}
			return false
		}
	} else {
		corsCfg.AllowOriginFunc = func(origin string) bool { return true }
	}
	return corsCfg
}

// Addr returns the listen address.
func (a *App) Addr() string { return fmt.Sprintf(":%d", a.cfg.Port) }

// Router returns the HTTP handler.
func (a *App) Router() http.Handler { return a.router }

// Shutdown stops background jobs and releases connections.
func (a *App) Shutdown() {
	a.cancel()
	if a.redis != nil {
		_ = a.redis.Close()
	}
}
