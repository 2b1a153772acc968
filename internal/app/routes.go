package app

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/okazmarkt/core/internal/catalog/codec"
	"github.com/okazmarkt/core/internal/catalog/registry"
	"github.com/okazmarkt/core/internal/catalog/schema"
	"github.com/okazmarkt/core/internal/catalog/validator"
	"github.com/okazmarkt/core/internal/catalog/vehicleref"
	"github.com/okazmarkt/core/internal/middleware"
	catalogmod "github.com/okazmarkt/core/internal/modules/catalog"
	"github.com/okazmarkt/core/internal/modules/listing"
	"github.com/okazmarkt/core/internal/modules/media"
	pkgredis "github.com/okazmarkt/core/internal/pkg/redis"
	"github.com/okazmarkt/core/internal/pkg/response"
)

func (a *App) registerRoutes(rc *pkgredis.Client, reg *registry.Registry, store *schema.Store, vehicles *vehicleref.Snapshot, engine *validator.Engine) {
	rdb := rc.Raw()

	v1 := a.router.Group("/api/v1")
	v1.Use(middleware.OptionalAuth())
	v1.Use(middleware.RateLimit(rdb))
	v1.Use(middleware.Idempotence(rdb))
	v1.Use(middleware.HTTPCache(rdb, middleware.CacheOptions{
		TTL:       30 * time.Second,
		SkipPaths: []string{"/api/v1/ping", "/api/v1/jobs*"},
	}))

	authMW := middleware.Auth()

	v1.GET("/ping", func(c *gin.Context) {
		response.OK(c, gin.H{
			"status":          "ok",
			"vehicle_catalog": vehicles.Version(),
		})
	})

	v1.DELETE("/cache", authMW, func(c *gin.Context) {
		purged, err := middleware.PurgeHTTPCache(c.Request.Context(), rdb)
		if err != nil {
			response.InternalError(c, err)
			return
		}
		response.OK(c, gin.H{"purged": purged})
	})

	jobs := v1.Group("/jobs", authMW)
	jobs.GET("", func(c *gin.Context) {
		response.OK(c, a.sched.List())
	})
	jobs.GET("/:name", func(c *gin.Context) {
		info, err := a.sched.Info(c.Param("name"))
		if err != nil {
			response.NotFound(c)
			return
		}
		response.OK(c, info)
	})
	jobs.POST("/:name/run", func(c *gin.Context) {
		// the job outlives the request, so it must not inherit its context
		if err := a.sched.Trigger(context.Background(), c.Param("name")); err != nil {
			response.NotFound(c)
			return
		}
		response.OK(c, gin.H{"queued": true})
	})

	catalogSvc := catalogmod.NewService(a.db, store, reg)
	catalogmod.NewHandler(catalogSvc).RegisterRoutes(v1)

	var counter media.Counter
	if a.cfg.MediaServiceURL != "" {
		counter = media.NewRemoteCounter(a.cfg.MediaServiceURL)
	} else {
		counter = media.NewDBCounter(a.db)
	}
	mediaSvc := media.NewService(a.db)
	media.NewHandler(mediaSvc).RegisterRoutes(v1, authMW)

	listingSvc := listing.NewService(a.db, engine, codec.New(reg), counter, a.logger.Named("listing"))
	listing.NewHandler(listingSvc).RegisterRoutes(v1, authMW)
}
