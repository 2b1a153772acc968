package app

import (
	"context"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/okazmarkt/core/internal/catalog/registry"
	"github.com/okazmarkt/core/internal/catalog/schema"
	"github.com/okazmarkt/core/internal/config"
	"github.com/okazmarkt/core/internal/models"
	pkgcron "github.com/okazmarkt/core/internal/pkg/cron"
)

// registerCronJobs registers all scheduled background jobs.
func registerCronJobs(sched *pkgcron.Scheduler, db *gorm.DB, cfg *config.AppConfig, store *schema.Store, reg *registry.Registry, logger *zap.Logger) {
	cronLogger := logger.Named("cron")

	sched.Register(pkgcron.Job{
		Name:        "catalog_lint",
		Description: "cross-check category schemas against the field registry",
		Every:       cfg.Catalog.LintInterval,
		Run: func(ctx context.Context) error {
			n := store.LogLint(reg, cronLogger)
			if n > 0 {
				cronLogger.Warn("catalog lint finished", zap.Int("issues", n))
			}
			return nil
		},
	})

	sched.Register(pkgcron.Job{
		Name:        "cleanup_audit_logs",
		Description: "drop audit log entries older than one year",
		Every:       24 * time.Hour,
		Run: func(ctx context.Context) error {
			cutoff := time.Now().AddDate(-1, 0, 0)
			result := db.WithContext(ctx).
				Where("created_at < ?", cutoff).
				Delete(&models.AuditLogModel{})
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected > 0 {
				cronLogger.Info("audit logs pruned", zap.Int64("deleted", result.RowsAffected))
			}
			return nil
		},
	})
}
