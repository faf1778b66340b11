package migrate

import (
	"context"

	"github.com/MRevitt/BobsUsedBooks/pkg/config"
	"github.com/MRevitt/BobsUsedBooks/pkg/db"
	apperrors "github.com/MRevitt/BobsUsedBooks/pkg/errors"
	"github.com/MRevitt/BobsUsedBooks/pkg/logger"
)

// EnsureSchema brings the target schema up to date, create-if-absent and
// idempotent. The embedded engine (and dev auto-migrate) builds the schema
// from the model mapping; Postgres runs the goose migrations. Any failure
// here is fatal to startup.
func EnsureSchema(ctx context.Context, cfg *config.Config, logg *logger.Logger, client *db.Client) error {
	if client.IsSQLite() || (cfg.App.IsDev() && cfg.FeatureFlags.AutoMigrate) {
		logg.Info(ctx, "applying schema from model mapping")
		if err := client.AutoMigrate(ctx); err != nil {
			return err
		}
		logg.Info(ctx, "schema up to date")
		return nil
	}

	sqlDB, err := client.DB().DB()
	if err != nil {
		return apperrors.Wrap(apperrors.CodeSchemaCreation, err, "extracting sql.DB")
	}

	ctx = logg.WithField(ctx, "dir", DefaultDir)
	logg.Info(ctx, "running schema migrations")

	if err := Run(ctx, sqlDB, DefaultDir, "up"); err != nil {
		return apperrors.Wrap(apperrors.CodeSchemaCreation, err, "running goose up")
	}

	logg.Info(ctx, "schema migrations completed")
	return nil
}
