package bootstrap

import (
	"context"

	"github.com/MRevitt/BobsUsedBooks/internal/bookstore"
	"github.com/MRevitt/BobsUsedBooks/pkg/config"
	"github.com/MRevitt/BobsUsedBooks/pkg/db"
	"github.com/MRevitt/BobsUsedBooks/pkg/logger"
	"github.com/MRevitt/BobsUsedBooks/pkg/metrics"
	"github.com/MRevitt/BobsUsedBooks/pkg/migrate"
	"github.com/MRevitt/BobsUsedBooks/pkg/secrets"
)

// Run executes the startup sequence once, strictly in order: resolve the
// connection string, open the connection, ensure the schema exists, apply the
// reference-data seed, and publish the data-access handle.
//
// Resolution failures short of an unusable empty connection string are logged
// and deferred to the first real query: the handle is still published and the
// eager schema/seed steps are skipped, since running them against broken
// credentials would misreport the failure as a schema error. Genuine schema
// failures are fatal and abort startup.
func Run(ctx context.Context, cfg *config.Config, logg *logger.Logger, boot *metrics.BootstrapMetrics) (*bookstore.Store, error) {
	resolver := secrets.NewResolver(
		secrets.NewHTTPStore(cfg.SecretStore.BaseURL, cfg.SecretStore.Timeout),
		logg,
	)

	resolution := db.ResolveDSN(ctx, cfg, resolver, logg)
	boot.ObserveResolution(string(resolution.Source), resolution.Err == nil)

	client, err := db.New(ctx, cfg.DB, db.Options{
		DSN:        resolution.DSN,
		UseSQLite:  cfg.FeatureFlags.UseSQLite,
		SQLitePath: cfg.FeatureFlags.SQLitePath,
	}, logg)
	if err != nil {
		return nil, err
	}

	if resolution.Err != nil {
		// absorbed: a bad credential surfaces at the first query, not here
		logg.Warn(logg.WithResolutionStep(ctx, string(resolution.Source)),
			"connection string resolution degraded; deferring failure to first query")
		return bookstore.NewStore(client), nil
	}

	if err := migrate.EnsureSchema(ctx, cfg, logg, client); err != nil {
		logg.Error(ctx, "schema creation failed; aborting startup", err)
		_ = client.Close()
		return nil, err
	}

	if err := boot.TimeSeed(func() error {
		return client.SeedReferenceData(ctx, logg)
	}); err != nil {
		_ = client.Close()
		return nil, err
	}

	return bookstore.NewStore(client), nil
}
