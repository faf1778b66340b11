package db

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MRevitt/BobsUsedBooks/pkg/config"
	"github.com/MRevitt/BobsUsedBooks/pkg/env"
	apperrors "github.com/MRevitt/BobsUsedBooks/pkg/errors"
	"github.com/MRevitt/BobsUsedBooks/pkg/logger"
	"github.com/MRevitt/BobsUsedBooks/pkg/secrets"
)

// Source identifies which step of the resolution chain produced the DSN.
type Source string

const (
	SourceConfig      Source = "config"
	SourceConfigEnv   Source = "config+env"
	SourceSecretStore Source = "secret-store"
	SourceNone        Source = "none"
)

// Resolution is the outcome of the connection-string resolution chain. Err
// carries any absorbed failure; a Resolution with a non-nil Err may still
// hold a partial DSN, which will fail at connect time rather than here.
type Resolution struct {
	DSN    string
	Source Source
	Err    error
}

// Usable reports whether the resolution produced anything worth connecting with.
func (r Resolution) Usable() bool {
	return r.DSN != ""
}

// CredentialResolver is the secret-store surface consumed by the chain.
type CredentialResolver interface {
	Resolve(ctx context.Context, secretID string) (*secrets.Credentials, error)
}

// ResolveDSN runs the resolution chain exactly once, in order:
//
//  1. A configured connection string carrying the {DB_PASSWORD} placeholder
//     has the password substituted from the environment. When the variable is
//     absent the placeholder is left in place and the failure recorded; the
//     connect attempt will then fail at first use rather than here.
//  2. A configured connection string without the placeholder is used verbatim.
//  3. Otherwise the secret store is consulted with the configured identifier
//     and a DSN is assembled from the returned credentials plus the fixed
//     database name.
//
// The chain never panics or returns a hard error; failures are logged and
// reported through Resolution.Err.
func ResolveDSN(ctx context.Context, cfg *config.Config, credentials CredentialResolver, logg *logger.Logger) Resolution {
	if cs := cfg.DB.ConnectionString; cs != "" {
		if strings.Contains(cs, config.PasswordPlaceholder) {
			ctx := logg.WithResolutionStep(ctx, string(SourceConfigEnv))
			password, ok := env.Lookup(config.EnvDBPassword)
			if !ok {
				err := apperrors.New(apperrors.CodeEnvSubstitution,
					fmt.Sprintf("%s is not set; password placeholder left unresolved", config.EnvDBPassword))
				logg.Error(ctx, "connection string password substitution failed", err)
				return Resolution{DSN: cs, Source: SourceConfigEnv, Err: err}
			}
			logg.Info(ctx, "using configured connection string with substituted password")
			return Resolution{
				DSN:    strings.ReplaceAll(cs, config.PasswordPlaceholder, password),
				Source: SourceConfigEnv,
			}
		}

		logg.Info(logg.WithResolutionStep(ctx, string(SourceConfig)), "using configured connection string")
		return Resolution{DSN: cs, Source: SourceConfig}
	}

	ctx = logg.WithResolutionStep(ctx, string(SourceSecretStore))

	creds, err := credentials.Resolve(ctx, cfg.DB.SecretID)
	if err != nil {
		// already logged by the secret resolver; absorbed, not raised
		return Resolution{Source: SourceNone, Err: err}
	}

	return Resolution{
		DSN:    buildDSN(creds, cfg.DB),
		Source: SourceSecretStore,
	}
}

func buildDSN(creds *secrets.Credentials, cfg config.DBConfig) string {
	u := &url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(creds.Username, creds.Password),
		Host:   fmt.Sprintf("%s:%d", creds.Host, creds.Port),
		Path:   cfg.Name,
	}
	if cfg.SSLMode != "" {
		q := u.Query()
		q.Set("sslmode", cfg.SSLMode)
		u.RawQuery = q.Encode()
	}
	return u.String()
}
