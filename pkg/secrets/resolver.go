package secrets

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/MRevitt/BobsUsedBooks/pkg/errors"
	"github.com/MRevitt/BobsUsedBooks/pkg/logger"
)

// Credentials is the structured payload held by the secret store for a
// database secret. JSON field matching is case-insensitive, so payloads
// written as {"Host": ...} or {"HOST": ...} parse identically.
type Credentials struct {
	Host     string `json:"host" validate:"required"`
	Port     Port   `json:"port" validate:"required"`
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Port accepts both JSON numbers and numeric strings; secret stores emit both.
type Port int

func (p *Port) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if len(raw) >= 2 && raw[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		raw = strings.TrimSpace(s)
	}
	if raw == "" || raw == "null" {
		*p = 0
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("port %q is not numeric", raw)
	}
	*p = Port(n)
	return nil
}

// Resolver fetches and parses database credentials from a Store.
type Resolver struct {
	store    Store
	logg     *logger.Logger
	validate *validator.Validate
}

func NewResolver(store Store, logg *logger.Logger) *Resolver {
	return &Resolver{
		store:    store,
		logg:     logg,
		validate: validator.New(),
	}
}

// Resolve fetches the secret once and parses it into Credentials. Failures
// come back as typed errors (SECRET_NOT_FOUND, SECRET_PARSE_ERROR) and are
// logged here; callers decide whether to absorb them.
func (r *Resolver) Resolve(ctx context.Context, secretID string) (*Credentials, error) {
	if secretID == "" {
		err := apperrors.New(apperrors.CodeSecretNotFound, "secret identifier is empty")
		r.logg.Error(ctx, "secret resolution skipped", err)
		return nil, err
	}

	ctx = r.logg.WithField(ctx, "secret_id", secretID)

	payload, err := r.store.GetSecretValue(ctx, secretID)
	if err != nil {
		typed := apperrors.Wrap(apperrors.CodeSecretNotFound, err, "fetching secret")
		r.logg.Error(ctx, "failed to read secret from store", typed)
		return nil, typed
	}

	var creds Credentials
	if err := json.Unmarshal(payload, &creds); err != nil {
		typed := apperrors.Wrap(apperrors.CodeSecretParse, err, "parsing secret payload")
		r.logg.Error(ctx, "secret payload is not well-formed", typed)
		return nil, typed
	}

	if err := r.validate.Struct(creds); err != nil {
		typed := apperrors.Wrap(apperrors.CodeSecretParse, err, "secret payload is missing required fields")
		r.logg.Error(ctx, "secret payload is incomplete", typed)
		return nil, typed
	}

	r.logg.Info(ctx, "database credentials resolved from secret store")
	return &creds, nil
}
