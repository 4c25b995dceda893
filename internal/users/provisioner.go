package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"log/slog"

	"github.com/easybank/easybank-backend/internal/shared"
)

// RepositoryPort defines data access methods for provisioning.
type RepositoryPort interface {
	FindByEmail(ctx context.Context, email string) (User, error)
	Create(ctx context.Context, email, name string) (User, error)
}

// ProvisioningMetrics counts user creations. May be nil.
type ProvisioningMetrics interface {
	UserProvisioned()
}

// Provisioner materializes local user records just in time: the first
// authenticated request from an unseen email creates the row, every later
// request reads it back untouched.
type Provisioner struct {
	repo    RepositoryPort
	logger  *slog.Logger
	metrics ProvisioningMetrics
}

// NewProvisioner constructs a Provisioner.
func NewProvisioner(repo RepositoryPort, logger *slog.Logger, metrics ProvisioningMetrics) *Provisioner {
	return &Provisioner{repo: repo, logger: logger, metrics: metrics}
}

// GetOrCreate returns the user for the profile's email, creating it on
// first sight. The found path never writes. When two first-time requests
// race, the email unique constraint decides the winner and the loser
// recovers by re-reading, so the race is never caller-visible.
func (p *Provisioner) GetOrCreate(ctx context.Context, profile Profile) (User, error) {
	user, err := p.repo.FindByEmail(ctx, profile.Email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return User{}, fmt.Errorf("users: lookup by email: %w", err)
	}

	name := displayName(profile)
	created, err := p.repo.Create(ctx, profile.Email, name)
	if err == nil {
		if p.logger != nil {
			p.logger.Info("provisioned new user",
				slog.String("email", profile.Email),
				slog.Int64("id", created.ID),
			)
		}
		if p.metrics != nil {
			p.metrics.UserProvisioned()
		}
		return created, nil
	}
	if !errors.Is(err, shared.ErrDuplicate) {
		return User{}, fmt.Errorf("users: create: %w", err)
	}

	// Lost the create race; the winner's row is authoritative.
	existing, err := p.repo.FindByEmail(ctx, profile.Email)
	if err != nil {
		return User{}, fmt.Errorf("users: re-read after duplicate: %w", err)
	}
	return existing, nil
}

// displayName derives a human-readable name from optional claims, in strict
// priority order: full name, given name, username, email local part.
func displayName(profile Profile) string {
	switch {
	case profile.GivenName != "" && profile.FamilyName != "":
		return profile.GivenName + " " + profile.FamilyName
	case profile.GivenName != "":
		return profile.GivenName
	case profile.PreferredUsername != "":
		return profile.PreferredUsername
	default:
		local, _, _ := strings.Cut(profile.Email, "@")
		return local
	}
}
