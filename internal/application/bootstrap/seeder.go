package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/g-inventory/internal/domain/entity"
	"github.com/jhoicas/g-inventory/internal/domain/repository"
)

// Usuarios creados en una base vacía.
const (
	AdminUsername   = "gerente"
	LimitedUsername = "limitado"
)

// Options valores configurables de la siembra.
type Options struct {
	AdminPassword   string
	LimitedPassword string
	AlertEmail      string
}

// Seeder siembra permisos, configuraciones y usuarios por defecto.
type Seeder struct {
	users       repository.UserRepository
	permissions repository.PermissionRepository
	configs     repository.ConfigurationRepository
	opts        Options
	log         zerolog.Logger
}

// NewSeeder construye el sembrador.
func NewSeeder(users repository.UserRepository, permissions repository.PermissionRepository, configs repository.ConfigurationRepository, opts Options, log zerolog.Logger) *Seeder {
	return &Seeder{users: users, permissions: permissions, configs: configs, opts: opts, log: log}
}

// Run solo actúa si no hay usuarios. Devuelve true si sembró.
// Permisos y configuraciones existentes (por nombre) se reutilizan.
func (s *Seeder) Run(ctx context.Context) (bool, error) {
	n, err := s.users.Count(ctx)
	if err != nil {
		return false, fmt.Errorf("seed: contar usuarios: %w", err)
	}
	if n > 0 {
		return false, nil
	}
	now := time.Now()

	ids := make(map[string]string, len(entity.PermissionCatalog()))
	for _, name := range entity.PermissionCatalog() {
		p, err := s.permissions.GetByDescription(ctx, name)
		if err != nil {
			return false, fmt.Errorf("seed: permiso %s: %w", name, err)
		}
		if p == nil {
			p = &entity.Permission{ID: uuid.New().String(), Description: name}
			p.MarkCreated(now)
			if err := s.permissions.Create(ctx, p); err != nil {
				return false, fmt.Errorf("seed: crear permiso %s: %w", name, err)
			}
		}
		ids[name] = p.ID
	}

	configs := []struct{ name, data string }{
		{entity.ConfigCompanyName, "G Inventory"},
		{entity.ConfigCompanyLogo, ""},
		{entity.ConfigAlertEmail, s.opts.AlertEmail},
	}
	for _, c := range configs {
		existing, err := s.configs.GetByName(ctx, c.name)
		if err != nil {
			return false, fmt.Errorf("seed: configuración %s: %w", c.name, err)
		}
		if existing != nil {
			continue
		}
		cfg := &entity.Configuration{ID: uuid.New().String(), Name: c.name, Data: c.data}
		cfg.MarkCreated(now)
		if err := s.configs.Create(ctx, cfg); err != nil {
			return false, fmt.Errorf("seed: crear configuración %s: %w", c.name, err)
		}
	}

	all := make([]string, 0, len(ids))
	for _, name := range entity.PermissionCatalog() {
		all = append(all, ids[name])
	}
	limited := []string{
		ids[entity.PermViewUsers],
		ids[entity.PermViewProducts],
		ids[entity.PermViewInputs],
		ids[entity.PermViewOutputs],
	}
	users := []struct {
		username, password, name, role string
		perms                          []string
	}{
		{AdminUsername, s.opts.AdminPassword, "Default 1234", "Gerente", all},
		{LimitedUsername, s.opts.LimitedPassword, "Limitado", "Estagiario", limited},
	}
	for _, u := range users {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			return false, fmt.Errorf("seed: hash %s: %w", u.username, err)
		}
		user := &entity.User{
			ID:            uuid.New().String(),
			Name:          u.name,
			Role:          u.role,
			Username:      u.username,
			PasswordHash:  string(hash),
			Status:        entity.UserStatusActive,
			PermissionIDs: u.perms,
		}
		user.MarkCreated(now)
		if err := s.users.Create(ctx, user); err != nil {
			return false, fmt.Errorf("seed: crear usuario %s: %w", u.username, err)
		}
	}

	s.log.Info().Int("permissions", len(ids)).Msg("base vacía sembrada con usuarios por defecto")
	return true, nil
}
