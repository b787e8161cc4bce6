// Package seeds loads initial catalog data (users, areas, request types)
// from a YAML fixture.
package seeds

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"miniticker/internal/domain/area"
	"miniticker/internal/domain/requesttype"
	"miniticker/internal/domain/user"
	uservo "miniticker/internal/domain/user/valueobjects"
	apperrors "miniticker/internal/shared/errors"
	"miniticker/internal/shared/logger"
)

type seedFile struct {
	Users []struct {
		Name     string `yaml:"name"`
		Email    string `yaml:"email"`
		Password string `yaml:"password"`
		Role     string `yaml:"role"`
	} `yaml:"users"`
	Areas []struct {
		Name   string `yaml:"name"`
		Prefix string `yaml:"prefix"`
		Types  []string `yaml:"request_types"`
	} `yaml:"areas"`
}

type passwordHasher interface {
	Hash(password string) (string, error)
}

type Seeder struct {
	users  user.Repository
	areas  area.Repository
	types  requesttype.Repository
	hasher passwordHasher
	logger logger.Interface
}

func NewSeeder(
	users user.Repository,
	areas area.Repository,
	types requesttype.Repository,
	hasher passwordHasher,
	log logger.Interface,
) *Seeder {
	return &Seeder{
		users:  users,
		areas:  areas,
		types:  types,
		hasher: hasher,
		logger: log,
	}
}

// Run loads the fixture and creates every user, area and request type that
// does not already exist. Existing rows are skipped, so reseeding is safe.
func (s *Seeder) Run(ctx context.Context, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read seed file: %w", err)
	}

	var file seedFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return fmt.Errorf("failed to parse seed file: %w", err)
	}

	for _, u := range file.Users {
		if err := s.seedUser(ctx, u.Name, u.Email, u.Password, u.Role); err != nil {
			return err
		}
	}

	for _, a := range file.Areas {
		if err := s.seedArea(ctx, a.Name, a.Prefix, a.Types); err != nil {
			return err
		}
	}

	return nil
}

func (s *Seeder) seedUser(ctx context.Context, name, email, password, roleName string) error {
	role, err := uservo.NewRole(roleName)
	if err != nil {
		return fmt.Errorf("seed user %s: %w", email, err)
	}
	emailVO, err := uservo.NewEmail(email)
	if err != nil {
		return fmt.Errorf("seed user %s: %w", email, err)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("seed user %s: %w", email, err)
	}

	u, err := user.NewUser(name, emailVO, hash, role)
	if err != nil {
		return fmt.Errorf("seed user %s: %w", email, err)
	}

	if err := s.users.Save(ctx, u); err != nil {
		if apperrors.IsConflictError(err) {
			s.logger.Debugw("seed user already exists", "email", email)
			return nil
		}
		return err
	}

	s.logger.Infow("seeded user", "email", email, "role", roleName)
	return nil
}

func (s *Seeder) seedArea(ctx context.Context, name, prefix string, typeNames []string) error {
	a, err := area.NewArea(name, prefix)
	if err != nil {
		return fmt.Errorf("seed area %s: %w", name, err)
	}

	if err := s.areas.Save(ctx, a); err != nil {
		if !apperrors.IsConflictError(err) {
			return err
		}
		s.logger.Debugw("seed area already exists", "name", name)
		existing, err := s.findAreaByName(ctx, name)
		if err != nil {
			return err
		}
		a = existing
	} else {
		s.logger.Infow("seeded area", "name", name, "prefix", a.Prefix())
	}

	for _, tn := range typeNames {
		rt, err := requesttype.NewRequestType(tn, a.ID())
		if err != nil {
			return fmt.Errorf("seed request type %s: %w", tn, err)
		}
		if err := s.types.Save(ctx, rt); err != nil {
			if apperrors.IsConflictError(err) {
				continue
			}
			return err
		}
		s.logger.Infow("seeded request type", "name", tn, "area", name)
	}

	return nil
}

func (s *Seeder) findAreaByName(ctx context.Context, name string) (*area.Area, error) {
	all, err := s.areas.List(ctx, true)
	if err != nil {
		return nil, err
	}
	for _, a := range all {
		if a.Name() == name {
			return a, nil
		}
	}
	return nil, fmt.Errorf("area %s not found after conflict", name)
}
