// Package seed creates the initial ADMIN accounts from a YAML file.
package seed

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/springcrm/crm-api/internal/core/domain"
	"github.com/springcrm/crm-api/internal/core/ports"
)

// accountEntry carries the same rules the login endpoint applies, so every
// seeded admin can sign in.
type accountEntry struct {
	Email    string `yaml:"email"    validate:"required,email,max=50"`
	Password string `yaml:"password" validate:"required,min=6,max=20,password"`
}

type accountsFile struct {
	Accounts []accountEntry `yaml:"accounts"`
}

// Result reports what a seeding run did.
type Result struct {
	Created []string
	Skipped []string
	// Invalid lists entries whose credentials fail validation, by email.
	Invalid []string
}

// Seeder creates ADMIN accounts that do not exist yet.
type Seeder struct {
	repo     ports.AccountRepository
	verifier ports.CredentialVerifier
	validate *validator.Validate
	log      zerolog.Logger
}

func NewSeeder(repo ports.AccountRepository, verifier ports.CredentialVerifier, log zerolog.Logger) *Seeder {
	v := validator.New()
	_ = v.RegisterValidation("password", func(fl validator.FieldLevel) bool {
		return domain.PasswordCharset.MatchString(fl.Field().String())
	})
	return &Seeder{repo: repo, verifier: verifier, validate: v, log: log}
}

// FromFile reads path and seeds every account listed in it.
func (s *Seeder) FromFile(ctx context.Context, path string) (Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Result{}, fmt.Errorf("read seed file: %w", err)
	}
	return s.FromYAML(ctx, data)
}

// FromYAML seeds the accounts in data. Entries that fail validation are
// logged and reported in Result.Invalid; existing emails are left untouched.
func (s *Seeder) FromYAML(ctx context.Context, data []byte) (Result, error) {
	var f accountsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Result{}, fmt.Errorf("parse seed file: %w", err)
	}

	var res Result
	for _, a := range f.Accounts {
		if err := s.validate.Struct(a); err != nil {
			s.log.Warn().Err(err).Str("email", a.Email).Msg("seed entry rejected")
			res.Invalid = append(res.Invalid, a.Email)
			continue
		}

		if _, err := s.repo.FindByEmail(ctx, a.Email); err == nil {
			res.Skipped = append(res.Skipped, a.Email)
			continue
		} else if !errors.Is(err, domain.ErrAccountNotFound) {
			return res, fmt.Errorf("seed %s: %w", a.Email, err)
		}

		hash, err := s.verifier.Hash(a.Password)
		if err != nil {
			return res, fmt.Errorf("seed %s: hash password: %w", a.Email, err)
		}

		now := time.Now().UTC()
		account := &domain.Account{
			ID:           uuid.NewString(),
			Email:        a.Email,
			PasswordHash: hash,
			Active:       true,
			Role:         domain.RoleAdmin,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := s.repo.Create(ctx, account); err != nil {
			if errors.Is(err, domain.ErrEmailAlreadyInUse) {
				res.Skipped = append(res.Skipped, a.Email)
				continue
			}
			return res, fmt.Errorf("seed %s: %w", a.Email, err)
		}

		s.log.Info().Str("account_id", account.ID).Msg("admin account seeded")
		res.Created = append(res.Created, a.Email)
	}
	return res, nil
}
