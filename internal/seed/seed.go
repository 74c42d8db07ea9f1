package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/ryalynne/hrms/internal/app/models"
	"github.com/ryalynne/hrms/internal/app/repositories"
	"github.com/ryalynne/hrms/internal/db"
	"github.com/ryalynne/hrms/internal/pkg/apperrors"
	"github.com/ryalynne/hrms/internal/pkg/auth"
)

// defaultPosition is a position created under a default job title
type defaultPosition struct {
	Name   string
	Salary float64
}

// DefaultJobTitles is the reference data created on an empty database
var DefaultJobTitles = []struct {
	Title     string
	Positions []defaultPosition
}{
	{"Engineering", []defaultPosition{{"Junior Engineer", 30000}, {"Senior Engineer", 60000}}},
	{"Human Resources", []defaultPosition{{"HR Officer", 25000}, {"HR Manager", 45000}}},
	{"Finance", []defaultPosition{{"Accountant", 28000}, {"Finance Manager", 50000}}},
}

// Options selects what Run creates
type Options struct {
	AdminEmail    string
	AdminPassword string
}

// Run creates the default job titles and positions when the job_title table
// is empty, then the admin account when one is configured. Both steps are
// idempotent.
func Run(ctx context.Context, database *db.PostgresDB, users repositories.UserRepository, opts Options, lgr zerolog.Logger) error {
	var finalErr error

	if err := createReferenceData(ctx, database, lgr); err != nil {
		lgr.Error().Err(err).Msg("Error creating default job titles")
		finalErr = errors.Join(finalErr, err)
	}

	if opts.AdminEmail != "" {
		if err := createAdmin(ctx, users, opts, lgr); err != nil {
			lgr.Error().Err(err).Msg("Error creating admin user")
			finalErr = errors.Join(finalErr, err)
		}
	}

	return finalErr
}

func createReferenceData(ctx context.Context, database *db.PostgresDB, lgr zerolog.Logger) error {
	return database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		var count int
		if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM job_title`).Scan(&count); err != nil {
			return fmt.Errorf("failed to count job titles: %w", err)
		}
		if count > 0 {
			lgr.Info().Int("jobTitles", count).Msg("Job titles present, skipping default data")
			return nil
		}

		lgr.Info().Msg("Creating default job titles and positions...")
		for _, jt := range DefaultJobTitles {
			var jobID int64
			if err := tx.QueryRow(ctx,
				`INSERT INTO job_title (job_title) VALUES ($1) RETURNING id`, jt.Title,
			).Scan(&jobID); err != nil {
				return fmt.Errorf("failed to create job title %q: %w", jt.Title, err)
			}

			for _, p := range jt.Positions {
				if _, err := tx.Exec(ctx,
					`INSERT INTO employee_salary (job_id, position, salary) VALUES ($1, $2, $3)`,
					jobID, p.Name, p.Salary,
				); err != nil {
					return fmt.Errorf("failed to create position %q: %w", p.Name, err)
				}
			}
		}
		return nil
	})
}

func createAdmin(ctx context.Context, users repositories.UserRepository, opts Options, lgr zerolog.Logger) error {
	if _, err := users.GetByEmail(ctx, opts.AdminEmail); err == nil {
		lgr.Info().Str("email", opts.AdminEmail).Msg("Admin user already exists")
		return nil
	} else if !errors.Is(err, apperrors.ErrUserNotFound) {
		return err
	}

	hashedPassword, err := auth.HashPassword(opts.AdminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	id, err := users.Create(ctx, &models.User{Email: opts.AdminEmail, Password: hashedPassword})
	if err != nil {
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			return nil
		}
		return err
	}

	lgr.Info().Int64("userID", id).Str("email", opts.AdminEmail).Msg("Admin user created")
	return nil
}
