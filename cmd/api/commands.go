package main

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ryalynne/hrms/internal/bootstrap"
	"github.com/ryalynne/hrms/internal/config"
	"github.com/ryalynne/hrms/internal/db"
	"github.com/ryalynne/hrms/internal/server"
)

type rootOptions struct {
	configPath string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "hrms",
		Short:         "HR management API over employees, job titles and positions",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, opts)
		},
	}
	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", bootstrap.DefaultConfigPath, "path to the YAML config file")

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Start the HTTP API",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return runServe(cmd, opts)
			},
		},
		&cobra.Command{
			Use:   "migrate",
			Short: "Apply pending database migrations and exit",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withDatabase(cmd, opts, func(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) error {
					applied, err := bootstrap.RunMigrations(cmd.Context(), cfg, database, lgr)
					if err != nil {
						return err
					}
					lgr.Info().Int("applied", applied).Msg("Migrations finished")
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "seed",
			Short: "Create default job titles, positions and the configured admin user",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withDatabase(cmd, opts, func(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) error {
					return bootstrap.RunSeed(cmd.Context(), cfg, database, lgr)
				})
			},
		},
	)

	return root
}

func runServe(cmd *cobra.Command, opts *rootOptions) error {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(opts.configPath)
	if err != nil {
		return err
	}

	srv, err := server.NewServer(cmd.Context(), cfg, lgr)
	if err != nil {
		return err
	}

	if err := srv.Run(cmd.Context()); err != nil {
		return err
	}

	lgr.Info().Msg("Application finished gracefully.")
	return nil
}

// withDatabase opens a pool for a one-shot command and closes it afterwards.
func withDatabase(cmd *cobra.Command, opts *rootOptions, fn func(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) error) error {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(opts.configPath)
	if err != nil {
		return err
	}

	database, err := db.NewPostgresDB(cmd.Context(), cfg, lgr)
	if err != nil {
		return err
	}
	defer database.Close()

	return fn(cfg, database, lgr)
}
