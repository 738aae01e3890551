package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/chayal-connect/matchmaker/cmd/cli/commands"
	"github.com/chayal-connect/matchmaker/internal/config"
	"github.com/chayal-connect/matchmaker/pkg/geo"
	"github.com/chayal-connect/matchmaker/pkg/lang"
	"github.com/chayal-connect/matchmaker/pkg/postgres"
	"github.com/chayal-connect/matchmaker/pkg/utils/logging"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var env string
	app := &commands.AppContext{}

	rootCmd := &cobra.Command{
		Use:   "matchmaker",
		Short: "Match volunteer students with lone soldiers",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setup(cmd.Context(), app, env)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			teardown(app)
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&env, "env", "dev", "Environment to run against (dev, prod)")

	rootCmd.AddCommand(
		commands.ImportStudentsCmd(app),
		commands.ImportSoldiersCmd(app),
		commands.ListStudentsCmd(app),
		commands.ListSoldiersCmd(app),
		commands.RemoveStudentCmd(app),
		commands.RemoveSoldierCmd(app),
		commands.RunMatchingCmd(app),
		commands.ViewSummaryCmd(app),
		commands.ApproveMatchCmd(app),
		commands.RejectMatchCmd(app),
		commands.ExportMatchesCmd(app),
		commands.PublishMatchesCmd(app),
	)

	return rootCmd.Execute()
}

// setup wires the shared dependencies into the app context
func setup(ctx context.Context, app *commands.AppContext, env string) error {
	logger, err := logging.InitLogger(env)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	cfg, err := config.Load(env)
	if err != nil {
		return err
	}

	database, err := postgres.NewDB(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := database.RunMigrations(ctx); err != nil {
		database.Close()
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	resolver, err := buildGeoResolver(ctx, cfg)
	if err != nil {
		database.Close()
		return err
	}

	logger.Debug("Application context ready", zap.String("env", env))

	app.Cfg = cfg
	app.Database = database
	app.Geo = resolver
	app.Languages = lang.NewRegistry()
	app.Logger = logger
	app.Ctx = ctx
	app.Env = env
	return nil
}

// buildGeoResolver loads the gazetteer, honoring the config override,
// and attaches the online geocoder fallback when enabled
func buildGeoResolver(ctx context.Context, cfg *config.Config) (*geo.Resolver, error) {
	var resolver *geo.Resolver
	var err error

	if cfg.GazetteerPath != "" {
		resolver, err = geo.NewResolverFromFile(cfg.GazetteerPath)
	} else {
		resolver, err = geo.NewResolver()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load gazetteer: %w", err)
	}

	if cfg.Geocoder.Enabled {
		resolver = resolver.WithGeocoder(geo.NewGeocoder(ctx, cfg.Geocoder.BaseURL))
	}

	return resolver, nil
}

func teardown(app *commands.AppContext) {
	if app.Logger != nil {
		app.Logger.Sync()
	}
	if closer, ok := app.Database.(interface{ Close() }); ok {
		closer.Close()
	}
}
