package commands

import (
	"context"
	"log/slog"
	"os"

	portsrepo "github.com/SscSPs/event_split_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/event_split_app/internal/core/ports/services"
	"github.com/SscSPs/event_split_app/internal/core/services"
	"github.com/SscSPs/event_split_app/internal/middleware"
	"github.com/SscSPs/event_split_app/internal/platform/config"
	"github.com/SscSPs/event_split_app/internal/platform/storage"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "splitctl",
	Short: "Operator tool for the event split service",
	Long: `splitctl reads the same configuration as the server (environment and .env)
and works directly against the configured state store. Use it to inspect balances
and settlements, copy state between backends, or hash the organizer password.`,
	SilenceUsage: true,
}

var cliLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

// openRepos connects to backend, or to the configured backend when backend is empty.
// Tests replace it.
var openRepos = func(ctx context.Context, backend string) (*config.Config, portsrepo.RepositoryProvider, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, portsrepo.RepositoryProvider{}, err
	}
	if backend != "" {
		cfg.StateBackend = backend
	}
	repos, err := storage.Open(ctx, cfg, cliLogger, false)
	return cfg, repos, err
}

func closeRepos(repos portsrepo.RepositoryProvider) {
	if repos.Close != nil {
		if err := repos.Close(context.Background()); err != nil {
			cliLogger.Warn("Error closing state store", slog.String("error", err.Error()))
		}
	}
}

// openContainer loads the full service state from the configured backend.
func openContainer(ctx context.Context) (*portssvc.ServiceContainer, func(), error) {
	cfg, repos, err := openRepos(ctx, "")
	if err != nil {
		return nil, nil, err
	}
	closeFn := func() { closeRepos(repos) }

	container := services.NewServiceContainer(cfg, repos)
	if err := container.State.Load(middleware.WithLogger(ctx, cliLogger)); err != nil {
		closeFn()
		return nil, nil, err
	}
	return container, closeFn, nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}
