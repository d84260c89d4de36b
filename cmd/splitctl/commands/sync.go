package commands

import (
	"fmt"

	portsrepo "github.com/SscSPs/event_split_app/internal/core/ports/repositories"
	"github.com/SscSPs/event_split_app/internal/platform/config"
	"github.com/spf13/cobra"
)

var copyStateCmd = &cobra.Command{
	Use:   "copy-state",
	Short: "Copy every store from another backend into the configured one",
	Long: `Read the raw state of each store from --from and write it to the backend named
by STATE_BACKEND. Stores missing from the source are left untouched in the target.
Stop the server first: it keeps its own copy in memory and will overwrite the target
on its next write.`,
	Args: cobra.NoArgs,
	RunE: runCopyState,
}

func init() {
	rootCmd.AddCommand(copyStateCmd)
	copyStateCmd.Flags().String("from", "", "Source backend ("+config.BackendRedis+", "+config.BackendPostgres+" or "+config.BackendMongo+")")
	_ = copyStateCmd.MarkFlagRequired("from")
}

var storeNames = []string{
	portsrepo.StoreEvents,
	portsrepo.StoreParticipants,
	portsrepo.StoreTransactions,
	portsrepo.StoreJoinRequests,
}

func runCopyState(cmd *cobra.Command, args []string) error {
	from, _ := cmd.Flags().GetString("from")
	ctx := cmd.Context()

	_, src, err := openRepos(ctx, from)
	if err != nil {
		return fmt.Errorf("failed to open source %s: %w", from, err)
	}
	defer closeRepos(src)

	cfg, dst, err := openRepos(ctx, "")
	if err != nil {
		return fmt.Errorf("failed to open target: %w", err)
	}
	defer closeRepos(dst)

	if cfg.StateBackend == from {
		return fmt.Errorf("source and target are both %s", from)
	}

	for _, name := range storeNames {
		data, err := src.State.LoadState(ctx, name)
		if err != nil {
			return fmt.Errorf("failed to read %s from %s: %w", name, from, err)
		}
		if data == nil {
			fmt.Fprintf(cmd.OutOrStdout(), "%-14s skipped (absent)\n", name)
			continue
		}
		if err := dst.State.SaveState(ctx, name, data); err != nil {
			return fmt.Errorf("failed to write %s to %s: %w", name, cfg.StateBackend, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%-14s copied (%d bytes)\n", name, len(data))
	}
	return nil
}
