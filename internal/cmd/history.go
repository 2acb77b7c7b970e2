package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/user0420EEC/hassmap/internal/config"
	"github.com/user0420EEC/hassmap/internal/history"
)

// NewHistoryCommand creates the history subcommand, which lists recent scans
// recorded in the history database.
func NewHistoryCommand() *cobra.Command {
	var root string
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent scans of a repository",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(root)
			if err != nil {
				return err
			}

			dbPath := filepath.Join(cfg.RootDir, cfg.History.DBPath)
			if _, err := os.Stat(dbPath); os.IsNotExist(err) {
				fmt.Fprintln(cmd.OutOrStdout(), "No scan history recorded yet.")
				return nil
			}

			store, err := history.NewStore(dbPath)
			if err != nil {
				return err
			}
			defer store.Close()

			scans, err := store.Recent(limit)
			if err != nil {
				return err
			}
			if len(scans) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No scan history recorded yet.")
				return nil
			}

			for _, s := range scans {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %d files, %d include maps, %d bytes, %s\n",
					s.Timestamp.Local().Format("2006-01-02 15:04:05"),
					s.FileCount, s.IncludeCount, s.ManifestBytes, s.Duration)
			}
			return nil
		},
		SilenceUsage: true,
	}

	cmd.Flags().StringVar(&root, "root", ".", "repository root whose history to show")
	cmd.Flags().IntVar(&limit, "limit", 10, "maximum number of scans to list")

	return cmd
}
