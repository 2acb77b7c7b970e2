package cmd

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/user0420EEC/hassmap/internal/config"
	"github.com/user0420EEC/hassmap/internal/filelock"
	"github.com/user0420EEC/hassmap/internal/history"
	"github.com/user0420EEC/hassmap/internal/logger"
	"github.com/user0420EEC/hassmap/internal/manifest"
)

// generateOptions holds the flag values for manifest generation. Only flags
// the user actually set override the loaded configuration.
type generateOptions struct {
	root        string
	output      string
	projectName string
	repoURL     string
	logLevel    string
	noHistory   bool
}

// NewGenerateCommand creates the explicit generate subcommand. The root
// command runs the same logic, so this exists for discoverability and for
// pairing flags with help text.
func NewGenerateCommand() *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Scan a repository and write project_structure.json",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts)
		},
		SilenceUsage: true,
	}

	addGenerateFlags(cmd, opts)
	return cmd
}

func addGenerateFlags(cmd *cobra.Command, opts *generateOptions) {
	cmd.Flags().StringVar(&opts.root, "root", ".", "repository root to scan")
	cmd.Flags().StringVar(&opts.output, "output", "", "manifest filename, relative to the root")
	cmd.Flags().StringVar(&opts.projectName, "project-name", "", "project_name field of the manifest")
	cmd.Flags().StringVar(&opts.repoURL, "repo-url", "", "repository field of the manifest")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "", "console verbosity (debug, info, warn, error)")
	cmd.Flags().BoolVar(&opts.noHistory, "no-history", false, "skip recording this scan in the history database")
}

func runGenerate(cmd *cobra.Command, opts *generateOptions) error {
	cfg, err := config.Load(opts.root)
	if err != nil {
		return err
	}
	applyFlags(cmd, opts, cfg)

	log := logger.New(cmd.OutOrStdout(), cfg.LogLevel)

	// One scan per root at a time.
	lock := filelock.NewScanLock(cfg.RootDir)
	locked, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("failed to acquire scan lock: %w", err)
	}
	if !locked {
		return fmt.Errorf("another hassmap run is already scanning %s", cfg.RootDir)
	}
	defer lock.Unlock()

	start := time.Now()

	log.Debugf("scanning %s", cfg.RootDir)
	m, err := manifest.Build(cfg.RootDir, cfg.ProjectName, cfg.RepoURL)
	if err != nil {
		return err
	}

	outputPath := filepath.Join(cfg.RootDir, cfg.OutputFile)
	size, err := manifest.Write(m, outputPath)
	if err != nil {
		return err
	}

	log.Successf("%s created/updated", cfg.OutputFile)

	if cfg.History.Enabled && !opts.noHistory {
		recordScan(log, cfg, m, size, time.Since(start))
	}
	return nil
}

// applyFlags overrides loaded configuration with flags the user set.
func applyFlags(cmd *cobra.Command, opts *generateOptions, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("output") {
		cfg.OutputFile = opts.output
	}
	if flags.Changed("project-name") {
		cfg.ProjectName = opts.projectName
	}
	if flags.Changed("repo-url") {
		cfg.RepoURL = opts.repoURL
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = opts.logLevel
	}
}

// recordScan appends this run to the history database. History is
// best-effort: any failure is a warning, never a failed run.
func recordScan(log *logger.Console, cfg *config.Config, m *manifest.Manifest, size int, elapsed time.Duration) {
	store, err := history.NewStore(filepath.Join(cfg.RootDir, cfg.History.DBPath))
	if err != nil {
		log.Warnf("history disabled: %v", err)
		return
	}
	defer store.Close()

	_, err = store.Add(history.Scan{
		Timestamp:     time.Now(),
		Root:          cfg.RootDir,
		FileCount:     len(m.Files),
		IncludeCount:  len(m.YAMLIncludes),
		ManifestBytes: size,
		Duration:      elapsed,
	})
	if err != nil {
		log.Warnf("failed to record scan: %v", err)
		return
	}
	log.Debugf("recorded scan: %d files, %d include maps, %d bytes", len(m.Files), len(m.YAMLIncludes), size)
}
