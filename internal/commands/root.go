package commands

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"quicklaunch/internal/config"
	"quicklaunch/internal/discovery"
	"quicklaunch/internal/eventbus"
)

var (
	configPath string
	scanDirs   []string
	logPath    string

	logFile *os.File
)

var rootCmd = &cobra.Command{
	Use:   "quicklaunch",
	Short: "Type-to-filter launcher for installed applications",
	Long: `quicklaunch indexes the application shortcuts installed on this machine
and lets you pick one by typing part of its name.

Keys:
  up/down   move the selection
  enter     launch the selected application
  esc       dismiss the launcher
  ctrl+r    rescan the application directories`,
	Args:              cobra.NoArgs,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: openLog,
	RunE:              runLauncher,
}

// Execute runs the root command. The log file is closed on every path,
// including failed commands, for which cobra skips its post-run hooks.
func Execute() error {
	err := rootCmd.Execute()
	if cerr := closeLog(); err == nil {
		err = cerr
	}
	return err
}

// SetVersion sets the version for the root command
func SetVersion(version string) {
	rootCmd.Version = version
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", fmt.Sprintf("config file (default %s)", config.DefaultPath()))
	rootCmd.PersistentFlags().StringArrayVar(&scanDirs, "dir", nil, "directory to scan, repeatable (overrides discovery.base_dirs)")
	rootCmd.PersistentFlags().StringVar(&logPath, "log-file", "", fmt.Sprintf("log file (default %s)", defaultLogPath()))
}

// loadSettings loads the config file and resolves the discovery options,
// applying --dir overrides. bus may be nil.
func loadSettings(bus eventbus.EventBus) (*config.Config, discovery.Options, error) {
	var svc config.ConfigService
	if bus != nil {
		svc = config.NewConfigServiceWithBus(configPath, bus)
	} else {
		svc = config.NewConfigService(configPath)
	}

	cfg, err := svc.Load()
	if err != nil {
		return nil, discovery.Options{}, fmt.Errorf("failed to load config: %w", err)
	}
	log.Printf("Loaded config from %s", svc.Path())

	opts := cfg.DiscoveryOptions()
	if len(scanDirs) > 0 {
		opts.BaseDirs = scanDirs
	}
	return cfg, opts, nil
}
