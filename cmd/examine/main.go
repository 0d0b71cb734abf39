package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mscrnt/examine/internal/config"
	"github.com/mscrnt/examine/internal/logging"
	"github.com/mscrnt/examine/internal/version"
)

// Build variables set by ldflags.
var (
	buildVersion string
	buildCommit  string
	buildTime    string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "examine",
		Short: "Examine - hardware and OS inspector",
		Long: `Examine displays host system information: OS release metadata and the
motherboard, processor, PCI and USB device inventory reported by the
system's diagnostic tools (dmidecode, lscpu, lspci, lsusb).`,
		Version: version.GetVersion(buildVersion, buildCommit, buildTime),
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			cfg := config.Load()
			logging.Init(logging.DefaultPath(), logging.ParseLevel(cfg.LogLevel))
		},
	}

	rootCmd.AddCommand(versionCmd())
	rootCmd.AddCommand(infoCmd())
	rootCmd.AddCommand(guiCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Println(version.GetDetailedVersion(buildVersion, buildCommit, buildTime))
		},
	}
}
