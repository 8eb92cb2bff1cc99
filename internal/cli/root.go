// internal/cli/root.go
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kush-os/kushtc/pkg/core"
)

var (
	cfgFile string
	sysroot string
	triple  string
	debug   bool
	config  *core.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "kushtc",
	Short: "Kush toolchain driver helper",
	Long: `kushtc - Kush toolchain driver helper

Composes the argument sequences and search paths the Kush compiler driver
hands to the system linker. It prints commands, it never runs them.`,
	Version: "0.1.0",
}

// Execute executes the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/kushtc/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&sysroot, "sysroot", "", "target sysroot directory")
	rootCmd.PersistentFlags().StringVar(&triple, "target", "", "target triple (e.g. x86_64-pc-kush)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	// Add commands
	rootCmd.AddCommand(linkCmd)
	rootCmd.AddCommand(cflagsCmd)
	rootCmd.AddCommand(pathsCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	var err error
	config, err = core.LoadConfig(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		config = core.DefaultConfig()
	}

	// Override config with flags
	if sysroot != "" {
		config.Sysroot = sysroot
	}
	if triple != "" {
		config.Triple = triple
	}
	if debug {
		config.Debug = true
	}
}
