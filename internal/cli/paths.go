// internal/cli/paths.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kush-os/kushtc/pkg/toolchain"
)

var pathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "Print the toolchain search path tables",
	RunE:  runPaths,
}

func runPaths(cmd *cobra.Command, args []string) error {
	tc, err := toolchain.New(config)
	if err != nil {
		return fmt.Errorf("initializing toolchain: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Target: %s\n", tc.EffectiveTriple())
	fmt.Fprintf(out, "Linker: %s\n", tc.LinkerPath())

	fmt.Fprintln(out, "Program search paths:")
	for _, dir := range tc.ProgramPaths() {
		fmt.Fprintf(out, "  %s\n", dir)
	}

	fmt.Fprintln(out, "Library search paths:")
	for _, dir := range tc.FilePaths() {
		fmt.Fprintf(out, "  %s\n", dir)
	}

	return nil
}
