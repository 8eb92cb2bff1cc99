// internal/cli/cflags.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kush-os/kushtc/pkg/core"
	"github.com/kush-os/kushtc/pkg/toolchain"
)

var cflagsFlags struct {
	cxx          bool
	noInitArray  bool
	noStdInc     bool
	noBuiltinInc bool
	noStdlibInc  bool
	noStdIncCXX  bool
}

var cflagsCmd = &cobra.Command{
	Use:   "cflags",
	Short: "Print target compile options and include search paths",
	RunE:  runCflags,
}

func init() {
	f := cflagsCmd.Flags()
	f.BoolVar(&cflagsFlags.cxx, "cxx", false, "include the C++ standard library headers")
	f.BoolVar(&cflagsFlags.noInitArray, "fno-use-init-array", false, "disable init-array usage")
	f.BoolVar(&cflagsFlags.noStdInc, "nostdinc", false, "skip all standard include directories")
	f.BoolVar(&cflagsFlags.noBuiltinInc, "nobuiltininc", false, "skip the builtin include directory")
	f.BoolVar(&cflagsFlags.noStdlibInc, "nostdlibinc", false, "skip the standard library include directories")
	f.BoolVar(&cflagsFlags.noStdIncCXX, "nostdinc++", false, "skip the C++ standard library include directories")
}

func runCflags(cmd *cobra.Command, args []string) error {
	tc, err := toolchain.New(config)
	if err != nil {
		return fmt.Errorf("initializing toolchain: %w", err)
	}

	bc := &core.BuildConfiguration{
		CXX:          cflagsFlags.cxx,
		NoStdInc:     cflagsFlags.noStdInc,
		NoBuiltinInc: cflagsFlags.noBuiltinInc,
		NoStdlibInc:  cflagsFlags.noStdlibInc,
		NoStdIncCXX:  cflagsFlags.noStdIncCXX,
	}
	if cflagsFlags.noInitArray {
		off := false
		bc.UseInitArray = &off
	}

	out := cmd.OutOrStdout()
	for _, opt := range tc.TargetCompileOptions(bc) {
		fmt.Fprintln(out, opt)
	}
	for _, dir := range tc.SystemIncludePaths(bc) {
		fmt.Fprintf(out, "-isystem %s\n", dir)
	}
	if bc.CXX {
		for _, dir := range tc.CXXStdlibIncludePaths(bc) {
			fmt.Fprintf(out, "-isystem %s\n", dir)
		}
	}

	return nil
}
