// internal/cli/link.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kush-os/kushtc"
	"github.com/kush-os/kushtc/pkg/core"
	"github.com/kush-os/kushtc/pkg/linker"
	"github.com/kush-os/kushtc/pkg/toolchain"
)

var linkFlags struct {
	static        bool
	shared        bool
	pie           bool
	rdynamic      bool
	strip         bool
	cxx           bool
	lto           string
	rtlib         string
	stdlib        string
	staticLibCXX  bool
	noStdlib      bool
	noStartFiles  bool
	noDefaultLibs bool
	noLibC        bool
	output        string
	libraryPaths  []string
	undefined     []string
	debugInfo     bool
	emitIR        bool
	noWarnings    bool
}

var linkCmd = &cobra.Command{
	Use:   "link [flags] input...",
	Short: "Compose a link command",
	Long: `Compose the ordered argument sequence for one link action and print
it without invoking the linker.`,
	Args: cobra.ArbitraryArgs,
	RunE: runLink,
}

func init() {
	f := linkCmd.Flags()
	f.BoolVar(&linkFlags.static, "static", false, "link statically")
	f.BoolVar(&linkFlags.shared, "shared", false, "build a shared library")
	f.BoolVar(&linkFlags.pie, "pie", false, "build a position-independent executable")
	f.BoolVar(&linkFlags.rdynamic, "rdynamic", false, "export all symbols from the executable")
	f.BoolVarP(&linkFlags.strip, "strip", "s", false, "strip symbol information")
	f.BoolVar(&linkFlags.cxx, "cxx", false, "link as C++")
	f.StringVar(&linkFlags.lto, "lto", "", "link-time optimization mode (thin, full)")
	f.StringVar(&linkFlags.rtlib, "rtlib", "", "runtime library name")
	f.StringVar(&linkFlags.stdlib, "stdlib", "", "C++ standard library name")
	f.BoolVar(&linkFlags.staticLibCXX, "static-libstdc++", false, "link only the C++ standard library statically")
	f.BoolVar(&linkFlags.noStdlib, "nostdlib", false, "skip startup files and default libraries")
	f.BoolVar(&linkFlags.noStartFiles, "nostartfiles", false, "skip startup files")
	f.BoolVar(&linkFlags.noDefaultLibs, "nodefaultlibs", false, "skip default libraries")
	f.BoolVar(&linkFlags.noLibC, "nolibc", false, "skip the C library")
	f.StringVarP(&linkFlags.output, "output", "o", "a.out", "output path")
	f.StringArrayVarP(&linkFlags.libraryPaths, "library-path", "L", nil, "extra library search directory")
	f.StringArrayVarP(&linkFlags.undefined, "undefined", "u", nil, "force symbol to be undefined")
	f.BoolVarP(&linkFlags.debugInfo, "debug-info", "g", false, "accepted for driver compatibility")
	f.BoolVar(&linkFlags.emitIR, "emit-llvm", false, "accepted for driver compatibility")
	f.BoolVarP(&linkFlags.noWarnings, "no-warnings", "w", false, "accepted for driver compatibility")
}

func runLink(cmd *cobra.Command, args []string) error {
	tc, err := toolchain.New(config)
	if err != nil {
		return fmt.Errorf("initializing toolchain: %w", err)
	}

	bc, err := buildConfiguration(args)
	if err != nil {
		return err
	}

	command, err := linker.Construct(tc, bc)
	if err != nil {
		return &kushtc.Error{Op: "link", Target: bc.Output, Err: err}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", tc.LinkerPath(), command)
	return nil
}

// buildConfiguration maps the parsed link flags onto a BuildConfiguration
func buildConfiguration(inputs []string) (*core.BuildConfiguration, error) {
	mode := core.LinkModeDynamic
	if linkFlags.static {
		mode = core.LinkModeStatic
	}

	var lto core.LTOMode
	switch linkFlags.lto {
	case "":
		lto = core.LTONone
	case "thin":
		lto = core.LTOThin
	case "full":
		lto = core.LTOFull
	default:
		return nil, fmt.Errorf("invalid LTO mode: %q (want thin or full)", linkFlags.lto)
	}

	return &core.BuildConfiguration{
		LinkMode:         mode,
		Shared:           linkFlags.shared,
		PIE:              linkFlags.pie,
		DefaultPIE:       config.DefaultPIE,
		Strip:            linkFlags.strip,
		Sysroot:          config.Sysroot,
		LTO:              lto,
		RuntimeLib:       linkFlags.rtlib,
		CXXStdlib:        core.CXXStdlibKind(linkFlags.stdlib),
		CXX:              linkFlags.cxx,
		ExportDynamic:    linkFlags.rdynamic,
		StaticLibCXX:     linkFlags.staticLibCXX,
		NoStdlib:         linkFlags.noStdlib,
		NoStartFiles:     linkFlags.noStartFiles,
		NoDefaultLibs:    linkFlags.noDefaultLibs,
		NoLibC:           linkFlags.noLibC,
		DebugInfo:        linkFlags.debugInfo,
		EmitIR:           linkFlags.emitIR,
		SuppressWarnings: linkFlags.noWarnings,
		Inputs:           inputs,
		Output:           linkFlags.output,
		LibraryPaths:     linkFlags.libraryPaths,
		Undefined:        linkFlags.undefined,
	}, nil
}
