// internal/cli/link_test.go
package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kush-os/kushtc/pkg/core"
)

func resetLinkFlags() {
	linkFlags = struct {
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
	}{output: "a.out"}
}

func TestBuildConfigurationMapping(t *testing.T) {
	config = core.DefaultConfig()
	config.Sysroot = "/sdk"
	config.DefaultPIE = true

	resetLinkFlags()
	linkFlags.static = true
	linkFlags.strip = true
	linkFlags.cxx = true
	linkFlags.lto = "thin"
	linkFlags.rtlib = "compiler-rt"
	linkFlags.libraryPaths = []string{"/extra"}
	linkFlags.undefined = []string{"_hook"}
	linkFlags.output = "image"

	bc, err := buildConfiguration([]string{"a.o", "b.o"})
	require.NoError(t, err)

	require.Equal(t, core.LinkModeStatic, bc.LinkMode)
	require.True(t, bc.Strip)
	require.True(t, bc.CXX)
	require.True(t, bc.DefaultPIE)
	require.Equal(t, "/sdk", bc.Sysroot)
	require.Equal(t, core.LTOThin, bc.LTO)
	require.Equal(t, "compiler-rt", bc.RuntimeLib)
	require.Equal(t, []string{"/extra"}, bc.LibraryPaths)
	require.Equal(t, []string{"_hook"}, bc.Undefined)
	require.Equal(t, []string{"a.o", "b.o"}, bc.Inputs)
	require.Equal(t, "image", bc.Output)
}

func TestBuildConfigurationRejectsBadLTO(t *testing.T) {
	config = core.DefaultConfig()
	resetLinkFlags()
	linkFlags.lto = "aggressive"

	_, err := buildConfiguration([]string{"a.o"})
	require.Error(t, err)
}

func TestLinkCommandSmoke(t *testing.T) {
	resetLinkFlags()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"link", "--static", "-o", "a.out", "a.o"})

	require.NoError(t, rootCmd.Execute())
	require.Contains(t, out.String(), "-Bstatic")
	require.Contains(t, out.String(), "crt0T.o")
}
