// kushtc.go
package kushtc

import (
	"github.com/kush-os/kushtc/pkg/core"
	"github.com/kush-os/kushtc/pkg/linker"
	"github.com/kush-os/kushtc/pkg/platform"
	"github.com/kush-os/kushtc/pkg/toolchain"
)

// Re-export the configuration and toolchain types for convenience
type (
	Config             = core.Config
	BuildConfiguration = core.BuildConfiguration
	LinkMode           = core.LinkMode
	LTOMode            = core.LTOMode
	RuntimeLibType     = core.RuntimeLibType
	CXXStdlibKind      = core.CXXStdlibKind
	Triple             = platform.Triple
	Toolchain          = toolchain.Toolchain
	LinkCommand        = linker.Command
)

// Re-export the mode constants
const (
	LinkModeDynamic = core.LinkModeDynamic
	LinkModeStatic  = core.LinkModeStatic

	LTONone = core.LTONone
	LTOThin = core.LTOThin
	LTOFull = core.LTOFull

	RuntimeCompilerRT = core.RuntimeCompilerRT
	CXXStdlibLibCXX   = core.CXXStdlibLibCXX
)

// DefaultConfig returns a toolchain configuration with sensible defaults
func DefaultConfig() *Config {
	return core.DefaultConfig()
}

// LoadConfig loads a toolchain configuration from file
func LoadConfig(path string) (*Config, error) {
	return core.LoadConfig(path)
}

// NewToolchain builds the immutable path tables for one toolchain instance
func NewToolchain(cfg *Config) (*Toolchain, error) {
	return toolchain.New(cfg)
}

// ConstructLinkCommand composes the ordered link argument sequence for one
// link action.
func ConstructLinkCommand(tc *Toolchain, bc *BuildConfiguration) (*LinkCommand, error) {
	return linker.Construct(tc, bc)
}
