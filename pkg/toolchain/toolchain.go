// pkg/toolchain/toolchain.go
package toolchain

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/kush-os/kushtc/pkg/core"
	"github.com/kush-os/kushtc/pkg/platform"
)

// Toolchain holds the fixed path tables for one installed Kush toolchain.
// It is built once per target triple and never mutated afterwards; every
// method is a pure function over the tables and a BuildConfiguration.
type Toolchain struct {
	installDir  string
	driverDir   string
	resourceDir string
	sysroot     string
	triple      platform.Triple

	programPaths []string
	filePaths    []string

	logger *log.Logger
}

// New builds a toolchain from the given configuration. The program search
// list is the install directory followed by the driver directory when
// distinct. The library search list holds the sysroot System and Local
// library directories, in that order, and stays empty without a sysroot.
func New(cfg *core.Config) (*Toolchain, error) {
	if cfg == nil {
		cfg = core.DefaultConfig()
	}

	triple, err := platform.ParseTriple(cfg.Triple)
	if err != nil {
		return nil, fmt.Errorf("resolving target: %w", err)
	}

	t := &Toolchain{
		installDir:  cfg.InstallDir,
		driverDir:   cfg.DriverDir,
		resourceDir: cfg.ResourceDir,
		sysroot:     cfg.Sysroot,
		triple:      triple,
		logger:      cfg.NewLogger(),
	}

	t.programPaths = append(t.programPaths, cfg.InstallDir)
	if cfg.DriverDir != "" && cfg.DriverDir != cfg.InstallDir {
		t.programPaths = append(t.programPaths, cfg.DriverDir)
	}

	if cfg.Sysroot != "" {
		t.filePaths = append(t.filePaths,
			filepath.Join(cfg.Sysroot, dirSystem, dirLibraries),
			filepath.Join(cfg.Sysroot, dirLocal, dirLibraries))
	}

	return t, nil
}

// Sysroot returns the sysroot the toolchain was built with, empty for none
func (t *Toolchain) Sysroot() string {
	return t.sysroot
}

// Triple returns the normalized target triple
func (t *Toolchain) Triple() platform.Triple {
	return t.triple
}

// EffectiveTriple returns the normalized triple string handed to the
// compiler proper.
func (t *Toolchain) EffectiveTriple() string {
	return t.triple.String()
}

// ProgramPaths returns the ordered program search directories
func (t *Toolchain) ProgramPaths() []string {
	return append([]string(nil), t.programPaths...)
}

// FilePaths returns the ordered library search directories
func (t *Toolchain) FilePaths() []string {
	return append([]string(nil), t.filePaths...)
}

// FilePath composes the path of a toolchain-provided file such as a CRT
// startup object. The first library search directory wins; without one the
// bare name is returned and left to the linker's own search. No filesystem
// probing happens here.
func (t *Toolchain) FilePath(name string) string {
	if len(t.filePaths) == 0 {
		return name
	}
	return filepath.Join(t.filePaths[0], name)
}

// LinkerPath composes the path of the linker executable from the program
// search order.
func (t *Toolchain) LinkerPath() string {
	if len(t.programPaths) == 0 {
		return LinkerName
	}
	return filepath.Join(t.programPaths[0], LinkerName)
}
