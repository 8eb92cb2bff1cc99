// pkg/toolchain/runtime.go
package toolchain

import (
	"fmt"
	"path/filepath"

	"github.com/kush-os/kushtc/pkg/core"
)

// RuntimeLibType decides which runtime-support library family to link.
// Kush ships exactly one implementation; an explicit request for anything
// else is a user configuration error that is diagnosed and then ignored so
// that the build can proceed.
func (t *Toolchain) RuntimeLibType(bc *core.BuildConfiguration) core.RuntimeLibType {
	if bc.RuntimeLib != "" && bc.RuntimeLib != string(core.RuntimeCompilerRT) {
		t.logger.Printf("warning: invalid runtime library name %q, using %s",
			bc.RuntimeLib, core.RuntimeCompilerRT)
	}

	return core.RuntimeCompilerRT
}

// CompilerRTArg composes the path of a compiler-rt component archive, e.g.
// "builtins", inside the resource directory. Without a resource directory
// the bare archive name is returned, matching FilePath.
func (t *Toolchain) CompilerRTArg(component string) string {
	name := fmt.Sprintf("libclang_rt.%s-%s.a", component, t.triple.Arch)
	if t.resourceDir == "" {
		return name
	}
	return filepath.Join(t.resourceDir, "lib", t.triple.OS, name)
}

// CXXStdlibKind resolves the requested C++ standard library kind. An empty
// request means the platform default.
func (t *Toolchain) CXXStdlibKind(bc *core.BuildConfiguration) core.CXXStdlibKind {
	if bc.CXXStdlib == "" {
		return core.CXXStdlibLibCXX
	}
	return bc.CXXStdlib
}

// CXXStdlibArgs returns the link arguments for the C++ standard library, in
// order: the ABI support library, the library itself and, unless the whole
// image is statically linked, the unwinding library. A kind other than
// libc++ can only reach this point through a broken adapter, so it panics.
func (t *Toolchain) CXXStdlibArgs(bc *core.BuildConfiguration) []string {
	switch t.CXXStdlibKind(bc) {
	case core.CXXStdlibLibCXX:
		args := []string{libCXXABI, libCXX}

		// C++ exceptions require libunwind
		if !bc.Static() {
			args = append(args, libUnwind)
		}
		return args

	default:
		panic(fmt.Sprintf("unsupported C++ standard library: %q", bc.CXXStdlib))
	}
}
