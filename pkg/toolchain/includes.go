// pkg/toolchain/includes.go
package toolchain

import (
	"fmt"
	"path/filepath"

	"github.com/kush-os/kushtc/pkg/core"
)

// SystemIncludePaths returns the ordered system header search directories:
// the compiler's bundled resource includes first, then the sysroot System
// and Local include trees. The suppress flags short-circuit the list the
// same way the driver options do.
func (t *Toolchain) SystemIncludePaths(bc *core.BuildConfiguration) []string {
	if bc.NoStdInc {
		return nil
	}

	var dirs []string

	// built in includes
	if !bc.NoBuiltinInc && t.resourceDir != "" {
		dirs = append(dirs, filepath.Join(t.resourceDir, "include"))
	}

	if bc.NoStdlibInc {
		return dirs
	}

	// default system header search paths
	if t.sysroot != "" {
		dirs = append(dirs,
			filepath.Join(t.sysroot, dirSystem, dirIncludes),
			filepath.Join(t.sysroot, dirLocal, dirIncludes))
	}

	return dirs
}

// CXXStdlibIncludePaths returns the C++ standard library header search
// directories. For libc++ that is the single versioned directory under the
// sysroot System include tree.
func (t *Toolchain) CXXStdlibIncludePaths(bc *core.BuildConfiguration) []string {
	// bail if no standard library includes
	if bc.NoStdlibInc || bc.NoStdIncCXX {
		return nil
	}

	switch t.CXXStdlibKind(bc) {
	case core.CXXStdlibLibCXX:
		if t.sysroot == "" {
			return nil
		}
		return []string{filepath.Join(t.sysroot, dirSystem, dirIncludes, dirCXX, dirCXXVersion)}

	default:
		panic(fmt.Sprintf("unsupported C++ standard library: %q", bc.CXXStdlib))
	}
}
