// pkg/toolchain/constants.go
package toolchain

const (
	// LinkerName is the linker executable resolved via the program search path
	LinkerName = "ld"

	// ABI support library for libc++
	libCXXABI = "-lc++abi"
	// The C++ standard library itself
	libCXX = "-lc++"
	// Unwinding support, needed for dynamic exception handling
	libUnwind = "-lunwind"
)

// Sysroot-relative directory components. The directory trees under a Kush
// sysroot use capitalized System/Local roots.
const (
	dirSystem    = "System"
	dirLocal     = "Local"
	dirLibraries = "Libraries"
	dirIncludes  = "Includes"
)

// Versioned libc++ header directory under System/Includes
const (
	dirCXX        = "c++"
	dirCXXVersion = "v1"
)
