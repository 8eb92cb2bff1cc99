// pkg/core/build.go
package core

// LinkMode selects how the final image binds its libraries
type LinkMode string

const (
	// LinkModeDynamic produces a dynamically linked image
	LinkModeDynamic LinkMode = "dynamic"
	// LinkModeStatic produces a fully static image
	LinkModeStatic LinkMode = "static"
)

// LTOMode selects the link-time-optimization strategy
type LTOMode string

const (
	// LTONone disables link-time optimization
	LTONone LTOMode = ""
	// LTOThin enables ThinLTO
	LTOThin LTOMode = "thin"
	// LTOFull enables monolithic LTO
	LTOFull LTOMode = "full"
)

// RuntimeLibType identifies the compiler runtime-support library family
type RuntimeLibType string

const (
	// RuntimeCompilerRT is the compiler-rt runtime, the only one Kush ships
	RuntimeCompilerRT RuntimeLibType = "compiler-rt"
)

// CXXStdlibKind identifies the C++ standard library implementation
type CXXStdlibKind string

const (
	// CXXStdlibLibCXX is libc++, the only C++ standard library Kush ships
	CXXStdlibLibCXX CXXStdlibKind = "libc++"
)

// BuildConfiguration is the normalized result of driver flag parsing for a
// single link action. It is treated as immutable: the toolchain and linker
// packages only ever read it.
type BuildConfiguration struct {
	// LinkMode is static or dynamic linking. Empty means dynamic.
	LinkMode LinkMode

	// Shared builds a shared library instead of an executable
	Shared bool

	// PIE requests a position-independent executable explicitly
	PIE bool

	// DefaultPIE marks PIE as the platform default for this target
	DefaultPIE bool

	// Strip removes symbol information from the output
	Strip bool

	// Sysroot is the target root directory tree, empty for none.
	// Callers must pass the same sysroot the toolchain was built with.
	Sysroot string

	// LTO selects the link-time-optimization mode
	LTO LTOMode

	// RuntimeLib is the requested runtime library name, empty for default
	RuntimeLib string

	// CXXStdlib is the requested C++ standard library, empty for default
	CXXStdlib CXXStdlibKind

	// CXX is set when the driver runs in C++ mode
	CXX bool

	// ExportDynamic exports all symbols from the executable (-rdynamic)
	ExportDynamic bool

	// StaticLibCXX links only the C++ standard library statically
	StaticLibCXX bool

	// Suppress flags. Each drops a category of implicit link inputs.
	NoStdlib      bool
	NoStartFiles  bool
	NoDefaultLibs bool
	NoLibC        bool

	// Suppress flags for header search path composition
	NoStdInc     bool
	NoBuiltinInc bool
	NoStdlibInc  bool
	NoStdIncCXX  bool

	// Flags the linker accepts for driver compatibility but that never
	// contribute arguments to the link line.
	DebugInfo        bool
	EmitIR           bool
	SuppressWarnings bool

	// UseInitArray overrides the init-array policy. Nil keeps the
	// (enabled) platform default.
	UseInitArray *bool

	// Inputs are the link inputs in command-line order
	Inputs []string

	// Output is the path of the linked image
	Output string

	// LibraryPaths are extra -L search directories in command-line order
	LibraryPaths []string

	// Undefined are symbols forced undefined (-u) in command-line order
	Undefined []string
}

// Static reports whether the configuration requests fully static linking
func (bc *BuildConfiguration) Static() bool {
	return bc.LinkMode == LinkModeStatic
}
