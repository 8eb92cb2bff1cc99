// pkg/linker/command.go

// Package linker turns a build configuration and a toolchain's path tables
// into the ordered argument sequence handed to the Kush system linker.
package linker

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kush-os/kushtc/pkg/core"
	"github.com/kush-os/kushtc/pkg/toolchain"
)

// ErrNoInputs reports link-time optimization requested without any inputs
var ErrNoInputs = errors.New("link-time optimization requires at least one input file")

// Command is the completed, ordered link argument sequence. It is built
// once by Construct and never mutated afterwards.
type Command struct {
	args []string
}

// Args returns a copy of the argument tokens in order
func (c *Command) Args() []string {
	return append([]string(nil), c.args...)
}

// Len returns the number of argument tokens
func (c *Command) Len() int {
	return len(c.args)
}

// String renders the command as a single space-joined line
func (c *Command) String() string {
	return strings.Join(c.args, " ")
}

// Construct builds the link command for one link action. It is a pure
// function: identical inputs always produce an identical command, and no
// partial command is ever returned on error.
//
// bc.DebugInfo, bc.EmitIR and bc.SuppressWarnings are accepted so the
// driver does not flag them as unused, but they contribute nothing to the
// link line.
func Construct(tc *toolchain.Toolchain, bc *core.BuildConfiguration) (*Command, error) {
	// All-or-nothing: refuse LTO with nothing to optimize before emitting
	// a single token.
	if bc.LTO != core.LTONone && len(bc.Inputs) == 0 {
		return nil, fmt.Errorf("constructing link command: %w", ErrNoInputs)
	}

	b := &builder{
		tc:    tc,
		bc:    bc,
		isPIE: !bc.Shared && (bc.PIE || bc.DefaultPIE),
		args:  make([]string, 0, 32),
	}

	// The stage order is fixed; the target linker depends on it.
	for _, stage := range b.stages() {
		stage()
	}

	return &Command{args: b.args}, nil
}

// builder accumulates the argument tokens for one link action
type builder struct {
	tc    *toolchain.Toolchain
	bc    *core.BuildConfiguration
	isPIE bool
	args  []string
}

// stages returns the translation rules in their fixed evaluation order
func (b *builder) stages() []func() {
	return []func(){
		b.hardening,
		b.sysroot,
		b.pie,
		b.strip,
		b.binding,
		b.output,
		b.startFiles,
		b.forwarded,
		b.searchDirs,
		b.lto,
		b.inputs,
		b.defaultLibs,
	}
}

func (b *builder) emit(tokens ...string) {
	b.args = append(b.args, tokens...)
}

// hardening: relro is not supported yet, disable it unconditionally
func (b *builder) hardening() {
	b.emit(flagNoRelro)
}

func (b *builder) sysroot() {
	if b.bc.Sysroot != "" {
		b.emit("--sysroot=" + b.bc.Sysroot)
	}
}

func (b *builder) pie() {
	if b.isPIE {
		b.emit(flagPIE)
	}
}

func (b *builder) strip() {
	if b.bc.Strip {
		b.emit(flagStrip)
	}
}

// binding selects exactly one of the static and dynamic linking branches
func (b *builder) binding() {
	// static linking flags
	if b.bc.Static() {
		b.emit(flagStaticBind)
		return
	}

	// dynamic linking flags
	if b.bc.ExportDynamic {
		b.emit(flagExportDynamic)
	}
	if b.bc.Shared {
		b.emit(flagShareable)
	} else {
		b.emit(flagDynamicLinker, DynamicLinkerPath)
	}
	b.emit(flagNewDTags)
}

func (b *builder) output() {
	b.emit(flagOutput, b.bc.Output)
}

// startFiles selects exactly one CRT entry object
func (b *builder) startFiles() {
	if b.bc.NoStdlib || b.bc.NoStartFiles {
		return
	}

	switch {
	// static executable entry point
	case b.bc.Static():
		b.emit(b.tc.FilePath(CRTStatic))
	// shared library or position-independent executable entry point
	case b.bc.Shared || b.isPIE:
		b.emit(b.tc.FilePath(CRTShared))
	// regular executable entry point
	default:
		b.emit(b.tc.FilePath(CRTDefault))
	}

	// static executables need the C initializer (_init/_fini) as well
	if b.bc.Static() {
		b.emit(b.tc.FilePath(CRTInit))
	}
}

// forwarded passes through the caller's -L and -u arguments in input order
func (b *builder) forwarded() {
	for _, dir := range b.bc.LibraryPaths {
		b.emit("-L" + dir)
	}
	for _, sym := range b.bc.Undefined {
		b.emit(flagUndefined, sym)
	}
}

func (b *builder) searchDirs() {
	for _, dir := range b.tc.FilePaths() {
		b.emit("-L" + dir)
	}
}

// lto inserts the plugin options ahead of the inputs. The optimization
// level always rides along; ThinLTO adds its mode switch.
func (b *builder) lto() {
	if b.bc.LTO == core.LTONone {
		return
	}

	b.emit(ltoOptLevel)
	if b.bc.LTO == core.LTOThin {
		b.emit(ltoOptThin)
	}
}

func (b *builder) inputs() {
	b.emit(b.bc.Inputs...)
}

// defaultLibs appends the implicit libraries: the C++ standard library in a
// balanced push-state scope, the runtime-support archives and the C library.
func (b *builder) defaultLibs() {
	if b.bc.NoStdlib || b.bc.NoDefaultLibs {
		return
	}

	// reassert static binding for the libraries that follow
	if b.bc.Static() {
		b.emit(flagStaticBind)
	}

	if b.bc.CXX {
		onlyStaticLibCXX := b.bc.StaticLibCXX && !b.bc.Static()

		b.emit(flagPushState, flagAsNeeded)
		if onlyStaticLibCXX {
			b.emit(flagStaticBind)
		}
		b.emit(b.tc.CXXStdlibArgs(b.bc)...)
		if onlyStaticLibCXX {
			b.emit(flagDynamicBind)
		}

		// OpenLibM is always the math library
		b.emit(libOpenLibM)
		b.emit(flagPopState)
	}

	switch b.tc.RuntimeLibType(b.bc) {
	case core.RuntimeCompilerRT:
		b.emit(b.tc.CompilerRTArg("builtins"))
	}

	if !b.bc.NoLibC {
		b.emit(libC)
	}
}
