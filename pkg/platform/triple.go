// pkg/platform/triple.go
package platform

import (
	"fmt"
	"runtime"
	"strings"
)

// Architecture represents a Kush target architecture
type Architecture string

const (
	ArchX8664   Architecture = "x86_64"
	ArchAarch64 Architecture = "aarch64"
	ArchI686    Architecture = "i686"
	ArchRiscv64 Architecture = "riscv64"
)

// AllArchitectures contains all architectures the toolchain recognizes
var AllArchitectures = []Architecture{
	ArchX8664,
	ArchAarch64,
	ArchI686,
	ArchRiscv64,
}

// IsValid reports whether the architecture is one the toolchain recognizes
func (a Architecture) IsValid() bool {
	for _, arch := range AllArchitectures {
		if a == arch {
			return true
		}
	}
	return false
}

// Triple is a parsed target triple such as "x86_64-pc-kush"
type Triple struct {
	Arch   Architecture
	Vendor string
	OS     string
}

// DefaultVendor is used when a triple omits the vendor component
const DefaultVendor = "pc"

// DefaultOS is the operating system component of every Kush triple
const DefaultOS = "kush"

// ParseTriple parses a target triple string. Missing vendor and OS
// components are filled with the Kush defaults.
func ParseTriple(s string) (Triple, error) {
	if s == "" {
		return Detect(), nil
	}

	parts := strings.Split(s, "-")
	t := Triple{
		Arch:   Architecture(parts[0]),
		Vendor: DefaultVendor,
		OS:     DefaultOS,
	}

	switch len(parts) {
	case 1:
	case 2:
		t.OS = parts[1]
	case 3:
		t.Vendor = parts[1]
		t.OS = parts[2]
	default:
		return Triple{}, fmt.Errorf("invalid target triple: %q", s)
	}

	if !t.Arch.IsValid() {
		return Triple{}, fmt.Errorf("unsupported architecture: %q", parts[0])
	}

	return t, nil
}

// Detect returns the triple for the host architecture
func Detect() Triple {
	arch := ArchX8664
	switch runtime.GOARCH {
	case "amd64":
		arch = ArchX8664
	case "arm64":
		arch = ArchAarch64
	case "386":
		arch = ArchI686
	case "riscv64":
		arch = ArchRiscv64
	}

	return Triple{Arch: arch, Vendor: DefaultVendor, OS: DefaultOS}
}

// String returns the normalized triple string
func (t Triple) String() string {
	return fmt.Sprintf("%s-%s-%s", t.Arch, t.Vendor, t.OS)
}
