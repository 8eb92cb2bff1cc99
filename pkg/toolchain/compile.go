// pkg/toolchain/compile.go
package toolchain

import (
	"github.com/kush-os/kushtc/pkg/core"
)

// TargetCompileOptions returns the extra compile-stage flags for the target.
// Init arrays stay enabled unless explicitly turned off. Functions and data
// always get their own sections, which improves dead-code elimination and
// LTO granularity.
func (t *Toolchain) TargetCompileOptions(bc *core.BuildConfiguration) []string {
	var args []string

	if bc.UseInitArray != nil && !*bc.UseInitArray {
		args = append(args, "-fno-use-init-array")
	}

	args = append(args, "-ffunction-sections", "-fdata-sections")

	return args
}
