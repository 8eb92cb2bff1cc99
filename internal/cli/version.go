// internal/cli/version.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("kushtc version 0.1.0")
		fmt.Println("Kush toolchain driver helper")
		fmt.Println("https://github.com/kush-os/kushtc")
	},
}
