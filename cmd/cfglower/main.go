package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/verikit/cfglower/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "cfglower",
	Short: "A control flow graph lowering tool for verified procedures",
	Long: `cfglower builds control flow graphs for verified procedures and
lowers them into structured, label-addressed procedure bodies suitable
for verification-condition generation.

Graphs are described in YAML documents: a procedure signature plus a set
of labeled basic blocks wired together by typed successors (goto,
conditional branch, first-match-wins switch, return, unreachable).`,
	Version: version.Short(),
}

func init() {
	rootCmd.AddCommand(NewLowerCmd())
	rootCmd.AddCommand(NewInitCmd())
	rootCmd.AddCommand(NewVersionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
