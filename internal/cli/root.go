package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var verbose bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "mermaid-corpus",
	Short: "mermaid-corpus - build a corpus of Mermaid diagram samples",
	Long: `mermaid-corpus scans a directory tree (typically a checkout of the
mermaid repository) for embedded Mermaid diagram definitions and
materializes each one as a standalone annotated sample file, organized
by diagram type. The resulting tree is a normalized sample set for
downstream testing or training.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
