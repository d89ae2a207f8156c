package cli

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mvp-joe/mermaid-corpus/internal/config"
	"github.com/mvp-joe/mermaid-corpus/internal/verify"
)

var (
	verifyDirFlag        string
	verifySampleSizeFlag int
	verifyQuietFlag      bool
)

// verifyCmd represents the verify command
var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify the structure of extracted samples",
	Long: `Verify checks a random sample of the extracted .mermaid files for the
expected structure: a Source header line, a Type header line, and at
least one non-comment body line. It reports a pass rate plus a per-type
file count.

Examples:
  # Verify the default samples directory
  mermaid-corpus verify

  # Verify a custom directory, checking 100 random samples
  mermaid-corpus verify --dir ./samples --sample-size 100
`,
	RunE: runVerify,
}

func init() {
	rootCmd.AddCommand(verifyCmd)
	verifyCmd.Flags().StringVarP(&verifyDirFlag, "dir", "d", "", "Samples directory to verify (default from config)")
	verifyCmd.Flags().IntVarP(&verifySampleSizeFlag, "sample-size", "n", 0, "Number of random samples to check (default from config)")
	verifyCmd.Flags().BoolVarP(&verifyQuietFlag, "quiet", "q", false, "Only print the verification results")
}

func runVerify(cmd *cobra.Command, args []string) error {
	rootDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	cfg, err := config.LoadConfigFromDir(rootDir)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	samplesDir := cfg.Output.Dir
	if verifyDirFlag != "" {
		samplesDir = verifyDirFlag
	}
	sampleSize := cfg.Verify.SampleSize
	if verifySampleSizeFlag > 0 {
		sampleSize = verifySampleSizeFlag
	}

	if !verifyQuietFlag {
		fmt.Println("Verifying extracted Mermaid samples...")
	}

	report, err := verify.Run(samplesDir, sampleSize)
	if err != nil {
		return err
	}

	if !verifyQuietFlag {
		fmt.Printf("Found %d total .mermaid files\n", report.TotalFiles)
		fmt.Printf("\nChecking %d random samples...\n", report.SampleSize)
	}

	fmt.Println("\nVerification Results:")
	fmt.Printf("  Valid samples: %d/%d\n", report.ValidCount, report.SampleSize)
	rate := report.SuccessRate()
	if rate == 100 {
		color.Green("  Success rate: %.1f%%", rate)
	} else {
		color.Red("  Success rate: %.1f%%", rate)
	}

	if len(report.Invalid) > 0 {
		fmt.Println("\nInvalid files found:")
		shown := report.Invalid
		if len(shown) > 5 {
			shown = shown[:5]
		}
		for _, inv := range shown {
			fmt.Printf("  %s: %s\n", inv.Path, describeFailure(inv.Result))
		}
	}

	types := make([]string, 0, len(report.ByType))
	for t := range report.ByType {
		types = append(types, t)
	}
	sort.Strings(types)

	fmt.Println("\nSummary by diagram type:")
	for _, t := range types {
		fmt.Printf("  %s: %d files\n", t, report.ByType[t])
	}

	if !verifyQuietFlag {
		printExamples(report.Examples)
	}

	return nil
}

// describeFailure renders a failing check result as a short reason list.
func describeFailure(r verify.CheckResult) string {
	if r.Err != nil {
		return r.Err.Error()
	}
	var reasons []string
	if !r.HasSource {
		reasons = append(reasons, "missing Source header")
	}
	if !r.HasType {
		reasons = append(reasons, "missing Type header")
	}
	if !r.HasContent {
		reasons = append(reasons, "no body content")
	}
	return strings.Join(reasons, ", ")
}

// printExamples shows the first few hundred bytes of a handful of samples.
func printExamples(paths []string) {
	if len(paths) == 0 {
		return
	}
	fmt.Println("\nExample file contents:")
	for i, path := range paths {
		fmt.Printf("\n--- Example %d: %s ---\n", i+1, path)
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Printf("Error reading file: %v\n", err)
			continue
		}
		content := string(data)
		if len(content) > 300 {
			content = content[:300] + "..."
		}
		fmt.Println(content)
	}
}
