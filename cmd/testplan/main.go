package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/thomasahle/testplan-data/internal/app"
	"github.com/thomasahle/testplan-data/internal/config"
	"github.com/thomasahle/testplan-data/internal/output"
	"github.com/thomasahle/testplan-data/internal/utils"
	"github.com/thomasahle/testplan-data/pkg/version"
)

var (
	manifestPath string
	verbose      bool
	fixPages     bool
	log          *utils.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "testplan",
	Short: "Validate the test-plan document repository manifest",
	Long: `testplan cross-checks the repository manifest (config.yaml) against the
documents on disk: every referenced file must exist, PDFs must parse, and
recorded page counts must match the actual documents.

Page-count mismatches are warnings (stale metadata), missing files and
unreadable PDFs are failures. The exit code is 0 when no check failed.`,
	Version:       version.Short(),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runValidate,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&manifestPath, "config", "", "manifest file to validate (default is config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "show passing and skipped checks too")
	rootCmd.Flags().BoolVar(&fixPages, "fix-pages", false, "rewrite the manifest with actual page counts on mismatch")

	_ = viper.BindPFlag("manifest.path", rootCmd.PersistentFlags().Lookup("config"))

	reportCmd.Flags().String("format", string(output.FormatConsole), "report format: console, markdown, or csv")
	reportCmd.Flags().StringP("output", "o", "", "write the report to a file instead of stdout")

	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(versionCmd)
}

func setup() (*app.Runner, string, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, "", fmt.Errorf("failed to load config: %w", err)
	}

	level := cfg.Logging.Level
	if verbose {
		level = "debug"
	}
	utils.SetGlobalLevel(level)

	log = utils.NewLogger(utils.LoggerOptions{
		Level:   cfg.Logging.Level,
		Format:  cfg.Logging.Format,
		Verbose: verbose,
	})

	path := cfg.Manifest.Path
	if manifestPath != "" {
		path = manifestPath
	}
	return app.NewRunner(cfg, log), utils.ExpandPath(path), nil
}

func runValidate(cmd *cobra.Command, args []string) error {
	runner, path, err := setup()
	if err != nil {
		return err
	}

	report, err := runner.Validate(os.Stdout, app.ValidateOptions{
		ManifestPath: path,
		Verbose:      verbose,
		FixPages:     fixPages,
		Progress:     !verbose,
	})
	if err != nil {
		return err
	}

	if !report.AllPassed() {
		return fmt.Errorf("validation failed")
	}
	return nil
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate a coverage/statistics report from the manifest",
	Long:  "Summarizes entries per category: counts, tracked pages, on-disk size, and missing files.",
	RunE: func(cmd *cobra.Command, args []string) error {
		runner, path, err := setup()
		if err != nil {
			return err
		}

		formatStr, _ := cmd.Flags().GetString("format")
		format, err := output.ParseFormat(formatStr)
		if err != nil {
			return err
		}

		var w *os.File = os.Stdout
		if outPath, _ := cmd.Flags().GetString("output"); outPath != "" {
			f, err := os.Create(outPath)
			if err != nil {
				return fmt.Errorf("failed to create report file: %w", err)
			}
			defer f.Close()
			w = f
		}

		return runner.Report(w, app.ReportOptions{
			ManifestPath: path,
			Format:       format,
		})
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.Full())
	},
}
