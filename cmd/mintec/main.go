// Package main provides the CLI entry point for mintec.
package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/bennofs/mintec/pkg/mintec"
	"github.com/bennofs/mintec/pkg/mintec/batch"
	"github.com/bennofs/mintec/pkg/mintec/config"
	"github.com/bennofs/mintec/pkg/mintec/models"
	"github.com/bennofs/mintec/pkg/mintec/output"
)

var (
	// Global flags
	configPath string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger

	outputPath   string
	pretty       bool
	templatePath string
	outputDir    string
	workers      int
	skipExisting bool
)

var rootCmd = &cobra.Command{
	Use:   "mintec",
	Short: "Read MINT-EC certificate applications and render certificates",
	Long: `mintec reads MINT-EC certificate application forms from Excel workbooks,
reports problems found in them and fills the certificate PDF template.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg = config.DefaultConfig()
		if configPath != "" {
			var err error
			if cfg, err = config.Load(configPath); err != nil {
				return err
			}
		}

		zc := zap.NewProductionConfig()
		if cfg.Logging.Level != "" {
			level, err := zapcore.ParseLevel(cfg.Logging.Level)
			if err != nil {
				return fmt.Errorf("invalid log level: %w", err)
			}
			zc.Level = zap.NewAtomicLevelAt(level)
		}
		if verbose {
			zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zc.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var extractCmd = &cobra.Command{
	Use:   "extract [input.xlsx]",
	Short: "Extract an application form and print it as JSON",
	Long: `Extracts the applicant data and all problems found in the form.
Exits with status 1 if the form has fatal problems.`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

var renderCmd = &cobra.Command{
	Use:   "render [input.xlsx]",
	Short: "Render the certificate of one application form",
	Long: `Extracts an application form and fills the certificate template with it.
Forms with fatal problems are not rendered.`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

var batchCmd = &cobra.Command{
	Use:   "batch [file-or-dir]...",
	Short: "Render certificates for many application forms",
	Long: `Processes workbooks in parallel. Directories are scanned without recursion
for .xlsx and .xlsm files. Each certificate is written to the output directory
under the name of its workbook.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runBatch,
}

func main() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	extractCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	extractCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")

	renderCmd.Flags().StringVar(&templatePath, "template", "", "Certificate template (default from config)")
	renderCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output PDF path (default: <output_dir>/<input>.pdf)")

	batchCmd.Flags().StringVar(&templatePath, "template", "", "Certificate template (default from config)")
	batchCmd.Flags().StringVar(&outputDir, "out-dir", "", "Output directory (default from config)")
	batchCmd.Flags().IntVar(&workers, "workers", 0, "Number of forms processed in parallel (default from config)")
	batchCmd.Flags().BoolVar(&skipExisting, "skip-existing", false, "Skip forms whose certificate already exists")

	rootCmd.AddCommand(extractCmd, renderCmd, batchCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runExtract(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	record, problems, err := mintec.ExtractFile(inputPath)
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}
	report := output.NewReport(filepath.Base(inputPath), record, problems)
	logger.Debug("form extracted",
		zap.String("input", inputPath),
		zap.String("status", string(report.Status)),
		zap.Int("problems", len(problems)),
	)

	jsonData, err := output.ToJSON(report, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	if outputPath != "" {
		if err := os.WriteFile(outputPath, jsonData, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
	}

	if report.Status == models.StatusFail {
		return fmt.Errorf("%s: %w", inputPath, mintec.ErrFatalProblems)
	}
	return nil
}

func runRender(cmd *cobra.Command, args []string) error {
	inputPath := args[0]
	template, err := readTemplate()
	if err != nil {
		return err
	}
	target := outputPath
	if target == "" {
		target = pdfName(cfg.OutputDir, inputPath)
	}

	record, problems, err := mintec.ExtractFile(inputPath)
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}
	if msg := problems.Message(); msg != "" {
		fmt.Fprint(cmd.ErrOrStderr(), msg)
	}
	if problems.HasFatal() {
		return fmt.Errorf("%s: %w", inputPath, mintec.ErrFatalProblems)
	}

	var buf bytes.Buffer
	if err := mintec.Render(record, template, &buf, cfg.Options()); err != nil {
		return err
	}
	if err := os.WriteFile(target, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write certificate: %w", err)
	}
	logger.Info("certificate written", zap.String("input", inputPath), zap.String("output", target))
	return nil
}

func runBatch(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	if flags.Changed("out-dir") {
		cfg.OutputDir = outputDir
	}
	if flags.Changed("workers") {
		cfg.Workers = workers
	}
	if flags.Changed("skip-existing") {
		cfg.SkipExisting = skipExisting
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	template, err := readTemplate()
	if err != nil {
		return err
	}
	jobs, err := batch.Discover(args, cfg.OutputDir)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	results := batch.Run(ctx, jobs, template, cfg.Options(),
		batch.Config{Workers: cfg.Workers, SkipExisting: cfg.SkipExisting}, logger)

	failed := 0
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "STATUS\tFILE\tPROBLEMS")
	for _, r := range results {
		status := string(r.Status)
		if r.Skipped {
			status = "SKIPPED"
		}
		if r.Status == models.StatusFail {
			failed++
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", status, filepath.Base(r.Input), oneLine(r.Message()))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d forms failed", failed, len(results))
	}
	return nil
}

func readTemplate() ([]byte, error) {
	path := templatePath
	if path == "" {
		path = cfg.Template
	}
	if path == "" {
		return nil, errors.New("no certificate template given (use --template or set template in the config)")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read template: %w", err)
	}
	return data, nil
}

// pdfName returns dir/<base of input>.pdf.
func pdfName(dir, input string) string {
	base := filepath.Base(input)
	return filepath.Join(dir, strings.TrimSuffix(base, filepath.Ext(base))+".pdf")
}

func oneLine(msg string) string {
	var lines []string
	for _, line := range strings.Split(msg, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "; ")
}
