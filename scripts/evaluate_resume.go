package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"alfredoptarigan/resume-screener/internal/config"
	"alfredoptarigan/resume-screener/internal/logger"
	"alfredoptarigan/resume-screener/internal/services"
)

var (
	jobFile         string
	coverLetterFile string
	debug           bool
)

var rootCmd = &cobra.Command{
	Use:   "evaluate_resume <resume.pdf>",
	Short: "Evaluate a local PDF resume against a job description",
	Long: `Evaluate a local PDF resume against a job description and print the
evaluation as JSON. Nothing is stored.

Example:
  go run ./scripts/evaluate_resume.go jane.pdf --job backend.txt --cover-letter jane.txt`,
	Args: cobra.ExactArgs(1),
	RunE: run,
}

func init() {
	rootCmd.Flags().StringVarP(&jobFile, "job", "j", "", "file containing the job description (required)")
	rootCmd.Flags().StringVarP(&coverLetterFile, "cover-letter", "c", "", "file containing the cover letter")
	rootCmd.Flags().BoolVarP(&debug, "debug", "d", false, "log prompts and responses")
	_ = rootCmd.MarkFlagRequired("job")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	cfg.Logger.Format = "pretty"
	if debug {
		cfg.Logger.Level = "debug"
	}
	logger.Init(cfg.Logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	jobDescription, err := readText(jobFile)
	if err != nil {
		return err
	}

	coverLetter := ""
	if coverLetterFile != "" {
		if coverLetter, err = readText(coverLetterFile); err != nil {
			return err
		}
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read resume: %w", err)
	}

	text, err := services.NewPDFParserService().ExtractText(data)
	if err != nil {
		return fmt.Errorf("failed to parse resume: %w", err)
	}
	logger.Info().Int("chars", len(text)).Str("file", args[0]).Msg("resume parsed")

	judge, err := services.NewJudge(ctx, cfg.Judge)
	if err != nil {
		return err
	}

	fields, err := services.NewFieldExtractor(judge).Extract(ctx, text)
	if err != nil {
		return err
	}

	evaluator := services.NewEvaluator(judge, services.NewCoverLetterAnalyzer(judge))
	result := evaluator.Evaluate(ctx, fields, jobDescription, coverLetter)

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

func readText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return strings.TrimSpace(string(data)), nil
}
