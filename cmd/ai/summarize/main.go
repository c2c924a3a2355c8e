// Package main provides a CLI command for extractive text summarization.
// Usage: ai-summarize [-length short|medium|long] [-file path | -url URL] [-output text|json|export]
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"ai-toolkit/internal/domain/entity"
	"ai-toolkit/internal/infra/fetcher"
	"ai-toolkit/internal/observability/logging"
	sumUC "ai-toolkit/internal/usecase/summarize"
)

func main() {
	var (
		length       string
		file         string
		url          string
		outputFormat string
	)

	flag.StringVar(&length, "length", "medium", "Summary length: short, medium or long")
	flag.StringVar(&file, "file", "", "Read the text from this file instead of stdin")
	flag.StringVar(&url, "url", "", "Summarize the article at this URL")
	flag.StringVar(&outputFormat, "output", "text", "Output format: text, json or export")
	flag.Parse()

	level := entity.CompressionLevel(length)
	if !level.IsKnown() {
		usage(fmt.Sprintf("Invalid length '%s' (must be 'short', 'medium' or 'long')", length))
	}
	switch outputFormat {
	case "text", "json", "export":
	default:
		usage(fmt.Sprintf("Invalid output '%s' (must be 'text', 'json' or 'export')", outputFormat))
	}

	logger := initLogger()

	in := sumUC.Input{Level: level}
	var contentFetcher sumUC.ContentFetcher
	if url != "" {
		fetchCfg, err := fetcher.LoadConfigFromEnv()
		if err != nil {
			logger.Error("failed to load content fetch configuration", slog.Any("error", err))
			os.Exit(1)
		}
		contentFetcher = fetcher.NewReadabilityFetcher(fetchCfg)
		in.URL = url
	} else {
		text, err := readInput(file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to read input: %v\n", err)
			os.Exit(1)
		}
		in.Text = text
	}

	svc := sumUC.NewService(sumUC.DefaultEngine(), contentFetcher, sumUC.DefaultConfig())

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	result, err := svc.Summarize(ctx, in)
	if err != nil {
		logger.Debug("summarize failed", slog.Any("error", err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	switch outputFormat {
	case "json":
		outputJSON(result)
	case "export":
		fmt.Print(sumUC.FormatPlainText(result))
	default:
		outputText(result)
	}
}

func usage(msg string) {
	fmt.Fprintf(os.Stderr, "Error: %s\n", msg)
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Usage: ai-summarize [-length short|medium|long] [-file path | -url URL] [-output text|json|export]")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Examples:")
	fmt.Fprintln(os.Stderr, "  cat article.txt | ai-summarize")
	fmt.Fprintln(os.Stderr, "  ai-summarize -length short -file article.txt")
	fmt.Fprintln(os.Stderr, "  ai-summarize -url https://go.dev/blog/go1.22 -output json")
	os.Exit(1)
}

// readInput reads the whole file, or stdin when path is empty.
func readInput(path string) (string, error) {
	if path == "" {
		b, err := io.ReadAll(os.Stdin)
		return string(b), err
	}
	b, err := os.ReadFile(path)
	return string(b), err
}

// outputText prints the summary in human-readable format.
func outputText(r *entity.SummaryResult) {
	fmt.Printf("Summary (%d of %d words, %d%% reduction):\n", r.WordCount.Summary, r.WordCount.Original, r.WordCount.Reduction)
	fmt.Printf("%s\n", r.Summary)

	if len(r.KeyPoints) > 0 {
		fmt.Printf("\nKey Points:\n")
		for i, kp := range r.KeyPoints {
			fmt.Printf("%d. %s\n", i+1, kp)
		}
	}
}

// outputJSON prints the result in the same shape as POST /api/summarize.
func outputJSON(r *entity.SummaryResult) {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(r); err != nil {
		fmt.Fprintf(os.Stderr, "Error: Failed to encode JSON: %v\n", err)
		os.Exit(1)
	}
}

// initLogger logs to stderr so stdout carries only the result.
func initLogger() *slog.Logger {
	logger := logging.New(os.Stderr, logging.ParseLevel(os.Getenv("LOG_LEVEL")), os.Getenv("LOG_FORMAT"))
	slog.SetDefault(logger)
	return logger
}
