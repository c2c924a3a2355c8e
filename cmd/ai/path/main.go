// Package main provides a CLI command for generating learning paths.
// Usage: ai-path "goal" [-level beginner|intermediate|advanced] [-hours 1-2|3-5|6-10|10+] [-output text|json]
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	lpUC "ai-toolkit/internal/usecase/learnpath"
)

func main() {
	var (
		level        string
		hours        string
		outputFormat string
	)

	flag.StringVar(&level, "level", "beginner", "Current level: beginner, intermediate or advanced")
	flag.StringVar(&hours, "hours", "3-5", "Hours per week: 1-2, 3-5, 6-10 or 10+")
	flag.StringVar(&outputFormat, "output", "text", "Output format: text or json")
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "Error: Goal is required")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Usage: ai-path \"goal\" [-level beginner|intermediate|advanced] [-hours 1-2|3-5|6-10|10+] [-output json]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Examples:")
		fmt.Fprintln(os.Stderr, "  ai-path \"Become a React developer\"")
		fmt.Fprintln(os.Stderr, "  ai-path \"Learn data analytics\" -hours 10+")
		fmt.Fprintln(os.Stderr, "  ai-path \"Learn Rust\" -level intermediate -output json")
		os.Exit(1)
	}

	path, err := lpUC.NewGenerator().Generate(context.Background(), lpUC.Request{
		Goal:           strings.Join(args, " "),
		Level:          lpUC.Level(level),
		TimeCommitment: lpUC.TimeCommitment(hours),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if lpUC.IsValidationError(err) {
			os.Exit(2)
		}
		os.Exit(1)
	}

	if outputFormat == "json" {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(path); err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to encode JSON: %v\n", err)
			os.Exit(1)
		}
		return
	}
	fmt.Print(lpUC.FormatPlainText(path))
}
