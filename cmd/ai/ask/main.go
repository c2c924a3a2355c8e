// Package main provides a CLI command for document Q&A.
// Usage: ai-ask "question" [-doc path]... [-output json]
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"ai-toolkit/internal/domain/entity"
	"ai-toolkit/internal/infra/docextract"
	"ai-toolkit/internal/infra/llm"
	"ai-toolkit/internal/observability/logging"
	asstUC "ai-toolkit/internal/usecase/assistant"
)

func main() {
	var (
		docPaths     []string
		chat         bool
		outputFormat string
	)

	flag.Func("doc", "Document to use as context (repeatable)", func(s string) error {
		docPaths = append(docPaths, s)
		return nil
	})
	flag.BoolVar(&chat, "chat", false, "Ask the website help assistant instead of the documents")
	flag.StringVar(&outputFormat, "output", "text", "Output format: text or json")
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "Error: Question is required")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Usage: ai-ask \"question\" [-doc path]... [-chat] [-output json]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Examples:")
		fmt.Fprintln(os.Stderr, "  ai-ask -doc report.html \"What are the key findings?\"")
		fmt.Fprintln(os.Stderr, "  ai-ask -doc a.txt -doc b.txt \"Compare the two proposals\" -output json")
		fmt.Fprintln(os.Stderr, "  ai-ask -chat \"How do I use the summarizer?\"")
		os.Exit(1)
	}
	question := strings.Join(args, " ")

	logger := initLogger()

	provider, err := llm.New(llm.LoadConfig())
	if err != nil {
		logger.Error("failed to create assistant provider", slog.Any("error", err))
		fmt.Fprintf(os.Stderr, "Error: Invalid assistant configuration: %v\n", err)
		os.Exit(1)
	}

	cfg := asstUC.DefaultConfig()
	svc := asstUC.NewService(provider, docextract.NewHTMLExtractor(), cfg)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout+5*time.Second)
	defer cancel()

	var reply any
	if chat {
		reply, err = svc.Chat(ctx, question)
	} else {
		var docs []entity.Document
		docs, err = loadDocuments(docPaths)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		logger.Info("Asking question",
			slog.String("provider", svc.ProviderName()),
			slog.Int("documents", len(docs)))
		reply, err = svc.AnswerQuestion(ctx, question, docs)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if outputFormat == "json" {
		outputJSON(reply)
		return
	}
	switch r := reply.(type) {
	case *asstUC.QAReply:
		outputQA(question, r)
	case *asstUC.ChatReply:
		fmt.Printf("%s\n", r.Response)
		printSuggestions(r.Suggestions)
	}
}

// loadDocuments reads each file into a Document named after its base name.
func loadDocuments(paths []string) ([]entity.Document, error) {
	docs := make([]entity.Document, 0, len(paths))
	for _, p := range paths {
		b, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("read document: %w", err)
		}
		docs = append(docs, entity.Document{
			ID:      uuid.NewString(),
			Name:    filepath.Base(p),
			Content: string(b),
		})
	}
	return docs, nil
}

// outputQA prints a Q&A reply in human-readable format.
func outputQA(question string, r *asstUC.QAReply) {
	fmt.Printf("Question: %s\n\n", question)
	fmt.Printf("Answer (Confidence: %.0f%%):\n", r.Confidence*100)
	fmt.Printf("%s\n", r.Response)

	if len(r.Sources) > 0 {
		fmt.Printf("\nSources:\n")
		for i, src := range r.Sources {
			fmt.Printf("%d. %s\n", i+1, src)
		}
	}
	printSuggestions(r.Suggestions)
}

func printSuggestions(suggestions []string) {
	if len(suggestions) == 0 {
		return
	}
	fmt.Printf("\nSuggestions:\n")
	for _, s := range suggestions {
		fmt.Printf("- %s\n", s)
	}
}

// outputJSON prints the reply in the same shape as the HTTP API.
func outputJSON(v any) {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		fmt.Fprintf(os.Stderr, "Error: Failed to encode JSON: %v\n", err)
		os.Exit(1)
	}
}

// initLogger logs to stderr so stdout carries only the reply.
func initLogger() *slog.Logger {
	logger := logging.New(os.Stderr, logging.ParseLevel(os.Getenv("LOG_LEVEL")), os.Getenv("LOG_FORMAT"))
	slog.SetDefault(logger)
	return logger
}
