// Package main provides the entry point for the ResumeRAG HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resumerag",
	Short: "ResumeRAG job and resume matching API",
	Long:  "ResumeRAG stores job postings and candidate resumes, enriches them with extracted skills, and ranks resumes against jobs over a REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
