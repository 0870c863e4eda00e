// Package main provides the entry point for the document tailoring CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tailor",
	Short: "Automated resume and cover letter tailoring",
	Long:  "Tailor generates job-specific resumes and cover letters by extracting company, title, and keyword facts from job descriptions and substituting them into template placeholders.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
