package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "manualkb",
	Short: "Convert owner's manuals into a structured knowledge base",
	Long: `manualkb parses plain-text owner's manuals (PDF, text, markdown, HTML, DOCX),
detects chapter headings, groups chapters into fixed sections, extracts the
table of contents and control commands, and renders JSON and markdown
knowledge-base files.`,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
