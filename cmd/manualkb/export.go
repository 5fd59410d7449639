package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dgallion1/manualkb/internal/kb"
	"github.com/dgallion1/manualkb/internal/store"
)

var (
	exportOutDir string
	exportDBPath string
)

var exportCmd = &cobra.Command{
	Use:   "export <doc-id>",
	Short: "Re-render knowledge-base files for a stored document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := store.Open(exportDBPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		meta, doc, err := st.GetDocument(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		files, err := kb.NewWriter(exportOutDir).Write(doc)
		if err != nil {
			return fmt.Errorf("write kb: %w", err)
		}
		FormatParseSummary(cmd.OutOrStdout(), doc, meta.Filename, files)
		return nil
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored documents",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := store.Open(exportDBPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		metas, err := st.ListDocuments(cmd.Context())
		if err != nil {
			return err
		}
		if len(metas) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), dimStyle.Render("no documents"))
			return nil
		}
		for _, m := range metas {
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  %s  %s\n",
				titleStyle.Render(m.DocID),
				m.Model,
				m.Filename,
				dimStyle.Render(m.CreatedAt.Format("2006-01-02 15:04")),
			)
		}
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutDir, "out", "o", "docs/kb", "Output directory for knowledge-base files")
	exportCmd.Flags().StringVar(&exportDBPath, "db", "data/manualkb.db", "SQLite database path")
	listCmd.Flags().StringVar(&exportDBPath, "db", "data/manualkb.db", "SQLite database path")
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(listCmd)
}
