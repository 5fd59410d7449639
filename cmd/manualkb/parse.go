package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/dgallion1/manualkb/internal/commands"
	"github.com/dgallion1/manualkb/internal/ingest"
	"github.com/dgallion1/manualkb/internal/manual"
	"github.com/dgallion1/manualkb/internal/pipeline"
	"github.com/dgallion1/manualkb/internal/segment"
	"github.com/dgallion1/manualkb/internal/store"

	"github.com/dgallion1/manualkb/internal/kb"
)

var (
	parseOutDir     string
	parseDBPath     string
	parseNoFallback bool
)

var parseCmd = &cobra.Command{
	Use:   "parse <manual-file>...",
	Short: "Parse manuals and write knowledge-base files",
	Long: `Parse one or more manual files into chapters, sections, TOC and commands,
then write JSON and markdown knowledge-base files to the output directory.
With --db, also save each document to the SQLite registry.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var st *store.Store
		if parseDBPath != "" {
			var err error
			st, err = store.Open(parseDBPath)
			if err != nil {
				return fmt.Errorf("open database: %w", err)
			}
			defer st.Close()
		}

		writer := kb.NewWriter(parseOutDir)
		segmenter := segment.New()
		extractor := commands.NewExtractor(commands.DefaultConfig())

		var failed int
		for _, path := range args {
			doc, files, err := parseOne(cmd, path, segmenter, extractor, writer, st)
			if err != nil {
				FormatError(cmd.OutOrStdout(), fmt.Errorf("%s: %w", path, err))
				failed++
				continue
			}
			FormatParseSummary(cmd.OutOrStdout(), doc, filepath.Base(path), files)
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d manuals failed", failed, len(args))
		}
		return nil
	},
}

func parseOne(cmd *cobra.Command, path string, segmenter *segment.Segmenter, extractor *commands.Extractor, writer *kb.Writer, st *store.Store) (*manual.Document, []string, error) {
	filename := filepath.Base(path)
	if !ingest.IsSupportedExtension(filename) {
		return nil, nil, fmt.Errorf("unsupported file type: %s", filepath.Ext(filename))
	}
	ing, err := ingest.ForFile(filename)
	if err != nil {
		return nil, nil, err
	}
	if pdf, ok := ing.(*ingest.PDFIngestor); ok {
		pdf.FallbackPdftotext = !parseNoFallback
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	pages, err := ing.Pages(f, filename)
	if err != nil {
		return nil, nil, fmt.Errorf("parse: %w", err)
	}

	doc := segmenter.Segment(pages)
	doc.Model = manual.DetectModel(filename)
	doc.ManualType = "owners"
	doc.Commands = extractor.Extract(pages)

	if st != nil {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, nil, err
		}
		hash := pipeline.ContentHashHex(data)
		meta := store.DocumentMeta{
			DocID:       hash[:16],
			Filename:    filename,
			Model:       string(doc.Model),
			ManualType:  doc.ManualType,
			ContentHash: hash,
			CreatedAt:   time.Now(),
		}
		if err := st.SaveDocument(cmd.Context(), meta, doc); err != nil {
			return nil, nil, fmt.Errorf("save: %w", err)
		}
	}

	files, err := writer.Write(doc)
	if err != nil {
		return nil, nil, fmt.Errorf("write kb: %w", err)
	}
	return doc, files, nil
}

func init() {
	parseCmd.Flags().StringVarP(&parseOutDir, "out", "o", "docs/kb", "Output directory for knowledge-base files")
	parseCmd.Flags().StringVar(&parseDBPath, "db", "", "SQLite database path (omit to skip persistence)")
	parseCmd.Flags().BoolVar(&parseNoFallback, "no-pdftotext", false, "Disable pdftotext fallback for PDFs")
	rootCmd.AddCommand(parseCmd)
}
