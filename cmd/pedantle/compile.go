package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mariaschitik/ru-pedantle/store"
)

const (
	compileGob    = "gob"
	compileSQLite = "sqlite"
)

func newCompileCommand(opts *rootOptions) *cobra.Command {
	var format, out string

	cmd := &cobra.Command{
		Use:   "compile",
		Short: "Convert the JSON corpus into a gob snapshot or a SQLite database",
		RunE: func(cmd *cobra.Command, _ []string) error {
			corpus, err := loadJSONCorpus(opts.settings)
			if err != nil {
				return err
			}

			switch format {
			case compileGob:
				if out == "" {
					out = opts.settings.Corpus.SnapshotPath
				}
				return store.SaveSnapshot(out, corpus)
			case compileSQLite:
				if out == "" {
					out = opts.settings.Corpus.SQLitePath
				}
				return store.SaveSQLite(cmd.Context(), out, corpus)
			default:
				return fmt.Errorf("unknown format %q (must be %q or %q)", format, compileGob, compileSQLite)
			}
		},
	}

	cmd.Flags().StringVar(&format, "format", compileGob, "output format: gob or sqlite")
	cmd.Flags().StringVar(&out, "out", "", "output path (defaults to the configured corpus path)")
	return cmd
}
