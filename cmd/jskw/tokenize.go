package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"jskw/internal/diagfmt"
	"jskw/internal/driver"
	"jskw/internal/source"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.js",
	Short: "Print the word-level token stream of a JavaScript file",
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	addModeFlags(tokenizeCmd)
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	tokenizeCmd.Flags().Bool("no-detect-strict", false, "ignore \"use strict\" directives")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	st, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	fs := source.NewFileSet()
	id, err := fs.LoadWith(args[0], source.LoadOptions{NFC: st.opts.NFC})
	if err != nil {
		return fmt.Errorf("load %s: %w", args[0], err)
	}
	opts := st.opts
	opts.KeepTokens = true
	res := driver.Classify(cmd.Context(), fs.Get(id), opts)

	// Диагностику выводим в stderr
	if res.Bag.Len() > 0 {
		res.Bag.Sort()
		popts := diagfmt.PrettyOpts{Color: useColor(st.cfg.Output.Color, os.Stderr), Context: 1, ShowNotes: true}
		if err := diagfmt.Pretty(cmd.ErrOrStderr(), res.Bag.Items(), fs, "", popts); err != nil {
			return err
		}
	}

	switch st.format {
	case "json":
		return diagfmt.FormatTokensJSON(cmd.OutOrStdout(), res.Tokens)
	default:
		return diagfmt.FormatTokensPretty(cmd.OutOrStdout(), res.Tokens, fs)
	}
}
