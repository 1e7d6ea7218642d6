package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"jskw/internal/diagfmt"
	"jskw/internal/token"
)

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Print the reserved-word table",
	Args:  cobra.NoArgs,
	RunE:  runTable,
}

func init() {
	tableCmd.Flags().String("tier", "", "only words of this tier (keyword|future-reserved-lax|future-reserved-strict|literal|contextual)")
	tableCmd.Flags().String("reserved-in", "", "only words reserved in this mode (strict|sloppy)")
	tableCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runTable(cmd *cobra.Command, args []string) error {
	st, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	tierName, err := cmd.Flags().GetString("tier")
	if err != nil {
		return fmt.Errorf("failed to get tier flag: %w", err)
	}
	modeName, err := cmd.Flags().GetString("reserved-in")
	if err != nil {
		return fmt.Errorf("failed to get reserved-in flag: %w", err)
	}

	var words []token.Word
	switch {
	case tierName != "":
		tier, err := token.ParseTier(tierName)
		if err != nil {
			return err
		}
		words = token.Members(tier)
	case modeName != "":
		mode, err := token.ParseMode(modeName)
		if err != nil {
			return err
		}
		words = token.ReservedWords(mode)
	default:
		for _, e := range token.Table() {
			words = append(words, e.Word)
		}
	}

	switch strings.ToLower(st.format) {
	case "json":
		return diagfmt.TableJSON(cmd.OutOrStdout(), words)
	default:
		return diagfmt.TablePretty(cmd.OutOrStdout(), words, st.color)
	}
}
