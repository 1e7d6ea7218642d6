package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"jskw/internal/ident"
	"jskw/internal/keyword"
	"jskw/internal/lexer"
	"jskw/internal/literal"
	"jskw/internal/parse"
	"jskw/internal/source"
	"jskw/internal/token"
)

var classifyCmd = &cobra.Command{
	Use:   "classify [flags] word...",
	Short: "Classify words against the reserved-word tiers",
	Long: `Classify reports, for every word, its tier, whether it is reserved in the
selected mode and whether it may be used as a binding name. Without
arguments words are read from stdin.`,
	RunE: runClassify,
}

func init() {
	addModeFlags(classifyCmd)
	classifyCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

type classification struct {
	Word     string `json:"word"`
	Tier     string `json:"tier"`
	Mode     string `json:"mode"`
	Matcher  string `json:"matcher"`
	Reserved bool   `json:"reserved"`
	Binding  bool   `json:"binding_name"`
	// Contextual: of/get/set/async, never reserved
	Contextual bool            `json:"contextual"`
	Literal    json.RawMessage `json:"literal,omitempty"`
	Failure    string          `json:"failure,omitempty"`
}

func runClassify(cmd *cobra.Command, args []string) error {
	st, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	words := args
	if len(words) == 0 {
		if words, err = readWords(cmd.InOrStdin()); err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
	}

	out := make([]classification, 0, len(words))
	for _, w := range words {
		out = append(out, classifyWord(w, st.opts.Mode, st.opts.Matcher))
	}

	if st.format == "json" {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}
	return printClassifications(cmd.OutOrStdout(), out)
}

func readWords(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	var words []string
	for sc.Scan() {
		words = append(words, sc.Text())
	}
	return words, sc.Err()
}

// classifyWord runs the chosen matcher over the whole word.
func classifyWord(w string, mode token.Mode, veto ident.Veto) classification {
	res := classification{
		Word:    w,
		Tier:    token.TierNone.String(),
		Mode:    mode.String(),
		Matcher: veto.String(),
		Binding: ident.IsBindingName(w, mode),
	}
	if e, ok := token.Lookup(w); ok {
		res.Tier = e.Tier.String()
	}

	fs := source.NewFileSet()
	f := fs.Get(fs.AddVirtual("<word>", []byte(w)))
	if _, rest, err := parse.Run(keyword.Contextual, f, 0); err == nil && rest.EOF() {
		res.Contextual = true
	}
	lc := lexer.NewCursor(f)
	if v, _, err := literal.Value(&lc); err == nil && lc.EOF() {
		res.Literal, _ = json.Marshal(v)
	}

	c := lexer.NewCursor(f)
	rec := keyword.ReservedWordDFA(mode)
	if veto == ident.VetoCombinator {
		rec = keyword.ReservedWord(mode)
	}
	sp, err := rec(&c)
	switch {
	case err != nil:
		if nm, ok := parse.AsNoMatch(err); ok {
			res.Failure = nm.Error()
		} else {
			res.Failure = err.Error()
		}
	case !c.EOF():
		res.Failure = fmt.Sprintf("reserved word %q followed by %q", sp.Text(f), c.Rest())
	default:
		res.Reserved = true
	}
	return res
}

func printClassifications(w io.Writer, items []classification) error {
	reserved := color.New(color.FgRed, color.Bold)
	free := color.New(color.FgGreen)
	for _, it := range items {
		verdict := free.Sprint("identifier")
		switch {
		case it.Reserved && it.Literal != nil:
			verdict = reserved.Sprintf("reserved literal %s (%s)", it.Literal, it.Mode)
		case it.Reserved:
			verdict = reserved.Sprintf("reserved (%s)", it.Mode)
		case it.Contextual:
			verdict = free.Sprint("identifier (contextual)")
		case !it.Binding:
			verdict = "not an identifier"
		}
		if _, err := fmt.Fprintf(w, "%-14s %-22s %s\n", it.Word, it.Tier, verdict); err != nil {
			return err
		}
	}
	return nil
}
