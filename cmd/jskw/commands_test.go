package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"jskw/internal/ident"
	"jskw/internal/token"
)

func TestClassifyWord(t *testing.T) {
	cases := []struct {
		word     string
		mode     token.Mode
		tier     string
		reserved bool
		binding  bool
	}{
		{"if", token.ModeSloppy, "keyword", true, false},
		{"yield", token.ModeSloppy, "future-reserved-strict", false, true},
		{"yield", token.ModeStrict, "future-reserved-strict", true, false},
		{"await", token.ModeSloppy, "future-reserved-lax", true, false},
		{"null", token.ModeSloppy, "literal", true, false},
		{"of", token.ModeStrict, "contextual", false, true},
		{"letx", token.ModeStrict, "none", false, true},
		{"1abc", token.ModeSloppy, "none", false, false},
	}
	for _, veto := range []ident.Veto{ident.VetoAutomaton, ident.VetoCombinator} {
		for _, tc := range cases {
			got := classifyWord(tc.word, tc.mode, veto)
			if got.Tier != tc.tier || got.Reserved != tc.reserved || got.Binding != tc.binding {
				t.Fatalf("%s: classifyWord(%q, %s) = %+v, want tier=%s reserved=%v binding=%v",
					veto, tc.word, tc.mode, got, tc.tier, tc.reserved, tc.binding)
			}
			if !got.Reserved && got.Failure == "" {
				t.Fatalf("%s: classifyWord(%q) has no failure text", veto, tc.word)
			}
		}
	}
}

func TestClassifyWordContextualAndLiteral(t *testing.T) {
	for _, veto := range []ident.Veto{ident.VetoAutomaton, ident.VetoCombinator} {
		if got := classifyWord("async", token.ModeStrict, veto); !got.Contextual || got.Literal != nil {
			t.Fatalf("%s: async = %+v", veto, got)
		}
		if got := classifyWord("asyncx", token.ModeStrict, veto); got.Contextual {
			t.Fatalf("%s: asyncx marked contextual", veto)
		}
		for word, want := range map[string]string{"null": "null", "true": "true", "false": "false"} {
			got := classifyWord(word, token.ModeSloppy, veto)
			if string(got.Literal) != want || got.Contextual {
				t.Fatalf("%s: %s = %+v", veto, word, got)
			}
		}
		if got := classifyWord("nullable", token.ModeSloppy, veto); got.Literal != nil {
			t.Fatalf("%s: nullable has literal value %s", veto, got.Literal)
		}
	}
}

func TestClassifyWordTrailingInput(t *testing.T) {
	got := classifyWord("if(", token.ModeSloppy, ident.VetoAutomaton)
	if got.Reserved {
		t.Fatalf("expected %q not to be reserved as a whole", "if(")
	}
	if !strings.Contains(got.Failure, "followed by") {
		t.Fatalf("unexpected failure: %q", got.Failure)
	}
}

func TestReadWords(t *testing.T) {
	words, err := readWords(strings.NewReader(" if\tyield\n\nlet "))
	if err != nil {
		t.Fatalf("readWords: %v", err)
	}
	if strings.Join(words, ",") != "if,yield,let" {
		t.Fatalf("readWords = %v", words)
	}
}

func TestCollectScripts(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"a.js", "b.txt", "sub/c.mjs", "node_modules/d.js"} {
		p := filepath.Join(root, name)
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, []byte("var x;"), 0o600); err != nil {
			t.Fatal(err)
		}
	}
	explicit := filepath.Join(root, "b.txt")
	files, err := collectScripts([]string{root, explicit, filepath.Join(root, "a.js")})
	if err != nil {
		t.Fatalf("collectScripts: %v", err)
	}
	var rel []string
	for _, f := range files {
		r, _ := filepath.Rel(root, f)
		rel = append(rel, filepath.ToSlash(r))
	}
	if got := strings.Join(rel, ","); got != "a.js,sub/c.mjs,b.txt" {
		t.Fatalf("collectScripts = %s", got)
	}
}

func TestUIModeFlagValue(t *testing.T) {
	for in, want := range map[string]uiMode{"": uiModeAuto, "AUTO": uiModeAuto, "on": uiModeOn, " off ": uiModeOff} {
		var m uiMode
		if err := m.Set(in); err != nil || m != want {
			t.Fatalf("Set(%q) = %q, %v", in, m, err)
		}
	}
	var m uiMode
	if err := m.Set("sometimes"); err == nil {
		t.Fatal("expected error for unknown ui mode")
	}
	if !uiModeOn.useTUI("json", nil) || uiModeOff.useTUI("pretty", os.Stdout) {
		t.Fatal("explicit ui modes must win over format")
	}
	if uiModeAuto.useTUI("pretty", nil) {
		t.Fatal("auto without a terminal must stay off")
	}
}

func TestExplicitFalseBoolFlagsOverrideConfig(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "jskw.toml")
	body := "[scan]\ncross_check = true\nnfc = true\ndetect_strict = false\n"
	if err := os.WriteFile(cfgPath, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}

	root := &cobra.Command{Use: "jskw"}
	root.PersistentFlags().String("color", "off", "")
	root.PersistentFlags().String("config", cfgPath, "")
	root.PersistentFlags().Bool("timings", false, "")
	root.PersistentFlags().Int("max-diagnostics", 100, "")
	sub := &cobra.Command{Use: "scan"}
	addModeFlags(sub)
	sub.Flags().Bool("cross-check", false, "")
	sub.Flags().Bool("no-detect-strict", false, "")
	sub.Flags().Bool("nfc", false, "")
	root.AddCommand(sub)
	if err := sub.Flags().Parse([]string{"--cross-check=false", "--nfc=false", "--no-detect-strict=false"}); err != nil {
		t.Fatal(err)
	}

	st, err := loadSettings(sub)
	if err != nil {
		t.Fatal(err)
	}
	if st.opts.CrossCheck || st.opts.NFC || !st.opts.DetectStrict {
		t.Fatalf("opts = %+v", st.opts)
	}
}
