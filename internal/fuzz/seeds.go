package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"jskw/internal/token"
)

const maxSeedBytes = 64 << 10 // 64 KiB

var snippetSeeds = []string{
	"",
	"var x = 1;",
	"'use strict'; let yield = 1;",
	"function f(a, b) { return a instanceof b }",
	"class extends Base {}",
	"`a${ `b${c}` }d` /* if */ // else",
	"x.if = y?.return;",
	"#!/usr/bin/env node\nletx = await;",
	"\"unterminated\nnull",
	"1.5e+3 .5 0x",
}

func addCorpusSeeds(f *testing.F) {
	for _, s := range snippetSeeds {
		f.Add([]byte(s))
	}
	for _, e := range token.Table() {
		f.Add([]byte(e.Spelling))
		f.Add([]byte(e.Spelling + "x"))
		f.Add([]byte(" " + e.Spelling[:len(e.Spelling)-1]))
	}
	addTestdataSeeds(f)
}

// addTestdataSeeds adds every script under the repository testdata tree.
func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() {
			return nil
		}
		switch filepath.Ext(path) {
		case ".js", ".mjs", ".cjs":
		default:
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
}

func clampSeed(src []byte) []byte {
	if len(src) > maxSeedBytes {
		src = src[:maxSeedBytes]
	}
	return append([]byte(nil), src...)
}
