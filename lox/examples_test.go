package lox

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Each testdata script carries its expected print output in leading
// "// expect:" comment lines.
func TestExampleScripts(t *testing.T) {
	entries, err := os.ReadDir("testdata")
	if err != nil {
		t.Fatalf("read testdata: %v", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".lox") {
			continue
		}
		name := entry.Name()
		t.Run(name, func(t *testing.T) {
			raw, err := os.ReadFile(filepath.Join("testdata", name))
			if err != nil {
				t.Fatalf("read script: %v", err)
			}
			source := string(raw)

			var expected strings.Builder
			for _, line := range strings.Split(source, "\n") {
				trimmed := strings.TrimSpace(line)
				if rest, ok := strings.CutPrefix(trimmed, "// expect: "); ok {
					expected.WriteString(rest)
					expected.WriteString("\n")
				}
			}

			var out bytes.Buffer
			engine := NewEngine(Config{Stdout: &out})
			if _, err := engine.Interpret(context.Background(), source); err != nil {
				t.Fatalf("run failed: %v", err)
			}
			if out.String() != expected.String() {
				t.Fatalf("output mismatch\nwant: %q\ngot:  %q", expected.String(), out.String())
			}
		})
	}
}
