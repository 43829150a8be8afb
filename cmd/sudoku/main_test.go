package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const fixturePuzzle = "7...54..1.1.9.6....64....39....3.5...3..2..1...6.9....87....24....5.9.8.4..28...3"

func TestSolveCommand(t *testing.T) {
	root := newRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"solve", fixturePuzzle})
	if err := root.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.HasPrefix(out.String(), "798354621\n") {
		t.Errorf("unexpected output:\n%s", out.String())
	}
}

func TestSolveCommandFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "puzzles.txt")
	content := "# two copies of the same puzzle\n" + fixturePuzzle + "\n\n" + fixturePuzzle + "\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	root := newRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"solve", "--file", path})
	if err := root.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if got := strings.Count(out.String(), "798354621\n"); got != 2 {
		t.Errorf("solved %d puzzles, want 2; output:\n%s", got, out.String())
	}
}

func TestSolveCommandNoArgs(t *testing.T) {
	root := newRootCommand()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"solve"})
	if err := root.Execute(); err == nil {
		t.Fatal("Execute() error = nil, want an error without puzzles")
	}
}
