package search

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/bethropolis/struct/internal/ignore"
	"github.com/bethropolis/struct/internal/walker"
)

func buildTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for rel, content := range files {
		p := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

func rels(matches []Match) []string {
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.Rel)
	}
	return out
}

func TestSearchBypassesIgnoreRules(t *testing.T) {
	root := buildTree(t, map[string]string{
		"node_modules/pkg/.env": "SECRET=1",
		"app/prod.env":          "A=1",
		"app/main.go":           "package main",
	})

	// the tree view hides node_modules entirely
	w, err := walker.New(root, ignore.New())
	if err != nil {
		t.Fatal(err)
	}
	for ev := range w.Events() {
		if ev.Kind != walker.KindIgnoredSummary && strings.Contains(ev.Path, "node_modules") {
			t.Fatalf("walker exposed %s", ev.Path)
		}
	}

	matches, err := Search(root, "*.env", 0)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	want := []string{"app/prod.env", "node_modules/pkg/.env"}
	if got := rels(matches); !reflect.DeepEqual(got, want) {
		t.Fatalf("matches = %v, want %v", got, want)
	}
}

func TestSearchDepth(t *testing.T) {
	root := buildTree(t, map[string]string{
		"a.txt":       "1",
		"x/b.txt":     "2",
		"x/y/c.txt":   "3",
		"x/y/z/d.txt": "4",
	})
	cases := []struct {
		depth int
		want  []string
	}{
		{1, []string{"a.txt"}},
		{2, []string{"x/b.txt", "a.txt"}},
		{0, []string{"x/y/z/d.txt", "x/y/c.txt", "x/b.txt", "a.txt"}},
	}
	for _, c := range cases {
		matches, err := Search(root, "*.txt", c.depth)
		if err != nil {
			t.Fatal(err)
		}
		if got := rels(matches); !reflect.DeepEqual(got, c.want) {
			t.Errorf("depth %d: got %v, want %v", c.depth, got, c.want)
		}
	}
}

func TestSearchExactName(t *testing.T) {
	root := buildTree(t, map[string]string{"Makefile": "", "sub/Makefile": "", "sub/makefile.bak": ""})
	matches, err := Search(root, "Makefile", 0)
	if err != nil {
		t.Fatal(err)
	}
	if got := rels(matches); !reflect.DeepEqual(got, []string{"sub/Makefile", "Makefile"}) {
		t.Fatalf("got %v", got)
	}
}

func TestSearchFileRoot(t *testing.T) {
	root := buildTree(t, map[string]string{"notes.md": "hello"})
	file := filepath.Join(root, "notes.md")

	matches, err := Search(file, "*.md", 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) != 1 || matches[0].Name != "notes.md" || matches[0].Size != 5 {
		t.Fatalf("matches = %+v", matches)
	}

	matches, err = Search(file, "*.go", 0)
	if err != nil || len(matches) != 0 {
		t.Fatalf("non-matching file root: %v, %v", matches, err)
	}
}

func TestSearchWalkOrder(t *testing.T) {
	root := buildTree(t, map[string]string{
		"b.env":     "",
		"sub/a.env": "",
		"C.env":     "",
	})
	matches, err := Search(root, "*.env", 0)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"sub/a.env", "b.env", "C.env"}
	if got := rels(matches); !reflect.DeepEqual(got, want) {
		t.Fatalf("matches = %v, want %v", got, want)
	}
}

func TestSearchExecutable(t *testing.T) {
	root := buildTree(t, map[string]string{"run.sh": "#!/bin/sh", "lib.sh": ""})
	if err := os.Chmod(filepath.Join(root, "run.sh"), 0o755); err != nil {
		t.Fatal(err)
	}
	matches, err := Search(root, "*.sh", 0)
	if err != nil {
		t.Fatal(err)
	}
	got := map[string]bool{}
	for _, m := range matches {
		got[m.Name] = m.Executable
	}
	if !got["run.sh"] || got["lib.sh"] {
		t.Fatalf("executable flags = %v", got)
	}
}

func TestSearchMissingRoot(t *testing.T) {
	_, err := Search(filepath.Join(t.TempDir(), "missing"), "*", 0)
	if !errors.Is(err, walker.ErrPathNotFound) {
		t.Fatalf("err = %v, want ErrPathNotFound", err)
	}
}

func TestSearchDirectoriesAreNotMatched(t *testing.T) {
	root := buildTree(t, map[string]string{"logs/today.txt": ""})
	matches, err := Search(root, "logs", 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) != 0 {
		t.Fatalf("directory matched: %v", rels(matches))
	}
}

func TestBuildTreeAndRender(t *testing.T) {
	matches := []Match{
		{Rel: "src/api/handler.go", Name: "handler.go"},
		{Rel: "src/main.go", Name: "main.go"},
		{Rel: "tools.go", Name: "tools.go"},
	}
	tree := BuildTree(matches)

	if len(tree.Children) != 2 || tree.Children[0].Name != "src" || tree.Children[1].Match == nil {
		t.Fatalf("unexpected top level: %+v", tree.Children)
	}
	src := tree.Children[0]
	if len(src.Children) != 2 || src.Children[0].Name != "api" {
		t.Fatalf("unexpected src children: %+v", src.Children)
	}

	out := tree.Render("proj", func(m Match) string { return m.Name })
	for _, want := range []string{"proj", "src/", "api/", "handler.go", "main.go", "tools.go"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q:\n%s", want, out)
		}
	}
	if strings.Index(out, "handler.go") > strings.Index(out, "tools.go") {
		t.Errorf("render lost match order:\n%s", out)
	}
}

func TestBuildTreeEmpty(t *testing.T) {
	if tree := BuildTree(nil); len(tree.Children) != 0 {
		t.Fatalf("empty input produced %+v", tree.Children)
	}
}
