package app

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bethropolis/struct/internal/config"
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

type fakeCopier struct {
	text string
	err  error
}

func (f *fakeCopier) Copy(text string) error {
	f.text = text
	return f.err
}

func testConfig(t *testing.T, root string) *config.Config {
	cfg := config.New()
	cfg.RootDir = root
	cfg.IgnoreFile = filepath.Join(t.TempDir(), "ignores.txt")
	cfg.LogLevel = "none"
	return cfg
}

func run(t *testing.T, cfg *config.Config, opts ...Option) string {
	t.Helper()
	var out, errOut bytes.Buffer
	a, err := New(cfg, append([]Option{WithStdout(&out), WithStderr(&errOut)}, opts...)...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer a.Close()
	if err := a.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	return out.String()
}

func TestRunTree(t *testing.T) {
	root := buildTree(t, map[string]string{
		"src/main.go":       "package main",
		"node_modules/a.js": "a",
	})
	out := run(t, testConfig(t, root))

	want := root + "\n" +
		"├── node_modules/ (1 files ignored)\n" +
		"└── src/\n" +
		"    └── main.go\n"
	if out != want {
		t.Fatalf("got:\n%s\nwant:\n%s", out, want)
	}
}

func TestRunTreeUsesStoredPatterns(t *testing.T) {
	root := buildTree(t, map[string]string{"app.log": "l", "main.go": "m"})
	cfg := testConfig(t, root)

	var sink bytes.Buffer
	a, err := New(cfg, WithStdout(&sink))
	if err != nil {
		t.Fatal(err)
	}
	if err := a.AddPattern("*.log"); err != nil {
		t.Fatal(err)
	}

	out := run(t, cfg)
	if strings.Contains(out, "app.log") || !strings.Contains(out, "main.go") {
		t.Fatalf("stored pattern not applied:\n%s", out)
	}

	cfg.NoIgnore = "config"
	if out := run(t, cfg); !strings.Contains(out, "app.log") {
		t.Fatalf("-n config should bring app.log back:\n%s", out)
	}
}

func TestRunSummary(t *testing.T) {
	root := buildTree(t, map[string]string{"docs/guide.md": "abc"})
	cfg := testConfig(t, root)
	cfg.Mode = config.ModeSummary
	out := run(t, cfg)
	if !strings.Contains(out, "docs/\n") || !strings.Contains(out, "types:    md(1)") {
		t.Fatalf("unexpected summary:\n%s", out)
	}
}

func TestRunSearch(t *testing.T) {
	root := buildTree(t, map[string]string{"node_modules/pkg/.env": "x", "main.go": "m"})
	cfg := testConfig(t, root)
	cfg.Mode = config.ModeSearch
	cfg.SearchPattern = "*.env"
	cfg.Flat = true
	out := run(t, cfg)
	if !strings.Contains(out, filepath.Join(root, "node_modules", "pkg", ".env")) {
		t.Fatalf("search missed the ignored file:\n%s", out)
	}
}

func TestCopyToClipboard(t *testing.T) {
	root := buildTree(t, map[string]string{"main.go": "m"})
	cfg := testConfig(t, root)
	cfg.Copy = true

	c := &fakeCopier{}
	if out := run(t, cfg, WithCopier(c)); out != "" {
		t.Fatalf("copy mode wrote to stdout: %q", out)
	}
	if !strings.Contains(c.text, "main.go") {
		t.Fatalf("clipboard got %q", c.text)
	}

	failing := &fakeCopier{err: errors.New("no clipboard")}
	if out := run(t, cfg, WithCopier(failing)); !strings.Contains(out, "main.go") {
		t.Fatalf("failed copy should fall back to stdout, got %q", out)
	}
}

func TestOutputFile(t *testing.T) {
	root := buildTree(t, map[string]string{"main.go": "m"})
	cfg := testConfig(t, root)
	cfg.OutputFile = filepath.Join(t.TempDir(), "tree.txt")

	if out := run(t, cfg); out != "" {
		t.Fatalf("file mode wrote to stdout: %q", out)
	}
	data, err := os.ReadFile(cfg.OutputFile)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "└── main.go") {
		t.Fatalf("file content = %q", data)
	}
}

func TestPatternCommands(t *testing.T) {
	cfg := testConfig(t, t.TempDir())
	var out bytes.Buffer
	a, err := New(cfg, WithStdout(&out))
	if err != nil {
		t.Fatal(err)
	}

	if err := a.AddPattern("*.log"); err != nil {
		t.Fatal(err)
	}
	if err := a.AddPattern("coverage"); err != nil {
		t.Fatal(err)
	}
	out.Reset()
	if err := a.ListPatterns(); err != nil {
		t.Fatal(err)
	}
	if out.String() != "*.log\ncoverage\n" {
		t.Fatalf("list = %q", out.String())
	}

	if err := a.RemovePattern("coverage"); err != nil {
		t.Fatal(err)
	}
	if err := a.RemovePattern("coverage"); err == nil {
		t.Fatal("removing a missing pattern should fail")
	}

	if err := a.ClearPatterns(); err != nil {
		t.Fatal(err)
	}
	out.Reset()
	if err := a.ListPatterns(); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out.String(), "no patterns in ") {
		t.Fatalf("list after clear = %q", out.String())
	}
}

func TestRunMissingRoot(t *testing.T) {
	cfg := testConfig(t, filepath.Join(t.TempDir(), "missing"))
	a, err := New(cfg, WithStdout(&bytes.Buffer{}), WithStderr(&bytes.Buffer{}))
	if err != nil {
		t.Fatal(err)
	}
	if err := a.Run(); err == nil {
		t.Fatal("Run should fail for a missing root")
	}
}
