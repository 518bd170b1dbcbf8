package stats

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/bethropolis/struct/internal/ignore"
)

// buildTree creates files from a map of slash paths to contents. A path
// ending in "/" creates an empty directory.
func buildTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for rel, content := range files {
		p := filepath.Join(root, filepath.FromSlash(rel))
		if strings.HasSuffix(rel, "/") {
			if err := os.MkdirAll(p, 0o755); err != nil {
				t.Fatal(err)
			}
			continue
		}
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

func scenarioTree(t *testing.T) string {
	return buildTree(t, map[string]string{
		"src/main.x":  strings.Repeat("m", 10),
		"src/lib.x":   strings.Repeat("l", 20),
		"venv/a.py":   strings.Repeat("a", 100),
		"venv/b.py":   strings.Repeat("b", 150),
		"venv/lib/c":  strings.Repeat("c", 250),
		"README.MD":   "hi",
		"src/app.log": "log",
	})
}

func TestCollectScenario(t *testing.T) {
	root := scenarioTree(t)
	r := ignore.New(ignore.WithCLIPatterns([]string{"*.log"}))
	s := New(r).Collect(root)

	if !s.IsDir {
		t.Fatal("root should be a directory")
	}
	if s.TotalFiles != 7 || s.TotalDirs != 3 {
		t.Errorf("total = %d files, %d dirs; want 7, 3", s.TotalFiles, s.TotalDirs)
	}
	if s.Size != 10+20+100+150+250+2+3 {
		t.Errorf("size = %d", s.Size)
	}
	// src and venv are visible dirs; venv/lib is behind an ignored dir
	if s.VisibleDirs != 2 {
		t.Errorf("visible dirs = %d, want 2", s.VisibleDirs)
	}
	if s.VisibleFiles != 3 || s.VisibleSize != 32 {
		t.Errorf("visible = %d files, %d bytes; want 3, 32", s.VisibleFiles, s.VisibleSize)
	}
	wantExt := map[string]int{"x": 2, "md": 1}
	if !reflect.DeepEqual(s.Extensions, wantExt) {
		t.Errorf("extensions = %v, want %v", s.Extensions, wantExt)
	}
	wantIgnored := []IgnoredDir{{Name: "venv", Files: 3, Size: 500}}
	if !reflect.DeepEqual(s.Ignored, wantIgnored) {
		t.Errorf("ignored = %+v, want %+v", s.Ignored, wantIgnored)
	}
	if !s.HasHidden() {
		t.Error("HasHidden should be true")
	}
}

func TestCollectIgnoredDirectoryItself(t *testing.T) {
	root := scenarioTree(t)
	s := New(ignore.New()).Collect(filepath.Join(root, "venv"))
	if s.TotalFiles != 3 || s.Size != 500 {
		t.Fatalf("venv = %d files, %d bytes; want 3, 500", s.TotalFiles, s.Size)
	}
}

func TestCollectFile(t *testing.T) {
	root := scenarioTree(t)
	s := New(ignore.New()).Collect(filepath.Join(root, "src", "lib.x"))
	if s.IsDir || s.Size != 20 {
		t.Fatalf("file summary = %+v", s)
	}
}

func TestCollectMissingPath(t *testing.T) {
	s := New(nil).Collect(filepath.Join(t.TempDir(), "missing"))
	if !s.Denied() || s.TotalFiles != 0 {
		t.Fatalf("missing path summary = %+v", s)
	}
}

func TestVisibleNeverExceedsTotal(t *testing.T) {
	trees := []map[string]string{
		{"a/b/c/d.txt": "x", "node_modules/x/y.js": "y", "e.pyc": "z"},
		{"empty/": "", "build/out.bin": "0101", "src/build/keep.go": "k"},
		{"one.txt": "1"},
		{},
	}
	resolvers := []*ignore.Resolver{
		ignore.New(),
		ignore.New(ignore.WithCLIPatterns([]string{"*"})),
		ignore.CreateDisabledResolver(),
	}
	for i, files := range trees {
		root := buildTree(t, files)
		for j, r := range resolvers {
			s := New(r).Collect(root)
			if s.VisibleFiles+s.VisibleDirs > s.TotalFiles+s.TotalDirs {
				t.Errorf("tree %d resolver %d: visible %d+%d > total %d+%d",
					i, j, s.VisibleFiles, s.VisibleDirs, s.TotalFiles, s.TotalDirs)
			}
			if s.VisibleSize > s.Size {
				t.Errorf("tree %d resolver %d: visible size %d > total %d", i, j, s.VisibleSize, s.Size)
			}
		}
	}
}

func TestDisabledResolverSeesEverything(t *testing.T) {
	root := scenarioTree(t)
	s := New(ignore.CreateDisabledResolver()).Collect(root)
	if s.HasHidden() {
		t.Fatalf("nothing should be hidden: %+v", s)
	}
	if len(s.Ignored) != 0 {
		t.Fatalf("ignored = %+v", s.Ignored)
	}
}

func TestSymlinksAreLeaves(t *testing.T) {
	root := buildTree(t, map[string]string{"real/inner.txt": "abc"})
	if err := os.Symlink(filepath.Join(root, "real"), filepath.Join(root, "loop")); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}
	s := New(nil).Collect(root)
	// real/, real/inner.txt and the link counted once as a file
	if s.TotalDirs != 1 || s.TotalFiles != 2 {
		t.Fatalf("got %d dirs, %d files; want 1, 2", s.TotalDirs, s.TotalFiles)
	}
}

func TestPermissionDeniedIsLocal(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced for root")
	}
	root := buildTree(t, map[string]string{"locked/secret.txt": "s", "open/file.txt": "ok"})
	locked := filepath.Join(root, "locked")
	if err := os.Chmod(locked, 0o000); err != nil {
		t.Fatal(err)
	}
	defer os.Chmod(locked, 0o755)

	s := New(nil).Collect(root)
	if !s.Denied() || !errors.Is(s.Err, fs.ErrPermission) {
		t.Errorf("expected a permission error, got %v", s.Err)
	}
	if s.TotalFiles != 1 || s.TotalDirs != 2 {
		t.Errorf("got %d files, %d dirs; want 1, 2", s.TotalFiles, s.TotalDirs)
	}
}

func TestExtension(t *testing.T) {
	cases := map[string]string{
		"main.go":        "go",
		"README.MD":      "md",
		"archive.tar.gz": "gz",
		"Makefile":       "",
		".bashrc":        "",
		"trailing.":      "",
	}
	for name, want := range cases {
		if got := Extension(name); got != want {
			t.Errorf("Extension(%q) = %q, want %q", name, got, want)
		}
	}
}

func TestTopExtensions(t *testing.T) {
	s := Summary{Extensions: map[string]int{"go": 5, "md": 2, "txt": 2, "yml": 1}}
	got := s.TopExtensions(3)
	want := []ExtCount{{"go", 5}, {"md", 2}, {"txt", 2}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("TopExtensions(3) = %v, want %v", got, want)
	}
	if len(s.TopExtensions(0)) != 4 {
		t.Fatal("TopExtensions(0) should return every bucket")
	}
}
