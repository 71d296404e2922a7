package scaffold

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/skelgen/skelgen/internal/fsmanager"
	"github.com/skelgen/skelgen/internal/manifest"
)

func TestRenderManifest(t *testing.T) {
	got := RenderManifest("demo", "a test")
	want := "[package]\nname = \"demo\"\nversion = \"0.1.0\"\nauthors = [\"Your Name\"]\ndescription = \"a test\"\n"
	if got != want {
		t.Errorf("RenderManifest() =\n%s\nwant\n%s", got, want)
	}
}

func TestRenderManifestEmptyDescription(t *testing.T) {
	got := RenderManifest("demo", "")
	assertContains(t, got, `description = ""`)

	result, err := manifest.Validate([]byte(got))
	if err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	if !result.Valid {
		t.Errorf("rendered manifest should be valid, got %v", result.Issues)
	}
}

func TestRenderManifestKeepsPercentSigns(t *testing.T) {
	got := RenderManifest("demo", "100% safe")
	assertContains(t, got, `description = "100% safe"`)
}

func TestEntryPoint(t *testing.T) {
	got := EntryPoint()
	assertContains(t, got, "fn main()")
	assertContains(t, got, `println!("Hello, world!");`)
}

func TestLayout(t *testing.T) {
	want := []string{
		"src/application/mod.rs",
		"src/domain/mod.rs",
		"src/infrastructure/mod.rs",
		"Cargo.toml",
		"src/main.rs",
	}

	layout := Layout()
	if len(layout) != len(want) {
		t.Fatalf("Layout() has %d entries, want %d", len(layout), len(want))
	}
	for i, e := range layout {
		if got := filepath.ToSlash(e.Path()); got != want[i] {
			t.Errorf("entry[%d] = %q, want %q", i, got, want[i])
		}
		if e.Kind != fsmanager.File {
			t.Errorf("entry[%d] kind = %s, want file", i, e.Kind)
		}
	}

	// Each call builds a fresh list.
	layout[0].Name = "changed"
	if Layout()[0].Name != "mod.rs" {
		t.Error("Layout() should not share state between calls")
	}
}

func TestResolveRoot(t *testing.T) {
	t.Run("explicit output dir", func(t *testing.T) {
		dir := t.TempDir()
		got, err := ResolveRoot(dir, "demo")
		if err != nil {
			t.Fatalf("ResolveRoot() error: %v", err)
		}
		if got != filepath.Join(dir, "demo") {
			t.Errorf("ResolveRoot() = %q, want %q", got, filepath.Join(dir, "demo"))
		}
	})

	t.Run("defaults to working directory", func(t *testing.T) {
		dir := t.TempDir()
		t.Chdir(dir)
		wd, err := os.Getwd()
		if err != nil {
			t.Fatal(err)
		}

		got, err := ResolveRoot("", "demo")
		if err != nil {
			t.Fatalf("ResolveRoot() error: %v", err)
		}
		if got != filepath.Join(wd, "demo") {
			t.Errorf("ResolveRoot() = %q, want %q", got, filepath.Join(wd, "demo"))
		}
	})

	t.Run("relative output dir is made absolute", func(t *testing.T) {
		t.Chdir(t.TempDir())
		got, err := ResolveRoot("work", "demo")
		if err != nil {
			t.Fatalf("ResolveRoot() error: %v", err)
		}
		if !filepath.IsAbs(got) {
			t.Errorf("ResolveRoot() = %q, want absolute path", got)
		}
	})
}

func TestGenerate(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "work")

	result, err := Generate(Options{Name: "demo", Description: "a test", OutputDir: dir})
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	root := filepath.Join(dir, "demo")
	if result.Root != root {
		t.Errorf("Root = %q, want %q", result.Root, root)
	}

	for _, f := range []string{"src/application/mod.rs", "src/domain/mod.rs", "src/infrastructure/mod.rs"} {
		if content := readGenerated(t, root, f); content != "" {
			t.Errorf("%s should be empty, got %q", f, content)
		}
	}

	if got := readGenerated(t, root, "src/main.rs"); got != EntryPoint() {
		t.Errorf("src/main.rs = %q, want entry-point template", got)
	}
	if got := readGenerated(t, root, "Cargo.toml"); got != RenderManifest("demo", "a test") {
		t.Errorf("Cargo.toml = %q, want rendered manifest", got)
	}

	if len(result.Files) != len(Layout()) {
		t.Errorf("Files = %v, want %d entries", result.Files, len(Layout()))
	}
	if len(result.Warnings) > 0 {
		t.Errorf("unexpected warnings: %v", result.Warnings)
	}
}

func TestGenerateTwiceFails(t *testing.T) {
	dir := t.TempDir()
	opts := Options{Name: "demo", Description: "a test", OutputDir: dir}

	if _, err := Generate(opts); err != nil {
		t.Fatalf("first Generate() error: %v", err)
	}
	root := filepath.Join(dir, "demo")
	mainPath := filepath.Join(root, "src", "main.rs")
	if err := os.WriteFile(mainPath, []byte("edited"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Generate(opts)
	if !errors.Is(err, fsmanager.ErrRootExists) {
		t.Fatalf("second Generate() error = %v, want ErrRootExists", err)
	}
	if got := readGenerated(t, root, "src/main.rs"); got != "edited" {
		t.Errorf("existing tree was modified: src/main.rs = %q", got)
	}
}

func TestGenerateEmptyDescription(t *testing.T) {
	dir := t.TempDir()

	result, err := Generate(Options{Name: "demo", OutputDir: dir})
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	assertContains(t, readGenerated(t, result.Root, "Cargo.toml"), `description = ""`)
}

func TestGenerateRequiresName(t *testing.T) {
	dir := t.TempDir()
	if _, err := Generate(Options{OutputDir: dir}); err == nil {
		t.Fatal("expected error for empty project name")
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Errorf("nothing should be created, found %d entries", len(entries))
	}
}

func TestGenerateWarnsOnUnparsableManifest(t *testing.T) {
	dir := t.TempDir()

	result, err := Generate(Options{Name: "demo", Description: `say "hi"`, OutputDir: dir})
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if len(result.Warnings) == 0 {
		t.Fatal("expected a manifest warning for an unescaped quote")
	}
	assertContains(t, result.Warnings[0], "Cargo.toml")
}

func TestGenerateOutputDirIsFile(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, nil, 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Generate(Options{Name: "demo", OutputDir: blocker})
	var ioErr *fsmanager.IOError
	if !errors.As(err, &ioErr) {
		t.Fatalf("Generate() error = %v, want *fsmanager.IOError", err)
	}
}

// ─── Test Helpers ──────────────────────────────────────────────────

func readGenerated(t *testing.T, dir, rel string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(rel)))
	if err != nil {
		t.Fatalf("reading %s: %v", rel, err)
	}
	return string(data)
}

func assertContains(t *testing.T, content, substr string) {
	t.Helper()
	if !strings.Contains(content, substr) {
		t.Errorf("content does not contain %q\n--- content ---\n%s", substr, content)
	}
}
