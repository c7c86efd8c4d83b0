package scan

import (
	"os"
	"path/filepath"
	"testing"
)

func touch(t *testing.T, dir, name string) {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte{}, 0o644); err != nil {
		t.Fatalf("touch %s: %v", path, err)
	}
}

func basenames(docs []*Document) []string {
	out := make([]string, len(docs))
	for i, d := range docs {
		out[i] = filepath.Base(d.Path)
	}
	return out
}

func TestDiscover_FiltersExtension(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "invoice.pdf")
	touch(t, dir, "scan.pdf")
	touch(t, dir, "readme.txt")
	touch(t, dir, "image.png")

	log := newTestLogger()
	docs := Discover(dir, log)

	want := []string{"invoice.pdf", "scan.pdf"}
	got := basenames(docs)
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got %v, want %v", got, want)
			break
		}
	}
}

func TestDiscover_CaseInsensitiveExtension(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "UPPER.PDF")
	touch(t, dir, "Mixed.Pdf")
	touch(t, dir, "lower.pdf")

	docs := Discover(dir, newTestLogger())
	if len(docs) != 3 {
		t.Errorf("got %d docs, want 3 (case-insensitive ext matching)", len(docs))
	}
}

func TestDiscover_RecursiveAndSorted(t *testing.T) {
	dir := t.TempDir()
	os.MkdirAll(filepath.Join(dir, "b", "deep"), 0o755)
	os.MkdirAll(filepath.Join(dir, "a"), 0o755)
	touch(t, filepath.Join(dir, "b", "deep"), "three.pdf")
	touch(t, filepath.Join(dir, "a"), "two.pdf")
	touch(t, dir, "one.pdf")

	docs := Discover(dir, newTestLogger())
	if len(docs) != 3 {
		t.Fatalf("got %d docs, want 3", len(docs))
	}
	for i := 1; i < len(docs); i++ {
		if docs[i].Path < docs[i-1].Path {
			t.Errorf("not sorted: %q before %q", docs[i-1].Path, docs[i].Path)
		}
	}
}

func TestDiscover_EmptyDir(t *testing.T) {
	docs := Discover(t.TempDir(), newTestLogger())
	if len(docs) != 0 {
		t.Errorf("got %d docs, want 0", len(docs))
	}
}

func TestDiscover_NonexistentRootIsEmptyNotFatal(t *testing.T) {
	docs := Discover(filepath.Join(t.TempDir(), "does-not-exist"), newTestLogger())
	if len(docs) != 0 {
		t.Errorf("got %d docs, want 0 for a missing root", len(docs))
	}
}

func TestDiscoverQuiet_MatchesDiscover(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "a.pdf")
	touch(t, dir, "b.pdf")

	if got, want := len(DiscoverQuiet(dir)), len(Discover(dir, newTestLogger())); got != want {
		t.Errorf("DiscoverQuiet found %d, Discover found %d", got, want)
	}
}
