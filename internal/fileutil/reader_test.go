package fileutil

import (
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"

	"github.com/ulikunitz/xz"
)

func TestReadCorpus_Plain(t *testing.T) {
	tempDir := t.TempDir()

	content := "Caesar venit. Hostes fugerunt.\n"
	path := filepath.Join(tempDir, "corpus.txt")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to create corpus file: %v", err)
	}

	data, err := ReadCorpus(path)
	if err != nil {
		t.Fatalf("ReadCorpus failed: %v", err)
	}
	if string(data) != content {
		t.Errorf("content mismatch: got %q, want %q", data, content)
	}
}

func TestReadCorpus_XZ(t *testing.T) {
	tempDir := t.TempDir()

	content := "Gallia est omnis divisa in partes tres."
	path := filepath.Join(tempDir, "corpus.txt.xz")

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create file: %v", err)
	}
	w, err := xz.NewWriter(f)
	if err != nil {
		t.Fatalf("xz writer: %v", err)
	}
	if _, err := w.Write([]byte(content)); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close xz writer: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("close file: %v", err)
	}

	data, err := ReadCorpus(path)
	if err != nil {
		t.Fatalf("ReadCorpus failed: %v", err)
	}
	if string(data) != content {
		t.Errorf("content mismatch: got %q, want %q", data, content)
	}
}

func TestReadCorpus_Gzip(t *testing.T) {
	tempDir := t.TempDir()

	content := "Arma virumque cano."
	path := filepath.Join(tempDir, "corpus.txt.gz")

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create file: %v", err)
	}
	w := gzip.NewWriter(f)
	if _, err := w.Write([]byte(content)); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close gzip writer: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("close file: %v", err)
	}

	data, err := ReadCorpus(path)
	if err != nil {
		t.Fatalf("ReadCorpus failed: %v", err)
	}
	if string(data) != content {
		t.Errorf("content mismatch: got %q, want %q", data, content)
	}
}

func TestReadCorpus_Nonexistent(t *testing.T) {
	if _, err := ReadCorpus("/nonexistent/corpus.txt"); err == nil {
		t.Error("ReadCorpus should fail for a nonexistent file")
	}
}

func TestReadCorpus_CorruptXZ(t *testing.T) {
	tempDir := t.TempDir()

	path := filepath.Join(tempDir, "bad.xz")
	if err := os.WriteFile(path, []byte("not xz data"), 0644); err != nil {
		t.Fatalf("failed to create file: %v", err)
	}

	if _, err := ReadCorpus(path); err == nil {
		t.Error("ReadCorpus should fail for corrupt xz data")
	}
}
