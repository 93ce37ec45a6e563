package export

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestDirSaver_Save(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")
	saver := NewDirSaver(dir)

	blob := Blob{Name: "desempenho.json", ContentType: ContentTypeJSON, Data: []byte(`[]`)}
	if err := saver.Save(context.Background(), blob); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	got, err := os.ReadFile(filepath.Join(dir, "desempenho.json"))
	if err != nil {
		t.Fatalf("ReadFile() failed: %v", err)
	}
	if string(got) != "[]" {
		t.Errorf("file content = %q, want %q", got, "[]")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir() failed: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("expected only the exported file, found %d entries", len(entries))
	}
}

// TestDirSaver_StripsDirectories tests that blob names cannot escape the
// output directory.
func TestDirSaver_StripsDirectories(t *testing.T) {
	dir := t.TempDir()
	saver := NewDirSaver(dir)

	if err := saver.Save(context.Background(), Blob{Name: "../../fora.csv", Data: []byte("x")}); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "fora.csv")); err != nil {
		t.Errorf("expected file inside output dir: %v", err)
	}
}

func TestDirSaver_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	saver := NewDirSaver(t.TempDir())
	if err := saver.Save(ctx, Blob{Name: "a.csv"}); err == nil {
		t.Error("expected error for cancelled context")
	}
}

func TestWriterSaver_Save(t *testing.T) {
	var buf bytes.Buffer
	saver := &WriterSaver{W: &buf}
	if err := saver.Save(context.Background(), Blob{Name: "a.csv", Data: []byte("a;b")}); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	if buf.String() != "a;b" {
		t.Errorf("written = %q, want %q", buf.String(), "a;b")
	}
}

func TestMemorySaver_CopiesData(t *testing.T) {
	saver := NewMemorySaver()
	data := []byte("abc")
	if err := saver.Save(context.Background(), Blob{Name: "a.csv", Data: data}); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	data[0] = 'x'

	blob, ok := saver.Last()
	if !ok {
		t.Fatal("expected a blob")
	}
	if string(blob.Data) != "abc" {
		t.Errorf("stored data = %q, want %q", blob.Data, "abc")
	}
	if len(saver.Blobs()) != 1 {
		t.Errorf("Blobs() = %d, want 1", len(saver.Blobs()))
	}
}
