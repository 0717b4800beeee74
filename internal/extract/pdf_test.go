package extract

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExtract_InvalidBytes(t *testing.T) {
	e := NewPDFExtractor()
	if _, err := e.Extract([]byte("not a pdf")); err == nil {
		t.Errorf("expected error for non-PDF bytes")
	}
}

func TestExtractFile_Missing(t *testing.T) {
	e := NewPDFExtractor()
	if _, err := e.ExtractFile(filepath.Join(t.TempDir(), "nope.pdf")); err == nil {
		t.Errorf("expected error for missing file")
	}
}

func TestExtractFile_Corrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.pdf")
	if err := os.WriteFile(path, []byte("%PDF-1.4 truncated"), 0644); err != nil {
		t.Fatal(err)
	}
	e := NewPDFExtractor()
	if _, err := e.ExtractFile(path); err == nil {
		t.Errorf("expected error for corrupt PDF")
	}
}
