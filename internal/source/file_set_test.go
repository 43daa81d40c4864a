package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileSet_AddVirtual(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test.ors", []byte("do x := 1\n"))
	f := fs.Get(id)

	if f.Path != "test.ors" {
		t.Errorf("Path = %q", f.Path)
	}
	if f.Flags&FileVirtual == 0 {
		t.Error("expected FileVirtual flag")
	}
	if len(f.LineIdx) != 1 || f.LineIdx[0] != 9 {
		t.Errorf("LineIdx = %v, want [9]", f.LineIdx)
	}

	got, ok := fs.GetByPath("test.ors")
	if !ok || got.ID != id {
		t.Errorf("GetByPath = %v, %v", got, ok)
	}
}

func TestFileSet_SamePathNewID(t *testing.T) {
	fs := NewFileSet()
	first := fs.AddVirtual("a.ors", []byte("one"))
	second := fs.AddVirtual("a.ors", []byte("two"))
	if first == second {
		t.Fatal("expected distinct FileIDs for re-added path")
	}
	f, ok := fs.GetByPath("a.ors")
	if !ok || f.ID != second {
		t.Errorf("index should point at the latest version, got %v", f)
	}
}

func TestFileSet_Resolve(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("r.ors", []byte("ab\ncde\nf"))

	start, end := fs.Resolve(Span{File: id, Start: 3, End: 6})
	if start.Line != 2 || start.Col != 1 {
		t.Errorf("start = %d:%d, want 2:1", start.Line, start.Col)
	}
	if end.Line != 2 || end.Col != 4 {
		t.Errorf("end = %d:%d, want 2:4", end.Line, end.Col)
	}
}

func TestFileSet_Load(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.ors")
	raw := append([]byte{0xEF, 0xBB, 0xBF}, []byte("if x\r\nthen y\r\n")...)
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatal(err)
	}

	fs := NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	f := fs.Get(id)

	if string(f.Content) != "if x\nthen y\n" {
		t.Errorf("Content = %q", f.Content)
	}
	if f.Flags&FileHadBOM == 0 {
		t.Error("expected FileHadBOM flag")
	}
	if f.Flags&FileNormalizedCRLF == 0 {
		t.Error("expected FileNormalizedCRLF flag")
	}
}

func TestFile_GetLine(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("l.ors", []byte("first\nsecond\n\nlast"))
	f := fs.Get(id)

	tests := []struct {
		line uint32
		want string
	}{
		{0, ""},
		{1, "first"},
		{2, "second"},
		{3, ""},
		{4, "last"},
		{5, ""},
	}
	for _, tt := range tests {
		if got := f.GetLine(tt.line); got != tt.want {
			t.Errorf("GetLine(%d) = %q, want %q", tt.line, got, tt.want)
		}
	}
}
