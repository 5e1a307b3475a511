package config

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func readArchive(t *testing.T, name string) map[string]string {
	t.Helper()

	zr, err := zip.OpenReader(name)
	if err != nil {
		t.Fatalf("unable to open report: %v", err)
	}
	defer zr.Close()

	files := make(map[string]string)
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("unable to open %s: %v", f.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("unable to read %s: %v", f.Name, err)
		}
		files[f.Name] = string(data)
	}
	return files
}

func TestReport_Close(t *testing.T) {
	tmp := t.TempDir()

	conf := ReporterConfig{Destination: filepath.Join(tmp, "report.zip")}
	r, err := conf.Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}

	workDir, err := os.MkdirTemp("", "rbc-workdir-")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(workDir, "content.txt"), []byte("tree"), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}
	result := filepath.Join(tmp, "book.md")
	if err := os.WriteFile(result, []byte("# Book"), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	r.Store("work", workDir)
	r.Store("result.md", result)
	r.Store("missing", filepath.Join(tmp, "missing"))
	r.StoreData("config.yaml", []byte("version: 1\n"))

	if err := r.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	files := readArchive(t, conf.Destination)
	for name, want := range map[string]string{
		"work/content.txt": "tree",
		"result.md":        "# Book",
		"config.yaml":      "version: 1\n",
	} {
		if got, ok := files[name]; !ok || got != want {
			t.Errorf("archive entry %s = %q (present %v), want %q", name, got, ok, want)
		}
	}
	if _, ok := files["MANIFEST"]; !ok {
		t.Error("MANIFEST missing from report")
	}
	if _, ok := files["missing"]; ok {
		t.Error("absent file must be skipped")
	}

	if _, err := os.Stat(workDir); !os.IsNotExist(err) {
		os.RemoveAll(workDir)
		t.Error("stored directory expected to be removed")
	}
	if _, err := os.Stat(result); err != nil {
		t.Errorf("stored file must be kept: %v", err)
	}
}

func TestReport_NilSafe(t *testing.T) {
	var r *Report
	r.Store("a", "b")
	r.StoreData("c", nil)
	if r.Name() != "" {
		t.Error("Name() of nil report must be empty")
	}
	if err := r.Close(); err != nil {
		t.Errorf("Close() on nil report error = %v", err)
	}

	r = &Report{entries: make(map[string]entry)}
	if err := r.Close(); err != nil {
		t.Errorf("Close() without file error = %v", err)
	}
}

func TestReport_StoreConflict(t *testing.T) {
	r := &Report{entries: make(map[string]entry)}
	r.Store("a", "/x")
	r.Store("a", "/x")

	defer func() {
		if recover() == nil {
			t.Error("expected panic when entry is overwritten")
		}
	}()
	r.Store("a", "/y")
}

func TestReport_ManifestOrder(t *testing.T) {
	tmp := t.TempDir()
	conf := ReporterConfig{Destination: filepath.Join(tmp, "r.zip")}
	r, err := conf.Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	r.StoreData("b", []byte("2"))
	r.StoreData("a", []byte("1"))
	if err := r.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	zr, err := zip.OpenReader(conf.Destination)
	if err != nil {
		t.Fatalf("unable to open report: %v", err)
	}
	defer zr.Close()
	var names []string
	for _, f := range zr.File {
		names = append(names, f.Name)
	}
	if !slices.Equal(names, []string{"MANIFEST", "a", "b"}) {
		t.Errorf("archive order = %v", names)
	}
}
