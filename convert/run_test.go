package convert

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"rbc/config"
	"rbc/state"
)

const sampleSourcePath = "../content/testdata/rulebook.yaml"

const plainSource = "title: Plain\nchapters:\n  - title: Only\n"

// setupTestEnv creates a test environment with proper context and logger
func setupTestEnv(t *testing.T) (context.Context, *state.LocalEnv) {
	t.Helper()
	logger := zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1)))
	cfg, err := config.LoadConfiguration("")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	ctx := state.ContextWithEnv(context.Background())
	env := state.EnvFromContext(ctx)
	env.Log = logger
	env.Cfg = cfg
	return ctx, env
}

func loadSample(t *testing.T) []byte {
	t.Helper()
	data, err := os.ReadFile(sampleSourcePath)
	if err != nil {
		t.Fatalf("read sample source: %v", err)
	}
	return data
}

func writeFile(t *testing.T, path string, data []byte) string {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func writeZip(t *testing.T, path string, files map[string][]byte) string {
	t.Helper()
	buf := new(bytes.Buffer)
	zw := zip.NewWriter(buf)
	for name, data := range files {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("zip create: %v", err)
		}
		if _, err := w.Write(data); err != nil {
			t.Fatalf("zip write: %v", err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("zip close: %v", err)
	}
	return writeFile(t, path, buf.Bytes())
}

func readOutput(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected output %s: %v", path, err)
	}
	return string(data)
}

func checkRulebook(t *testing.T, text string) {
	t.Helper()
	for _, want := range []string{"Draft 2025", "Katacross", "Roll two dice.\nAdd them.", "Wolf"} {
		if !strings.Contains(text, want) {
			t.Errorf("output does not contain %q", want)
		}
	}
}

func TestProcess_File(t *testing.T) {
	ctx, env := setupTestEnv(t)
	src := writeFile(t, filepath.Join(t.TempDir(), "book.yaml"), loadSample(t))
	dst := t.TempDir()

	if err := process(ctx, src, dst, buildJob, env.Log); err != nil {
		t.Fatalf("process() error = %v", err)
	}
	checkRulebook(t, readOutput(t, filepath.Join(dst, "book.md")))
}

func TestProcess_Dir(t *testing.T) {
	ctx, env := setupTestEnv(t)
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "sub", "book.yaml"), loadSample(t))
	writeFile(t, filepath.Join(dir, "notes.txt"), []byte("title: not a source"))
	writeFile(t, filepath.Join(dir, "fake.yaml"), []byte("<html></html>"))
	writeZip(t, filepath.Join(dir, "packs", "pack.zip"), map[string][]byte{"inner.yaml": []byte(plainSource)})
	dst := t.TempDir()

	if err := process(ctx, dir, dst, buildJob, env.Log); err != nil {
		t.Fatalf("process() error = %v", err)
	}
	checkRulebook(t, readOutput(t, filepath.Join(dst, "sub", "book.md")))
	if out := readOutput(t, filepath.Join(dst, "packs", "inner.md")); !strings.Contains(out, "Plain") {
		t.Errorf("archived source output = %q", out)
	}
	for _, name := range []string{"notes.md", "fake.md"} {
		if _, err := os.Stat(filepath.Join(dst, name)); err == nil {
			t.Errorf("unexpected output %s", name)
		}
	}
}

func TestProcess_DirNoDirs(t *testing.T) {
	ctx, env := setupTestEnv(t)
	env.NoDirs = true
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a", "b", "book.yaml"), loadSample(t))
	dst := t.TempDir()

	if err := process(ctx, dir, dst, buildJob, env.Log); err != nil {
		t.Fatalf("process() error = %v", err)
	}
	checkRulebook(t, readOutput(t, filepath.Join(dst, "book.md")))
}

func TestProcess_DirContinuesAfterFailure(t *testing.T) {
	ctx, env := setupTestEnv(t)
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "bad.yaml"), []byte("title: [unclosed\n"))
	writeFile(t, filepath.Join(dir, "good.yaml"), []byte(plainSource))
	dst := t.TempDir()

	err := process(ctx, dir, dst, buildJob, env.Log)
	if err == nil {
		t.Fatal("expected error for broken source")
	}
	if !strings.Contains(err.Error(), "bad.yaml") {
		t.Errorf("error %q does not name broken source", err)
	}
	readOutput(t, filepath.Join(dst, "good.md"))
}

func TestProcess_Archive(t *testing.T) {
	sample := loadSample(t)
	arc := writeZip(t, filepath.Join(t.TempDir(), "books.zip"), map[string][]byte{
		"core/book.yaml":  sample,
		"extra/plain.yml": []byte(plainSource),
		"readme.txt":      []byte("read me"),
	})

	tests := []struct {
		name    string
		src     string
		present []string
		absent  []string
	}{
		{"whole archive", arc, []string{"core/book.md", "extra/plain.md"}, nil},
		{"directory in archive", filepath.Join(arc, "core"), []string{"core/book.md"}, []string{"extra/plain.md"}},
		{"file in archive", filepath.Join(arc, "extra", "plain.yml"), []string{"extra/plain.md"}, []string{"core/book.md"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, env := setupTestEnv(t)
			dst := t.TempDir()
			if err := process(ctx, tt.src, dst, buildJob, env.Log); err != nil {
				t.Fatalf("process() error = %v", err)
			}
			for _, name := range tt.present {
				readOutput(t, filepath.Join(dst, filepath.FromSlash(name)))
			}
			for _, name := range tt.absent {
				if _, err := os.Stat(filepath.Join(dst, filepath.FromSlash(name))); err == nil {
					t.Errorf("unexpected output %s", name)
				}
			}
		})
	}
}

func TestProcess_Overwrite(t *testing.T) {
	ctx, env := setupTestEnv(t)
	src := writeFile(t, filepath.Join(t.TempDir(), "plain.yaml"), []byte(plainSource))
	dst := t.TempDir()
	out := writeFile(t, filepath.Join(dst, "plain.md"), []byte("old"))

	err := process(ctx, src, dst, buildJob, env.Log)
	if err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Fatalf("process() error = %v, want existing file error", err)
	}
	if got := readOutput(t, out); got != "old" {
		t.Errorf("existing file changed to %q", got)
	}

	env.Overwrite = true
	if err := process(ctx, src, dst, buildJob, env.Log); err != nil {
		t.Fatalf("process() with overwrite error = %v", err)
	}
	if got := readOutput(t, out); !strings.Contains(got, "Plain") {
		t.Errorf("file was not overwritten: %q", got)
	}
}

func TestProcess_Stdout(t *testing.T) {
	ctx, env := setupTestEnv(t)
	buf := new(bytes.Buffer)
	env.Stdout, env.Out = true, buf
	src := writeFile(t, filepath.Join(t.TempDir(), "book.yaml"), loadSample(t))
	dst := t.TempDir()

	if err := process(ctx, src, dst, buildJob, env.Log); err != nil {
		t.Fatalf("process() error = %v", err)
	}
	checkRulebook(t, buf.String())
	entries, err := os.ReadDir(dst)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("destination has %d entries, want none", len(entries))
	}
}

func TestProcess_Encounters(t *testing.T) {
	ctx, env := setupTestEnv(t)
	src := writeFile(t, filepath.Join(t.TempDir(), "book.yaml"), loadSample(t))
	dst := t.TempDir()

	if err := process(ctx, src, dst, encountersJob, env.Log); err != nil {
		t.Fatalf("process() error = %v", err)
	}
	out := readOutput(t, filepath.Join(dst, "book-encounters.md"))
	if !strings.Contains(out, "1 | Wolf [Mammal Common 2] | 1\n") {
		t.Errorf("encounter table missing wolf row:\n%s", out)
	}
	if strings.Contains(out, "Katacross") {
		t.Error("encounter output contains rulebook title")
	}
}

func TestProcess_EncountersNoBestiary(t *testing.T) {
	ctx, env := setupTestEnv(t)
	src := writeFile(t, filepath.Join(t.TempDir(), "plain.yaml"), []byte(plainSource))

	err := process(ctx, src, t.TempDir(), encountersJob, env.Log)
	if !errors.Is(err, ErrNoBestiary) {
		t.Errorf("process() error = %v, want %v", err, ErrNoBestiary)
	}
}

func TestProcess_Errors(t *testing.T) {
	dir := t.TempDir()
	txt := writeFile(t, filepath.Join(dir, "notes.txt"), []byte("hello"))
	src := writeFile(t, filepath.Join(dir, "plain.yaml"), []byte(plainSource))

	tests := []struct {
		name    string
		src     string
		wantErr string
	}{
		{"missing", filepath.Join(dir, "missing", "book.yaml"), "input source was not found"},
		{"path under directory", filepath.Join(dir, "nothing.yaml"), "input source was not found"},
		{"not a source", txt, "not recognized"},
		{"path under source", filepath.Join(src, "inner"), "not recognized"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, env := setupTestEnv(t)
			err := process(ctx, tt.src, t.TempDir(), buildJob, env.Log)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("process() error = %v, want %q", err, tt.wantErr)
			}
		})
	}
}

func TestProcess_Cancelled(t *testing.T) {
	ctx, env := setupTestEnv(t)
	src := writeFile(t, filepath.Join(t.TempDir(), "plain.yaml"), []byte(plainSource))
	ctx, cancel := context.WithCancel(ctx)
	cancel()

	if err := process(ctx, src, t.TempDir(), buildJob, env.Log); !errors.Is(err, context.Canceled) {
		t.Errorf("process() error = %v, want %v", err, context.Canceled)
	}
}

func testCommand(action cli.ActionFunc) *cli.Command {
	return &cli.Command{
		Name: "rbc",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "nodirs"},
			&cli.BoolFlag{Name: "overwrite"},
			&cli.BoolFlag{Name: "stdout"},
			&cli.StringFlag{Name: "force-zip-cp"},
		},
		Action: action,
	}
}

func TestBuild_Command(t *testing.T) {
	ctx, env := setupTestEnv(t)
	src := writeFile(t, filepath.Join(t.TempDir(), "nested", "book.yaml"), loadSample(t))
	dst := t.TempDir()

	args := []string{"rbc", "--nodirs", "--force-zip-cp", "windows-1251", src, dst, "extra"}
	if err := testCommand(Build).Run(ctx, args); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	checkRulebook(t, readOutput(t, filepath.Join(dst, "book.md")))
	if !env.NoDirs {
		t.Error("NoDirs flag was not applied")
	}
	if env.CodePage == nil {
		t.Error("code page was not set")
	}
}

func TestEncounters_Command(t *testing.T) {
	ctx, env := setupTestEnv(t)
	buf := new(bytes.Buffer)
	env.Out = buf
	src := writeFile(t, filepath.Join(t.TempDir(), "book.yaml"), loadSample(t))

	args := []string{"rbc", "--stdout", "--force-zip-cp", "no-such-charset", src}
	if err := testCommand(Encounters).Run(ctx, args); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !strings.Contains(buf.String(), "Wolf") {
		t.Errorf("stdout = %q", buf.String())
	}
	if env.CodePage != nil {
		t.Error("unknown code page should be ignored")
	}
}

func TestBuild_NoSource(t *testing.T) {
	ctx, _ := setupTestEnv(t)
	err := testCommand(Build).Run(ctx, []string{"rbc"})
	if err == nil || !strings.Contains(err.Error(), "no input source") {
		t.Errorf("Run() error = %v", err)
	}
}
