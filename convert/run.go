// Package convert finds rulebook sources on disk or in archives and renders
// every one of them into an output document.
package convert

import (
	"archive/zip"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/text/encoding/ianaindex"

	"rbc/archive"
	"rbc/config"
	"rbc/content"
	"rbc/markup"
	"rbc/state"
)

// ErrNoBestiary is returned when encounter table is requested for source
// without bestiary.
var ErrNoBestiary = errors.New("source has no bestiary")

// job is what is done with every prepared source.
type job struct {
	name   string
	suffix string
	render func(*content.Content) (string, error)
}

var (
	buildJob = job{
		name:   "build",
		render: (*content.Content).Render,
	}
	encountersJob = job{
		name:   "encounters",
		suffix: "-encounters",
		render: renderEncounters,
	}
)

func renderEncounters(c *content.Content) (string, error) {
	if c.Encounters == nil {
		return "", ErrNoBestiary
	}
	text, err := c.Encounters.RenderChapter()
	if err != nil {
		return "", err
	}
	return markup.Unescape(text), nil
}

// Build renders complete rulebooks.
func Build(ctx context.Context, cmd *cli.Command) error {
	return run(ctx, cmd, buildJob)
}

// Encounters renders only encounter tables of rulebook bestiaries.
func Encounters(ctx context.Context, cmd *cli.Command) error {
	return run(ctx, cmd, encountersJob)
}

func run(ctx context.Context, cmd *cli.Command, j job) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named(j.name)

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no input source has been specified")
	}
	if src, err = filepath.Abs(src); err != nil {
		return err
	}

	dst := cmd.Args().Get(1)
	if len(dst) == 0 {
		if dst, err = os.Getwd(); err != nil {
			return fmt.Errorf("unable to get working directory: %w", err)
		}
	}
	if dst, err = filepath.Abs(dst); err != nil {
		return err
	}
	if cmd.Args().Len() > 2 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	env.NoDirs, env.Overwrite, env.Stdout = cmd.Bool("nodirs"), cmd.Bool("overwrite"), cmd.Bool("stdout")
	if env.Stdout {
		config.ConsoleToStderr()
	}

	// zip does not define file name encoding, old archives may need a hint
	if cp := cmd.String("force-zip-cp"); len(cp) > 0 {
		if env.CodePage, err = ianaindex.IANA.Encoding(cp); err != nil || env.CodePage == nil {
			log.Warn("Unknown character set specification, ignoring", zap.String("charset", cp), zap.Error(err))
			env.CodePage = nil
		}
	}

	log.Info("Processing starting", zap.String("source", src), zap.String("destination", dst))
	defer func(start time.Time) {
		log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	return process(ctx, src, dst, j, log)
}

// process determines whether src is a directory, an archive (possibly with
// path inside it) or a single source file and handles it accordingly.
func process(ctx context.Context, src, dst string, j job, log *zap.Logger) error {
	// walk up until existing path is found, the rest may be a path inside
	// archive
	for head := src; len(head) != 0 && head != filepath.Dir(head); head = filepath.Dir(head) {
		if err := ctx.Err(); err != nil {
			return err
		}

		fi, err := os.Stat(head)
		if err != nil {
			continue
		}
		tail := strings.TrimPrefix(strings.TrimPrefix(src, head), string(filepath.Separator))

		switch {
		case fi.IsDir():
			if len(tail) != 0 {
				return fmt.Errorf("input source was not found (%s) => (%s)", head, tail)
			}
			if err := processDir(ctx, head, dst, j, log); err != nil {
				return fmt.Errorf("unable to process directory: %w", err)
			}
			return nil
		case !fi.Mode().IsRegular():
			return fmt.Errorf("unexpected path mode for (%s)", head)
		}

		isArchive, err := isArchiveFile(head)
		if err != nil {
			return fmt.Errorf("unable to check archive type: %w", err)
		}
		if isArchive {
			if err := processArchive(ctx, head, filepath.ToSlash(tail), "", dst, j, log); err != nil {
				return fmt.Errorf("unable to process archive: %w", err)
			}
			return nil
		}

		isSource, err := isSourceFile(head)
		if err != nil {
			return fmt.Errorf("unable to check file type: %w", err)
		}
		if !isSource || len(tail) != 0 {
			return fmt.Errorf("input was not recognized as rulebook source (%s)", head)
		}
		f, err := os.Open(head)
		if err != nil {
			return err
		}
		defer f.Close()
		return processSource(ctx, f, filepath.Base(head), dst, j, log)
	}
	return fmt.Errorf("input source was not found (%s)", src)
}

// processDir renders every source found under dir, including sources in
// archives. Failed sources do not stop processing, all failures are
// returned together.
func processDir(ctx context.Context, dir, dst string, j job, log *zap.Logger) (failed error) {
	count := 0
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err != nil {
			log.Warn("Skipping path", zap.String("path", path), zap.Error(err))
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		rel := strings.TrimPrefix(strings.TrimPrefix(path, dir), string(filepath.Separator))

		isArchive, err := isArchiveFile(path)
		if err != nil {
			log.Warn("Skipping file", zap.String("file", path), zap.Error(err))
			return nil
		}
		if isArchive {
			if err := processArchive(ctx, path, "", filepath.Dir(rel), dst, j, log); err != nil {
				log.Error("Unable to process archive", zap.String("file", path), zap.Error(err))
				failed = multierr.Append(failed, err)
			}
			return nil
		}

		isSource, err := isSourceFile(path)
		if err != nil {
			log.Warn("Skipping file", zap.String("file", path), zap.Error(err))
			return nil
		}
		if !isSource {
			log.Debug("Skipping file, not recognized as source or archive", zap.String("file", path))
			return nil
		}
		count++

		f, err := os.Open(path)
		if err != nil {
			log.Error("Unable to process file", zap.String("file", path), zap.Error(err))
			failed = multierr.Append(failed, err)
			return nil
		}
		defer f.Close()

		if err := processSource(ctx, f, rel, dst, j, log); err != nil {
			log.Error("Unable to process file", zap.String("file", path), zap.Error(err))
			failed = multierr.Append(failed, err)
		}
		return nil
	})
	if err == nil && count == 0 {
		log.Debug("Nothing to process", zap.String("dir", dir))
	}
	return multierr.Append(err, failed)
}

// processArchive renders every source in archive under pathIn. pathOut is
// archive location relative to processed directory.
func processArchive(ctx context.Context, path, pathIn, pathOut, dst string, j job, log *zap.Logger) (failed error) {
	env := state.EnvFromContext(ctx)

	count := 0
	err := archive.Walk(ctx, path, pathIn, func(arc string, f *zip.File) error {
		isSource, err := isSourceInArchive(f)
		if err != nil {
			log.Warn("Skipping file in archive", zap.String("archive", arc), zap.String("file", f.Name), zap.Error(err))
			return nil
		}
		if !isSource {
			log.Debug("Skipping file, not recognized as source", zap.String("archive", arc), zap.String("file", f.Name))
			return nil
		}
		count++

		name := f.Name
		if env.CodePage != nil && f.NonUTF8 {
			if n, err := env.CodePage.NewDecoder().String(name); err == nil {
				name = n
			} else {
				log.Warn("Unable to convert file name from requested encoding", zap.String("file", name), zap.Error(err))
			}
		}

		r, err := f.Open()
		if err != nil {
			log.Error("Unable to process file in archive", zap.String("archive", arc), zap.String("file", f.Name), zap.Error(err))
			failed = multierr.Append(failed, err)
			return nil
		}
		defer r.Close()

		if err := processSource(ctx, r, filepath.Join(pathOut, filepath.FromSlash(name)), dst, j, log); err != nil {
			log.Error("Unable to process file in archive", zap.String("archive", arc), zap.String("file", f.Name), zap.Error(err))
			failed = multierr.Append(failed, err)
		}
		return nil
	})
	if err == nil && count == 0 {
		log.Debug("Nothing to process", zap.String("archive", path))
	}
	return multierr.Append(err, failed)
}

// processSource renders single source. src is source path relative to
// processed directory or archive, just base name for a single file.
func processSource(ctx context.Context, r io.Reader, src, dst string, j job, log *zap.Logger) (rerr error) {
	env := state.EnvFromContext(ctx)

	var outputName, buildID string

	log.Info("Rendering starting", zap.String("from", src))
	defer func(start time.Time) {
		if r := recover(); r != nil {
			log.Error("Rendering ended with panic",
				zap.Any("panic", r), zap.Duration("elapsed", time.Since(start)), zap.String("from", src), zap.ByteString("stack", debug.Stack()))
			rerr = fmt.Errorf("rendering panic: %v", r)
			return
		}
		if rerr == nil {
			log.Info("Rendering completed", zap.Duration("elapsed", time.Since(start)), zap.String("to", outputName), zap.String("build_id", buildID))
		}
	}(time.Now())

	c, err := content.Prepare(ctx, r, src, log)
	if err != nil {
		return fmt.Errorf("unable to prepare source (%s): %w", src, err)
	}
	buildID = c.BuildID.String()

	text, err := j.render(c)
	if err != nil {
		return fmt.Errorf("unable to render source (%s): %w", src, err)
	}

	if env.Stdout {
		outputName = "STDOUT"
		_, err := io.WriteString(env.Out, text)
		return err
	}

	outputName = buildOutputPath(c, src, dst, j.suffix, env)
	if err := prepareDestination(outputName, env.Overwrite, log); err != nil {
		return err
	}
	if err := os.WriteFile(outputName, []byte(text), 0644); err != nil {
		return fmt.Errorf("unable to write output: %w", err)
	}

	env.Rpt.Store(fmt.Sprintf("result-%s%s", buildID, filepath.Ext(outputName)), outputName)
	return nil
}

func prepareDestination(name string, overwrite bool, log *zap.Logger) error {
	_, err := os.Stat(name)
	switch {
	case err == nil:
		if !overwrite {
			return fmt.Errorf("output file already exists: %s", name)
		}
		log.Warn("Overwriting existing file", zap.String("file", name))
		return nil
	case !errors.Is(err, fs.ErrNotExist):
		return err
	}
	if err := os.MkdirAll(filepath.Dir(name), 0755); err != nil {
		return fmt.Errorf("unable to create output directory: %w", err)
	}
	return nil
}
