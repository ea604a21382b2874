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
	"slices"
	"strings"
	"time"

	"github.com/maruel/natural"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"dtree/archive"
	"dtree/config"
	"dtree/state"
)

// Edit applies requested operations to document(s).
func Edit(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("edit")

	if env.Ops, err = collectOps(env.Cfg.Document.Operations, cmd.String("script"), cmd.StringSlice("op")); err != nil {
		return err
	}
	return run(ctx, cmd, false, log)
}

// Normalize converts ordinary HTML document(s) into editable form.
func Normalize(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	env := state.EnvFromContext(ctx)
	env.Ops = nil
	return run(ctx, cmd, true, env.Log.Named("normalize"))
}

// run handles arguments and flags common to all processing commands.
func run(ctx context.Context, cmd *cli.Command, normalize bool, log *zap.Logger) (err error) {
	env := state.EnvFromContext(ctx)

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

	env.Format = env.Cfg.Document.OutputFormat
	if to := cmd.String("to"); len(to) > 0 {
		if env.Format, err = config.ParseOutputFmt(to); err != nil {
			log.Warn("Unknown output format requested, switching to html", zap.Error(err))
			env.Format = config.OutputFmtHtml
		}
	}

	env.NoDirs, env.Overwrite = cmd.Bool("nodirs"), cmd.Bool("overwrite")
	if cmd.Bool("stdout") {
		env.Stdout = os.Stdout
		// console log shares stdout with the document
		log = log.WithOptions(zap.IncreaseLevel(zapcore.ErrorLevel))
	}
	if !normalize && len(env.Ops) == 0 {
		log.Warn("No operations requested, documents will only be reformatted")
	}

	cpName := env.Cfg.Document.InputEncoding
	if name := cmd.String("encoding"); len(name) > 0 {
		cpName = name
	}
	if env.CodePage, err = lookupEncoding(cpName); err != nil {
		return err
	}
	if env.CodePage != nil {
		log.Debug("Forcing documents encoding", zap.String("charset", encodingName(env.CodePage)))
	}

	// Since zip "standard" does not define file name encoding we may need to
	// force archaic code page for old archives
	if cp := cmd.String("force-zip-cp"); len(cp) > 0 {
		if env.ZipCodePage, err = lookupEncoding(cp); err != nil {
			log.Warn("Unknown character set specification. Ignoring...", zap.String("charset", cp), zap.Error(err))
		}
	}

	log.Info("Processing starting", zap.String("source", src), zap.String("destination", dst), zap.Stringer("format", env.Format), zap.Int("operations", len(env.Ops)))
	defer func(start time.Time) {
		log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	return process(ctx, src, dst, normalize, log)
}

// process determines the input type (directory, archive, or single file) and
// processes accordingly. It does not depend on command line.
func process(ctx context.Context, src, dst string, normalize bool, log *zap.Logger) error {
	var head, tail string
	for head = src; len(head) != 0; head, tail = filepath.Split(head) {
		if err := ctx.Err(); err != nil {
			return err
		}

		head = strings.TrimSuffix(head, string(filepath.Separator))

		fi, err := os.Stat(head)
		if err != nil {
			// does not exists - probably path in archive
			continue
		}

		if fi.Mode().IsDir() {
			if len(tail) != 0 {
				// directory cannot have tail - it would be simple file
				return fmt.Errorf("input source was not found (%s) => (%s)", head, strings.TrimPrefix(src, head))
			}
			if err := processDir(ctx, head, dst, normalize, log); err != nil {
				return fmt.Errorf("unable to process directory: %w", err)
			}
			return nil
		}

		if !fi.Mode().IsRegular() {
			return fmt.Errorf("unexpected path mode for (%s) => (%s)", head, strings.TrimPrefix(src, head))
		}

		isArchive, err := isArchiveFile(head)
		if err != nil {
			return fmt.Errorf("unable to check archive type: %w", err)
		}
		if isArchive {
			// we need to look inside to see if path makes sense
			tail = filepath.ToSlash(strings.TrimPrefix(strings.TrimPrefix(src, head), string(filepath.Separator)))
			if err := processArchive(ctx, head, tail, "", dst, normalize, log); err != nil {
				return fmt.Errorf("unable to process archive: %w", err)
			}
			return nil
		}

		if len(tail) != 0 {
			return fmt.Errorf("input source was not found (%s) => (%s)", head, strings.TrimPrefix(src, head))
		}
		// single file is processed regardless of its extension
		doc, enc, err := isDocumentFile(head, nil)
		if err != nil {
			return fmt.Errorf("unable to check file type: %w", err)
		}
		if !doc {
			return fmt.Errorf("input was not recognized as document (%s)", head)
		}
		return processFile(ctx, head, enc, filepath.Base(head), dst, normalize, log)
	}
	return fmt.Errorf("input source was not found (%s)", src)
}

// processDir walks directory tree in natural order finding documents and
// archives and processes them. Failed documents are logged and reported
// together at the end.
func processDir(ctx context.Context, dir, dst string, normalize bool, log *zap.Logger) error {
	exts := state.EnvFromContext(ctx).Cfg.Document.Extensions

	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err != nil {
			log.Warn("Skipping path", zap.String("path", path), zap.Error(err))
			return nil
		}
		if d.Type().IsRegular() {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return err
	}
	slices.SortFunc(paths, func(a, b string) int {
		switch {
		case natural.Less(a, b):
			return -1
		case natural.Less(b, a):
			return 1
		}
		return 0
	})

	var (
		errs  error
		count int
	)
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return err
		}
		rel := strings.TrimPrefix(strings.TrimPrefix(path, dir), string(filepath.Separator))

		isArchive, err := isArchiveFile(path)
		if err != nil {
			log.Warn("Skipping file", zap.String("file", path), zap.Error(err))
			continue
		}
		if isArchive {
			count++
			if err := processArchive(ctx, path, "", filepath.Dir(rel), dst, normalize, log); err != nil {
				errs = multierr.Append(errs, fmt.Errorf("archive %s: %w", rel, err))
			}
			continue
		}

		doc, enc, err := isDocumentFile(path, exts)
		if err != nil {
			log.Warn("Skipping file", zap.String("file", path), zap.Error(err))
			continue
		}
		if !doc {
			log.Debug("Skipping file, not recognized as document or archive", zap.String("file", path))
			continue
		}

		count++
		if err := processFile(ctx, path, enc, rel, dst, normalize, log); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", rel, err))
		}
	}
	if count == 0 {
		log.Debug("Nothing to process", zap.String("dir", dir))
	}
	return errs
}

func processFile(ctx context.Context, path string, enc srcEncoding, src, dst string, normalize bool, log *zap.Logger) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return processDocument(ctx, file, enc, src, dst, normalize, log)
}

// processArchive walks all files inside archive, finds documents under
// "pathIn" and processes them.
func processArchive(ctx context.Context, path, pathIn, pathOut, dst string, normalize bool, log *zap.Logger) error {
	env := state.EnvFromContext(ctx)
	exts := env.Cfg.Document.Extensions

	var (
		errs  error
		count int
	)
	err := archive.Walk(path, pathIn, func(arc string, f *zip.File) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		docExts := exts
		if f.FileHeader.Name == pathIn {
			docExts = nil
		}
		doc, enc, err := isDocumentInArchive(f, docExts)
		if err != nil {
			log.Warn("Skipping file in archive", zap.String("archive", arc), zap.String("path", f.FileHeader.Name), zap.Error(err))
			return nil
		}
		if !doc {
			log.Debug("Skipping file, not recognized as document", zap.String("archive", arc), zap.String("file", f.FileHeader.Name))
			return nil
		}
		count++

		pathInArchive := f.FileHeader.Name
		if cp := env.ZipCodePage; cp != nil && f.FileHeader.NonUTF8 {
			// forcing zip file name encoding
			if n, err := cp.NewDecoder().String(pathInArchive); err == nil {
				pathInArchive = n
			} else {
				log.Warn("Unable to convert archive name from specified encoding",
					zap.String("charset", encodingName(cp)), zap.String("path", pathInArchive), zap.Error(err))
			}
		}

		r, err := f.Open()
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", pathInArchive, err))
			return nil
		}
		defer r.Close()

		if err := processDocument(ctx, r, enc, filepath.Join(pathOut, filepath.FromSlash(pathInArchive)), dst, normalize, log); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", pathInArchive, err))
		}
		return nil
	}, archive.WithMatch(func(name string) bool {
		// path to a single file inside archive is processed regardless of extension
		return len(exts) == 0 || name == pathIn || hasExtension(name, exts)
	}))
	if err != nil {
		return err
	}
	if count == 0 {
		log.Debug("Nothing to process", zap.String("archive", path), zap.String("path", pathIn))
	}
	return errs
}

// processDocument processes single document. "src" is part of the source
// path (always including file name) relative to the original path. When
// actual file was specified it will be just base file name without a path.
// When looking inside archive or directory it will be relative path inside
// archive or directory. "dst" is the destination directory.
func processDocument(ctx context.Context, r io.Reader, enc srcEncoding, src, dst string, normalize bool, log *zap.Logger) (rerr error) {
	env := state.EnvFromContext(ctx)

	var outputName string

	log.Info("Processing document", zap.String("from", src))
	defer func(start time.Time) {
		if r := recover(); r != nil {
			log.Error("Processing ended with panic",
				zap.Any("panic", r), zap.Duration("elapsed", time.Since(start)), zap.String("to", outputName), zap.ByteString("stack", debug.Stack()))
			rerr = fmt.Errorf("processing panic: %v", r)
		} else if rerr != nil {
			log.Error("Unable to process document", zap.String("from", src), zap.Error(rerr))
		} else {
			log.Info("Document completed", zap.Duration("elapsed", time.Since(start)), zap.String("to", outputName))
		}
	}(time.Now())

	dr, err := decodeReader(r, enc, env.CodePage, log)
	if err != nil {
		return err
	}
	c, err := prepareContent(ctx, dr, src, normalize, log)
	if err != nil {
		return err
	}

	if err := c.applyOps(env.Ops, log); err != nil {
		return err
	}
	if len(env.Ops) > 0 {
		env.Rpt.StoreData(c.reportName("_edited"), []byte(c.String()))
	}

	if env.Stdout != nil {
		outputName = "STDOUT"
		return writeDocument(env.Stdout, c.tree, env.Format)
	}

	outputName = buildOutputPath(c, src, dst, env)
	if _, err := os.Stat(outputName); err == nil {
		if !env.Overwrite {
			return fmt.Errorf("output file already exists: %s", outputName)
		}
		log.Warn("Overwriting existing file", zap.String("file", outputName))
	} else if !os.IsNotExist(err) {
		return err
	} else if err := os.MkdirAll(filepath.Dir(outputName), 0755); err != nil {
		return fmt.Errorf("unable to create output directory: %w", err)
	}

	out, err := os.Create(outputName)
	if err != nil {
		return fmt.Errorf("unable to create output file: %w", err)
	}
	if err := writeDocument(out, c.tree, env.Format); err != nil {
		out.Close()
		return fmt.Errorf("unable to write output: %w", err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("unable to write output: %w", err)
	}
	env.Rpt.Store(c.reportName("_result"+env.Format.Ext()), outputName)
	return nil
}
