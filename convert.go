// SPDX-License-Identifier: EPL-2.0

package sc12conv

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/samber/lo"

	"github.com/misrei/sc12conv/audio"
)

// Options controls a conversion run. The zero value converts to raw FC32 and
// reports through log.Default().
type Options struct {
	// Logger receives the human-readable status lines.
	Logger *log.Logger
	// Registry resolves the input decoder and output encoder.
	// Defaults to DefaultRegistry(SampleRate).
	Registry *audio.Registry
	// Format is the output extension without the dot: "fc32", "wav" or "aiff".
	Format string
	// SampleRate is the declared rate of the SC12 input.
	SampleRate int
}

func (o Options) withDefaults() Options {
	if o.Logger == nil {
		o.Logger = log.Default()
	}
	if o.Format == "" {
		o.Format = DefaultFormat
	}
	if o.SampleRate == 0 {
		o.SampleRate = DefaultSampleRate
	}
	if o.Registry == nil {
		o.Registry = DefaultRegistry(o.SampleRate)
	}

	return o
}

// Report summarizes a ConvertDir run.
type Report struct {
	Converted int
	Failed    int
	Errors    []error
}

// OutputPath replaces the extension of inPath with format.
func OutputPath(inPath, format string) string {
	return strings.TrimSuffix(inPath, filepath.Ext(inPath)) + "." + format
}

// ConvertDir converts every regular file in dir whose extension is exactly
// ".sc12", one at a time, writing the result next to the input.
//
// Only a failure to list dir is returned as an error. A file that fails to
// convert is logged, counted in the Report and skipped.
func ConvertDir(dir string, opts Options) (Report, error) {
	opts = opts.withDefaults()

	if _, ok := opts.Registry.Encoder(opts.Format); !ok {
		return Report{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, opts.Format)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		opts.Logger.Errorf("Filesystem error: %v", err)
		return Report{}, fmt.Errorf("%w: %w", ErrEnumerate, err)
	}

	inputs := lo.FilterMap(entries, func(e fs.DirEntry, _ int) (string, bool) {
		if filepath.Ext(e.Name()) != "."+InputExtension {
			return "", false
		}
		path := filepath.Join(dir, e.Name())
		return path, isRegularFile(e, path)
	})
	opts.Logger.Debugf("Found %d %s files in %s", len(inputs), InputExtension, dir)

	var report Report
	for _, in := range inputs {
		if err := ConvertFile(in, OutputPath(in, opts.Format), opts); err != nil {
			report.Failed++
			report.Errors = append(report.Errors, err)
			continue
		}
		report.Converted++
	}

	opts.Logger.Debug("Run finished", "converted", report.Converted, "failed", report.Failed)

	return report, nil
}

// isRegularFile follows symlinks, so a link to a regular file is converted.
func isRegularFile(e fs.DirEntry, path string) bool {
	if e.Type().IsRegular() {
		return true
	}
	if e.Type()&fs.ModeSymlink == 0 {
		return false
	}

	fi, err := os.Stat(path)
	return err == nil && fi.Mode().IsRegular()
}

// ConvertFile converts one input file into outPath, creating or truncating
// it. The decoder is chosen by the input extension and the encoder by
// opts.Format.
//
// Failures are logged and returned as *FileError. When the input cannot be
// opened no output is created; when a write fails midway the partial output
// is left on disk.
func ConvertFile(inPath, outPath string, opts Options) error {
	opts = opts.withDefaults()
	logger := opts.Logger

	fail := func(op Op, path string, err error) error {
		logger.Error(op.message()+": "+path, "err", err)
		return &FileError{Op: op, Path: path, Err: err}
	}

	ext := strings.TrimPrefix(filepath.Ext(inPath), ".")
	dec, ok := opts.Registry.Decoder(ext)
	if !ok {
		return fail(OpOpenInput, inPath, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext))
	}
	enc, ok := opts.Registry.Encoder(opts.Format)
	if !ok {
		return fail(OpOpenOutput, outPath, fmt.Errorf("%w: %q", ErrUnsupportedFormat, opts.Format))
	}

	in, err := os.Open(inPath)
	if err != nil {
		return fail(OpOpenInput, inPath, err)
	}
	defer in.Close()

	out, err := os.Create(outPath)
	if err != nil {
		return fail(OpOpenOutput, outPath, err)
	}

	written, err := convert(dec, enc, in, out)
	if cerr := out.Close(); cerr != nil && err == nil {
		err = fmt.Errorf("%w: %w", audio.ErrWrite, cerr)
	}
	if err != nil {
		if errors.Is(err, audio.ErrWrite) {
			return fail(OpWrite, outPath, err)
		}
		return fail(OpRead, inPath, err)
	}

	logger.Debugf("Wrote %d samples to %s", written, outPath)
	logger.Infof("Converted: %s -> %s", inPath, outPath)

	return nil
}

// convert runs the pump between an open input and output. Errors are
// wrapped with audio.ErrRead or audio.ErrWrite.
func convert(dec audio.Decoder, enc audio.Encoder, in io.Reader, out io.Writer) (int64, error) {
	src, err := dec.Decode(in)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", audio.ErrRead, err)
	}
	defer src.Close()

	sink, err := enc.Encode(out, src.SampleRate(), src.Channels())
	if err != nil {
		return 0, fmt.Errorf("%w: %w", audio.ErrWrite, err)
	}

	written, err := audio.Copy(sink, src)
	if err != nil {
		return written, err
	}

	if err := sink.Close(); err != nil {
		return written, fmt.Errorf("%w: %w", audio.ErrWrite, err)
	}

	return written, nil
}
