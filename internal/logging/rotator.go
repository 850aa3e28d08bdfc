package logging

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"
)

const backupTimeFormat = "20060102T150405.000"

// RotateOptions bounds the size and number of log files kept on disk.
type RotateOptions struct {
	MaxBytes   int64
	MaxBackups int
	MaxAge     time.Duration
	Compress   bool
}

// RotatingFile is an io.Writer over a single log file. When a write would
// push the file past MaxBytes the file is renamed to
// <stem>-<timestamp><ext>, optionally gzipped, and a fresh file is opened.
// Every CLI run appends to the same file.
type RotatingFile struct {
	mu   sync.Mutex
	path string
	opts RotateOptions
	file *os.File
	size int64
	now  func() time.Time
}

// OpenRotatingFile opens path for appending, creating it if needed.
func OpenRotatingFile(path string, opts RotateOptions) (*RotatingFile, error) {
	r := &RotatingFile{path: path, opts: opts, now: time.Now}
	if err := r.open(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *RotatingFile) open() error {
	f, err := os.OpenFile(r.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("stat log file: %w", err)
	}
	r.file = f
	r.size = info.Size()
	return nil
}

func (r *RotatingFile) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.file == nil {
		if err := r.open(); err != nil {
			return 0, err
		}
	}
	if r.opts.MaxBytes > 0 && r.size > 0 && r.size+int64(len(p)) > r.opts.MaxBytes {
		if err := r.rotate(); err != nil {
			return 0, err
		}
	}

	n, err := r.file.Write(p)
	r.size += int64(n)
	return n, err
}

// Close closes the current file. A later Write reopens it.
func (r *RotatingFile) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}

func (r *RotatingFile) stem() (dir, stem, ext string) {
	dir, base := filepath.Split(r.path)
	ext = filepath.Ext(base)
	return dir, strings.TrimSuffix(base, ext), ext
}

func (r *RotatingFile) rotate() error {
	if err := r.file.Close(); err != nil {
		return fmt.Errorf("close log file: %w", err)
	}
	r.file = nil

	now := r.now()
	dir, stem, ext := r.stem()
	backup := filepath.Join(dir, stem+"-"+now.Format(backupTimeFormat)+ext)
	if err := os.Rename(r.path, backup); err != nil {
		return fmt.Errorf("rotate log file: %w", err)
	}
	if r.opts.Compress {
		if err := gzipFile(backup); err != nil {
			fmt.Fprintf(os.Stderr, "warning: compress %s: %v\n", backup, err)
		}
	}
	r.prune(now)
	return r.open()
}

// prune removes backups past MaxAge, then the oldest ones past MaxBackups.
// Backup names sort chronologically.
func (r *RotatingFile) prune(now time.Time) {
	dir, stem, ext := r.stem()
	if dir == "" {
		dir = "."
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}

	var keep []string
	for _, e := range entries {
		name := e.Name()
		trimmed := strings.TrimSuffix(name, ".gz")
		if e.IsDir() || !strings.HasPrefix(trimmed, stem+"-") || !strings.HasSuffix(trimmed, ext) {
			continue
		}
		if r.opts.MaxAge > 0 {
			if info, err := e.Info(); err == nil && now.Sub(info.ModTime()) > r.opts.MaxAge {
				removeLog(filepath.Join(dir, name))
				continue
			}
		}
		keep = append(keep, name)
	}

	if r.opts.MaxBackups <= 0 || len(keep) <= r.opts.MaxBackups {
		return
	}
	slices.Sort(keep)
	for _, name := range keep[:len(keep)-r.opts.MaxBackups] {
		removeLog(filepath.Join(dir, name))
	}
}

func removeLog(path string) {
	if err := os.Remove(path); err != nil {
		fmt.Fprintf(os.Stderr, "warning: remove old log %s: %v\n", path, err)
	}
}

func gzipFile(path string) (err error) {
	in, err := os.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	out, err := os.OpenFile(path+".gz", os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return err
	}
	zw := gzip.NewWriter(out)
	if _, err = io.Copy(zw, in); err == nil {
		err = zw.Close()
	}
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(path + ".gz")
		return err
	}
	return os.Remove(path)
}
