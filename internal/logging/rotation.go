package logging

import (
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
)

// RotationConfig holds configuration for log rotation.
type RotationConfig struct {
	// MaxSizeMB is the size in megabytes at which the file is rotated.
	// 0 disables rotation.
	MaxSizeMB int
	// MaxBackups is the number of rotated files to keep.
	MaxBackups int
	// Compress gzips rotated files.
	Compress bool
}

// DefaultRotationConfig returns the rotation settings used when logging is
// enabled without explicit limits.
func DefaultRotationConfig() RotationConfig {
	return RotationConfig{
		MaxSizeMB:  10,
		MaxBackups: 3,
	}
}

// RotatingWriter is an io.WriteCloser over a file that is rotated once it
// would exceed its size limit. Backups are named {path}.1 (newest) through
// {path}.N, with a .gz suffix when compressed. It is safe for concurrent use.
type RotatingWriter struct {
	mu sync.Mutex

	path       string
	maxBytes   int64
	maxBackups int
	compress   bool

	file *os.File
	size int64

	// rotateErr is the last rotation failure, reported by Err.
	rotateErr error
}

// NewRotatingWriter opens (or creates) path for appending.
func NewRotatingWriter(path string, rc RotationConfig) (*RotatingWriter, error) {
	rw := &RotatingWriter{
		path:       path,
		maxBytes:   int64(rc.MaxSizeMB) * 1024 * 1024,
		maxBackups: rc.MaxBackups,
		compress:   rc.Compress,
	}
	if err := rw.open(); err != nil {
		return nil, err
	}
	return rw, nil
}

// setMaxBytes overrides the rotation threshold; tests use it to rotate
// without writing megabytes.
func (rw *RotatingWriter) setMaxBytes(n int64) {
	rw.mu.Lock()
	rw.maxBytes = n
	rw.mu.Unlock()
}

// open opens the log file. The caller must hold the mutex.
func (rw *RotatingWriter) open() error {
	if err := os.MkdirAll(filepath.Dir(rw.path), 0o755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	f, err := os.OpenFile(rw.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return fmt.Errorf("failed to stat log file: %w", err)
	}

	rw.file = f
	rw.size = info.Size()
	return nil
}

// Write appends p, rotating first if p would push the file past the limit.
// A failed rotation is recorded for [RotatingWriter.Err] and the write goes
// to whichever file is still open.
func (rw *RotatingWriter) Write(p []byte) (int, error) {
	rw.mu.Lock()
	defer rw.mu.Unlock()

	if rw.file == nil {
		return 0, errors.New("log file is closed")
	}

	if rw.needsRotation(len(p)) {
		if err := rw.rotate(); err != nil {
			rw.rotateErr = err
			if rw.file == nil {
				return 0, err
			}
		}
	}

	n, err := rw.file.Write(p)
	rw.size += int64(n)
	return n, err
}

func (rw *RotatingWriter) needsRotation(incoming int) bool {
	return rw.maxBytes > 0 && rw.size > 0 && rw.size+int64(incoming) > rw.maxBytes
}

// Err returns the most recent rotation or compression failure, or nil.
// Logging keeps working after such a failure, into the unrotated file.
func (rw *RotatingWriter) Err() error {
	rw.mu.Lock()
	defer rw.mu.Unlock()
	return rw.rotateErr
}

// rotate retires the active file into the backup chain and reopens a fresh
// one. The caller must hold the mutex. The writer always ends with an open
// file unless reopening itself fails.
func (rw *RotatingWriter) rotate() error {
	closeErr := rw.file.Close()
	rw.file = nil

	var retireErr error
	if closeErr == nil {
		retireErr = rw.retire()
	}

	if err := rw.open(); err != nil {
		return errors.Join(closeErr, retireErr, err)
	}
	if closeErr != nil {
		return fmt.Errorf("closing log file: %w", closeErr)
	}
	return retireErr
}

// retire moves the closed active file to {path}.1, shifting older backups
// up and dropping the one past maxBackups. With no backups it is removed.
func (rw *RotatingWriter) retire() error {
	if rw.maxBackups <= 0 {
		if err := os.Remove(rw.path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("removing log file: %w", err)
		}
		return nil
	}

	for n := rw.maxBackups; n >= 1; n-- {
		for _, ext := range []string{"", ".gz"} {
			from := rw.backupPath(n) + ext
			if _, err := os.Stat(from); err != nil {
				continue
			}
			if n == rw.maxBackups {
				_ = os.Remove(from)
			} else {
				_ = os.Rename(from, rw.backupPath(n+1)+ext)
			}
		}
	}

	newest := rw.backupPath(1)
	if err := os.Rename(rw.path, newest); err != nil {
		return fmt.Errorf("renaming log file: %w", err)
	}
	if rw.compress {
		if err := compressFile(newest); err != nil {
			return fmt.Errorf("compressing %s: %w", filepath.Base(newest), err)
		}
	}
	return nil
}

func (rw *RotatingWriter) backupPath(n int) string {
	return fmt.Sprintf("%s.%d", rw.path, n)
}

// compressFile replaces path with path.gz.
func compressFile(path string) error {
	src, err := os.Open(path)
	if err != nil {
		return err
	}
	defer src.Close()

	gzPath := path + ".gz"
	dst, err := os.Create(gzPath)
	if err != nil {
		return err
	}

	zw := gzip.NewWriter(dst)
	if _, err := io.Copy(zw, src); err != nil {
		dst.Close()
		os.Remove(gzPath)
		return err
	}
	if err := zw.Close(); err != nil {
		dst.Close()
		os.Remove(gzPath)
		return err
	}
	if err := dst.Close(); err != nil {
		os.Remove(gzPath)
		return err
	}
	return os.Remove(path)
}

// Size returns the current size of the active log file in bytes.
func (rw *RotatingWriter) Size() int64 {
	rw.mu.Lock()
	defer rw.mu.Unlock()
	return rw.size
}

// Path returns the path of the active log file.
func (rw *RotatingWriter) Path() string {
	return rw.path
}

// Close syncs and closes the file. Further writes fail.
func (rw *RotatingWriter) Close() error {
	rw.mu.Lock()
	defer rw.mu.Unlock()

	if rw.file == nil {
		return nil
	}
	if err := rw.file.Sync(); err != nil {
		return fmt.Errorf("failed to sync log file: %w", err)
	}
	if err := rw.file.Close(); err != nil {
		return fmt.Errorf("failed to close log file: %w", err)
	}
	rw.file = nil
	return nil
}
