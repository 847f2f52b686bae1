// Package fsprobe observes the Claude environment on disk: the vector
// database file, backup archives and configuration files.
//
// Nothing in this package returns an error to its caller. Failures on
// individual entries are skipped or folded into the reported state.
package fsprobe

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// FileStat is the existence, size and modification time of a path.
type FileStat struct {
	Path    string
	Exists  bool
	IsDir   bool
	Size    int64
	ModTime time.Time
	Err     error
}

// Stat reports on path. A missing path is not an error.
func Stat(path string) FileStat {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return FileStat{Path: path}
		}
		return FileStat{Path: path, Err: err}
	}
	return FileStat{
		Path:    path,
		Exists:  true,
		IsDir:   info.IsDir(),
		Size:    info.Size(),
		ModTime: info.ModTime(),
	}
}

// DirSize sums the sizes of regular files below root. Symlinks and
// directories do not count, and unreadable entries are skipped.
func DirSize(root string) int64 {
	var total int64
	_ = filepath.WalkDir(root, func(_ string, d fs.DirEntry, err error) error {
		if err != nil || !d.Type().IsRegular() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return nil
		}
		total += info.Size()
		return nil
	})
	return total
}

// CountLines returns the number of lines in path; a trailing newline does not
// start a new line.
func CountLines(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	return countLines(data), nil
}

func countLines(data []byte) int {
	if len(data) == 0 {
		return 0
	}
	lines := bytes.Count(data, []byte{'\n'})
	if data[len(data)-1] != '\n' {
		lines++
	}
	return lines
}

// ageDays returns whole days elapsed between mod and now, never negative.
func ageDays(now, mod time.Time) int {
	age := now.Sub(mod)
	if age < 0 {
		return 0
	}
	return int(age / (24 * time.Hour))
}
