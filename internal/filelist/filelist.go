// Package filelist handles the ordered template source file list a tech
// consumes. The order is significant, later definitions override earlier
// ones when the bundle is compiled.
package filelist

import (
	"bufio"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/enb/bemfront/internal/errs"
)

// Entry is one template source file, immutable once read.
type Entry struct {
	Path     string
	Contents string
}

// Dedupe drops every repeated path, keeping the first occurrence and the
// original order.
func Dedupe(paths []string) []string {
	seen := make(map[string]struct{}, len(paths))
	out := paths[:0:0]
	for _, p := range paths {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}

// Read loads every file in order.
func Read(paths []string) ([]Entry, error) {
	entries := make([]Entry, 0, len(paths))
	for _, p := range paths {
		raw, err := os.ReadFile(p)
		if err != nil {
			return nil, &errs.FileReadError{Path: p, Err: err}
		}
		entries = append(entries, Entry{Path: p, Contents: string(raw)})
	}
	return entries, nil
}

// Scan walks the level directories in order and collects files whose name
// ends with one of the suffixes. A missing level is skipped, redefinition
// levels are optional.
func Scan(levels []string, suffixes []string) ([]string, error) {
	var out []string
	for _, level := range levels {
		if _, err := os.Stat(level); os.IsNotExist(err) {
			continue
		}
		err := filepath.WalkDir(level, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			if hasSuffix(d.Name(), suffixes) {
				out = append(out, path)
			}
			return nil
		})
		if err != nil {
			return nil, &errs.FileReadError{Path: level, Err: err}
		}
	}
	return out, nil
}

// FromListFile reads an upstream-resolved file list, one path per line.
// Blank lines and #-comments are skipped; relative paths are resolved
// against the list file's directory.
func FromListFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &errs.FileReadError{Path: path, Err: err}
	}
	defer f.Close()

	dir := filepath.Dir(path)
	var out []string

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !filepath.IsAbs(line) {
			line = filepath.Join(dir, line)
		}
		out = append(out, line)
	}
	if err := sc.Err(); err != nil {
		return nil, &errs.FileReadError{Path: path, Err: err}
	}
	return out, nil
}

func hasSuffix(name string, suffixes []string) bool {
	for _, s := range suffixes {
		if strings.HasSuffix(name, s) {
			return true
		}
	}
	return false
}
