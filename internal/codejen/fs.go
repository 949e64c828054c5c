package codejen

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/hashicorp/go-multierror"
	"github.com/hexops/gotextdiff"
	"github.com/hexops/gotextdiff/myers"
	"github.com/hexops/gotextdiff/span"
	"golang.org/x/sync/errgroup"
)

// ioLimit bounds the number of files read or written concurrently.
const ioLimit = 12

// File is a single generated file.
type File struct {
	// RelativePath is the slash-separated path the file is written to,
	// relative to the output directory.
	RelativePath string

	// Data is the contents of the file.
	Data []byte

	// From is the stack of jennies that produced this File, outermost first.
	From []NamedJenny
}

// Exists reports whether the File holds anything to write. Jennies return a
// zero File to signal they had nothing to do.
func (f File) Exists() bool {
	return f.RelativePath != ""
}

// Files is a set of Files.
type Files []File

// Validate checks that every path in the set is relative and unique.
func (fl Files) Validate() error {
	var result *multierror.Error
	seen := make(map[string]File, len(fl))
	for _, f := range fl {
		if filepath.IsAbs(f.RelativePath) {
			result = multierror.Append(result, fmt.Errorf("%s: generated file paths must be relative (from %s)", f.RelativePath, jennystack(f.From)))
		}
		if prev, has := seen[f.RelativePath]; has {
			result = multierror.Append(result, fmt.Errorf("%s: generated by both %s and %s", f.RelativePath, jennystack(prev.From), jennystack(f.From)))
		}
		seen[f.RelativePath] = f
	}
	return result.ErrorOrNil()
}

// FileMapper transforms a File. It is the type of postprocessors run by a
// [JennyList].
type FileMapper func(File) (File, error)

func jennystack(from []NamedJenny) string {
	names := make([]string, len(from))
	for i, j := range from {
		names[i] = j.JennyName()
	}
	return strings.Join(names, ":")
}

// ShouldExistErr indicates that a generated file is missing on disk.
type ShouldExistErr struct {
	Path string
}

func (e *ShouldExistErr) Error() string {
	return fmt.Sprintf("%s: generated file should exist, but does not", e.Path)
}

// ContentsDifferErr indicates that a file on disk differs from the one in
// the FS. Diff is a unified diff from the on-disk contents to the
// generated ones.
type ContentsDifferErr struct {
	Path string
	Diff string
}

func (e *ContentsDifferErr) Error() string {
	return fmt.Sprintf("%s would have changed:\n\n%s", e.Path, e.Diff)
}

// FS is an in-memory tree of generated files that can be written to disk in
// one go, or compared against what is already on disk.
//
// The normal behavior of a generator is to write, but in CI it should
// verify that the committed output is identical to a fresh run. FS supports
// both through [FS.Write] and [FS.Verify].
//
// Files may not be removed once added, and adding the same path twice is an
// error.
type FS struct {
	mu    sync.Mutex
	files map[string]File
}

// NewFS creates an empty FS, ready for use.
func NewFS() *FS {
	return &FS{
		files: make(map[string]File),
	}
}

// Add adds one or more files to the FS. An error is returned if any of them
// would conflict with a file already in the FS, or with each other.
func (fs *FS) Add(flist ...File) error {
	if err := Files(flist).Validate(); err != nil {
		return err
	}
	return fs.addValidated(flist...)
}

func (fs *FS) addValidated(flist ...File) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	var result *multierror.Error
	for _, f := range flist {
		if prev, has := fs.files[f.RelativePath]; has {
			result = multierror.Append(result, fmt.Errorf("%s: already created by %s, cannot create again for %s", f.RelativePath, jennystack(prev.From), jennystack(f.From)))
		}
	}
	if result.ErrorOrNil() != nil {
		return result
	}
	for _, f := range flist {
		fs.files[f.RelativePath] = f
	}
	return nil
}

// Merge adds every file of other to fs. Duplicate paths result in an error.
func (fs *FS) Merge(other *FS) error {
	return fs.addValidated(other.AsFiles()...)
}

// Len returns the number of files in the FS.
func (fs *FS) Len() int {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return len(fs.files)
}

// Get returns the file at path, if any.
func (fs *FS) Get(path string) (File, bool) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	f, ok := fs.files[path]
	return f, ok
}

// AsFiles returns the contents of the FS sorted by path.
func (fs *FS) AsFiles() Files {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fl := make(Files, 0, len(fs.files))
	for _, f := range fs.files {
		fl = append(fl, f)
	}
	sort.Slice(fl, func(i, j int) bool {
		return fl[i].RelativePath < fl[j].RelativePath
	})
	return fl
}

// Write writes all of the files to their paths below prefix, creating
// parent directories as needed. Existing files are overwritten.
func (fs *FS) Write(ctx context.Context, prefix string) error {
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(ioLimit)

	for _, f := range fs.AsFiles() {
		f := f
		g.Go(func() error {
			path := filepath.Join(prefix, filepath.FromSlash(f.RelativePath))
			if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				return fmt.Errorf("%s: failed to ensure parent directory exists: %w", path, err)
			}
			if err := os.WriteFile(path, f.Data, 0o644); err != nil {
				return fmt.Errorf("%s: error while writing file: %w", path, err)
			}
			return nil
		})
	}
	return g.Wait()
}

// Verify compares each file against the one at the same path below prefix.
// It returns a multierror holding a [*ShouldExistErr] or a
// [*ContentsDifferErr] per stale file, in path order, or an IO error.
func (fs *FS) Verify(ctx context.Context, prefix string) error {
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(ioLimit)

	files := fs.AsFiles()
	stale := make([]error, len(files))
	for i, f := range files {
		i, f := i, f
		g.Go(func() error {
			path := filepath.Join(prefix, filepath.FromSlash(f.RelativePath))
			ondisk, err := os.ReadFile(path) //nolint:gosec
			if errors.Is(err, os.ErrNotExist) {
				stale[i] = &ShouldExistErr{Path: path}
				return nil
			}
			if err != nil {
				return fmt.Errorf("%s: error reading file: %w", path, err)
			}
			if string(ondisk) != string(f.Data) {
				stale[i] = &ContentsDifferErr{
					Path: path,
					Diff: unifiedDiff(path, string(ondisk), string(f.Data)),
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("io error while verifying tree: %w", err)
	}

	var result *multierror.Error
	for _, err := range stale {
		if err != nil {
			result = multierror.Append(result, err)
		}
	}
	return result.ErrorOrNil()
}

func unifiedDiff(path, ondisk, generated string) string {
	edits := myers.ComputeEdits(span.URIFromPath(path), ondisk, generated)
	return fmt.Sprint(gotextdiff.ToUnified(path, path+" (generated)", ondisk, edits))
}
