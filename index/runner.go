package index

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Runner scans many files concurrently, each one with its own scanner.
type Runner struct {
	// Workers caps the number of files scanned at the same time.
	// Zero means runtime.NumCPU().
	Workers int

	// MaxFileSize caps the number of bytes scanned per file. Zero means no limit.
	MaxFileSize int64

	Logger zerolog.Logger
}

// Run scans the given paths. Directories are walked recursively and only the
// files claimed by the scanner are picked up, while files named explicitly are
// scanned whatever their name.
//
// A path which cannot be walked or read is reported through [FileTags.Err] and
// does not stop the run. The returned error is the context's error.
// Results are sorted by path.
func (r *Runner) Run(ctx context.Context, paths []string) ([]FileTags, error) {
	files, failures, err := r.collect(ctx, paths)
	if err != nil {
		return nil, err
	}

	workers := r.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make([]FileTags, len(files))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(workers)

	for i, path := range files {
		// stop scheduling once cancelled
		if groupCtx.Err() != nil {
			break
		}

		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			ft, err := ScanFile(path, r.MaxFileSize, r.Logger)
			if err != nil {
				r.Logger.Error().Err(err).Str("path", path).Msg("cannot scan file")
				ft = FileTags{Path: path, Err: err}
			}

			r.Logger.Debug().
				Str("path", path).
				Int("tags", len(ft.Tags)).
				Msg("file scanned")

			results[i] = ft
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	results = append(results, failures...)

	slices.SortFunc(results, func(a, b FileTags) int {
		return strings.Compare(a.Path, b.Path)
	})

	return results, nil
}

// collect expands the directories among paths, dropping duplicates.
// Paths which cannot be walked come back as failures.
func (r *Runner) collect(ctx context.Context, paths []string) (files []string, failures []FileTags, err error) {
	seen := make(map[string]bool)

	add := func(path string) {
		path = filepath.Clean(path)
		if !seen[path] {
			seen[path] = true
			files = append(files, path)
		}
	}

	fail := func(path string, err error) {
		path = filepath.Clean(path)
		if !seen[path] {
			seen[path] = true
			r.Logger.Error().Err(err).Str("path", path).Msg("cannot walk path")
			failures = append(failures, FileTags{Path: path, Err: fmt.Errorf("cannot walk %s: %w", path, err)})
		}
	}

	for _, root := range paths {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err := ctx.Err(); err != nil {
				return err
			}

			// a missing root or an unreadable directory, the rest is still walked
			if err != nil {
				fail(path, err)
				return nil
			}

			// explicitly named files are always taken
			if path == root && !d.IsDir() {
				add(path)
				return nil
			}

			if d.IsDir() {
				// hidden directories such as .git are not worth walking
				if path != root && strings.HasPrefix(d.Name(), ".") {
					return filepath.SkipDir
				}
				return nil
			}

			if d.Type().IsRegular() && Scannable(path) {
				add(path)
			}

			return nil
		})

		if err != nil {
			return nil, nil, err
		}
	}

	return files, failures, nil
}
