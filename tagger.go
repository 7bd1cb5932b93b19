package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/Drolfothesgnir/m4tags/ctags"
	db "github.com/Drolfothesgnir/m4tags/db/sqlc"
	"github.com/Drolfothesgnir/m4tags/index"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// tagFiles scans the paths and writes the tags found to w.
// It returns the scan results, failed files included.
func tagFiles(ctx context.Context, runner *index.Runner, paths []string, w io.Writer) ([]index.FileTags, error) {
	results, err := runner.Run(ctx, paths)
	if err != nil {
		return nil, err
	}

	var entries []ctags.Entry
	for _, ft := range results {
		if ft.Err != nil {
			continue
		}

		for _, tag := range ft.Tags {
			entries = append(entries, ctags.Entry{Path: ft.Path, Tag: tag})
		}
	}

	if err := ctags.Write(w, entries); err != nil {
		return nil, err
	}

	return results, nil
}

// persistFiles stores the tags of every successfully scanned file under a new scan.
// A file which cannot be stored does not stop the others; the returned scan id
// is uuid.Nil only when the scan itself could not be created.
func persistFiles(ctx context.Context, store db.Store, results []index.FileTags) (uuid.UUID, error) {
	scan, err := store.CreateScan(ctx, uuid.New())
	if err != nil {
		return uuid.Nil, fmt.Errorf("cannot create scan: %w", err)
	}

	var errs []error
	for _, ft := range results {
		if ft.Err != nil {
			continue
		}

		res, err := store.ReplaceFileTagsTx(ctx, db.ReplaceFileTagsTxParams{
			ScanID: scan.ID,
			Path:   ft.Path,
			Hash:   ft.Hash,
			Tags:   ft.Tags,
		})
		if err != nil {
			log.Error().Err(err).Str("path", ft.Path).Msg("cannot store tags")
			errs = append(errs, fmt.Errorf("cannot store tags of %s: %w", ft.Path, err))
			continue
		}

		log.Debug().Str("path", ft.Path).Int64("tags", res.Tags).Msg("tags stored")
	}

	return scan.ID, errors.Join(errs...)
}

// failed counts the files which could not be scanned.
func failed(results []index.FileTags) int {
	n := 0
	for _, ft := range results {
		if ft.Err != nil {
			n++
		}
	}
	return n
}
