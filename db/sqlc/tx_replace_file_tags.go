package db

import (
	"context"
	"errors"
	"strings"

	"github.com/Drolfothesgnir/m4tags/m4"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

type ReplaceFileTagsTxParams struct {
	ScanID uuid.UUID `json:"scan_id"`
	Path   string    `json:"path"`
	Hash   string    `json:"hash"`
	Tags   []m4.Tag  `json:"tags"`
}

type ReplaceFileTagsTxResult struct {
	File File  `json:"file"`
	Tags int64 `json:"tags"`
}

// ReplaceFileTagsTx stores the result of scanning one file: the file row is
// created or updated, and its previous tags are replaced by the new ones.
// The scan must exist already, see CreateScan.
func (s *SQLStore) ReplaceFileTagsTx(ctx context.Context, arg ReplaceFileTagsTxParams) (ReplaceFileTagsTxResult, error) {
	var result ReplaceFileTagsTxResult

	if arg.Path == "" {
		return result, ErrEmptyPath
	}

	err := s.execTx(ctx, func(q *Queries) error {
		file, err := q.upsertFile(ctx, upsertFileParams{
			Path:   arg.Path,
			Hash:   arg.Hash,
			ScanID: arg.ScanID,
		})

		// instead of looking the scan up first, relying on the foreign key
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23503" && pgErr.ConstraintName == "files_scan_id_fkey" {
				return ErrScanNotFound
			}
		}

		if err != nil {
			return err
		}

		if err = q.deleteFileTags(ctx, file.ID); err != nil {
			return err
		}

		n, err := q.insertTags(ctx, tagRows(file.ID, arg.Tags))
		if err != nil {
			return err
		}

		result.File = file
		result.Tags = n

		return nil
	})

	return result, err
}

// tagRows turns the tags of a file into rows. Postgres text cannot hold NUL
// bytes nor invalid UTF-8, so names are cleaned of both.
func tagRows(fileID int64, tags []m4.Tag) []insertTagParams {
	rows := make([]insertTagParams, len(tags))
	for i, tag := range tags {
		rows[i] = insertTagParams{
			FileID: fileID,
			Name:   cleanName(tag.Name),
			Kind:   tag.Kind.String(),
			Line:   int32(tag.Line),
		}
	}
	return rows
}

func cleanName(name string) string {
	return strings.ToValidUTF8(strings.ReplaceAll(name, "\x00", ""), "\uFFFD")
}
