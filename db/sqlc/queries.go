package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// Querier lists the single-statement queries exposed as is.
type Querier interface {
	CreateScan(ctx context.Context, id uuid.UUID) (Scan, error)
	FindTags(ctx context.Context, arg FindTagsParams) ([]FileTag, error)
}

var _ Querier = (*Queries)(nil)

const createScan = `-- name: CreateScan :one
INSERT INTO scans (id) VALUES ($1)
RETURNING id, created_at
`

func (q *Queries) CreateScan(ctx context.Context, id uuid.UUID) (Scan, error) {
	row := q.db.QueryRow(ctx, createScan, id)
	var i Scan
	err := row.Scan(&i.ID, &i.CreatedAt)
	return i, err
}

const upsertFile = `-- name: UpsertFile :one
INSERT INTO files (path, hash, scan_id) VALUES ($1, $2, $3)
ON CONFLICT (path) DO UPDATE
SET hash = EXCLUDED.hash, scan_id = EXCLUDED.scan_id, updated_at = now()
RETURNING id, path, hash, scan_id, updated_at
`

type upsertFileParams struct {
	Path   string
	Hash   string
	ScanID uuid.UUID
}

func (q *Queries) upsertFile(ctx context.Context, arg upsertFileParams) (File, error) {
	row := q.db.QueryRow(ctx, upsertFile, arg.Path, arg.Hash, arg.ScanID)
	var i File
	err := row.Scan(&i.ID, &i.Path, &i.Hash, &i.ScanID, &i.UpdatedAt)
	return i, err
}

const getFile = `-- name: GetFile :one
SELECT id, path, hash, scan_id, updated_at FROM files
WHERE path = $1
`

func (q *Queries) getFile(ctx context.Context, path string) (File, error) {
	row := q.db.QueryRow(ctx, getFile, path)
	var i File
	err := row.Scan(&i.ID, &i.Path, &i.Hash, &i.ScanID, &i.UpdatedAt)
	return i, err
}

const deleteFileTags = `-- name: DeleteFileTags :exec
DELETE FROM tags WHERE file_id = $1
`

func (q *Queries) deleteFileTags(ctx context.Context, fileID int64) error {
	_, err := q.db.Exec(ctx, deleteFileTags, fileID)
	return err
}

type insertTagParams struct {
	FileID int64
	Name   string
	Kind   string
	Line   int32
}

// insertTags bulk loads the tags with COPY.
func (q *Queries) insertTags(ctx context.Context, arg []insertTagParams) (int64, error) {
	return q.db.CopyFrom(
		ctx,
		pgx.Identifier{"tags"},
		[]string{"file_id", "name", "kind", "line"},
		pgx.CopyFromSlice(len(arg), func(i int) ([]any, error) {
			return []any{arg[i].FileID, arg[i].Name, arg[i].Kind, arg[i].Line}, nil
		}),
	)
}

const listFileTags = `-- name: ListFileTags :many
SELECT name, kind, line FROM tags
WHERE file_id = $1
ORDER BY line, id
`

type listFileTagsRow struct {
	Name string
	Kind string
	Line int32
}

func (q *Queries) listFileTags(ctx context.Context, fileID int64) ([]listFileTagsRow, error) {
	rows, err := q.db.Query(ctx, listFileTags, fileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []listFileTagsRow{}
	for rows.Next() {
		var i listFileTagsRow
		if err := rows.Scan(&i.Name, &i.Kind, &i.Line); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const findTags = `-- name: FindTags :many
SELECT f.path, t.name, t.kind, t.line
FROM tags t
JOIN files f ON f.id = t.file_id
WHERE t.name = $1
  AND ($2::varchar IS NULL OR t.kind = $2)
ORDER BY f.path, t.line, t.id
LIMIT $3
OFFSET $4
`

type FindTagsParams struct {
	Name   string      `json:"name"`
	Kind   pgtype.Text `json:"kind"`
	Limit  int32       `json:"limit"`
	Offset int32       `json:"offset"`
}

func (q *Queries) FindTags(ctx context.Context, arg FindTagsParams) ([]FileTag, error) {
	rows, err := q.db.Query(ctx, findTags, arg.Name, arg.Kind, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []FileTag{}
	for rows.Next() {
		var i FileTag
		if err := rows.Scan(&i.Path, &i.Name, &i.Kind, &i.Line); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const deleteFile = `-- name: DeleteFile :execrows
DELETE FROM files WHERE path = $1
`

func (q *Queries) deleteFile(ctx context.Context, path string) (int64, error) {
	result, err := q.db.Exec(ctx, deleteFile, path)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
