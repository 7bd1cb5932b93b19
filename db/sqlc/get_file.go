package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/Drolfothesgnir/m4tags/m4"
	"github.com/jackc/pgx/v5"
)

func (s *SQLStore) GetFile(ctx context.Context, path string) (File, error) {
	file, err := s.getFile(ctx, path)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return File{}, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return File{}, fmt.Errorf("cannot get file %s: %w", path, err)
	}

	return file, nil
}

// GetFileTags returns the tags stored for the file, in line order.
// A known file without tags gives an empty slice.
func (s *SQLStore) GetFileTags(ctx context.Context, path string) ([]m4.Tag, error) {
	file, err := s.GetFile(ctx, path)
	if err != nil {
		return nil, err
	}

	rows, err := s.listFileTags(ctx, file.ID)
	if err != nil {
		return nil, fmt.Errorf("cannot list tags of %s: %w", path, err)
	}

	tags := make([]m4.Tag, len(rows))
	for i, row := range rows {
		kind, err := m4.Parser.ParseKind(row.Kind)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDataCorrupted, err)
		}

		tags[i] = m4.Tag{Kind: kind, Name: row.Name, Line: int(row.Line)}
	}

	return tags, nil
}

func (s *SQLStore) DeleteFile(ctx context.Context, path string) error {
	n, err := s.deleteFile(ctx, path)
	if err != nil {
		return fmt.Errorf("cannot delete file %s: %w", path, err)
	}

	if n == 0 {
		return fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	return nil
}
