package db

import "errors"

var (
	ErrFileNotFound  = errors.New("file not found")
	ErrScanNotFound  = errors.New("scan not found")
	ErrEmptyPath     = errors.New("file path is empty")
	ErrDataCorrupted = errors.New("data is corrupted")
)
