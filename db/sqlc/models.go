package db

import (
	"time"

	"github.com/google/uuid"
)

type Scan struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}

type File struct {
	ID        int64     `json:"id"`
	Path      string    `json:"path"`
	Hash      string    `json:"hash"`
	ScanID    uuid.UUID `json:"scan_id"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FileTag is a tag along with the path of the file it was found in.
type FileTag struct {
	Path string `json:"path"`
	Name string `json:"name"`
	Kind string `json:"kind"`
	Line int32  `json:"line"`
}
