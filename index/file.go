// Package index runs the M4 scanner over files and directories.
package index

import (
	"bufio"
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/Drolfothesgnir/m4tags/m4"
	"github.com/rs/zerolog"
)

// FileTags are the tags found in one file.
type FileTags struct {
	Path string `json:"path"`
	// Hash is the hex SHA-256 of the scanned content.
	Hash string  `json:"hash"`
	Tags m4.Tags `json:"tags"`
	// Truncated is set when the file was longer than the size limit
	// and only its beginning was scanned.
	Truncated bool `json:"truncated,omitempty"`
	// Err is set when the file could not be read.
	Err error `json:"-"`
}

// Scannable reports whether the scanner claims the file.
func Scannable(path string) bool {
	return m4.Parser.Matches(path)
}

// ScanBytes scans in-memory content.
func ScanBytes(path string, content []byte, logger zerolog.Logger) FileTags {
	sum := sha256.Sum256(content)

	var tags m4.Tags
	s := m4.New(bytes.NewReader(content), &tags, m4.WithLogger(logger))
	// reading from memory never fails
	_ = s.Scan()

	return FileTags{
		Path: path,
		Hash: hex.EncodeToString(sum[:]),
		Tags: tags,
	}
}

// ScanFile scans at most maxSize bytes of the file. maxSize <= 0 means no limit.
func ScanFile(path string, maxSize int64, logger zerolog.Logger) (FileTags, error) {
	info, err := os.Stat(path)
	if err != nil {
		return FileTags{}, fmt.Errorf("cannot stat %s: %w", path, err)
	}

	if !info.Mode().IsRegular() {
		return FileTags{}, fmt.Errorf("cannot scan %s: %w", path, ErrNotRegular)
	}

	f, err := os.Open(path)
	if err != nil {
		return FileTags{}, fmt.Errorf("cannot open %s: %w", path, err)
	}
	defer f.Close()

	var r io.Reader = f
	truncated := false

	if maxSize > 0 {
		r = io.LimitReader(f, maxSize)
		truncated = info.Size() > maxSize
	}

	// hashing what the scanner reads, so both see the same bytes
	h := sha256.New()

	var tags m4.Tags
	s := m4.New(bufio.NewReader(io.TeeReader(r, h)), &tags, m4.WithLogger(logger))
	if err := s.Scan(); err != nil {
		return FileTags{}, fmt.Errorf("cannot read %s: %w", path, err)
	}

	if truncated {
		logger.Warn().
			Str("path", path).
			Int64("size", info.Size()).
			Int64("max_size", maxSize).
			Msg("file is too large, scanned its beginning only")
	}

	return FileTags{
		Path:      path,
		Hash:      hex.EncodeToString(h.Sum(nil)),
		Tags:      tags,
		Truncated: truncated,
	}, nil
}
