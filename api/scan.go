package api

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"time"

	db "github.com/Drolfothesgnir/m4tags/db/sqlc"
	"github.com/Drolfothesgnir/m4tags/index"
	"github.com/Drolfothesgnir/m4tags/m4"
	"github.com/Drolfothesgnir/m4tags/tmpstore"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type ScanRequest struct {
	Path    string `json:"path" binding:"required,m4file"`
	Content string `json:"content"`
	// Persist stores the tags in the database, replacing the ones of the same path.
	Persist bool `json:"persist"`
}

type ScanResponse struct {
	Path   string     `json:"path"`
	Hash   string     `json:"hash"`
	Cached bool       `json:"cached"`
	ScanID *uuid.UUID `json:"scan_id,omitempty"`
	Tags   []m4.Tag   `json:"tags"`
}

// scan extracts the tags of the uploaded content. Results are cached by content
// hash, the cache being a shortcut only: when it fails, the content is scanned anyway.
func (service *Service) scan(ctx *gin.Context) {
	limit := service.config.MaxUploadSize
	if limit > 0 {
		ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, maxScanBodySize(limit))
	}

	var req ScanRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			field := ErrorField{"content", fmt.Sprintf("content can be at most %d bytes", limit)}
			ctx.JSON(http.StatusRequestEntityTooLarge, NewErrorResponse(ErrContentTooLarge, field))
			return
		}

		ctx.JSON(
			http.StatusBadRequest,
			NewErrorResponse(ErrInvalidParams, ExtractErrorFields(err)...))
		return
	}

	if limit > 0 && len(req.Content) > limit {
		field := ErrorField{"content", fmt.Sprintf("content can be at most %d bytes, got %d", limit, len(req.Content))}
		ctx.JSON(http.StatusRequestEntityTooLarge, NewErrorResponse(ErrContentTooLarge, field))
		return
	}

	sum := sha256.Sum256([]byte(req.Content))
	hash := hex.EncodeToString(sum[:])

	resp := ScanResponse{Path: req.Path, Hash: hash}

	cached, err := service.cache.GetScanResult(ctx, hash)
	switch {
	case err == nil:
		resp.Cached = true
		resp.Tags = cached.Tags

	default:
		if !errors.Is(err, tmpstore.ErrCacheMiss) {
			log.Warn().Err(err).Str("hash", hash).Msg("scan cache is unavailable")
		}

		resp.Tags = index.ScanBytes(req.Path, []byte(req.Content), log.Logger).Tags

		result := tmpstore.ScanResult{Tags: resp.Tags, ScannedAt: time.Now().UTC()}
		if err := service.cache.SaveScanResult(ctx, hash, result, service.config.ScanCacheTTL); err != nil {
			log.Warn().Err(err).Str("hash", hash).Msg("cannot cache scan result")
		}
	}

	if resp.Tags == nil {
		resp.Tags = []m4.Tag{}
	}

	if req.Persist {
		scanID, err := service.persist(ctx, req.Path, hash, resp.Tags)
		if err != nil {
			log.Error().Err(err).Str("path", req.Path).Msg("cannot persist tags")
			ctx.JSON(http.StatusInternalServerError, NewErrorResponse(ErrPersistenceFailed))
			return
		}
		resp.ScanID = &scanID
	}

	ctx.JSON(http.StatusOK, resp)
}

// maxScanBodySize bounds the JSON body of a scan request: the content, which may
// double in size once escaped, plus room for the other fields.
func maxScanBodySize(maxContent int) int64 {
	return 2*int64(maxContent) + 4<<10
}

// persist records a new scan and stores the tags of the file under it.
func (service *Service) persist(ctx *gin.Context, path, hash string, tags []m4.Tag) (uuid.UUID, error) {
	scan, err := service.store.CreateScan(ctx, uuid.New())
	if err != nil {
		return uuid.Nil, err
	}

	_, err = service.store.ReplaceFileTagsTx(ctx, db.ReplaceFileTagsTxParams{
		ScanID: scan.ID,
		Path:   path,
		Hash:   hash,
		Tags:   tags,
	})
	if err != nil {
		return uuid.Nil, err
	}

	return scan.ID, nil
}
