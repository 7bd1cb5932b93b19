package api

import (
	"errors"
	"net/http"

	db "github.com/Drolfothesgnir/m4tags/db/sqlc"
	"github.com/Drolfothesgnir/m4tags/m4"
	"github.com/gin-gonic/gin"
)

type FileRequest struct {
	Path string `form:"path" binding:"required"`
}

type FileTagsResponse struct {
	Path string   `json:"path"`
	Tags []m4.Tag `json:"tags"`
}

func (service *Service) getFileTags(ctx *gin.Context) {
	var req FileRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		ctx.JSON(
			http.StatusBadRequest,
			NewErrorResponse(ErrInvalidParams, ExtractErrorFields(err)...))
		return
	}

	tags, err := service.store.GetFileTags(ctx, req.Path)
	if err != nil {
		if errors.Is(err, db.ErrFileNotFound) {
			ctx.JSON(http.StatusNotFound, NewErrorResponse(ErrFileNotFound, ErrorField{"path", req.Path}))
			return
		}

		ctx.JSON(http.StatusInternalServerError, NewErrorResponse(ErrInternal))
		return
	}

	if tags == nil {
		tags = []m4.Tag{}
	}

	ctx.JSON(http.StatusOK, FileTagsResponse{Path: req.Path, Tags: tags})
}

func (service *Service) deleteFile(ctx *gin.Context) {
	var req FileRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		ctx.JSON(
			http.StatusBadRequest,
			NewErrorResponse(ErrInvalidParams, ExtractErrorFields(err)...))
		return
	}

	err := service.store.DeleteFile(ctx, req.Path)
	if err != nil {
		if errors.Is(err, db.ErrFileNotFound) {
			ctx.JSON(http.StatusNotFound, NewErrorResponse(ErrFileNotFound, ErrorField{"path", req.Path}))
			return
		}

		ctx.JSON(http.StatusInternalServerError, NewErrorResponse(ErrInternal))
		return
	}

	ctx.Status(http.StatusNoContent)
}
