package api

import (
	"net/http"

	db "github.com/Drolfothesgnir/m4tags/db/sqlc"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/rs/zerolog/log"
)

type FindTagsRequest struct {
	Name     string `form:"name" binding:"required"`
	Kind     string `form:"kind" binding:"omitempty,oneof=macro variable"`
	PageID   int32  `form:"page_id" binding:"omitempty,min=1,max=10000"`
	PageSize int32  `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// findTags looks a name up across all the stored files.
func (service *Service) findTags(ctx *gin.Context) {
	var req FindTagsRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		ctx.JSON(
			http.StatusBadRequest,
			NewErrorResponse(ErrInvalidParams, ExtractErrorFields(err)...))
		return
	}

	if req.PageID == 0 {
		req.PageID = 1
	}

	if req.PageSize == 0 {
		req.PageSize = defaultLimit
	}

	arg := db.FindTagsParams{
		Name:   req.Name,
		Kind:   pgtype.Text{String: req.Kind, Valid: req.Kind != ""},
		Limit:  req.PageSize,
		Offset: (req.PageID - 1) * req.PageSize,
	}

	tags, err := service.store.FindTags(ctx, arg)
	if err != nil {
		log.Error().Err(err).Str("name", req.Name).Msg("cannot find tags")
		ctx.JSON(http.StatusInternalServerError, NewErrorResponse(ErrInternal))
		return
	}

	if tags == nil {
		tags = []db.FileTag{}
	}

	ctx.JSON(http.StatusOK, tags)
}
