package api

import (
	"net/http"

	"github.com/Drolfothesgnir/m4tags/m4"
	"github.com/gin-gonic/gin"
)

type kindResponse struct {
	Letter      string `json:"letter"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Enabled     bool   `json:"enabled"`
}

type parserResponse struct {
	Name       string         `json:"name"`
	Patterns   []string       `json:"patterns"`
	Extensions []string       `json:"extensions"`
	Kinds      []kindResponse `json:"kinds"`
}

func newParserResponse(def m4.Definition) parserResponse {
	kinds := make([]kindResponse, len(def.Kinds))
	for i, k := range def.Kinds {
		kinds[i] = kindResponse{
			Letter:      string(k.Letter),
			Name:        k.Name,
			Description: k.Description,
			Enabled:     k.Enabled,
		}
	}

	return parserResponse{
		Name:       def.Name,
		Patterns:   def.Patterns,
		Extensions: def.Extensions,
		Kinds:      kinds,
	}
}

// getKinds describes the scanner: the files it claims and the kinds of tags it produces.
func (service *Service) getKinds(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, newParserResponse(m4.Parser))
}
