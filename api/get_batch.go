package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Drolfothesgnir/htmlscan/batch"
	db "github.com/Drolfothesgnir/htmlscan/db/sqlc"
	"github.com/Drolfothesgnir/htmlscan/tmpstore"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type getBatchRequest struct {
	ID string `uri:"id" json:"id" binding:"required,uuid"`
}

// getBatch serves a stored batch, from the cache when possible.
func (service *Service) getBatch(ctx *gin.Context) {
	var req getBatchRequest
	if err := ctx.ShouldBindUri(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, NewErrorResponse(err))
		return
	}

	cached, err := service.cache.GetBatchResult(ctx, req.ID)
	if err == nil {
		ctx.JSON(http.StatusOK, cached)
		return
	}
	if !errors.Is(err, tmpstore.ErrNotFound) {
		log.Warn().Err(err).Str("batch_id", req.ID).Msg("cannot read cached batch result")
	}

	stored, err := service.store.GetBatchWithReports(ctx, uuid.MustParse(req.ID))
	if err != nil {
		if errors.Is(err, db.ErrEntityNotFound) {
			err := fmt.Errorf("batch with id [%s] not found", req.ID)
			ctx.JSON(http.StatusNotFound, NewErrorResponse(err))
			return
		}

		ctx.JSON(http.StatusInternalServerError, NewErrorResponse(err))
		return
	}

	result := tmpstore.BatchResult{
		BatchID:   req.ID,
		CreatedAt: stored.Batch.CreatedAt.Time,
		Summary:   batchSummary(stored.Batch),
		Outcomes:  stored.Outcomes,
	}

	service.cacheBatchResult(ctx, result)

	ctx.JSON(http.StatusOK, result)
}

func batchSummary(b db.Batch) batch.Summary {
	return batch.Summary{
		Documents: int(b.Documents),
		Failed:    int(b.Failed),
		Tokens:    int(b.Tokens),
		Errors:    int(b.Errors),
	}
}
