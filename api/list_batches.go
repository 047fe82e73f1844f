package api

import (
	"net/http"
	"time"

	"github.com/Drolfothesgnir/htmlscan/batch"
	db "github.com/Drolfothesgnir/htmlscan/db/sqlc"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const defaultBatchesLimit = 20

type listBatchesRequest struct {
	Limit  int32 `form:"limit" json:"limit" binding:"omitempty,min=1,max=100"`
	Offset int32 `form:"offset" json:"offset" binding:"omitempty,min=0"`
}

type batchResponse struct {
	BatchID   string        `json:"batch_id"`
	CreatedAt time.Time     `json:"created_at"`
	Summary   batch.Summary `json:"summary"`
}

func newBatchResponse(b db.Batch) batchResponse {
	return batchResponse{
		BatchID:   uuid.UUID(b.ID.Bytes).String(),
		CreatedAt: b.CreatedAt.Time,
		Summary:   batchSummary(b),
	}
}

// listBatches returns the summaries of the latest batches, newest first.
func (service *Service) listBatches(ctx *gin.Context) {
	var req listBatchesRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, NewErrorResponse(err))
		return
	}

	if req.Limit == 0 {
		req.Limit = defaultBatchesLimit
	}

	batches, err := service.store.ListBatches(ctx, db.ListBatchesParams{
		Limit:  req.Limit,
		Offset: req.Offset,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, NewErrorResponse(err))
		return
	}

	resp := make([]batchResponse, len(batches))
	for i, b := range batches {
		resp[i] = newBatchResponse(b)
	}

	ctx.JSON(http.StatusOK, resp)
}
