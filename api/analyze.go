package api

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/Drolfothesgnir/htmlscan/batch"
	db "github.com/Drolfothesgnir/htmlscan/db/sqlc"
	"github.com/Drolfothesgnir/htmlscan/tmpstore"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var (
	ErrNoFiles = errors.New("no files were sent")
)

// analyze runs the uploaded documents through the dispatcher, stores the batch
// and responds with one serialized outcome per document.
func (service *Service) analyze(ctx *gin.Context) {
	form, err := ctx.MultipartForm()
	if err != nil || len(form.File[FilesFormField]) == 0 {
		ctx.JSON(http.StatusBadRequest, NewErrorResponse(ErrNoFiles))
		return
	}

	files := form.File[FilesFormField]
	if max := service.config.MaxFiles; max > 0 && len(files) > max {
		err := fmt.Errorf("too many files: %d, at most %d are accepted", len(files), max)
		ctx.JSON(http.StatusBadRequest, NewErrorResponse(err))
		return
	}

	sources := make([]batch.Source, len(files))
	for i, fh := range files {
		sources[i] = uploadedSource(fh, service.config.MaxDocumentBytes)
	}

	outcomes := service.dispatcher.Dispatch(sources)

	result := tmpstore.BatchResult{
		BatchID:   uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		Summary:   batch.Summarize(outcomes),
		Outcomes:  batch.SerializeAll(outcomes),
	}

	_, err = service.store.CreateBatchTx(ctx, db.CreateBatchTxParams{
		ID:       uuid.MustParse(result.BatchID),
		Summary:  result.Summary,
		Outcomes: result.Outcomes,
	})
	if err != nil {
		log.Error().Err(err).Str("batch_id", result.BatchID).Msg("cannot store batch")
		ctx.JSON(http.StatusInternalServerError, NewErrorResponse(err))
		return
	}

	service.cacheBatchResult(ctx, result)

	log.Info().
		Str("batch_id", result.BatchID).
		Int("documents", result.Summary.Documents).
		Int("failed", result.Summary.Failed).
		Msg("batch analyzed")

	ctx.Header(BatchIDHeader, result.BatchID)
	ctx.JSON(http.StatusOK, result.Outcomes)
}

// uploadedSource reads the uploaded file lazily, inside the worker analyzing it.
func uploadedSource(fh *multipart.FileHeader, maxBytes int64) batch.Source {
	return batch.ReaderSource(
		fh.Filename,
		fh.Header.Get("Content-Type"),
		maxBytes,
		func() (io.ReadCloser, error) {
			return fh.Open()
		},
	)
}

// cacheBatchResult keeps the result in the temporary store. Errors are only logged.
func (service *Service) cacheBatchResult(ctx *gin.Context, result tmpstore.BatchResult) {
	err := service.cache.SaveBatchResult(ctx, result, service.config.ResultCacheTTL)
	if err != nil {
		log.Warn().Err(err).Str("batch_id", result.BatchID).Msg("cannot cache batch result")
	}
}
