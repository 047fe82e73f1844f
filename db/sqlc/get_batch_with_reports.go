package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Drolfothesgnir/htmlscan/batch"
	"github.com/Drolfothesgnir/htmlscan/util"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// BatchWithReports is a stored batch together with the decoded outcomes of its documents.
type BatchWithReports struct {
	Batch    Batch                       `json:"batch"`
	Outcomes []batch.SerializableOutcome `json:"outcomes"`
}

// GetBatchWithReports reads the batch and its reports in insertion order.
// Returns ErrEntityNotFound for unknown ids and ErrDataCorrupted when a report body cannot be decoded.
func (store *SQLStore) GetBatchWithReports(ctx context.Context, id uuid.UUID) (BatchWithReports, error) {
	var result BatchWithReports

	b, err := store.GetBatch(ctx, PgUUID(id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return result, ErrEntityNotFound
		}
		return result, err
	}
	result.Batch = b

	reports, err := store.ListReportsByBatch(ctx, b.ID)
	if err != nil {
		return result, err
	}

	result.Outcomes, err = DecodeReports(reports)
	return result, err
}

// DecodeReports unmarshals the JSON bodies of the reports.
// The failure column takes precedence over the failure stored in the body.
func DecodeReports(reports []Report) ([]batch.SerializableOutcome, error) {
	outcomes := make([]batch.SerializableOutcome, len(reports))
	for i, r := range reports {
		if err := json.Unmarshal(r.Body, &outcomes[i]); err != nil {
			return nil, fmt.Errorf("%w: report %d: %v", ErrDataCorrupted, r.ID, err)
		}
		outcomes[i].Failure = util.TextOrEmpty(r.Failure)
	}
	return outcomes, nil
}
