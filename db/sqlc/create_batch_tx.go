package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Drolfothesgnir/htmlscan/analyzer"
	"github.com/Drolfothesgnir/htmlscan/batch"
	"github.com/Drolfothesgnir/htmlscan/util"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type CreateBatchTxParams struct {
	ID       uuid.UUID                   `json:"id"`
	Summary  batch.Summary               `json:"summary"`
	Outcomes []batch.SerializableOutcome `json:"outcomes"`
}

type CreateBatchTxResult struct {
	Batch   Batch    `json:"batch"`
	Reports []Report `json:"reports"`
}

// Function to create the "batches" row and one "reports" row per outcome in one transaction.
func (store *SQLStore) CreateBatchTx(ctx context.Context, arg CreateBatchTxParams) (CreateBatchTxResult, error) {
	var result CreateBatchTxResult

	batchID := PgUUID(arg.ID)

	err := store.execTx(ctx, func(q *Queries) error {
		var err error
		result.Batch, err = q.CreateBatch(ctx, CreateBatchParams{
			ID:        batchID,
			Documents: int32(arg.Summary.Documents),
			Failed:    int32(arg.Summary.Failed),
			Tokens:    int32(arg.Summary.Tokens),
			Errors:    int32(arg.Summary.Errors),
		})
		if err != nil {
			return err
		}

		result.Reports = make([]Report, 0, len(arg.Outcomes))
		for _, outcome := range arg.Outcomes {
			params, err := NewCreateReportParams(batchID, outcome)
			if err != nil {
				return err
			}

			report, err := q.CreateReport(ctx, params)
			if err != nil {
				return err
			}
			result.Reports = append(result.Reports, report)
		}

		return nil
	})

	return result, err
}

// NewCreateReportParams builds the "reports" row of a single serialized outcome.
// Strings Postgres cannot store are made storable with [util.PgString].
func NewCreateReportParams(batchID pgtype.UUID, outcome batch.SerializableOutcome) (CreateReportParams, error) {
	outcome = storableOutcome(outcome)

	body, err := json.Marshal(outcome)
	if err != nil {
		return CreateReportParams{}, fmt.Errorf("cannot encode report of %q: %w", outcome.DocumentID, err)
	}

	return CreateReportParams{
		BatchID:    batchID,
		DocumentID: outcome.DocumentID,
		TokenCount: int32(len(outcome.Tokens)),
		ErrorCount: int32(len(outcome.Errors)),
		Failure:    util.OptionalText(outcome.Failure),
		Body:       body,
	}, nil
}

// PgUUID converts id into its pgx form.
func PgUUID(id uuid.UUID) pgtype.UUID {
	return pgtype.UUID{Bytes: id, Valid: true}
}

// storableOutcome returns a copy of o with every string passed through [util.PgString].
func storableOutcome(o batch.SerializableOutcome) batch.SerializableOutcome {
	out := batch.SerializableOutcome{
		SerializableReport: analyzer.SerializableReport{
			DocumentID: util.PgString(o.DocumentID),
			Tokens:     make([]analyzer.SerializableToken, len(o.Tokens)),
			Errors:     make([]string, len(o.Errors)),
			Issues:     make([]analyzer.SerializableIssue, len(o.Issues)),
		},
		Failure: util.PgString(o.Failure),
	}

	for i, t := range o.Tokens {
		t.Lexeme = util.PgString(t.Lexeme)
		out.Tokens[i] = t
	}

	for i, e := range o.Errors {
		out.Errors[i] = util.PgString(e)
	}

	for i, issue := range o.Issues {
		issue.Description = util.PgString(issue.Description)
		out.Issues[i] = issue
	}

	return out
}
