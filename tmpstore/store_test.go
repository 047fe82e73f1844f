package tmpstore

import (
	"context"
	"testing"
	"time"

	"github.com/Drolfothesgnir/htmlscan/batch"
	"github.com/Drolfothesgnir/htmlscan/util"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *RedisStore {
	t.Helper()
	if testing.Short() {
		t.Skip()
	}

	config, err := util.LoadConfig("../")
	if err != nil || config.RedisAddress == "" {
		t.Skip("redis is not configured")
	}

	store := NewStore(&config)
	t.Cleanup(func() { store.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := store.Ping(ctx); err != nil {
		t.Skip("redis is not reachable")
	}

	return store
}

func TestBatchResultLifecycle(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	result := BatchResult{
		BatchID:   uuid.NewString(),
		CreatedAt: time.Now().UTC().Truncate(time.Second),
		Summary:   batch.Summary{Documents: 1, Failed: 1},
		Outcomes: batch.SerializeAll([]batch.Outcome{
			{DocumentID: "missing.html", Err: batch.ErrDocumentTooLarge},
		}),
	}

	require.NoError(t, store.SaveBatchResult(ctx, result, time.Minute))

	got, err := store.GetBatchResult(ctx, result.BatchID)
	require.NoError(t, err)
	require.Equal(t, result, *got)

	_, err = store.GetBatchResult(ctx, uuid.NewString())
	require.ErrorIs(t, err, ErrNotFound)
}

func TestBatchResultExpires(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	result := BatchResult{BatchID: uuid.NewString(), CreatedAt: time.Now().UTC()}
	require.NoError(t, store.SaveBatchResult(ctx, result, 50*time.Millisecond))

	require.Eventually(t, func() bool {
		_, err := store.GetBatchResult(ctx, result.BatchID)
		return err == ErrNotFound
	}, 2*time.Second, 20*time.Millisecond)
}
