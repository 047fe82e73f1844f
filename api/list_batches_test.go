package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	mockdb "github.com/Drolfothesgnir/htmlscan/db/mock"
	db "github.com/Drolfothesgnir/htmlscan/db/sqlc"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestListBatches(t *testing.T) {
	ids := []uuid.UUID{uuid.New(), uuid.New()}
	now := time.Now().UTC().Truncate(time.Second)

	batches := make([]db.Batch, len(ids))
	for i, id := range ids {
		batches[i] = db.Batch{
			ID:        db.PgUUID(id),
			Documents: int32(i + 1),
			CreatedAt: pgtype.Timestamptz{Time: now.Add(-time.Duration(i) * time.Minute), Valid: true},
		}
	}

	testCases := []struct {
		name          string
		query         string
		buildStubs    func(store *mockdb.MockStore)
		checkResponse func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name:  "DefaultLimit",
			query: "",
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					ListBatches(gomock.Any(), db.ListBatchesParams{Limit: defaultBatchesLimit, Offset: 0}).
					Times(1).
					Return(batches, nil)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)

				var got []batchResponse
				require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
				require.Len(t, got, 2)
				for i, b := range got {
					require.Equal(t, ids[i].String(), b.BatchID)
					require.Equal(t, i+1, b.Summary.Documents)
					require.True(t, batches[i].CreatedAt.Time.Equal(b.CreatedAt))
				}
			},
		},
		{
			name:  "Paging",
			query: "?limit=5&offset=10",
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					ListBatches(gomock.Any(), db.ListBatchesParams{Limit: 5, Offset: 10}).
					Times(1).
					Return([]db.Batch{}, nil)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)
				require.JSONEq(t, "[]", recorder.Body.String())
			},
		},
		{
			name:  "LimitTooBig",
			query: "?limit=1000",
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().ListBatches(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
				resp, err := extractErrorFromBuffer(recorder.Body)
				require.NoError(t, err)
				require.Equal(t, []ErrorField{{FieldName: "limit", ErrorMessage: "value is too long"}}, resp.Fields)
			},
		},
		{
			name:  "NegativeOffset",
			query: "?offset=-1",
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().ListBatches(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
		{
			name:  "NotANumber",
			query: "?limit=ten",
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().ListBatches(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
		{
			name:  "DatabaseError",
			query: "",
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().ListBatches(gomock.Any(), gomock.Any()).Times(1).Return(nil, errors.New("connection refused"))
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusInternalServerError, recorder.Code)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			store := mockdb.NewMockStore(ctrl)

			tc.buildStubs(store)

			service := newTestService(t, store, nil)
			recorder := httptest.NewRecorder()

			request, err := http.NewRequest(http.MethodGet, BatchesURL+tc.query, nil)
			require.NoError(t, err)

			service.router.ServeHTTP(recorder, request)
			tc.checkResponse(t, recorder)
		})
	}
}
