package ingest

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JustJay7/court-record-ingest/internal/database"
	"github.com/JustJay7/court-record-ingest/internal/mapper"
)

func TestIngestBatchKeepsOrder(t *testing.T) {
	store := newFakeStore()
	o := newOrchestrator(store, nil)

	reqs := make([]Request, 0, 9)
	for i := 0; i < 9; i++ {
		payload := fmt.Sprintf(`{"case_info": {"cnr_number": "CNR%03d"}, "case_status": {"case_stage": "Admission"}}`, i)
		if i%3 == 2 {
			payload = `{"broken":`
		}
		reqs = append(reqs, Request{Kind: "high_court", Payload: []byte(payload)})
	}

	results := o.IngestBatch(context.Background(), reqs)
	require.Len(t, results, 9)

	for i, r := range results {
		assert.Equal(t, i, r.Index)
		require.NotNil(t, r.Report)
		if i%3 == 2 {
			assert.ErrorIs(t, r.Err, mapper.ErrMalformedPayload)
			continue
		}
		require.NoError(t, r.Err)
		assert.Equal(t, fmt.Sprintf("CNR%03d", i), r.Report.CNR)
		assert.Equal(t, database.OutcomeOK, r.Report.Outcome)
	}
	assert.Len(t, store.merged, 6)
	assert.Len(t, store.logs, 9)
}

func TestIngestBatchAgainstSQLite(t *testing.T) {
	store := database.NewStore(setupDB(t))
	o := newOrchestrator(store, nil)

	reqs := []Request{courtRequest(), courtRequest(), courtRequest()}
	results := o.IngestBatch(context.Background(), reqs)

	for _, r := range results {
		require.NoError(t, r.Err)
		assert.Equal(t, database.OutcomeOK, r.Report.Outcome)
	}

	c, err := store.FindCase(context.Background(), "default", "GJAH010012342023")
	require.NoError(t, err)
	assert.Len(t, c.Parties, 3)
	assert.Len(t, c.Hearings, 2)
}

func TestIngestBatchCancelled(t *testing.T) {
	store := newFakeStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results := newOrchestrator(store, nil).IngestBatch(ctx, []Request{courtRequest(), courtRequest()})
	for _, r := range results {
		assert.ErrorIs(t, r.Err, context.Canceled)
		assert.Nil(t, r.Report)
	}
	assert.Empty(t, store.merged)
}
