package ingest

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/JustJay7/court-record-ingest/internal/cache"
	"github.com/JustJay7/court-record-ingest/internal/database"
	"github.com/JustJay7/court-record-ingest/internal/mapper"
)

const courtPayload = `{
	"case_info": {"cnr_number": "GJAH010012342023", "filing_number": "1234/2023", "filing_date": "17-11-2025"},
	"case_status": {"next_hearing_date": "19/11/2025", "case_stage": "Evidence"},
	"petitioner_and_advocate": "1) Ramesh Kumar Advocate- S K Shah 2) Suresh Kumar",
	"respondent_and_advocate": "1) State of Gujarat",
	"acts": [{"under_act": "Indian Penal Code", "under_section": "420"}],
	"case_history": [
		{"hearing_date": "18-11-2025", "purpose_of_hearing": "Evidence"},
		{"hearing_date": "19-11-2025", "purpose_of_hearing": "Final order passed"}
	]
}`

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Initialize(":memory:")
	require.NoError(t, err)
	return db
}

func newOrchestrator(store Store, c Evictor) *Orchestrator {
	return New(store, nil, c, nil, Config{DefaultTenant: "default", Workers: 4, Timeout: 5 * time.Second})
}

func courtRequest() Request {
	return Request{Kind: "district_court", Payload: []byte(courtPayload)}
}

func countRows(t *testing.T, db *gorm.DB, model interface{}, caseID uint) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Where("case_id = ?", caseID).Count(&n).Error)
	return n
}

func TestIngestIsIdempotent(t *testing.T) {
	db := setupDB(t)
	store := database.NewStore(db)
	o := newOrchestrator(store, nil)
	ctx := context.Background()

	first, err := o.Ingest(ctx, courtRequest())
	require.NoError(t, err)
	assert.Equal(t, database.OutcomeOK, first.Outcome)
	assert.Equal(t, "GJAH010012342023", first.CNR)
	assert.Equal(t, "default", first.TenantID)
	assert.Len(t, first.Collections, 7)

	before, err := store.FindCase(ctx, "default", "GJAH010012342023")
	require.NoError(t, err)

	second, err := o.Ingest(ctx, courtRequest())
	require.NoError(t, err)
	assert.Equal(t, first.CaseID, second.CaseID)
	assert.NotEqual(t, first.RunID, second.RunID)

	after, err := store.FindCase(ctx, "default", "GJAH010012342023")
	require.NoError(t, err)

	assert.Equal(t, int64(3), countRows(t, db, &database.Party{}, first.CaseID))
	assert.Equal(t, int64(1), countRows(t, db, &database.ActSection{}, first.CaseID))
	assert.Equal(t, int64(2), countRows(t, db, &database.Hearing{}, first.CaseID))
	assert.Equal(t, int64(1), countRows(t, db, &database.Order{}, first.CaseID))

	require.Len(t, after.Parties, len(before.Parties))
	for i := range before.Parties {
		assert.Equal(t, before.Parties[i].Name, after.Parties[i].Name)
		assert.Equal(t, before.Parties[i].Type, after.Parties[i].Type)
		assert.Equal(t, before.Parties[i].Advocate, after.Parties[i].Advocate)
	}
	require.Len(t, after.Orders, 1)
	assert.True(t, after.Orders[0].Derived)
	assert.Equal(t, before.Orders[0].OrderDate, after.Orders[0].OrderDate)

	var cases int64
	require.NoError(t, db.Model(&database.Case{}).Count(&cases).Error)
	assert.Equal(t, int64(1), cases)

	logs, err := store.ListIngestions(ctx, "default", "GJAH010012342023", 10)
	require.NoError(t, err)
	assert.Len(t, logs, 2)
}

func TestIngestMergeKeepsExistingFields(t *testing.T) {
	db := setupDB(t)
	store := database.NewStore(db)
	o := newOrchestrator(store, nil)
	ctx := context.Background()

	_, err := o.Ingest(ctx, courtRequest())
	require.NoError(t, err)

	_, err = o.Ingest(ctx, Request{
		CNR:     "GJAH010012342023",
		Kind:    "gujarat_display_board",
		Payload: []byte(`{"board": {"stage": "Arguments", "date": "-", "court_no": "Court 5"}}`),
	})
	require.NoError(t, err)

	c, err := store.FindCase(ctx, "default", "GJAH010012342023")
	require.NoError(t, err)
	assert.Equal(t, "Arguments", *c.Stage)
	assert.Equal(t, "2025-11-19", *c.NextHearingDate)
	assert.Equal(t, "2025-11-17", *c.FilingDate)
	assert.Equal(t, "gujarat_display_board", c.Kind)
	assert.Len(t, c.Parties, 3, "listing payloads own no collections")
}

func TestIngestTenantsAreSeparate(t *testing.T) {
	db := setupDB(t)
	store := database.NewStore(db)
	o := newOrchestrator(store, nil)
	ctx := context.Background()

	a, err := o.Ingest(ctx, Request{Tenant: "a", Kind: "district_court", Payload: []byte(courtPayload)})
	require.NoError(t, err)
	b, err := o.Ingest(ctx, Request{Tenant: "b", Kind: "district_court", Payload: []byte(courtPayload)})
	require.NoError(t, err)

	assert.NotEqual(t, a.CaseID, b.CaseID)
}

func TestIngestNoData(t *testing.T) {
	store := newFakeStore()
	o := newOrchestrator(store, nil)

	report, err := o.Ingest(context.Background(), Request{CNR: "X1", Kind: "high_court", Payload: []byte(`{"data": {}}`)})
	assert.ErrorIs(t, err, mapper.ErrNoData)
	assert.Equal(t, database.OutcomeNoData, report.Outcome)
	assert.Empty(t, store.replaced)
	require.Len(t, store.logs, 1)
	assert.Equal(t, database.OutcomeNoData, store.logs[0].Outcome)
}

func TestIngestRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		req  Request
		want error
	}{
		{"malformed json", Request{CNR: "X1", Kind: "high_court", Payload: []byte(`{"case_info":`)}, mapper.ErrMalformedPayload},
		{"not an object", Request{CNR: "X1", Kind: "high_court", Payload: []byte(`[]`)}, mapper.ErrMalformedPayload},
		{"unknown kind", Request{CNR: "X1", Kind: "tribunal", Payload: []byte(`{}`)}, mapper.ErrUnknownKind},
		{"missing cnr", Request{Kind: "high_court", Payload: []byte(`{"case_status": {"stage": "Admission"}}`)}, ErrMissingCNR},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newFakeStore()
			report, err := newOrchestrator(store, nil).Ingest(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.want)
			require.NotNil(t, report)
			assert.Equal(t, database.OutcomeFailed, report.Outcome)
			assert.NotEmpty(t, report.Error)
			assert.Empty(t, store.merged)
			require.Len(t, store.logs, 1)
		})
	}
}

func TestIngestIsolatesCollectionFailures(t *testing.T) {
	store := newFakeStore()
	store.failOn[mapper.CollectionActs] = true
	store.failOn[mapper.CollectionHearings] = true
	o := newOrchestrator(store, nil)

	report, err := o.Ingest(context.Background(), courtRequest())
	require.NoError(t, err)

	assert.Equal(t, database.OutcomePartial, report.Outcome)
	assert.ElementsMatch(t, []string{mapper.CollectionActs, mapper.CollectionHearings}, report.Failed())
	assert.Len(t, report.Collections, 7)
	assert.ElementsMatch(t, []string{
		mapper.CollectionParties,
		mapper.CollectionInterimApplications,
		mapper.CollectionOrders,
		mapper.CollectionObjections,
		mapper.CollectionDocuments,
	}, store.replaced)
	require.Len(t, store.logs, 1)
	assert.Equal(t, database.OutcomePartial, store.logs[0].Outcome)
}

func TestIngestMergeFailure(t *testing.T) {
	store := newFakeStore()
	store.mergeErr = errors.New("disk full")

	report, err := newOrchestrator(store, nil).Ingest(context.Background(), courtRequest())
	assert.Error(t, err)
	assert.Equal(t, database.OutcomeFailed, report.Outcome)
	assert.Empty(t, store.replaced)
}

func TestIngestRequestCNRWins(t *testing.T) {
	store := newFakeStore()
	req := courtRequest()
	req.CNR = "OVERRIDE0001"

	report, err := newOrchestrator(store, nil).Ingest(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "OVERRIDE0001", report.CNR)
	assert.Equal(t, []string{"default/OVERRIDE0001"}, store.merged)
}

func TestIngestEvictsCachedCase(t *testing.T) {
	c := cache.NewCache(10, time.Minute)
	key := cache.CaseKey("default", "GJAH010012342023")
	c.Set(key, &database.Case{CNR: "GJAH010012342023"})

	_, err := newOrchestrator(newFakeStore(), c).Ingest(context.Background(), courtRequest())
	require.NoError(t, err)

	_, found := c.Get(key)
	assert.False(t, found)
}

func TestPreviewWritesNothing(t *testing.T) {
	store := newFakeStore()
	result, err := newOrchestrator(store, nil).Preview(courtRequest())
	require.NoError(t, err)
	assert.Equal(t, "GJAH010012342023", result.Case.CNR)
	assert.Empty(t, store.merged)
	assert.Empty(t, store.logs)
}

type fakeStore struct {
	mu       sync.Mutex
	nextID   uint
	failOn   map[string]bool
	mergeErr error
	merged   []string
	replaced []string
	logs     []*database.IngestionLog
}

func newFakeStore() *fakeStore {
	return &fakeStore{failOn: map[string]bool{}}
}

func (s *fakeStore) MergeCase(_ context.Context, tenantID, cnr string, _ *database.Case) (uint, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mergeErr != nil {
		return 0, s.mergeErr
	}
	s.nextID++
	s.merged = append(s.merged, tenantID+"/"+cnr)
	return s.nextID, nil
}

func (s *fakeStore) Replace(_ context.Context, _ uint, c database.Collection) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failOn[c.Name] {
		return errors.New("constraint failed")
	}
	s.replaced = append(s.replaced, c.Name)
	return nil
}

func (s *fakeStore) LogIngestion(_ context.Context, entry *database.IngestionLog) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logs = append(s.logs, entry)
	return nil
}
