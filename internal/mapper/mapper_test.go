package mapper

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JustJay7/court-record-ingest/internal/database"
	"github.com/JustJay7/court-record-ingest/pkg/logger"
)

func newTestMapper() *Mapper {
	return New(logger.NewNop())
}

func TestMapRejectsMalformedPayloads(t *testing.T) {
	m := newTestMapper()
	for _, payload := range []string{`{"case_info":`, `[1,2,3]`, `"text"`, ``} {
		_, err := m.Map(HighCourt, []byte(payload))
		assert.True(t, errors.Is(err, ErrMalformedPayload), payload)
	}
}

func TestMapUnknownKind(t *testing.T) {
	_, err := newTestMapper().Map(Kind("family_court"), []byte(`{"cnr":"X"}`))
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestMapNoData(t *testing.T) {
	m := newTestMapper()
	payloads := []string{
		`{}`,
		`{"data":{}}`,
		`{"case_info":{"cnr_number":"-","filing_date":"NA"},"case_history":[]}`,
	}
	for _, kind := range Kinds() {
		for _, p := range payloads {
			r, err := m.Map(kind, []byte(p))
			assert.ErrorIs(t, err, ErrNoData, "%s %s", kind, p)
			require.NotNil(t, r)
			assert.True(t, r.Empty())
		}
	}
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind("  Supreme_Court ")
	require.NoError(t, err)
	assert.Equal(t, SupremeCourt, k)

	_, err = ParseKind("tribunal")
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestKindCollections(t *testing.T) {
	assert.Len(t, HighCourt.Collections(), 7)
	assert.Len(t, DistrictCourt.Collections(), 7)
	assert.Len(t, SupremeCourt.Collections(), 12)
	assert.NotContains(t, SupremeCourt.Collections(), CollectionHearings)
	assert.NotContains(t, SupremeCourt.Collections(), CollectionObjections)
	assert.Contains(t, SupremeCourt.Collections(), CollectionListingDates)
	assert.Contains(t, SupremeCourt.Collections(), CollectionDefects)
	assert.Empty(t, GujaratDisplayBoard.Collections())
	assert.Empty(t, DistrictCauseList.Collections())
}

func TestResultCollectionsAttachCaseID(t *testing.T) {
	r, err := newTestMapper().Map(DistrictCourt, []byte(districtPayload))
	require.NoError(t, err)

	collections := r.Collections(42)
	require.Len(t, collections, 7)

	counts := r.Counts()
	for _, c := range collections {
		assert.Equal(t, counts[c.Name], c.Len, c.Name)
	}

	parties := collections[0].Rows.(*[]database.Party)
	assert.Equal(t, uint(42), (*parties)[0].CaseID)
	assert.Zero(t, r.Parties[0].CaseID)
}
