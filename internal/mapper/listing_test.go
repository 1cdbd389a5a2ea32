package mapper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapDisplayBoard(t *testing.T) {
	payload := `{"board": {
		"cnr": "GJHC240005552024",
		"case_number": "SCA/123/2024",
		"court_no": "Court 5",
		"judge": "HON'BLE MS. JUSTICE Y",
		"date": "19-11-2025",
		"status": "Sitting"
	}}`

	r, err := newTestMapper().Map(GujaratDisplayBoard, []byte(payload))
	require.NoError(t, err)

	assert.Equal(t, "GJHC240005552024", r.Case.CNR)
	assert.Equal(t, "gujarat_display_board", r.Case.Kind)
	assert.Equal(t, "SCA/123/2024", *r.Case.RegistrationNumber)
	assert.Equal(t, "Court 5", *r.Case.CourtNumberAndJudge)
	assert.Equal(t, "2025-11-19", *r.Case.NextHearingDate)
	assert.Equal(t, "Sitting", *r.Case.Stage)
	assert.Empty(t, r.Collections(1))
	assert.Empty(t, r.Counts())
}

func TestMapCauseList(t *testing.T) {
	payload := `{"data": {
		"cnr_number": "GJAH010012342023",
		"cause_list_date": "19/11/2025",
		"court_name": "Civil Court, Ahmedabad",
		"purpose": "Arguments",
		"petitioner": "1) RAMESH KUMAR Advocate- X Y",
		"respondent": "STATE OF GUJARAT",
		"district": "Ahmedabad"
	}}`

	r, err := newTestMapper().Map(DistrictCauseList, []byte(payload))
	require.NoError(t, err)

	assert.Equal(t, "GJAH010012342023", r.Case.CNR)
	assert.Equal(t, "2025-11-19", *r.Case.NextHearingDate)
	assert.Equal(t, "Arguments", *r.Case.Stage)
	assert.Equal(t, "Civil Court, Ahmedabad", *r.Case.CourtNumberAndJudge)
	assert.Equal(t, "RAMESH KUMAR vs. STATE OF GUJARAT", *r.Case.Title)
	assert.Equal(t, "Ahmedabad", *r.Case.District)
	assert.Empty(t, r.Collections(1))
}
