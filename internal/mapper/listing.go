package mapper

import (
	"github.com/tidwall/gjson"

	"github.com/JustJay7/court-record-ingest/internal/database"
	"github.com/JustJay7/court-record-ingest/internal/normalize"
)

// Display board and cause list payloads describe where and when a case is
// listed. They resolve case-level fields only: the row they come from is a
// snapshot of one day and must not replace the case's history.

var (
	boardRoots = []string{"board", "data.board", "display_board", "data.display_board", "", "data"}
	causeRoots = []string{"cause_list", "data.cause_list", "entry", "data.entry", "", "data"}
)

var listingFieldPaths = map[Kind]struct {
	CNR, Title, Registration, CaseType, Stage, NextHearing, Coram, Court, District, State []string
}{
	GujaratDisplayBoard: {
		CNR:          normalize.Under(boardRoots, "cnr", "cnr_number", "cnr_no"),
		Title:        normalize.Under(boardRoots, "case_title", "title", "parties"),
		Registration: normalize.Under(boardRoots, "case_number", "case_no", "registration_number"),
		CaseType:     normalize.Under(boardRoots, "case_type"),
		Stage:        normalize.Under(boardRoots, "stage", "status", "board_status", "case_status"),
		NextHearing:  normalize.Under(boardRoots, "next_hearing_date", "next_date", "board_date", "date"),
		Coram:        normalize.Under(boardRoots, "coram", "judge", "judges", "bench"),
		Court:        normalize.Under(boardRoots, "court_number_and_judge", "court_no", "court_number", "court"),
		State:        normalize.Under(boardRoots, "state"),
	},
	DistrictCauseList: {
		CNR:          normalize.Under(causeRoots, "cnr", "cnr_number", "cnr_no"),
		Title:        normalize.Under(causeRoots, "case_title", "title", "party_name", "parties"),
		Registration: normalize.Under(causeRoots, "case_number", "case_no", "registration_number"),
		CaseType:     normalize.Under(causeRoots, "case_type"),
		Stage:        normalize.Under(causeRoots, "purpose", "stage", "case_stage"),
		NextHearing:  normalize.Under(causeRoots, "cause_list_date", "next_hearing_date", "next_date", "hearing_date", "date"),
		Coram:        normalize.Under(causeRoots, "judge", "judge_name", "coram"),
		Court:        normalize.Under(causeRoots, "court_number_and_judge", "court_name", "court_no", "court"),
		District:     normalize.Under(causeRoots, "district", "district_name"),
		State:        normalize.Under(causeRoots, "state", "state_name"),
	},
}

var (
	listingPetitionerPaths = normalize.Under(append(boardRoots, causeRoots...), "petitioner", "petitioners")
	listingRespondentPaths = normalize.Under(append(boardRoots, causeRoots...), "respondent", "respondents")
)

func (m *Mapper) mapListing(kind Kind, doc gjson.Result) *Result {
	p := listingFieldPaths[kind]
	c := database.Case{
		Kind:                kind.String(),
		Title:               normalize.ProbeString(doc, p.Title...),
		RegistrationNumber:  normalize.ProbeString(doc, p.Registration...),
		CaseType:            normalize.ProbeString(doc, p.CaseType...),
		Stage:               normalize.ProbeString(doc, p.Stage...),
		NextHearingDate:     normalize.ProbeDate(doc, p.NextHearing...),
		Coram:               normalize.ProbeString(doc, p.Coram...),
		CourtNumberAndJudge: normalize.ProbeString(doc, p.Court...),
		District:            normalize.ProbeString(doc, p.District...),
		State:               normalize.ProbeString(doc, p.State...),
	}
	c.CNR = normalize.Deref(normalize.ProbeString(doc, p.CNR...))

	if c.Title == nil {
		c.Title = versus(
			firstPartyName(normalize.ProbeString(doc, listingPetitionerPaths...)),
			firstPartyName(normalize.ProbeString(doc, listingRespondentPaths...)),
		)
	}

	m.logger.Debug("Mapped listing", "kind", kind, "cnr", c.CNR)
	return &Result{Kind: kind, Case: c}
}

func firstPartyName(raw *string) string {
	if raw == nil {
		return ""
	}
	if parties := normalize.Parties(*raw); len(parties) > 0 {
		return parties[0].Name
	}
	return ""
}
