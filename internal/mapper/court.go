package mapper

import (
	"github.com/tidwall/gjson"

	"github.com/JustJay7/court-record-ingest/internal/database"
	"github.com/JustJay7/court-record-ingest/internal/normalize"
)

// Section roots in priority order. District feeds use case_info and
// case_status; high court feeds use case_details and case_status_details.
// Either may sit under a "data" wrapper or be flattened to the top level.
var (
	infoRoots = []string{
		"case_info", "data.case_info",
		"case_details", "data.case_details",
		"", "data",
	}
	statusRoots = []string{
		"case_status", "data.case_status",
		"case_status_details", "data.case_status_details",
		"", "data",
	}
	locationRoots = append(append([]string{}, statusRoots[:4]...), infoRoots...)
	partyRoots    = []string{
		"party_details", "data.party_details",
		"parties", "data.parties",
		"", "data",
	}
)

// caseFieldPaths lists, per canonical field, every key path tried in order.
var caseFieldPaths = struct {
	Title, FilingNumber, FilingDate, RegistrationNumber, RegistrationDate, CNR []string
	CaseType, Stage, FirstHearingDate, NextHearingDate, DecisionDate         []string
	Coram, BenchType, JudicialBranch, State, District, Category             []string
	SubCategory, CourtNumberAndJudge                                        []string
}{
	Title:               normalize.Under(infoRoots, "case_title", "title"),
	FilingNumber:        normalize.Under(infoRoots, "filing_number", "filing_no"),
	FilingDate:          normalize.Under(infoRoots, "filing_date", "date_of_filing"),
	RegistrationNumber:  normalize.Under(infoRoots, "registration_number", "registration_no", "reg_no"),
	RegistrationDate:    normalize.Under(infoRoots, "registration_date", "date_of_registration", "reg_date"),
	CNR:                 normalize.Under(infoRoots, "cnr_number", "cnr", "cnr_no"),
	CaseType:            normalize.Under(infoRoots, "case_type", "case_type_name"),
	Stage:               normalize.Under(statusRoots, "case_stage", "stage_of_case", "stage", "case_status"),
	FirstHearingDate:    normalize.Under(statusRoots, "first_hearing_date", "first_hearing"),
	NextHearingDate:     normalize.Under(statusRoots, "next_hearing_date", "next_date", "next_hearing"),
	DecisionDate:        normalize.Under(statusRoots, "decision_date", "date_of_decision", "disposal_date"),
	Coram:               normalize.Under(statusRoots, "coram", "judge", "judge_name"),
	BenchType:           normalize.Under(statusRoots, "bench_type", "bench"),
	JudicialBranch:      normalize.Under(statusRoots, "judicial_branch", "branch"),
	State:               normalize.Under(locationRoots, "state", "state_name"),
	District:            normalize.Under(locationRoots, "district", "district_name"),
	Category:            normalize.Under(locationRoots, "category", "case_category"),
	SubCategory:         normalize.Under(locationRoots, "sub_category", "subcategory", "case_sub_category"),
	CourtNumberAndJudge: normalize.Under(statusRoots, "court_number_and_judge", "court_no_and_judge", "court_number", "court_name"),
}

var (
	petitionerPaths = normalize.Under(partyRoots,
		"petitioner_and_advocate", "petitioner_and_advocates", "petitioner_advocate", "petitioners", "petitioner")
	respondentPaths = normalize.Under(partyRoots,
		"respondent_and_advocate", "respondent_and_advocates", "respondent_advocate", "respondents", "respondent")

	iaPaths        = normalize.WithData("ia_details", "interlocutory_applications", "ia_status", "ias", "ia")
	actPaths       = normalize.WithData("acts", "acts_and_sections", "act_details", "act_and_section", "under_acts")
	objectionPaths = normalize.WithData("objections", "objection_details", "objection")
	documentPaths  = normalize.WithData("documents", "document_details", "documents_filed", "filed_documents", "document_list")
)

// courtFields resolves the canonical case fields of a district or high court
// payload. Unresolved fields stay nil.
func courtFields(doc gjson.Result) database.Case {
	p := caseFieldPaths
	c := database.Case{
		Title:               normalize.ProbeString(doc, p.Title...),
		FilingNumber:        normalize.ProbeString(doc, p.FilingNumber...),
		FilingDate:          normalize.ProbeDate(doc, p.FilingDate...),
		RegistrationNumber:  normalize.ProbeString(doc, p.RegistrationNumber...),
		RegistrationDate:    normalize.ProbeDate(doc, p.RegistrationDate...),
		CaseType:            normalize.ProbeString(doc, p.CaseType...),
		Stage:               normalize.ProbeString(doc, p.Stage...),
		FirstHearingDate:    normalize.ProbeDate(doc, p.FirstHearingDate...),
		NextHearingDate:     normalize.ProbeDate(doc, p.NextHearingDate...),
		DecisionDate:        normalize.ProbeDate(doc, p.DecisionDate...),
		Coram:               normalize.ProbeString(doc, p.Coram...),
		BenchType:           normalize.ProbeString(doc, p.BenchType...),
		JudicialBranch:      normalize.ProbeString(doc, p.JudicialBranch...),
		State:               normalize.ProbeString(doc, p.State...),
		District:            normalize.ProbeString(doc, p.District...),
		Category:            normalize.ProbeString(doc, p.Category...),
		SubCategory:         normalize.ProbeString(doc, p.SubCategory...),
		CourtNumberAndJudge: normalize.ProbeString(doc, p.CourtNumberAndJudge...),
	}
	c.CNR = normalize.Deref(normalize.ProbeString(doc, p.CNR...))
	return c
}

func (m *Mapper) mapCourtRecord(kind Kind, doc gjson.Result) *Result {
	r := &Result{Kind: kind, Case: courtFields(doc)}
	r.Case.Kind = kind.String()

	r.Parties = append(
		partiesFrom(normalize.Probe(doc, petitionerPaths...), database.PartyPetitioner),
		partiesFrom(normalize.Probe(doc, respondentPaths...), database.PartyRespondent)...,
	)
	if r.Case.Title == nil {
		r.Case.Title = titleFromParties(r.Parties)
	}

	iaRows, _ := normalize.ProbeRows(doc, iaPaths...)
	r.InterimApplications = interimApplicationsFrom(iaRows)
	r.Acts = actsFrom(normalize.Probe(doc, actPaths...))

	objectionRows, _ := normalize.ProbeRows(doc, objectionPaths...)
	r.Objections = objectionsFrom(objectionRows)

	documentRows, _ := normalize.ProbeRows(doc, documentPaths...)
	r.Documents = documentsFrom(documentRows)

	r.Hearings = Hearings(doc)
	r.Orders = Orders(doc, r.Hearings, r.Documents)

	m.logger.Debug("Mapped court record",
		"kind", kind,
		"cnr", r.Case.CNR,
		"parties", len(r.Parties),
		"interim_applications", len(r.InterimApplications),
		"acts", len(r.Acts),
		"orders", len(r.Orders),
		"hearings", len(r.Hearings),
		"objections", len(r.Objections),
		"documents", len(r.Documents),
	)

	return r
}

// titleFromParties builds "<first petitioner> vs. <first respondent>".
func titleFromParties(parties []database.Party) *string {
	var petitioner, respondent string
	for _, p := range parties {
		switch {
		case p.Type == database.PartyPetitioner && petitioner == "":
			petitioner = p.Name
		case p.Type == database.PartyRespondent && respondent == "":
			respondent = p.Name
		}
	}
	return versus(petitioner, respondent)
}

func versus(petitioner, respondent string) *string {
	switch {
	case petitioner != "" && respondent != "":
		return normalize.Ptr(petitioner + " vs. " + respondent)
	case petitioner != "":
		return normalize.Ptr(petitioner)
	case respondent != "":
		return normalize.Ptr(respondent)
	}
	return nil
}
