package mapper

import "github.com/JustJay7/court-record-ingest/internal/database"

// Result is one payload mapped onto the canonical schema.
type Result struct {
	Kind Kind          `json:"kind"`
	Case database.Case `json:"case"`

	Parties             []database.Party              `json:"parties"`
	InterimApplications []database.InterimApplication `json:"interim_applications"`
	Acts                []database.ActSection         `json:"acts"`
	Orders              []database.Order              `json:"orders"`
	Hearings            []database.Hearing            `json:"hearings"`
	Objections          []database.Objection          `json:"objections"`
	Documents           []database.Document           `json:"documents"`

	EarlierCourts   []database.EarlierCourtDetail `json:"earlier_courts,omitempty"`
	TaggedMatters   []database.TaggedMatter       `json:"tagged_matters,omitempty"`
	ListingDates    []database.ListingDate        `json:"listing_dates,omitempty"`
	Notices         []database.Notice             `json:"notices,omitempty"`
	Defects         []database.Defect             `json:"defects,omitempty"`
	JudgementOrders []database.JudgementOrder     `json:"judgement_orders,omitempty"`
	OfficeReports   []database.OfficeReport       `json:"office_reports,omitempty"`
}

// Collections binds every collection the result's kind owns to caseID.
func (r *Result) Collections(caseID uint) []database.Collection {
	var out []database.Collection
	for _, name := range r.Kind.Collections() {
		switch name {
		case CollectionParties:
			out = append(out, database.NewCollection(name, caseID, r.Parties))
		case CollectionInterimApplications:
			out = append(out, database.NewCollection(name, caseID, r.InterimApplications))
		case CollectionActs:
			out = append(out, database.NewCollection(name, caseID, r.Acts))
		case CollectionOrders:
			out = append(out, database.NewCollection(name, caseID, r.Orders))
		case CollectionHearings:
			out = append(out, database.NewCollection(name, caseID, r.Hearings))
		case CollectionObjections:
			out = append(out, database.NewCollection(name, caseID, r.Objections))
		case CollectionDocuments:
			out = append(out, database.NewCollection(name, caseID, r.Documents))
		case CollectionEarlierCourts:
			out = append(out, database.NewCollection(name, caseID, r.EarlierCourts))
		case CollectionTaggedMatters:
			out = append(out, database.NewCollection(name, caseID, r.TaggedMatters))
		case CollectionListingDates:
			out = append(out, database.NewCollection(name, caseID, r.ListingDates))
		case CollectionNotices:
			out = append(out, database.NewCollection(name, caseID, r.Notices))
		case CollectionDefects:
			out = append(out, database.NewCollection(name, caseID, r.Defects))
		case CollectionJudgementOrders:
			out = append(out, database.NewCollection(name, caseID, r.JudgementOrders))
		case CollectionOfficeReports:
			out = append(out, database.NewCollection(name, caseID, r.OfficeReports))
		}
	}
	return out
}

// Counts returns the row count of every collection the kind owns.
func (r *Result) Counts() map[string]int {
	all := map[string]int{
		CollectionParties:             len(r.Parties),
		CollectionInterimApplications: len(r.InterimApplications),
		CollectionActs:                len(r.Acts),
		CollectionOrders:              len(r.Orders),
		CollectionHearings:            len(r.Hearings),
		CollectionObjections:          len(r.Objections),
		CollectionDocuments:           len(r.Documents),
		CollectionEarlierCourts:       len(r.EarlierCourts),
		CollectionTaggedMatters:       len(r.TaggedMatters),
		CollectionListingDates:        len(r.ListingDates),
		CollectionNotices:             len(r.Notices),
		CollectionDefects:             len(r.Defects),
		CollectionJudgementOrders:     len(r.JudgementOrders),
		CollectionOfficeReports:       len(r.OfficeReports),
	}

	counts := make(map[string]int)
	for _, name := range r.Kind.Collections() {
		counts[name] = all[name]
	}
	return counts
}

// Empty reports whether the payload yielded neither a case field nor a row.
func (r *Result) Empty() bool {
	if hasCaseFields(&r.Case) {
		return false
	}
	for _, n := range r.Counts() {
		if n > 0 {
			return false
		}
	}
	return true
}

func hasCaseFields(c *database.Case) bool {
	if c.CNR != "" || len(c.BenchComposition) > 0 {
		return true
	}
	return anySet(
		c.Title, c.FilingNumber, c.FilingDate, c.RegistrationNumber, c.RegistrationDate,
		c.Stage, c.FirstHearingDate, c.NextHearingDate, c.DecisionDate, c.Coram,
		c.BenchType, c.JudicialBranch, c.State, c.District, c.Category, c.SubCategory,
		c.CaseType, c.CourtNumberAndJudge, c.DiaryNumber, c.DiaryFiledOn, c.DiarySection,
		c.DiaryStatus, c.PresentLastListedOn, c.CategoryCode, c.VerificationDate,
	)
}

func anySet(values ...*string) bool {
	for _, v := range values {
		if v != nil {
			return true
		}
	}
	return false
}
