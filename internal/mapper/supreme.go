package mapper

import (
	"encoding/json"
	"regexp"

	"github.com/tidwall/gjson"
	"gorm.io/datatypes"

	"github.com/JustJay7/court-record-ingest/internal/database"
	"github.com/JustJay7/court-record-ingest/internal/normalize"
)

var supremeRoots = []string{
	"",
	normalize.Key("Case Details"), "case_details",
	"data",
	"data." + normalize.Key("Case Details"), "data.case_details",
}

// supremePaths escapes each human-readable section label and places it under
// every supreme court root.
func supremePaths(labels ...string) []string {
	keys := make([]string, len(labels))
	for i, l := range labels {
		keys[i] = normalize.Key(l)
	}
	return normalize.Under(supremeRoots, keys...)
}

var (
	scCNRPaths        = supremePaths("CNR Number", "CNR No.", "cnr_number", "cnr")
	scDiaryPaths      = supremePaths("Diary Info", "Diary Number", "Diary No.", "diary_info", "diary_number")
	scCaseNumberPaths = supremePaths("Case Number", "case_number")
	scListedOnPaths   = supremePaths("Present/Last Listed On", "Present/Last Listed on", "present_last_listed_on", "last_listed_on")
	scStagePaths      = supremePaths("Status/Stage", "Status", "status_stage", "status", "stage")
	scCategoryPaths   = supremePaths("Category", "category")
	scActPaths        = supremePaths("Acts", "Act", "acts")

	scPetitionerPaths = supremePaths("Petitioner(s)", "Petitioners", "Petitioner", "petitioners", "petitioner")
	scRespondentPaths = supremePaths("Respondent(s)", "Respondents", "Respondent", "respondents", "respondent")
	scPetAdvPaths     = supremePaths("Petitioner Advocate(s)", "Petitioner Advocate", "petitioner_advocates", "petitioner_advocate")
	scResAdvPaths     = supremePaths("Respondent Advocate(s)", "Respondent Advocate", "respondent_advocates", "respondent_advocate")

	// The title only reads the top-level party fields.
	scTitlePetitionerPaths = normalize.Under([]string{"", "data"}, normalize.Key("Petitioner(s)"), "Petitioner", "petitioner")
	scTitleRespondentPaths = normalize.Under([]string{"", "data"}, normalize.Key("Respondent(s)"), "Respondent", "respondent")

	scIAPaths             = supremePaths("Interlocutory Application Documents", "Interlocutory Applications", "IA", "interlocutory_applications")
	scDocumentPaths       = supremePaths("Other Documents", "Documents", "documents")
	scEarlierCourtPaths   = supremePaths("Earlier Court Details", "earlier_court_details")
	scTaggedMatterPaths   = supremePaths("Tagged Matters", "tagged_matters")
	scListingDatePaths    = supremePaths("Listing Dates", "listing_dates")
	scNoticePaths         = supremePaths("Notices", "notices")
	scDefectPaths         = supremePaths("Defects", "defects")
	scJudgementOrderPaths = supremePaths("Judgement Orders", "Judgment Orders", "judgement_orders", "judgment_orders")
	scOfficeReportPaths   = supremePaths("Office Report", "Office Reports", "office_reports")
)

var judgementOrderText = regexp.MustCompile(`^\s*` + dateToken + `\s*(?:\[\s*([^\]]*?)\s*\])?`)

func (m *Mapper) mapSupremeCourt(doc gjson.Result) *Result {
	r := &Result{Kind: SupremeCourt, Case: supremeFields(doc)}

	r.Parties = append(
		supremeParties(doc, scPetitionerPaths, scPetAdvPaths, database.PartyPetitioner),
		supremeParties(doc, scRespondentPaths, scResAdvPaths, database.PartyRespondent)...,
	)
	r.Case.Title = versus(
		firstPartyName(normalize.ProbeString(doc, scTitlePetitionerPaths...)),
		firstPartyName(normalize.ProbeString(doc, scTitleRespondentPaths...)),
	)

	iaRows, _ := normalize.ProbeRows(doc, scIAPaths...)
	r.InterimApplications = interimApplicationsFrom(iaRows)
	r.Acts = supremeActs(normalize.Probe(doc, scActPaths...))

	documentRows, _ := normalize.ProbeRows(doc, scDocumentPaths...)
	r.Documents = documentsFrom(documentRows)

	r.EarlierCourts = earlierCourtsFrom(probeRows(doc, scEarlierCourtPaths))
	r.TaggedMatters = taggedMattersFrom(probeRows(doc, scTaggedMatterPaths))
	r.ListingDates = listingDatesFrom(probeRows(doc, scListingDatePaths))
	r.Notices = noticesFrom(probeRows(doc, scNoticePaths))
	r.Defects = defectsFrom(probeRows(doc, scDefectPaths))
	r.JudgementOrders = judgementOrdersFrom(probeRows(doc, scJudgementOrderPaths))
	r.OfficeReports = officeReportsFrom(probeRows(doc, scOfficeReportPaths))

	r.Orders = ordersFromJudgements(r.JudgementOrders)
	if len(r.Orders) == 0 {
		r.Orders = DeriveOrders(nil, r.Documents)
	}

	m.logger.Debug("Mapped supreme court record",
		"cnr", r.Case.CNR,
		"diary_number", normalize.Deref(r.Case.DiaryNumber),
		"parties", len(r.Parties),
		"earlier_courts", len(r.EarlierCourts),
		"tagged_matters", len(r.TaggedMatters),
		"listing_dates", len(r.ListingDates),
		"notices", len(r.Notices),
		"defects", len(r.Defects),
		"judgement_orders", len(r.JudgementOrders),
		"office_reports", len(r.OfficeReports),
		"documents", len(r.Documents),
		"orders", len(r.Orders),
	)

	return r
}

func supremeFields(doc gjson.Result) database.Case {
	c := database.Case{
		Kind:  SupremeCourt.String(),
		Stage: normalize.ProbeString(doc, scStagePaths...),
	}
	c.CNR = normalize.Deref(normalize.ProbeString(doc, scCNRPaths...))

	if raw := normalize.ProbeString(doc, scDiaryPaths...); raw != nil {
		d := ParseDiaryInfo(*raw)
		c.DiaryNumber = d.Number
		c.DiaryFiledOn = d.FiledOn
		c.DiarySection = d.Section
		c.DiaryStatus = d.Status
		c.FilingDate = d.FiledOn
	}

	if raw := normalize.ProbeString(doc, scCaseNumberPaths...); raw != nil {
		n := ParseCaseNumber(*raw)
		c.RegistrationNumber = n.Number
		c.RegistrationDate = n.RegisteredOn
		c.VerificationDate = n.VerifiedOn
	}

	if raw := normalize.ProbeString(doc, scListedOnPaths...); raw != nil {
		l := ParseListedOn(*raw)
		c.PresentLastListedOn = l.Date
		if len(l.Bench) > 0 {
			if b, err := json.Marshal(l.Bench); err == nil {
				c.BenchComposition = datatypes.JSON(b)
			}
		}
	}

	if raw := normalize.ProbeString(doc, scCategoryPaths...); raw != nil {
		c.Category = raw
		c.CategoryCode = ParseCategoryCode(*raw)
	}

	return c
}

// supremeParties parses a party list and, when the list names no advocate,
// attaches the separate advocate field to the first party.
func supremeParties(doc gjson.Result, partyPaths, advocatePaths []string, partyType string) []database.Party {
	parties := partiesFrom(normalize.Probe(doc, partyPaths...), partyType)
	if len(parties) == 0 {
		return parties
	}
	for _, p := range parties {
		if p.Advocate != nil {
			return parties
		}
	}
	parties[0].Advocate = normalize.ProbeString(doc, advocatePaths...)
	return parties
}

func supremeActs(v gjson.Result) []database.ActSection {
	if v.Type == gjson.String {
		if act := normalize.Text(v.Str); act != nil {
			return []database.ActSection{{UnderAct: act}}
		}
		return []database.ActSection{}
	}
	return actsFrom(v)
}

func probeRows(doc gjson.Result, paths []string) []gjson.Result {
	rows, _ := normalize.ProbeRows(doc, paths...)
	return rows
}

func earlierCourtsFrom(rows []gjson.Result) []database.EarlierCourtDetail {
	out := []database.EarlierCourtDetail{}
	for _, row := range objects(rows) {
		f := normalize.Fields(row)
		e := database.EarlierCourtDetail{
			SrNo:                normalize.Pick(f, "", "srno", "sno", "no", "serialno"),
			Court:               normalize.Pick(f, "court", "courtname"),
			State:               normalize.Pick(f, "state"),
			Bench:               normalize.Pick(f, "bench"),
			CaseNumber:          normalize.Pick(f, "caseno", "casenumber"),
			OrderDate:           normalize.PickDate(f, "orderdate", "dateoforder"),
			CNR:                 normalize.Pick(f, "cnrno", "cnr", "cnrnumber"),
			JudgementChallenged: normalize.Pick(f, "judgementchallenged", "judgmentchallenged"),
			JudgementType:       normalize.Pick(f, "judgementtype", "judgmenttype"),
		}
		if !anySet(e.Court, e.CaseNumber, e.OrderDate, e.CNR) {
			continue
		}
		out = append(out, e)
	}
	return out
}

func taggedMattersFrom(rows []gjson.Result) []database.TaggedMatter {
	out := []database.TaggedMatter{}
	for _, row := range objects(rows) {
		f := normalize.Fields(row)
		t := database.TaggedMatter{
			Type:       normalize.Pick(f, "type", "mattertype"),
			CaseNumber: normalize.Pick(f, "casenumber", "caseno", "diaryno"),
			Title:      normalize.Pick(f, "petitionervsrespondent", "petitionervrespondent", "title", "casetitle"),
			List:       normalize.Pick(f, "list"),
			Status:     normalize.Pick(f, "status"),
			StatusDate: normalize.PickDate(f, "statinfo", "statusdate", "statusinfo"),
			EntryDate:  normalize.PickDate(f, "entrydate", "dateofentry"),
		}
		if !anySet(t.CaseNumber, t.Title) {
			continue
		}
		out = append(out, t)
	}
	return out
}

func listingDatesFrom(rows []gjson.Result) []database.ListingDate {
	out := []database.ListingDate{}
	for _, row := range objects(rows) {
		f := normalize.Fields(row)
		l := database.ListingDate{
			CauseListDate: normalize.PickDate(f, "cldate", "causelistdate", "listingdate", "date"),
			MiscOrRegular: normalize.Pick(f, "miscregular", "miscorregular", "misc"),
			Stage:         normalize.Pick(f, "stage"),
			Purpose:       normalize.Pick(f, "purpose"),
			Judges:        normalize.Pick(f, "judges", "proposedlistin", "coram", "bench"),
			Remarks:       normalize.Pick(f, "remarks", "ia"),
			Listed:        normalize.Pick(f, "listed", "listedornot"),
		}
		if !anySet(l.CauseListDate, l.Stage, l.Purpose) {
			continue
		}
		out = append(out, l)
	}
	return out
}

func noticesFrom(rows []gjson.Result) []database.Notice {
	out := []database.Notice{}
	for _, row := range objects(rows) {
		f := normalize.Fields(row)
		n := database.Notice{
			SrNo:           normalize.Pick(f, "serialnumber", "srno", "sno", "no"),
			ProcessID:      normalize.Pick(f, "processid", "processno"),
			NoticeType:     normalize.Pick(f, "noticetype", "type"),
			Name:           normalize.Pick(f, "name", "partyname"),
			StateDistrict:  normalize.Pick(f, "statedistrict", "state", "district"),
			Station:        normalize.Pick(f, "station"),
			IssueDate:      normalize.PickDate(f, "issuedate", "dateofissue"),
			ReturnableDate: normalize.PickDate(f, "returnabledate"),
			DispatchDate:   normalize.PickDate(f, "dispatchdate", "dateofdispatch"),
		}
		if !anySet(n.ProcessID, n.NoticeType, n.Name, n.IssueDate) {
			continue
		}
		out = append(out, n)
	}
	return out
}

func defectsFrom(rows []gjson.Result) []database.Defect {
	out := []database.Defect{}
	for _, row := range objects(rows) {
		f := normalize.Fields(row)
		d := database.Defect{
			SrNo:             normalize.Pick(f, "srno", "sno", "no"),
			Description:      normalize.Pick(f, "default", "defect", "description", "defects"),
			Remarks:          normalize.Pick(f, "remarks", "remark"),
			NotificationDate: normalize.PickDate(f, "notificationdate", "notifiedon"),
			RemovedOn:        normalize.PickDate(f, "removedondate", "removedon", "curedon"),
		}
		if !anySet(d.Description, d.NotificationDate, d.RemovedOn) {
			continue
		}
		out = append(out, d)
	}
	return out
}

// judgementOrdersFrom accepts object rows and the string form
// "17-11-2023 [ROP]" where the bracketed part is the order type.
func judgementOrdersFrom(rows []gjson.Result) []database.JudgementOrder {
	out := []database.JudgementOrder{}
	for _, row := range rows {
		var j database.JudgementOrder
		switch {
		case row.IsObject():
			f := normalize.Fields(row)
			j = database.JudgementOrder{
				Date: normalize.PickDate(f, "date", "orderdate", "judgementdate", "judgmentdate"),
				Type: normalize.Pick(f, "type", "ordertype", "description"),
				Link: normalize.Pick(f, "link", "url", "pdflink", "pdf"),
			}
		case row.Type == gjson.String:
			m := judgementOrderText.FindStringSubmatch(normalize.Clean(row.Str))
			if m == nil {
				continue
			}
			j = database.JudgementOrder{Date: normalize.Date(m[1]), Type: normalize.Text(m[2])}
		default:
			continue
		}
		if !anySet(j.Date, j.Link) {
			continue
		}
		out = append(out, j)
	}
	return out
}

func officeReportsFrom(rows []gjson.Result) []database.OfficeReport {
	out := []database.OfficeReport{}
	for _, row := range objects(rows) {
		f := normalize.Fields(row)
		o := database.OfficeReport{
			SrNo:       normalize.Pick(f, "srno", "sno", "no", ""),
			ProcessID:  normalize.Pick(f, "processid", "processno"),
			OrderDate:  normalize.PickDate(f, "orderdate", "date", "reportdate"),
			ReceivedOn: normalize.PickDate(f, "receivedon", "receiveddate"),
			Link:       normalize.Pick(f, "link", "url", "pdflink", "pdf"),
		}
		if !anySet(o.ProcessID, o.OrderDate, o.Link) {
			continue
		}
		out = append(out, o)
	}
	return out
}

// ordersFromJudgements mirrors judgement orders into the order collection.
func ordersFromJudgements(judgements []database.JudgementOrder) []database.Order {
	orders := make([]database.Order, 0, len(judgements))
	for _, j := range judgements {
		orders = append(orders, database.Order{
			OrderDate: j.Date,
			Details:   j.Type,
			Link:      j.Link,
		})
	}
	return orders
}

func objects(rows []gjson.Result) []gjson.Result {
	out := rows[:0:0]
	for _, row := range rows {
		if row.IsObject() {
			out = append(out, row)
		}
	}
	return out
}
