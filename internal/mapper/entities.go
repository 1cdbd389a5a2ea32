package mapper

import (
	"github.com/tidwall/gjson"

	"github.com/JustJay7/court-record-ingest/internal/database"
	"github.com/JustJay7/court-record-ingest/internal/normalize"
)

// Row mappers shared by the court and supreme court mappers. Each takes raw
// rows, reads columns by normalized label and drops rows that carry nothing.

func partiesFrom(v gjson.Result, partyType string) []database.Party {
	var parsed []normalize.Party
	switch {
	case v.IsArray():
		for _, item := range v.Array() {
			if item.IsObject() {
				f := normalize.Fields(item)
				name := normalize.Pick(f, "name", "partyname", "petitioner", "respondent")
				if name == nil {
					continue
				}
				entries := normalize.Parties(*name)
				if len(entries) == 1 && entries[0].Advocate == nil {
					entries[0].Advocate = normalize.Pick(f, "advocate", "advocatename", "advocates")
				}
				parsed = append(parsed, entries...)
				continue
			}
			parsed = append(parsed, normalize.Parties(item.String())...)
		}
	case v.Exists() && !v.IsObject():
		parsed = normalize.Parties(v.String())
	}

	parties := make([]database.Party, 0, len(parsed))
	for i, p := range parsed {
		parties = append(parties, database.Party{
			Type:     partyType,
			Position: i + 1,
			Name:     p.Name,
			Advocate: p.Advocate,
		})
	}
	return parties
}

func interimApplicationsFrom(rows []gjson.Result) []database.InterimApplication {
	ias := []database.InterimApplication{}
	for _, row := range rows {
		if !row.IsObject() {
			continue
		}
		f := normalize.Fields(row)
		ia := database.InterimApplication{
			IANumber:     normalize.Pick(f, "ianumber", "iano", "ianum", "applicationnumber", "applicationno", "iaregno"),
			Party:        normalize.Pick(f, "party", "partyname", "parties", "filedby"),
			DateOfFiling: normalize.PickDate(f, "dateoffiling", "filingdate", "iafilingdate", "filedon"),
			NextDate:     normalize.PickDate(f, "nextdate", "nexthearingdate", "nextdateofhearing"),
			Status:       normalize.Pick(f, "iastatus", "status"),
		}
		if ia.IANumber == nil && ia.Party == nil {
			continue
		}
		ias = append(ias, ia)
	}
	return ias
}

func actsFrom(v gjson.Result) []database.ActSection {
	parsed := normalize.ActsAndSections(v)
	acts := make([]database.ActSection, 0, len(parsed))
	for _, a := range parsed {
		acts = append(acts, database.ActSection{UnderAct: a.UnderAct, UnderSection: a.UnderSection})
	}
	return acts
}

func objectionsFrom(rows []gjson.Result) []database.Objection {
	objections := []database.Objection{}
	for _, row := range rows {
		if !row.IsObject() {
			continue
		}
		f := normalize.Fields(row)
		o := database.Objection{
			SrNo:           normalize.Pick(f, "srno", "sno", "serialno", "no"),
			Text:           normalize.Pick(f, "objection", "objections", "text", "details", "description"),
			ReceiptDate:    normalize.PickDate(f, "receiptdate", "dateofreceipt", "objectionreceiptdate", "receivedon"),
			ScrutinyDate:   normalize.PickDate(f, "scrutinydate", "dateofscrutiny", "scrutinizedon"),
			ComplianceDate: normalize.PickDate(f, "compliancedate", "objectioncompliancedate", "dateofcompliance", "compliedon"),
		}
		if !anySet(o.Text, o.ReceiptDate, o.ScrutinyDate, o.ComplianceDate) {
			continue
		}
		objections = append(objections, o)
	}
	return objections
}

func documentsFrom(rows []gjson.Result) []database.Document {
	documents := []database.Document{}
	for _, row := range rows {
		if !row.IsObject() {
			continue
		}
		f := normalize.Fields(row)
		d := database.Document{
			SrNo:              normalize.Pick(f, "srno", "sno", "serialno", "no"),
			FiledDocumentName: normalize.Pick(f, "fileddocumentname", "documentname", "documentfiled", "document", "name", "particulars"),
			FiledBy:           normalize.Pick(f, "filedby", "partyname", "party"),
			Advocate:          normalize.Pick(f, "advocate", "advocatename"),
			DocNumber:         normalize.Pick(f, "docnumber", "docno", "documentnumber", "documentno"),
			ReceivedDate:      normalize.PickDate(f, "receiveddate", "dateofreceiving", "dateofreceipt", "receivedon", "filingdate", "date"),
			Type:              normalize.Pick(f, "type", "documenttype", "doctype"),
			URL:               normalize.Pick(f, "url", "link", "pdflink", "documenturl", "pdf"),
		}
		if !anySet(d.FiledDocumentName, d.DocNumber, d.URL, d.Type) {
			continue
		}
		documents = append(documents, d)
	}
	return documents
}

func hearingsFrom(rows []gjson.Result) []database.Hearing {
	hearings := []database.Hearing{}
	for _, row := range rows {
		if !row.IsObject() {
			continue
		}
		f := normalize.Fields(row)
		h := database.Hearing{
			Date:           normalize.PickDate(f, "hearingdate", "dateofhearing", "nexthearingdate", "date"),
			Judge:          normalize.Pick(f, "judge", "judgename", "coram"),
			CauseListType:  normalize.Pick(f, "causelisttype", "causelist", "listtype"),
			BusinessOnDate: normalize.PickDate(f, "businessondate", "businessdate", "business"),
			Purpose:        normalize.Pick(f, "purposeofhearing", "purpose", "hearingpurpose", "stage"),
		}
		if !anySet(h.Date, h.BusinessOnDate, h.Purpose) {
			continue
		}
		hearings = append(hearings, h)
	}
	return hearings
}

func ordersFrom(rows []gjson.Result) []database.Order {
	orders := []database.Order{}
	for _, row := range rows {
		if !row.IsObject() {
			continue
		}
		f := normalize.Fields(row)
		o := database.Order{
			Judge:       normalize.Pick(f, "judge", "judgename", "coram"),
			HearingDate: normalize.PickDate(f, "hearingdate", "businessondate", "dateofhearing"),
			OrderDate:   normalize.PickDate(f, "orderdate", "dateoforder", "judgmentdate", "judgementdate", "date"),
			OrderNumber: normalize.Pick(f, "ordernumber", "orderno", "srno", "sno"),
			Bench:       normalize.Pick(f, "bench", "benchtype"),
			Details:     normalize.Pick(f, "orderdetails", "details", "description", "order", "ordertype"),
			Summary:     normalize.Pick(f, "summary"),
			Link:        normalize.Pick(f, "pdflink", "orderlink", "link", "url", "pdf"),
		}
		if !anySet(o.OrderDate, o.Details, o.Link) {
			continue
		}
		orders = append(orders, o)
	}
	return orders
}
