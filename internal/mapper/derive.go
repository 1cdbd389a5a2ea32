package mapper

import (
	"regexp"

	"github.com/tidwall/gjson"

	"github.com/JustJay7/court-record-ingest/internal/database"
	"github.com/JustJay7/court-record-ingest/internal/normalize"
)

const (
	SummaryFromHearings  = "Derived from hearing history"
	SummaryFromDocuments = "Derived from documents"
)

var (
	orderPaths = normalize.WithData(
		"orders", "order_details", "interim_orders", "final_orders",
		"case_orders", "orders_list", "order_list", "judgments",
	)
	hearingPaths = normalize.WithData(
		"case_history", "history_of_case_hearing", "hearings", "hearing_history",
	)

	orderishPurpose  = regexp.MustCompile(`(?i)orders?|judg(?:e)?ments?|disposed|final`)
	orderishDocument = regexp.MustCompile(`(?i)orders?|judg(?:e)?ments?`)
)

// Hearings locates the hearing history of a court payload.
func Hearings(doc gjson.Result) []database.Hearing {
	rows, _ := normalize.ProbeRows(doc, hearingPaths...)
	return hearingsFrom(rows)
}

// Orders returns the authoritative orders of a payload. When the payload has
// no orders array, or none of its rows survive filtering, orders are derived
// from the hearing history and the filed documents instead.
func Orders(doc gjson.Result, hearings []database.Hearing, documents []database.Document) []database.Order {
	if rows, found := normalize.ProbeRows(doc, orderPaths...); found {
		if orders := ordersFrom(rows); len(orders) > 0 {
			return orders
		}
	}
	return DeriveOrders(hearings, documents)
}

// DeriveOrders synthesizes orders from hearings whose purpose reads like an
// order and from documents named or typed like one. Derived rows carry a
// provenance summary and Derived=true.
func DeriveOrders(hearings []database.Hearing, documents []database.Document) []database.Order {
	orders := []database.Order{}

	for _, h := range hearings {
		if h.Purpose == nil || !orderishPurpose.MatchString(*h.Purpose) {
			continue
		}
		orderDate := h.BusinessOnDate
		if orderDate == nil {
			orderDate = h.Date
		}
		orders = append(orders, database.Order{
			Judge:       h.Judge,
			HearingDate: h.Date,
			OrderDate:   orderDate,
			Details:     h.Purpose,
			Summary:     normalize.Ptr(SummaryFromHearings),
			Derived:     true,
		})
	}

	for _, d := range documents {
		if !matches(orderishDocument, d.FiledDocumentName) && !matches(orderishDocument, d.Type) {
			continue
		}
		details := d.FiledDocumentName
		if details == nil {
			details = d.Type
		}
		orders = append(orders, database.Order{
			OrderDate:   d.ReceivedDate,
			OrderNumber: d.DocNumber,
			Details:     details,
			Summary:     normalize.Ptr(SummaryFromDocuments),
			Link:        d.URL,
			Derived:     true,
		})
	}

	return orders
}

func matches(re *regexp.Regexp, s *string) bool {
	return s != nil && re.MatchString(*s)
}
