package mapper

import (
	"errors"
	"fmt"
	"strings"
)

// Kind is the provider classifier that selects a mapper.
type Kind string

const (
	HighCourt           Kind = "high_court"
	DistrictCourt       Kind = "district_court"
	SupremeCourt        Kind = "supreme_court"
	GujaratDisplayBoard Kind = "gujarat_display_board"
	DistrictCauseList   Kind = "district_cause_list"
)

var (
	ErrUnknownKind      = errors.New("unknown payload kind")
	ErrMalformedPayload = errors.New("malformed payload")
	// ErrNoData marks a payload that parsed cleanly but carried nothing usable.
	ErrNoData = errors.New("no data in payload")
)

// Child collection names, matching their table names.
const (
	CollectionParties             = "parties"
	CollectionInterimApplications = "interim_applications"
	CollectionActs                = "act_sections"
	CollectionOrders              = "orders"
	CollectionHearings            = "hearings"
	CollectionObjections          = "objections"
	CollectionDocuments           = "documents"
	CollectionEarlierCourts       = "earlier_court_details"
	CollectionTaggedMatters       = "tagged_matters"
	CollectionListingDates        = "listing_dates"
	CollectionNotices             = "notices"
	CollectionDefects             = "defects"
	CollectionJudgementOrders     = "judgement_orders"
	CollectionOfficeReports       = "office_reports"
)

var courtCollections = []string{
	CollectionParties,
	CollectionInterimApplications,
	CollectionActs,
	CollectionOrders,
	CollectionHearings,
	CollectionObjections,
	CollectionDocuments,
}

var supremeCollections = []string{
	CollectionParties,
	CollectionInterimApplications,
	CollectionActs,
	CollectionOrders,
	CollectionDocuments,
	CollectionEarlierCourts,
	CollectionTaggedMatters,
	CollectionListingDates,
	CollectionNotices,
	CollectionDefects,
	CollectionJudgementOrders,
	CollectionOfficeReports,
}

// Kinds lists every supported classifier.
func Kinds() []Kind {
	return []Kind{HighCourt, DistrictCourt, SupremeCourt, GujaratDisplayBoard, DistrictCauseList}
}

// ParseKind validates a classifier string.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Kinds() {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Collections returns the child collections a payload of this kind owns.
// Ingestion replaces exactly these; display boards and cause lists only
// carry case-level fields, so they own none.
func (k Kind) Collections() []string {
	switch k {
	case HighCourt, DistrictCourt:
		return courtCollections
	case SupremeCourt:
		return supremeCollections
	}
	return nil
}

func (k Kind) String() string {
	return string(k)
}
