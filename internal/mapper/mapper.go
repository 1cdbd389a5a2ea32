// Package mapper turns raw provider payloads into the canonical case schema.
package mapper

import (
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/JustJay7/court-record-ingest/pkg/logger"
)

type Mapper struct {
	logger *logger.Logger
}

func New(log *logger.Logger) *Mapper {
	if log == nil {
		log = logger.NewNop()
	}
	return &Mapper{logger: log}
}

// Map parses payload as a document of the given kind. Missing or ambiguous
// fields never fail the call; they come back nil. Map fails only when the
// payload is not a JSON object (ErrMalformedPayload) or when it yields
// nothing usable at all (ErrNoData, returned together with the empty result).
func (m *Mapper) Map(kind Kind, payload []byte) (*Result, error) {
	if !gjson.ValidBytes(payload) {
		return nil, fmt.Errorf("%w: invalid JSON", ErrMalformedPayload)
	}
	doc := gjson.ParseBytes(payload)
	if !doc.IsObject() {
		return nil, fmt.Errorf("%w: expected a JSON object", ErrMalformedPayload)
	}

	var r *Result
	switch kind {
	case HighCourt, DistrictCourt:
		r = m.mapCourtRecord(kind, doc)
	case SupremeCourt:
		r = m.mapSupremeCourt(doc)
	case GujaratDisplayBoard, DistrictCauseList:
		r = m.mapListing(kind, doc)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}

	if r.Empty() {
		m.logger.Warn("Payload carried no usable data", "kind", kind)
		return r, ErrNoData
	}
	return r, nil
}
