// Package ingest persists mapped payloads: it merges the case record and
// replaces each child collection the payload owns.
package ingest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"
	"gorm.io/datatypes"

	"github.com/JustJay7/court-record-ingest/internal/cache"
	"github.com/JustJay7/court-record-ingest/internal/database"
	"github.com/JustJay7/court-record-ingest/internal/mapper"
	"github.com/JustJay7/court-record-ingest/pkg/logger"
)

var ErrMissingCNR = errors.New("no CNR in request or payload")

// Store is the case record store the orchestrator writes through.
type Store interface {
	MergeCase(ctx context.Context, tenantID, cnr string, fields *database.Case) (uint, error)
	Replace(ctx context.Context, caseID uint, c database.Collection) error
	LogIngestion(ctx context.Context, entry *database.IngestionLog) error
}

// Evictor drops cached reads of a case after it has been rewritten.
type Evictor interface {
	Delete(key string)
}

type Config struct {
	DefaultTenant string
	Timeout       time.Duration
	Workers       int
}

type Request struct {
	Tenant  string          `json:"tenant,omitempty"`
	CNR     string          `json:"cnr"`
	Kind    string          `json:"kind"`
	Payload json.RawMessage `json:"payload"`
}

type CollectionReport struct {
	Name  string `json:"name"`
	Rows  int    `json:"rows"`
	Error string `json:"error,omitempty"`
}

// Report describes one ingestion run.
type Report struct {
	RunID       string             `json:"run_id"`
	TenantID    string             `json:"tenant_id"`
	CaseID      uint               `json:"case_id,omitempty"`
	CNR         string             `json:"cnr"`
	Kind        string             `json:"kind"`
	Outcome     string             `json:"outcome"`
	Error       string             `json:"error,omitempty"`
	Collections []CollectionReport `json:"collections"`
	IngestedAt  time.Time          `json:"ingested_at"`
}

// Failed lists the collections that could not be replaced.
func (r *Report) Failed() []string {
	var names []string
	for _, c := range r.Collections {
		if c.Error != "" {
			names = append(names, c.Name)
		}
	}
	return names
}

type Orchestrator struct {
	store  Store
	mapper *mapper.Mapper
	cache  Evictor
	logger *logger.Logger
	cfg    Config
}

func New(store Store, m *mapper.Mapper, c Evictor, log *logger.Logger, cfg Config) *Orchestrator {
	if log == nil {
		log = logger.NewNop()
	}
	if m == nil {
		m = mapper.New(log)
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	return &Orchestrator{store: store, mapper: m, cache: c, logger: log, cfg: cfg}
}

// Ingest maps one payload and writes it through the store. Every call
// re-derives the case from the payload alone, so repeating it with the same
// input leaves the same rows behind.
//
// A collection that fails to replace is logged and reported; the others are
// still written and the outcome is partial. The returned error is non-nil
// only when nothing was written: malformed payloads, unknown kinds, payloads
// without data (mapper.ErrNoData), missing CNRs and case merge failures. A
// report is returned in every case.
func (o *Orchestrator) Ingest(ctx context.Context, req Request) (*Report, error) {
	report := &Report{
		RunID:       uuid.NewString(),
		TenantID:    o.tenant(req),
		CNR:         strings.TrimSpace(req.CNR),
		Kind:        req.Kind,
		Outcome:     database.OutcomeFailed,
		Collections: []CollectionReport{},
		IngestedAt:  time.Now().UTC(),
	}
	log := o.logger.With("run_id", report.RunID, "tenant_id", report.TenantID, "kind", req.Kind)

	if o.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.cfg.Timeout)
		defer cancel()
	}

	result, err := o.write(ctx, req, report, log)
	if err != nil {
		report.Error = err.Error()
		if errors.Is(err, mapper.ErrNoData) {
			report.Outcome = database.OutcomeNoData
		}
		log.Warn("Ingestion rejected", "cnr", report.CNR, "outcome", report.Outcome, "error", err)
	}

	o.record(ctx, req, report, result, log)

	if report.CNR != "" && o.cache != nil {
		o.cache.Delete(cache.CaseKey(report.TenantID, report.CNR))
	}
	return report, err
}

func (o *Orchestrator) write(ctx context.Context, req Request, report *Report, log *logger.Logger) (*mapper.Result, error) {
	kind, err := mapper.ParseKind(req.Kind)
	if err != nil {
		return nil, err
	}
	report.Kind = kind.String()

	result, err := o.mapper.Map(kind, req.Payload)
	if err != nil {
		return result, err
	}

	switch mapped := strings.TrimSpace(result.Case.CNR); {
	case report.CNR == "":
		report.CNR = mapped
	case mapped != "" && mapped != report.CNR:
		log.Warn("Payload CNR differs from request, keeping request CNR", "cnr", report.CNR, "payload_cnr", mapped)
	}
	if report.CNR == "" {
		return result, ErrMissingCNR
	}
	log = log.With("cnr", report.CNR)

	caseID, err := o.store.MergeCase(ctx, report.TenantID, report.CNR, &result.Case)
	if err != nil {
		return result, err
	}
	report.CaseID = caseID

	for _, c := range result.Collections(caseID) {
		entry := CollectionReport{Name: c.Name, Rows: c.Len}
		if err := o.store.Replace(ctx, caseID, c); err != nil {
			entry.Error = err.Error()
			log.Error("Failed to replace collection", "collection", c.Name, "rows", c.Len, "error", err)
		}
		report.Collections = append(report.Collections, entry)
	}

	report.Outcome = database.OutcomeOK
	if failed := report.Failed(); len(failed) > 0 {
		report.Outcome = database.OutcomePartial
		report.Error = fmt.Sprintf("failed collections: %s", strings.Join(failed, ", "))
	}

	log.Info("Ingested case",
		"case_id", caseID,
		"outcome", report.Outcome,
		"collections", len(report.Collections),
	)
	return result, nil
}

// record writes the ingestion log entry. A logging failure never fails the
// ingestion it describes.
func (o *Orchestrator) record(ctx context.Context, req Request, report *Report, result *mapper.Result, log *logger.Logger) {
	entry := &database.IngestionLog{
		RunID:        report.RunID,
		TenantID:     report.TenantID,
		CNR:          report.CNR,
		Kind:         report.Kind,
		Outcome:      report.Outcome,
		ErrorMessage: report.Error,
		IngestedAt:   report.IngestedAt,
	}
	if result != nil {
		if counts, err := json.Marshal(result.Counts()); err == nil {
			entry.Counts = datatypes.JSON(counts)
		}
	}
	if gjson.ValidBytes(req.Payload) {
		entry.RawPayload = datatypes.JSON(req.Payload)
	}

	if err := o.store.LogIngestion(ctx, entry); err != nil {
		log.Warn("Failed to write ingestion log", "error", err)
	}
}

func (o *Orchestrator) tenant(req Request) string {
	if t := strings.TrimSpace(req.Tenant); t != "" {
		return t
	}
	return o.cfg.DefaultTenant
}

// Preview maps a payload without writing anything.
func (o *Orchestrator) Preview(req Request) (*mapper.Result, error) {
	kind, err := mapper.ParseKind(req.Kind)
	if err != nil {
		return nil, err
	}
	return o.mapper.Map(kind, req.Payload)
}
