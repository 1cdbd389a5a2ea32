package database

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

const insertBatchSize = 100

// CaseScoped is implemented by every child row through the embedded CaseRow.
type CaseScoped interface {
	Attach(caseID uint)
}

// Collection is one child table's replacement set for a single case.
type Collection struct {
	Name  string
	Model interface{}
	Rows  interface{}
	Len   int
}

// NewCollection binds a copy of rows to caseID, leaving the caller's slice
// untouched so the same mapped result can be replayed.
func NewCollection[T any, P interface {
	*T
	CaseScoped
}](name string, caseID uint, rows []T) Collection {
	bound := make([]T, len(rows))
	copy(bound, rows)
	for i := range bound {
		P(&bound[i]).Attach(caseID)
	}

	var model T
	return Collection{Name: name, Model: &model, Rows: &bound, Len: len(bound)}
}

// GormStore is the case record store backed by gorm.
type GormStore struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// MergeCase loads the case keyed by tenant and CNR, creating it if missing,
// merges the populated fields of fields into it and returns its id.
func (s *GormStore) MergeCase(ctx context.Context, tenantID, cnr string, fields *Case) (uint, error) {
	var record Case
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("tenant_id = ? AND cnr = ?", tenantID, cnr).First(&record).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			record = Case{TenantID: tenantID, CNR: cnr}
		case err != nil:
			return err
		}

		MergeCase(&record, fields)
		return tx.Save(&record).Error
	})
	if err != nil {
		return 0, fmt.Errorf("failed to merge case %s: %w", cnr, err)
	}
	return record.ID, nil
}

// Replace deletes every row of the collection owned by caseID and inserts the
// new rows, all in one transaction.
func (s *GormStore) Replace(ctx context.Context, caseID uint, c Collection) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("case_id = ?", caseID).Delete(c.Model).Error; err != nil {
			return fmt.Errorf("failed to delete %s: %w", c.Name, err)
		}
		if c.Len == 0 {
			return nil
		}
		if err := tx.CreateInBatches(c.Rows, insertBatchSize).Error; err != nil {
			return fmt.Errorf("failed to insert %s: %w", c.Name, err)
		}
		return nil
	})
}

func (s *GormStore) LogIngestion(ctx context.Context, entry *IngestionLog) error {
	return s.db.WithContext(ctx).Create(entry).Error
}

// FindCase returns the case with every child collection preloaded.
func (s *GormStore) FindCase(ctx context.Context, tenantID, cnr string) (*Case, error) {
	var record Case
	err := s.withChildren(s.db.WithContext(ctx)).
		Where("tenant_id = ? AND cnr = ?", tenantID, cnr).
		First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// ListCases returns one page of a tenant's cases, newest first, without children.
func (s *GormStore) ListCases(ctx context.Context, tenantID string, page, limit int) ([]Case, int64, error) {
	var (
		cases []Case
		total int64
	)
	scoped := func() *gorm.DB {
		return s.db.WithContext(ctx).Model(&Case{}).Where("tenant_id = ?", tenantID)
	}
	if err := scoped().Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := scoped().Offset((page - 1) * limit).Limit(limit).Order("updated_at DESC").Find(&cases).Error
	return cases, total, err
}

func (s *GormStore) ListIngestions(ctx context.Context, tenantID, cnr string, limit int) ([]IngestionLog, error) {
	var logs []IngestionLog
	err := s.db.WithContext(ctx).
		Where("tenant_id = ? AND cnr = ?", tenantID, cnr).
		Order("ingested_at DESC").
		Limit(limit).
		Find(&logs).Error
	return logs, err
}

func (s *GormStore) Ping(ctx context.Context) error {
	var count int64
	return s.db.WithContext(ctx).Model(&IngestionLog{}).Count(&count).Error
}

func (s *GormStore) withChildren(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Parties", func(db *gorm.DB) *gorm.DB { return db.Order("type, position") }).
		Preload("InterimApplications").
		Preload("Acts").
		Preload("Orders").
		Preload("Hearings").
		Preload("Objections").
		Preload("Documents").
		Preload("EarlierCourts").
		Preload("TaggedMatters").
		Preload("ListingDates").
		Preload("Notices").
		Preload("Defects").
		Preload("JudgementOrders").
		Preload("OfficeReports")
}
