package database

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Ingestion outcomes recorded on IngestionLog.
const (
	OutcomeOK      = "ok"
	OutcomePartial = "partial"
	OutcomeNoData  = "no_data"
	OutcomeFailed  = "failed"
)

// Party types.
const (
	PartyPetitioner = "petitioner"
	PartyRespondent = "respondent"
)

// IngestionLog records one ingestion attempt and the raw payload it carried.
type IngestionLog struct {
	gorm.Model
	RunID        string         `json:"run_id" gorm:"uniqueIndex"`
	TenantID     string         `json:"tenant_id" gorm:"index:idx_ingestion_case"`
	CNR          string         `json:"cnr" gorm:"index:idx_ingestion_case"`
	Kind         string         `json:"kind"`
	Outcome      string         `json:"outcome"`
	ErrorMessage string         `json:"error_message"`
	Counts       datatypes.JSON `json:"counts"`
	RawPayload   datatypes.JSON `json:"-"`
	IngestedAt   time.Time      `json:"ingested_at"`
}

// Case is the canonical, provider-independent case record. Optional fields
// are pointers so that "absent" survives the round trip through the store.
type Case struct {
	gorm.Model
	TenantID string `json:"tenant_id" gorm:"uniqueIndex:idx_cases_tenant_cnr;not null"`
	CNR      string `json:"cnr" gorm:"uniqueIndex:idx_cases_tenant_cnr;not null"`
	Kind     string `json:"kind"`

	Title               *string `json:"title"`
	FilingNumber        *string `json:"filing_number"`
	FilingDate          *string `json:"filing_date"`
	RegistrationNumber  *string `json:"registration_number"`
	RegistrationDate    *string `json:"registration_date"`
	Stage               *string `json:"stage"`
	FirstHearingDate    *string `json:"first_hearing_date"`
	NextHearingDate     *string `json:"next_hearing_date"`
	DecisionDate        *string `json:"decision_date"`
	Coram               *string `json:"coram"`
	BenchType           *string `json:"bench_type"`
	JudicialBranch      *string `json:"judicial_branch"`
	State               *string `json:"state"`
	District            *string `json:"district"`
	Category            *string `json:"category"`
	SubCategory         *string `json:"sub_category"`
	CaseType            *string `json:"case_type"`
	CourtNumberAndJudge *string `json:"court_number_and_judge"`

	// Supreme court only.
	DiaryNumber         *string        `json:"diary_number"`
	DiaryFiledOn        *string        `json:"diary_filed_on"`
	DiarySection        *string        `json:"diary_section"`
	DiaryStatus         *string        `json:"diary_status"`
	PresentLastListedOn *string        `json:"present_last_listed_on"`
	BenchComposition    datatypes.JSON `json:"bench_composition"`
	CategoryCode        *string        `json:"category_code"`
	VerificationDate    *string        `json:"verification_date"`

	Parties             []Party              `json:"parties,omitempty" gorm:"foreignKey:CaseID"`
	InterimApplications []InterimApplication `json:"interim_applications,omitempty" gorm:"foreignKey:CaseID"`
	Acts                []ActSection         `json:"acts,omitempty" gorm:"foreignKey:CaseID"`
	Orders              []Order              `json:"orders,omitempty" gorm:"foreignKey:CaseID"`
	Hearings            []Hearing            `json:"hearings,omitempty" gorm:"foreignKey:CaseID"`
	Objections          []Objection          `json:"objections,omitempty" gorm:"foreignKey:CaseID"`
	Documents           []Document           `json:"documents,omitempty" gorm:"foreignKey:CaseID"`
	EarlierCourts       []EarlierCourtDetail `json:"earlier_courts,omitempty" gorm:"foreignKey:CaseID"`
	TaggedMatters       []TaggedMatter       `json:"tagged_matters,omitempty" gorm:"foreignKey:CaseID"`
	ListingDates        []ListingDate        `json:"listing_dates,omitempty" gorm:"foreignKey:CaseID"`
	Notices             []Notice             `json:"notices,omitempty" gorm:"foreignKey:CaseID"`
	Defects             []Defect             `json:"defects,omitempty" gorm:"foreignKey:CaseID"`
	JudgementOrders     []JudgementOrder     `json:"judgement_orders,omitempty" gorm:"foreignKey:CaseID"`
	OfficeReports       []OfficeReport       `json:"office_reports,omitempty" gorm:"foreignKey:CaseID"`
}

// CaseRow is embedded by every child collection row. Child rows are hard
// deleted on replace, so there is no DeletedAt.
type CaseRow struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	CaseID    uint      `json:"case_id" gorm:"index;not null"`
	CreatedAt time.Time `json:"created_at"`
}

// Attach scopes a freshly mapped row to a case, clearing any identity it
// picked up from an earlier insert.
func (r *CaseRow) Attach(caseID uint) {
	r.ID = 0
	r.CaseID = caseID
	r.CreatedAt = time.Time{}
}

type Party struct {
	CaseRow
	Type     string  `json:"type" gorm:"index"`
	Position int     `json:"position"`
	Name     string  `json:"name"`
	Advocate *string `json:"advocate"`
}

type InterimApplication struct {
	CaseRow
	IANumber     *string `json:"ia_number"`
	Party        *string `json:"party"`
	DateOfFiling *string `json:"date_of_filing"`
	NextDate     *string `json:"next_date"`
	Status       *string `json:"status"`
}

type ActSection struct {
	CaseRow
	UnderAct     *string `json:"under_act"`
	UnderSection *string `json:"under_section"`
}

type Order struct {
	CaseRow
	Judge       *string `json:"judge"`
	HearingDate *string `json:"hearing_date"`
	OrderDate   *string `json:"order_date"`
	OrderNumber *string `json:"order_number"`
	Bench       *string `json:"bench"`
	Details     *string `json:"details" gorm:"type:text"`
	Summary     *string `json:"summary"`
	Link        *string `json:"link"`
	Derived     bool    `json:"derived"`
}

type Hearing struct {
	CaseRow
	Date           *string `json:"date"`
	Judge          *string `json:"judge"`
	CauseListType  *string `json:"cause_list_type"`
	BusinessOnDate *string `json:"business_on_date"`
	Purpose        *string `json:"purpose"`
}

type Objection struct {
	CaseRow
	SrNo           *string `json:"sr_no"`
	Text           *string `json:"text" gorm:"type:text"`
	ReceiptDate    *string `json:"receipt_date"`
	ScrutinyDate   *string `json:"scrutiny_date"`
	ComplianceDate *string `json:"compliance_date"`
}

type Document struct {
	CaseRow
	SrNo              *string `json:"sr_no"`
	FiledDocumentName *string `json:"filed_document_name"`
	FiledBy           *string `json:"filed_by"`
	Advocate          *string `json:"advocate"`
	DocNumber         *string `json:"doc_number"`
	ReceivedDate      *string `json:"received_date"`
	Type              *string `json:"type"`
	URL               *string `json:"url"`
}

type EarlierCourtDetail struct {
	CaseRow
	SrNo                *string `json:"sr_no"`
	Court               *string `json:"court"`
	State               *string `json:"state"`
	Bench               *string `json:"bench"`
	CaseNumber          *string `json:"case_number"`
	OrderDate           *string `json:"order_date"`
	CNR                 *string `json:"cnr"`
	JudgementChallenged *string `json:"judgement_challenged"`
	JudgementType       *string `json:"judgement_type"`
}

type TaggedMatter struct {
	CaseRow
	Type       *string `json:"type"`
	CaseNumber *string `json:"case_number"`
	Title      *string `json:"title"`
	List       *string `json:"list"`
	Status     *string `json:"status"`
	StatusDate *string `json:"status_date"`
	EntryDate  *string `json:"entry_date"`
}

type ListingDate struct {
	CaseRow
	CauseListDate *string `json:"cause_list_date"`
	MiscOrRegular *string `json:"misc_or_regular"`
	Stage         *string `json:"stage"`
	Purpose       *string `json:"purpose"`
	Judges        *string `json:"judges"`
	Remarks       *string `json:"remarks" gorm:"type:text"`
	Listed        *string `json:"listed"`
}

type Notice struct {
	CaseRow
	SrNo           *string `json:"sr_no"`
	ProcessID      *string `json:"process_id"`
	NoticeType     *string `json:"notice_type"`
	Name           *string `json:"name"`
	StateDistrict  *string `json:"state_district"`
	Station        *string `json:"station"`
	IssueDate      *string `json:"issue_date"`
	ReturnableDate *string `json:"returnable_date"`
	DispatchDate   *string `json:"dispatch_date"`
}

type Defect struct {
	CaseRow
	SrNo             *string `json:"sr_no"`
	Description      *string `json:"description" gorm:"type:text"`
	Remarks          *string `json:"remarks"`
	NotificationDate *string `json:"notification_date"`
	RemovedOn        *string `json:"removed_on"`
}

type JudgementOrder struct {
	CaseRow
	Date *string `json:"date"`
	Type *string `json:"type"`
	Link *string `json:"link"`
}

type OfficeReport struct {
	CaseRow
	SrNo       *string `json:"sr_no"`
	ProcessID  *string `json:"process_id"`
	OrderDate  *string `json:"order_date"`
	ReceivedOn *string `json:"received_on"`
	Link       *string `json:"link"`
}

func (IngestionLog) TableName() string       { return "ingestion_logs" }
func (Case) TableName() string               { return "cases" }
func (Party) TableName() string              { return "parties" }
func (InterimApplication) TableName() string { return "interim_applications" }
func (ActSection) TableName() string         { return "act_sections" }
func (Order) TableName() string              { return "orders" }
func (Hearing) TableName() string            { return "hearings" }
func (Objection) TableName() string          { return "objections" }
func (Document) TableName() string           { return "documents" }
func (EarlierCourtDetail) TableName() string { return "earlier_court_details" }
func (TaggedMatter) TableName() string       { return "tagged_matters" }
func (ListingDate) TableName() string        { return "listing_dates" }
func (Notice) TableName() string             { return "notices" }
func (Defect) TableName() string             { return "defects" }
func (JudgementOrder) TableName() string     { return "judgement_orders" }
func (OfficeReport) TableName() string       { return "office_reports" }
