package domain

import (
	"context"
	"errors"
	"time"
)

// Common domain errors
var (
	ErrNotFound         = errors.New("resource not found")
	ErrPrivilegeRevoked = errors.New("admin privilege revoked")
)

type JobStatus string

const (
	StatusActive   JobStatus = "active"
	StatusInactive JobStatus = "inactive"
	StatusExpired  JobStatus = "expired"
)

// ToggleTarget returns the opposite active/inactive status. Expired records
// are not a toggle target.
func (s JobStatus) ToggleTarget() (JobStatus, bool) {
	switch s {
	case StatusActive:
		return StatusInactive, true
	case StatusInactive:
		return StatusActive, true
	default:
		return "", false
	}
}

// JobRecord is one job posting document. Field names follow the stored
// document schema; the store assigns ID, CreatedAt and UpdatedAt.
type JobRecord struct {
	ID                         string            `firestore:"-" json:"id"`
	Title                      string            `firestore:"title" json:"title"`
	CompanyName                string            `firestore:"companyName" json:"companyName"`
	CompanyLogoURL             *string           `firestore:"companyLogoUrl" json:"companyLogoUrl"`
	Location                   string            `firestore:"location" json:"location"`
	Category                   string            `firestore:"category" json:"category"`
	SubCategory                string            `firestore:"subCategory" json:"subCategory"`
	Description                string            `firestore:"description" json:"description"`
	Requirements               string            `firestore:"requirements" json:"requirements"`
	ExperienceLevel            string            `firestore:"experienceLevel" json:"experienceLevel"`
	TechStacks                 []string          `firestore:"techStacks" json:"techStacks"`
	PreviousInterviewQuestions []string          `firestore:"previousInterviewQuestions" json:"previousInterviewQuestions"`
	SourceLink                 string            `firestore:"sourceLink" json:"sourceLink"`
	SalaryRange                string            `firestore:"salaryRange" json:"salaryRange"`
	PostedDate                 *time.Time        `firestore:"postedDate" json:"postedDate"`
	ExpiryDate                 *time.Time        `firestore:"expiryDate" json:"expiryDate"`
	Relocation                 bool              `firestore:"relocation" json:"relocation"`
	Status                     JobStatus         `firestore:"status" json:"status"`
	CustomFields               map[string]string `firestore:"customFields" json:"customFields"`
	UploadedBy                 string            `firestore:"uploadedBy" json:"uploadedBy"`
	CreatedAt                  time.Time         `firestore:"createdAt,serverTimestamp" json:"createdAt"`
	UpdatedAt                  time.Time         `firestore:"updatedAt,serverTimestamp" json:"updatedAt"`
}

// CustomField is one user-defined key/value row as submitted. Rows collapse
// into the CustomFields map on save; later rows win on duplicate keys.
type CustomField struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// LogoUpload is a staged logo file carried alongside a submission.
type LogoUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// JobSubmission is the raw editor form payload for create and update.
// Category/SubCategory may carry the "Other" sentinel with the custom text
// in the companion fields; normalization resolves the effective values.
type JobSubmission struct {
	ID                     string
	Title                  string
	CompanyName            string
	Location               string
	Category               string
	CustomCategory         string
	SubCategory            string
	CustomSubCategory      string
	Description            string
	Requirements           string
	ExperienceLevel        string
	TechStacks             []string
	RawTechStacks          string
	InterviewQuestionsText string
	SourceLink             string
	SalaryRange            string
	PostedDate             string
	ExpiryDate             string
	Relocation             bool
	Status                 JobStatus
	CustomFields           []CustomField
	LogoURL                string
	Logo                   *LogoUpload
}

type JobRepository interface {
	Create(ctx context.Context, rec *JobRecord) (string, error)
	GetByID(ctx context.Context, id string) (*JobRecord, error)
	FetchRecent(ctx context.Context, limit int) ([]JobRecord, error)
	Update(ctx context.Context, rec *JobRecord) error
	UpdateStatus(ctx context.Context, id string, status JobStatus) error
	Delete(ctx context.Context, id string) error
}

type JobUsecase interface {
	Submit(ctx context.Context, sub *JobSubmission) (*JobRecord, error)
	ListRecent(ctx context.Context) ([]JobRecord, error)
	GetByID(ctx context.Context, id string) (*JobRecord, error)
	ToggleStatus(ctx context.Context, id string, confirmAction string) (JobStatus, error)
	Delete(ctx context.Context, id string, confirmID string) error
}
