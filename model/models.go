package model

import "time"

// Job statuses.
const (
	JobActive = "active"
	JobClosed = "closed"
	JobDraft  = "draft"
)

// Job employment types.
const (
	TypeFullTime = "full-time"
	TypeContract = "contract"
	TypePartTime = "part-time"
)

// Application statuses.
const (
	AppNew       = "new"
	AppScreening = "screening"
	AppInterview = "interview"
	AppOffered   = "offered"
	AppHired     = "hired"
	AppRejected  = "rejected"
)

// Contact statuses and inquiry types.
const (
	ContactNew     = "new"
	ContactReplied = "replied"
	ContactClosed  = "closed"

	InquiryHire    = "hire"
	InquiryGeneral = "general"
	InquirySupport = "support"
)

// GeneralApplication is the job-title snapshot used when an application is
// not tied to a specific job, or the job lookup fails.
const GeneralApplication = "General Application"

type Job struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Slug        string    `gorm:"uniqueIndex;not null" json:"slug"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Skills      []string  `gorm:"serializer:json" json:"skills"`
	Location    string    `gorm:"default:'Europe'" json:"location"`
	Type        string    `gorm:"default:'full-time'" json:"type"`
	Experience  string    `json:"experience"`
	Salary      string    `json:"salary"`
	Status      string    `gorm:"default:'active';index" json:"status"`
	Featured    bool      `gorm:"default:false" json:"featured"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Application references its Job weakly: JobID is a plain column with no
// foreign-key constraint, so deleting a job leaves applications untouched.
// JobTitle is snapshotted at submission time and never updated afterwards.
type Application struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	FullName    string    `gorm:"not null;size:100" json:"fullName"`
	Email       string    `gorm:"not null;index" json:"email"`
	Phone       string    `json:"phone"`
	CoverLetter string    `gorm:"type:text" json:"coverLetter"`
	ResumePath  string    `gorm:"not null" json:"resumePath"`
	ResumeName  string    `json:"resumeName"`
	JobID       *uint     `gorm:"index" json:"jobId"`
	JobTitle    string    `gorm:"default:'General Application'" json:"jobTitle"`
	Source      string    `gorm:"default:'website'" json:"source"`
	Status      string    `gorm:"default:'new';index" json:"status"`
	IPAddress   string    `json:"ipAddress"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type Contact struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	FullName    string    `gorm:"not null;size:100" json:"fullName"`
	Email       string    `gorm:"not null;index" json:"email"`
	Phone       string    `json:"phone"`
	CompanyName string    `json:"companyName"`
	Subject     string    `json:"subject"`
	Message     string    `gorm:"type:text;not null" json:"message"`
	Type        string    `gorm:"default:'general'" json:"type"`
	Status      string    `gorm:"default:'new';index" json:"status"`
	IPAddress   string    `json:"ipAddress"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ValidJobStatus reports whether s is a member of the job status enum.
func ValidJobStatus(s string) bool {
	return s == JobActive || s == JobClosed || s == JobDraft
}

// ValidJobType reports whether s is a member of the employment type enum.
func ValidJobType(s string) bool {
	return s == TypeFullTime || s == TypeContract || s == TypePartTime
}

// ValidApplicationStatus reports whether s is a member of the application
// status enum.
func ValidApplicationStatus(s string) bool {
	switch s {
	case AppNew, AppScreening, AppInterview, AppOffered, AppHired, AppRejected:
		return true
	}
	return false
}

// ValidContactStatus reports whether s is a member of the contact status enum.
func ValidContactStatus(s string) bool {
	return s == ContactNew || s == ContactReplied || s == ContactClosed
}

// ValidInquiryType reports whether s is a member of the inquiry type enum.
func ValidInquiryType(s string) bool {
	return s == InquiryHire || s == InquiryGeneral || s == InquirySupport
}
