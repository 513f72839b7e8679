package service

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/harikrish1993-phk/telvel/model"
)

var (
	// ErrNotFound is returned when a record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateSlug is returned when a job slug is already taken.
	ErrDuplicateSlug = errors.New("a job with this slug already exists")
)

// Store wraps the database and owns all record access. Single-record writes
// rely on the database's row-level atomicity; there is no optimistic locking,
// concurrent updates are last-writer-wins.
type Store struct {
	db *gorm.DB
}

// OpenDatabase connects to Postgres and migrates the schema.
func OpenDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(&model.Job{}, &model.Application{}, &model.Contact{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	slog.Info("database connected and migrated")
	return db, nil
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// ── Jobs ──

// ListActiveJobs returns publicly visible jobs, featured first, then newest.
func (s *Store) ListActiveJobs(featuredOnly bool) ([]model.Job, error) {
	q := s.db.Where("status = ?", model.JobActive)
	if featuredOnly {
		q = q.Where("featured = ?", true)
	}

	var jobs []model.Job
	if err := q.Order("featured DESC, created_at DESC").Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

// GetActiveJobBySlug returns an active job by slug or ErrNotFound.
func (s *Store) GetActiveJobBySlug(slug string) (*model.Job, error) {
	var job model.Job
	err := s.db.Where("slug = ? AND status = ?", slug, model.JobActive).First(&job).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &job, nil
}

func (s *Store) GetJobByID(id uint) (*model.Job, error) {
	var job model.Job
	err := s.db.First(&job, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &job, nil
}

// ListJobs returns every job regardless of status, newest first.
func (s *Store) ListJobs() ([]model.Job, error) {
	var jobs []model.Job
	if err := s.db.Order("created_at DESC").Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

// CreateJob persists a new job. Slugs are stored lowercase and must be
// globally unique; a duplicate yields ErrDuplicateSlug.
func (s *Store) CreateJob(job *model.Job) error {
	job.Slug = strings.ToLower(strings.TrimSpace(job.Slug))
	err := s.db.Create(job).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateSlug
	}
	return err
}

// UpdateJob applies a partial update and returns the fresh record.
func (s *Store) UpdateJob(id uint, updates map[string]any) (*model.Job, error) {
	if slug, ok := updates["slug"].(string); ok {
		updates["slug"] = strings.ToLower(strings.TrimSpace(slug))
	}

	res := s.db.Model(&model.Job{}).Where("id = ?", id).Updates(updates)
	if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
		return nil, ErrDuplicateSlug
	}
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return s.GetJobByID(id)
}

// DeleteJob removes a job permanently. Applications referencing it are left
// untouched; their jobTitle snapshot keeps history readable.
func (s *Store) DeleteJob(id uint) (*model.Job, error) {
	job, err := s.GetJobByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.db.Delete(&model.Job{}, id).Error; err != nil {
		return nil, err
	}
	return job, nil
}

// ── Applications ──

func (s *Store) CreateApplication(app *model.Application) error {
	return s.db.Create(app).Error
}

// ListApplications filters by status and/or job, newest first. Empty filter
// values mean "all".
func (s *Store) ListApplications(status string, jobID uint) ([]model.Application, error) {
	q := s.db.Order("created_at DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if jobID != 0 {
		q = q.Where("job_id = ?", jobID)
	}

	var apps []model.Application
	if err := q.Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

// UpdateApplicationStatus sets the status of one application. Enum membership
// is checked at the handler boundary; the existing record is untouched when
// the id is unknown.
func (s *Store) UpdateApplicationStatus(id uint, status string) (*model.Application, error) {
	res := s.db.Model(&model.Application{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}

	var app model.Application
	if err := s.db.First(&app, id).Error; err != nil {
		return nil, err
	}
	return &app, nil
}

// DeleteApplication removes the record. The stored resume file is kept;
// see DESIGN.md for the retention question.
func (s *Store) DeleteApplication(id uint) (*model.Application, error) {
	var app model.Application
	err := s.db.First(&app, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := s.db.Delete(&model.Application{}, id).Error; err != nil {
		return nil, err
	}
	return &app, nil
}

// ── Contacts ──

func (s *Store) CreateContact(contact *model.Contact) error {
	return s.db.Create(contact).Error
}

func (s *Store) ListContacts(status string) ([]model.Contact, error) {
	q := s.db.Order("created_at DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var contacts []model.Contact
	if err := q.Find(&contacts).Error; err != nil {
		return nil, err
	}
	return contacts, nil
}

func (s *Store) UpdateContactStatus(id uint, status string) (*model.Contact, error) {
	res := s.db.Model(&model.Contact{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}

	var contact model.Contact
	if err := s.db.First(&contact, id).Error; err != nil {
		return nil, err
	}
	return &contact, nil
}

// ── Counts ──

func (s *Store) countWhere(m any, status string) (int64, error) {
	q := s.db.Model(m)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var n int64
	err := q.Count(&n).Error
	return n, err
}

func (s *Store) CountJobs(status string) (int64, error) {
	return s.countWhere(&model.Job{}, status)
}

func (s *Store) CountApplications(status string) (int64, error) {
	return s.countWhere(&model.Application{}, status)
}

func (s *Store) CountContacts(status string) (int64, error) {
	return s.countWhere(&model.Contact{}, status)
}

// DashboardCounts is the admin dashboard snapshot. Computed on demand, no
// caching.
type DashboardCounts struct {
	TotalJobs     int64 `json:"totalJobs"`
	ActiveJobs    int64 `json:"activeJobs"`
	TotalApps     int64 `json:"totalApps"`
	NewApps       int64 `json:"newApps"`
	TotalContacts int64 `json:"totalContacts"`
	NewContacts   int64 `json:"newContacts"`
}

func (s *Store) Dashboard() (*DashboardCounts, error) {
	var (
		counts DashboardCounts
		err    error
	)
	if counts.TotalJobs, err = s.CountJobs(""); err != nil {
		return nil, err
	}
	if counts.ActiveJobs, err = s.CountJobs(model.JobActive); err != nil {
		return nil, err
	}
	if counts.TotalApps, err = s.CountApplications(""); err != nil {
		return nil, err
	}
	if counts.NewApps, err = s.CountApplications(model.AppNew); err != nil {
		return nil, err
	}
	if counts.TotalContacts, err = s.CountContacts(""); err != nil {
		return nil, err
	}
	if counts.NewContacts, err = s.CountContacts(model.ContactNew); err != nil {
		return nil, err
	}
	return &counts, nil
}
