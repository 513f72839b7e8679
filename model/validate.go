package model

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// FieldError describes a single invalid form field. The public API returns
// the full list so a form can highlight every offending field at once.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	nameRe  = regexp.MustCompile(`^[a-zA-Z\s.'-]+$`)
	tagRe   = regexp.MustCompile(`<[^>]*>`)
)

// Length bounds count runes, not bytes, so multibyte text is measured the way
// a person would count it.
const (
	minMessageLen     = 10
	maxMessageLen     = 3000
	maxNameLen        = 100
	maxCoverLetterLen = 3000
)

// ContactInput is the raw contact form payload before validation.
type ContactInput struct {
	FullName    string `json:"fullName"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	CompanyName string `json:"companyName"`
	Subject     string `json:"subject"`
	Message     string `json:"message"`
	Type        string `json:"type"`
}

// ApplicationInput is the raw application form payload before validation.
// The resume itself is handled by file intake; only its presence is checked
// here.
type ApplicationInput struct {
	FullName    string `form:"fullName"`
	Email       string `form:"email"`
	Phone       string `form:"phone"`
	CoverLetter string `form:"coverLetter"`
	JobID       string `form:"jobId"`
}

// ValidateContact checks every rule and accumulates errors rather than
// stopping at the first. On success it returns a fully normalized copy of
// the input; on failure the input is returned unchanged.
func ValidateContact(in ContactInput) (ContactInput, []FieldError) {
	var errs []FieldError

	name := strings.TrimSpace(in.FullName)
	switch {
	case utf8.RuneCountInString(name) < 2 || !nameRe.MatchString(name):
		errs = append(errs, FieldError{Field: "fullName", Message: "Valid name is required (2+ characters)"})
	case utf8.RuneCountInString(name) > maxNameLen:
		errs = append(errs, FieldError{Field: "fullName", Message: fmt.Sprintf("Name must be at most %d characters", maxNameLen)})
	}
	if !emailRe.MatchString(strings.TrimSpace(in.Email)) {
		errs = append(errs, FieldError{Field: "email", Message: "Valid email is required"})
	}
	msg := strings.TrimSpace(in.Message)
	switch n := utf8.RuneCountInString(msg); {
	case n < minMessageLen:
		errs = append(errs, FieldError{Field: "message", Message: fmt.Sprintf("Message must be at least %d characters", minMessageLen)})
	case n > maxMessageLen:
		errs = append(errs, FieldError{Field: "message", Message: fmt.Sprintf("Message must be at most %d characters", maxMessageLen)})
	}
	inquiry := strings.TrimSpace(in.Type)
	if inquiry != "" && !ValidInquiryType(inquiry) {
		errs = append(errs, FieldError{Field: "type", Message: "Invalid inquiry type"})
	}

	if len(errs) > 0 {
		return in, errs
	}

	if inquiry == "" {
		inquiry = InquiryGeneral
	}
	return ContactInput{
		FullName:    name,
		Email:       strings.ToLower(strings.TrimSpace(in.Email)),
		Phone:       strings.TrimSpace(in.Phone),
		CompanyName: strings.TrimSpace(in.CompanyName),
		Subject:     strings.TrimSpace(in.Subject),
		Message:     tagRe.ReplaceAllString(msg, ""),
		Type:        inquiry,
	}, nil
}

// ValidateApplication mirrors ValidateContact for the application form.
// hasResume must reflect whether file intake stored a resume; it is checked
// last so its error appears after the field errors, matching form order.
func ValidateApplication(in ApplicationInput, hasResume bool) (ApplicationInput, []FieldError) {
	var errs []FieldError

	name := strings.TrimSpace(in.FullName)
	switch {
	case utf8.RuneCountInString(name) < 2:
		errs = append(errs, FieldError{Field: "fullName", Message: "Name is required"})
	case utf8.RuneCountInString(name) > maxNameLen:
		errs = append(errs, FieldError{Field: "fullName", Message: fmt.Sprintf("Name must be at most %d characters", maxNameLen)})
	}
	if !emailRe.MatchString(strings.TrimSpace(in.Email)) {
		errs = append(errs, FieldError{Field: "email", Message: "Valid email is required"})
	}
	cover := strings.TrimSpace(in.CoverLetter)
	if utf8.RuneCountInString(cover) > maxCoverLetterLen {
		errs = append(errs, FieldError{Field: "coverLetter", Message: fmt.Sprintf("Cover letter must be at most %d characters", maxCoverLetterLen)})
	}
	if !hasResume {
		errs = append(errs, FieldError{Field: "resume", Message: "Resume file is required (PDF, DOC, or DOCX)"})
	}

	if len(errs) > 0 {
		return in, errs
	}

	return ApplicationInput{
		FullName:    name,
		Email:       strings.ToLower(strings.TrimSpace(in.Email)),
		Phone:       strings.TrimSpace(in.Phone),
		CoverLetter: tagRe.ReplaceAllString(cover, ""),
		JobID:       strings.TrimSpace(in.JobID),
	}, nil
}
