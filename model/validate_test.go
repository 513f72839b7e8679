package model

import (
	"strings"
	"testing"
)

func TestValidateContactSuccess(t *testing.T) {
	in := ContactInput{
		FullName: "  Ada Lovelace ",
		Email:    " Ada@Example.COM ",
		Phone:    " +44 123 ",
		Message:  "  Interested in hiring two backend engineers. ",
	}

	norm, errs := ValidateContact(in)
	if len(errs) != 0 {
		t.Fatalf("Expected no errors, got %v", errs)
	}

	if norm.FullName != "Ada Lovelace" {
		t.Errorf("Expected trimmed name, got %q", norm.FullName)
	}
	if norm.Email != "ada@example.com" {
		t.Errorf("Expected lowercased email, got %q", norm.Email)
	}
	if norm.Phone != "+44 123" {
		t.Errorf("Expected trimmed phone, got %q", norm.Phone)
	}
	if norm.Type != InquiryGeneral {
		t.Errorf("Expected type defaulted to general, got %q", norm.Type)
	}
}

func TestValidateContactStripsMarkup(t *testing.T) {
	in := ContactInput{
		FullName: "Ada Lovelace",
		Email:    "ada@example.com",
		Message:  "Hello <script>alert(1)</script> there, we are hiring.",
	}

	norm, errs := ValidateContact(in)
	if len(errs) != 0 {
		t.Fatalf("Expected no errors, got %v", errs)
	}
	if strings.Contains(norm.Message, "<") || strings.Contains(norm.Message, ">") {
		t.Errorf("Expected markup stripped, got %q", norm.Message)
	}
}

func TestValidateContactErrorsAccumulate(t *testing.T) {
	in := ContactInput{
		FullName: "A",
		Email:    "not-an-email",
		Message:  "short",
	}

	_, errs := ValidateContact(in)
	if len(errs) != 3 {
		t.Fatalf("Expected 3 field errors, got %d: %v", len(errs), errs)
	}

	fields := []string{errs[0].Field, errs[1].Field, errs[2].Field}
	expected := []string{"fullName", "email", "message"}
	for i, f := range expected {
		if fields[i] != f {
			t.Errorf("Expected error %d on %q, got %q", i, f, fields[i])
		}
	}
}

func TestValidateContactFields(t *testing.T) {
	tests := []struct {
		name      string
		in        ContactInput
		wantField string
	}{
		{
			name:      "name with digits",
			in:        ContactInput{FullName: "R2D2", Email: "a@b.co", Message: "long enough message"},
			wantField: "fullName",
		},
		{
			name:      "email without domain",
			in:        ContactInput{FullName: "Ada Lovelace", Email: "ada@", Message: "long enough message"},
			wantField: "email",
		},
		{
			name:      "email with spaces",
			in:        ContactInput{FullName: "Ada Lovelace", Email: "ada @example.com", Message: "long enough message"},
			wantField: "email",
		},
		{
			name:      "message too short after trim",
			in:        ContactInput{FullName: "Ada Lovelace", Email: "ada@example.com", Message: "  hi      "},
			wantField: "message",
		},
		{
			name:      "message too long",
			in:        ContactInput{FullName: "Ada Lovelace", Email: "ada@example.com", Message: strings.Repeat("x", 3001)},
			wantField: "message",
		},
		{
			name:      "unknown inquiry type",
			in:        ContactInput{FullName: "Ada Lovelace", Email: "ada@example.com", Message: "long enough message", Type: "spam"},
			wantField: "type",
		},
		{
			name:      "name too long",
			in:        ContactInput{FullName: strings.Repeat("a", 101), Email: "ada@example.com", Message: "long enough message"},
			wantField: "fullName",
		},
		{
			name:      "multibyte message shorter than minimum",
			in:        ContactInput{FullName: "Ada Lovelace", Email: "ada@example.com", Message: strings.Repeat("⭐", 4)},
			wantField: "message",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, errs := ValidateContact(tt.in)
			if len(errs) != 1 {
				t.Fatalf("Expected 1 error, got %d: %v", len(errs), errs)
			}
			if errs[0].Field != tt.wantField {
				t.Errorf("Expected error on %q, got %q", tt.wantField, errs[0].Field)
			}
		})
	}
}

func TestValidateContactNameAllowsPunctuation(t *testing.T) {
	for _, name := range []string{"O'Brien", "Jean-Luc Picard", "J. R. R. Tolkien"} {
		in := ContactInput{FullName: name, Email: "a@b.co", Message: "long enough message"}
		if _, errs := ValidateContact(in); len(errs) != 0 {
			t.Errorf("Expected %q to be a valid name, got %v", name, errs)
		}
	}
}

func TestValidateContactCountsRunes(t *testing.T) {
	// 10 multibyte characters satisfy the minimum even though the byte
	// count is far larger.
	in := ContactInput{FullName: "Ada Lovelace", Email: "ada@example.com", Message: strings.Repeat("⭐", 10)}
	if _, errs := ValidateContact(in); len(errs) != 0 {
		t.Errorf("Expected 10-rune message to pass, got %v", errs)
	}
}

func TestValidateApplicationSuccess(t *testing.T) {
	in := ApplicationInput{
		FullName:    " Grace Hopper ",
		Email:       " Grace@Navy.MIL ",
		CoverLetter: " I wrote <b>COBOL</b>. ",
		JobID:       " 12 ",
	}

	norm, errs := ValidateApplication(in, true)
	if len(errs) != 0 {
		t.Fatalf("Expected no errors, got %v", errs)
	}
	if norm.Email != "grace@navy.mil" {
		t.Errorf("Expected lowercased email, got %q", norm.Email)
	}
	if strings.Contains(norm.CoverLetter, "<b>") {
		t.Errorf("Expected markup stripped from cover letter, got %q", norm.CoverLetter)
	}
	if norm.JobID != "12" {
		t.Errorf("Expected trimmed job id, got %q", norm.JobID)
	}
}

func TestValidateApplicationMissingResume(t *testing.T) {
	in := ApplicationInput{FullName: "Grace Hopper", Email: "grace@navy.mil"}

	_, errs := ValidateApplication(in, false)
	if len(errs) != 1 {
		t.Fatalf("Expected 1 error, got %d: %v", len(errs), errs)
	}
	if errs[0].Field != "resume" {
		t.Errorf("Expected resume field error, got %q", errs[0].Field)
	}
}

func TestValidateApplicationCoverLetterTooLong(t *testing.T) {
	in := ApplicationInput{
		FullName:    "Grace Hopper",
		Email:       "grace@navy.mil",
		CoverLetter: strings.Repeat("x", 3001),
	}

	_, errs := ValidateApplication(in, true)
	if len(errs) != 1 {
		t.Fatalf("Expected 1 error, got %d: %v", len(errs), errs)
	}
	if errs[0].Field != "coverLetter" {
		t.Errorf("Expected coverLetter field error, got %q", errs[0].Field)
	}
}

func TestValidateApplicationNameTooLong(t *testing.T) {
	in := ApplicationInput{FullName: strings.Repeat("a", 101), Email: "grace@navy.mil"}

	_, errs := ValidateApplication(in, true)
	if len(errs) != 1 {
		t.Fatalf("Expected 1 error, got %d: %v", len(errs), errs)
	}
	if errs[0].Field != "fullName" {
		t.Errorf("Expected fullName field error, got %q", errs[0].Field)
	}
}

func TestValidateApplicationErrorsAccumulate(t *testing.T) {
	_, errs := ValidateApplication(ApplicationInput{FullName: "G", Email: "bad"}, false)
	if len(errs) != 3 {
		t.Fatalf("Expected 3 field errors, got %d: %v", len(errs), errs)
	}
}

func TestEnumPredicates(t *testing.T) {
	for _, s := range []string{AppNew, AppScreening, AppInterview, AppOffered, AppHired, AppRejected} {
		if !ValidApplicationStatus(s) {
			t.Errorf("Expected %q to be a valid application status", s)
		}
	}
	if ValidApplicationStatus("archived") {
		t.Error("Expected archived to be rejected")
	}

	if !ValidContactStatus(ContactReplied) || ValidContactStatus("open") {
		t.Error("Contact status predicate mismatch")
	}
	if !ValidJobStatus(JobDraft) || ValidJobStatus("paused") {
		t.Error("Job status predicate mismatch")
	}
	if !ValidJobType(TypeContract) || ValidJobType("internship") {
		t.Error("Job type predicate mismatch")
	}
	if !ValidInquiryType(InquiryHire) || ValidInquiryType("sales") {
		t.Error("Inquiry type predicate mismatch")
	}
}
