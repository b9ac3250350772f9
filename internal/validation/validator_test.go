package validation

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dewinson2/MJCL/internal/domain"
)

func validJobForm() domain.JobPostingForm {
	return domain.JobPostingForm{
		Title:        "Ingeniero Civil",
		Location:     "Ciudad Capital",
		JobType:      domain.JobTypeFullTime,
		Description:  "Supervisión de obras.",
		Category:     domain.CategoryConstruction,
		Requirements: domain.Lines{"5 años de experiencia"},
		Benefits:     domain.Lines{"Seguro médico"},
		IsActive:     true,
	}
}

func validContactForm() domain.ContactInfoForm {
	return domain.ContactInfoForm{
		Phone1:       "+123 456 7890",
		Email1:       "info@mjclservicios.com",
		AddressLine1: "Av. Principal #123",
	}
}

func TestValidator_JobPostingForm(t *testing.T) {
	v := Get()

	tests := []struct {
		name      string
		mutate    func(*domain.JobPostingForm)
		wantField string
		wantMsg   string
	}{
		{"valid form", func(*domain.JobPostingForm) {}, "", ""},
		{"missing title", func(f *domain.JobPostingForm) { f.Title = "" }, "title", MsgRequired},
		{"missing location", func(f *domain.JobPostingForm) { f.Location = "" }, "location", MsgRequired},
		{"missing description", func(f *domain.JobPostingForm) { f.Description = "" }, "description", MsgRequired},
		{"missing job type", func(f *domain.JobPostingForm) { f.JobType = "" }, "job_type", MsgRequired},
		{"unknown job type", func(f *domain.JobPostingForm) { f.JobType = "Freelance" }, "job_type", MsgInvalidJobType},
		{"unknown category", func(f *domain.JobPostingForm) { f.Category = "ventas" }, "category", MsgInvalidCategory},
		{"title too long", func(f *domain.JobPostingForm) { f.Title = strings.Repeat("a", 201) }, "title", "200"},
		{"empty lists allowed", func(f *domain.JobPostingForm) { f.Requirements, f.Benefits = nil, nil }, "", ""},
		{"requirement line too long", func(f *domain.JobPostingForm) {
			f.Requirements = domain.Lines{strings.Repeat("x", 501)}
		}, "requirements[0]", "500"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validJobForm()
			tt.mutate(&form)

			err := v.ValidateStruct(form)

			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			fields := FormatValidationError(err)
			assert.Contains(t, fields[tt.wantField], tt.wantMsg)
		})
	}
}

func TestValidator_ContactInfoForm(t *testing.T) {
	v := Get()

	assert.NoError(t, v.ValidateStruct(validContactForm()))

	form := validContactForm()
	form.Email1 = "not-an-email"
	form.LinkedInURL = "linkedin"
	fields := FormatValidationError(v.ValidateStruct(form))
	assert.Equal(t, MsgInvalidEmail, fields["email1"])
	assert.Equal(t, MsgInvalidURL, fields["linkedin_url"])

	form = validContactForm()
	form.Phone1 = ""
	form.AddressLine1 = ""
	fields = FormatValidationError(v.ValidateStruct(form))
	assert.Equal(t, map[string]string{"phone1": MsgRequired, "address_line1": MsgRequired}, fields)
}

func TestFormatValidationError_NonValidationError(t *testing.T) {
	assert.Nil(t, FormatValidationError(nil))
	assert.Equal(t, map[string]string{"error": MsgInvalidRequest}, FormatValidationError(errors.New("boom")))
}

func TestGet_ReturnsSharedInstance(t *testing.T) {
	assert.Same(t, Get(), Get())
}
