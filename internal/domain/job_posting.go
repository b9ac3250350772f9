package domain

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// JobPosting is a job offer shown on the public careers page
type JobPosting struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Location     string    `json:"location"`
	JobType      string    `json:"job_type"` // "Tiempo Completo", "Remoto", ...
	Description  string    `json:"description"`
	Requirements []string  `json:"requirements"`
	Benefits     []string  `json:"benefits"`
	Category     string    `json:"category"` // "construccion", "seguridad", "tecnologia"
	IsActive     bool      `json:"is_active"`
	Slug         string    `json:"slug"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// JobPostingForm is the admin submission for creating or editing a job posting.
// Slug is ignored on create and required on update.
type JobPostingForm struct {
	Title        string `json:"title" validate:"required,max=200"`
	Location     string `json:"location" validate:"required,max=200"`
	JobType      string `json:"job_type" validate:"required,jobtype"`
	Description  string `json:"description" validate:"required,max=10000"`
	Category     string `json:"category" validate:"required,category"`
	Requirements Lines  `json:"requirements" validate:"dive,max=500"`
	Benefits     Lines  `json:"benefits" validate:"dive,max=500"`
	IsActive     bool   `json:"is_active"`
	Slug         string `json:"slug" validate:"omitempty,max=250"`
}

// GroupedJobs maps a category (plus CategoryAll) to its active postings.
type GroupedJobs map[string][]JobPosting

// Lines is an ordered list of text lines. It decodes from either a JSON array
// or a single newline-separated string, dropping blank lines.
type Lines []string

// SplitLines splits text on newlines and drops blank lines. Kept lines lose a
// trailing carriage return.
func SplitLines(text string) Lines {
	lines := Lines{}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// UnmarshalJSON accepts a string or an array of strings.
func (l *Lines) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*l = Lines{}
		return nil
	}

	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		*l = SplitLines(text)
		return nil
	}

	var items []string
	if err := json.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("%w: expected a string or a list of strings", ErrInvalidInput)
	}
	*l = SplitLines(strings.Join(items, "\n"))
	return nil
}
