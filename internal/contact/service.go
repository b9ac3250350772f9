// Package contact serves and edits the company contact details.
package contact

import (
	"context"
	"strings"
	"time"

	"github.com/dewinson2/MJCL/internal/domain"
	"github.com/dewinson2/MJCL/internal/event"
	"github.com/dewinson2/MJCL/internal/logger"
	"github.com/dewinson2/MJCL/internal/repository"
	"github.com/dewinson2/MJCL/internal/validation"
)

// User-facing messages
const (
	MsgUpdated       = "Información de contacto actualizada correctamente"
	MsgMissingFields = "Todos los campos requeridos deben ser completados."
	MsgCreateFailed  = "Error al crear la información de contacto"
	MsgUpdateFailed  = "Error al actualizar la información de contacto"
)

// Service defines the contact info operations
type Service interface {
	// Get returns the stored contact info, or the defaults when none is
	// stored or storage cannot be read. The bool is false only in the
	// latter case.
	Get(ctx context.Context) (domain.ContactInfo, bool)
	// Update inserts the first row if none exists, otherwise updates it.
	Update(ctx context.Context, form domain.ContactInfoForm) domain.ActionResult
}

type service struct {
	repo     repository.ContactInfo
	bus      event.Bus
	validate *validation.Validator
	now      func() time.Time
}

// NewService creates a new contact info service. The bus may be nil.
func NewService(repo repository.ContactInfo, bus event.Bus) Service {
	return &service{
		repo:     repo,
		bus:      bus,
		validate: validation.Get(),
		now:      time.Now,
	}
}

func (s *service) Get(ctx context.Context) (domain.ContactInfo, bool) {
	info, err := s.repo.GetFirst(ctx)
	if err != nil {
		logger.FromContext(ctx).Error("Failed to get contact info, serving defaults", "error", err)
		return domain.DefaultContactInfo(s.now()), false
	}
	if info == nil {
		return domain.DefaultContactInfo(s.now()), true
	}
	return *info, true
}

func (s *service) Update(ctx context.Context, form domain.ContactInfoForm) domain.ActionResult {
	log := logger.FromContext(ctx)

	form = trimForm(form)
	if err := s.validate.ValidateStruct(form); err != nil {
		return domain.Invalid(MsgMissingFields, validation.FormatValidationError(err))
	}
	info := infoFromForm(form)

	existing, err := s.repo.GetFirst(ctx)
	if err != nil {
		log.Error("Failed to read contact info before update", "error", err)
		return domain.Failed(err, MsgUpdateFailed)
	}

	var id int64
	created := existing == nil
	if created {
		row, err := s.repo.Create(ctx, info)
		if err != nil {
			log.Error("Failed to create contact info", "error", err)
			return domain.Failed(err, MsgCreateFailed)
		}
		id = row.ID
	} else {
		id = existing.ID
		if err := s.repo.Update(ctx, id, info); err != nil {
			log.Error("Failed to update contact info", "error", err, "id", id)
			return domain.Failed(err, MsgUpdateFailed)
		}
	}

	event.PublishBestEffort(ctx, s.bus, event.NewContactUpdatedEvent(id, created))

	log.Info("Contact info saved", "id", id, "created", created)
	return domain.ActionResult{Success: true, Message: MsgUpdated, ID: id}
}

func trimForm(f domain.ContactInfoForm) domain.ContactInfoForm {
	for _, p := range []*string{
		&f.Phone1, &f.Phone2, &f.Email1, &f.Email2, &f.AddressLine1, &f.AddressLine2,
		&f.FacebookURL, &f.TwitterURL, &f.InstagramURL, &f.LinkedInURL,
	} {
		*p = strings.TrimSpace(*p)
	}
	return f
}

func infoFromForm(f domain.ContactInfoForm) *domain.ContactInfo {
	return &domain.ContactInfo{
		Phone1:       f.Phone1,
		Phone2:       f.Phone2,
		Email1:       f.Email1,
		Email2:       f.Email2,
		AddressLine1: f.AddressLine1,
		AddressLine2: f.AddressLine2,
		FacebookURL:  f.FacebookURL,
		TwitterURL:   f.TwitterURL,
		InstagramURL: f.InstagramURL,
		LinkedInURL:  f.LinkedInURL,
	}
}
