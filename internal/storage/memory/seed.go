package memory

import (
	"time"

	"github.com/dewinson2/MJCL/internal/storage"
)

// seedRows returns the sample data served when no database is configured.
// The second job is the most recently created one.
func seedRows(now time.Time) map[string][]storage.Row {
	return map[string][]storage.Row{
		storage.TableContactInfo: {
			{
				storage.ColumnID:           int64(1),
				storage.ColumnPhone1:       "+123 456 7890",
				storage.ColumnPhone2:       "+123 456 7891",
				storage.ColumnEmail1:       "info@mjclservicios.com",
				storage.ColumnEmail2:       "ventas@mjclservicios.com",
				storage.ColumnAddressLine1: "Av. Principal #123",
				storage.ColumnAddressLine2: "Ciudad Capital",
				storage.ColumnFacebookURL:  "https://facebook.com/mjclservicios",
				storage.ColumnTwitterURL:   "https://twitter.com/mjclservicios",
				storage.ColumnInstagramURL: "https://instagram.com/mjclservicios",
				storage.ColumnLinkedInURL:  "https://linkedin.com/company/mjclservicios",
				storage.ColumnCreatedAt:    now.Add(-72 * time.Hour),
				storage.ColumnUpdatedAt:    now.Add(-72 * time.Hour),
			},
		},
		storage.TableJobs: {
			{
				storage.ColumnID:           int64(1),
				storage.ColumnTitle:        "Técnico de Seguridad",
				storage.ColumnSlug:         "tecnico-de-seguridad",
				storage.ColumnDescription:  "Responsable de la instalación y mantenimiento de sistemas de seguridad.",
				storage.ColumnLocation:     "Ciudad Capital",
				storage.ColumnCategory:     "seguridad",
				storage.ColumnJobType:      "Tiempo Completo",
				storage.ColumnRequirements: []string{"Experiencia en sistemas de seguridad", "Licencia de conducir"},
				storage.ColumnBenefits:     []string{"Seguro médico", "Bonificaciones"},
				storage.ColumnIsActive:     true,
				storage.ColumnCreatedAt:    now.Add(-48 * time.Hour),
				storage.ColumnUpdatedAt:    now.Add(-48 * time.Hour),
			},
			{
				storage.ColumnID:           int64(2),
				storage.ColumnTitle:        "Ingeniero de Telecomunicaciones",
				storage.ColumnSlug:         "ingeniero-de-telecomunicaciones",
				storage.ColumnDescription:  "Responsable del diseño e implementación de redes de telecomunicaciones.",
				storage.ColumnLocation:     "Ciudad Capital",
				storage.ColumnCategory:     "tecnologia",
				storage.ColumnJobType:      "Tiempo Completo",
				storage.ColumnRequirements: []string{"Ingeniería en Telecomunicaciones", "3 años de experiencia"},
				storage.ColumnBenefits:     []string{"Seguro médico", "Bonificaciones", "Desarrollo profesional"},
				storage.ColumnIsActive:     true,
				storage.ColumnCreatedAt:    now.Add(-24 * time.Hour),
				storage.ColumnUpdatedAt:    now.Add(-24 * time.Hour),
			},
		},
	}
}
