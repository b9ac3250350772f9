package domain

// Job types offered in the admin form
const (
	JobTypeFullTime = "Tiempo Completo"
	JobTypePartTime = "Medio Tiempo"
	JobTypeProject  = "Por Proyecto"
	JobTypeRemote   = "Remoto"
)

// Job categories
const (
	CategoryConstruction = "construccion"
	CategorySecurity     = "seguridad"
	CategoryTechnology   = "tecnologia"
)

// CategoryAll is the bucket holding every active job in the grouped listing.
const CategoryAll = "todos"

// JobTypes lists the accepted job types in display order.
var JobTypes = []string{JobTypeFullTime, JobTypePartTime, JobTypeProject, JobTypeRemote}

// Categories lists the accepted categories in display order.
var Categories = []string{CategoryConstruction, CategorySecurity, CategoryTechnology}

// IsJobType reports whether s is an accepted job type.
func IsJobType(s string) bool {
	return contains(JobTypes, s)
}

// IsCategory reports whether s is an accepted category.
func IsCategory(s string) bool {
	return contains(Categories, s)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// Checkbox value sent by HTML forms for a checked box
const FormCheckboxOn = "on"
