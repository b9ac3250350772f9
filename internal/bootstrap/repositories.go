package bootstrap

import (
	"github.com/dewinson2/MJCL/internal/repository"
	"github.com/dewinson2/MJCL/internal/storage"
)

// Repositories holds all repository implementations used by the application.
type Repositories struct {
	Jobs    repository.JobPosting
	Contact repository.ContactInfo
}

// InitializeRepositories builds every repository over the same facade.
func InitializeRepositories(client *storage.Client) *Repositories {
	return &Repositories{
		Jobs:    repository.NewJobPostingRepository(client),
		Contact: repository.NewContactInfoRepository(client),
	}
}
