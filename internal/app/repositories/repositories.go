package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository     *UserRepository
	FieldRepository    *FieldRepository
	CourseRepository   *CourseRepository
	ImageRepository    *ImageRepository
	DocumentRepository *DocumentRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:     NewUserRepository(db),
		FieldRepository:    NewFieldRepository(db),
		CourseRepository:   NewCourseRepository(db),
		ImageRepository:    NewImageRepository(db),
		DocumentRepository: NewDocumentRepository(db),
	}
}
