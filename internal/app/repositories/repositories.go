package repositories

import (
	"github.com/takeo/dojomaster/internal/store"
)

// Repositories bundles all collection repositories over one record store.
type Repositories struct {
	UserRepository    *UserRepository
	StudentRepository *StudentRepository
	RankRepository    *RankRepository
	ExamRepository    *ExamRepository
}

// NewRepositories creates repositories for every persisted collection.
func NewRepositories(s store.Store) *Repositories {
	return &Repositories{
		UserRepository:    NewUserRepository(s),
		StudentRepository: NewStudentRepository(s),
		RankRepository:    NewRankRepository(s),
		ExamRepository:    NewExamRepository(s),
	}
}
