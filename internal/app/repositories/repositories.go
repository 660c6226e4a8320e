package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository      *UserRepository
	TokenRepository     *TokenRepository
	ClassRepository     *ClassRepository
	SubjectRepository   *SubjectRepository
	ResourceRepository  *ResourceRepository
	PostRepository      *PostRepository
	MessageRepository   *MessageRepository
	TimetableRepository *TimetableRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:      NewUserRepository(db),
		TokenRepository:     NewTokenRepository(db),
		ClassRepository:     NewClassRepository(db),
		SubjectRepository:   NewSubjectRepository(db),
		ResourceRepository:  NewResourceRepository(db),
		PostRepository:      NewPostRepository(db),
		MessageRepository:   NewMessageRepository(db),
		TimetableRepository: NewTimetableRepository(db),
	}
}
