package repositories

import (
	"github.com/mpetrov/yatube/internal/models"
	"gorm.io/gorm"
)

// SessionRepository defines the interface for session data operations
type SessionRepository interface {
	CreateSession(session *models.Session) error
	GetSession(id string) (*models.Session, error)
	DeleteSession(id string) error
	DeleteUserSessions(userID uint) error
}

// PostgresSessionRepository implements SessionRepository for PostgreSQL
type PostgresSessionRepository struct {
	db *gorm.DB
}

// NewPostgresSessionRepository creates a new PostgresSessionRepository
func NewPostgresSessionRepository(db *gorm.DB) *PostgresSessionRepository {
	return &PostgresSessionRepository{db: db}
}

func (r *PostgresSessionRepository) CreateSession(session *models.Session) error {
	return r.db.Create(session).Error
}

func (r *PostgresSessionRepository) GetSession(id string) (*models.Session, error) {
	var session models.Session
	if err := r.db.First(&session, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *PostgresSessionRepository) DeleteSession(id string) error {
	return r.db.Delete(&models.Session{}, "id = ?", id).Error
}

// DeleteUserSessions removes every session belonging to a user, used on login
func (r *PostgresSessionRepository) DeleteUserSessions(userID uint) error {
	return r.db.Where("user_id = ?", userID).Delete(&models.Session{}).Error
}
