package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"partflow/internal/core/domain"
	"partflow/internal/core/port"

	"github.com/lib/pq"
)

const uniqueViolation = "23505"

type sqlSessionRepository struct {
	db SQLQuerier
}

// NewSQLSessionRepository creates a new sqlSessionRepository
func NewSQLSessionRepository(db SQLQuerier) port.SessionRepository {
	return &sqlSessionRepository{db: db}
}

// Create inserts a session. A second open session for the same user
// violates the partial unique index and surfaces as ErrAlreadyExists.
func (s *sqlSessionRepository) Create(ctx context.Context, session domain.Session) error {
	query := `INSERT INTO upload_session (id, user_id, status) VALUES ($1, $2, $3)`

	_, err := s.db.ExecContext(ctx, query, session.ID, session.UserID, session.Status)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			return fmt.Errorf("%w: open session for user %s", domain.ErrAlreadyExists, session.UserID)
		}
		return fmt.Errorf("error inserting session: %w", err)
	}
	return nil
}

func (s *sqlSessionRepository) FindByID(ctx context.Context, id string) (*domain.Session, error) {
	query := `
		SELECT id, user_id, status, created_at, updated_at
		FROM upload_session
		WHERE id = $1`

	return s.findOne(ctx, query, id)
}

func (s *sqlSessionRepository) FindByIDForUpdate(ctx context.Context, id string) (*domain.Session, error) {
	query := `
		SELECT id, user_id, status, created_at, updated_at
		FROM upload_session
		WHERE id = $1
		FOR UPDATE`

	return s.findOne(ctx, query, id)
}

// FindOpenByUserID returns the user's single non-terminal session
func (s *sqlSessionRepository) FindOpenByUserID(ctx context.Context, userID string) (*domain.Session, error) {
	query := `
		SELECT id, user_id, status, created_at, updated_at
		FROM upload_session
		WHERE user_id = $1 AND status IN ('in_progress', 'paused')`

	return s.findOne(ctx, query, userID)
}

// UpdateStatus updates status
func (s *sqlSessionRepository) UpdateStatus(ctx context.Context, id string, status domain.SessionStatus) error {
	query := `UPDATE upload_session SET status = $1, updated_at = now() WHERE id = $2`

	result, err := s.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrSessionNotFound
	}
	return nil
}

// FindAllStale returns non-terminal sessions untouched since before the cutoff
func (s *sqlSessionRepository) FindAllStale(ctx context.Context, cutoff time.Time) ([]domain.Session, error) {
	query := `
		SELECT id, user_id, status, created_at, updated_at
		FROM upload_session
		WHERE status IN ('in_progress', 'paused') AND updated_at < $1`

	rows, err := s.db.QueryContext(ctx, query, cutoff)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []domain.Session
	for rows.Next() {
		var row dbSession
		if err := rows.Scan(&row.ID, &row.UserID, &row.Status, &row.CreatedAt, &row.UpdatedAt); err != nil {
			return nil, err
		}
		sessions = append(sessions, *row.ToDomain())
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return sessions, nil
}

func (s *sqlSessionRepository) findOne(ctx context.Context, query string, arg any) (*domain.Session, error) {
	var row dbSession
	err := s.db.QueryRowContext(ctx, query, arg).Scan(
		&row.ID,
		&row.UserID,
		&row.Status,
		&row.CreatedAt,
		&row.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, err
	}
	return row.ToDomain(), nil
}

type dbSession struct {
	ID        string    `db:"id"`
	UserID    string    `db:"user_id"`
	Status    string    `db:"status"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// ToDomain converts db obj to domain
func (s *dbSession) ToDomain() *domain.Session {
	return &domain.Session{
		ID:        s.ID,
		UserID:    s.UserID,
		Status:    domain.SessionStatus(s.Status),
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
