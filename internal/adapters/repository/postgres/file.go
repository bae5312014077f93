package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"partflow/internal/core/domain"
	"partflow/internal/core/port"
)

type sqlFileRepository struct {
	db SQLQuerier
}

// NewSQLFileRepository creates sqlFileRepository that implements port.FileRepository
func NewSQLFileRepository(db SQLQuerier) port.FileRepository {
	return &sqlFileRepository{db: db}
}

// Create creates a new file entry
func (s *sqlFileRepository) Create(ctx context.Context, file domain.File) error {
	query := `INSERT INTO upload_file (id, session_id, file_name, size_bytes, total_chunks, uploaded_chunks, status, storage_key, upload_id)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := s.db.ExecContext(ctx, query,
		file.ID,
		file.SessionID,
		file.Name,
		file.Size,
		file.TotalChunks,
		file.UploadedChunks,
		file.Status,
		file.StorageKey,
		file.UploadID,
	)
	if err != nil {
		return fmt.Errorf("error inserting file: %w", err)
	}
	return nil
}

func (s *sqlFileRepository) FindByID(ctx context.Context, id string) (*domain.File, error) {
	query := `
		SELECT id, session_id, file_name, size_bytes, total_chunks, uploaded_chunks, status, storage_key, upload_id, created_at, updated_at
		FROM upload_file
		WHERE id = $1`

	return s.findOne(ctx, query, id)
}

func (s *sqlFileRepository) FindByIDForUpdate(ctx context.Context, id string) (*domain.File, error) {
	query := `
		SELECT id, session_id, file_name, size_bytes, total_chunks, uploaded_chunks, status, storage_key, upload_id, created_at, updated_at
		FROM upload_file
		WHERE id = $1
		FOR UPDATE`

	return s.findOne(ctx, query, id)
}

// FindBySessionID returns the session's files in registration order
func (s *sqlFileRepository) FindBySessionID(ctx context.Context, sessionID string) ([]domain.File, error) {
	query := `
		SELECT id, session_id, file_name, size_bytes, total_chunks, uploaded_chunks, status, storage_key, upload_id, created_at, updated_at
		FROM upload_file
		WHERE session_id = $1
		ORDER BY created_at ASC, id ASC`

	rows, err := s.db.QueryContext(ctx, query, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var files []domain.File
	for rows.Next() {
		var row dbFile
		if err := rows.Scan(
			&row.ID,
			&row.SessionID,
			&row.Name,
			&row.Size,
			&row.TotalChunks,
			&row.UploadedChunks,
			&row.Status,
			&row.StorageKey,
			&row.UploadID,
			&row.CreatedAt,
			&row.UpdatedAt,
		); err != nil {
			return nil, err
		}
		files = append(files, *row.ToDomain())
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return files, nil
}

// UpdateStatus updates status
func (s *sqlFileRepository) UpdateStatus(ctx context.Context, id string, status domain.FileStatus) error {
	query := `UPDATE upload_file SET status = $1, updated_at = now() WHERE id = $2`

	result, err := s.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("error updating file: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrFileNotFound
	}
	return nil
}

// MarkUploaded sets the terminal uploaded state and the cached chunk count together
func (s *sqlFileRepository) MarkUploaded(ctx context.Context, id string, uploadedChunks int) error {
	query := `UPDATE upload_file SET status = 'uploaded', uploaded_chunks = $1, updated_at = now() WHERE id = $2`

	result, err := s.db.ExecContext(ctx, query, uploadedChunks, id)
	if err != nil {
		return fmt.Errorf("error marking file uploaded: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrFileNotFound
	}
	return nil
}

func (s *sqlFileRepository) findOne(ctx context.Context, query string, arg any) (*domain.File, error) {
	var row dbFile
	err := s.db.QueryRowContext(ctx, query, arg).Scan(
		&row.ID,
		&row.SessionID,
		&row.Name,
		&row.Size,
		&row.TotalChunks,
		&row.UploadedChunks,
		&row.Status,
		&row.StorageKey,
		&row.UploadID,
		&row.CreatedAt,
		&row.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrFileNotFound
		}
		return nil, err
	}
	return row.ToDomain(), nil
}

type dbFile struct {
	ID             string    `db:"id"`
	SessionID      string    `db:"session_id"`
	Name           string    `db:"file_name"`
	Size           int64     `db:"size_bytes"`
	TotalChunks    int       `db:"total_chunks"`
	UploadedChunks int       `db:"uploaded_chunks"`
	Status         string    `db:"status"`
	StorageKey     string    `db:"storage_key"`
	UploadID       string    `db:"upload_id"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

// ToDomain converts db obj to domain
func (f *dbFile) ToDomain() *domain.File {
	return &domain.File{
		ID:             f.ID,
		SessionID:      f.SessionID,
		Name:           f.Name,
		Size:           f.Size,
		TotalChunks:    f.TotalChunks,
		UploadedChunks: f.UploadedChunks,
		Status:         domain.FileStatus(f.Status),
		StorageKey:     f.StorageKey,
		UploadID:       f.UploadID,
		CreatedAt:      f.CreatedAt,
		UpdatedAt:      f.UpdatedAt,
	}
}
