package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"partflow/internal/core/domain"
	"partflow/internal/core/port"
)

type sqlChunkRepository struct {
	db SQLQuerier
}

// NewSQLChunkRepository creates sqlChunkRepository that implements port.ChunkRepository
func NewSQLChunkRepository(db SQLQuerier) port.ChunkRepository {
	return &sqlChunkRepository{db: db}
}

// CreateMany inserts a whole chunk plan in one statement, so the plan
// is never observable half-materialized.
func (s *sqlChunkRepository) CreateMany(ctx context.Context, chunks []domain.Chunk) error {
	if len(chunks) == 0 {
		return nil
	}

	var sb strings.Builder
	sb.WriteString(`INSERT INTO upload_chunk (id, file_id, chunk_index, status) VALUES `)

	args := make([]any, 0, len(chunks)*4)
	for i, c := range chunks {
		if i > 0 {
			sb.WriteString(", ")
		}
		base := i * 4
		sb.WriteString(fmt.Sprintf("($%d, $%d, $%d, $%d)", base+1, base+2, base+3, base+4))
		args = append(args, c.ID, c.FileID, c.Index, c.Status)
	}

	_, err := s.db.ExecContext(ctx, sb.String(), args...)
	if err != nil {
		return fmt.Errorf("error inserting chunks: %w", err)
	}
	return nil
}

// FindByFileID returns the file's chunk plan in index order
func (s *sqlChunkRepository) FindByFileID(ctx context.Context, fileID string) ([]domain.Chunk, error) {
	query := `
		SELECT id, file_id, chunk_index, status, receipt, uploaded_at
		FROM upload_chunk
		WHERE file_id = $1
		ORDER BY chunk_index ASC`

	rows, err := s.db.QueryContext(ctx, query, fileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var chunks []domain.Chunk
	for rows.Next() {
		var row dbChunk
		if err := rows.Scan(&row.ID, &row.FileID, &row.Index, &row.Status, &row.Receipt, &row.UploadedAt); err != nil {
			return nil, err
		}
		chunks = append(chunks, *row.ToDomain())
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return chunks, nil
}

func (s *sqlChunkRepository) FindByFileIDAndIndex(ctx context.Context, fileID string, index int) (*domain.Chunk, error) {
	query := `
		SELECT id, file_id, chunk_index, status, receipt, uploaded_at
		FROM upload_chunk
		WHERE file_id = $1 AND chunk_index = $2`

	var row dbChunk
	err := s.db.QueryRowContext(ctx, query, fileID, index).Scan(
		&row.ID,
		&row.FileID,
		&row.Index,
		&row.Status,
		&row.Receipt,
		&row.UploadedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrChunkNotFound
		}
		return nil, err
	}
	return row.ToDomain(), nil
}

// MarkUploaded records the receipt accepted for one chunk
func (s *sqlChunkRepository) MarkUploaded(ctx context.Context, fileID string, index int, receipt string, uploadedAt time.Time) error {
	query := `UPDATE upload_chunk SET status = 'uploaded', receipt = $1, uploaded_at = $2 WHERE file_id = $3 AND chunk_index = $4`

	result, err := s.db.ExecContext(ctx, query, receipt, uploadedAt, fileID, index)
	if err != nil {
		return fmt.Errorf("error marking chunk uploaded: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrChunkNotFound
	}
	return nil
}

type dbChunk struct {
	ID         string         `db:"id"`
	FileID     string         `db:"file_id"`
	Index      int            `db:"chunk_index"`
	Status     string         `db:"status"`
	Receipt    sql.NullString `db:"receipt"`
	UploadedAt sql.NullTime   `db:"uploaded_at"`
}

// ToDomain converts db obj to domain
func (c *dbChunk) ToDomain() *domain.Chunk {
	chunk := &domain.Chunk{
		ID:     c.ID,
		FileID: c.FileID,
		Index:  c.Index,
		Status: domain.ChunkStatus(c.Status),
	}
	if c.Receipt.Valid {
		chunk.Receipt = c.Receipt.String
	}
	if c.UploadedAt.Valid {
		t := c.UploadedAt.Time
		chunk.UploadedAt = &t
	}
	return chunk
}
