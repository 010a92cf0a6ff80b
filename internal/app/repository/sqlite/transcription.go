package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	apperrors "yt-transcribe/internal/app/errors"
	"yt-transcribe/internal/app/model"
)

type SQLiteDB struct {
	db *sql.DB
}

// NewSQLiteDB wraps an already opened database.
func NewSQLiteDB(db *sql.DB) *SQLiteDB {
	return &SQLiteDB{db: db}
}

func (sdb *SQLiteDB) Close() error {
	return sdb.db.Close()
}

func (sdb *SQLiteDB) Record(ctx context.Context, t *model.Transcription) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now().UTC()
	}

	insertSQL := `INSERT INTO transcriptions (id, source_url, title, output_path, duration_seconds, segment_count, paragraph_count, engine, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?);`
	_, err := sdb.db.ExecContext(ctx, insertSQL, t.ID, t.SourceURL, t.Title, t.OutputPath, t.DurationSeconds,
		t.SegmentCount, t.ParagraphCount, t.Engine, t.CreatedAt)
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrInsertFailed.Error())
	}
	return nil
}

func (sdb *SQLiteDB) List(ctx context.Context, limit int) ([]model.Transcription, error) {
	sqlStr := `
		SELECT id, source_url, title, output_path, duration_seconds, segment_count, paragraph_count, engine, created_at
		FROM transcriptions
		ORDER BY created_at DESC`
	args := []interface{}{}
	if limit > 0 {
		sqlStr += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := sdb.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrQueryFailed.Error())
	}
	defer rows.Close()

	transcriptions := make([]model.Transcription, 0)
	for rows.Next() {
		var t model.Transcription
		err = rows.Scan(&t.ID, &t.SourceURL, &t.Title, &t.OutputPath, &t.DurationSeconds,
			&t.SegmentCount, &t.ParagraphCount, &t.Engine, &t.CreatedAt)
		if err != nil {
			return nil, apperrors.Wrapf(err, "db scan failed")
		}
		transcriptions = append(transcriptions, t)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrQueryFailed.Error())
	}
	return transcriptions, nil
}
