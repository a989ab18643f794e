package standards

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"standards-backend/services/standards/db"
)

const (
	StatusSuccess = "success"
	StatusNoData  = "no_data"
	StatusError   = "error"
)

// Store persists standard records and the collection audit log.
type Store struct {
	qry *db.Queries
}

func NewStore(database *sql.DB) Store {
	return Store{qry: db.New(database)}
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// Upsert replaces any stored record sharing the standard id. Later
// writes win whole-record, fields are never merged.
func (s Store) Upsert(ctx context.Context, record Record) error {
	keywords := []byte("[]")
	if record.Keywords != nil {
		var err error
		keywords, err = json.Marshal(record.Keywords)
		if err != nil {
			return fmt.Errorf("marshal keywords of %s: %w", record.StandardId, err)
		}
	}

	err := s.qry.UpsertStandard(ctx, db.UpsertStandardParams{
		StandardID:  record.StandardId,
		State:       record.State,
		Subject:     record.Subject,
		Grade:       record.Grade,
		Domain:      nullString(record.Domain),
		Cluster:     nullString(record.Cluster),
		Title:       record.Title,
		Description: record.Description,
		Keywords:    string(keywords),
		Url:         nullString(record.Url),
		CreatedAt:   time.Now().Unix(),
	})
	if err != nil {
		return fmt.Errorf("upsert %s: %w", record.StandardId, err)
	}
	return nil
}

// UpsertBatch stores every record it can, skipping over individual
// failures, and returns the number stored.
func (s Store) UpsertBatch(ctx context.Context, records []Record) int {
	stored := 0
	for _, record := range records {
		err := s.Upsert(ctx, record)
		if err != nil {
			slog.WarnContext(ctx, "failed to store standard", "standard_id", record.StandardId, "err", err)
			continue
		}
		stored++
	}
	return stored
}

// AppendLog notes one attempted unit. A failure here must reach the
// caller: the log is the only audit trail, dropping entries silently
// would invalidate the whole run.
func (s Store) AppendLog(ctx context.Context, unit Unit, status string, collected int, notes string) error {
	err := s.qry.AppendCollectionLog(ctx, db.AppendCollectionLogParams{
		Subject:          unit.Subject,
		Grade:            unit.Grade,
		Status:           status,
		RecordsCollected: int64(collected),
		Timestamp:        time.Now().Unix(),
		Notes:            notes,
	})
	if err != nil {
		return fmt.Errorf("append collection log: %w", err)
	}
	return nil
}
