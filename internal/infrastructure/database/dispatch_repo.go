package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"pontbot/internal/domain/entities"
	"pontbot/internal/ports/output"
	"pontbot/pkg/tz"
)

var _ output.DispatchAuditor = (*DispatchRepository)(nil)

// DispatchRepository persists relay outcomes: one row per dispatch
// plus per-day counters maintained with upserts. Everything for one
// record goes out in a single batch round trip. Day buckets follow the
// configured relay timezone, timestamps stay UTC.
type DispatchRepository struct {
	pool *pgxpool.Pool
	loc  *time.Location
}

func NewDispatchRepository(pool *pgxpool.Pool, loc *time.Location) *DispatchRepository {
	if loc == nil {
		loc = tz.Paris
	}
	return &DispatchRepository{pool: pool, loc: loc}
}

func (r *DispatchRepository) RecordDispatch(ctx context.Context, rec *entities.DispatchRecord) error {
	day := rec.At.In(r.loc).Format("2006-01-02")

	b := &pgx.Batch{}
	b.Queue(`
		INSERT INTO dispatches
			(request_id, chat_id, sender_id, source_lang, targets, delivered, translated, errors, rate_limited, at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		rec.RequestID, rec.ChatID, rec.SenderID, rec.SourceLang, rec.Targets,
		rec.Delivered, rec.Translated, rec.Errors, rec.RateLimited, rec.At,
	)
	b.Queue(`
		INSERT INTO day_counters (day, messages, errors, rate_limited)
		VALUES ($1, 1, $2, $3)
		ON CONFLICT (day) DO UPDATE SET
			messages     = day_counters.messages + 1,
			errors       = day_counters.errors + EXCLUDED.errors,
			rate_limited = day_counters.rate_limited + EXCLUDED.rate_limited`,
		day, rec.Errors, rec.RateLimited,
	)
	for _, lang := range rec.Succeeded {
		b.Queue(`
			INSERT INTO day_translations (day, lang, count)
			VALUES ($1, $2, 1)
			ON CONFLICT (day, lang) DO UPDATE SET
				count = day_translations.count + 1`,
			day, lang,
		)
	}

	res := r.pool.SendBatch(ctx, b)
	defer res.Close()
	for i := 0; i < b.Len(); i++ {
		if _, err := res.Exec(); err != nil {
			return fmt.Errorf("record dispatch: %w", err)
		}
	}
	return nil
}
