package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/riskibarqy/brazilian-soccer/internal/domain/player"
)

// replaceTable truncates table and bulk loads rows through COPY in a single
// transaction, so readers see either the old or the new contents.
func replaceTable(ctx context.Context, db *sqlx.DB, table string, columns []string, count int, row func(i int) []any) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx replace %s: %w", table, err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, "TRUNCATE TABLE "+pq.QuoteIdentifier(table)+" RESTART IDENTITY"); err != nil {
		return fmt.Errorf("truncate %s: %w", table, err)
	}

	stmt, err := tx.PreparexContext(ctx, pq.CopyIn(table, columns...))
	if err != nil {
		return fmt.Errorf("prepare copy %s: %w", table, err)
	}
	for i := 0; i < count; i++ {
		if _, err := stmt.ExecContext(ctx, row(i)...); err != nil {
			_ = stmt.Close()
			return fmt.Errorf("copy %s row %d: %w", table, i, err)
		}
	}
	if _, err := stmt.ExecContext(ctx); err != nil {
		_ = stmt.Close()
		return fmt.Errorf("flush copy %s: %w", table, err)
	}
	if err := stmt.Close(); err != nil {
		return fmt.Errorf("close copy %s: %w", table, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace %s: %w", table, err)
	}
	return nil
}

func nullString(v string) sql.NullString {
	if v == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: v, Valid: true}
}

func nullInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}

func intPtr(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	out := int(v.Int64)
	return &out
}

func encodeAttributes(attrs player.Attributes) (string, error) {
	if len(attrs) == 0 {
		return "{}", nil
	}
	raw, err := sonic.ConfigStd.Marshal(attrs)
	if err != nil {
		return "", fmt.Errorf("encode player attributes: %w", err)
	}
	return string(raw), nil
}

func decodeAttributes(raw []byte) (player.Attributes, error) {
	attrs := make(player.Attributes)
	if len(raw) == 0 {
		return attrs, nil
	}
	if err := sonic.Unmarshal(raw, &attrs); err != nil {
		return nil, fmt.Errorf("decode player attributes: %w", err)
	}
	return attrs, nil
}
