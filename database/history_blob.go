package database

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// historySlot is the single row key the whole history blob lives under.
const historySlot = "price_comparison_history"

// HistoryBlob stores the serialized price history in one row of the
// price_history table, overwritten wholesale on each write.
type HistoryBlob struct {
	Pool *pgxpool.Pool
}

// Read returns the stored payload, or (nil, nil) when the slot has
// never been written.
func (b HistoryBlob) Read(ctx context.Context) ([]byte, error) {
	var payload []byte
	err := b.Pool.QueryRow(ctx,
		"SELECT payload FROM price_history WHERE slot = $1", historySlot).Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return payload, nil
}

// Write upserts the payload into the slot row.
func (b HistoryBlob) Write(ctx context.Context, data []byte) error {
	_, err := b.Pool.Exec(ctx, `
		INSERT INTO price_history (slot, payload, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (slot) DO UPDATE SET payload = EXCLUDED.payload, updated_at = now()`,
		historySlot, data)
	return err
}
