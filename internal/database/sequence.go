package database

import (
	"context"
	"fmt"
)

// Prefixes for the human readable identifiers, keyed by table.
var idPrefixes = map[string]string{
	"clients":   "C",
	"projects":  "P",
	"employees": "E",
	"suppliers": "SP",
	"materials": "M",
	"services":  "S",
	"invoices":  "INV",
	"payments":  "PY",
}

func FormatID(prefix string, n int64) string {
	return fmt.Sprintf("%s_%03d", prefix, n)
}

// nextID reserves the next value from id_sequences inside the caller's
// transaction, so concurrent inserts never share an identifier.
func (s *SQLDB) nextID(ctx context.Context, q querier, table string) (string, error) {
	prefix, ok := idPrefixes[table]
	if !ok {
		return "", fmt.Errorf("no id prefix for table %s", table)
	}

	res, err := s.exec(ctx, q, "UPDATE id_sequences SET last_value = last_value + 1 WHERE entity = ?", table)
	if err != nil {
		return "", fmt.Errorf("failed to reserve id for %s: %w", table, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return "", fmt.Errorf("id sequence for %s is missing, run migrate", table)
	}

	var last int64
	if err := s.queryRow(ctx, q, "SELECT last_value FROM id_sequences WHERE entity = ?", table).Scan(&last); err != nil {
		return "", fmt.Errorf("failed to read id sequence for %s: %w", table, err)
	}

	return FormatID(prefix, last), nil
}
