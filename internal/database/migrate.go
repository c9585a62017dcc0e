package database

import (
	"context"
	"embed"
	"fmt"
	"strings"
)

//go:embed schema/*.sql
var schemaFS embed.FS

// tables in drop order: children before parents.
var tables = []string{
	"payments",
	"invoices",
	"project_assignments",
	"materials",
	"services",
	"projects",
	"employees",
	"suppliers",
	"clients",
	"id_sequences",
}

// Migrate creates any missing tables and id sequences. It is safe to run repeatedly.
func (s *SQLDB) Migrate(ctx context.Context) error {
	src, err := schemaFS.ReadFile(fmt.Sprintf("schema/%s.sql", s.dialect))
	if err != nil {
		return fmt.Errorf("failed to read %s schema: %w", s.dialect, err)
	}

	return s.withConn(ctx, func(q querier) error {
		for _, stmt := range splitStatements(string(src)) {
			if _, err := q.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("failed to apply schema statement %q: %w", firstLine(stmt), err)
			}
		}
		s.log.Debug().Str("dialect", s.dialect.String()).Msg("schema applied")
		return nil
	})
}

// Reset drops every table and recreates the schema.
func (s *SQLDB) Reset(ctx context.Context) error {
	err := s.withConn(ctx, func(q querier) error {
		for _, table := range tables {
			if _, err := q.ExecContext(ctx, "DROP TABLE IF EXISTS "+table); err != nil {
				return fmt.Errorf("failed to drop %s: %w", table, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	return s.Migrate(ctx)
}

func splitStatements(src string) []string {
	var out []string
	for _, chunk := range strings.Split(src, ";\n") {
		var lines []string
		for _, line := range strings.Split(chunk, "\n") {
			if trimmed := strings.TrimSpace(line); trimmed != "" && !strings.HasPrefix(trimmed, "--") {
				lines = append(lines, line)
			}
		}
		if stmt := strings.TrimSuffix(strings.TrimSpace(strings.Join(lines, "\n")), ";"); stmt != "" {
			out = append(out, stmt)
		}
	}
	return out
}

func firstLine(stmt string) string {
	if i := strings.IndexByte(stmt, '\n'); i >= 0 {
		return stmt[:i]
	}
	return stmt
}
