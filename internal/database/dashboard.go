package database

import (
	"context"
	"fmt"
	"strings"

	"github.com/jesses-code-adventures/cms/internal/models"
)

func (s *SQLDB) DashboardCounts(ctx context.Context) (*models.DashboardCounts, error) {
	var counts models.DashboardCounts
	names := map[string][]string{}

	err := s.withConn(ctx, func(q querier) error {
		for table, dest := range map[string]*int{
			"clients":   &counts.Clients,
			"projects":  &counts.Projects,
			"employees": &counts.Employees,
			"invoices":  &counts.Invoices,
		} {
			if err := s.queryRow(ctx, q, "SELECT COUNT(*) FROM "+table).Scan(dest); err != nil {
				return fmt.Errorf("failed to count %s: %w", table, err)
			}
		}

		rows, err := q.QueryContext(ctx, "SELECT project_name, status FROM projects WHERE status IS NOT NULL ORDER BY LENGTH(project_id), project_id")
		if err != nil {
			return fmt.Errorf("failed to list project statuses: %w", err)
		}
		defer rows.Close()
		for rows.Next() {
			var name, status string
			if err := rows.Scan(&name, &status); err != nil {
				return err
			}
			key := strings.ToLower(strings.TrimSpace(status))
			names[key] = append(names[key], name)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get dashboard counts: %w", err)
	}

	counts.ProjectsWorking = summarise(names["working"])
	counts.ProjectsPending = summarise(names["pending"])
	counts.ProjectsCompleted = summarise(names["completed"])
	return &counts, nil
}

func summarise(names []string) models.StatusSummary {
	if len(names) == 0 {
		return models.StatusSummary{Names: "None"}
	}
	return models.StatusSummary{Count: len(names), Names: strings.Join(names, "; ")}
}
