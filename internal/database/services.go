package database

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jesses-code-adventures/cms/internal/models"
)

func scanService(row scanner) (*models.Service, error) {
	var sv models.Service
	var price decimal.NullDecimal
	if err := row.Scan(&sv.ID, &sv.Name, &price); err != nil {
		return nil, err
	}
	sv.UnitPrice = nullDecimalToPtr(price)
	return &sv, nil
}

func (s *SQLDB) ListServices(ctx context.Context) ([]*models.Service, error) {
	services, err := listRows(ctx, s, "SELECT service_id, service_name, unit_price FROM services ORDER BY LENGTH(service_id), service_id", scanService)
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	return services, nil
}

func (s *SQLDB) GetService(ctx context.Context, id string) (*models.Service, error) {
	service, err := getRow(ctx, s, "SELECT service_id, service_name, unit_price FROM services WHERE service_id = ?", scanService, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get service %s: %w", id, err)
	}
	return service, nil
}

func (s *SQLDB) CreateService(ctx context.Context, sv *models.Service) (*models.Service, error) {
	if err := requireFields("service", [2]string{"service_name", sv.Name}); err != nil {
		return nil, err
	}
	created := *sv
	err := s.withTx(ctx, func(q querier) error {
		id, err := s.nextID(ctx, q, "services")
		if err != nil {
			return err
		}
		created.ID = id
		_, err = s.exec(ctx, q,
			"INSERT INTO services (service_id, service_name, unit_price) VALUES (?, ?, ?)",
			id, sv.Name, ptrToNullDecimal(sv.UnitPrice),
		)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create service: %w", err)
	}
	return &created, nil
}

func (s *SQLDB) DeleteService(ctx context.Context, id string) error {
	if err := s.deleteByID(ctx, "services", "service_id", id); err != nil {
		return fmt.Errorf("failed to delete service %s: %w", id, err)
	}
	return nil
}
