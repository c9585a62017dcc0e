package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jesses-code-adventures/cms/internal/models"
)

const materialColumns = "material_id, material_name, supplier_id, manufacturer, unit_price, unit_of_measure, stock_quantity, description"

func scanMaterial(row scanner) (*models.Material, error) {
	var m models.Material
	var supplierID, manufacturer, unit, description sql.NullString
	var price, stock decimal.NullDecimal
	if err := row.Scan(&m.ID, &m.Name, &supplierID, &manufacturer, &price, &unit, &stock, &description); err != nil {
		return nil, err
	}
	m.SupplierID = nullStringToPtr(supplierID)
	m.Manufacturer = nullStringToPtr(manufacturer)
	m.UnitPrice = nullDecimalToPtr(price)
	m.UnitOfMeasure = nullStringToPtr(unit)
	m.StockQuantity = nullDecimalToPtr(stock)
	m.Description = nullStringToPtr(description)
	return &m, nil
}

func (s *SQLDB) ListMaterials(ctx context.Context) ([]*models.Material, error) {
	materials, err := listRows(ctx, s, "SELECT "+materialColumns+" FROM materials ORDER BY LENGTH(material_id), material_id", scanMaterial)
	if err != nil {
		return nil, fmt.Errorf("failed to list materials: %w", err)
	}
	return materials, nil
}

func (s *SQLDB) GetMaterial(ctx context.Context, id string) (*models.Material, error) {
	material, err := getRow(ctx, s, "SELECT "+materialColumns+" FROM materials WHERE material_id = ?", scanMaterial, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get material %s: %w", id, err)
	}
	return material, nil
}

func (s *SQLDB) CreateMaterial(ctx context.Context, m *models.Material) (*models.Material, error) {
	if err := requireFields("material", [2]string{"material_name", m.Name}); err != nil {
		return nil, err
	}
	created := *m
	err := s.withTx(ctx, func(q querier) error {
		id, err := s.nextID(ctx, q, "materials")
		if err != nil {
			return err
		}
		created.ID = id
		_, err = s.exec(ctx, q,
			"INSERT INTO materials ("+materialColumns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
			id,
			m.Name,
			ptrToNullString(m.SupplierID),
			ptrToNullString(m.Manufacturer),
			ptrToNullDecimal(m.UnitPrice),
			ptrToNullString(m.UnitOfMeasure),
			ptrToNullDecimal(m.StockQuantity),
			ptrToNullString(m.Description),
		)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create material: %w", err)
	}
	return &created, nil
}

func (s *SQLDB) DeleteMaterial(ctx context.Context, id string) error {
	if err := s.deleteByID(ctx, "materials", "material_id", id); err != nil {
		return fmt.Errorf("failed to delete material %s: %w", id, err)
	}
	return nil
}
