package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jesses-code-adventures/cms/internal/models"
)

const supplierColumns = "supplier_id, supplier_name, contact_person, phone, email, address, supplier_type"

func scanSupplier(row scanner) (*models.Supplier, error) {
	var sp models.Supplier
	var contact, phone, email, address, supplierType sql.NullString
	if err := row.Scan(&sp.ID, &sp.Name, &contact, &phone, &email, &address, &supplierType); err != nil {
		return nil, err
	}
	sp.ContactPerson = nullStringToPtr(contact)
	sp.Phone = nullStringToPtr(phone)
	sp.Email = nullStringToPtr(email)
	sp.Address = nullStringToPtr(address)
	sp.SupplierType = nullStringToPtr(supplierType)
	return &sp, nil
}

func (s *SQLDB) ListSuppliers(ctx context.Context) ([]*models.Supplier, error) {
	suppliers, err := listRows(ctx, s, "SELECT "+supplierColumns+" FROM suppliers ORDER BY LENGTH(supplier_id), supplier_id", scanSupplier)
	if err != nil {
		return nil, fmt.Errorf("failed to list suppliers: %w", err)
	}
	return suppliers, nil
}

func (s *SQLDB) GetSupplier(ctx context.Context, id string) (*models.Supplier, error) {
	supplier, err := getRow(ctx, s, "SELECT "+supplierColumns+" FROM suppliers WHERE supplier_id = ?", scanSupplier, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get supplier %s: %w", id, err)
	}
	return supplier, nil
}

func (s *SQLDB) CreateSupplier(ctx context.Context, sp *models.Supplier) (*models.Supplier, error) {
	if err := requireFields("supplier", [2]string{"supplier_name", sp.Name}); err != nil {
		return nil, err
	}
	created := *sp
	err := s.withTx(ctx, func(q querier) error {
		id, err := s.nextID(ctx, q, "suppliers")
		if err != nil {
			return err
		}
		created.ID = id
		_, err = s.exec(ctx, q,
			"INSERT INTO suppliers ("+supplierColumns+") VALUES (?, ?, ?, ?, ?, ?, ?)",
			id,
			sp.Name,
			ptrToNullString(sp.ContactPerson),
			ptrToNullString(sp.Phone),
			ptrToNullString(sp.Email),
			ptrToNullString(sp.Address),
			ptrToNullString(sp.SupplierType),
		)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create supplier: %w", err)
	}
	return &created, nil
}

func (s *SQLDB) DeleteSupplier(ctx context.Context, id string) error {
	if err := s.deleteByID(ctx, "suppliers", "supplier_id", id); err != nil {
		return fmt.Errorf("failed to delete supplier %s: %w", id, err)
	}
	return nil
}
