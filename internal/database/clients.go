package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jesses-code-adventures/cms/internal/models"
)

const clientColumns = "client_id, client_name, contact_person, phone, email, address, client_type"

func scanClient(row scanner) (*models.Client, error) {
	var c models.Client
	var contact, phone, email, address, clientType sql.NullString
	if err := row.Scan(&c.ID, &c.Name, &contact, &phone, &email, &address, &clientType); err != nil {
		return nil, err
	}
	c.ContactPerson = nullStringToPtr(contact)
	c.Phone = nullStringToPtr(phone)
	c.Email = nullStringToPtr(email)
	c.Address = nullStringToPtr(address)
	c.ClientType = nullStringToPtr(clientType)
	return &c, nil
}

func (s *SQLDB) ListClients(ctx context.Context) ([]*models.Client, error) {
	clients, err := listRows(ctx, s, "SELECT "+clientColumns+" FROM clients ORDER BY LENGTH(client_id), client_id", scanClient)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	return clients, nil
}

func (s *SQLDB) GetClient(ctx context.Context, id string) (*models.Client, error) {
	client, err := getRow(ctx, s, "SELECT "+clientColumns+" FROM clients WHERE client_id = ?", scanClient, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get client %s: %w", id, err)
	}
	return client, nil
}

func (s *SQLDB) CreateClient(ctx context.Context, c *models.Client) (*models.Client, error) {
	if err := requireFields("client", [2]string{"client_name", c.Name}); err != nil {
		return nil, err
	}
	created := *c
	err := s.withTx(ctx, func(q querier) error {
		id, err := s.nextID(ctx, q, "clients")
		if err != nil {
			return err
		}
		created.ID = id
		_, err = s.exec(ctx, q,
			"INSERT INTO clients ("+clientColumns+") VALUES (?, ?, ?, ?, ?, ?, ?)",
			id,
			c.Name,
			ptrToNullString(c.ContactPerson),
			ptrToNullString(c.Phone),
			ptrToNullString(c.Email),
			ptrToNullString(c.Address),
			ptrToNullString(c.ClientType),
		)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}
	return &created, nil
}

func (s *SQLDB) DeleteClient(ctx context.Context, id string) error {
	if err := s.deleteByID(ctx, "clients", "client_id", id); err != nil {
		return fmt.Errorf("failed to delete client %s: %w", id, err)
	}
	return nil
}
