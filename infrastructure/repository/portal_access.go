package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/obrativa/obras-manager-api/infrastructure/database/postgres"
	"github.com/obrativa/obras-manager-api/internal/domain"
)

const acessosPortalTable = "acessos_portal"

type PortalAccessRepository interface {
	GrantAccess(acesso *domain.AcessoPortal) error
	ListAccessByUser(userID int) ([]*domain.AcessoPortal, error)
	RevokeAccess(userID int, obraID string) error
}

type portalAccessRepository struct {
	conn *postgres.Connection
}

func NewPortalAccessRepository(conn *postgres.Connection) PortalAccessRepository {
	return &portalAccessRepository{
		conn: conn,
	}
}

// GrantAccess concede acesso do usuário à obra; conceder duas vezes é
// idempotente
func (r *portalAccessRepository) GrantAccess(acesso *domain.AcessoPortal) error {
	query := squirrel.
		Insert(acessosPortalTable).
		Columns("user_id", "cliente_id", "obra_id").
		Values(acesso.UserID, acesso.ClienteID, acesso.ObraID).
		Suffix("ON CONFLICT (user_id, obra_id) DO NOTHING").
		PlaceholderFormat(squirrel.Dollar)

	acessoSQL, acessoArgs, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir consulta: %w", err)
	}

	_, err = r.conn.Exec(acessoSQL, acessoArgs...)
	if err != nil {
		return fmt.Errorf("erro ao conceder acesso ao portal: %w", err)
	}

	return nil
}

func (r *portalAccessRepository) ListAccessByUser(userID int) ([]*domain.AcessoPortal, error) {
	query := squirrel.
		Select("id", "user_id", "cliente_id", "obra_id", "created_at").
		From(acessosPortalTable).
		Where(squirrel.Eq{"user_id": userID}).
		PlaceholderFormat(squirrel.Dollar)

	acessoSQL, acessoArgs, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	rows, err := r.conn.Query(acessoSQL, acessoArgs...)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar acessos do portal: %w", err)
	}
	defer rows.Close()

	var acessos []*domain.AcessoPortal
	for rows.Next() {
		var acesso domain.AcessoPortal
		if err := rows.Scan(
			&acesso.ID,
			&acesso.UserID,
			&acesso.ClienteID,
			&acesso.ObraID,
			&acesso.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao processar resultado: %w", err)
		}
		acessos = append(acessos, &acesso)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteração: %w", err)
	}

	return acessos, nil
}

func (r *portalAccessRepository) RevokeAccess(userID int, obraID string) error {
	query := squirrel.
		Delete(acessosPortalTable).
		Where(squirrel.Eq{"user_id": userID, "obra_id": obraID}).
		PlaceholderFormat(squirrel.Dollar)

	acessoSQL, acessoArgs, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir consulta: %w", err)
	}

	_, err = r.conn.Exec(acessoSQL, acessoArgs...)
	if err != nil {
		return fmt.Errorf("erro ao revogar acesso ao portal: %w", err)
	}

	return nil
}
