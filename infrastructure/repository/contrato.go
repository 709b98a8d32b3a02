package repository

import (
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/obrativa/obras-manager-api/infrastructure/database/postgres"
	"github.com/obrativa/obras-manager-api/internal/domain"
)

const contratosTable = "contratos"

type ContratoRepository interface {
	CreateContrato(contrato *domain.Contrato) (*domain.Contrato, error)
	GetContratoByID(id int64) (*domain.Contrato, error)
	ListContratosByObra(obraID string) ([]*domain.Contrato, error)
	UpdateContrato(contrato *domain.Contrato) error
	DeleteContrato(id int64) error
	SumValorContratosAtivos() (float64, error)
}

type contratoRepository struct {
	conn *postgres.Connection
}

func NewContratoRepository(conn *postgres.Connection) ContratoRepository {
	return &contratoRepository{
		conn: conn,
	}
}

func (r *contratoRepository) CreateContrato(contrato *domain.Contrato) (*domain.Contrato, error) {
	queryBuilder := squirrel.
		Insert(contratosTable).
		Columns("obra_id", "numero", "valor", "status", "data_assinatura").
		Values(contrato.ObraID, contrato.Numero, contrato.Valor,
			contrato.Status, contrato.DataAssinatura).
		Suffix("RETURNING id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar)

	contratoSQL, contratoArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.conn.QueryRow(contratoSQL, contratoArgs...).Scan(
		&contrato.ID, &contrato.CreatedAt, &contrato.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return contrato, nil
}

func (r *contratoRepository) GetContratoByID(id int64) (*domain.Contrato, error) {
	var contrato domain.Contrato
	err := r.conn.QueryRow(
		`SELECT id, obra_id, numero, valor, status, data_assinatura,
			created_at, updated_at
		FROM contratos WHERE id = $1`, id,
	).Scan(
		&contrato.ID,
		&contrato.ObraID,
		&contrato.Numero,
		&contrato.Valor,
		&contrato.Status,
		&contrato.DataAssinatura,
		&contrato.CreatedAt,
		&contrato.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &contrato, nil
}

func (r *contratoRepository) ListContratosByObra(obraID string) ([]*domain.Contrato, error) {
	queryBuilder := squirrel.
		Select("id", "obra_id", "numero", "valor", "status", "data_assinatura",
			"created_at", "updated_at").
		From(contratosTable).
		Where(squirrel.Eq{"obra_id": obraID}).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	contratosSQL, contratosArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(contratosSQL, contratosArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var contratos []*domain.Contrato
	for rows.Next() {
		var contrato domain.Contrato
		if err := rows.Scan(
			&contrato.ID,
			&contrato.ObraID,
			&contrato.Numero,
			&contrato.Valor,
			&contrato.Status,
			&contrato.DataAssinatura,
			&contrato.CreatedAt,
			&contrato.UpdatedAt,
		); err != nil {
			return nil, err
		}

		contratos = append(contratos, &contrato)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return contratos, nil
}

func (r *contratoRepository) UpdateContrato(contrato *domain.Contrato) error {
	queryBuilder := squirrel.
		Update(contratosTable).
		Set("numero", contrato.Numero).
		Set("valor", contrato.Valor).
		Set("status", contrato.Status).
		Set("data_assinatura", contrato.DataAssinatura).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": contrato.ID}).
		PlaceholderFormat(squirrel.Dollar)

	contratoSQL, contratoArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(contratoSQL, contratoArgs...)
	return err
}

func (r *contratoRepository) DeleteContrato(id int64) error {
	contratoSQL, contratoArgs, err := squirrel.
		Delete(contratosTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(contratoSQL, contratoArgs...)
	return err
}

func (r *contratoRepository) SumValorContratosAtivos() (float64, error) {
	var total float64
	err := r.conn.QueryRow(
		"SELECT COALESCE(SUM(valor), 0) FROM contratos WHERE status = $1",
		domain.ContratoStatusAtivo,
	).Scan(&total)
	if err != nil {
		return 0, err
	}

	return total, nil
}
