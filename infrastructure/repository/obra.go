package repository

import (
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/obrativa/obras-manager-api/infrastructure/database/postgres"
	"github.com/obrativa/obras-manager-api/internal/domain"
)

const obrasTable = "obras"

type ObraRepository interface {
	CreateObra(obra *domain.Obra) (*domain.Obra, error)
	GetObraByID(id string) (*domain.Obra, error)
	ListObras(status string) ([]*domain.Obra, error)
	ListObrasByCliente(clienteID string) ([]*domain.Obra, error)
	UpdateObra(obra *domain.Obra) error
	DeleteObra(id string) error
	CountObrasPorStatus() (map[string]int, error)
}

type obraRepository struct {
	conn *postgres.Connection
}

func NewObraRepository(conn *postgres.Connection) ObraRepository {
	return &obraRepository{
		conn: conn,
	}
}

func (r *obraRepository) CreateObra(obra *domain.Obra) (*domain.Obra, error) {
	queryBuilder := squirrel.
		Insert(obrasTable).
		Columns("id", "cliente_id", "nome", "descricao", "gestor", "status",
			"endereco", "data_inicio", "data_conclusao_prevista").
		Values(obra.ID, obra.ClienteID, obra.Nome, obra.Descricao, obra.Gestor,
			obra.Status, obra.Endereco, obra.DataInicio, obra.DataConclusaoPrevista).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar)

	obraSQL, obraArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.conn.QueryRow(obraSQL, obraArgs...).Scan(&obra.CreatedAt, &obra.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return obra, nil
}

func (r *obraRepository) GetObraByID(id string) (*domain.Obra, error) {
	var obra domain.Obra
	err := r.conn.QueryRow(
		`SELECT id, cliente_id, nome, descricao, gestor, status, endereco,
			data_inicio, data_conclusao_prevista, created_at, updated_at
		FROM obras WHERE id = $1`, id,
	).Scan(
		&obra.ID,
		&obra.ClienteID,
		&obra.Nome,
		&obra.Descricao,
		&obra.Gestor,
		&obra.Status,
		&obra.Endereco,
		&obra.DataInicio,
		&obra.DataConclusaoPrevista,
		&obra.CreatedAt,
		&obra.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &obra, nil
}

func (r *obraRepository) ListObras(status string) ([]*domain.Obra, error) {
	queryBuilder := squirrel.
		Select("id", "cliente_id", "nome", "descricao", "gestor", "status",
			"endereco", "data_inicio", "data_conclusao_prevista", "created_at", "updated_at").
		From(obrasTable).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if status != "" {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"status": status})
	}

	return r.queryObras(queryBuilder)
}

func (r *obraRepository) ListObrasByCliente(clienteID string) ([]*domain.Obra, error) {
	queryBuilder := squirrel.
		Select("id", "cliente_id", "nome", "descricao", "gestor", "status",
			"endereco", "data_inicio", "data_conclusao_prevista", "created_at", "updated_at").
		From(obrasTable).
		Where(squirrel.Eq{"cliente_id": clienteID}).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	return r.queryObras(queryBuilder)
}

func (r *obraRepository) queryObras(queryBuilder squirrel.SelectBuilder) ([]*domain.Obra, error) {
	obrasSQL, obrasArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(obrasSQL, obrasArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var obras []*domain.Obra
	for rows.Next() {
		var obra domain.Obra
		if err := rows.Scan(
			&obra.ID,
			&obra.ClienteID,
			&obra.Nome,
			&obra.Descricao,
			&obra.Gestor,
			&obra.Status,
			&obra.Endereco,
			&obra.DataInicio,
			&obra.DataConclusaoPrevista,
			&obra.CreatedAt,
			&obra.UpdatedAt,
		); err != nil {
			return nil, err
		}

		obras = append(obras, &obra)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return obras, nil
}

func (r *obraRepository) UpdateObra(obra *domain.Obra) error {
	queryBuilder := squirrel.
		Update(obrasTable).
		Set("nome", obra.Nome).
		Set("descricao", obra.Descricao).
		Set("gestor", obra.Gestor).
		Set("status", obra.Status).
		Set("endereco", obra.Endereco).
		Set("data_inicio", obra.DataInicio).
		Set("data_conclusao_prevista", obra.DataConclusaoPrevista).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": obra.ID}).
		PlaceholderFormat(squirrel.Dollar)

	obraSQL, obraArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(obraSQL, obraArgs...)
	return err
}

// DeleteObra remove a obra; etapas, lançamentos e contratos associados
// caem pelas cascatas do banco
func (r *obraRepository) DeleteObra(id string) error {
	queryBuilder := squirrel.
		Delete(obrasTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	obraSQL, obraArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(obraSQL, obraArgs...)
	return err
}

func (r *obraRepository) CountObrasPorStatus() (map[string]int, error) {
	rows, err := r.conn.Query("SELECT status, COUNT(*) FROM obras GROUP BY status")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	porStatus := make(map[string]int)
	for rows.Next() {
		var status string
		var total int
		if err := rows.Scan(&status, &total); err != nil {
			return nil, err
		}
		porStatus[status] = total
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return porStatus, nil
}
