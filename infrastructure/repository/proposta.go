package repository

import (
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/obrativa/obras-manager-api/infrastructure/database/postgres"
	"github.com/obrativa/obras-manager-api/internal/domain"
)

const propostasTable = "propostas"

type PropostaRepository interface {
	CreateProposta(proposta *domain.Proposta) (*domain.Proposta, error)
	GetPropostaByID(id int64) (*domain.Proposta, error)
	ListPropostas(clienteID string) ([]*domain.Proposta, error)
	UpdateProposta(proposta *domain.Proposta) error
	DeleteProposta(id int64) error
}

type propostaRepository struct {
	conn *postgres.Connection
}

func NewPropostaRepository(conn *postgres.Connection) PropostaRepository {
	return &propostaRepository{
		conn: conn,
	}
}

func (r *propostaRepository) CreateProposta(proposta *domain.Proposta) (*domain.Proposta, error) {
	queryBuilder := squirrel.
		Insert(propostasTable).
		Columns("cliente_id", "titulo", "descricao", "valor", "status",
			"endereco", "latitude", "longitude").
		Values(proposta.ClienteID, proposta.Titulo, proposta.Descricao,
			proposta.Valor, proposta.Status, proposta.Endereco,
			proposta.Latitude, proposta.Longitude).
		Suffix("RETURNING id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar)

	propostaSQL, propostaArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.conn.QueryRow(propostaSQL, propostaArgs...).Scan(
		&proposta.ID, &proposta.CreatedAt, &proposta.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return proposta, nil
}

func (r *propostaRepository) GetPropostaByID(id int64) (*domain.Proposta, error) {
	var proposta domain.Proposta
	err := r.conn.QueryRow(
		`SELECT id, cliente_id, titulo, descricao, valor, status, endereco,
			latitude, longitude, created_at, updated_at
		FROM propostas WHERE id = $1`, id,
	).Scan(
		&proposta.ID,
		&proposta.ClienteID,
		&proposta.Titulo,
		&proposta.Descricao,
		&proposta.Valor,
		&proposta.Status,
		&proposta.Endereco,
		&proposta.Latitude,
		&proposta.Longitude,
		&proposta.CreatedAt,
		&proposta.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &proposta, nil
}

func (r *propostaRepository) ListPropostas(clienteID string) ([]*domain.Proposta, error) {
	queryBuilder := squirrel.
		Select("id", "cliente_id", "titulo", "descricao", "valor", "status",
			"endereco", "latitude", "longitude", "created_at", "updated_at").
		From(propostasTable).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if clienteID != "" {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"cliente_id": clienteID})
	}

	propostasSQL, propostasArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(propostasSQL, propostasArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var propostas []*domain.Proposta
	for rows.Next() {
		var proposta domain.Proposta
		if err := rows.Scan(
			&proposta.ID,
			&proposta.ClienteID,
			&proposta.Titulo,
			&proposta.Descricao,
			&proposta.Valor,
			&proposta.Status,
			&proposta.Endereco,
			&proposta.Latitude,
			&proposta.Longitude,
			&proposta.CreatedAt,
			&proposta.UpdatedAt,
		); err != nil {
			return nil, err
		}

		propostas = append(propostas, &proposta)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return propostas, nil
}

func (r *propostaRepository) UpdateProposta(proposta *domain.Proposta) error {
	queryBuilder := squirrel.
		Update(propostasTable).
		Set("titulo", proposta.Titulo).
		Set("descricao", proposta.Descricao).
		Set("valor", proposta.Valor).
		Set("status", proposta.Status).
		Set("endereco", proposta.Endereco).
		Set("latitude", proposta.Latitude).
		Set("longitude", proposta.Longitude).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": proposta.ID}).
		PlaceholderFormat(squirrel.Dollar)

	propostaSQL, propostaArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(propostaSQL, propostaArgs...)
	return err
}

func (r *propostaRepository) DeleteProposta(id int64) error {
	propostaSQL, propostaArgs, err := squirrel.
		Delete(propostasTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(propostaSQL, propostaArgs...)
	return err
}
