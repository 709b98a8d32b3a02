package repository

import (
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/obrativa/obras-manager-api/infrastructure/database/postgres"
	"github.com/obrativa/obras-manager-api/internal/domain"
)

const clientesTable = "clientes"

type ClienteRepository interface {
	CreateCliente(cliente *domain.Cliente) (*domain.Cliente, error)
	GetClienteByID(id string) (*domain.Cliente, error)
	ListClientes() ([]*domain.Cliente, error)
	UpdateCliente(cliente *domain.Cliente) error
	DeleteCliente(id string) error
	CountClientes() (int, error)
}

type clienteRepository struct {
	conn *postgres.Connection
}

func NewClienteRepository(conn *postgres.Connection) ClienteRepository {
	return &clienteRepository{
		conn: conn,
	}
}

const clienteColumns = "id, codigo, nome, responsavel, email, telefone, logradouro, numero, bairro, cidade, estado, cep, created_at, updated_at"

func (r *clienteRepository) CreateCliente(cliente *domain.Cliente) (*domain.Cliente, error) {
	queryBuilder := squirrel.
		Insert(clientesTable).
		Columns("id", "codigo", "nome", "responsavel", "email", "telefone",
			"logradouro", "numero", "bairro", "cidade", "estado", "cep").
		Values(cliente.ID, cliente.Codigo, cliente.Nome, cliente.Responsavel,
			cliente.Email, cliente.Telefone, cliente.Logradouro, cliente.Numero,
			cliente.Bairro, cliente.Cidade, cliente.Estado, cliente.CEP).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar)

	clienteSQL, clienteArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.conn.QueryRow(clienteSQL, clienteArgs...).Scan(&cliente.CreatedAt, &cliente.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return cliente, nil
}

func (r *clienteRepository) GetClienteByID(id string) (*domain.Cliente, error) {
	var cliente domain.Cliente
	err := r.conn.QueryRow(
		"SELECT "+clienteColumns+" FROM clientes WHERE deleted = false AND id = $1", id,
	).Scan(
		&cliente.ID,
		&cliente.Codigo,
		&cliente.Nome,
		&cliente.Responsavel,
		&cliente.Email,
		&cliente.Telefone,
		&cliente.Logradouro,
		&cliente.Numero,
		&cliente.Bairro,
		&cliente.Cidade,
		&cliente.Estado,
		&cliente.CEP,
		&cliente.CreatedAt,
		&cliente.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &cliente, nil
}

func (r *clienteRepository) ListClientes() ([]*domain.Cliente, error) {
	queryBuilder := squirrel.
		Select("id", "codigo", "nome", "responsavel", "email", "telefone",
			"logradouro", "numero", "bairro", "cidade", "estado", "cep",
			"created_at", "updated_at").
		From(clientesTable).
		Where(squirrel.Eq{"deleted": false}).
		OrderBy("nome ASC").
		PlaceholderFormat(squirrel.Dollar)

	clientesSQL, clientesArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(clientesSQL, clientesArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var clientes []*domain.Cliente
	for rows.Next() {
		var cliente domain.Cliente
		if err := rows.Scan(
			&cliente.ID,
			&cliente.Codigo,
			&cliente.Nome,
			&cliente.Responsavel,
			&cliente.Email,
			&cliente.Telefone,
			&cliente.Logradouro,
			&cliente.Numero,
			&cliente.Bairro,
			&cliente.Cidade,
			&cliente.Estado,
			&cliente.CEP,
			&cliente.CreatedAt,
			&cliente.UpdatedAt,
		); err != nil {
			return nil, err
		}

		clientes = append(clientes, &cliente)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return clientes, nil
}

func (r *clienteRepository) UpdateCliente(cliente *domain.Cliente) error {
	queryBuilder := squirrel.
		Update(clientesTable).
		Set("nome", cliente.Nome).
		Set("responsavel", cliente.Responsavel).
		Set("email", cliente.Email).
		Set("telefone", cliente.Telefone).
		Set("logradouro", cliente.Logradouro).
		Set("numero", cliente.Numero).
		Set("bairro", cliente.Bairro).
		Set("cidade", cliente.Cidade).
		Set("estado", cliente.Estado).
		Set("cep", cliente.CEP).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": cliente.ID}).
		PlaceholderFormat(squirrel.Dollar)

	clienteSQL, clienteArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(clienteSQL, clienteArgs...)
	return err
}

func (r *clienteRepository) DeleteCliente(id string) error {
	queryBuilder := squirrel.
		Update(clientesTable).
		Set("deleted", true).
		Set("deleted_at", time.Now()).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	clienteSQL, clienteArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(clienteSQL, clienteArgs...)
	return err
}

func (r *clienteRepository) CountClientes() (int, error) {
	var total int
	err := r.conn.QueryRow("SELECT COUNT(*) FROM clientes WHERE deleted = false").Scan(&total)
	if err != nil {
		return 0, err
	}

	return total, nil
}
