package repository

import (
	"time"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/obrativa/obras-manager-api/infrastructure/database/postgres"
	"github.com/obrativa/obras-manager-api/internal/domain"
)

const (
	custosTable   = "lancamentos_custo"
	receitasTable = "lancamentos_receita"
)

type FinanceiroRepository interface {
	CreateCusto(custo *domain.LancamentoCusto) (*domain.LancamentoCusto, error)
	UpdateCusto(custo *domain.LancamentoCusto) error
	DeleteCusto(id int64) error
	ListCustosByObra(obraID string) ([]*domain.LancamentoCusto, error)

	CreateReceita(receita *domain.LancamentoReceita) (*domain.LancamentoReceita, error)
	UpdateReceita(receita *domain.LancamentoReceita) error
	DeleteReceita(id int64) error
	ListReceitasByObra(obraID string) ([]*domain.LancamentoReceita, error)
}

type financeiroRepository struct {
	conn *postgres.Connection
}

func NewFinanceiroRepository(conn *postgres.Connection) FinanceiroRepository {
	return &financeiroRepository{
		conn: conn,
	}
}

func (r *financeiroRepository) CreateCusto(custo *domain.LancamentoCusto) (*domain.LancamentoCusto, error) {
	queryBuilder := squirrel.
		Insert(custosTable).
		Columns("obra_id", "tipo", "descricao", "valor_previsto", "valor_real").
		Values(custo.ObraID, custo.Tipo, custo.Descricao, custo.ValorPrevisto, custo.ValorReal).
		Suffix("RETURNING id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar)

	custoSQL, custoArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.conn.QueryRow(custoSQL, custoArgs...).Scan(&custo.ID, &custo.CreatedAt, &custo.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return custo, nil
}

func (r *financeiroRepository) UpdateCusto(custo *domain.LancamentoCusto) error {
	queryBuilder := squirrel.
		Update(custosTable).
		Set("tipo", custo.Tipo).
		Set("descricao", custo.Descricao).
		Set("valor_previsto", custo.ValorPrevisto).
		Set("valor_real", custo.ValorReal).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": custo.ID}).
		PlaceholderFormat(squirrel.Dollar)

	custoSQL, custoArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(custoSQL, custoArgs...)
	return err
}

func (r *financeiroRepository) DeleteCusto(id int64) error {
	custoSQL, custoArgs, err := squirrel.
		Delete(custosTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(custoSQL, custoArgs...)
	return err
}

func (r *financeiroRepository) ListCustosByObra(obraID string) ([]*domain.LancamentoCusto, error) {
	queryBuilder := squirrel.
		Select("id", "obra_id", "tipo", "descricao", "valor_previsto",
			"valor_real", "created_at", "updated_at").
		From(custosTable).
		Where(squirrel.Eq{"obra_id": obraID}).
		OrderBy("id ASC").
		PlaceholderFormat(squirrel.Dollar)

	custosSQL, custosArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(custosSQL, custosArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var custos []*domain.LancamentoCusto
	for rows.Next() {
		var custo domain.LancamentoCusto
		if err := rows.Scan(
			&custo.ID,
			&custo.ObraID,
			&custo.Tipo,
			&custo.Descricao,
			&custo.ValorPrevisto,
			&custo.ValorReal,
			&custo.CreatedAt,
			&custo.UpdatedAt,
		); err != nil {
			return nil, err
		}

		custos = append(custos, &custo)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return custos, nil
}

func (r *financeiroRepository) CreateReceita(receita *domain.LancamentoReceita) (*domain.LancamentoReceita, error) {
	queryBuilder := squirrel.
		Insert(receitasTable).
		Columns("obra_id", "descricao", "valor_previsto", "valor_real").
		Values(receita.ObraID, receita.Descricao, receita.ValorPrevisto, receita.ValorReal).
		Suffix("RETURNING id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar)

	receitaSQL, receitaArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.conn.QueryRow(receitaSQL, receitaArgs...).Scan(&receita.ID, &receita.CreatedAt, &receita.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return receita, nil
}

func (r *financeiroRepository) UpdateReceita(receita *domain.LancamentoReceita) error {
	queryBuilder := squirrel.
		Update(receitasTable).
		Set("descricao", receita.Descricao).
		Set("valor_previsto", receita.ValorPrevisto).
		Set("valor_real", receita.ValorReal).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": receita.ID}).
		PlaceholderFormat(squirrel.Dollar)

	receitaSQL, receitaArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(receitaSQL, receitaArgs...)
	return err
}

func (r *financeiroRepository) DeleteReceita(id int64) error {
	receitaSQL, receitaArgs, err := squirrel.
		Delete(receitasTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(receitaSQL, receitaArgs...)
	return err
}

func (r *financeiroRepository) ListReceitasByObra(obraID string) ([]*domain.LancamentoReceita, error) {
	queryBuilder := squirrel.
		Select("id", "obra_id", "descricao", "valor_previsto", "valor_real",
			"created_at", "updated_at").
		From(receitasTable).
		Where(squirrel.Eq{"obra_id": obraID}).
		OrderBy("id ASC").
		PlaceholderFormat(squirrel.Dollar)

	receitasSQL, receitasArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(receitasSQL, receitasArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var receitas []*domain.LancamentoReceita
	for rows.Next() {
		var receita domain.LancamentoReceita
		if err := rows.Scan(
			&receita.ID,
			&receita.ObraID,
			&receita.Descricao,
			&receita.ValorPrevisto,
			&receita.ValorReal,
			&receita.CreatedAt,
			&receita.UpdatedAt,
		); err != nil {
			return nil, err
		}

		receitas = append(receitas, &receita)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return receitas, nil
}
