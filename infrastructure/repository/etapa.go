package repository

import (
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/obrativa/obras-manager-api/infrastructure/database/postgres"
	"github.com/obrativa/obras-manager-api/internal/domain"
)

const etapasTable = "etapas"

type EtapaRepository interface {
	CreateEtapa(etapa *domain.Etapa) (*domain.Etapa, error)
	GetEtapaByID(id int64) (*domain.Etapa, error)
	ListEtapasByObra(obraID string) ([]*domain.Etapa, error)
	UpdateEtapa(etapa *domain.Etapa) error
	DeleteEtapa(id int64) error
}

type etapaRepository struct {
	conn *postgres.Connection
}

func NewEtapaRepository(conn *postgres.Connection) EtapaRepository {
	return &etapaRepository{
		conn: conn,
	}
}

func (r *etapaRepository) CreateEtapa(etapa *domain.Etapa) (*domain.Etapa, error) {
	queryBuilder := squirrel.
		Insert(etapasTable).
		Columns("obra_id", "nome", "status", "peso", "report_start_date", "report_end_date").
		Values(etapa.ObraID, etapa.Nome, etapa.Status, etapa.Peso,
			etapa.ReportStartDate, etapa.ReportEndDate).
		Suffix("RETURNING id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar)

	etapaSQL, etapaArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.conn.QueryRow(etapaSQL, etapaArgs...).Scan(&etapa.ID, &etapa.CreatedAt, &etapa.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return etapa, nil
}

func (r *etapaRepository) GetEtapaByID(id int64) (*domain.Etapa, error) {
	var etapa domain.Etapa
	err := r.conn.QueryRow(
		`SELECT id, obra_id, nome, status, peso, report_start_date,
			report_end_date, created_at, updated_at
		FROM etapas WHERE id = $1`, id,
	).Scan(
		&etapa.ID,
		&etapa.ObraID,
		&etapa.Nome,
		&etapa.Status,
		&etapa.Peso,
		&etapa.ReportStartDate,
		&etapa.ReportEndDate,
		&etapa.CreatedAt,
		&etapa.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &etapa, nil
}

func (r *etapaRepository) ListEtapasByObra(obraID string) ([]*domain.Etapa, error) {
	queryBuilder := squirrel.
		Select("id", "obra_id", "nome", "status", "peso", "report_start_date",
			"report_end_date", "created_at", "updated_at").
		From(etapasTable).
		Where(squirrel.Eq{"obra_id": obraID}).
		OrderBy("report_end_date ASC NULLS LAST", "id ASC").
		PlaceholderFormat(squirrel.Dollar)

	etapasSQL, etapasArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(etapasSQL, etapasArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var etapas []*domain.Etapa
	for rows.Next() {
		var etapa domain.Etapa
		if err := rows.Scan(
			&etapa.ID,
			&etapa.ObraID,
			&etapa.Nome,
			&etapa.Status,
			&etapa.Peso,
			&etapa.ReportStartDate,
			&etapa.ReportEndDate,
			&etapa.CreatedAt,
			&etapa.UpdatedAt,
		); err != nil {
			return nil, err
		}

		etapas = append(etapas, &etapa)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return etapas, nil
}

func (r *etapaRepository) UpdateEtapa(etapa *domain.Etapa) error {
	queryBuilder := squirrel.
		Update(etapasTable).
		Set("nome", etapa.Nome).
		Set("status", etapa.Status).
		Set("peso", etapa.Peso).
		Set("report_start_date", etapa.ReportStartDate).
		Set("report_end_date", etapa.ReportEndDate).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": etapa.ID}).
		PlaceholderFormat(squirrel.Dollar)

	etapaSQL, etapaArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(etapaSQL, etapaArgs...)
	return err
}

// DeleteEtapa remove a etapa; as fotos associadas caem pela cascata do banco
func (r *etapaRepository) DeleteEtapa(id int64) error {
	queryBuilder := squirrel.
		Delete(etapasTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	etapaSQL, etapaArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(etapaSQL, etapaArgs...)
	return err
}
