package repository

import (
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/obrativa/obras-manager-api/infrastructure/database/postgres"
	"github.com/obrativa/obras-manager-api/internal/domain"
)

const eventosTable = "eventos_agenda"

type AgendaRepository interface {
	CreateEvento(evento *domain.Evento) (*domain.Evento, error)
	GetEventoByID(id int64) (*domain.Evento, error)
	ListEventosByPeriodo(inicio, fim time.Time) ([]*domain.Evento, error)
	ListEventosByUser(userID int, inicio, fim time.Time) ([]*domain.Evento, error)
	UpdateEvento(evento *domain.Evento) error
	DeleteEvento(id int64) error
}

type agendaRepository struct {
	conn *postgres.Connection
}

func NewAgendaRepository(conn *postgres.Connection) AgendaRepository {
	return &agendaRepository{
		conn: conn,
	}
}

func (r *agendaRepository) CreateEvento(evento *domain.Evento) (*domain.Evento, error) {
	queryBuilder := squirrel.
		Insert(eventosTable).
		Columns("user_id", "obra_id", "titulo", "tipo", "data_hora", "notas").
		Values(evento.UserID, evento.ObraID, evento.Titulo, evento.Tipo,
			evento.DataHora, evento.Notas).
		Suffix("RETURNING id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar)

	eventoSQL, eventoArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.conn.QueryRow(eventoSQL, eventoArgs...).Scan(
		&evento.ID, &evento.CreatedAt, &evento.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return evento, nil
}

func (r *agendaRepository) GetEventoByID(id int64) (*domain.Evento, error) {
	var evento domain.Evento
	err := r.conn.QueryRow(
		`SELECT id, user_id, obra_id, titulo, tipo, data_hora, notas,
			created_at, updated_at
		FROM eventos_agenda WHERE id = $1`, id,
	).Scan(
		&evento.ID,
		&evento.UserID,
		&evento.ObraID,
		&evento.Titulo,
		&evento.Tipo,
		&evento.DataHora,
		&evento.Notas,
		&evento.CreatedAt,
		&evento.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &evento, nil
}

func (r *agendaRepository) ListEventosByPeriodo(inicio, fim time.Time) ([]*domain.Evento, error) {
	queryBuilder := squirrel.
		Select("id", "user_id", "obra_id", "titulo", "tipo", "data_hora",
			"notas", "created_at", "updated_at").
		From(eventosTable).
		Where(squirrel.GtOrEq{"data_hora": inicio}).
		Where(squirrel.Lt{"data_hora": fim}).
		OrderBy("data_hora ASC").
		PlaceholderFormat(squirrel.Dollar)

	return r.queryEventos(queryBuilder)
}

func (r *agendaRepository) ListEventosByUser(userID int, inicio, fim time.Time) ([]*domain.Evento, error) {
	queryBuilder := squirrel.
		Select("id", "user_id", "obra_id", "titulo", "tipo", "data_hora",
			"notas", "created_at", "updated_at").
		From(eventosTable).
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.GtOrEq{"data_hora": inicio}).
		Where(squirrel.Lt{"data_hora": fim}).
		OrderBy("data_hora ASC").
		PlaceholderFormat(squirrel.Dollar)

	return r.queryEventos(queryBuilder)
}

func (r *agendaRepository) queryEventos(queryBuilder squirrel.SelectBuilder) ([]*domain.Evento, error) {
	eventosSQL, eventosArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(eventosSQL, eventosArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var eventos []*domain.Evento
	for rows.Next() {
		var evento domain.Evento
		if err := rows.Scan(
			&evento.ID,
			&evento.UserID,
			&evento.ObraID,
			&evento.Titulo,
			&evento.Tipo,
			&evento.DataHora,
			&evento.Notas,
			&evento.CreatedAt,
			&evento.UpdatedAt,
		); err != nil {
			return nil, err
		}

		eventos = append(eventos, &evento)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return eventos, nil
}

func (r *agendaRepository) UpdateEvento(evento *domain.Evento) error {
	queryBuilder := squirrel.
		Update(eventosTable).
		Set("titulo", evento.Titulo).
		Set("tipo", evento.Tipo).
		Set("obra_id", evento.ObraID).
		Set("data_hora", evento.DataHora).
		Set("notas", evento.Notas).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": evento.ID}).
		PlaceholderFormat(squirrel.Dollar)

	eventoSQL, eventoArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(eventoSQL, eventoArgs...)
	return err
}

func (r *agendaRepository) DeleteEvento(id int64) error {
	eventoSQL, eventoArgs, err := squirrel.
		Delete(eventosTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(eventoSQL, eventoArgs...)
	return err
}
