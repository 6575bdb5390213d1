package visit

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/petlove/backend/model"
)

type SQL struct {
	conn *sqlx.DB
}

type VisitRepository interface {
	Create(ctx context.Context, data *model.VisitEntity) (*model.VisitEntity, error)
	GetByID(ctx context.Context, id uint64) (*model.VisitEntity, error)
	List(ctx context.Context, filter *model.VisitFilter) ([]model.VisitEntity, error)
}

func NewVisitRepository(conn *sqlx.DB) VisitRepository {
	return &SQL{conn: conn}
}

const (
	visitColumns = `id, user_id, visit_date, visit_type, reason, diagnosis, treatment, cost, veterinarian, follow_up_required, created_at, updated_at`

	insertVisitQuery = `INSERT INTO visits (user_id, visit_date, visit_type, reason, diagnosis, treatment, cost, veterinarian, follow_up_required, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, NOW())`
	getVisitQuery  = `SELECT ` + visitColumns + ` FROM visits WHERE id = ?`
	listVisitsBase = `SELECT ` + visitColumns + ` FROM visits WHERE true`
)

func (s *SQL) Create(ctx context.Context, data *model.VisitEntity) (*model.VisitEntity, error) {
	result, err := s.conn.ExecContext(ctx, insertVisitQuery,
		data.UserID, data.VisitDate, data.VisitType, data.Reason, data.Diagnosis,
		data.Treatment, data.Cost, data.Veterinarian, data.FollowUpRequired)
	if err != nil {
		return nil, err
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	data.ID = uint64(lastID)
	return data, nil
}

func (s *SQL) GetByID(ctx context.Context, id uint64) (*model.VisitEntity, error) {
	var entity model.VisitEntity
	if err := s.conn.QueryRowxContext(ctx, getVisitQuery, id).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) List(ctx context.Context, filter *model.VisitFilter) ([]model.VisitEntity, error) {
	query := listVisitsBase
	args := make([]any, 0, 1)

	if filter.UserID != 0 {
		query += " AND user_id = ?"
		args = append(args, filter.UserID)
	}
	query += " ORDER BY visit_date DESC"

	rows, err := s.conn.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	visits := make([]model.VisitEntity, 0)
	for rows.Next() {
		var entity model.VisitEntity
		if err := rows.StructScan(&entity); err != nil {
			return nil, err
		}
		visits = append(visits, entity)
	}
	return visits, nil
}
