package appointment

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/petlove/backend/constant"
	"github.com/petlove/backend/model"
)

type SQL struct {
	conn *sqlx.DB
}

type AppointmentRepository interface {
	Create(ctx context.Context, data *model.AppointmentEntity) (*model.AppointmentEntity, error)
	GetByID(ctx context.Context, id uint64) (*model.AppointmentEntity, error)
	List(ctx context.Context, filter *model.AppointmentFilter) ([]model.AppointmentEntity, error)
	UpdateStatus(ctx context.Context, id uint64, status constant.AppointmentStatus) error
}

func NewAppointmentRepository(conn *sqlx.DB) AppointmentRepository {
	return &SQL{conn: conn}
}

const (
	appointmentColumns = `id, user_id, appointment_type, appointment_date, duration_minutes, status, notes, veterinarian, created_at, updated_at`

	insertAppointmentQuery = `INSERT INTO appointments (user_id, appointment_type, appointment_date, duration_minutes, status, notes, veterinarian, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, NOW())`
	getAppointmentQuery  = `SELECT ` + appointmentColumns + ` FROM appointments WHERE id = ?`
	listAppointmentsBase = `SELECT ` + appointmentColumns + ` FROM appointments WHERE true`
)

func (s *SQL) Create(ctx context.Context, data *model.AppointmentEntity) (*model.AppointmentEntity, error) {
	result, err := s.conn.ExecContext(ctx, insertAppointmentQuery,
		data.UserID, data.AppointmentType, data.AppointmentDate, data.DurationMinutes,
		data.Status, data.Notes, data.Veterinarian)
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

func (s *SQL) GetByID(ctx context.Context, id uint64) (*model.AppointmentEntity, error) {
	var entity model.AppointmentEntity
	if err := s.conn.QueryRowxContext(ctx, getAppointmentQuery, id).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) List(ctx context.Context, filter *model.AppointmentFilter) ([]model.AppointmentEntity, error) {
	query := listAppointmentsBase
	args := make([]any, 0, 1)

	if filter.UserID != 0 {
		query += " AND user_id = ?"
		args = append(args, filter.UserID)
	}
	query += " ORDER BY appointment_date"

	rows, err := s.conn.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	appointments := make([]model.AppointmentEntity, 0)
	for rows.Next() {
		var entity model.AppointmentEntity
		if err := rows.StructScan(&entity); err != nil {
			return nil, err
		}
		appointments = append(appointments, entity)
	}
	return appointments, nil
}

func (s *SQL) UpdateStatus(ctx context.Context, id uint64, status constant.AppointmentStatus) error {
	_, err := s.conn.ExecContext(ctx, "UPDATE appointments SET status = ?, updated_at = NOW() WHERE id = ?", status, id)
	return err
}
