package adoption

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/petlove/backend/constant"
	"github.com/petlove/backend/model"
)

type SQL struct {
	conn *sqlx.DB
}

type AdoptionRepository interface {
	InsertAdoptionTx(ctx context.Context, tx *sqlx.Tx, data *model.AdoptionEntity) (uint64, error)
	GetByID(ctx context.Context, id uint64) (*model.AdoptionEntity, error)
	GetByIDTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.AdoptionEntity, error)
	UpdateStatusTx(ctx context.Context, tx *sqlx.Tx, adoptionID uint64, status constant.AdoptionStatus, adoptionDate *time.Time) error
	List(ctx context.Context, filter *model.AdoptionFilter) ([]model.AdoptionEntity, error)
}

func NewAdoptionRepository(conn *sqlx.DB) AdoptionRepository {
	return &SQL{conn: conn}
}

const (
	adoptionColumns = `id, user_id, pet_id, status, adoption_fee, notes, adoption_date, expires_at, created_at, updated_at`

	getAdoptionQuery  = `SELECT ` + adoptionColumns + ` FROM adoptions WHERE id = ?`
	listAdoptionsBase = `SELECT ` + adoptionColumns + ` FROM adoptions WHERE true`
)

func (r *SQL) InsertAdoptionTx(ctx context.Context, tx *sqlx.Tx, data *model.AdoptionEntity) (uint64, error) {
	res, err := tx.ExecContext(ctx, "INSERT INTO adoptions (user_id, pet_id, status, adoption_fee, notes, expires_at, created_at) VALUES (?, ?, ?, ?, ?, ?, NOW())",
		data.UserID, data.PetID, data.Status, data.AdoptionFee, data.Notes, data.ExpiresAt)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (r *SQL) GetByID(ctx context.Context, id uint64) (*model.AdoptionEntity, error) {
	var entity model.AdoptionEntity
	if err := r.conn.QueryRowxContext(ctx, getAdoptionQuery, id).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

// GetByIDTx locks the adoption row. Completion, cancellation, and expiration
// all contend on the same row, so whoever wins the lock decides the outcome.
func (r *SQL) GetByIDTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.AdoptionEntity, error) {
	var entity model.AdoptionEntity
	if err := tx.QueryRowxContext(ctx, getAdoptionQuery+" FOR UPDATE", id).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (r *SQL) UpdateStatusTx(ctx context.Context, tx *sqlx.Tx, adoptionID uint64, status constant.AdoptionStatus, adoptionDate *time.Time) error {
	_, err := tx.ExecContext(ctx, "UPDATE adoptions SET status = ?, adoption_date = ?, updated_at = NOW() WHERE id = ?",
		status, adoptionDate, adoptionID)
	return err
}

func (r *SQL) List(ctx context.Context, filter *model.AdoptionFilter) ([]model.AdoptionEntity, error) {
	query := listAdoptionsBase
	args := make([]any, 0, 2)

	if filter.UserID != 0 {
		query += " AND user_id = ?"
		args = append(args, filter.UserID)
	}
	if filter.PetID != 0 {
		query += " AND pet_id = ?"
		args = append(args, filter.PetID)
	}
	query += " ORDER BY id DESC"

	rows, err := r.conn.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	adoptions := make([]model.AdoptionEntity, 0)
	for rows.Next() {
		var entity model.AdoptionEntity
		if err := rows.StructScan(&entity); err != nil {
			return nil, err
		}
		adoptions = append(adoptions, entity)
	}
	return adoptions, nil
}
