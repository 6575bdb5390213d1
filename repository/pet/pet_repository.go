package pet

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

type PetRepository interface {
	List(ctx context.Context, filter *model.PetFilter) ([]model.PetEntity, int64, error)
	GetByID(ctx context.Context, id uint64) (*model.PetEntity, error)
	Create(ctx context.Context, data *model.PetEntity) (*model.PetEntity, error)
	Update(ctx context.Context, data *model.PetEntity) error
	GetByIDTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.PetEntity, error)
	UpdateAdoptionStatusTx(ctx context.Context, tx *sqlx.Tx, id uint64, status constant.PetAdoptionStatus) error
}

func NewPetRepository(conn *sqlx.DB) PetRepository {
	return &SQL{conn: conn}
}

const (
	petColumns = `id, name, species, breed, age, color, size, gender, description, adoption_status, price, images, created_at, updated_at`

	listPetsBase   = `SELECT ` + petColumns + ` FROM pets WHERE true`
	countPetsBase  = `SELECT COUNT(*) FROM pets WHERE true`
	getPetQuery    = `SELECT ` + petColumns + ` FROM pets WHERE id = ?`
	insertPetQuery = `INSERT INTO pets (name, species, breed, age, color, size, gender, description, adoption_status, price, images, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NOW())`
	updatePetQuery = `UPDATE pets SET name = ?, species = ?, breed = ?, age = ?, color = ?, size = ?, gender = ?, description = ?, price = ?, images = ?, updated_at = NOW() WHERE id = ?`
)

func filterClause(filter *model.PetFilter) (string, []any) {
	clause := ""
	args := make([]any, 0, 2)
	if filter.Species != "" {
		clause += " AND species = ?"
		args = append(args, filter.Species)
	}
	if filter.AdoptionStatus != "" {
		clause += " AND adoption_status = ?"
		args = append(args, filter.AdoptionStatus)
	}
	return clause, args
}

func (s *SQL) List(ctx context.Context, filter *model.PetFilter) ([]model.PetEntity, int64, error) {
	clause, args := filterClause(filter)
	offset := (filter.Page - 1) * filter.PerPage

	query := listPetsBase + clause + " ORDER BY id LIMIT ? OFFSET ?"
	rows, err := s.conn.QueryxContext(ctx, query, append(args, filter.PerPage, offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	items := make([]model.PetEntity, 0)
	for rows.Next() {
		var it model.PetEntity
		if err := rows.StructScan(&it); err != nil {
			return nil, 0, err
		}
		items = append(items, it)
	}

	// count uses the same filters, not the page window
	var total int64
	if err := s.conn.GetContext(ctx, &total, countPetsBase+clause, args...); err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

func (s *SQL) GetByID(ctx context.Context, id uint64) (*model.PetEntity, error) {
	var entity model.PetEntity
	if err := s.conn.QueryRowxContext(ctx, getPetQuery, id).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) Create(ctx context.Context, data *model.PetEntity) (*model.PetEntity, error) {
	result, err := s.conn.ExecContext(ctx, insertPetQuery,
		data.Name, data.Species, data.Breed, data.Age, data.Color, data.Size, data.Gender,
		data.Description, data.AdoptionStatus, data.Price, data.Images)
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

func (s *SQL) Update(ctx context.Context, data *model.PetEntity) error {
	_, err := s.conn.ExecContext(ctx, updatePetQuery,
		data.Name, data.Species, data.Breed, data.Age, data.Color, data.Size, data.Gender,
		data.Description, data.Price, data.Images, data.ID)
	return err
}

// GetByIDTx locks the pet row so the adoption flow can check and flip the
// adoption status without racing a concurrent application.
func (s *SQL) GetByIDTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.PetEntity, error) {
	var entity model.PetEntity
	if err := tx.QueryRowxContext(ctx, getPetQuery+" FOR UPDATE", id).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) UpdateAdoptionStatusTx(ctx context.Context, tx *sqlx.Tx, id uint64, status constant.PetAdoptionStatus) error {
	_, err := tx.ExecContext(ctx, "UPDATE pets SET adoption_status = ?, updated_at = NOW() WHERE id = ?", status, id)
	return err
}
