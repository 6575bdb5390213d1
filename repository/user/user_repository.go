package user

import (
	"context"
	"database/sql"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/petlove/backend/constant"
	"github.com/petlove/backend/model"
	"github.com/petlove/backend/utils/errors"
)

type SQL struct {
	conn *sqlx.DB
}

type UserRepository interface {
	Create(ctx context.Context, req *model.UserEntity) (*model.UserEntity, error)
	Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error)
	List(ctx context.Context) ([]model.UserEntity, error)
}

func NewUserRepository(conn *sqlx.DB) UserRepository {
	return &SQL{conn: conn}
}

// MySQL duplicate entry error number, raised by the unique index on email.
const duplicateEntryErrNo = 1062

const (
	insertUserQuery = `INSERT INTO users (name, email, phone, address, password, created_at) VALUES (?, ?, ?, ?, ?, NOW())`
	getUserBase     = `SELECT id, name, email, phone, address, password, created_at, updated_at FROM users WHERE true`
	listUsersQuery  = `SELECT id, name, email, phone, address, password, created_at, updated_at FROM users ORDER BY id`
)

// Create inserts a new user. The unique index on email is the authority on
// duplicates, so concurrent registrations for the same address cannot both
// succeed; the loser surfaces as ErrEmailExists.
func (s *SQL) Create(ctx context.Context, data *model.UserEntity) (*model.UserEntity, error) {
	result, err := s.conn.ExecContext(ctx, insertUserQuery, data.Name, data.Email, data.Phone, data.Address, data.Password)
	if err != nil {
		if me, ok := err.(*mysql.MySQLError); ok && me.Number == duplicateEntryErrNo {
			return nil, errors.SetCustomError(constant.ErrEmailExists)
		}
		return nil, err
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	data.ID = uint64(lastID)
	return data, nil
}

func (s *SQL) Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error) {
	query := getUserBase
	args := make([]any, 0, 2)

	if filter.ID != 0 {
		query += " AND id = ?"
		args = append(args, filter.ID)
	}
	if filter.Email != "" {
		query += " AND email = ?"
		args = append(args, filter.Email)
	}

	var entity model.UserEntity
	if err := s.conn.QueryRowxContext(ctx, query, args...).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) List(ctx context.Context) ([]model.UserEntity, error) {
	rows, err := s.conn.QueryxContext(ctx, listUsersQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]model.UserEntity, 0)
	for rows.Next() {
		var entity model.UserEntity
		if err := rows.StructScan(&entity); err != nil {
			return nil, err
		}
		users = append(users, entity)
	}
	return users, nil
}
