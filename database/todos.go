package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/appdotbuilder/simple-todo-app-a8eb/models"
)

// ErrNotFound signals that no todo matches the given id. It is a normal
// outcome for get/update/delete, not a failure.
var ErrNotFound = errors.New("todo not found")

const todoColumns = "id, title, description, completed, created_at, updated_at"

// TodoStore is the persistence contract for todos.
type TodoStore interface {
	Create(ctx context.Context, title string, description *string) (models.Todo, error)
	GetOne(ctx context.Context, id int64) (models.Todo, error)
	GetAll(ctx context.Context) ([]models.Todo, error)
	Update(ctx context.Context, id int64, patch models.UpdateTodoRequest) (models.Todo, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// PostgresTodoStore implements TodoStore on the shared *sql.DB.
type PostgresTodoStore struct {
	db *sql.DB
}

func NewPostgresTodoStore(db *sql.DB) *PostgresTodoStore {
	return &PostgresTodoStore{db: db}
}

func (s *PostgresTodoStore) Create(ctx context.Context, title string, description *string) (models.Todo, error) {
	query := `
		INSERT INTO todos (title, description)
		VALUES ($1, $2)
		RETURNING ` + todoColumns
	var t models.Todo
	err := s.db.QueryRowContext(ctx, query, title, description).Scan(
		&t.ID, &t.Title, &t.Description, &t.Completed, &t.CreatedAt, &t.UpdatedAt,
	)
	return t, err
}

func (s *PostgresTodoStore) GetOne(ctx context.Context, id int64) (models.Todo, error) {
	query := "SELECT " + todoColumns + " FROM todos WHERE id = $1"
	var t models.Todo
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&t.ID, &t.Title, &t.Description, &t.Completed, &t.CreatedAt, &t.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Todo{}, ErrNotFound
	}
	return t, err
}

func (s *PostgresTodoStore) GetAll(ctx context.Context) ([]models.Todo, error) {
	// newest first; id breaks created_at ties by insertion order
	query := "SELECT " + todoColumns + " FROM todos ORDER BY created_at DESC, id DESC"
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	todos := []models.Todo{}
	for rows.Next() {
		var t models.Todo
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.Completed, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		todos = append(todos, t)
	}
	return todos, rows.Err()
}

// Update reads the row, applies the fields present in patch and writes it
// back. updated_at advances on every successful update, even when no
// user-visible field changed.
func (s *PostgresTodoStore) Update(ctx context.Context, id int64, patch models.UpdateTodoRequest) (models.Todo, error) {
	t, err := s.GetOne(ctx, id)
	if err != nil {
		return models.Todo{}, err
	}

	patch.Apply(&t)

	query := `
		UPDATE todos SET title = $2, description = $3, completed = $4, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + todoColumns
	var out models.Todo
	err = s.db.QueryRowContext(ctx, query, id, t.Title, t.Description, t.Completed).Scan(
		&out.ID, &out.Title, &out.Description, &out.Completed, &out.CreatedAt, &out.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		// row vanished between read and write
		return models.Todo{}, ErrNotFound
	}
	return out, err
}

func (s *PostgresTodoStore) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM todos WHERE id = $1", id)
	if err != nil {
		return false, err
	}
	count, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
