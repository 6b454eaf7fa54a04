package tasks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/taskhub/internal/common"
	"github.com/dmitrijs2005/taskhub/internal/dbx"
	"github.com/dmitrijs2005/taskhub/internal/server/models"
	"github.com/google/uuid"
)

// PostgresRepository implements task storage over a dbx.DBTX
// (*sql.DB or *sql.Tx). The duedate column is a DATE; selects render it
// back to the ISO string the model carries. Column names (duedate,
// userid) are mapped to the model's field names at this boundary only.
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const selectColumns = `id, name, TO_CHAR(duedate, 'YYYY-MM-DD') AS duedate, priority, userid`

// Create inserts a new task. The id is generated application-side so the
// returned record needs no second round trip.
func (r *PostgresRepository) Create(ctx context.Context, task *models.Task) (*models.Task, error) {

	task.ID = uuid.NewString()

	query :=
		`INSERT INTO tasks (id, name, duedate, priority, userid)
		 VALUES ($1, $2, $3, $4, $5)
		 `

	_, err := r.db.ExecContext(ctx, query,
		task.ID, task.Name, task.DueDate, task.Priority, task.UserID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return task, nil
}

func (r *PostgresRepository) FindByUser(ctx context.Context, userID string) ([]*models.Task, error) {
	query := `SELECT ` + selectColumns + ` FROM tasks
		 WHERE userid = $1
		 ORDER BY duedate, id
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Task
	for rows.Next() {
		var item models.Task
		if err := rows.Scan(&item.ID, &item.Name, &item.DueDate, &item.Priority, &item.UserID); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) FindByID(ctx context.Context, id string) (*models.Task, error) {
	query := `SELECT ` + selectColumns + ` FROM tasks
		 WHERE id = $1
		 `

	task := &models.Task{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&task.ID, &task.Name, &task.DueDate, &task.Priority, &task.UserID)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return task, nil
}

// Update builds the SET list dynamically from the supplied partial fields
// and runs a single parameterized statement keyed by id. Zero matched
// rows yields common.ErrNotFound.
func (r *PostgresRepository) Update(ctx context.Context, id string, upd *models.TaskUpdate) (*models.Task, error) {

	sets := make([]string, 0, 3)
	args := make([]any, 0, 4)

	if upd.Name != nil {
		args = append(args, *upd.Name)
		sets = append(sets, fmt.Sprintf("name = $%d", len(args)))
	}
	if upd.DueDate != nil {
		args = append(args, *upd.DueDate)
		sets = append(sets, fmt.Sprintf("duedate = $%d", len(args)))
	}
	if upd.Priority != nil {
		args = append(args, *upd.Priority)
		sets = append(sets, fmt.Sprintf("priority = $%d", len(args)))
	}

	if len(sets) == 0 {
		return r.FindByID(ctx, id)
	}

	args = append(args, id)
	query := fmt.Sprintf(
		`UPDATE tasks SET %s WHERE id = $%d
		 RETURNING `+selectColumns,
		strings.Join(sets, ", "), len(args))

	task := &models.Task{}
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&task.ID, &task.Name, &task.DueDate, &task.Priority, &task.UserID)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return task, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM tasks WHERE id = $1`

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}
