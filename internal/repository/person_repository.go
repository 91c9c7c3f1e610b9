package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/staffing-directory/internal/domain"
)

const personColumns = "id, name, role, department, staffing_status, created_at, updated_at"

// ErrEmptyPatch is returned when an update carries no fields. Callers are
// expected to reject empty patches before reaching the repository.
var ErrEmptyPatch = errors.New("update patch carries no fields")

// PersonRepository encapsulates people persistence.
type PersonRepository interface {
	Create(ctx context.Context, person *domain.Person) error
	GetByID(ctx context.Context, id int64) (*domain.Person, error)
	List(ctx context.Context) ([]domain.Person, error)
	ListByStatuses(ctx context.Context, statuses []domain.StaffingStatus) ([]domain.Person, error)
	Update(ctx context.Context, id int64, patch domain.PersonPatch) (*domain.Person, error)
	Delete(ctx context.Context, id int64) (*domain.Person, error)
}

type personRepository struct {
	pool *pgxpool.Pool
}

// NewPersonRepository instantiates the repository.
func NewPersonRepository(pool *pgxpool.Pool) PersonRepository {
	return &personRepository{pool: pool}
}

func (r *personRepository) Create(ctx context.Context, person *domain.Person) error {
	const query = `
        INSERT INTO people (name, role, department, staffing_status)
        VALUES ($1,$2,$3,$4)
        RETURNING id, created_at, updated_at`
	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		return tx.QueryRow(ctx, query,
			person.Name,
			person.Role,
			person.Department,
			person.StaffingStatus,
		).Scan(&person.ID, &person.CreatedAt, &person.UpdatedAt)
	})
}

func (r *personRepository) GetByID(ctx context.Context, id int64) (*domain.Person, error) {
	query := fmt.Sprintf(`SELECT %s FROM people WHERE id=$1`, personColumns)
	row := r.pool.QueryRow(ctx, query, id)
	return scanPerson(row)
}

func (r *personRepository) List(ctx context.Context) ([]domain.Person, error) {
	query := fmt.Sprintf(`SELECT %s FROM people ORDER BY created_at DESC, id ASC`, personColumns)
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPeople(rows)
}

func (r *personRepository) ListByStatuses(ctx context.Context, statuses []domain.StaffingStatus) ([]domain.Person, error) {
	if len(statuses) == 0 {
		return []domain.Person{}, nil
	}

	placeholders := make([]string, len(statuses))
	args := make([]any, len(statuses))
	for i, status := range statuses {
		args[i] = status
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}

	query := fmt.Sprintf(`SELECT %s FROM people WHERE staffing_status IN (%s) ORDER BY created_at DESC, id ASC`,
		personColumns, strings.Join(placeholders, ","))
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPeople(rows)
}

func (r *personRepository) Update(ctx context.Context, id int64, patch domain.PersonPatch) (*domain.Person, error) {
	assignments, args := buildUpdateSet(patch)
	if len(assignments) == 0 {
		return nil, ErrEmptyPatch
	}

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE people SET %s, updated_at=now() WHERE id=$%d RETURNING %s`,
		strings.Join(assignments, ", "), len(args), personColumns)

	var person *domain.Person
	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		var scanErr error
		person, scanErr = scanPerson(tx.QueryRow(ctx, query, args...))
		return scanErr
	})
	if err != nil {
		return nil, err
	}
	return person, nil
}

func (r *personRepository) Delete(ctx context.Context, id int64) (*domain.Person, error) {
	query := fmt.Sprintf(`DELETE FROM people WHERE id=$1 RETURNING %s`, personColumns)

	var person *domain.Person
	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		var scanErr error
		person, scanErr = scanPerson(tx.QueryRow(ctx, query, id))
		return scanErr
	})
	if err != nil {
		return nil, err
	}
	return person, nil
}

// buildUpdateSet composes SET clauses from a fixed whitelist of columns.
// Only values are parameterized; column names never come from input.
func buildUpdateSet(patch domain.PersonPatch) ([]string, []any) {
	assignments := []string{}
	args := []any{}

	if patch.Name != nil {
		args = append(args, *patch.Name)
		assignments = append(assignments, fmt.Sprintf("name=$%d", len(args)))
	}
	if patch.Role != nil {
		args = append(args, *patch.Role)
		assignments = append(assignments, fmt.Sprintf("role=$%d", len(args)))
	}
	if patch.Department != nil {
		args = append(args, *patch.Department)
		assignments = append(assignments, fmt.Sprintf("department=$%d", len(args)))
	}
	if patch.StaffingStatus != nil {
		args = append(args, *patch.StaffingStatus)
		assignments = append(assignments, fmt.Sprintf("staffing_status=$%d", len(args)))
	}

	return assignments, args
}

func scanPerson(row pgx.Row) (*domain.Person, error) {
	var person domain.Person
	if err := row.Scan(
		&person.ID,
		&person.Name,
		&person.Role,
		&person.Department,
		&person.StaffingStatus,
		&person.CreatedAt,
		&person.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &person, nil
}

func scanPeople(rows pgx.Rows) ([]domain.Person, error) {
	var result []domain.Person
	for rows.Next() {
		person, err := scanPerson(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *person)
	}
	return result, rows.Err()
}
