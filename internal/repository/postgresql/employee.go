package postgresql

import (
	"context"
	"fmt"

	"github.com/centrahq/hr-backend-go/internal/domain/employee"
	"github.com/centrahq/hr-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `
	id, organization_id, user_id, first_name, last_name, email, role, department,
	status, annual_salary, join_date, avatar_url, created_at, updated_at, deleted_at
`

func (e *employeeRepositoryImpl) GetByID(ctx context.Context, organizationID, id string) (employee.Employee, error) {
	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE id = $1 AND organization_id = $2 AND deleted_at IS NULL
	`

	emp, err := scanEmployee(e.db.QueryRow(ctx, query, id, organizationID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return emp, nil
}

// GetActiveByOrganizationID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetActiveByOrganizationID(ctx context.Context, organizationID string) ([]employee.Employee, error) {
	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE organization_id = $1 AND status = $2 AND deleted_at IS NULL
	`

	rows, err := e.db.Query(ctx, query, organizationID, employee.StatusActive)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.ID, &emp.OrganizationID, &emp.UserID, &emp.FirstName, &emp.LastName,
		&emp.Email, &emp.Role, &emp.Department, &emp.Status, &emp.AnnualSalary,
		&emp.JoinDate, &emp.AvatarURL, &emp.CreatedAt, &emp.UpdatedAt, &emp.DeletedAt,
	)
	return emp, err
}
