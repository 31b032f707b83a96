package employee

import "context"

type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (Employee, error)
	Exists(ctx context.Context, id string) (bool, error)
	GetCompensation(ctx context.Context, id string) (Compensation, error)
	GetDisplay(ctx context.Context, id string) (Display, error)
	List(ctx context.Context) ([]Employee, error)
}
