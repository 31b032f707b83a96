package http

import (
	"net/http"

	"github.com/emsuite/ems-backend-go/internal/domain/employee"
	"github.com/emsuite/ems-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type EmployeeHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeHandler(employeeRepo employee.EmployeeRepository) EmployeeHandler {
	return &employeeHandlerImpl{
		employeeRepo: employeeRepo,
	}
}

// List implements EmployeeHandler.
func (h *employeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	employees, err := h.employeeRepo.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		result = append(result, employee.ToResponse(e))
	}

	response.Success(w, result)
}

// Get implements EmployeeHandler.
func (h *employeeHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	emp, err := h.employeeRepo.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, employee.ToResponse(emp))
}
