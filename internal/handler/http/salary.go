package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/emsuite/ems-backend-go/internal/domain/salary"
	"github.com/emsuite/ems-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type SalaryHandler interface {
	Calculate(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
}

type salaryHandlerImpl struct {
	salaryService salary.SalaryService
}

func NewSalaryHandler(salaryService salary.SalaryService) SalaryHandler {
	return &salaryHandlerImpl{
		salaryService: salaryService,
	}
}

// Calculate implements SalaryHandler.
func (h *salaryHandlerImpl) Calculate(w http.ResponseWriter, r *http.Request) {
	var req salary.CalculateSalaryRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode calculate salary request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.salaryService.CalculateSalary(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Salary calculated", result)
}

// Get implements SalaryHandler.
func (h *salaryHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	month := r.URL.Query().Get("month")

	result, err := h.salaryService.GetSalary(r.Context(), employeeID, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
