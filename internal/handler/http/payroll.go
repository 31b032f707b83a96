package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/emsuite/ems-backend-go/internal/domain/payroll"
	"github.com/emsuite/ems-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	Distribute(w http.ResponseWriter, r *http.Request)
	History(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{
		payrollService: payrollService,
	}
}

// Distribute implements PayrollHandler.
func (h *payrollHandlerImpl) Distribute(w http.ResponseWriter, r *http.Request) {
	var req payroll.DistributePayrollRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode distribute payroll request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.payrollService.DistributePayroll(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, result.Message, result)
}

// History implements PayrollHandler.
func (h *payrollHandlerImpl) History(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")

	result, err := h.payrollService.GetPayrollHistory(r.Context(), month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
