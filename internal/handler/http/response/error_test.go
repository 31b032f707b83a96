package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/emsuite/ems-backend-go/internal/domain/attendance"
	"github.com/emsuite/ems-backend-go/internal/domain/employee"
	"github.com/emsuite/ems-backend-go/internal/domain/payroll"
	"github.com/emsuite/ems-backend-go/internal/domain/salary"
	"github.com/emsuite/ems-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleError(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"employee not found", employee.ErrEmployeeNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"day already closed", attendance.ErrDayAlreadyClosed, http.StatusConflict, "CONFLICT"},
		{"check-out before check-in", attendance.ErrCheckOutBeforeIn, http.StatusBadRequest, "BAD_REQUEST"},
		{"not own attendance", attendance.ErrNotOwnAttendance, http.StatusForbidden, "FORBIDDEN"},
		{"salary not found", salary.ErrSalaryNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"invalid salary month", salary.ErrInvalidMonth, http.StatusBadRequest, "BAD_REQUEST"},
		{"no salaries for month", payroll.ErrNoSalariesForMonth, http.StatusNotFound, "NOT_FOUND"},
		{"already distributed", payroll.ErrAlreadyDistributed, http.StatusConflict, "CONFLICT"},
		{"wrapped domain error", fmt.Errorf("distribute payroll: %w", payroll.ErrAlreadyDistributed), http.StatusConflict, "CONFLICT"},
		{"unknown error", errors.New("pool exhausted"), http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HandleError(rec, c.err)

			assert.Equal(t, c.wantStatus, rec.Code)

			var body Response
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.False(t, body.Success)
			require.NotNil(t, body.Error)
			assert.Equal(t, c.wantCode, body.Error.Code)
		})
	}
}

func TestHandleError_ValidationErrors(t *testing.T) {
	errs := validator.ValidationErrors{
		{Field: "month", Message: "must be in YYYY-MM format"},
		{Field: "check_in", Message: "is required"},
	}

	rec := httptest.NewRecorder()
	HandleError(rec, errs)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var body Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)
	assert.Equal(t, "VALIDATION_ERROR", body.Error.Code)
	assert.Equal(t, "must be in YYYY-MM format", body.Error.Details["month"])
	assert.Equal(t, "is required", body.Error.Details["check_in"])
}
