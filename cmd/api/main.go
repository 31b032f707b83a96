package main

import (
	"fmt"
	"net/http"

	"github.com/emsuite/ems-backend-go/internal/config"
	appHTTP "github.com/emsuite/ems-backend-go/internal/handler/http"
	"github.com/emsuite/ems-backend-go/internal/pkg/database"
	"github.com/emsuite/ems-backend-go/internal/pkg/jwt"
	"github.com/emsuite/ems-backend-go/internal/repository/postgresql"
	attendanceService "github.com/emsuite/ems-backend-go/internal/service/attendance"
	payrollService "github.com/emsuite/ems-backend-go/internal/service/payroll"
	salaryService "github.com/emsuite/ems-backend-go/internal/service/salary"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	taxSlabRepo := postgresql.NewTaxSlabRepository(db)
	salaryRepo := postgresql.NewSalaryRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	attendanceSvc := attendanceService.NewAttendanceService(db, attendanceRepo, employeeRepo)
	salarySvc := salaryService.NewSalaryService(db, salaryRepo, taxSlabRepo, attendanceRepo, employeeRepo)
	payrollSvc := payrollService.NewPayrollService(db, payrollRepo, salaryRepo)

	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	salaryHandler := appHTTP.NewSalaryHandler(salarySvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeRepo)

	router := appHTTP.NewRouter(
		JWTService,
		attendanceHandler,
		salaryHandler,
		payrollHandler,
		employeeHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
