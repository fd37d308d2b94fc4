package main

import (
	"fmt"
	"net/http"

	"github.com/pertashop/backoffice-go/internal/config"
	appHTTP "github.com/pertashop/backoffice-go/internal/handler/http"
	"github.com/pertashop/backoffice-go/internal/pkg/database"
	"github.com/pertashop/backoffice-go/internal/pkg/jwt"
	"github.com/pertashop/backoffice-go/internal/repository/postgresql"
	attendanceService "github.com/pertashop/backoffice-go/internal/service/attendance"
	authService "github.com/pertashop/backoffice-go/internal/service/auth"
	depositService "github.com/pertashop/backoffice-go/internal/service/deposit"
	overtimeService "github.com/pertashop/backoffice-go/internal/service/overtime"
	payrollService "github.com/pertashop/backoffice-go/internal/service/payroll"
	receivableService "github.com/pertashop/backoffice-go/internal/service/receivable"
	staffService "github.com/pertashop/backoffice-go/internal/service/staff"
	storeService "github.com/pertashop/backoffice-go/internal/service/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	staffRepo := postgresql.NewStaffRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	overtimeRepo := postgresql.NewOvertimeRequestRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	depositRepo := postgresql.NewDepositRepository(db)
	customerRepo := postgresql.NewCustomerRepository(db)
	receivableRepo := postgresql.NewReceivableRepository(db)
	storeRepo := postgresql.NewStoreRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := authService.NewAuthService(userRepo, jwtService)
	staffSvc := staffService.NewStaffService(staffRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, staffRepo)
	overtimeSvc := overtimeService.NewOvertimeService(overtimeRepo, staffRepo)
	payrollSvc := payrollService.NewPayrollService(payrollRepo, staffRepo, attendanceRepo)
	depositSvc := depositService.NewDepositService(depositRepo, cfg.Deposit.PricePerLiter)
	receivableSvc := receivableService.NewReceivableService(db, receivableRepo, customerRepo)
	storeSvc := storeService.NewStoreService(db, storeRepo)

	handlers := appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(jwtService, authSvc),
		Staff:      appHTTP.NewStaffHandler(staffSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Overtime:   appHTTP.NewOvertimeHandler(overtimeSvc),
		Payroll:    appHTTP.NewPayrollHandler(payrollSvc),
		Deposit:    appHTTP.NewDepositHandler(depositSvc),
		Receivable: appHTTP.NewReceivableHandler(receivableSvc),
		Store:      appHTTP.NewStoreHandler(storeSvc),
	}

	router := appHTTP.NewRouter(cfg, jwtService, handlers)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
