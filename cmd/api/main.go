package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/talentbase/hrms-backend-go/internal/config"
	appHTTP "github.com/talentbase/hrms-backend-go/internal/handler/http"
	"github.com/talentbase/hrms-backend-go/internal/pkg/database"
	"github.com/talentbase/hrms-backend-go/internal/pkg/huggingface"
	"github.com/talentbase/hrms-backend-go/internal/pkg/jwt"
	"github.com/talentbase/hrms-backend-go/internal/pkg/oauth"
	"github.com/talentbase/hrms-backend-go/internal/repository/postgresql"
	assistantService "github.com/talentbase/hrms-backend-go/internal/service/assistant"
	attendanceService "github.com/talentbase/hrms-backend-go/internal/service/attendance"
	serviceAuth "github.com/talentbase/hrms-backend-go/internal/service/auth"
	dashboardService "github.com/talentbase/hrms-backend-go/internal/service/dashboard"
	employeeService "github.com/talentbase/hrms-backend-go/internal/service/employee"
	leaveService "github.com/talentbase/hrms-backend-go/internal/service/leave"
	payrollService "github.com/talentbase/hrms-backend-go/internal/service/payroll"
	screeningService "github.com/talentbase/hrms-backend-go/internal/service/screening"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	ctx := context.Background()
	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	jwtRepo := postgresql.NewJWTRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	googleService := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)
	inferenceClient := huggingface.NewClient(cfg.HuggingFace.BaseURL, cfg.HuggingFace.APIKey, cfg.HuggingFace.Timeout)

	authSvc := serviceAuth.NewAuthService(db, userRepo, employeeRepo, jwtService, jwtRepo, googleService)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo)
	leaveSvc := leaveService.NewLeaveService(leaveRequestRepo, employeeRepo, cfg.Leave.StrictTransitions)
	payrollSvc := payrollService.NewPayrollService(payrollRepo, employeeRepo)
	screeningSvc := screeningService.NewScreeningService(inferenceClient)
	assistantSvc := assistantService.NewAssistantService(func() assistantService.QAClient {
		return inferenceClient
	})
	dashboardSvc := dashboardService.NewDashboardService(leaveSvc, employeeSvc, employeeRepo, attendanceRepo)

	handlers := appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(jwtService, authSvc, googleService),
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Leave:      appHTTP.NewLeaveHandler(leaveSvc),
		Payroll:    appHTTP.NewPayrollHandler(payrollSvc),
		Screening:  appHTTP.NewScreeningHandler(screeningSvc),
		Assistant:  appHTTP.NewAssistantHandler(assistantSvc),
		Dashboard:  appHTTP.NewDashboardHandler(dashboardSvc),
	}

	router := appHTTP.NewRouter(jwtService, handlers, cfg.App.AllowedOrigins)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
