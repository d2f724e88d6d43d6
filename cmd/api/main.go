package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/centrahq/hr-backend-go/internal/config"
	appHTTP "github.com/centrahq/hr-backend-go/internal/handler/http"
	"github.com/centrahq/hr-backend-go/internal/pkg/database"
	"github.com/centrahq/hr-backend-go/internal/pkg/jwt"
	"github.com/centrahq/hr-backend-go/internal/repository/postgresql"
	payrollService "github.com/centrahq/hr-backend-go/internal/service/payroll"
	"github.com/go-chi/httplog/v3"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "centra-hr"),
		slog.String("env", cfg.App.Env),
	)

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	organizationRepo := postgresql.NewOrganizationRepository(db)
	payrollRunRepo := postgresql.NewPayrollRunRepository(db)
	auditRepo := postgresql.NewAuditRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret)
	calculator := payrollService.NewCalculator()
	payrollSvc := payrollService.NewPayrollService(
		logger,
		calculator,
		payrollRunRepo,
		employeeRepo,
		organizationRepo,
		auditRepo,
	)

	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	auditHandler := appHTTP.NewAuditHandler(auditRepo)

	router := appHTTP.NewRouter(
		logger,
		JWTService,
		cfg.App.FrontendURL,
		payrollHandler,
		auditHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
