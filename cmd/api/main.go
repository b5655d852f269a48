package main

import (
	"fmt"
	"net/http"

	"github.com/wagetrack/labour-backend-go/internal/config"
	appHTTP "github.com/wagetrack/labour-backend-go/internal/handler/http"
	"github.com/wagetrack/labour-backend-go/internal/pkg/database"
	"github.com/wagetrack/labour-backend-go/internal/pkg/jwt"
	"github.com/wagetrack/labour-backend-go/internal/repository/postgresql"
	attendanceService "github.com/wagetrack/labour-backend-go/internal/service/attendance"
	authService "github.com/wagetrack/labour-backend-go/internal/service/auth"
	labourService "github.com/wagetrack/labour-backend-go/internal/service/labour"
	masterService "github.com/wagetrack/labour-backend-go/internal/service/master"
	reportService "github.com/wagetrack/labour-backend-go/internal/service/report"
	settingService "github.com/wagetrack/labour-backend-go/internal/service/setting"
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
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	clientRepo := postgresql.NewClientRepository(db)
	siteRepo := postgresql.NewSiteRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	settingRepo := postgresql.NewSettingRepository(db)
	incentiveRepo := postgresql.NewIncentiveRepository(db)
	reportRepo := postgresql.NewReportRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	authSvc := authService.NewAuthService(userRepo, jwtService)
	attendanceSvc := attendanceService.NewAttendanceService(
		db,
		attendanceRepo,
		userRepo,
		clientRepo,
		siteRepo,
		holidayRepo,
		settingRepo,
	)
	userSvc := labourService.NewUserService(userRepo)
	masterSvc := masterService.NewMasterService(clientRepo, siteRepo, holidayRepo, incentiveRepo)
	settingSvc := settingService.NewSettingService(settingRepo)
	reportSvc := reportService.NewReportService(reportRepo, attendanceRepo, incentiveRepo)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	userHandler := appHTTP.NewUserHandler(userSvc)
	masterHandler := appHTTP.NewMasterHandler(masterSvc)
	settingHandler := appHTTP.NewSettingHandler(settingSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	router := appHTTP.NewRouter(
		cfg,
		jwtService,
		authHandler,
		attendanceHandler,
		userHandler,
		masterHandler,
		settingHandler,
		reportHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
