package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/akachaad/office-pulse-2026/internal/config"
	appHTTP "github.com/akachaad/office-pulse-2026/internal/handler/http"
	"github.com/akachaad/office-pulse-2026/internal/pkg/cron"
	"github.com/akachaad/office-pulse-2026/internal/pkg/database"
	"github.com/akachaad/office-pulse-2026/internal/pkg/jwt"
	"github.com/akachaad/office-pulse-2026/internal/repository/postgresql"
	attendanceService "github.com/akachaad/office-pulse-2026/internal/service/attendance"
	authService "github.com/akachaad/office-pulse-2026/internal/service/auth"
	deskService "github.com/akachaad/office-pulse-2026/internal/service/desk"
	personService "github.com/akachaad/office-pulse-2026/internal/service/person"
	recurrentService "github.com/akachaad/office-pulse-2026/internal/service/recurrent"
	reportService "github.com/akachaad/office-pulse-2026/internal/service/report"
	settingService "github.com/akachaad/office-pulse-2026/internal/service/setting"
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

	personRepo := postgresql.NewPersonRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	patternRepo := postgresql.NewPatternRepository(db)
	settingRepo := postgresql.NewSettingRepository(db)
	deskRepo := postgresql.NewDeskRepository(db)
	txManager := postgresql.NewTxManager(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := authService.NewAuthService(cfg.Admin, jwtService)
	personSvc := personService.NewPersonService(personRepo)
	attendanceSvc := attendanceService.NewAttendanceService(txManager, attendanceRepo, patternRepo, personRepo)
	patternSvc := recurrentService.NewPatternService(patternRepo, personRepo)
	settingSvc := settingService.NewSettingService(settingRepo, cfg.Attendance.CapacityLimitDefault)
	reportSvc := reportService.NewReportService(attendanceRepo, patternRepo, personRepo, reportService.Options{
		CountHomeworkingAsPresent: cfg.Attendance.CountHomeworkingAsPresent,
	})
	deskSvc := deskService.NewReservationService(deskRepo, personRepo)

	scheduler := cron.NewScheduler()
	scheduler.AddJob("policy_warning_report", time.Hour, cron.PolicyWarningJob(reportSvc, settingSvc))
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(jwtService, appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(jwtService, authSvc),
		Person:     appHTTP.NewPersonHandler(personSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Recurrent:  appHTTP.NewRecurrentHandler(patternSvc),
		Report:     appHTTP.NewReportHandler(reportSvc, settingSvc),
		Setting:    appHTTP.NewSettingHandler(settingSvc),
		Desk:       appHTTP.NewDeskHandler(deskSvc),
		Calendar:   appHTTP.NewCalendarHandler(cfg.Attendance.SprintEpoch),
	}, cfg.App)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
