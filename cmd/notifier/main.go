package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/DSI-OMS-RPA/email-notifier/internal/conf"
	"github.com/DSI-OMS-RPA/email-notifier/internal/email/handler"
	"github.com/DSI-OMS-RPA/email-notifier/internal/email/service"
	"github.com/DSI-OMS-RPA/email-notifier/internal/email/types"
	"github.com/DSI-OMS-RPA/email-notifier/internal/pkg/logger"
	"github.com/DSI-OMS-RPA/email-notifier/internal/server"
)

var (
	configFile = flag.String("config", "config.yaml", "config file path")
	serve      = flag.Bool("serve", false, "run the HTTP notification API instead of sending a sample report")
)

func main() {
	flag.Parse()

	// Load configuration
	config, err := conf.LoadConfig(*configFile)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Initialize logger with config
	logConfig := &logger.Config{
		Level:            config.Log.Level,
		Format:           config.Log.Format,
		Output:           config.Log.Output,
		EnableCaller:     config.Log.EnableCaller,
		EnableStacktrace: config.Log.EnableStacktrace,
		File: logger.FileConfig{
			Filename:   config.Log.File.Filename,
			MaxSize:    config.Log.File.MaxSize,
			MaxAge:     config.Log.File.MaxAge,
			MaxBackups: config.Log.File.MaxBackups,
			Compress:   config.Log.File.Compress,
		},
	}
	if logConfig.Level == "" {
		logConfig = logger.DefaultConfig()
	}

	log, err := logger.New(logConfig)
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer log.Sync()

	svc := service.NewService(&config.SMTP, log)

	if *serve {
		runServer(config, log, svc)
		return
	}

	sendSampleReport(config, log, svc)
}

func runServer(config *conf.Config, log *logger.Logger, svc *service.Service) {
	httpServer := server.NewHTTPServer(config, log.Logger, handler.NewNotifyHandler(svc))

	go func() {
		if err := httpServer.Start(); err != nil {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Stop(ctx); err != nil {
		log.Error("failed to stop HTTP server", zap.Error(err))
	}
}

// sendSampleReport sends a plain test mail and a full ETL completion
// report, exercising the whole pipeline against the configured server.
func sendSampleReport(config *conf.Config, log *logger.Logger, svc *service.Service) {
	ctx := logger.WithJobName(context.Background(), "sample-report")

	ok := svc.Send(ctx, &types.Email{
		To:      config.Report.To,
		Cc:      config.Report.Cc,
		From:    config.Report.FromMail,
		Subject: "Test Email",
		Body:    "<p>This is a test email.</p>",
		IsHTML:  true,
	})
	log.Info("plain send finished", zap.Bool("ok", ok))

	report := &types.ReportConfig{
		FromMail: config.Report.FromMail,
		To:       config.Report.To,
		Cc:       config.Report.Cc,
		Subject:  "ETL Process Complete",
	}

	alert := &types.Alert{
		Type:    types.AlertSuccess,
		Title:   "ETL Process Complete",
		Message: "All ETL processes completed successfully.",
		Columns: []string{"Process", "Status", "Records", "Duration"},
		TableData: []types.TableRow{
			{"Process": "ETL-001", "Status": "Completed", "Records": 1500, "Duration": "00:05:23"},
			{"Process": "ETL-002", "Status": "Completed", "Records": 2300, "Duration": "00:07:45"},
		},
		SummaryData: []types.SummaryRow{
			{Label: "Total Processes", Value: "2"},
			{Label: "Total Records", Value: "3,800"},
			{Label: "Success Rate", Value: "100%"},
		},
		TableSummary:   []string{"Total", "", "3,800", "00:13:08"},
		TotalRecords:   2,
		ShowPagination: true,
		FileStatus:     map[string]string{"data1.csv": "Processed", "data2.csv": "Completed"},
		ActionButton:   &types.ActionButton{URL: "https://your-dashboard.com", Text: "View Details"},
		Environment:    "production",
		Timestamp:      time.Now().Format("2006-01-02 15:04:05"),
	}

	ok = svc.SendAlert(ctx, report, alert)
	log.Info("templated send finished", zap.Bool("ok", ok))
}
