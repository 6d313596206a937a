package initializers

import (
	"context"

	"hiring-feedback-backend/config"
	"hiring-feedback-backend/fiberlog"
	employmentcheck "hiring-feedback-backend/lib/employment-check"
	employmentcheckworker "hiring-feedback-backend/lib/employment-check/worker"
	xlsexport "hiring-feedback-backend/lib/export/xls"
	feedbackhandler "hiring-feedback-backend/lib/feedback"
	feedbackrequesthandler "hiring-feedback-backend/lib/feedback-request"
	outcomehandler "hiring-feedback-backend/lib/outcome"
	"hiring-feedback-backend/lib/pipeline"
	ratinghandler "hiring-feedback-backend/lib/rating"
	successstoryhandler "hiring-feedback-backend/lib/success-story"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitSmtp()
	pipeline.NewHandler()
	feedbackrequesthandler.NewHandler()
	ratinghandler.NewHandler()
	successstoryhandler.NewHandler()
	feedbackhandler.NewHandler()
	employmentcheck.NewHandler()
	outcomehandler.NewHandler()
	xlsexport.NewHandler()
	go initWorkers(ctx)
}

func initWorkers(ctx context.Context) {
	// Задача отправки запросов подтверждения трудоустройства (6 месяцев после найма)
	employmentcheckworker.StartWorker(ctx)
}
