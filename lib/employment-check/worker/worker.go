package employmentcheckworker

import (
	"context"
	"fmt"
	"time"

	"hiring-feedback-backend/config"
	"hiring-feedback-backend/db"
	employmentcheckstore "hiring-feedback-backend/lib/employment-check/store"
	"hiring-feedback-backend/lib/pipeline"
	"hiring-feedback-backend/lib/smtp"
	baseworker "hiring-feedback-backend/lib/utils/base-worker"
	dbmodels "hiring-feedback-backend/models/db"
)

const (
	workerName    = "EmploymentCheckWorker"
	firstRunDelay = 30 * time.Second
	batchLimit    = 50

	checkTitle = "Подтверждение трудоустройства"
)

// StartWorker запускает обработку наступивших проверок трудоустройства.
// Ошибки по отдельным задачам не останавливают цикл
func StartWorker(ctx context.Context) {
	w := worker{
		BaseImpl: *baseworker.NewInstance(workerName, firstRunDelay,
			time.Duration(config.Conf.EmploymentCheck.RunIntervalMin)*time.Minute),
		store:     employmentcheckstore.NewInstance(db.DB),
		resolver:  pipeline.Instance,
		sender:    smtp.Instance,
		emailFrom: config.Conf.Smtp.EmailFrom,
	}
	go w.Run(ctx, w.process)
}

type worker struct {
	baseworker.BaseImpl
	store     employmentcheckstore.Provider
	resolver  pipeline.Provider
	sender    smtp.Provider
	emailFrom string
}

func (w worker) process(ctx context.Context) {
	logger := w.GetLogger()
	list, err := w.store.ListDue(time.Now(), batchLimit)
	if err != nil {
		logger.WithError(err).Error("ошибка получения задач проверки трудоустройства")
		return
	}
	for _, task := range list {
		select {
		case <-ctx.Done():
			return
		default:
		}
		w.handleTask(task)
	}
}

func (w worker) handleTask(task dbmodels.EmploymentCheckTask) {
	logger := w.GetLogger().
		WithField("task_id", task.ID).
		WithField("application_id", task.ApplicationID)
	resolved, err := w.resolver.Resolve(task.ApplicationID)
	if err != nil {
		logger.WithError(err).Error("ошибка получения данных отклика")
		w.setStatus(task.ID, dbmodels.CheckTaskFailed)
		return
	}
	msg := fmt.Sprintf("Здравствуйте, %s!\n\n"+
		"Полгода назад вы были наняты в компанию %s на позицию «%s».\n"+
		"Подскажите, пожалуйста, работаете ли вы там до сих пор? Просто ответьте на это письмо.\n",
		resolved.Applicant.GetFullName(), resolved.Company.Name, resolved.Vacancy.JobTitle)
	err = w.sender.SendEMail(w.emailFrom, resolved.Applicant.Email, msg, checkTitle)
	if err != nil {
		logger.WithError(err).Error("ошибка отправки запроса подтверждения трудоустройства")
		w.setStatus(task.ID, dbmodels.CheckTaskFailed)
		return
	}
	w.setStatus(task.ID, dbmodels.CheckTaskSent)
	logger.Info("запрос подтверждения трудоустройства отправлен")
}

func (w worker) setStatus(id string, status dbmodels.CheckTaskStatus) {
	if err := w.store.SetStatus(id, status); err != nil {
		w.GetLogger().WithError(err).
			WithField("task_id", id).
			Error("ошибка обновления статуса задачи")
	}
}
