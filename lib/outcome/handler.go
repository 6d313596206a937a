package outcomehandler

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"hiring-feedback-backend/db"
	employmentcheck "hiring-feedback-backend/lib/employment-check"
	feedbackrequesthandler "hiring-feedback-backend/lib/feedback-request"
	outcomestore "hiring-feedback-backend/lib/outcome/store"
	"hiring-feedback-backend/lib/pipeline"
	"hiring-feedback-backend/models"
	outcomeapimodels "hiring-feedback-backend/models/api/outcome"
	dbmodels "hiring-feedback-backend/models/db"
)

// через сколько после найма проверяем трудоустройство
const employmentCheckAfterMonths = 6

type Provider interface {
	Record(data outcomeapimodels.RecordOutcomeRequest) (id string, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:           outcomestore.NewInstance(db.DB),
		resolver:        pipeline.Instance,
		feedbackRequest: feedbackrequesthandler.Instance,
		employmentCheck: employmentcheck.Instance,
	}
}

type impl struct {
	store           outcomestore.Provider
	resolver        pipeline.Provider
	feedbackRequest feedbackrequesthandler.Provider
	employmentCheck employmentcheck.Provider
}

// Record фиксирует терминальный результат по отклику и запускает запрос отзыва.
// Результат - источник истины: после сохранения он не откатывается,
// даже если письмо с запросом отзыва отправить не удалось
func (i impl) Record(data outcomeapimodels.RecordOutcomeRequest) (id string, err error) {
	logger := log.WithField("application_id", data.ApplicationID).
		WithField("result", data.Result).
		WithField("stage", data.Stage)
	if err = data.Validate(); err != nil {
		return "", err
	}
	if _, err = i.resolver.Resolve(data.ApplicationID); err != nil {
		return "", err
	}
	existing, err := i.store.GetByApplicationID(data.ApplicationID)
	if err != nil {
		logger.WithError(err).Error("ошибка проверки результата подбора")
		return "", errors.Wrap(err, "ошибка проверки результата подбора")
	}
	if existing != nil {
		// таблица append-only, повторная фиксация - ошибка вызывающей стороны
		return "", errors.Wrap(models.ErrValidation, "результат по отклику уже зафиксирован")
	}
	rec := dbmodels.ApplicationOutcome{
		ApplicationID:  data.ApplicationID,
		Result:         data.Result,
		Stage:          data.Stage,
		OccurredAt:     data.OccurredAt,
		JobAccepted:    data.JobAccepted,
		StartDate:      data.StartDate,
		Salary:         data.Salary,
		EmploymentType: data.EmploymentType,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		logger.WithError(err).Error("ошибка сохранения результата подбора")
		return "", errors.Wrap(err, "ошибка сохранения результата подбора")
	}
	logger.Info("результат подбора зафиксирован")

	err = i.feedbackRequest.RequestFeedback(data.ApplicationID, data.Stage)
	if err != nil {
		// запрос отзыва не должен блокировать фиксацию результата
		logger.WithError(err).Warn("не удалось запросить отзыв по этапу")
	}

	if data.Result == models.OutcomeHired && data.JobAccepted {
		dueAt := data.OccurredAt.AddDate(0, employmentCheckAfterMonths, 0)
		if err := i.employmentCheck.Enqueue(data.ApplicationID, dueAt); err != nil {
			// постановка проверки best-effort, фиксацию результата не роняем
			logger.WithError(err).Error("не удалось поставить проверку трудоустройства в очередь")
		}
	}
	return id, nil
}
