package feedbackrequesthandler

import (
	"crypto/rand"
	"encoding/base64"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"hiring-feedback-backend/config"
	"hiring-feedback-backend/db"
	feedbackrequeststore "hiring-feedback-backend/lib/feedback-request/store"
	"hiring-feedback-backend/lib/pipeline"
	"hiring-feedback-backend/lib/smtp"
	"hiring-feedback-backend/models"
	dbmodels "hiring-feedback-backend/models/db"
)

const tokenBytes = 32

type Provider interface {
	RequestFeedback(applicationID string, stage models.PipelineStage) error
	Consume(token string) (*dbmodels.FeedbackRequest, error)
	GetByToken(token string) (*dbmodels.FeedbackRequest, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:      feedbackrequeststore.NewInstance(db.DB),
		resolver:   pipeline.Instance,
		dispatcher: NewDispatcher(smtp.Instance, config.Conf.Smtp.EmailFrom, config.Conf.Smtp.DomainForFeedbackLink),
		expireDays: config.Conf.Feedback.RequestExpireDays,
	}
}

type impl struct {
	store      feedbackrequeststore.Provider
	resolver   pipeline.Provider
	dispatcher Dispatcher
	expireDays int
}

// RequestFeedback создает (или переиспользует) запрос отзыва по этапу и отправляет письмо.
// Запись сохраняется до отправки: при ошибке доставки она остается и отправку можно повторить
func (i impl) RequestFeedback(applicationID string, stage models.PipelineStage) error {
	logger := log.WithField("application_id", applicationID).
		WithField("stage", stage)
	if err := stage.Validate(); err != nil {
		return err
	}
	resolved, err := i.resolver.Resolve(applicationID)
	if err != nil {
		return err
	}
	rec, err := i.store.GetByApplicationStage(applicationID, stage)
	if err != nil {
		logger.WithError(err).Error("ошибка получения запроса отзыва")
		return errors.Wrap(err, "ошибка получения запроса отзыва")
	}
	switch {
	case rec == nil:
		newRec := dbmodels.FeedbackRequest{
			ApplicationID: applicationID,
			CompanyID:     resolved.Application.CompanyID,
			VacancyID:     resolved.Application.VacancyID,
			Stage:         stage,
			Token:         generateToken(),
			DateGenerated: time.Now(),
			DateExpires:   time.Now().AddDate(0, 0, i.expireDays),
		}
		id, err := i.store.Create(newRec)
		if err != nil {
			logger.WithError(err).Error("ошибка сохранения запроса отзыва")
			return errors.Wrap(err, "ошибка сохранения запроса отзыва")
		}
		newRec.ID = id
		rec = &newRec
	case rec.IsUsed():
		return errors.Wrap(models.ErrValidation, "отзыв по этому этапу уже получен")
	case rec.IsExpired():
		// просроченный запрос оживляем свежим токеном, старый перестает действовать
		rec.Token = generateToken()
		rec.DateGenerated = time.Now()
		rec.DateExpires = time.Now().AddDate(0, 0, i.expireDays)
		err = i.store.RefreshToken(rec.ID, rec.Token, rec.DateGenerated, rec.DateExpires)
		if err != nil {
			logger.WithError(err).Error("ошибка обновления токена запроса отзыва")
			return errors.Wrap(err, "ошибка обновления токена запроса отзыва")
		}
	}
	return i.dispatcher.Send(*rec, resolved.Applicant, resolved.Vacancy, resolved.Company)
}

// Consume гасит токен строго один раз, повторная или чужая попытка
// завершается ErrInvalidToken без каких-либо изменений
func (i impl) Consume(token string) (*dbmodels.FeedbackRequest, error) {
	rec, err := i.store.GetByToken(token)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения запроса отзыва по токену")
	}
	if rec == nil {
		return nil, errors.Wrap(models.ErrInvalidToken, "токен не найден")
	}
	if rec.IsExpired() {
		return nil, errors.Wrap(models.ErrInvalidToken, "срок действия токена истек")
	}
	updated, err := i.store.MarkUsed(rec.ID)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка применения токена")
	}
	if !updated {
		return nil, errors.Wrap(models.ErrInvalidToken, "токен уже использован")
	}
	return rec, nil
}

func (i impl) GetByToken(token string) (*dbmodels.FeedbackRequest, error) {
	rec, err := i.store.GetByToken(token)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения запроса отзыва по токену")
	}
	if rec == nil || rec.IsUsed() || rec.IsExpired() {
		return nil, errors.Wrap(models.ErrInvalidToken, "токен не найден, просрочен или уже использован")
	}
	return rec, nil
}

// токен случайный и непрозрачный, идентификаторы из него не восстановить
func generateToken() string {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		panic(err)
	}
	return base64.RawURLEncoding.EncodeToString(buf)
}
