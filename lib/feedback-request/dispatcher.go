package feedbackrequesthandler

import (
	"fmt"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"hiring-feedback-backend/lib/smtp"
	"hiring-feedback-backend/models"
	apimodels "hiring-feedback-backend/models/api"
	dbmodels "hiring-feedback-backend/models/db"
)

// Dispatcher форматирует письмо по этапу и передает внешнему отправителю.
// Других побочных эффектов нет
type Dispatcher interface {
	Send(req dbmodels.FeedbackRequest, applicant dbmodels.Applicant, vacancy dbmodels.Vacancy, company dbmodels.Company) error
}

func NewDispatcher(sender smtp.Provider, emailFrom, linkDomain string) Dispatcher {
	return dispatcherImpl{
		sender:     sender,
		emailFrom:  emailFrom,
		linkDomain: linkDomain,
	}
}

type dispatcherImpl struct {
	sender     smtp.Provider
	emailFrom  string
	linkDomain string
}

func (d dispatcherImpl) Send(req dbmodels.FeedbackRequest, applicant dbmodels.Applicant, vacancy dbmodels.Vacancy, company dbmodels.Company) error {
	if err := apimodels.ValidateEmail(applicant.Email); err != nil {
		return err
	}
	msg, err := buildStageMessage(req.Stage, feedbackMsgData{
		ApplicantName: applicant.GetFullName(),
		JobTitle:      vacancy.JobTitle,
		CompanyName:   company.Name,
		FeedbackUrl:   d.FeedbackURL(req.Token),
	})
	if err != nil {
		return err
	}
	err = d.sender.SendEMail(d.emailFrom, applicant.Email, msg, feedbackRequestTitle)
	if err != nil {
		log.WithError(err).
			WithField("application_id", req.ApplicationID).
			WithField("stage", req.Stage).
			Error("ошибка отправки запроса отзыва")
		return errors.Wrap(models.ErrDelivery, err.Error())
	}
	return nil
}

func (d dispatcherImpl) FeedbackURL(token string) string {
	return fmt.Sprintf("%s/feedback/%s", d.linkDomain, token)
}
