package feedbackhandler

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"hiring-feedback-backend/db"
	feedbackrequesthandler "hiring-feedback-backend/lib/feedback-request"
	feedbackstore "hiring-feedback-backend/lib/feedback/store"
	"hiring-feedback-backend/lib/pipeline"
	ratinghandler "hiring-feedback-backend/lib/rating"
	successstoryhandler "hiring-feedback-backend/lib/success-story"
	feedbackapimodels "hiring-feedback-backend/models/api/feedback"
	dbmodels "hiring-feedback-backend/models/db"
)

type Provider interface {
	Submit(token string, in feedbackapimodels.SubmitRequest) error
	GetFormInfo(token string) (*feedbackapimodels.FormView, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:        feedbackstore.NewInstance(db.DB),
		requests:     feedbackrequesthandler.Instance,
		rating:       ratinghandler.Instance,
		successStory: successstoryhandler.Instance,
		resolver:     pipeline.Instance,
	}
}

type impl struct {
	store        feedbackstore.Provider
	requests     feedbackrequesthandler.Provider
	rating       ratinghandler.Provider
	successStory successstoryhandler.Provider
	resolver     pipeline.Provider
}

// Submit принимает отзыв по одноразовому токену.
// Порядок важен: сначала валидация границ оценок, потом гашение токена,
// и только после этого отзыв попадает в агрегатор
func (i impl) Submit(token string, in feedbackapimodels.SubmitRequest) error {
	if err := in.Validate(); err != nil {
		return err
	}
	req, err := i.requests.Consume(token)
	if err != nil {
		return err
	}
	logger := log.WithField("application_id", req.ApplicationID).
		WithField("stage", req.Stage)
	fb := dbmodels.ApplicantFeedback{
		ApplicationID:       req.ApplicationID,
		CompanyID:           req.CompanyID,
		RequestID:           req.ID,
		Stage:               req.Stage,
		FeedbackQuality:     in.FeedbackQuality,
		CommunicationSpeed:  in.CommunicationSpeed,
		InterviewExperience: in.InterviewExperience,
		ProcessTransparency: in.ProcessTransparency,
		OverallExperience:   in.OverallExperience,
		RecommendToFriend:   in.RecommendToFriend,
		BestAspect:          in.BestAspect,
		WorstAspect:         in.WorstAspect,
		Comments:            in.Comments,
		WouldApplyAgain:     in.WouldApplyAgain,
	}
	id, err := i.store.Create(fb)
	if err != nil {
		logger.WithError(err).Error("ошибка сохранения отзыва")
		return errors.Wrap(err, "ошибка сохранения отзыва")
	}
	fb.ID = id
	if err = i.rating.ApplyFeedback(req.CompanyID, fb); err != nil {
		return err
	}
	if err = i.successStory.Evaluate(req.ApplicationID, fb); err != nil {
		return err
	}
	logger.Info("отзыв кандидата принят")
	return nil
}

// GetFormInfo данные для формы отзыва, токен при этом не гасится
func (i impl) GetFormInfo(token string) (*feedbackapimodels.FormView, error) {
	req, err := i.requests.GetByToken(token)
	if err != nil {
		return nil, err
	}
	resolved, err := i.resolver.Resolve(req.ApplicationID)
	if err != nil {
		return nil, err
	}
	return &feedbackapimodels.FormView{
		ApplicantName: resolved.Applicant.GetFullName(),
		JobTitle:      resolved.Vacancy.JobTitle,
		CompanyName:   resolved.Company.Name,
		Stage:         req.Stage,
		StageName:     req.Stage.ToString(),
	}, nil
}
