package outcomehandler

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"hiring-feedback-backend/lib/pipeline"
	"hiring-feedback-backend/models"
	outcomeapimodels "hiring-feedback-backend/models/api/outcome"
	dbmodels "hiring-feedback-backend/models/db"
)

type fakeOutcomeStore struct {
	existing *dbmodels.ApplicationOutcome
	created  []dbmodels.ApplicationOutcome
}

func (f *fakeOutcomeStore) Create(rec dbmodels.ApplicationOutcome) (string, error) {
	f.created = append(f.created, rec)
	return "outcome-1", nil
}

func (f *fakeOutcomeStore) GetByApplicationID(applicationID string) (*dbmodels.ApplicationOutcome, error) {
	return f.existing, nil
}

type fakeResolver struct {
	err error
}

func (f *fakeResolver) Resolve(applicationID string) (*pipeline.ResolvedApplication, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &pipeline.ResolvedApplication{
		Application: dbmodels.Application{BaseModel: dbmodels.BaseModel{ID: applicationID}},
	}, nil
}

type fakeFeedbackRequests struct {
	requested []models.PipelineStage
	err       error
}

func (f *fakeFeedbackRequests) RequestFeedback(applicationID string, stage models.PipelineStage) error {
	f.requested = append(f.requested, stage)
	return f.err
}

func (f *fakeFeedbackRequests) Consume(token string) (*dbmodels.FeedbackRequest, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeFeedbackRequests) GetByToken(token string) (*dbmodels.FeedbackRequest, error) {
	return nil, errors.New("not implemented")
}

type fakeEmploymentCheck struct {
	enqueued []time.Time
	err      error
}

func (f *fakeEmploymentCheck) Enqueue(applicationID string, dueAt time.Time) error {
	f.enqueued = append(f.enqueued, dueAt)
	return f.err
}

func validRequest() outcomeapimodels.RecordOutcomeRequest {
	return outcomeapimodels.RecordOutcomeRequest{
		ApplicationID: "app-1",
		Result:        models.OutcomeRejected,
		Stage:         models.StageInterview,
		OccurredAt:    time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC),
	}
}

func newTestHandler(store *fakeOutcomeStore, requests *fakeFeedbackRequests, checks *fakeEmploymentCheck) impl {
	return impl{
		store:           store,
		resolver:        &fakeResolver{},
		feedbackRequest: requests,
		employmentCheck: checks,
	}
}

func TestRecord(t *testing.T) {
	t.Run(`unknown result is rejected`, func(t *testing.T) {
		store := &fakeOutcomeStore{}
		h := newTestHandler(store, &fakeFeedbackRequests{}, &fakeEmploymentCheck{})
		data := validRequest()
		data.Result = models.OutcomeResult("ghosted")
		_, err := h.Record(data)
		require.True(t, errors.Is(err, models.ErrValidation))
		require.Len(t, store.created, 0)
	})

	t.Run(`unknown application is not found`, func(t *testing.T) {
		store := &fakeOutcomeStore{}
		h := newTestHandler(store, &fakeFeedbackRequests{}, &fakeEmploymentCheck{})
		h.resolver = &fakeResolver{err: errors.Wrap(models.ErrNotFound, "отклик не найден")}
		_, err := h.Record(validRequest())
		require.True(t, errors.Is(err, models.ErrNotFound))
		require.Len(t, store.created, 0)
	})

	t.Run(`outcome is recorded once and only once`, func(t *testing.T) {
		store := &fakeOutcomeStore{existing: &dbmodels.ApplicationOutcome{ApplicationID: "app-1"}}
		h := newTestHandler(store, &fakeFeedbackRequests{}, &fakeEmploymentCheck{})
		_, err := h.Record(validRequest())
		require.True(t, errors.Is(err, models.ErrValidation))
		require.Len(t, store.created, 0)
	})

	t.Run(`record triggers a stage feedback request`, func(t *testing.T) {
		store := &fakeOutcomeStore{}
		requests := &fakeFeedbackRequests{}
		h := newTestHandler(store, requests, &fakeEmploymentCheck{})
		id, err := h.Record(validRequest())
		require.Nil(t, err)
		require.Equal(t, "outcome-1", id)
		require.Len(t, store.created, 1)
		require.Equal(t, []models.PipelineStage{models.StageInterview}, requests.requested)
	})

	t.Run(`failed delivery does not roll back the outcome`, func(t *testing.T) {
		store := &fakeOutcomeStore{}
		requests := &fakeFeedbackRequests{err: errors.Wrap(models.ErrDelivery, "smtp down")}
		h := newTestHandler(store, requests, &fakeEmploymentCheck{})
		id, err := h.Record(validRequest())
		require.Nil(t, err)
		require.Equal(t, "outcome-1", id)
		require.Len(t, store.created, 1)
	})

	t.Run(`accepted hire schedules a check six months later`, func(t *testing.T) {
		store := &fakeOutcomeStore{}
		checks := &fakeEmploymentCheck{}
		h := newTestHandler(store, &fakeFeedbackRequests{}, checks)
		data := validRequest()
		data.Result = models.OutcomeHired
		data.Stage = models.StageOffer
		data.JobAccepted = true
		_, err := h.Record(data)
		require.Nil(t, err)
		require.Len(t, checks.enqueued, 1)
		require.Equal(t, data.OccurredAt.AddDate(0, 6, 0), checks.enqueued[0])
	})

	t.Run(`declined offer schedules no check`, func(t *testing.T) {
		checks := &fakeEmploymentCheck{}
		h := newTestHandler(&fakeOutcomeStore{}, &fakeFeedbackRequests{}, checks)
		data := validRequest()
		data.Result = models.OutcomeHired
		data.Stage = models.StageOffer
		data.JobAccepted = false
		_, err := h.Record(data)
		require.Nil(t, err)
		require.Len(t, checks.enqueued, 0)
	})

	t.Run(`queue failure does not fail the record`, func(t *testing.T) {
		store := &fakeOutcomeStore{}
		checks := &fakeEmploymentCheck{err: errors.New("db down")}
		h := newTestHandler(store, &fakeFeedbackRequests{}, checks)
		data := validRequest()
		data.Result = models.OutcomeHired
		data.Stage = models.StageOffer
		data.JobAccepted = true
		_, err := h.Record(data)
		require.Nil(t, err)
		require.Len(t, store.created, 1)
	})
}
