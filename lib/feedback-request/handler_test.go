package feedbackrequesthandler

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"hiring-feedback-backend/lib/pipeline"
	"hiring-feedback-backend/models"
	dbmodels "hiring-feedback-backend/models/db"
)

type fakeRequestStore struct {
	byToken   map[string]*dbmodels.FeedbackRequest
	byStage   map[models.PipelineStage]*dbmodels.FeedbackRequest
	created   []dbmodels.FeedbackRequest
	refreshed int
	used      map[string]bool
}

func newFakeRequestStore() *fakeRequestStore {
	return &fakeRequestStore{
		byToken: map[string]*dbmodels.FeedbackRequest{},
		byStage: map[models.PipelineStage]*dbmodels.FeedbackRequest{},
		used:    map[string]bool{},
	}
}

func (f *fakeRequestStore) Create(rec dbmodels.FeedbackRequest) (string, error) {
	rec.ID = rec.Token
	f.created = append(f.created, rec)
	f.byToken[rec.Token] = &rec
	f.byStage[rec.Stage] = &rec
	return rec.ID, nil
}

func (f *fakeRequestStore) GetByToken(token string) (*dbmodels.FeedbackRequest, error) {
	return f.byToken[token], nil
}

func (f *fakeRequestStore) GetByApplicationStage(applicationID string, stage models.PipelineStage) (*dbmodels.FeedbackRequest, error) {
	return f.byStage[stage], nil
}

func (f *fakeRequestStore) RefreshToken(id, token string, dateGenerated, dateExpires time.Time) error {
	f.refreshed++
	return nil
}

func (f *fakeRequestStore) MarkUsed(id string) (bool, error) {
	if f.used[id] {
		return false, nil
	}
	f.used[id] = true
	return true, nil
}

type fakeResolver struct {
	resolved *pipeline.ResolvedApplication
	err      error
}

func (f *fakeResolver) Resolve(applicationID string) (*pipeline.ResolvedApplication, error) {
	return f.resolved, f.err
}

type fakeDispatcher struct {
	sent []dbmodels.FeedbackRequest
	err  error
}

func (f *fakeDispatcher) Send(req dbmodels.FeedbackRequest, applicant dbmodels.Applicant, vacancy dbmodels.Vacancy, company dbmodels.Company) error {
	f.sent = append(f.sent, req)
	return f.err
}

func resolvedApp() *pipeline.ResolvedApplication {
	return &pipeline.ResolvedApplication{
		Application: dbmodels.Application{
			BaseModel:   dbmodels.BaseModel{ID: "app-1"},
			ApplicantID: "applicant-1",
			CompanyID:   "company-1",
			VacancyID:   "vacancy-1",
		},
		Applicant: dbmodels.Applicant{FirstName: "Jane", LastName: "Doe", Email: "jane@example.com"},
		Company:   dbmodels.Company{Name: "Acme Co"},
		Vacancy:   dbmodels.Vacancy{JobTitle: "Marketing Assistant"},
	}
}

func TestRequestFeedback(t *testing.T) {
	t.Run(`invalid stage is rejected before anything else`, func(t *testing.T) {
		store := newFakeRequestStore()
		h := impl{store: store, resolver: &fakeResolver{resolved: resolvedApp()}, dispatcher: &fakeDispatcher{}, expireDays: 30}
		err := h.RequestFeedback("app-1", models.PipelineStage("first_call"))
		require.NotNil(t, err)
		require.True(t, errors.Is(err, models.ErrValidation))
		require.Len(t, store.created, 0)
	})

	t.Run(`unresolved application is not found`, func(t *testing.T) {
		h := impl{
			store:      newFakeRequestStore(),
			resolver:   &fakeResolver{err: errors.Wrap(models.ErrNotFound, "отклик не найден")},
			dispatcher: &fakeDispatcher{},
			expireDays: 30,
		}
		err := h.RequestFeedback("missing", models.StageInterview)
		require.True(t, errors.Is(err, models.ErrNotFound))
	})

	t.Run(`request is persisted and dispatched`, func(t *testing.T) {
		store := newFakeRequestStore()
		dispatcher := &fakeDispatcher{}
		h := impl{store: store, resolver: &fakeResolver{resolved: resolvedApp()}, dispatcher: dispatcher, expireDays: 30}
		err := h.RequestFeedback("app-1", models.StageOffer)
		require.Nil(t, err)
		require.Len(t, store.created, 1)
		require.Len(t, dispatcher.sent, 1)
		require.Equal(t, models.StageOffer, store.created[0].Stage)
		require.NotEmpty(t, store.created[0].Token)
	})

	t.Run(`requests per stage are independent`, func(t *testing.T) {
		store := newFakeRequestStore()
		dispatcher := &fakeDispatcher{}
		h := impl{store: store, resolver: &fakeResolver{resolved: resolvedApp()}, dispatcher: dispatcher, expireDays: 30}
		require.Nil(t, h.RequestFeedback("app-1", models.StageChallenge))
		require.Nil(t, h.RequestFeedback("app-1", models.StageInterview))
		require.Len(t, store.created, 2)
		require.NotEqual(t, store.created[0].Token, store.created[1].Token)
	})

	t.Run(`delivery failure keeps the stored request and surfaces the error`, func(t *testing.T) {
		store := newFakeRequestStore()
		dispatcher := &fakeDispatcher{err: errors.Wrap(models.ErrDelivery, "smtp down")}
		h := impl{store: store, resolver: &fakeResolver{resolved: resolvedApp()}, dispatcher: dispatcher, expireDays: 30}
		err := h.RequestFeedback("app-1", models.StageOffer)
		require.True(t, errors.Is(err, models.ErrDelivery))
		require.Len(t, store.created, 1)

		// повторный вызов переотправляет письмо с тем же токеном
		dispatcher.err = nil
		err = h.RequestFeedback("app-1", models.StageOffer)
		require.Nil(t, err)
		require.Len(t, store.created, 1)
		require.Len(t, dispatcher.sent, 2)
		require.Equal(t, dispatcher.sent[0].Token, dispatcher.sent[1].Token)
	})

	t.Run(`stage with consumed request is rejected`, func(t *testing.T) {
		store := newFakeRequestStore()
		used := dbmodels.FeedbackRequest{
			BaseModel: dbmodels.BaseModel{ID: "req-1"},
			Stage:     models.StageOffer,
			DateUsed:  time.Now(),
		}
		store.byStage[models.StageOffer] = &used
		h := impl{store: store, resolver: &fakeResolver{resolved: resolvedApp()}, dispatcher: &fakeDispatcher{}, expireDays: 30}
		err := h.RequestFeedback("app-1", models.StageOffer)
		require.True(t, errors.Is(err, models.ErrValidation))
	})
}

func TestConsume(t *testing.T) {
	t.Run(`token works exactly once`, func(t *testing.T) {
		store := newFakeRequestStore()
		h := impl{store: store, resolver: &fakeResolver{resolved: resolvedApp()}, dispatcher: &fakeDispatcher{}, expireDays: 30}
		require.Nil(t, h.RequestFeedback("app-1", models.StageOffer))
		token := store.created[0].Token

		rec, err := h.Consume(token)
		require.Nil(t, err)
		require.Equal(t, models.StageOffer, rec.Stage)

		_, err = h.Consume(token)
		require.True(t, errors.Is(err, models.ErrInvalidToken))
	})

	t.Run(`unknown token fails closed`, func(t *testing.T) {
		h := impl{store: newFakeRequestStore(), resolver: &fakeResolver{}, dispatcher: &fakeDispatcher{}, expireDays: 30}
		_, err := h.Consume("no-such-token")
		require.True(t, errors.Is(err, models.ErrInvalidToken))
	})

	t.Run(`expired token fails closed`, func(t *testing.T) {
		store := newFakeRequestStore()
		expired := dbmodels.FeedbackRequest{
			BaseModel:   dbmodels.BaseModel{ID: "req-1"},
			Token:       "expired-token",
			Stage:       models.StageOffer,
			DateExpires: time.Now().Add(-time.Hour),
		}
		store.byToken[expired.Token] = &expired
		h := impl{store: store, resolver: &fakeResolver{}, dispatcher: &fakeDispatcher{}, expireDays: 30}
		_, err := h.Consume(expired.Token)
		require.True(t, errors.Is(err, models.ErrInvalidToken))
	})
}

func TestGenerateToken(t *testing.T) {
	t.Run(`tokens are unique and opaque`, func(t *testing.T) {
		seen := map[string]bool{}
		for i := 0; i < 100; i++ {
			token := generateToken()
			require.False(t, seen[token])
			require.NotContains(t, token, "+")
			require.NotContains(t, token, "/")
			require.True(t, len(token) >= 40)
			seen[token] = true
		}
	})
}
