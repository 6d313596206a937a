package feedbackrequesthandler

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"hiring-feedback-backend/models"
	dbmodels "hiring-feedback-backend/models/db"
)

type fakeSender struct {
	from    string
	to      string
	message string
	subject string
	calls   int
	err     error
}

func (f *fakeSender) SendEMail(from, to, message, subject string) error {
	f.from = from
	f.to = to
	f.message = message
	f.subject = subject
	f.calls++
	return f.err
}

func TestDispatcherSend(t *testing.T) {
	req := dbmodels.FeedbackRequest{
		ApplicationID: "app-1",
		Stage:         models.StageInterview,
		Token:         "abc123token",
	}
	applicant := dbmodels.Applicant{FirstName: "Jane", LastName: "Doe", Email: "jane@example.com"}
	vacancy := dbmodels.Vacancy{JobTitle: "Marketing Assistant"}
	company := dbmodels.Company{Name: "Acme Co"}

	t.Run(`message carries vacancy, company and link with token`, func(t *testing.T) {
		sender := &fakeSender{}
		d := NewDispatcher(sender, "noreply@hr.example.com", "https://hr.example.com")
		err := d.Send(req, applicant, vacancy, company)
		require.Nil(t, err)
		require.Equal(t, 1, sender.calls)
		require.Equal(t, "noreply@hr.example.com", sender.from)
		require.Equal(t, "jane@example.com", sender.to)
		require.Equal(t, feedbackRequestTitle, sender.subject)
		require.Contains(t, sender.message, "Marketing Assistant")
		require.Contains(t, sender.message, "Acme Co")
		require.Contains(t, sender.message, "https://hr.example.com/feedback/abc123token")
	})

	t.Run(`invalid email is rejected without a send attempt`, func(t *testing.T) {
		sender := &fakeSender{}
		d := NewDispatcher(sender, "noreply@hr.example.com", "https://hr.example.com")
		bad := applicant
		bad.Email = "not-an-email"
		err := d.Send(req, bad, vacancy, company)
		require.True(t, errors.Is(err, models.ErrValidation))
		require.Equal(t, 0, sender.calls)
	})

	t.Run(`sender failure maps to delivery error`, func(t *testing.T) {
		sender := &fakeSender{err: errors.New("connection refused")}
		d := NewDispatcher(sender, "noreply@hr.example.com", "https://hr.example.com")
		err := d.Send(req, applicant, vacancy, company)
		require.True(t, errors.Is(err, models.ErrDelivery))
	})
}

func TestBuildStageMessage(t *testing.T) {
	data := feedbackMsgData{
		ApplicantName: "Jane Doe",
		JobTitle:      "Marketing Assistant",
		CompanyName:   "Acme Co",
		FeedbackUrl:   "https://hr.example.com/feedback/tok",
	}

	t.Run(`every stage has its own wording`, func(t *testing.T) {
		stages := []models.PipelineStage{
			models.StageApplicationReview,
			models.StageChallenge,
			models.StageInterview,
			models.StageOffer,
		}
		seen := map[string]bool{}
		for _, stage := range stages {
			msg, err := buildStageMessage(stage, data)
			require.Nil(t, err)
			require.Contains(t, msg, data.ApplicantName)
			require.Contains(t, msg, data.JobTitle)
			require.Contains(t, msg, data.CompanyName)
			require.Contains(t, msg, data.FeedbackUrl)
			require.False(t, strings.Contains(msg, "{{"))
			require.False(t, seen[msg])
			seen[msg] = true
		}
	})

	t.Run(`unknown stage has no template`, func(t *testing.T) {
		_, err := buildStageMessage(models.PipelineStage("probation"), data)
		require.True(t, errors.Is(err, models.ErrValidation))
	})
}
