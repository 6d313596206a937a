package ratinghandler

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	dbmodels "hiring-feedback-backend/models/db"
)

func TestApplyIncrement(t *testing.T) {
	t.Run(`incremental mean matches arithmetic mean`, func(t *testing.T) {
		ratings := []int{5, 3, 4, 1, 2, 5, 5, 4, 3, 2, 1, 4}
		snapshot := dbmodels.RatingSnapshot{}
		sum := 0
		for _, r := range ratings {
			snapshot = applyIncrement(snapshot, dbmodels.ApplicantFeedback{
				FeedbackQuality:     r,
				CommunicationSpeed:  r,
				InterviewExperience: r,
				ProcessTransparency: r,
			})
			sum += r
		}
		expected := float64(sum) / float64(len(ratings))
		require.Equal(t, int64(len(ratings)), snapshot.ReviewCount)
		require.InDelta(t, expected, snapshot.FeedbackQuality, 1e-9)
		require.InDelta(t, expected, snapshot.CommunicationSpeed, 1e-9)
		require.InDelta(t, expected, snapshot.InterviewExperience, 1e-9)
		require.InDelta(t, expected, snapshot.ProcessTransparency, 1e-9)
	})

	t.Run(`order of submissions does not change the aggregate`, func(t *testing.T) {
		ratings := []int{1, 5, 2, 4, 3, 5, 1, 2}
		first := dbmodels.RatingSnapshot{}
		for _, r := range ratings {
			first = applyIncrement(first, dbmodels.ApplicantFeedback{FeedbackQuality: r})
		}
		shuffled := make([]int, len(ratings))
		copy(shuffled, ratings)
		rand.New(rand.NewSource(42)).Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})
		second := dbmodels.RatingSnapshot{}
		for _, r := range shuffled {
			second = applyIncrement(second, dbmodels.ApplicantFeedback{FeedbackQuality: r})
		}
		require.InDelta(t, first.FeedbackQuality, second.FeedbackQuality, 1e-9)
		require.Equal(t, first.ReviewCount, second.ReviewCount)
	})

	t.Run(`every review keeps equal weight regardless of age`, func(t *testing.T) {
		before := dbmodels.RatingSnapshot{
			FeedbackQuality: 3.8,
			ReviewCount:     10,
		}
		after := applyIncrement(before, dbmodels.ApplicantFeedback{FeedbackQuality: 4})
		require.Equal(t, int64(11), after.ReviewCount)
		require.InDelta(t, (3.8*10+4)/11, after.FeedbackQuality, 1e-9)
		require.InDelta(t, 3.8363636, after.FeedbackQuality, 1e-6)
	})

	t.Run(`snapshot before stays untouched`, func(t *testing.T) {
		before := dbmodels.RatingSnapshot{FeedbackQuality: 2, ReviewCount: 1}
		_ = applyIncrement(before, dbmodels.ApplicantFeedback{FeedbackQuality: 5})
		require.InDelta(t, 2.0, before.FeedbackQuality, 1e-9)
		require.Equal(t, int64(1), before.ReviewCount)
	})
}
