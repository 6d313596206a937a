package models

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestPipelineStageValidate(t *testing.T) {
	for _, stage := range []PipelineStage{StageApplicationReview, StageChallenge, StageInterview, StageOffer} {
		require.Nil(t, stage.Validate())
	}
	err := PipelineStage("probation").Validate()
	require.True(t, errors.Is(err, ErrValidation))
	require.True(t, errors.Is(PipelineStage("").Validate(), ErrValidation))
}

func TestOutcomeResultValidate(t *testing.T) {
	for _, result := range []OutcomeResult{OutcomeHired, OutcomeRejected, OutcomeWithdrawn, OutcomeOfferDeclined} {
		require.Nil(t, result.Validate())
	}
	require.True(t, errors.Is(OutcomeResult("ghosted").Validate(), ErrValidation))
}
