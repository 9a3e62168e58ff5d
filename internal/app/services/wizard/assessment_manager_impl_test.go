package wizard

import (
	"context"
	"errors"
	"healthpredict-client/internal/app/contracts"
	"healthpredict-client/internal/app/models"
	"healthpredict-client/internal/pkg/constvars"
	"healthpredict-client/internal/pkg/dto/requests"
	"healthpredict-client/internal/pkg/dto/responses"
	"healthpredict-client/internal/pkg/exceptions"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeGateway struct {
	contracts.Gateway

	createRecordFn     func(ctx context.Context, request *requests.CreateHealthRecord) (*responses.HealthRecordPayload, error)
	createPredictionFn func(ctx context.Context, healthRecordID int) (*responses.PredictionPayload, error)
	recordCalls        int
	predictionCalls    int
}

func (f *fakeGateway) CreateHealthRecord(ctx context.Context, request *requests.CreateHealthRecord) (*responses.HealthRecordPayload, error) {
	f.recordCalls++
	return f.createRecordFn(ctx, request)
}

func (f *fakeGateway) CreatePrediction(ctx context.Context, healthRecordID int) (*responses.PredictionPayload, error) {
	f.predictionCalls++
	return f.createPredictionFn(ctx, healthRecordID)
}

func newTestManager(gw contracts.Gateway) *assessmentManager {
	return &assessmentManager{
		Gateway: gw,
		Log:     zap.NewNop(),
		wizards: make(map[string]*wizardInstance),
	}
}

func filledDraft() *requests.UpdateDraft {
	age, gender := "34", "male"
	height, weight := "180", "82.5"
	systolic, diastolic, sugar := "120", "80", "95"
	smoking := true
	return &requests.UpdateDraft{
		Age:                    &age,
		Gender:                 &gender,
		Height:                 &height,
		Weight:                 &weight,
		BloodPressureSystolic:  &systolic,
		BloodPressureDiastolic: &diastolic,
		BloodSugar:             &sugar,
		Smoking:                &smoking,
	}
}

func TestStartResetsDraft(t *testing.T) {
	manager := newTestManager(&fakeGateway{})

	state, err := manager.Update("owner", filledDraft())
	assert.Nil(t, state)
	assert.Error(t, err, "update before start should fail")

	started := manager.Start("owner")
	assert.Equal(t, constvars.WizardStepFirst, started.CurrentStep)
	assert.False(t, started.Submitting)
	assert.Empty(t, started.Draft.Age)

	_, err = manager.Update("owner", filledDraft())
	require.NoError(t, err)

	restarted := manager.Start("owner")
	assert.Empty(t, restarted.Draft.Age, "restart should discard the previous draft")
}

func TestStepBounds(t *testing.T) {
	manager := newTestManager(&fakeGateway{})
	manager.Start("owner")

	state, err := manager.Retreat("owner")
	require.NoError(t, err)
	assert.Equal(t, constvars.WizardStepFirst, state.CurrentStep, "retreat at the first step is a no-op")

	for expected := constvars.WizardStepFirst + 1; expected <= constvars.WizardStepLast; expected++ {
		state, result, err := manager.Advance(context.Background(), "owner")
		require.NoError(t, err)
		assert.Nil(t, result)
		assert.Equal(t, expected, state.CurrentStep)
	}

	state, err = manager.Retreat("owner")
	require.NoError(t, err)
	assert.Equal(t, constvars.WizardStepLast-1, state.CurrentStep)
}

func TestUpdateMergesOnlyPresentFields(t *testing.T) {
	manager := newTestManager(&fakeGateway{})
	manager.Start("owner")

	_, err := manager.Update("owner", filledDraft())
	require.NoError(t, err)

	newWeight := "90"
	state, err := manager.Update("owner", &requests.UpdateDraft{Weight: &newWeight})
	require.NoError(t, err)

	assert.Equal(t, "90", state.Draft.Weight)
	assert.Equal(t, "34", state.Draft.Age, "untouched fields survive a partial update")
	assert.True(t, state.Draft.Smoking)
}

func TestUpdateAcceptsMalformedInput(t *testing.T) {
	manager := newTestManager(&fakeGateway{})
	manager.Start("owner")

	weight := "not-a-number"
	state, err := manager.Update("owner", &requests.UpdateDraft{Weight: &weight})
	require.NoError(t, err, "drafts are never validated before submission")
	assert.Equal(t, "not-a-number", state.Draft.Weight)
}

func advanceToLastStep(t *testing.T, manager *assessmentManager, owner string) {
	t.Helper()
	for {
		state, err := manager.State(owner)
		require.NoError(t, err)
		if state.CurrentStep == constvars.WizardStepLast {
			return
		}
		_, _, err = manager.Advance(context.Background(), owner)
		require.NoError(t, err)
	}
}

func TestSubmitPipelineSuccess(t *testing.T) {
	gw := &fakeGateway{
		createRecordFn: func(ctx context.Context, request *requests.CreateHealthRecord) (*responses.HealthRecordPayload, error) {
			assert.InDelta(t, 82.5, request.Weight, 0.001)
			assert.Equal(t, 120, request.BloodPressureSystolic)

			var habits models.LifestyleHabits
			require.NoError(t, json.Unmarshal([]byte(request.LifestyleHabits), &habits))
			assert.True(t, habits.Smoking)

			return &responses.HealthRecordPayload{
				HealthRecord: models.HealthRecord{ID: 42},
			}, nil
		},
		createPredictionFn: func(ctx context.Context, healthRecordID int) (*responses.PredictionPayload, error) {
			assert.Equal(t, 42, healthRecordID)
			return &responses.PredictionPayload{
				Prediction:  models.Prediction{ID: 7, RiskCategory: "low"},
				Explanation: "looks fine",
			}, nil
		},
	}
	manager := newTestManager(gw)
	manager.Start("owner")
	_, err := manager.Update("owner", filledDraft())
	require.NoError(t, err)
	advanceToLastStep(t, manager, "owner")

	state, result, err := manager.Advance(context.Background(), "owner")
	require.NoError(t, err)
	assert.Nil(t, state)
	require.NotNil(t, result)
	assert.Equal(t, 7, result.Prediction.ID)
	assert.Equal(t, "looks fine", result.Explanation)
	assert.Equal(t, "82.5", result.FormData.Weight, "the submitted draft is echoed back")

	_, err = manager.State("owner")
	assert.Error(t, err, "a submitted wizard is gone")
}

func TestSubmitPhaseOneFailureSkipsPhaseTwo(t *testing.T) {
	gw := &fakeGateway{
		createRecordFn: func(ctx context.Context, request *requests.CreateHealthRecord) (*responses.HealthRecordPayload, error) {
			return nil, exceptions.ErrBackendRejected(400, "Validation error", "bad weight", "health record")
		},
	}
	manager := newTestManager(gw)
	manager.Start("owner")
	advanceToLastStep(t, manager, "owner")

	state, result, err := manager.Advance(context.Background(), "owner")
	assert.Nil(t, state)
	assert.Nil(t, result)
	require.Error(t, err)

	var custom *exceptions.CustomError
	require.True(t, errors.As(err, &custom))
	assert.Equal(t, "Validation error", custom.ErrorCode)
	assert.Equal(t, "bad weight", custom.ClientMessage)

	assert.Equal(t, 1, gw.recordCalls)
	assert.Equal(t, 0, gw.predictionCalls, "phase 2 must not run after a phase 1 failure")

	current, err := manager.State("owner")
	require.NoError(t, err)
	assert.Equal(t, constvars.WizardStepLast, current.CurrentStep, "a failed submission leaves the wizard in place")
	assert.False(t, current.Submitting, "the submitting flag never stays stuck")
}

func TestSubmitPhaseTwoFailureLeavesRecordBehind(t *testing.T) {
	gw := &fakeGateway{
		createRecordFn: func(ctx context.Context, request *requests.CreateHealthRecord) (*responses.HealthRecordPayload, error) {
			return &responses.HealthRecordPayload{HealthRecord: models.HealthRecord{ID: 42}}, nil
		},
		createPredictionFn: func(ctx context.Context, healthRecordID int) (*responses.PredictionPayload, error) {
			return nil, exceptions.ErrNetworkFailure(errors.New("connection refused"))
		},
	}
	manager := newTestManager(gw)
	manager.Start("owner")
	advanceToLastStep(t, manager, "owner")

	_, result, err := manager.Advance(context.Background(), "owner")
	assert.Nil(t, result)
	require.Error(t, err)
	assert.Equal(t, 1, gw.recordCalls, "no compensating delete is issued for the orphaned record")

	// the user can retry immediately
	_, _, err = manager.Advance(context.Background(), "owner")
	require.Error(t, err)
	assert.Equal(t, 2, gw.recordCalls)
}

func TestSubmitRecoversFromPanic(t *testing.T) {
	gw := &fakeGateway{
		createRecordFn: func(ctx context.Context, request *requests.CreateHealthRecord) (*responses.HealthRecordPayload, error) {
			panic("boom")
		},
	}
	manager := newTestManager(gw)
	manager.Start("owner")
	advanceToLastStep(t, manager, "owner")

	state, result, err := manager.Advance(context.Background(), "owner")
	assert.Nil(t, state)
	assert.Nil(t, result)
	require.Error(t, err)

	current, err := manager.State("owner")
	require.NoError(t, err)
	assert.False(t, current.Submitting)
}

func TestSubmitWhileSubmittingIsRejected(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	gw := &fakeGateway{
		createRecordFn: func(ctx context.Context, request *requests.CreateHealthRecord) (*responses.HealthRecordPayload, error) {
			close(started)
			<-release
			return &responses.HealthRecordPayload{HealthRecord: models.HealthRecord{ID: 1}}, nil
		},
		createPredictionFn: func(ctx context.Context, healthRecordID int) (*responses.PredictionPayload, error) {
			return &responses.PredictionPayload{Prediction: models.Prediction{ID: 2}}, nil
		},
	}
	manager := newTestManager(gw)
	manager.Start("owner")
	advanceToLastStep(t, manager, "owner")

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, result, err := manager.Advance(context.Background(), "owner")
		assert.NoError(t, err)
		assert.NotNil(t, result)
	}()

	<-started
	_, _, err := manager.Advance(context.Background(), "owner")
	require.Error(t, err)
	var custom *exceptions.CustomError
	require.True(t, errors.As(err, &custom))
	assert.Equal(t, constvars.StatusConflict, custom.StatusCode)

	close(release)
	<-done
}

func TestAbandonDropsWizard(t *testing.T) {
	manager := newTestManager(&fakeGateway{})
	manager.Start("owner")

	manager.Abandon("owner")
	_, err := manager.State("owner")
	assert.Error(t, err)

	// abandoning again is harmless
	manager.Abandon("owner")
}
