package wizard

import (
	"context"
	"fmt"
	"healthpredict-client/internal/app/contracts"
	"healthpredict-client/internal/app/models"
	"healthpredict-client/internal/pkg/constvars"
	"healthpredict-client/internal/pkg/dto/requests"
	"healthpredict-client/internal/pkg/dto/responses"
	"healthpredict-client/internal/pkg/exceptions"
	"strconv"
	"sync"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// wizardInstance is one user's in-flight assessment. All transitions happen
// under mu; the submission pipeline itself runs outside it so a slow backend
// never blocks state reads.
type wizardInstance struct {
	mu         sync.Mutex
	step       int
	submitting bool
	draft      models.WizardDraft
}

type assessmentManager struct {
	Gateway contracts.Gateway
	Log     *zap.Logger

	mu      sync.Mutex
	wizards map[string]*wizardInstance
}

var (
	assessmentManagerInstance *assessmentManager
	onceAssessmentManager     sync.Once
)

func NewAssessmentManager(gateway contracts.Gateway, logger *zap.Logger) contracts.AssessmentManager {
	onceAssessmentManager.Do(func() {
		assessmentManagerInstance = &assessmentManager{
			Gateway: gateway,
			Log:     logger,
			wizards: make(map[string]*wizardInstance),
		}
	})
	return assessmentManagerInstance
}

// Start always hands back a fresh wizard at the first step, discarding any
// previous draft the owner had.
func (m *assessmentManager) Start(owner string) *responses.WizardState {
	instance := &wizardInstance{step: constvars.WizardStepFirst}

	m.mu.Lock()
	m.wizards[owner] = instance
	m.mu.Unlock()

	m.Log.Info("assessmentManager.Start succeeded",
		zap.Int(constvars.LoggingWizardStepKey, instance.step),
	)
	return snapshot(instance)
}

func (m *assessmentManager) State(owner string) (*responses.WizardState, error) {
	instance, err := m.lookup(owner)
	if err != nil {
		return nil, err
	}
	return snapshot(instance), nil
}

// Update merges the present fields into the draft. No validation happens
// here: blank and malformed values are accepted and only surface, as a
// backend rejection, when the user submits.
func (m *assessmentManager) Update(owner string, request *requests.UpdateDraft) (*responses.WizardState, error) {
	instance, err := m.lookup(owner)
	if err != nil {
		return nil, err
	}

	instance.mu.Lock()
	defer instance.mu.Unlock()

	mergeDraft(&instance.draft, request)
	return snapshotLocked(instance), nil
}

// Retreat steps back one step and is a no-op at the first step.
func (m *assessmentManager) Retreat(owner string) (*responses.WizardState, error) {
	instance, err := m.lookup(owner)
	if err != nil {
		return nil, err
	}

	instance.mu.Lock()
	defer instance.mu.Unlock()

	if instance.step > constvars.WizardStepFirst {
		instance.step--
	}
	return snapshotLocked(instance), nil
}

func (m *assessmentManager) Advance(ctx context.Context, owner string) (*responses.WizardState, *responses.AssessmentResult, error) {
	instance, err := m.lookup(owner)
	if err != nil {
		return nil, nil, err
	}

	instance.mu.Lock()
	if instance.step < constvars.WizardStepLast {
		instance.step++
		state := snapshotLocked(instance)
		instance.mu.Unlock()
		return state, nil, nil
	}
	if instance.submitting {
		instance.mu.Unlock()
		return nil, nil, exceptions.ErrWizardBusy(nil)
	}
	instance.submitting = true
	draft := instance.draft
	instance.mu.Unlock()

	result, err := m.submit(ctx, draft)

	instance.mu.Lock()
	instance.submitting = false
	instance.mu.Unlock()

	if err != nil {
		return nil, nil, err
	}

	m.Abandon(owner)
	return nil, result, nil
}

func (m *assessmentManager) Abandon(owner string) {
	m.mu.Lock()
	delete(m.wizards, owner)
	m.mu.Unlock()
}

// submit runs the two-phase pipeline: create the health record, then request
// the prediction for it. A phase-1 failure skips phase 2 entirely; a phase-2
// failure leaves the record behind, there is no compensating delete.
func (m *assessmentManager) submit(ctx context.Context, draft models.WizardDraft) (result *responses.AssessmentResult, err error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	m.Log.Info("assessmentManager.submit called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	defer func() {
		if recovered := recover(); recovered != nil {
			m.Log.Error("assessmentManager.submit recovered",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Any("panic", recovered),
			)
			result = nil
			err = exceptions.ErrWizardRecovered(fmt.Errorf("%v", recovered))
		}
	}()

	recordPayload, err := m.Gateway.CreateHealthRecord(ctx, buildRecordRequest(draft))
	if err != nil {
		m.Log.Warn("assessmentManager.submit health record rejected",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	predictionPayload, err := m.Gateway.CreatePrediction(ctx, recordPayload.HealthRecord.ID)
	if err != nil {
		m.Log.Warn("assessmentManager.submit prediction rejected",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingRecordIDKey, recordPayload.HealthRecord.ID),
			zap.Error(err),
		)
		return nil, err
	}

	m.Log.Info("assessmentManager.submit succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingPredictionIDKey, predictionPayload.Prediction.ID),
	)
	return &responses.AssessmentResult{
		Prediction:  predictionPayload.Prediction,
		Explanation: predictionPayload.Explanation,
		FormData:    draft,
	}, nil
}

func (m *assessmentManager) lookup(owner string) (*wizardInstance, error) {
	m.mu.Lock()
	instance, ok := m.wizards[owner]
	m.mu.Unlock()
	if !ok {
		return nil, exceptions.ErrWizardNotStarted(nil)
	}
	return instance, nil
}

// buildRecordRequest normalizes the draft into the backend payload. Fields
// that do not parse become zero values and are left for the backend to
// reject; the client stays permissive to the end.
func buildRecordRequest(draft models.WizardDraft) *requests.CreateHealthRecord {
	habits, _ := json.Marshal(models.LifestyleHabits{
		Smoking:       draft.Smoking,
		Alcohol:       draft.Alcohol,
		Exercise:      draft.Exercise,
		FamilyHistory: draft.FamilyHistory,
	})

	return &requests.CreateHealthRecord{
		Height:                 parseFloatField(draft.Height),
		Weight:                 parseFloatField(draft.Weight),
		BloodPressureSystolic:  parseIntField(draft.BloodPressureSystolic),
		BloodPressureDiastolic: parseIntField(draft.BloodPressureDiastolic),
		BloodSugar:             parseFloatField(draft.BloodSugar),
		LifestyleHabits:        string(habits),
	}
}

func parseFloatField(raw string) float64 {
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return value
}

func parseIntField(raw string) int {
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return value
}

func snapshot(instance *wizardInstance) *responses.WizardState {
	instance.mu.Lock()
	defer instance.mu.Unlock()
	return snapshotLocked(instance)
}

func snapshotLocked(instance *wizardInstance) *responses.WizardState {
	return &responses.WizardState{
		CurrentStep: instance.step,
		Submitting:  instance.submitting,
		Draft:       instance.draft,
	}
}

func mergeDraft(draft *models.WizardDraft, request *requests.UpdateDraft) {
	if request.Age != nil {
		draft.Age = *request.Age
	}
	if request.Gender != nil {
		draft.Gender = *request.Gender
	}
	if request.Height != nil {
		draft.Height = *request.Height
	}
	if request.Weight != nil {
		draft.Weight = *request.Weight
	}
	if request.BloodPressureSystolic != nil {
		draft.BloodPressureSystolic = *request.BloodPressureSystolic
	}
	if request.BloodPressureDiastolic != nil {
		draft.BloodPressureDiastolic = *request.BloodPressureDiastolic
	}
	if request.BloodSugar != nil {
		draft.BloodSugar = *request.BloodSugar
	}
	if request.Smoking != nil {
		draft.Smoking = *request.Smoking
	}
	if request.Alcohol != nil {
		draft.Alcohol = *request.Alcohol
	}
	if request.Exercise != nil {
		draft.Exercise = *request.Exercise
	}
	if request.FamilyHistory != nil {
		draft.FamilyHistory = *request.FamilyHistory
	}
}
