package services

import (
	"encoding/json"
	"sync"

	"backend/config"
	"backend/ml"
	"backend/models"
	"backend/pkg/logger"
)

// Shared engine handle. Loaded at startup; if that failed, the next
// request attempts one lazy reload before reporting the model
// unavailable. The engine itself is read-only once loaded.
type predictorState struct {
	mu     sync.Mutex
	engine *ml.Engine
	path   string
	log    *logger.Logger
}

var predictor predictorState

func InitPredictor(modelPath string, log *logger.Logger) {
	predictor.path = modelPath
	predictor.log = log

	engine, err := ml.NewEngine(modelPath)
	if err != nil {
		log.Errorw("model artifact failed to load", "path", modelPath, "error", err)
		return
	}
	predictor.engine = engine
	log.Infow("loaded model artifact", "path", modelPath)
}

// ModelEngine returns the loaded engine, retrying the load once if
// startup failed. Never reloads mid-request once available.
func ModelEngine() (*ml.Engine, error) {
	predictor.mu.Lock()
	defer predictor.mu.Unlock()

	if predictor.engine != nil {
		return predictor.engine, nil
	}
	engine, err := ml.NewEngine(predictor.path)
	if err != nil {
		return nil, ml.ErrModelUnavailable
	}
	predictor.engine = engine
	if predictor.log != nil {
		predictor.log.Infow("loaded model artifact on retry", "path", predictor.path)
	}
	return engine, nil
}

// SavePrediction writes one immutable ledger record for an inference.
func SavePrediction(userID string, input map[string]any, res *ml.Result) (*models.Prediction, error) {
	snapshot, err := json.Marshal(input)
	if err != nil {
		return nil, err
	}

	record := models.Prediction{
		UserID:      userID,
		InputData:   snapshot,
		Prediction:  res.Prediction,
		Probability: res.Probability,
		RiskLevel:   res.RiskLevel,
	}
	if err := config.DB.Create(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// PredictionHistory lists a user's predictions, newest first.
func PredictionHistory(userID string) ([]models.Prediction, error) {
	var records []models.Prediction
	err := config.DB.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&records).Error
	return records, err
}
