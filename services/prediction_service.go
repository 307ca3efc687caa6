package services

import (
	"RealEstateAPI/config/environment"
	"RealEstateAPI/models"
	"RealEstateAPI/utils"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"
)

// PredictionService forwards validated payloads to the external price
// prediction endpoint and relays whatever it answers. The model itself
// lives entirely on the other side of this call.
type PredictionService struct {
	Endpoint string
	Client   *http.Client
}

// NewPredictionService creates a new instance of PredictionService
func NewPredictionService() *PredictionService {
	return &PredictionService{
		Endpoint: environment.GetPredictionServiceURL(),
		Client: &http.Client{
			// A hung predictor must surface as unavailable, not hang
			// the request.
			Timeout: 15 * time.Second,
		},
	}
}

// Predict forwards the payload verbatim and returns the upstream
// status code and raw body so the caller can relay them unchanged.
func (s *PredictionService) Predict(ctx context.Context, req models.PredictionRequest) (int, []byte, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return 0, nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to encode prediction request")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.Endpoint, bytes.NewBuffer(payload))
	if err != nil {
		return 0, nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to build prediction request")
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := s.Client.Do(httpReq)
	if err != nil {
		logger.Error().Err(err).Str("endpoint", s.Endpoint).Msg("Prediction service unreachable")
		return 0, nil, utils.NewCustomError(http.StatusServiceUnavailable, "Prediction service is unavailable")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.Error().Err(err).Msg("Error reading prediction response")
		return 0, nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to read prediction response")
	}

	return resp.StatusCode, body, nil
}
