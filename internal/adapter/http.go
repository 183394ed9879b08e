package adapter

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-pass-bridge/internal/config"
	"github.com/MKhiriev/go-pass-bridge/internal/logger"
	"github.com/MKhiriev/go-pass-bridge/internal/utils"
	"github.com/MKhiriev/go-pass-bridge/models"
	"github.com/go-resty/resty/v2"
)

const voiceVerifyPath = "/api/voice/verify"

type voiceRequest struct {
	UserID int64  `json:"user_id"`
	Sample string `json:"sample"`
}

type voiceResponse struct {
	Verified        bool    `json:"verified"`
	SimilarityScore float64 `json:"similarity_score"`
}

type httpVoiceVerifier struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPVoiceVerifier constructs an HTTP implementation of [VoiceVerifier].
// It normalises the base URL from cfg.VoiceAddress and configures the client
// with the per-attempt timeout, the attempt count and a fixed wait between
// attempts. Transport errors and 5xx answers are retried.
//
// Returns an error if cfg.VoiceAddress is empty or not a valid URL.
func NewHTTPVoiceVerifier(cfg config.Adapter, logger *logger.Logger) (VoiceVerifier, error) {
	baseURL, err := normalizeBaseURL(cfg.VoiceAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid voice service address: %w", err)
	}

	retries := cfg.Attempts - 1
	if retries < 0 {
		retries = 0
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout).
		SetRetryCount(retries).
		SetRetryWaitTime(cfg.RetryWait).
		SetRetryMaxWaitTime(cfg.RetryWait).
		AddRetryCondition(func(resp *resty.Response, err error) bool {
			return err != nil || resp.StatusCode() >= http.StatusInternalServerError
		})

	return &httpVoiceVerifier{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Verify implements [VoiceVerifier]. It POSTs the base64 encoded sample to
// POST /api/voice/verify.
func (h *httpVoiceVerifier) Verify(ctx context.Context, userID int64, sample []byte) (models.VoiceVerdict, error) {
	if len(sample) == 0 {
		return models.VoiceVerdict{}, ErrEmptySample
	}

	var result voiceResponse
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(voiceRequest{UserID: userID, Sample: base64.StdEncoding.EncodeToString(sample)}).
		SetResult(&result).
		Post(voiceVerifyPath)
	if err != nil {
		h.logger.Err(err).Str("func", "*httpVoiceVerifier.Verify").Int64("user_id", userID).Msg("voice verification request failed")
		return models.VoiceVerdict{}, fmt.Errorf("%w: %w", ErrUpstreamTimeout, err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Err(err).Str("func", "*httpVoiceVerifier.Verify").Int64("user_id", userID).Msg("voice verification answered with error")
		return models.VoiceVerdict{}, err
	}

	return models.VoiceVerdict{Verified: result.Verified, Similarity: result.SimilarityScore}, nil
}
