package notifications

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"railbook/internal/shared/config"
	"railbook/pkg/logger"

	"github.com/google/uuid"
)

const sendEndpoint = "/messages/v4/send"

// SolapiService is the real Solapi implementation of the Sender interface
type SolapiService struct {
	cfg        config.SMSConfig
	httpClient *http.Client
	logger     *logger.Logger
}

// NewSolapiService creates a new Solapi SMS service
func NewSolapiService(cfg config.SMSConfig, l *logger.Logger) *SolapiService {
	return &SolapiService{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     l,
	}
}

type sendRequest struct {
	Message messageBody `json:"message"`
}

type messageBody struct {
	To   string `json:"to"`
	From string `json:"from"`
	Text string `json:"text"`
}

type sendResponse struct {
	GroupInfo struct {
		GroupID string `json:"groupId"`
		Count   struct {
			Total             int `json:"total"`
			RegisteredSuccess int `json:"registeredSuccess"`
			RegisteredFailed  int `json:"registeredFailed"`
		} `json:"count"`
	} `json:"groupInfo"`
	ErrorCode    string `json:"errorCode"`
	ErrorMessage string `json:"errorMessage"`
}

// Send submits one text message to the gateway. Every failure mode is folded
// into the returned Outcome so the caller never has to unwind a committed
// reservation over a missed text.
func (s *SolapiService) Send(ctx context.Context, recipient, text string) Outcome {
	if s.cfg.APIKey == "" || s.cfg.APISecret == "" || s.cfg.Sender == "" {
		return s.failed(ctx, recipient, "sms gateway credentials are not configured")
	}

	body, err := json.Marshal(sendRequest{Message: messageBody{
		To:   recipient,
		From: s.cfg.Sender,
		Text: text,
	}})
	if err != nil {
		return s.failed(ctx, recipient, fmt.Sprintf("encode message: %v", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		strings.TrimRight(s.cfg.BaseURL, "/")+sendEndpoint, bytes.NewReader(body))
	if err != nil {
		return s.failed(ctx, recipient, fmt.Sprintf("build request: %v", err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", s.authorizationHeader(time.Now()))

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return s.failed(ctx, recipient, fmt.Sprintf("gateway call: %v", err))
	}
	defer resp.Body.Close()

	var decoded sendResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return s.failed(ctx, recipient, fmt.Sprintf("decode gateway response: %v", err))
	}

	if resp.StatusCode != http.StatusOK {
		detail := decoded.ErrorMessage
		if detail == "" {
			detail = fmt.Sprintf("gateway returned status %d", resp.StatusCode)
		}
		if decoded.ErrorCode != "" {
			detail = fmt.Sprintf("%s (%s)", detail, decoded.ErrorCode)
		}
		return s.failed(ctx, recipient, detail)
	}

	outcome := Outcome{
		Success:   true,
		GroupID:   decoded.GroupInfo.GroupID,
		SentCount: decoded.GroupInfo.Count.RegisteredSuccess,
	}
	s.logger.LogNotificationSent(ctx, recipient, outcome.GroupID, outcome.SentCount)
	return outcome
}

func (s *SolapiService) failed(ctx context.Context, recipient, detail string) Outcome {
	s.logger.LogNotificationFailed(ctx, recipient, detail)
	return Outcome{Success: false, Detail: detail}
}

// authorizationHeader builds the gateway's HMAC-SHA256 authorization value:
// the signature covers the concatenated date and salt
func (s *SolapiService) authorizationHeader(now time.Time) string {
	date := now.UTC().Format(time.RFC3339)
	salt := uuid.NewString()

	mac := hmac.New(sha256.New, []byte(s.cfg.APISecret))
	mac.Write([]byte(date + salt))
	signature := hex.EncodeToString(mac.Sum(nil))

	return fmt.Sprintf("HMAC-SHA256 apiKey=%s, date=%s, salt=%s, signature=%s",
		s.cfg.APIKey, date, salt, signature)
}

// NoopSender logs messages instead of delivering them, for running without
// gateway credentials
type NoopSender struct {
	logger *logger.Logger
}

// NewNoopSender creates a new no-op sender
func NewNoopSender(l *logger.Logger) *NoopSender {
	return &NoopSender{logger: l}
}

// Send pretends the message was delivered
func (s *NoopSender) Send(ctx context.Context, recipient, text string) Outcome {
	s.logger.LogNotificationSent(ctx, recipient, "noop", 0)
	return Outcome{Success: true, Detail: "sms gateway not configured, message logged only"}
}
