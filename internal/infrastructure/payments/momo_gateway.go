package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"propertyhub/internal/infrastructure/config"
	"propertyhub/internal/usecase/interfaces"
)

var ErrMoMoGatewayNotConfigured = errors.New("mtn momo gateway not configured")

const (
	headerSubscriptionKey   = "Ocp-Apim-Subscription-Key"
	headerTargetEnvironment = "X-Target-Environment"
	headerReferenceID       = "X-Reference-Id"
	headerCallbackURL       = "X-Callback-Url"
)

// ProviderError carries the failing operation with the provider's status code and body.
type ProviderError struct {
	Op         string
	StatusCode int
	Body       string
	kind       error
}

func (e *ProviderError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("momo %s failed: %s", e.Op, e.Body)
	}
	return fmt.Sprintf("momo %s failed: status=%d body=%s", e.Op, e.StatusCode, e.Body)
}

func (e *ProviderError) Unwrap() error { return e.kind }

func (e *ProviderError) ProviderResponse() (int, string) { return e.StatusCode, e.Body }

var _ interfaces.ProviderResponder = (*ProviderError)(nil)

func newProviderError(op string, statusCode int, body []byte) *ProviderError {
	kind := interfaces.ErrProviderRequest
	switch statusCode {
	case http.StatusNotFound:
		kind = interfaces.ErrTransactionNotFound
	case http.StatusUnauthorized:
		kind = interfaces.ErrProviderUnauthorized
	case http.StatusForbidden:
		kind = interfaces.ErrProviderForbidden
	}
	return &ProviderError{Op: op, StatusCode: statusCode, Body: strings.TrimSpace(string(body)), kind: kind}
}

// MoMoGateway talks to the MTN MoMo collection API.
//
// It is built once per process and shared; the only mutable state is the
// cached bearer token (and the in-memory ledger in mock mode).
type MoMoGateway struct {
	cfg        config.MoMoConfig
	httpClient *http.Client
	now        func() time.Time

	tokenMu     sync.RWMutex
	token       string
	tokenExpiry time.Time

	mockMode bool
	mock     *mockLedger
}

var _ interfaces.IMoMoGateway = (*MoMoGateway)(nil)

// NewMoMoGateway returns a gateway for cfg. A nil httpClient gets one with cfg.HTTPTimeout.
func NewMoMoGateway(cfg config.MoMoConfig, httpClient *http.Client) (*MoMoGateway, error) {
	if cfg.Mock {
		log.Printf("[momo][gateway] mock mode enabled")
		return &MoMoGateway{cfg: cfg, now: time.Now, mockMode: true, mock: newMockLedger()}, nil
	}
	if !cfg.Configured() {
		log.Printf("[momo][gateway] missing MOMO_SUBSCRIPTION_KEY / MOMO_API_USER / MOMO_API_KEY")
		return nil, ErrMoMoGatewayNotConfigured
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.HTTPTimeout}
	}
	log.Printf("[momo][gateway] client initialized base_url=%s target_environment=%s", cfg.BaseURL, cfg.TargetEnvironment)
	return &MoMoGateway{cfg: cfg, httpClient: httpClient, now: time.Now}, nil
}

// do sends one authenticated call and decodes a 2xx JSON body into out when out is non-nil.
func (g *MoMoGateway) do(ctx context.Context, op, method, path string, headers map[string]string, body, out any) (int, error) {
	token, err := g.accessToken(ctx)
	if err != nil {
		return 0, err
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return 0, err
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.cfg.BaseURL+path, reader)
	if err != nil {
		return 0, fmt.Errorf("momo %s: build request: %w", op, err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set(headerSubscriptionKey, g.cfg.SubscriptionKey)
	req.Header.Set(headerTargetEnvironment, g.cfg.TargetEnvironment)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		if v != "" {
			req.Header.Set(k, v)
		}
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		log.Printf("[momo][gateway] %s transport failed err=%v", op, err)
		return 0, &ProviderError{Op: op, Body: err.Error(), kind: interfaces.ErrProviderRequest}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, fmt.Errorf("momo %s: read response: %w", op, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("[momo][gateway] %s rejected status=%d body=%s", op, resp.StatusCode, string(raw))
		return resp.StatusCode, newProviderError(op, resp.StatusCode, raw)
	}
	if out != nil && len(bytes.TrimSpace(raw)) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return resp.StatusCode, fmt.Errorf("momo %s: decode response: %w", op, err)
		}
	}
	return resp.StatusCode, nil
}
