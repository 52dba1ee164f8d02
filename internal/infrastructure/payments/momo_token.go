package payments

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"propertyhub/internal/usecase/interfaces"
)

// tokenRefreshMargin renews the token before the provider considers it expired.
const tokenRefreshMargin = 60 * time.Second

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

func (g *MoMoGateway) accessToken(ctx context.Context) (string, error) {
	g.tokenMu.RLock()
	if g.token != "" && g.now().Before(g.tokenExpiry) {
		token := g.token
		g.tokenMu.RUnlock()
		return token, nil
	}
	g.tokenMu.RUnlock()

	g.tokenMu.Lock()
	defer g.tokenMu.Unlock()
	if g.token != "" && g.now().Before(g.tokenExpiry) {
		return g.token, nil
	}

	tok, err := g.fetchToken(ctx)
	if err != nil {
		return "", err
	}
	lifetime := time.Duration(tok.ExpiresIn)*time.Second - tokenRefreshMargin
	if lifetime < 0 {
		lifetime = 0
	}
	g.token = tok.AccessToken
	g.tokenExpiry = g.now().Add(lifetime)
	return g.token, nil
}

func (g *MoMoGateway) fetchToken(ctx context.Context) (tokenResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.cfg.BaseURL+"/collection/token/", nil)
	if err != nil {
		return tokenResponse{}, fmt.Errorf("momo token: build request: %w", err)
	}
	credentials := base64.StdEncoding.EncodeToString([]byte(g.cfg.APIUser + ":" + g.cfg.APIKey))
	req.Header.Set("Authorization", "Basic "+credentials)
	req.Header.Set(headerSubscriptionKey, g.cfg.SubscriptionKey)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		log.Printf("[momo][gateway] token transport failed err=%v", err)
		return tokenResponse{}, &ProviderError{Op: "token", Body: err.Error(), kind: interfaces.ErrProviderRequest}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return tokenResponse{}, fmt.Errorf("momo token: read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		log.Printf("[momo][gateway] token rejected status=%d", resp.StatusCode)
		pe := newProviderError("token", resp.StatusCode, raw)
		// Any token rejection is an authentication problem for callers.
		pe.kind = interfaces.ErrProviderUnauthorized
		return tokenResponse{}, pe
	}

	var tok tokenResponse
	if err := json.Unmarshal(raw, &tok); err != nil {
		return tokenResponse{}, fmt.Errorf("momo token: decode response: %w", err)
	}
	if tok.AccessToken == "" {
		return tokenResponse{}, &ProviderError{Op: "token", StatusCode: resp.StatusCode, Body: "empty access_token", kind: interfaces.ErrProviderUnauthorized}
	}
	log.Printf("[momo][gateway] token acquired expires_in=%d", tok.ExpiresIn)
	return tok, nil
}
