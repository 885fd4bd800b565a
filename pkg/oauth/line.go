package oauth

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go-internmatch-backend/internal/domain"
)

const (
	lineTokenURL   = "https://api.line.me/oauth2/v2.1/token"
	lineProfileURL = "https://api.line.me/v2/profile"
	linePushURL    = "https://api.line.me/v2/bot/message/push"
)

// LineProvider exchanges a LINE Login authorization code for verified
// identity claims. It implements domain.IdentityProvider.
type LineProvider struct {
	clientID     string
	clientSecret string
	redirectURI  string
	httpClient   *http.Client
}

func NewLineProvider(clientID, clientSecret, redirectURI string) *LineProvider {
	return &LineProvider{
		clientID:     clientID,
		clientSecret: clientSecret,
		redirectURI:  redirectURI,
		httpClient:   &http.Client{Timeout: 10 * time.Second},
	}
}

func (p *LineProvider) Exchange(ctx context.Context, code string) (*domain.FederatedIdentity, error) {
	form := url.Values{
		"grant_type":    {"authorization_code"},
		"code":          {code},
		"redirect_uri":  {p.redirectURI},
		"client_id":     {p.clientID},
		"client_secret": {p.clientSecret},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, lineTokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("line token exchange failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("line token exchange returned status %d", resp.StatusCode)
	}

	var tokenResp struct {
		AccessToken string `json:"access_token"`
		IDToken     string `json:"id_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&tokenResp); err != nil {
		return nil, fmt.Errorf("line token response unreadable: %w", err)
	}
	if tokenResp.AccessToken == "" {
		return nil, fmt.Errorf("line token response missing access_token")
	}

	// The email claim only travels in the ID token; the profile endpoint
	// supplies the stable user id and display name.
	email := emailFromIDToken(tokenResp.IDToken)

	profReq, err := http.NewRequestWithContext(ctx, http.MethodGet, lineProfileURL, nil)
	if err != nil {
		return nil, err
	}
	profReq.Header.Set("Authorization", "Bearer "+tokenResp.AccessToken)

	profResp, err := p.httpClient.Do(profReq)
	if err != nil {
		return nil, fmt.Errorf("line profile failed: %w", err)
	}
	defer profResp.Body.Close()
	if profResp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("line profile returned status %d", profResp.StatusCode)
	}

	var profile struct {
		UserID      string `json:"userId"`
		DisplayName string `json:"displayName"`
	}
	if err := json.NewDecoder(profResp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("line profile unreadable: %w", err)
	}

	return &domain.FederatedIdentity{
		Email:     email,
		Name:      profile.DisplayName,
		SubjectID: profile.UserID,
	}, nil
}

// emailFromIDToken extracts the email claim from the ID token payload. The
// token was just obtained directly from LINE over TLS, so signature
// verification is not repeated here.
func emailFromIDToken(idToken string) string {
	parts := strings.Split(idToken, ".")
	if len(parts) != 3 {
		return ""
	}
	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return ""
	}
	var claims struct {
		Email string `json:"email"`
	}
	if err := json.Unmarshal(payload, &claims); err != nil {
		return ""
	}
	return claims.Email
}

// LinePusher sends short notices through the LINE Messaging API. It
// implements domain.MessagingPusher.
type LinePusher struct {
	channelToken string
	httpClient   *http.Client
}

func NewLinePusher(channelToken string) *LinePusher {
	return &LinePusher{
		channelToken: channelToken,
		httpClient:   &http.Client{Timeout: 10 * time.Second},
	}
}

func (p *LinePusher) PushText(ctx context.Context, recipientID, text string) error {
	if p.channelToken == "" {
		return fmt.Errorf("line messaging channel token not configured")
	}

	body, err := json.Marshal(map[string]any{
		"to": recipientID,
		"messages": []map[string]string{
			{"type": "text", "text": text},
		},
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, linePushURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.channelToken)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("line push failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("line push returned status %d", resp.StatusCode)
	}
	return nil
}
