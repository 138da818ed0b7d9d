package firebase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"philatelysamaaj/internal/usecase"
)

const (
	identityToolkitURL = "https://identitytoolkit.googleapis.com/v1"
	secureTokenURL     = "https://securetoken.googleapis.com/v1"
)

type identityToolkit struct {
	apiKey         string
	httpClient     *http.Client
	identityURL    string
	secureTokenURL string
}

func newIdentityToolkit(apiKey string, httpClient *http.Client) *identityToolkit {
	return &identityToolkit{
		apiKey:         apiKey,
		httpClient:     httpClient,
		identityURL:    identityToolkitURL,
		secureTokenURL: secureTokenURL,
	}
}

type signInResponse struct {
	IDToken      string `json:"idToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    string `json:"expiresIn"`
	LocalID      string `json:"localId"`
}

type refreshResponse struct {
	IDToken      string `json:"id_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    string `json:"expires_in"`
	UserID       string `json:"user_id"`
}

type toolkitError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (t *identityToolkit) signInWithPassword(ctx context.Context, email, password string) (*usecase.AuthTokens, error) {
	if t.apiKey == "" {
		return nil, fmt.Errorf("firebase API key is not configured")
	}

	body, err := json.Marshal(map[string]interface{}{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	})
	if err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/accounts:signInWithPassword?key=%s", t.identityURL, url.QueryEscape(t.apiKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	var out signInResponse
	if err := t.do(req, &out); err != nil {
		return nil, err
	}

	return &usecase.AuthTokens{
		IDToken:      out.IDToken,
		RefreshToken: out.RefreshToken,
		ExpiresIn:    parseExpiry(out.ExpiresIn),
		UID:          out.LocalID,
	}, nil
}

func (t *identityToolkit) refresh(ctx context.Context, refreshToken string) (*usecase.AuthTokens, error) {
	if t.apiKey == "" {
		return nil, fmt.Errorf("firebase API key is not configured")
	}

	form := url.Values{}
	form.Set("grant_type", "refresh_token")
	form.Set("refresh_token", refreshToken)

	endpoint := fmt.Sprintf("%s/token?key=%s", t.secureTokenURL, url.QueryEscape(t.apiKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var out refreshResponse
	if err := t.do(req, &out); err != nil {
		return nil, err
	}

	return &usecase.AuthTokens{
		IDToken:      out.IDToken,
		RefreshToken: out.RefreshToken,
		ExpiresIn:    parseExpiry(out.ExpiresIn),
		UID:          out.UserID,
	}, nil
}

func (t *identityToolkit) do(req *http.Request, out interface{}) error {
	resp, err := t.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr toolkitError
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Error.Message != "" {
			return fmt.Errorf("identity toolkit: %s", apiErr.Error.Message)
		}
		return fmt.Errorf("identity toolkit: status %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

func parseExpiry(s string) int64 {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return n
}
