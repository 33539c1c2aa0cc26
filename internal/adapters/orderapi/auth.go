package orderapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrNoToken      = errors.New("login response carries no token")
	ErrTokenExpired = errors.New("bearer token expired")
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token       string `json:"token"`
	AccessToken string `json:"accessToken"`
}

// Login exchanges credentials for a bearer token at the authentication
// endpoint. Either "token" or "accessToken" is accepted in the response.
func Login(ctx context.Context, authURL, username, password string, timeout time.Duration) (string, error) {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	c := &client{session: &http.Client{Timeout: timeout}}

	body, err := json.Marshal(loginRequest{Username: username, Password: password})
	if err != nil {
		return "", fmt.Errorf("login: encode request: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, authURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("login: %w", err)
	}

	resp, err := c.do(req)
	if err != nil {
		return "", fmt.Errorf("login as %q: %w", username, err)
	}
	defer resp.Body.Close()

	var decoded loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("login: decode response: %w", err)
	}

	token := decoded.Token
	if token == "" {
		token = decoded.AccessToken
	}
	if token == "" {
		return "", ErrNoToken
	}

	return token, nil
}

// CheckTokenExpiry fails when token is a JWT whose exp claim is not after now.
// The signature is not verified; opaque tokens and tokens without exp pass.
func CheckTokenExpiry(token string, now time.Time) error {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil
	}

	if !exp.After(now) {
		return fmt.Errorf("%w at %s", ErrTokenExpired, exp.Time.UTC().Format(time.RFC3339))
	}

	return nil
}
