package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/jasonfuller/relic-quest/internal/handlers"
	"github.com/jasonfuller/relic-quest/internal/session"
)

// apiClient wraps the HTTP calls the console needs, carrying the bearer
// token once the user is logged in.
type apiClient struct {
	http    *http.Client
	baseURL string
	token   string
}

func (c *apiClient) testConnection() bool {
	resp, err := c.http.Get(c.baseURL + "/health")
	if err != nil {
		return false
	}
	defer func() {
		_ = resp.Body.Close() // Ignore error in defer
	}()
	return resp.StatusCode == http.StatusOK
}

func (c *apiClient) do(method, path string, reqBody any, wantStatus int, out any) error {
	var body io.Reader
	if reqBody != nil {
		jsonData, err := json.Marshal(reqBody)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequest(method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close() // Ignore error in defer
	}()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != wantStatus {
		var errorResp handlers.ErrorResponse
		if err := json.Unmarshal(data, &errorResp); err != nil || errorResp.Error == "" {
			return fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(data))
		}
		return fmt.Errorf("%s", errorResp.Error)
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to parse response: %w", err)
		}
	}
	return nil
}

func (c *apiClient) signup(displayName, email, password string) error {
	var resp handlers.AuthResponse
	err := c.do(http.MethodPost, "/v1/auth/signup", handlers.SignupRequest{
		DisplayName: displayName,
		Email:       email,
		Password:    password,
	}, http.StatusCreated, &resp)
	if err != nil {
		return err
	}
	c.token = resp.Token
	return nil
}

func (c *apiClient) login(email, password string) error {
	var resp handlers.AuthResponse
	err := c.do(http.MethodPost, "/v1/auth/login", handlers.LoginRequest{
		Email:    email,
		Password: password,
	}, http.StatusOK, &resp)
	if err != nil {
		return err
	}
	c.token = resp.Token
	return nil
}

func (c *apiClient) listLevels() ([]handlers.LevelSummary, error) {
	var levels []handlers.LevelSummary
	if err := c.do(http.MethodGet, "/v1/levels", nil, http.StatusOK, &levels); err != nil {
		return nil, err
	}
	return levels, nil
}

func (c *apiClient) currentSession() (*session.View, error) {
	var view session.View
	if err := c.do(http.MethodGet, "/v1/session", nil, http.StatusOK, &view); err != nil {
		return nil, err
	}
	return &view, nil
}

func (c *apiClient) startSession(levelID string) (*session.View, error) {
	var view session.View
	err := c.do(http.MethodPost, "/v1/session", handlers.StartSessionRequest{LevelID: levelID},
		http.StatusCreated, &view)
	if err != nil {
		return nil, err
	}
	return &view, nil
}

func (c *apiClient) restartSession(levelID string) (*session.View, error) {
	var view session.View
	err := c.do(http.MethodPost, "/v1/session/restart", handlers.StartSessionRequest{LevelID: levelID},
		http.StatusCreated, &view)
	if err != nil {
		return nil, err
	}
	return &view, nil
}

func (c *apiClient) move(direction string) (*session.View, error) {
	var view session.View
	err := c.do(http.MethodPost, "/v1/session/move", handlers.MoveRequest{Direction: direction},
		http.StatusOK, &view)
	if err != nil {
		return nil, err
	}
	return &view, nil
}
