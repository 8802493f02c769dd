// Package client is the map-feed consumer for the game frontend. It fetches
// vehicle lists, drops markers with unusable coordinates, maps statuses onto
// the shared style buckets and performs exactly one token-refresh-and-retry
// cycle when a request comes back 401 or 403.
package client

import (
	"bytes"
	"context"
	"cybertaxi/domain"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

type Client struct {
	base    string
	http    *http.Client
	token   string
	refresh string

	// PlayerID is set after a successful login.
	PlayerID int
}

func New(base string) *Client {
	return &Client{
		base: base,
		http: &http.Client{Timeout: 15 * time.Second},
	}
}

// Marker is a renderable map marker.
type Marker struct {
	VehicleID string        `json:"vehicle_id"`
	PlayerID  int           `json:"player_id,omitempty"`
	Username  string        `json:"username,omitempty"`
	Type      string        `json:"type"`
	Status    string        `json:"status"`
	Style     string        `json:"style"`
	Coords    domain.Coords `json:"coords"`
}

type loginResponse struct {
	Status       string `json:"status"`
	Token        string `json:"token"`
	RefreshToken string `json:"refresh_token"`
	PlayerID     int    `json:"player_id"`
	Message      string `json:"message"`
}

func (c *Client) Login(ctx context.Context, username, password string) error {
	body, _ := json.Marshal(domain.UsernameLoginRequest{Username: username, Password: password})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/api/auth/login/username", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var parsed loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("login failed: %s", parsed.Message)
	}

	c.token = parsed.Token
	c.refresh = parsed.RefreshToken
	c.PlayerID = parsed.PlayerID
	return nil
}

// OwnVehicles returns the logged-in player's vehicles as markers.
func (c *Client) OwnVehicles(ctx context.Context) ([]Marker, error) {
	var parsed struct {
		Vehicles []domain.Vehicle `json:"vehicles"`
		Message  string           `json:"message"`
	}
	path := fmt.Sprintf("/api/vehicles/%d", c.PlayerID)
	if err := c.getJSON(ctx, path, &parsed); err != nil {
		return nil, err
	}

	markers := make([]Marker, 0, len(parsed.Vehicles))
	for _, v := range parsed.Vehicles {
		if !v.Coords.Valid() {
			continue
		}
		markers = append(markers, Marker{
			VehicleID: v.VehicleID,
			Type:      v.Type,
			Status:    v.Status,
			Style:     domain.StyleFor(v.Status),
			Coords:    v.Coords,
		})
	}
	return markers, nil
}

// OtherVehicles returns every other player's vehicle as a marker.
func (c *Client) OtherVehicles(ctx context.Context) ([]Marker, error) {
	var parsed struct {
		Vehicles []domain.VehicleMarker `json:"vehicles"`
		Message  string                 `json:"message"`
	}
	if err := c.getJSON(ctx, "/api/vehicles/others", &parsed); err != nil {
		return nil, err
	}

	markers := make([]Marker, 0, len(parsed.Vehicles))
	for _, v := range parsed.Vehicles {
		if !v.Coords.Valid() {
			continue
		}
		markers = append(markers, Marker{
			VehicleID: v.VehicleID,
			PlayerID:  v.PlayerID,
			Username:  v.Username,
			Type:      v.Type,
			Status:    v.Status,
			Style:     domain.StyleFor(v.Status),
			Coords:    v.Coords,
		})
	}
	return markers, nil
}

// getJSON performs an authenticated GET. On a 401 or 403 it refreshes the
// access token once and retries; a second failure is returned to the caller.
func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	status, err := c.doGet(ctx, path, out)
	if err != nil {
		return err
	}
	if status == http.StatusUnauthorized || status == http.StatusForbidden {
		if err := c.refreshToken(ctx); err != nil {
			return err
		}
		status, err = c.doGet(ctx, path, out)
		if err != nil {
			return err
		}
	}
	if status != http.StatusOK {
		return fmt.Errorf("request failed with status %d", status)
	}
	return nil
}

func (c *Client) doGet(ctx context.Context, path string, out interface{}) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+path, nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusOK {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp.StatusCode, err
		}
	}
	return resp.StatusCode, nil
}

func (c *Client) refreshToken(ctx context.Context) error {
	body, _ := json.Marshal(domain.RefreshRequest{RefreshToken: c.refresh})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/api/auth/refresh", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var parsed loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("token refresh failed: %s", parsed.Message)
	}

	c.token = parsed.Token
	c.refresh = parsed.RefreshToken
	return nil
}
