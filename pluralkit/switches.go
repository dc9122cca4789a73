package pluralkit

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// GetSwitches retrieves a page of a system's switch history, newest
// first. A zero before time starts from the present; limit caps the page
// size (the API returns at most 100). The caller pages by passing the
// timestamp of the last returned switch as the next before value; the
// client never walks pages on its own.
func (c *Client) GetSwitches(ctx context.Context, systemRef string, before time.Time, limit int) ([]Switch, error) {
	query := url.Values{}
	if !before.IsZero() {
		query.Set("before", before.UTC().Format(time.RFC3339))
	}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}
	data, _, err := c.request(ctx, http.MethodGet, fmt.Sprintf("systems/%s/switches", systemRef), query, nil)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return DecodeList[Switch](data, SwitchSchema)
}

// GetFronters retrieves a system's current fronters. Returns (nil, nil)
// when the system does not exist or has no registered switches.
func (c *Client) GetFronters(ctx context.Context, systemRef string) (*Fronters, error) {
	data, status, err := c.request(ctx, http.MethodGet, fmt.Sprintf("systems/%s/fronters", systemRef), nil, nil)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	if status == http.StatusNoContent || len(data) == 0 {
		return nil, nil
	}
	return Decode[Fronters](data, FrontersSchema, nil)
}

// CreateSwitch logs a new switch with the given members fronting. A zero
// timestamp means now.
func (c *Client) CreateSwitch(ctx context.Context, memberRefs []string, timestamp time.Time) (*Switch, error) {
	if err := c.requireAuth(); err != nil {
		return nil, err
	}
	if memberRefs == nil {
		memberRefs = []string{}
	}
	payload := map[string]any{"members": memberRefs}
	if !timestamp.IsZero() {
		payload["timestamp"] = timestamp.UTC().Format(time.RFC3339)
	}
	data, _, err := c.request(ctx, http.MethodPost, fmt.Sprintf("systems/%s/switches", SelfRef), nil, payload)
	if err != nil {
		return nil, err
	}
	return Decode[Switch](data, SwitchSchema, nil)
}

// GetSwitch retrieves a single switch by its UUID. Returns (nil, nil)
// when no switch matches.
func (c *Client) GetSwitch(ctx context.Context, systemRef, switchRef string) (*Switch, error) {
	data, _, err := c.request(ctx, http.MethodGet, fmt.Sprintf("systems/%s/switches/%s", systemRef, switchRef), nil, nil)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return Decode[Switch](data, SwitchSchema, nil)
}

// UpdateSwitch moves a switch's timestamp.
func (c *Client) UpdateSwitch(ctx context.Context, switchRef string, timestamp time.Time) (*Switch, error) {
	if err := c.requireAuth(); err != nil {
		return nil, err
	}
	payload := map[string]any{"timestamp": timestamp.UTC().Format(time.RFC3339)}
	data, _, err := c.request(ctx, http.MethodPatch, fmt.Sprintf("systems/%s/switches/%s", SelfRef, switchRef), nil, payload)
	if err != nil {
		return nil, err
	}
	return Decode[Switch](data, SwitchSchema, nil)
}

// UpdateSwitchMembers replaces the member list of a switch.
func (c *Client) UpdateSwitchMembers(ctx context.Context, switchRef string, memberRefs []string) (*Switch, error) {
	if err := c.requireAuth(); err != nil {
		return nil, err
	}
	if memberRefs == nil {
		memberRefs = []string{}
	}
	data, _, err := c.request(ctx, http.MethodPatch, fmt.Sprintf("systems/%s/switches/%s/members", SelfRef, switchRef), nil, memberRefs)
	if err != nil {
		return nil, err
	}
	return Decode[Switch](data, SwitchSchema, nil)
}

// DeleteSwitch deletes a switch from the authenticated system's history.
func (c *Client) DeleteSwitch(ctx context.Context, switchRef string) error {
	if err := c.requireAuth(); err != nil {
		return err
	}
	_, _, err := c.request(ctx, http.MethodDelete, fmt.Sprintf("systems/%s/switches/%s", SelfRef, switchRef), nil, nil)
	return err
}
