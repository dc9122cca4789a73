package pluralkit

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// SelfRef refers to the system of the authenticated token.
const SelfRef = "@me"

// GetSystem retrieves a system. The reference may be a 5-character system
// ID, a system UUID, a linked Discord account ID or SelfRef. Returns
// (nil, nil) when no system matches the reference.
func (c *Client) GetSystem(ctx context.Context, systemRef string) (*System, error) {
	data, _, err := c.request(ctx, http.MethodGet, "systems/"+systemRef, nil, nil)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return Decode[System](data, SystemSchema, nil)
}

// UpdateSystem applies a patch to the authenticated system.
func (c *Client) UpdateSystem(ctx context.Context, systemRef string, patch SystemPatch) (*System, error) {
	if err := c.requireAuth(); err != nil {
		return nil, err
	}
	data, _, err := c.request(ctx, http.MethodPatch, "systems/"+systemRef, nil, patch.payload())
	if err != nil {
		return nil, err
	}
	return Decode[System](data, SystemSchema, nil)
}

// GetSystemSettings retrieves a system's settings.
func (c *Client) GetSystemSettings(ctx context.Context, systemRef string) (*SystemSettings, error) {
	data, _, err := c.request(ctx, http.MethodGet, fmt.Sprintf("systems/%s/settings", systemRef), nil, nil)
	if err != nil {
		return nil, err
	}
	return Decode[SystemSettings](data, SystemSettingsSchema, nil)
}

// UpdateSystemSettings applies a patch to the authenticated system's
// settings.
func (c *Client) UpdateSystemSettings(ctx context.Context, systemRef string, patch SystemSettingsPatch) (*SystemSettings, error) {
	if err := c.requireAuth(); err != nil {
		return nil, err
	}
	data, _, err := c.request(ctx, http.MethodPatch, fmt.Sprintf("systems/%s/settings", systemRef), nil, patch.payload())
	if err != nil {
		return nil, err
	}
	return Decode[SystemSettings](data, SystemSettingsSchema, nil)
}

// GetSystemGuildSettings retrieves the authenticated system's settings in
// a guild. The response body does not echo the guild ID, so it is
// backfilled from the request.
func (c *Client) GetSystemGuildSettings(ctx context.Context, guildID int64) (*SystemGuildSettings, error) {
	if err := c.requireAuth(); err != nil {
		return nil, err
	}
	data, _, err := c.request(ctx, http.MethodGet, fmt.Sprintf("systems/%s/guilds/%d", SelfRef, guildID), nil, nil)
	if err != nil {
		return nil, err
	}
	return Decode[SystemGuildSettings](data, SystemGuildSettingsSchema, guildOverride(guildID))
}

// UpdateSystemGuildSettings applies a patch to the authenticated system's
// settings in a guild.
func (c *Client) UpdateSystemGuildSettings(ctx context.Context, guildID int64, patch SystemGuildSettingsPatch) (*SystemGuildSettings, error) {
	if err := c.requireAuth(); err != nil {
		return nil, err
	}
	data, _, err := c.request(ctx, http.MethodPatch, fmt.Sprintf("systems/%s/guilds/%d", SelfRef, guildID), nil, patch.payload())
	if err != nil {
		return nil, err
	}
	return Decode[SystemGuildSettings](data, SystemGuildSettingsSchema, guildOverride(guildID))
}

// GetAutoproxySettings retrieves the authenticated system's autoproxy
// state in a guild.
func (c *Client) GetAutoproxySettings(ctx context.Context, guildID int64) (*AutoproxySettings, error) {
	if err := c.requireAuth(); err != nil {
		return nil, err
	}
	query := url.Values{"guild_id": {strconv.FormatInt(guildID, 10)}}
	data, _, err := c.request(ctx, http.MethodGet, fmt.Sprintf("systems/%s/autoproxy", SelfRef), query, nil)
	if err != nil {
		return nil, err
	}
	return Decode[AutoproxySettings](data, AutoproxySettingsSchema, guildOverride(guildID))
}

// UpdateAutoproxySettings applies a patch to the authenticated system's
// autoproxy state in a guild.
func (c *Client) UpdateAutoproxySettings(ctx context.Context, guildID int64, patch AutoproxyPatch) (*AutoproxySettings, error) {
	if err := c.requireAuth(); err != nil {
		return nil, err
	}
	query := url.Values{"guild_id": {strconv.FormatInt(guildID, 10)}}
	data, _, err := c.request(ctx, http.MethodPatch, fmt.Sprintf("systems/%s/autoproxy", SelfRef), query, patch.payload())
	if err != nil {
		return nil, err
	}
	return Decode[AutoproxySettings](data, AutoproxySettingsSchema, guildOverride(guildID))
}

func guildOverride(guildID int64) map[string]any {
	return map[string]any{"guild_id": guildID}
}
