package pluralkit

import (
	"context"
	"fmt"
	"net/http"
)

// GetSystemMembers lists a system's members visible to the client.
// Returns (nil, nil) when no system matches the reference.
func (c *Client) GetSystemMembers(ctx context.Context, systemRef string) ([]Member, error) {
	data, _, err := c.request(ctx, http.MethodGet, fmt.Sprintf("systems/%s/members", systemRef), nil, nil)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return DecodeList[Member](data, MemberSchema)
}

// CreateMember creates a member in the authenticated system. The patch
// must carry a name.
func (c *Client) CreateMember(ctx context.Context, patch MemberPatch) (*Member, error) {
	if err := c.requireAuth(); err != nil {
		return nil, err
	}
	if _, ok := patch.Name.Value(); !ok {
		return nil, fmt.Errorf("member name is required")
	}
	data, _, err := c.request(ctx, http.MethodPost, "members", nil, patch.payload())
	if err != nil {
		return nil, err
	}
	return Decode[Member](data, MemberSchema, nil)
}

// GetMember retrieves a member by short ID or UUID. Returns (nil, nil)
// when no member matches the reference.
func (c *Client) GetMember(ctx context.Context, memberRef string) (*Member, error) {
	data, _, err := c.request(ctx, http.MethodGet, "members/"+memberRef, nil, nil)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return Decode[Member](data, MemberSchema, nil)
}

// UpdateMember applies a patch to a member of the authenticated system.
func (c *Client) UpdateMember(ctx context.Context, memberRef string, patch MemberPatch) (*Member, error) {
	if err := c.requireAuth(); err != nil {
		return nil, err
	}
	data, _, err := c.request(ctx, http.MethodPatch, "members/"+memberRef, nil, patch.payload())
	if err != nil {
		return nil, err
	}
	return Decode[Member](data, MemberSchema, nil)
}

// DeleteMember deletes a member of the authenticated system.
func (c *Client) DeleteMember(ctx context.Context, memberRef string) error {
	if err := c.requireAuth(); err != nil {
		return err
	}
	_, _, err := c.request(ctx, http.MethodDelete, "members/"+memberRef, nil, nil)
	return err
}

// GetMemberGroups lists the groups a member belongs to.
func (c *Client) GetMemberGroups(ctx context.Context, memberRef string) ([]Group, error) {
	data, _, err := c.request(ctx, http.MethodGet, fmt.Sprintf("members/%s/groups", memberRef), nil, nil)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return DecodeList[Group](data, GroupSchema)
}

// AddMemberToGroups adds a member to each of the given groups.
func (c *Client) AddMemberToGroups(ctx context.Context, memberRef string, groupRefs []string) error {
	return c.postMemberGroups(ctx, memberRef, "add", groupRefs)
}

// RemoveMemberFromGroups removes a member from each of the given groups.
func (c *Client) RemoveMemberFromGroups(ctx context.Context, memberRef string, groupRefs []string) error {
	return c.postMemberGroups(ctx, memberRef, "remove", groupRefs)
}

// OverwriteMemberGroups replaces a member's group list.
func (c *Client) OverwriteMemberGroups(ctx context.Context, memberRef string, groupRefs []string) error {
	return c.postMemberGroups(ctx, memberRef, "overwrite", groupRefs)
}

func (c *Client) postMemberGroups(ctx context.Context, memberRef, action string, groupRefs []string) error {
	if err := c.requireAuth(); err != nil {
		return err
	}
	if groupRefs == nil {
		groupRefs = []string{}
	}
	_, _, err := c.request(ctx, http.MethodPost, fmt.Sprintf("members/%s/groups/%s", memberRef, action), nil, groupRefs)
	return err
}

// GetMemberGuildSettings retrieves a member's settings in a guild. The
// guild ID is backfilled from the request.
func (c *Client) GetMemberGuildSettings(ctx context.Context, memberRef string, guildID int64) (*MemberGuildSettings, error) {
	if err := c.requireAuth(); err != nil {
		return nil, err
	}
	data, _, err := c.request(ctx, http.MethodGet, fmt.Sprintf("members/%s/guilds/%d", memberRef, guildID), nil, nil)
	if err != nil {
		return nil, err
	}
	return Decode[MemberGuildSettings](data, MemberGuildSettingsSchema, guildOverride(guildID))
}

// UpdateMemberGuildSettings applies a patch to a member's settings in a
// guild.
func (c *Client) UpdateMemberGuildSettings(ctx context.Context, memberRef string, guildID int64, patch MemberGuildSettingsPatch) (*MemberGuildSettings, error) {
	if err := c.requireAuth(); err != nil {
		return nil, err
	}
	data, _, err := c.request(ctx, http.MethodPatch, fmt.Sprintf("members/%s/guilds/%d", memberRef, guildID), nil, patch.payload())
	if err != nil {
		return nil, err
	}
	return Decode[MemberGuildSettings](data, MemberGuildSettingsSchema, guildOverride(guildID))
}
