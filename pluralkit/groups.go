package pluralkit

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// GetSystemGroups lists a system's groups visible to the client. With
// withMembers set, each group's Members field carries its member UUIDs.
// Returns (nil, nil) when no system matches the reference.
func (c *Client) GetSystemGroups(ctx context.Context, systemRef string, withMembers bool) ([]Group, error) {
	var query url.Values
	if withMembers {
		query = url.Values{"with_members": {"true"}}
	}
	data, _, err := c.request(ctx, http.MethodGet, fmt.Sprintf("systems/%s/groups", systemRef), query, nil)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return DecodeList[Group](data, GroupSchema)
}

// CreateGroup creates a group in the authenticated system. The patch must
// carry a name.
func (c *Client) CreateGroup(ctx context.Context, patch GroupPatch) (*Group, error) {
	if err := c.requireAuth(); err != nil {
		return nil, err
	}
	if _, ok := patch.Name.Value(); !ok {
		return nil, fmt.Errorf("group name is required")
	}
	data, _, err := c.request(ctx, http.MethodPost, "groups", nil, patch.payload())
	if err != nil {
		return nil, err
	}
	return Decode[Group](data, GroupSchema, nil)
}

// GetGroup retrieves a group by short ID or UUID. Returns (nil, nil) when
// no group matches the reference.
func (c *Client) GetGroup(ctx context.Context, groupRef string) (*Group, error) {
	data, _, err := c.request(ctx, http.MethodGet, "groups/"+groupRef, nil, nil)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return Decode[Group](data, GroupSchema, nil)
}

// UpdateGroup applies a patch to a group of the authenticated system.
func (c *Client) UpdateGroup(ctx context.Context, groupRef string, patch GroupPatch) (*Group, error) {
	if err := c.requireAuth(); err != nil {
		return nil, err
	}
	data, _, err := c.request(ctx, http.MethodPatch, "groups/"+groupRef, nil, patch.payload())
	if err != nil {
		return nil, err
	}
	return Decode[Group](data, GroupSchema, nil)
}

// DeleteGroup deletes a group of the authenticated system.
func (c *Client) DeleteGroup(ctx context.Context, groupRef string) error {
	if err := c.requireAuth(); err != nil {
		return err
	}
	_, _, err := c.request(ctx, http.MethodDelete, "groups/"+groupRef, nil, nil)
	return err
}

// GetGroupMembers lists the members of a group.
func (c *Client) GetGroupMembers(ctx context.Context, groupRef string) ([]Member, error) {
	data, _, err := c.request(ctx, http.MethodGet, fmt.Sprintf("groups/%s/members", groupRef), nil, nil)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return DecodeList[Member](data, MemberSchema)
}

// AddMembersToGroup adds each of the given members to a group.
func (c *Client) AddMembersToGroup(ctx context.Context, groupRef string, memberRefs []string) error {
	return c.postGroupMembers(ctx, groupRef, "add", memberRefs)
}

// RemoveMembersFromGroup removes each of the given members from a group.
func (c *Client) RemoveMembersFromGroup(ctx context.Context, groupRef string, memberRefs []string) error {
	return c.postGroupMembers(ctx, groupRef, "remove", memberRefs)
}

// OverwriteGroupMembers replaces a group's member list.
func (c *Client) OverwriteGroupMembers(ctx context.Context, groupRef string, memberRefs []string) error {
	return c.postGroupMembers(ctx, groupRef, "overwrite", memberRefs)
}

func (c *Client) postGroupMembers(ctx context.Context, groupRef, action string, memberRefs []string) error {
	if err := c.requireAuth(); err != nil {
		return err
	}
	if memberRefs == nil {
		memberRefs = []string{}
	}
	_, _, err := c.request(ctx, http.MethodPost, fmt.Sprintf("groups/%s/members/%s", groupRef, action), nil, memberRefs)
	return err
}
