package pluralkit

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"
)

// SystemExport bundles the records of one system that are visible to the
// client.
type SystemExport struct {
	System   *System   `json:"system"`
	Members  []Member  `json:"members"`
	Groups   []Group   `json:"groups"`
	Fronters *Fronters `json:"fronters,omitempty"`
}

// ExportSystem fetches a system together with its members, groups and
// current fronters. The four requests run concurrently and drain through
// the client's shared rate-limit bucket. Returns (nil, nil) when no
// system matches the reference.
func (c *Client) ExportSystem(ctx context.Context, systemRef string) (*SystemExport, error) {
	out := &SystemExport{}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		system, err := c.GetSystem(ctx, systemRef)
		out.System = system
		return err
	})
	g.Go(func() error {
		members, err := c.GetSystemMembers(ctx, systemRef)
		out.Members = members
		return err
	})
	g.Go(func() error {
		groups, err := c.GetSystemGroups(ctx, systemRef, true)
		out.Groups = groups
		return err
	})
	g.Go(func() error {
		fronters, err := c.GetFronters(ctx, systemRef)
		if err != nil {
			var apiErr *APIError
			// front visibility may be private; leave the field empty
			if errors.As(err, &apiErr) && apiErr.IsUnauthorized() {
				return nil
			}
			return err
		}
		out.Fronters = fronters
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if out.System == nil {
		return nil, nil
	}
	return out, nil
}
