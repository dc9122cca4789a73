package pluralkit

import (
	"context"
	"net/http"
	"strconv"
)

// GetMessage looks up a proxied message (or the original that triggered
// it) by Discord message ID. Returns (nil, nil) when the message is not
// known to the API.
func (c *Client) GetMessage(ctx context.Context, messageID int64) (*Message, error) {
	data, _, err := c.request(ctx, http.MethodGet, "messages/"+strconv.FormatInt(messageID, 10), nil, nil)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return Decode[Message](data, MessageSchema, nil)
}
