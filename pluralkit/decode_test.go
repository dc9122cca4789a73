package pluralkit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const memberJSON = `{
	"id": "alcde",
	"uuid": "00000000-0000-0000-0000-000000000001",
	"name": "Alice",
	"created": "2020-05-01T12:30:00Z",
	"proxy_tags": [{"prefix": "a:", "suffix": null}],
	"keep_proxy": true,
	"color": "ff0000",
	"display_name": "Ali",
	"birthday": "0004-03-15",
	"pronouns": "she/her",
	"avatar_url": null,
	"banner": null,
	"description": "first member",
	"privacy": {"visibility": "private"}
}`

func TestDecodeMember(t *testing.T) {
	member, err := Decode[Member]([]byte(memberJSON), MemberSchema, nil)
	require.NoError(t, err)

	assert.Equal(t, "alcde", member.ID)
	assert.Equal(t, "Alice", member.Name)
	assert.Equal(t, time.Date(2020, 5, 1, 12, 30, 0, 0, time.UTC), member.Created.UTC())
	assert.True(t, member.KeepProxy)

	require.Len(t, member.ProxyTags, 1)
	require.NotNil(t, member.ProxyTags[0].Prefix)
	assert.Equal(t, "a:", *member.ProxyTags[0].Prefix)
	assert.Nil(t, member.ProxyTags[0].Suffix)

	require.NotNil(t, member.Birthday)
	assert.Equal(t, Date{Year: 4, Month: time.March, Day: 15}, *member.Birthday)
	assert.True(t, member.Birthday.YearHidden())

	// explicit nulls stay absent
	assert.Nil(t, member.AvatarURL)
	assert.Nil(t, member.Banner)

	// privacy levels absent from the body default to public
	require.NotNil(t, member.Privacy)
	assert.Equal(t, PrivacyPrivate, member.Privacy.Visibility)
	assert.Equal(t, PrivacyPublic, member.Privacy.NamePrivacy)
	assert.Equal(t, PrivacyPublic, member.Privacy.MetadataPrivacy)
}

func TestDecodeMissingRequiredField(t *testing.T) {
	payload := []byte(`{"id": "alcde", "uuid": "u", "created": "2020-05-01T12:30:00Z", "proxy_tags": [], "keep_proxy": false}`)

	_, err := Decode[Member](payload, MemberSchema, nil)
	require.Error(t, err)

	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, "Member", decodeErr.Schema)
	assert.Equal(t, "name", decodeErr.Field)

	// an override backfills the missing field
	member, err := Decode[Member](payload, MemberSchema, map[string]any{"name": "Alice"})
	require.NoError(t, err)
	assert.Equal(t, "Alice", member.Name)
}

func TestDecodeOverrideDoesNotReplacePresentValue(t *testing.T) {
	payload := []byte(`{"guild_id": "42", "proxying_enabled": true, "tag_enabled": false}`)

	settings, err := Decode[SystemGuildSettings](payload, SystemGuildSettingsSchema, map[string]any{"guild_id": int64(99)})
	require.NoError(t, err)
	assert.Equal(t, int64(42), settings.GuildID)
}

func TestDecodeEnumVariants(t *testing.T) {
	for _, variant := range []string{"off", "front", "latch", "member"} {
		payload := []byte(`{"autoproxy_mode": "` + variant + `"}`)
		settings, err := Decode[AutoproxySettings](payload, AutoproxySettingsSchema, map[string]any{"guild_id": int64(1)})
		require.NoError(t, err, "variant %s", variant)
		assert.Equal(t, AutoproxyMode(variant), settings.AutoproxyMode)
	}
}

func TestDecodeUnknownEnumValue(t *testing.T) {
	payload := []byte(`{"id": "alcde", "uuid": "u", "name": "Alice", "created": "2020-05-01T12:30:00Z",
		"proxy_tags": [], "keep_proxy": false, "privacy": {"visibility": "friends-only"}}`)

	_, err := Decode[Member](payload, MemberSchema, nil)
	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, "visibility", decodeErr.Field)
	assert.Contains(t, decodeErr.Error(), "friends-only")
}

func TestDecodeMalformedDate(t *testing.T) {
	payload := []byte(`{"id": "alcde", "uuid": "u", "name": "Alice", "created": "2020-05-01T12:30:00Z",
		"proxy_tags": [], "keep_proxy": false, "birthday": "March 15th"}`)

	_, err := Decode[Member](payload, MemberSchema, nil)
	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, "birthday", decodeErr.Field)
}

func TestDecodeMessageSnowflakes(t *testing.T) {
	// the API transmits snowflakes as strings; they must come back as
	// integers without precision loss
	payload := []byte(`{
		"timestamp": "2021-09-30T02:15:00Z",
		"id": "914280710211648222",
		"original": "914280710211648111",
		"sender": "466378653216014359",
		"channel": "810148011665801217",
		"guild": "558276583510946643"
	}`)

	message, err := Decode[Message](payload, MessageSchema, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(914280710211648222), message.ID)
	assert.Equal(t, int64(466378653216014359), message.Sender)
	assert.Nil(t, message.System)
	assert.Nil(t, message.Member)
}

func TestDecodeNestedRecords(t *testing.T) {
	payload := []byte(`{
		"timestamp": "2021-09-30T02:15:00Z",
		"id": "1", "original": "2", "sender": "3", "channel": "4", "guild": "5",
		"system": {"id": "exmpl", "uuid": "u", "name": "Example", "tag": "| Ex", "created": "2019-01-01T00:00:00Z"},
		"member": {"id": "alcde", "uuid": "u2", "name": "Alice", "created": "2020-05-01T12:30:00Z",
			"proxy_tags": [], "keep_proxy": false}
	}`)

	message, err := Decode[Message](payload, MessageSchema, nil)
	require.NoError(t, err)
	require.NotNil(t, message.System)
	assert.Equal(t, "Example", message.System.Name)
	require.NotNil(t, message.Member)
	assert.Equal(t, "Alice", message.Member.Name)

	// a malformed nested record fails the whole decode
	bad := []byte(`{
		"timestamp": "2021-09-30T02:15:00Z",
		"id": "1", "original": "2", "sender": "3", "channel": "4", "guild": "5",
		"system": {"id": "exmpl"}
	}`)
	_, err = Decode[Message](bad, MessageSchema, nil)
	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, "System", decodeErr.Schema)
}

func TestDecodeList(t *testing.T) {
	payload := []byte(`[
		{"id": "swtch", "timestamp": "2021-01-01T00:00:00Z", "members": ["alcde", "bbcde"]},
		{"id": "swtcg", "timestamp": "2021-01-02T00:00:00Z", "members": []}
	]`)

	switches, err := DecodeList[Switch](payload, SwitchSchema)
	require.NoError(t, err)
	require.Len(t, switches, 2)
	assert.Equal(t, []string{"alcde", "bbcde"}, switches[0].Members)
	assert.Empty(t, switches[1].Members)
}

func TestDecodeListRejectsBadElement(t *testing.T) {
	payload := []byte(`[
		{"id": "swtch", "timestamp": "2021-01-01T00:00:00Z", "members": []},
		{"id": "swtcg", "members": []}
	]`)

	_, err := DecodeList[Switch](payload, SwitchSchema)
	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, "timestamp", decodeErr.Field)
}

func TestDecodeInvalidJSON(t *testing.T) {
	_, err := Decode[System]([]byte("not json"), SystemSchema, nil)
	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
}

func TestDateRoundTrip(t *testing.T) {
	d, err := ParseDate("1995-12-24")
	require.NoError(t, err)
	assert.Equal(t, "1995-12-24", d.String())
	assert.False(t, d.YearHidden())

	encoded, err := d.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"1995-12-24"`, string(encoded))

	var decoded Date
	require.NoError(t, decoded.UnmarshalJSON(encoded))
	assert.Equal(t, d, decoded)

	_, err = ParseDate("1995-13-24")
	assert.Error(t, err)
}
