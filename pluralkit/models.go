package pluralkit

import (
	"fmt"
	"time"
)

// Privacy is the visibility level of a system, member or group detail.
type Privacy string

const (
	PrivacyPublic  Privacy = "public"
	PrivacyPrivate Privacy = "private"
)

// AutoproxyMode selects how messages are proxied in a guild.
type AutoproxyMode string

const (
	AutoproxyOff    AutoproxyMode = "off"
	AutoproxyFront  AutoproxyMode = "front"
	AutoproxyLatch  AutoproxyMode = "latch"
	AutoproxyMember AutoproxyMode = "member"
)

// Date is a calendar date without a time component, used for member
// birthdays. Birthdays with a hidden year are represented by the API with
// year 0004.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// ParseDate parses an ISO-8601 calendar date (YYYY-MM-DD).
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}, nil
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// YearHidden reports whether the date uses the API's hidden-year marker.
func (d Date) YearHidden() bool {
	return d.Year == 4
}

// MarshalJSON encodes the date in the API's YYYY-MM-DD wire form.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON decodes a YYYY-MM-DD string.
func (d *Date) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("invalid date %s", data)
	}
	parsed, err := ParseDate(string(data[1 : len(data)-1]))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// System represents a PluralKit system.
type System struct {
	ID          string         `json:"id"`
	UUID        string         `json:"uuid"`
	Name        string         `json:"name"`
	Tag         string         `json:"tag"`
	Created     time.Time      `json:"created"`
	Color       *string        `json:"color,omitempty"`
	Description *string        `json:"description,omitempty"`
	Pronouns    *string        `json:"pronouns,omitempty"`
	AvatarURL   *string        `json:"avatar_url,omitempty"`
	Banner      *string        `json:"banner,omitempty"`
	Privacy     *SystemPrivacy `json:"privacy,omitempty"`
}

// SystemPrivacy holds the per-detail visibility of a system. Fields absent
// from an API response default to public.
type SystemPrivacy struct {
	DescriptionPrivacy  Privacy `json:"description_privacy"`
	MemberListPrivacy   Privacy `json:"member_list_privacy"`
	GroupListPrivacy    Privacy `json:"group_list_privacy"`
	FrontPrivacy        Privacy `json:"front_privacy"`
	FrontHistoryPrivacy Privacy `json:"front_history_privacy"`
}

// SystemSettings holds system-wide preferences.
type SystemSettings struct {
	Timezone             string `json:"timezone"`
	PingsEnabled         bool   `json:"pings_enabled"`
	LatchTimeout         *int   `json:"latch_timeout,omitempty"`
	MemberDefaultPrivate bool   `json:"member_default_private"`
	GroupDefaultPrivate  bool   `json:"group_default_private"`
	ShowPrivateInfo      bool   `json:"show_private_info"`
	MemberLimit          int    `json:"member_limit"`
	GroupLimit           int    `json:"group_limit"`
}

// SystemGuildSettings holds per-guild system settings. GuildID is not
// echoed in response bodies and is backfilled from the request.
type SystemGuildSettings struct {
	GuildID         int64   `json:"guild_id"`
	ProxyingEnabled bool    `json:"proxying_enabled"`
	Tag             *string `json:"tag,omitempty"`
	TagEnabled      bool    `json:"tag_enabled"`
}

// AutoproxySettings holds per-guild autoproxy state.
type AutoproxySettings struct {
	GuildID            int64         `json:"guild_id"`
	AutoproxyMode      AutoproxyMode `json:"autoproxy_mode"`
	AutoproxyMember    *string       `json:"autoproxy_member,omitempty"`
	LastLatchTimestamp *time.Time    `json:"last_latch_timestamp,omitempty"`
}

// ProxyTag is a prefix/suffix pair used to match proxied messages.
type ProxyTag struct {
	Prefix *string `json:"prefix,omitempty"`
	Suffix *string `json:"suffix,omitempty"`
}

// Member represents a system member.
type Member struct {
	ID          string         `json:"id"`
	UUID        string         `json:"uuid"`
	Name        string         `json:"name"`
	Created     time.Time      `json:"created"`
	ProxyTags   []ProxyTag     `json:"proxy_tags"`
	KeepProxy   bool           `json:"keep_proxy"`
	Color       *string        `json:"color,omitempty"`
	DisplayName *string        `json:"display_name,omitempty"`
	Birthday    *Date          `json:"birthday,omitempty"`
	Pronouns    *string        `json:"pronouns,omitempty"`
	AvatarURL   *string        `json:"avatar_url,omitempty"`
	Banner      *string        `json:"banner,omitempty"`
	Description *string        `json:"description,omitempty"`
	Privacy     *MemberPrivacy `json:"privacy,omitempty"`
}

// MemberPrivacy holds the per-detail visibility of a member. Fields absent
// from an API response default to public.
type MemberPrivacy struct {
	Visibility         Privacy `json:"visibility"`
	NamePrivacy        Privacy `json:"name_privacy"`
	DescriptionPrivacy Privacy `json:"description_privacy"`
	BirthdayPrivacy    Privacy `json:"birthday_privacy"`
	PronounPrivacy     Privacy `json:"pronoun_privacy"`
	AvatarPrivacy      Privacy `json:"avatar_privacy"`
	MetadataPrivacy    Privacy `json:"metadata_privacy"`
}

// MemberGuildSettings holds per-guild member settings. GuildID is
// backfilled from the request.
type MemberGuildSettings struct {
	GuildID     int64   `json:"guild_id"`
	DisplayName *string `json:"display_name,omitempty"`
	AvatarURL   *string `json:"avatar_url,omitempty"`
}

// Group represents a member group.
type Group struct {
	ID          string        `json:"id"`
	UUID        string        `json:"uuid"`
	Name        string        `json:"name"`
	Created     time.Time     `json:"created"`
	DisplayName *string       `json:"display_name,omitempty"`
	Description *string       `json:"description,omitempty"`
	Icon        *string       `json:"icon,omitempty"`
	Banner      *string       `json:"banner,omitempty"`
	Color       *string       `json:"color,omitempty"`
	Privacy     *GroupPrivacy `json:"privacy,omitempty"`
	// Members holds member UUIDs and is only populated when groups are
	// listed with members included.
	Members []string `json:"members,omitempty"`
}

// GroupPrivacy holds the per-detail visibility of a group. Fields absent
// from an API response default to public.
type GroupPrivacy struct {
	NamePrivacy        Privacy `json:"name_privacy"`
	DescriptionPrivacy Privacy `json:"description_privacy"`
	IconPrivacy        Privacy `json:"icon_privacy"`
	ListPrivacy        Privacy `json:"list_privacy"`
	MetadataPrivacy    Privacy `json:"metadata_privacy"`
	Visibility         Privacy `json:"visibility"`
}

// Switch is a front switch with members as short IDs.
type Switch struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Members   []string  `json:"members"`
}

// Fronters is the current front with members expanded to full records.
type Fronters struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Members   []Member  `json:"members"`
}

// Message links a proxied Discord message back to its sender.
type Message struct {
	Timestamp time.Time `json:"timestamp"`
	ID        int64     `json:"id"`
	Original  int64     `json:"original"`
	Sender    int64     `json:"sender"`
	Channel   int64     `json:"channel"`
	Guild     int64     `json:"guild"`
	System    *System   `json:"system,omitempty"`
	Member    *Member   `json:"member,omitempty"`
}
