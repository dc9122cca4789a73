package pluralkit

// Patch types build PATCH (and create) payloads. Every field is an
// Omittable tri-state: the API treats an omitted key as "leave unchanged"
// and a present null as "clear this field", so the two must never be
// conflated.

// wireFlattener is implemented by nested structures that flatten
// themselves into a wire payload, replacing enums with their wire strings.
type wireFlattener interface {
	wire() map[string]any
}

func putObject[T wireFlattener](payload map[string]any, key string, o Omittable[T]) {
	switch {
	case !o.set:
	case o.null:
		payload[key] = nil
	default:
		payload[key] = o.value.wire()
	}
}

func (p SystemPrivacy) wire() map[string]any {
	out := make(map[string]any)
	putPrivacy(out, "description_privacy", p.DescriptionPrivacy)
	putPrivacy(out, "member_list_privacy", p.MemberListPrivacy)
	putPrivacy(out, "group_list_privacy", p.GroupListPrivacy)
	putPrivacy(out, "front_privacy", p.FrontPrivacy)
	putPrivacy(out, "front_history_privacy", p.FrontHistoryPrivacy)
	return out
}

func (p MemberPrivacy) wire() map[string]any {
	out := make(map[string]any)
	putPrivacy(out, "visibility", p.Visibility)
	putPrivacy(out, "name_privacy", p.NamePrivacy)
	putPrivacy(out, "description_privacy", p.DescriptionPrivacy)
	putPrivacy(out, "birthday_privacy", p.BirthdayPrivacy)
	putPrivacy(out, "pronoun_privacy", p.PronounPrivacy)
	putPrivacy(out, "avatar_privacy", p.AvatarPrivacy)
	putPrivacy(out, "metadata_privacy", p.MetadataPrivacy)
	return out
}

func (p GroupPrivacy) wire() map[string]any {
	out := make(map[string]any)
	putPrivacy(out, "name_privacy", p.NamePrivacy)
	putPrivacy(out, "description_privacy", p.DescriptionPrivacy)
	putPrivacy(out, "icon_privacy", p.IconPrivacy)
	putPrivacy(out, "list_privacy", p.ListPrivacy)
	putPrivacy(out, "metadata_privacy", p.MetadataPrivacy)
	putPrivacy(out, "visibility", p.Visibility)
	return out
}

// putPrivacy skips zero-valued levels so a partially filled privacy block
// only touches the levels the caller set.
func putPrivacy(payload map[string]any, key string, v Privacy) {
	if v != "" {
		payload[key] = string(v)
	}
}

// SystemPatch is the update payload for a system.
type SystemPatch struct {
	Name        Omittable[string]
	Tag         Omittable[string]
	Color       Omittable[string]
	Description Omittable[string]
	Pronouns    Omittable[string]
	AvatarURL   Omittable[string]
	Banner      Omittable[string]
	Privacy     Omittable[SystemPrivacy]
}

func (p SystemPatch) payload() map[string]any {
	out := make(map[string]any)
	putField(out, "name", p.Name)
	putField(out, "tag", p.Tag)
	putField(out, "color", p.Color)
	putField(out, "description", p.Description)
	putField(out, "pronouns", p.Pronouns)
	putField(out, "avatar_url", p.AvatarURL)
	putField(out, "banner", p.Banner)
	putObject(out, "privacy", p.Privacy)
	return out
}

// MemberPatch is the payload for creating or updating a member. Name is
// required when creating.
type MemberPatch struct {
	Name        Omittable[string]
	DisplayName Omittable[string]
	Color       Omittable[string]
	Birthday    Omittable[Date]
	Pronouns    Omittable[string]
	AvatarURL   Omittable[string]
	Banner      Omittable[string]
	Description Omittable[string]
	ProxyTags   Omittable[[]ProxyTag]
	KeepProxy   Omittable[bool]
	Privacy     Omittable[MemberPrivacy]
}

func (p MemberPatch) payload() map[string]any {
	out := make(map[string]any)
	putField(out, "name", p.Name)
	putField(out, "display_name", p.DisplayName)
	putField(out, "color", p.Color)
	putField(out, "birthday", p.Birthday)
	putField(out, "pronouns", p.Pronouns)
	putField(out, "avatar_url", p.AvatarURL)
	putField(out, "banner", p.Banner)
	putField(out, "description", p.Description)
	putField(out, "proxy_tags", p.ProxyTags)
	putField(out, "keep_proxy", p.KeepProxy)
	putObject(out, "privacy", p.Privacy)
	return out
}

// GroupPatch is the payload for creating or updating a group. Name is
// required when creating.
type GroupPatch struct {
	Name        Omittable[string]
	DisplayName Omittable[string]
	Description Omittable[string]
	Icon        Omittable[string]
	Banner      Omittable[string]
	Color       Omittable[string]
	Privacy     Omittable[GroupPrivacy]
}

func (p GroupPatch) payload() map[string]any {
	out := make(map[string]any)
	putField(out, "name", p.Name)
	putField(out, "display_name", p.DisplayName)
	putField(out, "description", p.Description)
	putField(out, "icon", p.Icon)
	putField(out, "banner", p.Banner)
	putField(out, "color", p.Color)
	putObject(out, "privacy", p.Privacy)
	return out
}

// SystemSettingsPatch is the update payload for system settings.
type SystemSettingsPatch struct {
	Timezone             Omittable[string]
	PingsEnabled         Omittable[bool]
	LatchTimeout         Omittable[int]
	MemberDefaultPrivate Omittable[bool]
	GroupDefaultPrivate  Omittable[bool]
	ShowPrivateInfo      Omittable[bool]
}

func (p SystemSettingsPatch) payload() map[string]any {
	out := make(map[string]any)
	putField(out, "timezone", p.Timezone)
	putField(out, "pings_enabled", p.PingsEnabled)
	putField(out, "latch_timeout", p.LatchTimeout)
	putField(out, "member_default_private", p.MemberDefaultPrivate)
	putField(out, "group_default_private", p.GroupDefaultPrivate)
	putField(out, "show_private_info", p.ShowPrivateInfo)
	return out
}

// SystemGuildSettingsPatch is the update payload for per-guild system
// settings.
type SystemGuildSettingsPatch struct {
	ProxyingEnabled Omittable[bool]
	Tag             Omittable[string]
	TagEnabled      Omittable[bool]
}

func (p SystemGuildSettingsPatch) payload() map[string]any {
	out := make(map[string]any)
	putField(out, "proxying_enabled", p.ProxyingEnabled)
	putField(out, "tag", p.Tag)
	putField(out, "tag_enabled", p.TagEnabled)
	return out
}

// AutoproxyPatch is the update payload for per-guild autoproxy settings.
type AutoproxyPatch struct {
	Mode   Omittable[AutoproxyMode]
	Member Omittable[string]
}

func (p AutoproxyPatch) payload() map[string]any {
	out := make(map[string]any)
	if mode, ok := p.Mode.Value(); ok {
		out["autoproxy_mode"] = string(mode)
	} else if p.Mode.IsNull() {
		out["autoproxy_mode"] = nil
	}
	putField(out, "autoproxy_member", p.Member)
	return out
}

// MemberGuildSettingsPatch is the update payload for per-guild member
// settings.
type MemberGuildSettingsPatch struct {
	DisplayName Omittable[string]
	AvatarURL   Omittable[string]
}

func (p MemberGuildSettingsPatch) payload() map[string]any {
	out := make(map[string]any)
	putField(out, "display_name", p.DisplayName)
	putField(out, "avatar_url", p.AvatarURL)
	return out
}
