package pluralkit

// Schema registry for every record kind the API returns. Schemas are
// process-wide constants; endpoint methods pair each response with the
// schema for its expected record kind.

var privacyVariants = []string{string(PrivacyPublic), string(PrivacyPrivate)}

var autoproxyVariants = []string{
	string(AutoproxyOff),
	string(AutoproxyFront),
	string(AutoproxyLatch),
	string(AutoproxyMember),
}

func privacyField(name string) Field {
	return Field{Name: name, Kind: KindEnum, Variants: privacyVariants}
}

func privacyDefaults(names ...string) map[string]any {
	defaults := make(map[string]any, len(names))
	for _, name := range names {
		defaults[name] = string(PrivacyPublic)
	}
	return defaults
}

var SystemPrivacySchema = &Schema{
	Name: "SystemPrivacy",
	Fields: []Field{
		privacyField("description_privacy"),
		privacyField("member_list_privacy"),
		privacyField("group_list_privacy"),
		privacyField("front_privacy"),
		privacyField("front_history_privacy"),
	},
	Defaults: privacyDefaults(
		"description_privacy", "member_list_privacy", "group_list_privacy",
		"front_privacy", "front_history_privacy",
	),
}

var MemberPrivacySchema = &Schema{
	Name: "MemberPrivacy",
	Fields: []Field{
		privacyField("visibility"),
		privacyField("name_privacy"),
		privacyField("description_privacy"),
		privacyField("birthday_privacy"),
		privacyField("pronoun_privacy"),
		privacyField("avatar_privacy"),
		privacyField("metadata_privacy"),
	},
	Defaults: privacyDefaults(
		"visibility", "name_privacy", "description_privacy", "birthday_privacy",
		"pronoun_privacy", "avatar_privacy", "metadata_privacy",
	),
}

var GroupPrivacySchema = &Schema{
	Name: "GroupPrivacy",
	Fields: []Field{
		privacyField("name_privacy"),
		privacyField("description_privacy"),
		privacyField("icon_privacy"),
		privacyField("list_privacy"),
		privacyField("metadata_privacy"),
		privacyField("visibility"),
	},
	Defaults: privacyDefaults(
		"name_privacy", "description_privacy", "icon_privacy", "list_privacy",
		"metadata_privacy", "visibility",
	),
}

var SystemSchema = &Schema{
	Name: "System",
	Fields: []Field{
		{Name: "id", Kind: KindString, Required: true},
		{Name: "uuid", Kind: KindString, Required: true},
		{Name: "name", Kind: KindString, Required: true},
		{Name: "tag", Kind: KindString, Required: true},
		{Name: "created", Kind: KindTimestamp, Required: true},
		{Name: "color", Kind: KindString},
		{Name: "description", Kind: KindString},
		{Name: "pronouns", Kind: KindString},
		{Name: "avatar_url", Kind: KindString},
		{Name: "banner", Kind: KindString},
		{Name: "privacy", Kind: KindObject, Elem: SystemPrivacySchema},
	},
}

var ProxyTagSchema = &Schema{
	Name: "ProxyTag",
	Fields: []Field{
		{Name: "prefix", Kind: KindString},
		{Name: "suffix", Kind: KindString},
	},
}

var MemberSchema = &Schema{
	Name: "Member",
	Fields: []Field{
		{Name: "id", Kind: KindString, Required: true},
		{Name: "uuid", Kind: KindString, Required: true},
		{Name: "name", Kind: KindString, Required: true},
		{Name: "created", Kind: KindTimestamp, Required: true},
		{Name: "proxy_tags", Kind: KindList, Elem: ProxyTagSchema, Required: true},
		{Name: "keep_proxy", Kind: KindBool, Required: true},
		{Name: "color", Kind: KindString},
		{Name: "display_name", Kind: KindString},
		{Name: "birthday", Kind: KindDate},
		{Name: "pronouns", Kind: KindString},
		{Name: "avatar_url", Kind: KindString},
		{Name: "banner", Kind: KindString},
		{Name: "description", Kind: KindString},
		{Name: "privacy", Kind: KindObject, Elem: MemberPrivacySchema},
	},
}

var GroupSchema = &Schema{
	Name: "Group",
	Fields: []Field{
		{Name: "id", Kind: KindString, Required: true},
		{Name: "uuid", Kind: KindString, Required: true},
		{Name: "name", Kind: KindString, Required: true},
		{Name: "created", Kind: KindTimestamp, Required: true},
		{Name: "display_name", Kind: KindString},
		{Name: "description", Kind: KindString},
		{Name: "icon", Kind: KindString},
		{Name: "banner", Kind: KindString},
		{Name: "color", Kind: KindString},
		{Name: "privacy", Kind: KindObject, Elem: GroupPrivacySchema},
		{Name: "members", Kind: KindList, ElemKind: KindString},
	},
}

var SwitchSchema = &Schema{
	Name: "Switch",
	Fields: []Field{
		{Name: "id", Kind: KindString, Required: true},
		{Name: "timestamp", Kind: KindTimestamp, Required: true},
		{Name: "members", Kind: KindList, ElemKind: KindString, Required: true},
	},
}

var FrontersSchema = &Schema{
	Name: "Fronters",
	Fields: []Field{
		{Name: "id", Kind: KindString, Required: true},
		{Name: "timestamp", Kind: KindTimestamp, Required: true},
		{Name: "members", Kind: KindList, Elem: MemberSchema, Required: true},
	},
}

var MessageSchema = &Schema{
	Name: "Message",
	Fields: []Field{
		{Name: "timestamp", Kind: KindTimestamp, Required: true},
		{Name: "id", Kind: KindInt, Required: true},
		{Name: "original", Kind: KindInt, Required: true},
		{Name: "sender", Kind: KindInt, Required: true},
		{Name: "channel", Kind: KindInt, Required: true},
		{Name: "guild", Kind: KindInt, Required: true},
		{Name: "system", Kind: KindObject, Elem: SystemSchema},
		{Name: "member", Kind: KindObject, Elem: MemberSchema},
	},
}

var SystemSettingsSchema = &Schema{
	Name: "SystemSettings",
	Fields: []Field{
		{Name: "timezone", Kind: KindString, Required: true},
		{Name: "pings_enabled", Kind: KindBool, Required: true},
		{Name: "latch_timeout", Kind: KindInt},
		{Name: "member_default_private", Kind: KindBool, Required: true},
		{Name: "group_default_private", Kind: KindBool, Required: true},
		{Name: "show_private_info", Kind: KindBool, Required: true},
		{Name: "member_limit", Kind: KindInt, Required: true},
		{Name: "group_limit", Kind: KindInt, Required: true},
	},
}

var SystemGuildSettingsSchema = &Schema{
	Name: "SystemGuildSettings",
	Fields: []Field{
		// not echoed by the API; backfilled from the request path
		{Name: "guild_id", Kind: KindInt, Required: true},
		{Name: "proxying_enabled", Kind: KindBool, Required: true},
		{Name: "tag", Kind: KindString},
		{Name: "tag_enabled", Kind: KindBool, Required: true},
	},
}

var MemberGuildSettingsSchema = &Schema{
	Name: "MemberGuildSettings",
	Fields: []Field{
		{Name: "guild_id", Kind: KindInt, Required: true},
		{Name: "display_name", Kind: KindString},
		{Name: "avatar_url", Kind: KindString},
	},
}

var AutoproxySettingsSchema = &Schema{
	Name: "AutoproxySettings",
	Fields: []Field{
		{Name: "guild_id", Kind: KindInt, Required: true},
		{Name: "autoproxy_mode", Kind: KindEnum, Variants: autoproxyVariants, Required: true},
		{Name: "autoproxy_member", Kind: KindString},
		{Name: "last_latch_timestamp", Kind: KindTimestamp},
	},
}
