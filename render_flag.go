package chatlayout

// RenderFlag classifies content for visibility. An element declares the
// categories it belongs to; a render pass declares the categories it
// includes. The element is laid out when the two sets intersect.
type RenderFlag uint32

const (
	Misc RenderFlag = 1 << iota
	Text
	Username
	Timestamp

	TwitchEmoteImage
	TwitchEmoteText
	BttvEmoteImage
	BttvEmoteText
	FfzEmoteImage
	FfzEmoteText
	EmojiImage
	EmojiText

	BadgeGlobalAuthority
	BadgeChannelAuthority
	BadgeSubscription
	BadgeVanity

	ModeratorTools

	BitsStatic
	BitsAmount

	AlwaysShow
)

// Composite masks.
const (
	None RenderFlag = 0

	// EmoteImages selects image rendering for every emote provider.
	EmoteImages = TwitchEmoteImage | BttvEmoteImage | FfzEmoteImage | EmojiImage
	// EmoteText selects the textual form of every emote provider.
	EmoteText = TwitchEmoteText | BttvEmoteText | FfzEmoteText | EmojiText

	Badges = BadgeGlobalAuthority | BadgeChannelAuthority | BadgeSubscription | BadgeVanity

	// Default is what a chat view shows out of the box.
	Default = Misc | Text | Username | Timestamp | EmoteImages | Badges | BitsStatic | AlwaysShow
)

// RenderFlags is the flag set used by elements and render passes.
type RenderFlags = Flags[RenderFlag]
