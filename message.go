package chatlayout

import (
	"image/color"
	"strings"
	"time"
)

// Message is a chat message as an ordered sequence of elements.
type Message struct {
	ID       string
	Channel  string
	Sender   string
	Time     time.Time
	Elements []Element
}

// Layout lays the message out into lines of width pixels at scale. The
// width of a space in the default chat font is charged between elements
// unless opts override it.
func (m *Message) Layout(width int, scale float64, rc RenderContext, opts ...ContainerOption) (*Container, error) {
	if rc.Fonts != nil && scale > 0 {
		space, _ := rc.Fonts.Measure(" ", FontChatMedium, scale)
		opts = append([]ContainerOption{WithSpaceWidth(space)}, opts...)
	}
	c, err := NewContainer(width, scale, opts...)
	if err != nil {
		return nil, err
	}
	for _, e := range m.Elements {
		e.AddToContainer(c, rc)
	}
	return c, nil
}

// ChatLine is a received chat message before it is turned into elements.
type ChatLine struct {
	ID          string
	Channel     string
	Sender      string
	DisplayName string
	Text        string
	Time        time.Time

	// Color is the sender's name color. HasColor is false when the sender
	// never picked one.
	Color    color.RGBA
	HasColor bool

	// Action marks a "/me" message, shown in the sender's color.
	Action bool

	Badges []ImageRef
}

// Builder turns chat lines into messages.
type Builder struct {
	// Emotes resolves words to emotes. Nil disables emote substitution.
	Emotes EmoteSource

	// ModeratorTools adds a moderation element after the timestamp.
	ModeratorTools bool
}

// Build returns the message for line: timestamp, moderation tools, badges,
// the sender's name, then the body word by word.
func (b Builder) Build(line ChatLine) Message {
	m := Message{
		ID:      line.ID,
		Channel: line.Channel,
		Sender:  line.Sender,
		Time:    line.Time,
	}
	m.Elements = append(m.Elements, NewTimestampElement(line.Time))
	if b.ModeratorTools {
		m.Elements = append(m.Elements, NewModerationElement())
	}
	for _, badge := range line.Badges {
		m.Elements = append(m.Elements, NewImageElement(badge, NewFlags(Badges)))
	}

	nameColor := TextColor
	if line.HasColor {
		nameColor = CustomColor(line.Color)
	}
	name := line.DisplayName
	if name == "" {
		name = line.Sender
	}
	if !line.Action {
		name += ":"
	}
	username := NewTextElement(name, NewFlags(Username), nameColor, FontChatMediumBold)
	username.SetLink(Link{Kind: LinkUserInfo, Value: line.Sender})
	m.Elements = append(m.Elements, username)

	bodyColor := TextColor
	if line.Action {
		bodyColor = nameColor
	}
	for _, word := range strings.Split(line.Text, " ") {
		if word == "" {
			continue
		}
		m.Elements = append(m.Elements, b.word(word, bodyColor))
	}
	return m
}

func (b Builder) word(word string, body MessageColor) Element {
	if b.Emotes != nil {
		if emote, ok := b.Emotes.Emote(word); ok {
			return NewEmoteElement(emote, NewFlags(TwitchEmoteImage, TwitchEmoteText))
		}
	}
	switch {
	case isURL(word):
		e := NewTextElement(word, NewFlags(Text), LinkColor, FontChatMedium)
		e.SetLink(Link{Kind: LinkURL, Value: word})
		return e
	case len(word) > 1 && word[0] == '@':
		e := NewTextElement(word, NewFlags(Text), body, FontChatMediumBold)
		e.SetLink(Link{Kind: LinkUserInfo, Value: strings.TrimRight(word[1:], ",.:!?")})
		return e
	default:
		return NewTextElement(word, NewFlags(Text), body, FontChatMedium)
	}
}

func isURL(word string) bool {
	return strings.HasPrefix(word, "https://") || strings.HasPrefix(word, "http://")
}
