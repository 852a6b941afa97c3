package json

import (
	"fmt"
	"image/color"

	"github.com/fwojciec/chatlayout"
)

// elementDTO is the JSON representation of a LayoutElement with a type
// discriminator for its backing.
type elementDTO struct {
	Type          string   `json:"type"`
	X             int      `json:"x"`
	Y             int      `json:"y"`
	Width         int      `json:"width"`
	Height        int      `json:"height"`
	TrailingSpace bool     `json:"trailing_space,omitempty"`
	Link          *linkDTO `json:"link,omitempty"`
	Image         *string  `json:"image,omitempty"`
	Text          *string  `json:"text,omitempty"`
	Color         *string  `json:"color,omitempty"`
	Style         *int     `json:"style,omitempty"`
	Line1         *string  `json:"line1,omitempty"`
	Line2         *string  `json:"line2,omitempty"`
	Scale         *float64 `json:"scale,omitempty"`
}

type linkDTO struct {
	Kind  string `json:"kind"`
	Value string `json:"value"`
}

var linkKinds = map[string]chatlayout.LinkKind{
	chatlayout.LinkURL.String():        chatlayout.LinkURL,
	chatlayout.LinkUserInfo.String():   chatlayout.LinkUserInfo,
	chatlayout.LinkUserAction.String(): chatlayout.LinkUserAction,
	chatlayout.LinkInsertText.String(): chatlayout.LinkInsertText,
}

func marshalElement(e chatlayout.LayoutElement) (elementDTO, error) {
	dto := elementDTO{
		X:             e.X,
		Y:             e.Y,
		Width:         e.Size.Width,
		Height:        e.Size.Height,
		TrailingSpace: e.TrailingSpace,
	}
	if !e.Link.IsZero() {
		dto.Link = &linkDTO{Kind: e.Link.Kind.String(), Value: e.Link.Value}
	}
	switch b := e.Backing.(type) {
	case chatlayout.ImageBacking:
		ref := string(b.Image)
		dto.Type = "image"
		dto.Image = &ref
	case chatlayout.TextBacking:
		hex := fmt.Sprintf("#%02x%02x%02x%02x", b.Color.R, b.Color.G, b.Color.B, b.Color.A)
		style := int(b.Style)
		dto.Type = "text"
		dto.Text = &b.Text
		dto.Color = &hex
		dto.Style = &style
		dto.Scale = &b.Scale
	case chatlayout.TextIconBacking:
		dto.Type = "text_icon"
		dto.Line1 = &b.Line1
		dto.Line2 = &b.Line2
		dto.Scale = &b.Scale
	default:
		return elementDTO{}, fmt.Errorf("unknown backing type: %T", e.Backing)
	}
	return dto, nil
}

func unmarshalElement(dto elementDTO) (chatlayout.LayoutElement, error) {
	e := chatlayout.LayoutElement{
		X:             dto.X,
		Y:             dto.Y,
		Size:          chatlayout.Size{Width: dto.Width, Height: dto.Height},
		TrailingSpace: dto.TrailingSpace,
	}
	if dto.Link != nil {
		kind, ok := linkKinds[dto.Link.Kind]
		if !ok {
			return chatlayout.LayoutElement{}, fmt.Errorf("unknown link kind: %s", dto.Link.Kind)
		}
		e.Link = chatlayout.Link{Kind: kind, Value: dto.Link.Value}
	}
	switch dto.Type {
	case "image":
		e.Backing = chatlayout.ImageBacking{Image: chatlayout.ImageRef(deref(dto.Image))}
	case "text":
		c, err := parseHex(deref(dto.Color))
		if err != nil {
			return chatlayout.LayoutElement{}, err
		}
		b := chatlayout.TextBacking{Text: deref(dto.Text), Color: c}
		if dto.Style != nil {
			b.Style = chatlayout.FontStyle(*dto.Style)
		}
		if dto.Scale != nil {
			b.Scale = *dto.Scale
		}
		e.Backing = b
	case "text_icon":
		b := chatlayout.TextIconBacking{Line1: deref(dto.Line1), Line2: deref(dto.Line2)}
		if dto.Scale != nil {
			b.Scale = *dto.Scale
		}
		e.Backing = b
	default:
		return chatlayout.LayoutElement{}, fmt.Errorf("unknown element type: %s", dto.Type)
	}
	return e, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func parseHex(s string) (color.RGBA, error) {
	var c color.RGBA
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x%02x", &c.R, &c.G, &c.B, &c.A); err != nil {
		return color.RGBA{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	return c, nil
}
