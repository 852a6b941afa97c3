package chatlayout

// EmoteElement shows an emote as an image, or as its text form when the
// render pass does not include emote images.
type EmoteElement struct {
	base
	emote *Emote

	// fallback is shown when emote images are off. Its visibility does not
	// depend on the emote's own flags.
	fallback *TextElement
}

// NewEmoteElement returns an element for emote. The text fallback is built
// once from the emote's copy string.
func NewEmoteElement(emote *Emote, flags RenderFlags) *EmoteElement {
	e := &EmoteElement{
		base:     newBase(flags),
		emote:    emote,
		fallback: NewTextElement(emote.CopyString, NewFlags(Misc), TextColor, FontChatMedium),
	}
	e.tooltip = emote.Tooltip
	return e
}

// Emote returns the shared emote.
func (e *EmoteElement) Emote() *Emote { return e.emote }

// AddToContainer places the emote image, or lays out the text fallback.
// An emote whose image is not loaded yet contributes nothing; the next
// layout pass tries again.
func (e *EmoteElement) AddToContainer(c *Container, rc RenderContext) {
	if !e.visible(rc) {
		return
	}
	if !rc.Flags.Intersects(EmoteImages) {
		e.fallback.AddToContainer(c, rc.WithFlags(NewFlags(Misc)))
		return
	}
	img := rc.Images.Resolve(e.emote.Image, c.Scale())
	if img.Empty() {
		return
	}
	c.AddElement(LayoutElement{
		Creator:       e,
		Size:          scaleSize(img.Width, img.Height, c.Scale()),
		Link:          e.link,
		TrailingSpace: e.trailingSpace,
		Backing:       ImageBacking{Image: img.Ref},
	})
}
