package chatlayout

// defaultIconSize is the side of a moderation icon at scale 1.
const defaultIconSize = 16

// ModerationElement shows the configured moderator actions as a row of
// small icons.
type ModerationElement struct {
	base
}

// NewModerationElement returns a moderation element.
func NewModerationElement() *ModerationElement {
	return &ModerationElement{base: newBase(NewFlags(ModeratorTools))}
}

// AddToContainer places one icon per moderation action, in list order. The
// action list is read on every pass.
func (e *ModerationElement) AddToContainer(c *Container, rc RenderContext) {
	if !rc.Flags.Intersects(ModeratorTools) {
		return
	}
	icon := c.IconSize()
	size := scaleSize(icon.Width, icon.Height, c.Scale())
	for _, action := range rc.Moderation.Actions() {
		le := LayoutElement{
			Creator:       e,
			Size:          size,
			Link:          Link{Kind: LinkUserAction, Value: action.Action},
			TrailingSpace: e.trailingSpace,
		}
		if action.HasIcon() {
			le.Backing = ImageBacking{Image: action.Icon}
		} else {
			le.Backing = TextIconBacking{Line1: action.Line1, Line2: action.Line2, Scale: c.Scale()}
		}
		c.AddElement(le)
	}
}
