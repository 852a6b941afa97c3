package chatlayout

// Element is a sealed interface representing one independently visible
// piece of a chat message. The unexported marker method prevents external
// implementations.
//
// AddToContainer contributes zero or more layout elements to c. An element
// contributes nothing unless rc.Flags intersects the element's flags.
type Element interface {
	element()
	Flags() RenderFlags
	Link() Link
	Tooltip() string
	TrailingSpace() bool
	AddToContainer(c *Container, rc RenderContext)
}

// base holds the attributes every element shares.
type base struct {
	flags         RenderFlags
	link          Link
	tooltip       string
	trailingSpace bool
}

func newBase(flags RenderFlags) base {
	return base{flags: flags, trailingSpace: true}
}

func (*base) element() {}

// Flags returns the render categories the element belongs to.
func (b *base) Flags() RenderFlags { return b.flags }

// Link returns the element's action link.
func (b *base) Link() Link { return b.link }

// Tooltip returns the element's tooltip text.
func (b *base) Tooltip() string { return b.tooltip }

// TrailingSpace reports whether a space follows the element.
func (b *base) TrailingSpace() bool { return b.trailingSpace }

// SetLink attaches an action link.
func (b *base) SetLink(l Link) { b.link = l }

// SetTooltip sets the tooltip text.
func (b *base) SetTooltip(tooltip string) { b.tooltip = tooltip }

// SetTrailingSpace sets whether a space follows the element.
func (b *base) SetTrailingSpace(on bool) { b.trailingSpace = on }

func (b *base) visible(rc RenderContext) bool {
	return rc.Flags.Intersects(b.flags.Value())
}

// Interface compliance checks.
var (
	_ Element = (*ImageElement)(nil)
	_ Element = (*EmoteElement)(nil)
	_ Element = (*TextElement)(nil)
	_ Element = (*TimestampElement)(nil)
	_ Element = (*ModerationElement)(nil)
)
