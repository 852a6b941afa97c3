package chatlayout

// ImageElement is an inline image such as a badge.
type ImageElement struct {
	base
	image ImageRef
}

// NewImageElement returns an element showing image.
func NewImageElement(image ImageRef, flags RenderFlags) *ImageElement {
	return &ImageElement{base: newBase(flags), image: image}
}

// Image returns the referenced image.
func (e *ImageElement) Image() ImageRef { return e.image }

// AddToContainer places the image at its natural size times the container
// scale. An image that resolves empty takes no room and charges no space.
func (e *ImageElement) AddToContainer(c *Container, rc RenderContext) {
	if !e.visible(rc) {
		return
	}
	img := rc.Images.Resolve(e.image, c.Scale())
	size := scaleSize(img.Width, img.Height, c.Scale())
	c.AddElement(LayoutElement{
		Creator:       e,
		Size:          size,
		Link:          e.link,
		TrailingSpace: e.trailingSpace && size.Width > 0,
		Backing:       ImageBacking{Image: e.image},
	})
}

func scaleSize(w, h int, scale float64) Size {
	return Size{Width: int(float64(w) * scale), Height: int(float64(h) * scale)}
}
