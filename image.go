package chatlayout

// ImageRef is a handle into a process-wide image cache. Holders share the
// underlying asset; the cache owns the pixels.
type ImageRef string

// Image is a resolved image variant. Width and Height are logical pixels at
// scale 1, independent of the variant's density.
type Image struct {
	Ref    ImageRef
	Width  int
	Height int
}

// Empty reports whether the image has not been loaded.
func (i Image) Empty() bool { return i.Width <= 0 || i.Height <= 0 }

// Emote is a named inline image. Elements hold emotes by pointer; one Emote
// is shared by every message that uses it.
type Emote struct {
	Name    string
	Image   ImageRef
	Tooltip string

	// CopyString is the text representation used when emotes render as text
	// and when a message is copied.
	CopyString string
}

// EmoteSource looks up emotes by the word that triggers them.
type EmoteSource interface {
	Emote(name string) (*Emote, bool)
}
