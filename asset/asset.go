// Package asset is a process-wide cache of decoded image sizes. Elements
// hold image refs; the cache resolves a ref to the variant that suits the
// render scale.
package asset

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"sort"
	"sync"

	"github.com/fwojciec/chatlayout"
	_ "golang.org/x/image/webp"
)

// Interface compliance checks.
var (
	_ chatlayout.ImageResolver    = (*Cache)(nil)
	_ chatlayout.EmoteSource      = (*Cache)(nil)
	_ chatlayout.CompletionSource = (*Cache)(nil)
)

// densities are the pixel densities a ref can have variants for.
var densities = [...]int{1, 2, 3}

// Cache maps image refs to decoded variants and emote names to emotes. It
// is safe for concurrent use.
type Cache struct {
	mu     sync.RWMutex
	images map[chatlayout.ImageRef]*[len(densities)]chatlayout.Image
	emotes map[string]*chatlayout.Emote
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{
		images: make(map[chatlayout.ImageRef]*[len(densities)]chatlayout.Image),
		emotes: make(map[string]*chatlayout.Emote),
	}
}

// Add decodes the header of an encoded image and stores it as the variant
// of ref at density (1, 2 or 3 device pixels per logical pixel).
func (c *Cache) Add(ref chatlayout.ImageRef, density int, data []byte) error {
	if density < 1 || density > len(densities) {
		return fmt.Errorf("density %d for %s: %w", density, ref, chatlayout.ErrUnsupportedImage)
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("decode %s: %v: %w", ref, err, chatlayout.ErrUnsupportedImage)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	variants, ok := c.images[ref]
	if !ok {
		variants = new([len(densities)]chatlayout.Image)
		c.images[ref] = variants
	}
	variants[density-1] = chatlayout.Image{
		Ref:    ref,
		Width:  logical(cfg.Width, density),
		Height: logical(cfg.Height, density),
	}
	return nil
}

// logical converts device pixels to logical pixels, rounding up so that a
// non-empty image never becomes empty.
func logical(px, density int) int {
	return (px + density - 1) / density
}

// Resolve returns the variant of ref for scale: the 3x image above scale 2,
// the 2x image above scale 1, the 1x image otherwise, falling back to any
// loaded variant. Unknown refs resolve to an empty image.
func (c *Cache) Resolve(ref chatlayout.ImageRef, scale float64) chatlayout.Image {
	c.mu.RLock()
	defer c.mu.RUnlock()
	variants, ok := c.images[ref]
	if !ok {
		return chatlayout.Image{Ref: ref}
	}
	if scale > 2.001 && !variants[2].Empty() {
		return variants[2]
	}
	if scale > 1.001 && !variants[1].Empty() {
		return variants[1]
	}
	for _, v := range variants {
		if !v.Empty() {
			return v
		}
	}
	return chatlayout.Image{Ref: ref}
}

// AddEmote registers e under its name.
func (c *Cache) AddEmote(e *chatlayout.Emote) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.emotes[e.Name] = e
}

// Emote returns the emote named name.
func (c *Cache) Emote(name string) (*chatlayout.Emote, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.emotes[name]
	return e, ok
}

// EmoteNames returns the names of all registered emotes, sorted.
func (c *Cache) EmoteNames() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	names := make([]string, 0, len(c.emotes))
	for name := range c.emotes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Completions returns the emote names. Emotes are global, so channel is
// ignored.
func (c *Cache) Completions(string) []string {
	return c.EmoteNames()
}
