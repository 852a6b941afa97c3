package asset

import (
	"fmt"
	iofs "io/fs"
	"path"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fwojciec/chatlayout"
)

// EmoteRef returns the image ref LoadDir uses for the emote named name.
func EmoteRef(name string) chatlayout.ImageRef {
	return chatlayout.ImageRef("emote:" + name)
}

// EmojiRef returns the image ref LoadEmojiDir uses for the emoji with
// shortcode name.
func EmojiRef(name string) chatlayout.ImageRef {
	return chatlayout.ImageRef("emoji:" + name)
}

// LoadDir loads every image in fsys matching pattern as an emote. The file
// name without extension is the emote name; a "@2x" or "@3x" suffix marks a
// higher density variant. It returns the number of files loaded.
func (c *Cache) LoadDir(fsys iofs.FS, pattern string) (int, error) {
	return c.loadDir(fsys, pattern, func(name string) *chatlayout.Emote {
		return &chatlayout.Emote{
			Name:       name,
			Image:      EmoteRef(name),
			Tooltip:    name + "\nEmote",
			CopyString: name,
		}
	})
}

// LoadEmojiDir loads every image in fsys matching pattern as an emoji. A
// file named "smile.png" is typed and completed as ":smile:".
func (c *Cache) LoadEmojiDir(fsys iofs.FS, pattern string) (int, error) {
	return c.loadDir(fsys, pattern, func(name string) *chatlayout.Emote {
		shortcode := ":" + name + ":"
		return &chatlayout.Emote{
			Name:       shortcode,
			Image:      EmojiRef(name),
			Tooltip:    shortcode + "\nEmoji",
			CopyString: shortcode,
		}
	})
}

func (c *Cache) loadDir(fsys iofs.FS, pattern string, emote func(name string) *chatlayout.Emote) (int, error) {
	if !doublestar.ValidatePattern(pattern) {
		return 0, fmt.Errorf("invalid glob pattern: %s", pattern)
	}
	loaded := 0
	err := doublestar.GlobWalk(fsys, pattern, func(p string, d iofs.DirEntry) error {
		if d.IsDir() {
			return nil
		}
		data, err := iofs.ReadFile(fsys, p)
		if err != nil {
			return fmt.Errorf("read %s: %w", p, err)
		}
		name, density := parseName(path.Base(p))
		e := emote(name)
		if err := c.Add(e.Image, density, data); err != nil {
			return err
		}
		if _, ok := c.Emote(e.Name); !ok {
			c.AddEmote(e)
		}
		loaded++
		return nil
	})
	if err != nil {
		return loaded, fmt.Errorf("load %s: %w", pattern, err)
	}
	return loaded, nil
}

// parseName splits "Kappa@2x.png" into ("Kappa", 2).
func parseName(file string) (string, int) {
	name := strings.TrimSuffix(file, path.Ext(file))
	for _, d := range densities[1:] {
		suffix := fmt.Sprintf("@%dx", d)
		if base, ok := strings.CutSuffix(name, suffix); ok {
			return base, d
		}
	}
	return name, 1
}
