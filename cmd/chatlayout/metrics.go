package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/chatlayout"
	"github.com/fwojciec/chatlayout/canvas"
	chatlipgloss "github.com/fwojciec/chatlayout/lipgloss"
	"github.com/fwojciec/chatlayout/uniseg"
)

// measurement is how text and images are sized. Cells is true when the
// layout is measured in terminal cells and can be painted.
type measurement struct {
	fonts  chatlayout.FontMetrics
	images chatlayout.ImageResolver
	layout []chatlayout.ContainerOption
	cells  bool
}

// resolveMetrics measures with the font at fontPath in pixels, or in
// terminal cells when fontPath is empty.
func resolveMetrics(fontPath string, images chatlayout.ImageResolver) (measurement, error) {
	if fontPath == "" {
		return measurement{
			fonts:  uniseg.NewMetrics(),
			images: chatlipgloss.CellImages{Images: images, Label: imageLabel},
			layout: []chatlayout.ContainerOption{chatlayout.WithIconSize(chatlipgloss.IconSize)},
			cells:  true,
		}, nil
	}
	data, err := os.ReadFile(fontPath)
	if err != nil {
		return measurement{}, fmt.Errorf("read font: %w", err)
	}
	name := strings.TrimSuffix(filepath.Base(fontPath), filepath.Ext(fontPath))
	fonts, err := canvas.NewMetrics(name, canvas.Fonts{Regular: data})
	if err != nil {
		return measurement{}, err
	}
	return measurement{fonts: fonts, images: images}, nil
}

// imageLabel shows emotes, emoji and badges by name.
func imageLabel(ref chatlayout.ImageRef) string {
	s := string(ref)
	for _, prefix := range []string{"emote:", "emoji:", "badge:", "icon:"} {
		if rest, ok := strings.CutPrefix(s, prefix); ok {
			return rest
		}
	}
	return s
}
