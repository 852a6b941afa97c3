// Package json serializes finished layouts for debugging and golden tests.
package json

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fwojciec/chatlayout"
)

// envelope is the v1 wire format of a dumped layout.
type envelope struct {
	Version int       `json:"version"`
	ID      string    `json:"id,omitempty"`
	Width   int       `json:"width"`
	Scale   float64   `json:"scale"`
	Height  int       `json:"height"`
	Lines   []lineDTO `json:"lines"`
}

type lineDTO struct {
	Y        int          `json:"y"`
	Height   int          `json:"height"`
	Width    int          `json:"width"`
	Elements []elementDTO `json:"elements"`
}

// Layout is a decoded layout dump. Elements have no Creator.
type Layout struct {
	ID     string
	Width  int
	Scale  float64
	Height int
	Lines  []chatlayout.Line
}

// MarshalLayout serializes the lines of c in v1 envelope format.
func MarshalLayout(id string, c *chatlayout.Container) ([]byte, error) {
	env := envelope{
		Version: 1,
		ID:      id,
		Width:   c.Width(),
		Scale:   c.Scale(),
		Height:  c.Height(),
		Lines:   []lineDTO{},
	}
	for _, l := range c.Lines() {
		dto := lineDTO{Y: l.Y, Height: l.Height, Width: l.Width, Elements: make([]elementDTO, 0, len(l.Elements))}
		for _, e := range l.Elements {
			ed, err := marshalElement(e)
			if err != nil {
				return nil, err
			}
			dto.Elements = append(dto.Elements, ed)
		}
		env.Lines = append(env.Lines, dto)
	}
	return json.MarshalIndent(env, "", "  ")
}

// UnmarshalLayout decodes a layout dump.
func UnmarshalLayout(data []byte) (Layout, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return Layout{}, fmt.Errorf("unmarshal layout: %w", err)
	}
	if env.Version != 1 {
		return Layout{}, fmt.Errorf("unsupported layout version: %d", env.Version)
	}
	out := Layout{ID: env.ID, Width: env.Width, Scale: env.Scale, Height: env.Height}
	for _, l := range env.Lines {
		line := chatlayout.Line{Y: l.Y, Height: l.Height, Width: l.Width}
		for _, ed := range l.Elements {
			e, err := unmarshalElement(ed)
			if err != nil {
				return Layout{}, err
			}
			line.Elements = append(line.Elements, e)
		}
		out.Lines = append(out.Lines, line)
	}
	return out, nil
}

// Save writes a layout dump to path, creating parent directories as needed.
func Save(path, id string, c *chatlayout.Container) error {
	data, err := MarshalLayout(id, c)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create directories: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

// Load reads a layout dump from path.
func Load(path string) (Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("read file: %w", err)
	}
	return UnmarshalLayout(data)
}
