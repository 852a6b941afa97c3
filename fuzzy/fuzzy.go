// Package fuzzy aggregates completion strings per channel and filters them
// with sahilm/fuzzy.
package fuzzy

import (
	"sort"
	"strings"
	"sync"

	"github.com/fwojciec/chatlayout"
	"github.com/sahilm/fuzzy"
)

// Manager hands out one completion model per channel.
type Manager struct {
	// Sources supply emote-like completions, added as is.
	Sources []chatlayout.CompletionSource
	// Users supplies user names, added bare and with an "@" prefix.
	Users chatlayout.CompletionSource

	mu     sync.Mutex
	models map[string]*Model
}

// Model returns the model for channel, creating it on first use. Later
// calls return the same model.
func (m *Manager) Model(channel string) *Model {
	m.mu.Lock()
	defer m.mu.Unlock()
	if model, ok := m.models[channel]; ok {
		return model
	}
	if m.models == nil {
		m.models = make(map[string]*Model)
	}
	model := &Model{channel: channel, manager: m}
	m.models[channel] = model
	return model
}

// Model holds the completions of one channel.
type Model struct {
	channel string
	manager *Manager

	mu      sync.RWMutex
	strings []string
}

// Channel returns the channel the model completes for.
func (m *Model) Channel() string { return m.channel }

// Refresh rebuilds the completion list from the manager's sources. Every
// completion ends in a space.
func (m *Model) Refresh() {
	var out []string
	for _, src := range m.manager.Sources {
		for _, s := range src.Completions(m.channel) {
			out = append(out, s+" ")
		}
	}
	if m.manager.Users != nil {
		for _, name := range m.manager.Users.Completions(m.channel) {
			out = append(out, name+" ", "@"+name+" ")
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.strings = out
}

// Strings returns a copy of the current completions.
func (m *Model) Strings() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]string, len(m.strings))
	copy(out, m.strings)
	return out
}

// Filter returns the completions matching query, best match first. An
// empty query returns everything in source order.
func (m *Model) Filter(query string) []string {
	all := m.Strings()
	if query == "" {
		return all
	}
	matches := fuzzy.FindFrom(query, source(all))
	out := make([]string, 0, len(matches))
	for _, match := range matches {
		out = append(out, all[match.Index])
	}
	return out
}

// source implements fuzzy.Source. Matching ignores the trailing space.
type source []string

func (s source) String(i int) string { return strings.TrimSuffix(s[i], " ") }

func (s source) Len() int { return len(s) }

// Chatters records who has spoken in each channel and offers their names
// as completions.
type Chatters struct {
	mu    sync.RWMutex
	names map[string]map[string]struct{}
}

var _ chatlayout.CompletionSource = (*Chatters)(nil)

// Observe records name as a chatter in channel.
func (c *Chatters) Observe(channel, name string) {
	if name == "" {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.names == nil {
		c.names = make(map[string]map[string]struct{})
	}
	set, ok := c.names[channel]
	if !ok {
		set = make(map[string]struct{})
		c.names[channel] = set
	}
	set[name] = struct{}{}
}

// Completions returns the chatters of channel in sorted order.
func (c *Chatters) Completions(channel string) []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]string, 0, len(c.names[channel]))
	for name := range c.names[channel] {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
