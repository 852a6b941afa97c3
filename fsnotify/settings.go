// Package fsnotify provides a settings store backed by a YAML file that is
// reloaded whenever the file changes on disk.
package fsnotify

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/fwojciec/chatlayout"
	"github.com/fwojciec/chatlayout/strftime"
	"gopkg.in/yaml.v3"
)

// Interface compliance checks.
var (
	_ chatlayout.Settings          = (*Store)(nil)
	_ chatlayout.ModerationActions = (*Store)(nil)
)

// DefaultTimestampFormat is used when the file does not set one.
const DefaultTimestampFormat = strftime.DefaultFormat

// DefaultModerationActions are used when the file does not list any.
var DefaultModerationActions = []string{
	"/ban {user}",
	"/timeout {user} 300",
}

// File is the on-disk settings format.
type File struct {
	TimestampFormat   string   `yaml:"timestampFormat"`
	ModerationActions []string `yaml:"moderationActions"`
}

// Parse decodes settings and fills in defaults.
func Parse(data []byte) (File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return File{}, fmt.Errorf("parse settings: %w", err)
	}
	if f.TimestampFormat == "" {
		f.TimestampFormat = DefaultTimestampFormat
	}
	if f.ModerationActions == nil {
		f.ModerationActions = DefaultModerationActions
	}
	return f, nil
}

// Store holds the current settings. Reads are safe from any goroutine
// while the store reloads in the background.
type Store struct {
	path string

	// OnError receives errors from background reloads. Nil discards them.
	OnError func(error)
	// OnChange is called after every successful background reload.
	OnChange func()

	mu              sync.RWMutex
	timestampFormat string
	actions         []chatlayout.ModerationAction

	watcher *fsnotify.Watcher
	done    chan struct{}
	wg      sync.WaitGroup
}

// Open loads settings from path. A missing file yields the defaults.
func Open(path string) (*Store, error) {
	s := &Store{path: filepath.Clean(path)}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Reload reads the file again.
func (s *Store) Reload() error {
	data, err := os.ReadFile(s.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("read settings: %w", err)
	}
	f, err := Parse(data)
	if err != nil {
		return err
	}
	actions := make([]chatlayout.ModerationAction, 0, len(f.ModerationActions))
	for _, a := range f.ModerationActions {
		actions = append(actions, chatlayout.NewModerationAction(a))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.timestampFormat = f.TimestampFormat
	s.actions = actions
	return nil
}

// TimestampFormat returns the current timestamp format.
func (s *Store) TimestampFormat() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.timestampFormat
}

// Actions returns a snapshot of the configured moderation actions.
func (s *Store) Actions() []chatlayout.ModerationAction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]chatlayout.ModerationAction, len(s.actions))
	copy(out, s.actions)
	return out
}

// Watch reloads the settings whenever the file is written, created or
// replaced. The directory is watched so editors that save by renaming are
// picked up. Call Close to stop.
func (s *Store) Watch() error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch settings: %w", err)
	}
	if err := w.Add(filepath.Dir(s.path)); err != nil {
		w.Close()
		return fmt.Errorf("watch settings: %w", err)
	}
	s.watcher = w
	s.done = make(chan struct{})
	s.wg.Add(1)
	go s.run()
	return nil
}

func (s *Store) run() {
	defer s.wg.Done()
	for {
		select {
		case <-s.done:
			return
		case event, ok := <-s.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != s.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if err := s.Reload(); err != nil {
				s.report(err)
				continue
			}
			if s.OnChange != nil {
				s.OnChange()
			}
		case err, ok := <-s.watcher.Errors:
			if !ok {
				return
			}
			s.report(fmt.Errorf("watch settings: %w", err))
		}
	}
}

func (s *Store) report(err error) {
	if s.OnError != nil {
		s.OnError(err)
	}
}

// Close stops watching. It is a no-op when Watch was never called.
func (s *Store) Close() error {
	if s.watcher == nil {
		return nil
	}
	close(s.done)
	err := s.watcher.Close()
	s.wg.Wait()
	s.watcher = nil
	return err
}
