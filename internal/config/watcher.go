package config

import (
	"fmt"
	"path/filepath"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/cobaltline/basicd/internal/eliza"
)

// ScriptWatcher holds the conversation script currently in effect and swaps
// it atomically when the script file changes on disk. A reload that fails to
// parse or compile keeps the previous script.
type ScriptWatcher struct {
	path    string
	current atomic.Pointer[eliza.Script]
	watcher *fsnotify.Watcher
	stopCh  chan struct{}
	logger  *zap.Logger
}

// NewScriptWatcher loads the initial script. An empty path selects the
// built-in script and disables watching.
func NewScriptWatcher(path string, logger *zap.Logger) (*ScriptWatcher, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	sw := &ScriptWatcher{path: path, stopCh: make(chan struct{}), logger: logger}

	if path == "" {
		sw.current.Store(eliza.DefaultScript())
		return sw, nil
	}

	script, err := eliza.LoadScript(path)
	if err != nil {
		return nil, err
	}
	sw.current.Store(script)
	return sw, nil
}

// Current returns the script in effect. Safe for concurrent use.
func (sw *ScriptWatcher) Current() *eliza.Script { return sw.current.Load() }

// Start begins watching the script file's directory. Watching the directory
// rather than the file survives editors that replace the file on save.
func (sw *ScriptWatcher) Start() error {
	if sw.path == "" {
		return nil
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create script watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(sw.path)); err != nil {
		watcher.Close()
		return fmt.Errorf("watch script directory: %w", err)
	}
	sw.watcher = watcher
	go sw.watchLoop()
	return nil
}

// Stop ends watching. Idempotent for watchers that never started.
func (sw *ScriptWatcher) Stop() {
	close(sw.stopCh)
	if sw.watcher != nil {
		sw.watcher.Close()
	}
}

func (sw *ScriptWatcher) watchLoop() {
	for {
		select {
		case <-sw.stopCh:
			return
		case event, ok := <-sw.watcher.Events:
			if !ok {
				return
			}
			if !sw.relevant(event) {
				continue
			}
			sw.reload()
		case err, ok := <-sw.watcher.Errors:
			if !ok {
				return
			}
			sw.logger.Warn("script watcher error", zap.Error(err))
		}
	}
}

func (sw *ScriptWatcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != filepath.Clean(sw.path) {
		return false
	}
	return event.Op.Has(fsnotify.Write) || event.Op.Has(fsnotify.Create)
}

func (sw *ScriptWatcher) reload() {
	script, err := eliza.LoadScript(sw.path)
	if err != nil {
		sw.logger.Error("script reload failed, keeping previous script",
			zap.String("path", sw.path), zap.Error(err))
		return
	}
	sw.current.Store(script)
	sw.logger.Info("conversation script reloaded",
		zap.String("path", sw.path), zap.Int("rules", len(script.Rules)))
}
