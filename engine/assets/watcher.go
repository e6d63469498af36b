package assets

import (
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/lmgl/lmgl/engine/core"
)

// ShaderWatcher watches the cache's shader directory and queues changed
// files for recompilation. GL objects can only be touched from the
// context thread, so the fsnotify goroutine merely records names;
// Poll, called from the render loop, performs the reloads.
type ShaderWatcher struct {
	cache   *ResourceCache
	watcher *fsnotify.Watcher

	mu      sync.Mutex
	pending map[string]struct{}
	done    chan struct{}
}

// WatchShaders starts watching the cache's shader directory.
func WatchShaders(cache *ResourceCache) (*ShaderWatcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(cache.ShaderDir()); err != nil {
		fw.Close()
		return nil, err
	}

	w := &ShaderWatcher{
		cache:   cache,
		watcher: fw,
		pending: map[string]struct{}{},
		done:    make(chan struct{}),
	}
	go w.run()
	core.LogInfo("watching shaders in %s", cache.ShaderDir())
	return w, nil
}

func (w *ShaderWatcher) run() {
	for {
		select {
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			if filepath.Ext(ev.Name) != ".glsl" {
				continue
			}
			w.mu.Lock()
			w.pending[filepath.Base(ev.Name)] = struct{}{}
			w.mu.Unlock()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			core.LogWarn("shader watcher: %v", err)
		case <-w.done:
			return
		}
	}
}

// Poll recompiles any shaders that changed since the last call. It must
// run on the thread owning the GL context. Returns the number of shaders
// reloaded.
func (w *ShaderWatcher) Poll() int {
	w.mu.Lock()
	if len(w.pending) == 0 {
		w.mu.Unlock()
		return 0
	}
	names := make([]string, 0, len(w.pending))
	for name := range w.pending {
		names = append(names, name)
	}
	w.pending = map[string]struct{}{}
	w.mu.Unlock()

	reloaded := 0
	for _, name := range names {
		if err := w.cache.ReloadShader(name); err != nil {
			core.LogWarn("reload shader %s: %v", name, err)
			continue
		}
		core.LogInfo("reloaded shader %s", name)
		reloaded++
	}
	return reloaded
}

// Close stops the watcher.
func (w *ShaderWatcher) Close() error {
	close(w.done)
	return w.watcher.Close()
}
