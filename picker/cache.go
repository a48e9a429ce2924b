package picker

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/vgunyavoy/sporegraph/graph"
	"github.com/vgunyavoy/sporegraph/logging"
)

// snapshotCache watches a debug JSON snapshot file (produced by
// graph.WriteSnapshotFile) and keeps a decoded copy ready for inspection
// without re-reading the file on every query. It is an observer only; it
// never feeds into Picker.Update's own close/far/neighborhood computation,
// which always reads the live graph.Graph directly; the JSON emission is
// decoupled from the merge pipeline, not a dependency of it.
type snapshotCache struct {
	mu      sync.Mutex
	path    string
	sink    logging.Sink
	watcher *fsnotify.Watcher

	latest graph.Snapshot
	stale  bool
}

// WatchSnapshotFile starts a background fsnotify watch over path, refreshing
// p's cached Snapshot on every write. The watch is placed on path's
// directory, so a temp-file rename over path is seen as well. Call the
// returned stop func to release the watcher. sink may be nil, in which case
// watch errors are discarded.
func (p *Picker) WatchSnapshotFile(ctx context.Context, path string, sink logging.Sink) (stop func(), err error) {
	if sink == nil {
		sink = logging.Discard()
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(path)); err != nil {
		_ = w.Close()
		return nil, err
	}

	cache := &snapshotCache{path: path, sink: sink, watcher: w, stale: true}
	p.mu.Lock()
	p.cache = cache
	p.mu.Unlock()

	go cache.run(ctx)
	return func() { _ = w.Close() }, nil
}

func (c *snapshotCache) run(ctx context.Context) {
	for {
		select {
		case event, ok := <-c.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(c.path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			c.reload()
		case err, ok := <-c.watcher.Errors:
			if !ok {
				return
			}
			c.sink.Warnf("picker: snapshot watcher error: %v", err)
		case <-ctx.Done():
			return
		}
	}
}

func (c *snapshotCache) reload() {
	data, err := os.ReadFile(c.path)
	if err != nil {
		c.sink.Warnf("picker: reading snapshot file %s: %v", c.path, err)
		return
	}
	var snap graph.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		c.sink.Warnf("picker: decoding snapshot file %s: %v", c.path, err)
		return
	}

	c.mu.Lock()
	c.latest = snap
	c.stale = false
	c.mu.Unlock()
}

// Latest returns the most recently loaded Snapshot and whether at least one
// watcher event has populated it since WatchSnapshotFile was called.
func (p *Picker) Latest() (graph.Snapshot, bool) {
	p.mu.Lock()
	cache := p.cache
	p.mu.Unlock()
	if cache == nil {
		return graph.Snapshot{}, false
	}

	cache.mu.Lock()
	defer cache.mu.Unlock()
	return cache.latest, !cache.stale
}
