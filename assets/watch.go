package assets

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/automoto/animtester/config"
	"github.com/fsnotify/fsnotify"
)

// Watcher reports sheet files that change on disk so the viewer can reload
// them. Events carries base file names; the game loop drains it without
// blocking. A name is sent once its file has been quiet for the configured
// debounce, so a save made of several writes is reported after the last one.
type Watcher struct {
	watcher *fsnotify.Watcher
	Events  chan string
	Errors  chan error
	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

func NewWatcher(dir string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(dir); err != nil {
		_ = w.Close()
		return nil, err
	}

	watcher := &Watcher{
		watcher: w,
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

// Close stops the watcher and waits for its goroutine to exit. It is safe
// to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.done)

	debounce := time.Duration(config.Viewer.ReloadDebounce) * time.Millisecond
	pending := make(map[string]*time.Timer)
	settled := make(chan string)
	defer func() {
		for _, t := range pending {
			t.Stop()
		}
	}()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			name := filepath.Base(event.Name)
			if !isSheetFile(name) {
				continue
			}
			if t, ok := pending[name]; ok {
				t.Reset(debounce)
				continue
			}
			pending[name] = time.AfterFunc(debounce, func() {
				select {
				case settled <- name:
				case <-w.closeCh:
				}
			})
		case name := <-settled:
			delete(pending, name)
			select {
			case w.Events <- name:
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}

func isSheetFile(name string) bool {
	return strings.ToLower(filepath.Ext(name)) == ".png"
}

// SheetOwner reports which character and animation a sheet file name
// belongs to.
func SheetOwner(name string) (character string, id config.AnimationID, ok bool) {
	for _, anim := range config.AllAnimations() {
		prefix, found := strings.CutSuffix(name, config.SheetFileName("", anim))
		if !found || prefix == "" {
			continue
		}
		return prefix, anim, true
	}
	return "", 0, false
}
