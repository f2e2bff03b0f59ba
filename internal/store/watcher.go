package store

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/insightai/site/internal/model"
)

// DirWatcher reports edits to <locale>.json files in a messages directory
type DirWatcher struct {
	dir      string
	watcher  *fsnotify.Watcher
	onChange func(model.Locale)
	logger   *zap.Logger
	debounce time.Duration
}

// NewDirWatcher creates a watcher for dir. onChange is called once per locale
// after its file has been quiet for the debounce window.
func NewDirWatcher(dir string, onChange func(model.Locale), logger *zap.Logger) (*DirWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &DirWatcher{
		dir:      dir,
		watcher:  watcher,
		onChange: onChange,
		logger:   logger,
		debounce: 200 * time.Millisecond,
	}, nil
}

// Run processes events until ctx is cancelled, then closes the watcher
func (w *DirWatcher) Run(ctx context.Context) error {
	defer w.watcher.Close()

	ticker := time.NewTicker(w.debounce / 2)
	defer ticker.Stop()

	pending := make(map[model.Locale]time.Time)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if locale, ok := localeFromEvent(event); ok {
				w.logger.Debug("Locale file changed",
					zap.String("file", event.Name),
					zap.String("op", event.Op.String()))
				pending[locale] = time.Now()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("Watcher error", zap.String("dir", w.dir), zap.Error(err))

		case now := <-ticker.C:
			for locale, at := range pending {
				if now.Sub(at) < w.debounce {
					continue
				}
				delete(pending, locale)
				w.onChange(locale)
			}
		}
	}
}

func localeFromEvent(event fsnotify.Event) (model.Locale, bool) {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return "", false
	}

	base := filepath.Base(event.Name)
	if !strings.HasSuffix(base, ".json") {
		return "", false
	}
	return model.ParseLocale(strings.TrimSuffix(base, ".json"))
}
