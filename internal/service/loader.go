package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/insightai/site/internal/model"
)

// MessageSource supplies the raw JSON message document for a locale
type MessageSource interface {
	Messages(ctx context.Context, locale model.Locale) ([]byte, error)
}

// Loader reads locale message trees and resolves their placeholders
type Loader struct {
	source   MessageSource
	injector *Injector
	logger   *zap.Logger

	cache bool
	mu    sync.RWMutex
	trees map[model.Locale]any
	gen   map[model.Locale]uint64 // bumped by Invalidate
	group singleflight.Group
}

// NewLoader creates a Loader. With cache enabled each locale is read and
// injected at most once for the life of the process.
func NewLoader(source MessageSource, injector *Injector, logger *zap.Logger, cache bool) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{
		source:   source,
		injector: injector,
		logger:   logger,
		cache:    cache,
		trees:    make(map[model.Locale]any),
		gen:      make(map[model.Locale]uint64),
	}
}

// Injector returns the injector used to resolve trees
func (l *Loader) Injector() *Injector {
	return l.injector
}

// Load returns the fully resolved message tree for locale.
// Cached trees are shared between callers and must not be modified.
func (l *Loader) Load(ctx context.Context, locale model.Locale) (any, error) {
	if _, ok := model.ParseLocale(string(locale)); !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedLocale, locale)
	}

	if !l.cache {
		return l.load(ctx, locale)
	}

	if tree, ok := l.cached(locale); ok {
		return tree, nil
	}

	// The fill is shared, so it must not inherit one caller's cancellation.
	// Each caller still stops waiting when its own ctx is done.
	fillCtx := context.WithoutCancel(ctx)
	ch := l.group.DoChan(string(locale), func() (any, error) {
		if tree, ok := l.cached(locale); ok {
			return tree, nil
		}
		l.mu.RLock()
		gen := l.gen[locale]
		l.mu.RUnlock()

		tree, err := l.load(fillCtx, locale)
		if err != nil {
			return nil, err
		}

		l.mu.Lock()
		if l.gen[locale] == gen {
			l.trees[locale] = tree
		}
		l.mu.Unlock()
		return tree, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val, nil
	}
}

// LoadRaw returns the decoded message tree for locale without injecting placeholders
func (l *Loader) LoadRaw(ctx context.Context, locale model.Locale) (any, error) {
	if _, ok := model.ParseLocale(string(locale)); !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedLocale, locale)
	}
	return l.read(ctx, locale)
}

// Preload resolves every supported locale up front so requests never write to the cache
func (l *Loader) Preload(ctx context.Context) error {
	for _, locale := range model.Locales {
		if _, err := l.Load(ctx, locale); err != nil {
			return err
		}
	}
	return nil
}

// Invalidate drops cached trees so the next Load reads the source again.
// With no arguments every locale is dropped.
func (l *Loader) Invalidate(locales ...model.Locale) {
	if len(locales) == 0 {
		locales = model.Locales
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	for _, locale := range locales {
		delete(l.trees, locale)
		l.gen[locale]++
		// later callers start a fresh read instead of joining one in flight
		l.group.Forget(string(locale))
	}
	l.logger.Debug("Invalidated locale messages", zap.Int("locales", len(locales)))
}

func (l *Loader) cached(locale model.Locale) (any, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	tree, ok := l.trees[locale]
	return tree, ok
}

func (l *Loader) load(ctx context.Context, locale model.Locale) (any, error) {
	raw, err := l.read(ctx, locale)
	if err != nil {
		return nil, err
	}

	tree := l.injector.Inject(raw)
	l.logger.Debug("Loaded locale messages", zap.String("locale", string(locale)))
	return tree, nil
}

func (l *Loader) read(ctx context.Context, locale model.Locale) (any, error) {
	data, err := l.source.Messages(ctx, locale)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil, fmt.Errorf("read %s messages: %w", locale, err)
	}
	if err != nil {
		l.logger.Warn("Failed to read locale messages",
			zap.String("locale", string(locale)),
			zap.Error(err))
		return nil, fmt.Errorf("%w: %s: %w", ErrLocaleNotFound, locale, err)
	}

	tree, err := model.DecodeTree(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrMalformedMessages, locale, err)
	}
	return tree, nil
}
