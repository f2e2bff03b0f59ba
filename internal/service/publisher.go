package service

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"

	"go.uber.org/zap"

	"github.com/insightai/site/internal/model"
)

// PublishStats tracks publish statistics
type PublishStats struct {
	Total     int
	Published int
	Changed   int
	Unchanged int
	Failed    int
}

// DocumentStore is where published locale documents are kept
type DocumentStore interface {
	Checksum(ctx context.Context, locale model.Locale) (string, error)
	Upsert(ctx context.Context, locale model.Locale, document []byte, checksum string) error
}

// Publisher copies raw locale documents from a source into a document store
type Publisher struct {
	source MessageSource
	store  DocumentStore
	logger *zap.Logger
}

// NewPublisher creates a new Publisher
func NewPublisher(source MessageSource, store DocumentStore, logger *zap.Logger) *Publisher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Publisher{
		source: source,
		store:  store,
		logger: logger,
	}
}

// Publish stores every given locale whose document changed since the last publish
func (p *Publisher) Publish(ctx context.Context, locales []model.Locale) (*PublishStats, error) {
	stats := &PublishStats{Total: len(locales)}

	for idx, locale := range locales {
		select {
		case <-ctx.Done():
			return stats, ctx.Err()
		default:
		}

		progress := fmt.Sprintf("[%d/%d]", idx+1, stats.Total)
		p.logger.Info("Publishing locale messages",
			zap.String("progress", progress),
			zap.String("locale", string(locale)))

		changed, err := p.publishLocale(ctx, locale)
		if err != nil {
			p.logger.Error("Failed to publish locale messages",
				zap.String("locale", string(locale)),
				zap.Error(err))
			stats.Failed++
			continue
		}

		stats.Published++
		if changed {
			stats.Changed++
		} else {
			stats.Unchanged++
		}
	}

	return stats, nil
}

func (p *Publisher) publishLocale(ctx context.Context, locale model.Locale) (bool, error) {
	document, err := p.source.Messages(ctx, locale)
	if err != nil {
		return false, fmt.Errorf("%w: %s: %w", ErrLocaleNotFound, locale, err)
	}

	if _, err := model.DecodeTree(document); err != nil {
		return false, fmt.Errorf("%w: %s: %w", ErrMalformedMessages, locale, err)
	}

	checksum := calculateChecksum(document)
	existing, err := p.store.Checksum(ctx, locale)
	if err != nil {
		return false, err
	}
	if existing == checksum {
		p.logger.Debug("Locale messages unchanged", zap.String("locale", string(locale)))
		return false, nil
	}

	if err := p.store.Upsert(ctx, locale, document, checksum); err != nil {
		return false, err
	}
	return true, nil
}

// PrintSummary logs the results of a publish run
func (p *Publisher) PrintSummary(stats *PublishStats) {
	p.logger.Info("Publish complete",
		zap.Int("total", stats.Total),
		zap.Int("published", stats.Published),
		zap.Int("changed", stats.Changed),
		zap.Int("unchanged", stats.Unchanged),
		zap.Int("failed", stats.Failed))
}

func calculateChecksum(content []byte) string {
	hash := md5.Sum(content)
	return hex.EncodeToString(hash[:])
}
