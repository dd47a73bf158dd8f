package pipeline

import (
	"context"
	"errors"

	log "github.com/sirupsen/logrus"

	"hotwords/internal/hotlist"
)

var (
	// ErrNoChannels means the resolved channel set was empty and the run
	// was aborted before any fetching.
	ErrNoChannels = errors.New("no channels to process")
	// ErrNoData means a channel's hotlist fetch returned no items.
	ErrNoData = errors.New("no hotlist data")
	// ErrNoKeywords means extraction produced an empty keyword list.
	ErrNoKeywords = errors.New("no keywords extracted")
)

// Options controls a pipeline run.
type Options struct {
	// Channel restricts the run to a single channel when non-empty. The
	// value is taken verbatim; it is not validated against discovery.
	Channel  string
	Limit    int
	UseCache bool
}

// Fetcher resolves and fetches hotlist channels.
type Fetcher interface {
	Channels(ctx context.Context) []string
	Fetch(ctx context.Context, channel string, limit int, useCache bool) (*hotlist.Response, error)
}

// Extractor turns a block of text into keywords.
type Extractor interface {
	ExtractKeywords(ctx context.Context, text string) ([]string, error)
}

// Pipeline runs the fetch/extract loop over hotlist channels.
type Pipeline struct {
	hotlist   Fetcher
	extractor Extractor
}

// New creates a pipeline from a hotlist fetcher and a keyword extractor.
func New(h Fetcher, e Extractor) *Pipeline {
	return &Pipeline{hotlist: h, extractor: e}
}

// ChannelResult is the outcome of processing a single channel.
type ChannelResult struct {
	Channel     string   `json:"channel"`
	DisplayName string   `json:"display_name"`
	Keywords    []string `json:"keywords"`
}

// Channels returns the channel set a full run would process.
func (p *Pipeline) Channels(ctx context.Context) []string {
	return p.hotlist.Channels(ctx)
}

// ProcessChannel fetches one channel's hotlist, builds the combined
// item text, and extracts keywords from it. It returns ErrNoData when
// the fetched hotlist has no items and ErrNoKeywords when extraction
// yields nothing; a channel with either outcome must not appear in the
// final mapping.
func (p *Pipeline) ProcessChannel(ctx context.Context, channel string, opts Options) (*ChannelResult, error) {
	resp, err := p.hotlist.Fetch(ctx, channel, opts.Limit, opts.UseCache)
	if err != nil {
		return nil, err
	}
	if len(resp.Data) == 0 {
		return nil, ErrNoData
	}

	displayName := resp.DisplayName(channel)

	keywords, err := p.extractor.ExtractKeywords(ctx, resp.CombinedText())
	if err != nil {
		return nil, err
	}
	if len(keywords) == 0 {
		return nil, ErrNoKeywords
	}

	return &ChannelResult{
		Channel:     channel,
		DisplayName: displayName,
		Keywords:    keywords,
	}, nil
}

// Run resolves the channel set and processes every channel in order,
// strictly sequentially. Per-channel failures are logged and skipped;
// the only error Run itself returns is ErrNoChannels.
func (p *Pipeline) Run(ctx context.Context, opts Options) (*Result, error) {
	channels := p.resolveChannels(ctx, opts.Channel)
	if len(channels) == 0 {
		return nil, ErrNoChannels
	}

	result := NewResult()

	for _, channel := range channels {
		log.Infof("processing channel %s", channel)

		cr, err := p.ProcessChannel(ctx, channel, opts)
		switch {
		case errors.Is(err, ErrNoData):
			log.Warnf("no usable data for channel %s, skipping", channel)
			continue
		case errors.Is(err, ErrNoKeywords):
			log.Warnf("no keywords extracted for channel %s", channel)
			continue
		case err != nil:
			log.Errorf("processing channel %s failed: %v", channel, err)
			continue
		}

		result.Add(cr.DisplayName, cr.Keywords)
		log.Infof("extracted %d keywords from channel %s", len(cr.Keywords), cr.DisplayName)
	}

	return result, nil
}

func (p *Pipeline) resolveChannels(ctx context.Context, explicit string) []string {
	if explicit != "" {
		log.Infof("processing single channel: %s", explicit)
		return []string{explicit}
	}
	channels := p.hotlist.Channels(ctx)
	log.Infof("processing %d channels", len(channels))
	return channels
}
