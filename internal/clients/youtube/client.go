package youtube

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"google.golang.org/api/option"
	yt "google.golang.org/api/youtube/v3"

	"github.com/lumenlearn/lumenlearn-backend/internal/pkg/apperr"
	"github.com/lumenlearn/lumenlearn-backend/internal/pkg/ctxutil"
	"github.com/lumenlearn/lumenlearn-backend/internal/pkg/logger"
)

// Client looks up one video reference for a query. Zero results is not an
// error; the caller persists an empty reference.
type Client interface {
	Search(ctx context.Context, query string) (string, error)
}

type client struct {
	log     *logger.Logger
	svc     *yt.Service
	timeout time.Duration
}

func NewClient(log *logger.Logger) (Client, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}

	apiKey := strings.TrimSpace(os.Getenv("YOUTUBE_API_KEY"))
	if apiKey == "" {
		return nil, fmt.Errorf("missing YOUTUBE_API_KEY")
	}

	timeoutSec := 10
	if v := os.Getenv("YOUTUBE_TIMEOUT_SECONDS"); v != "" {
		if parsed, err := strconv.Atoi(strings.TrimSpace(v)); err == nil && parsed > 0 {
			timeoutSec = parsed
		}
	}

	opts := []option.ClientOption{option.WithAPIKey(apiKey)}
	if base := strings.TrimSpace(os.Getenv("YOUTUBE_BASE_URL")); base != "" {
		opts = append(opts, option.WithEndpoint(base))
	}

	svc, err := yt.NewService(context.Background(), opts...)
	if err != nil {
		return nil, fmt.Errorf("youtube service: %w", err)
	}

	return &client{
		log:     log.With("service", "YouTubeClient"),
		svc:     svc,
		timeout: time.Duration(timeoutSec) * time.Second,
	}, nil
}

func (c *client) Search(ctx context.Context, query string) (string, error) {
	ctx = ctxutil.Default(ctx)
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.svc.Search.List([]string{"snippet"}).
		Q(query).
		Type("video").
		MaxResults(1).
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("%w: video search failed: %v", apperr.ErrUpstream, err)
	}
	if len(resp.Items) == 0 || resp.Items[0].Id == nil {
		c.log.Warn("No videos found", "query", query)
		return "", nil
	}
	return resp.Items[0].Id.VideoId, nil
}
