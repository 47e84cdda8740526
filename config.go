package stylora

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/stylora/stylora-go/catalog"
	"github.com/stylora/stylora-go/internal/core"
	"github.com/stylora/stylora-go/metrics"
	"github.com/stylora/stylora-go/transport"
)

// EnvAPIKey is consulted when Config.APIKey is empty.
const EnvAPIKey = "STYLORA_API_KEY"

// DefaultBaseURL is the production API endpoint.
const DefaultBaseURL = "https://api.stylora.ai"

// Config configures either facade. The zero value plus an API key in the
// environment is a working production setup.
type Config struct {
	// APIKey authenticates every request. When empty, the STYLORA_API_KEY
	// environment variable is used; if that is empty too, construction
	// fails with catalog.ErrValidation.
	APIKey string

	// BaseURL overrides the API endpoint, mainly for test servers.
	BaseURL string

	// Timeout bounds each HTTP exchange. Default 30s. Ignored when
	// Transport is set.
	Timeout time.Duration

	// Logger receives debug/error events. Default zap.NewNop().
	Logger *zap.Logger

	// Metrics, when set, records per-operation counters and durations.
	Metrics *metrics.Metrics

	// Transport replaces the default net/http transport. It must be safe
	// for concurrent use.
	Transport transport.Transport
}

// newCore resolves the credential and assembles the shared core. Credential
// resolution happens here, once, so a missing key fails at construction
// instead of on the first call.
func newCore(cfg Config) (*core.Core, error) {
	apiKey, err := resolveAPIKey(cfg.APIKey)
	if err != nil {
		return nil, err
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	t := cfg.Transport
	if t == nil {
		baseURL := cfg.BaseURL
		if baseURL == "" {
			baseURL = DefaultBaseURL
		}
		t = transport.New(transport.Config{
			BaseURL: baseURL,
			Timeout: cfg.Timeout,
		}, logger)
	}

	return core.New(t, apiKey, logger, cfg.Metrics), nil
}

func resolveAPIKey(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if key := os.Getenv(EnvAPIKey); key != "" {
		return key, nil
	}
	return "", fmt.Errorf("%w: missing API key", catalog.ErrValidation)
}
