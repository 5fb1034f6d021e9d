package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

// Config is centralized process configuration.
// Keep infra values here and pass typed config into builders.
type Config struct {
	ServiceName string `env:"SERVICE_NAME,default=clout"`
	HTTPPort    string `env:"HTTP_PORT,default=8080"`
	PostgresDSN string `env:"POSTGRES_DSN"`

	StoragePublicBaseURL string `env:"STORAGE_PUBLIC_BASE_URL,default=https://cdn.clout.local"`
	StorageUploadBaseURL string `env:"STORAGE_UPLOAD_BASE_URL,default=https://storage.clout.local/upload"`

	SubmissionRatePerMinute int `env:"SUBMISSION_RATE_PER_MINUTE,default=10"`
	SubmissionRateBurst     int `env:"SUBMISSION_RATE_BURST,default=3"`

	EnableEntriesConsumer  bool `env:"ENABLE_ENTRIES_CONSUMER,default=true"`
	EnableReconciliation   bool `env:"ENABLE_RECONCILIATION,default=true"`
	ReconcileIntervalSecs  int  `env:"RECONCILE_INTERVAL_SECONDS,default=300"`
	OutboxRelayBatchSize   int  `env:"OUTBOX_RELAY_BATCH_SIZE,default=100"`
	WorkerPollIntervalSecs int  `env:"WORKER_POLL_INTERVAL_SECONDS,default=2"`
}

func Load(ctx context.Context) (Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return Config{}, fmt.Errorf("process environment config: %w", err)
	}
	return cfg, nil
}
