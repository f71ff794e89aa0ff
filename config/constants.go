package config

import "time"

const (
	BATCH_SIZE_DATABASE = 500

	CACHE_DURATION = 10 * time.Minute
	CACHE_CLEANUP  = time.Minute

	HTTP_MAX_BODY_BYTES int64 = 16 << 20
	HTTP_IDLE_TIMEOUT         = 90 * time.Second
)
