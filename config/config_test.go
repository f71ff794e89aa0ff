package config_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/expki/go-dataminer/compute"
	"github.com/expki/go-dataminer/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	gormlogger "gorm.io/gorm/logger"
)

func TestParseConfig_OverlaysDefaults(t *testing.T) {
	cfg, err := config.ParseConfig([]byte(`{
		"similarity": {"top_n": 3, "with_std": false},
		"scrape": {"pages": 2, "timeout": "5s"},
		"database": {"postgres": "host=db", "postgres_readonly": ["host=r1", "host=r2"]},
		"log_level": "debug"
	}`))
	require.NoError(t, err)

	assert.Equal(t, compute.Options{TopN: 3, WithMean: true, WithStd: false}, cfg.Similarity.Options())
	assert.Equal(t, 2, cfg.Scrape.Pages)
	assert.Equal(t, 5*time.Second, cfg.Scrape.Timeout.Std())
	assert.Equal(t, "memory.txt", cfg.Scrape.Output, "unset fields keep their defaults")
	assert.Equal(t, config.SingleOrSlice[string]{"host=db"}, cfg.Database.Postgres)
	assert.Len(t, cfg.Database.PostgresReadOnly, 2)
	assert.True(t, cfg.Database.Enabled())
	assert.Equal(t, zap.DebugLevel, cfg.LogLevel.Zap().Level())
}

func TestParseConfig_Invalid(t *testing.T) {
	_, err := config.ParseConfig([]byte(`{"similarity": {"top_n": "ten"}}`))
	assert.Error(t, err)
}

func TestDuration_NumericSeconds(t *testing.T) {
	cfg, err := config.ParseConfig([]byte(`{"scrape": {"timeout": 1.5}}`))
	require.NoError(t, err)
	assert.Equal(t, 1500*time.Millisecond, cfg.Scrape.Timeout.Std())
}

func TestScrape_Validate(t *testing.T) {
	s := config.Default().Scrape
	assert.NoError(t, s.Validate())

	s.Pages = 0
	assert.Error(t, s.Validate())

	s = config.Default().Scrape
	s.Categories = nil
	assert.Error(t, s.Validate())

	s = config.Default().Scrape
	s.Concurrency = 0
	assert.Equal(t, 1, s.GetConcurrency())
}

func TestLogLevel_Mapping(t *testing.T) {
	assert.Equal(t, zap.WarnLevel, config.LogLevel("warning").Zap().Level())
	assert.Equal(t, zap.ErrorLevel, config.LogLevel("bogus").Zap().Level())
	assert.Equal(t, gormlogger.Info, config.LogLevelDebug.Gorm())
	assert.Equal(t, gormlogger.Silent, config.LogLevelSilent.Gorm())
	assert.Equal(t, gormlogger.Error, config.LogLevel("").Gorm())
}

func TestCreateSample_RoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, config.CreateSample(path))

	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "./dataminer.db", cfg.Database.Sqlite)
	assert.Equal(t, config.Default().Similarity, cfg.Similarity)
	assert.Equal(t, config.Default().Scrape.Categories, cfg.Scrape.Categories)
}

func TestClientTLS_MissingCAFile(t *testing.T) {
	_, err := config.ClientTLS{CAFiles: config.SingleOrSlice[string]{"/nonexistent/ca.pem"}}.Config()
	assert.Error(t, err)

	cfg, err := config.ClientTLS{}.Config()
	require.NoError(t, err)
	assert.Nil(t, cfg.RootCAs)
}
