package logger_test

import (
	"testing"

	"github.com/expki/go-dataminer/logger"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestSet_RoutesSugar(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	logger.Set(zap.New(core))
	t.Cleanup(func() { logger.Set(nil) })

	logger.Sugar().Debugf("hidden %d", 1)
	logger.Sugar().Infof("visible %d", 2)

	entries := logs.All()
	if assert.Len(t, entries, 1) {
		assert.Equal(t, "visible 2", entries[0].Message)
	}
}

func TestSet_NilFallsBackToNop(t *testing.T) {
	logger.Set(nil)
	assert.NotNil(t, logger.Logger())
	assert.NotPanics(t, func() { logger.Sugar().Errorf("dropped") })
}
