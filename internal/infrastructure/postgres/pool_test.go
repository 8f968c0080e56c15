package postgres

import (
	"bytes"
	"context"
	"testing"

	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/ecommerce-admin-api/pkg/logger"
)

func TestQueryTracer_NivelSegunConfiguracion(t *testing.T) {
	log := logger.Nop()
	assert.Equal(t, tracelog.LogLevelError, queryTracer(log, false).LogLevel)
	assert.Equal(t, tracelog.LogLevelDebug, queryTracer(log, true).LogLevel)
}

func TestQueryTracer_EscribeEnZerolog(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "test", Level: "debug", Output: &buf})

	tr := queryTracer(log, true)
	tr.Logger.Log(context.Background(), tracelog.LogLevelError, "Query", map[string]any{"sql": "SELECT 1"})

	assert.Contains(t, buf.String(), `"message":"pgx: Query"`)
	assert.Contains(t, buf.String(), `"sql":"SELECT 1"`)
	assert.Contains(t, buf.String(), `"level":"error"`)
}

func TestZerologLevel(t *testing.T) {
	assert.Equal(t, zerolog.WarnLevel, zerologLevel(tracelog.LogLevelWarn))
	assert.Equal(t, zerolog.ErrorLevel, zerologLevel(tracelog.LogLevelNone))
}
