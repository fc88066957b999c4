package logger

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNewWithWriter(t *testing.T) {
	buf := &bytes.Buffer{}
	log := NewWithWriter(buf)

	log.Info().Str("method", "iqr").Msg("report built")

	assert.Contains(t, buf.String(), "report built")
	assert.Contains(t, buf.String(), `"method":"iqr"`)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, zerolog.WarnLevel, ParseLevel("warn"))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel(""))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("loud"))
}

func TestNew_AppliesLevel(t *testing.T) {
	assert.Equal(t, zerolog.ErrorLevel, New("error").GetLevel())
}

func TestContextRoundTrip(t *testing.T) {
	buf := &bytes.Buffer{}
	ctx := WithContext(context.Background(), NewWithWriter(buf))

	log := FromContext(ctx)
	log.Info().Msg("from context")

	assert.Contains(t, buf.String(), "from context")
}

func TestFromContext_DefaultIsDisabled(t *testing.T) {
	log := FromContext(context.Background())
	assert.Equal(t, zerolog.Disabled, log.GetLevel())
}

func TestWithFields(t *testing.T) {
	buf := &bytes.Buffer{}
	ctx := WithContext(context.Background(), NewWithWriter(buf))

	ctx = WithFields(ctx, map[string]interface{}{"analyst_id": 7})
	log := FromContext(ctx)
	log.Info().Msg("scoped")

	assert.Contains(t, buf.String(), `"analyst_id":7`)
}
