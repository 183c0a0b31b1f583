package logger

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func newBufferLogger(level hclog.Level) (*GormLogger, *bytes.Buffer) {
	var buf bytes.Buffer
	log := hclog.New(&hclog.LoggerOptions{Name: "db", Level: level, Output: &buf})
	return NewGormLogger(log), &buf
}

func TestTraceExpectedErrorIsDebug(t *testing.T) {
	gl, buf := newBufferLogger(hclog.Debug)
	gl = gl.WithExpected(func(err error) bool { return errors.Is(err, gorm.ErrDuplicatedKey) })
	sql := func() (string, int64) { return `INSERT INTO "users"`, 0 }

	gl.Trace(context.Background(), time.Now(), sql, gorm.ErrDuplicatedKey)
	assert.Contains(t, buf.String(), "[DEBUG]")
	assert.Contains(t, buf.String(), "query rejected")
	assert.NotContains(t, buf.String(), "[ERROR]")

	buf.Reset()
	gl.Trace(context.Background(), time.Now(), sql, errors.New("connection reset"))
	assert.Contains(t, buf.String(), "[ERROR]")
	assert.Contains(t, buf.String(), "query failed")
}

func TestTraceSkipsRecordNotFound(t *testing.T) {
	gl, buf := newBufferLogger(hclog.Info)
	gl.Trace(context.Background(), time.Now(), func() (string, int64) { return "SELECT 1", 0 }, gorm.ErrRecordNotFound)
	assert.Empty(t, buf.String())
}
