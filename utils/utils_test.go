package utils

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// LOGGER TESTS
// ============================================================================

func TestLoggerOutputs(t *testing.T) {
	var userBuf bytes.Buffer
	SetUserOutput(&userBuf)
	defer SetUserOutput(nil)
	User("test user output")
	assert.Contains(t, userBuf.String(), "test user output")

	var internalBuf bytes.Buffer
	SetInternalOutput(&internalBuf)
	defer SetInternalOutput(nil)
	Info("test info output")
	Warn("test warn output")
	Error("test error output")
	out := internalBuf.String()
	assert.Contains(t, out, "test info output")
	assert.Contains(t, out, "WARN")
	assert.Contains(t, out, "test error output")
}

func TestSetLevel(t *testing.T) {
	var buf bytes.Buffer
	SetInternalOutput(&buf)
	defer SetInternalOutput(nil)
	defer SetLevel("info")

	SetLevel("warn")
	assert.Equal(t, "warn", Level())
	Info("hidden info")
	Warn("visible warn")
	assert.NotContains(t, buf.String(), "hidden info")
	assert.Contains(t, buf.String(), "visible warn")

	SetLevel("debug")
	Debug("visible debug")
	assert.Contains(t, buf.String(), "visible debug")

	SetLevel("nonsense")
	assert.Equal(t, "info", Level())
}

func TestErrorf(t *testing.T) {
	var buf bytes.Buffer
	SetInternalOutput(&buf)
	defer SetInternalOutput(nil)

	err := Errorf("wrapped: %s", "boom")
	require.Error(t, err)
	assert.Equal(t, "wrapped: boom", err.Error())
	assert.Contains(t, buf.String(), "wrapped: boom")
}

func TestContextLoggingIncludesRequestID(t *testing.T) {
	var buf bytes.Buffer
	SetInternalOutput(&buf)
	defer SetInternalOutput(nil)

	ctx := WithRequestID(context.Background(), "req-123")
	id, ok := RequestIDFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, "req-123", id)

	InfoCtx(ctx, "ctx message", "status", 502)
	out := buf.String()
	assert.Contains(t, out, "ctx message")
	assert.Contains(t, out, "req-123")
	assert.Contains(t, out, "502")

	_, ok = RequestIDFromContext(context.Background())
	assert.False(t, ok)
}

// ============================================================================
// HELPER TESTS
// ============================================================================

func TestWriteHTTPJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	err := WriteHTTPJSON(rec, http.StatusAccepted, map[string]string{"a": "b"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"a":"b"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	err = WriteHTTPJSON(rec, http.StatusOK, map[string]any{"bad": make(chan int)})
	assert.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, rec.Body.String())
}

func TestRequestID(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set("X-Request-Id", "from-client")
	assert.Equal(t, "from-client", RequestID(req))

	req = httptest.NewRequest(http.MethodPost, "/", nil)
	id := RequestID(req)
	assert.Len(t, id, 36)
	assert.NotEqual(t, id, RequestID(req))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "abc...", Truncate("abcdef", 3))
	assert.Equal(t, "abcdef", Truncate("abcdef", 0))
	// "é" is two bytes; cutting inside it backs up to the rune start
	out := Truncate("aé", 2)
	assert.Equal(t, "a...", out)
	assert.True(t, strings.HasSuffix(out, "..."))
}
