package service

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"casino_arcade/internal/domain"
	"casino_arcade/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditService_LogGame(t *testing.T) {
	var buf bytes.Buffer
	svc := NewAuditService(logger.New(&buf, "info", true))

	svc.LogGame(context.Background(), 7, "slots", 50, 100, true, nil)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "audit", entry["msg"])
	assert.Equal(t, "audit", entry["component"])
	assert.Equal(t, domain.AuditActionGameWin, entry["action"])
	assert.Equal(t, domain.AuditCategoryGame, entry["category"])
	assert.EqualValues(t, 7, entry["user_id"])

	details, ok := entry["details"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "slots", details["game_type"])
	assert.EqualValues(t, 100, details["win_amount"])
}

func TestAuditService_LogLoginWithRequest(t *testing.T) {
	var buf bytes.Buffer
	svc := NewAuditService(logger.New(&buf, "info", true))

	svc.LogLogin(context.Background(), 3, "10.0.0.1", "test-agent")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, domain.AuditActionLogin, entry["action"])
	assert.Equal(t, "10.0.0.1", entry["ip"])
	assert.Equal(t, "test-agent", entry["user_agent"])
	assert.NotContains(t, entry, "details")
}
