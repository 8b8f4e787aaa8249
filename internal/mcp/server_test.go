package mcp

import (
	"testing"

	"github.com/DevCompass/compass-cli/internal/engine/dict"
	"github.com/DevCompass/compass-cli/internal/history"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	store, err := history.New(history.Config{DataDir: t.TempDir()})
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return NewServer(dict.Default(), store)
}

func TestHandleClassifyTask(t *testing.T) {
	s := newTestServer(t)

	out, err := s.handleClassifyTask(ClassifyTaskInput{TaskText: "fix the payment bug"})
	require.NoError(t, err)
	assert.Equal(t, "CompleteSystem", out["workflow"])
	assert.Equal(t, 0.85, out["confidence"])
	assert.Equal(t, false, out["security_scan_recommended"])
}

func TestHandleClassifyTaskEmpty(t *testing.T) {
	s := newTestServer(t)

	_, err := s.handleClassifyTask(ClassifyTaskInput{TaskText: "   "})
	assert.Error(t, err)
}

func TestHandleClassifyTaskRecord(t *testing.T) {
	s := newTestServer(t)

	_, err := s.handleClassifyTask(ClassifyTaskInput{TaskText: "fix typo", Record: true})
	require.NoError(t, err)

	recent, err := s.store.Recent(10)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, "fix typo", recent[0].TaskText)
	assert.Equal(t, "Orchestrated", recent[0].Workflow)
}

func TestHandleListKeywords(t *testing.T) {
	s := newTestServer(t)

	out, err := s.handleListKeywords(ListKeywordsInput{})
	require.NoError(t, err)
	assert.Len(t, out, 6)

	out, err = s.handleListKeywords(ListKeywordsInput{Category: dict.HighRisk})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Contains(t, out[dict.HighRisk], "production")

	_, err = s.handleListKeywords(ListKeywordsInput{Category: "nope"})
	assert.Error(t, err)
}

func TestHandleStats(t *testing.T) {
	s := newTestServer(t)

	out, err := s.handleStats()
	require.NoError(t, err)
	assert.Equal(t, 0, out["total_decisions"])

	s2 := NewServer(dict.Default(), nil)
	_, err = s2.handleStats()
	assert.Error(t, err)
}
