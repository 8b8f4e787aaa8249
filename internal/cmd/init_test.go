package cmd

import (
	"path/filepath"
	"testing"

	"github.com/DevCompass/compass-cli/internal/util/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunInitProject(t *testing.T) {
	t.Chdir(t.TempDir())
	initProject = true
	initForce = false
	t.Cleanup(func() { initProject = false })

	require.NoError(t, runInit(initCmd, nil))
	require.True(t, config.ProjectConfigExists())

	proj, err := config.LoadProjectConfig()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(".compass", "keywords.yaml"), proj.KeywordsPath)
	assert.Empty(t, proj.HistoryDir)

	// Without --force the existing file is kept.
	require.NoError(t, runInit(initCmd, nil))
}
