package config

import (
	"os"
	"path/filepath"
	"testing"

	"projboard/internal/form"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load(Path(dir))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "projboard.log"), cfg.LogFile)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, form.DefaultRules(), cfg.FormRules())
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := Path(filepath.Join(dir, "nested"))

	cfg := Default(dir)
	cfg.LogLevel = "debug"
	cfg.PeopleMax = 9
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := Path(dir)
	require.NoError(t, os.WriteFile(path, []byte(`{"people_max": 12}`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.PeopleMax)
	assert.Equal(t, 1, cfg.PeopleMin)
	assert.Equal(t, 300, cfg.DescriptionMaxLength)
}

func TestLoadRejectsBadFiles(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "not json", content: `{`},
		{name: "inverted range", content: `{"people_min": 6, "people_max": 2}`},
		{name: "negative", content: `{"description_max_length": -1}`},
		{name: "bad level", content: `{"log_level": "loud"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := Path(t.TempDir())
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}
