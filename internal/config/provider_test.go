package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestINIProviderSections(t *testing.T) {
	path := writeINI(t, "Prefix = A\noutput = text\n\n[hkid]\noutput = json\n\n[unrelated]\nlenient = true\n")
	got, err := INIProvider(path).Read()
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"prefix": "A", "output": "json"}, got)
}

func TestINIProviderErrors(t *testing.T) {
	_, err := INIProvider("/nonexistent/hkid.ini").Read()
	assert.Error(t, err)

	_, err = INIProvider("x").ReadBytes()
	assert.Error(t, err)
}

func TestMapProviderCopies(t *testing.T) {
	src := map[string]any{"lenient": true}
	got, err := mapProvider(src).Read()
	require.NoError(t, err)
	got["lenient"] = false
	assert.Equal(t, true, src["lenient"])

	_, err = mapProvider(src).ReadBytes()
	assert.Error(t, err)
}
