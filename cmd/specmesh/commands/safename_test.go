package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupSafeNameFlags(t *testing.T) {
	fs, flags := SetupSafeNameFlags()
	require.NoError(t, fs.Parse([]string{"--fallback", "My Service"}))

	assert.True(t, flags.Fallback)
	assert.Equal(t, []string{"My Service"}, fs.Args())
}

func TestHandleSafeNameArgCount(t *testing.T) {
	assert.Error(t, HandleSafeName([]string{}))
	assert.Error(t, HandleSafeName([]string{"a", "b"}))
}

func TestHandleSafeName(t *testing.T) {
	assert.NoError(t, HandleSafeName([]string{"My Service! 2.0"}))
	assert.NoError(t, HandleSafeName([]string{"--fallback", "!!!"}))
}
