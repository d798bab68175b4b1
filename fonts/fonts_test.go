package fonts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	require.NoError(t, LoadDefaults())

	for _, name := range []FontName{Regular, Bold, Banner, Small} {
		assert.NotNil(t, name.Get(), "font %s", name)
	}
}

func TestLoadFontWithSize_InvalidData(t *testing.T) {
	err := LoadFontWithSize("broken", []byte("not a font"), 12)
	assert.Error(t, err)
	assert.Panics(t, func() { FontName("broken").Get() })
}
