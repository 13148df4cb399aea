package terminal

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeRawRejectsNonTerminal(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "not-a-tty")
	require.NoError(t, err)
	defer f.Close()

	assert.False(t, IsTerminal(f.Fd()))
	restore, err := MakeRaw(f.Fd())
	assert.Error(t, err)
	assert.Nil(t, restore)
}

func TestWidthFallsBack(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "not-a-tty")
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, DefaultWidth, Width(f.Fd()))
}

func TestCRLF(t *testing.T) {
	var buf bytes.Buffer
	w := CRLF{W: &buf}

	n, err := w.Write([]byte("a\nb\r\nc"))
	require.NoError(t, err)
	assert.Equal(t, 6, n)
	assert.Equal(t, "a\r\nb\r\nc", buf.String())
}
