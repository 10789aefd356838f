package application

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-cli/internal/config"
)

type trackingReader struct {
	io.Reader
	closed bool
}

func (that *trackingReader) Close() error {
	that.closed = true
	return nil
}

func TestRunApp(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("Plays a session on memory storage and closes the input", func(t *testing.T) {
		// Given: a memory-backed configuration and a one-round script
		conf := &config.Config{Storage: config.StorageMemory, Terminal: config.Terminal{EmptyGlyph: "_", NoColor: true}}
		in := &trackingReader{Reader: strings.NewReader("2\n1 1\n2 1\n1 2\nno\n")}
		var out bytes.Buffer

		// When: the app runs
		err := RunApp(logger, conf, in, &out)

		// Then: the round finishes and the input is released
		require.NoError(t, err)
		assert.Contains(t, out.String(), "X wins!")
		assert.Contains(t, out.String(), "Goodbye!")
		assert.True(t, in.closed)
	})

	t.Run("Unknown storage type", func(t *testing.T) {
		// Given: a configuration naming an unsupported storage
		conf := &config.Config{Storage: "sqlite"}
		in := &trackingReader{Reader: strings.NewReader("")}

		// When: the app runs
		err := RunApp(logger, conf, in, io.Discard)

		// Then: ErrUnknownStorageType is returned and the input is still closed
		require.ErrorIs(t, err, ErrUnknownStorageType)
		assert.True(t, in.closed)
	})
}
