package cancellablereader

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadAllWithContext(t *testing.T) {
	body := strings.Repeat("Zapomenutá krypta hrůzy\n", 200)
	got, err := ReadAllWithContext(context.Background(), strings.NewReader(body))
	require.NoError(t, err)
	assert.Equal(t, body, string(got))
}

func TestReadAllWithContext_Cancelled(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		_, _ = pw.Write([]byte("partial"))
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	_, err := ReadAllWithContext(ctx, pr)
	assert.ErrorIs(t, err, context.Canceled)
}
