package main

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/bodymark/internal/mesh"
	"github.com/Faultbox/bodymark/internal/meshfile"
	"github.com/Faultbox/bodymark/internal/meshtest"
)

// syncBuffer is a bytes.Buffer shared with the watcher's callback goroutine.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestWatchReloadsRewrittenMesh(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	path := writeStatsMesh(t)

	out := &syncBuffer{}
	cmd := newRootCmd()
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs([]string{"watch", "--mesh", path, "--debounce", "100ms"})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- cmd.ExecuteContext(ctx) }()

	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "---\n")
	}, 5*time.Second, 10*time.Millisecond)

	require.NoError(t, meshfile.Save(path, meshtest.Buffer(mesh.PhotoBufferLen, mesh.VariantPhoto)))
	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "variant: photo")
	}, 5*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop")
	}

	docs := strings.Split(out.String(), "---\n")
	require.GreaterOrEqual(t, len(docs), 2)

	var first map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(docs[0]), &first))
	info := first["info"].(map[string]any)
	assert.Equal(t, "stats", info["variant"])
	assert.NotNil(t, first["fit"])
	assert.Len(t, first["ring_points"], 6)
}

func TestWatchNeedsMesh(t *testing.T) {
	_, err := run(t, "watch")
	assert.ErrorIs(t, err, errNoMesh)
}
