package extractor_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"xurl/pkg/extractor"

	"github.com/stretchr/testify/require"
)

func TestExtract_MergesAndDeduplicates(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.smali"),
		[]byte("https://api.example.com/v1/data\nhttp://cdn.test.org/x.js\n"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "res"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "res", "b.xml"),
		[]byte(`<string name="api">https://api.example.com/v1/data</string>`), 0o644))

	urls, stats, err := extractor.New().Extract(context.Background(), root)
	require.NoError(t, err)

	require.Equal(t, 2, stats.Scanned)
	require.Equal(t, []string{"http://cdn.test.org/x.js", "https://api.example.com/v1/data"}, urls.Sorted())
}

func TestExtract_NoMatches(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.txt"), []byte("nothing to see"), 0o644))

	urls, stats, err := extractor.New().Extract(context.Background(), root)
	require.NoError(t, err)
	require.Equal(t, 1, stats.Scanned)
	require.Zero(t, urls.Len())
}

func TestExtract_IsDeterministic(t *testing.T) {
	root := t.TempDir()
	for i, body := range []string{"https://b.example https://a.example", "https://c.example\nhttps://a.example"} {
		name := filepath.Join(root, string(rune('a'+i))+".txt")
		require.NoError(t, os.WriteFile(name, []byte(body), 0o644))
	}

	first, _, err := extractor.New().Extract(context.Background(), root)
	require.NoError(t, err)
	second, _, err := extractor.New().Extract(context.Background(), root)
	require.NoError(t, err)

	require.Equal(t, first.Sorted(), second.Sorted())
}

func TestExtract_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := extractor.New().Extract(ctx, t.TempDir())
	require.ErrorIs(t, err, context.Canceled)
}
