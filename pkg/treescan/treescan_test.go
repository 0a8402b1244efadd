package treescan_test

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"testing"
	"xurl/pkg/treescan"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path string, data []byte) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, data, 0o644))
}

// tempDir returns a resolved temp dir so paths reported by Scan compare equal.
func tempDir(t *testing.T) string {
	t.Helper()

	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)

	return dir
}

func collect(t *testing.T, root string) (map[string]string, treescan.Stats) {
	t.Helper()

	files := map[string]string{}
	stats, err := treescan.Scan(context.Background(), root, func(f treescan.File) {
		files[f.Path] = f.Text
	})
	require.NoError(t, err)

	return files, stats
}

func TestReadText_DropsInvalidUTF8(t *testing.T) {
	path := filepath.Join(t.TempDir(), "classes.dex")
	writeFile(t, path, []byte("https://ex\xffample.com/\xc3\x28ok é"))

	text, err := treescan.ReadText(path)
	require.NoError(t, err)
	require.Equal(t, "https://example.com/(ok é", text)
}

func TestReadText_KeepsReplacementCharacter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "strings.xml")
	writeFile(t, path, []byte("https://a.example/\uFFFDx https://a.example/x\xff"))

	text, err := treescan.ReadText(path)
	require.NoError(t, err)
	require.Equal(t, "https://a.example/\uFFFDx https://a.example/x", text)
}

func TestReadText_SequencesAcrossChunkBoundaries(t *testing.T) {
	var data []byte
	want := ""
	for len(data) < 3*4096 {
		// a 3-byte rune, an invalid byte and a 4-byte rune shift through every offset
		data = append(data, "€\xfe𝄞a"...)
		want += "€𝄞a"
	}
	path := filepath.Join(t.TempDir(), "resources.arsc")
	writeFile(t, path, data)

	text, err := treescan.ReadText(path)
	require.NoError(t, err)
	require.Equal(t, want, text)
}

func TestReadText_TruncatedSequenceAtEOF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tail.bin")
	writeFile(t, path, []byte("https://a.example/\xe2\x82"))

	text, err := treescan.ReadText(path)
	require.NoError(t, err)
	require.Equal(t, "https://a.example/", text)
}

func TestReadText_MissingFile(t *testing.T) {
	_, err := treescan.ReadText(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
}

func TestScan_DescendsDirectories(t *testing.T) {
	root := tempDir(t)
	writeFile(t, filepath.Join(root, "AndroidManifest.xml"), []byte("manifest"))
	writeFile(t, filepath.Join(root, "smali", "com", "app", "Api.smali"), []byte("api"))
	writeFile(t, filepath.Join(root, "res", "values", "strings.xml"), []byte("strings"))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "empty", "dir"), 0o755))

	files, stats := collect(t, root)

	require.Equal(t, treescan.Stats{Scanned: 3}, stats)
	paths := make([]string, 0, len(files))
	for p := range files {
		rel, err := filepath.Rel(root, p)
		require.NoError(t, err)
		paths = append(paths, filepath.ToSlash(rel))
	}
	sort.Strings(paths)
	require.Equal(t, []string{"AndroidManifest.xml", "res/values/strings.xml", "smali/com/app/Api.smali"}, paths)
}

func TestScan_SingleFileRoot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.apk")
	writeFile(t, path, []byte("PK\x03\x04 http://raw.example/x"))

	files, stats := collect(t, path)

	require.Equal(t, treescan.Stats{Scanned: 1}, stats)
	require.Len(t, files, 1)
	for _, text := range files {
		require.Contains(t, text, "http://raw.example/x")
	}
}

func TestScan_MissingRootIsEmpty(t *testing.T) {
	files, stats := collect(t, filepath.Join(t.TempDir(), "missing_src"))

	require.Empty(t, files)
	require.Equal(t, 0, stats.Scanned)
	require.Equal(t, 1, stats.Skipped)
}

func TestScan_SkipsBrokenAndDirectorySymlinks(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need elevated privileges on windows")
	}

	root := tempDir(t)
	writeFile(t, filepath.Join(root, "real.txt"), []byte("real"))
	require.NoError(t, os.Symlink(filepath.Join(root, "gone.txt"), filepath.Join(root, "dangling")))
	require.NoError(t, os.Symlink(filepath.Join(root, "real.txt"), filepath.Join(root, "alias.txt")))

	other := t.TempDir()
	writeFile(t, filepath.Join(other, "outside.txt"), []byte("outside"))
	require.NoError(t, os.Symlink(other, filepath.Join(root, "linked_dir")))

	files, stats := collect(t, root)

	require.Equal(t, 2, stats.Scanned, "real file and its file symlink are read")
	require.Equal(t, 2, stats.Skipped, "dangling link and directory link are skipped")
	require.NotContains(t, files, filepath.Join(root, "linked_dir", "outside.txt"))
}

func TestScan_StopsOnCancel(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.txt"), []byte("a"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	visited := 0
	_, err := treescan.Scan(ctx, root, func(treescan.File) { visited++ })
	require.ErrorIs(t, err, context.Canceled)
	require.Zero(t, visited)
}
