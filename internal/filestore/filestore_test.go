package filestore

import (
	"io/ioutil"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_Save(t *testing.T) {
	dir := t.TempDir()

	s, err := New(dir)
	require.NoError(t, err)

	path, err := s.Save("leaf.jpg", strings.NewReader("image-bytes"))
	require.NoError(t, err)

	assert.Equal(t, dir, filepath.Dir(path))
	assert.Regexp(t, regexp.MustCompile(`^\d+\.jpg$`), filepath.Base(path))

	b, err := ioutil.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "image-bytes", string(b))
}

func TestStore_Save_MultipleDots(t *testing.T) {
	s, err := New(t.TempDir())
	require.NoError(t, err)

	path, err := s.Save("my.leaf.photo.jpeg", strings.NewReader("x"))
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^\d+\.jpeg$`), filepath.Base(path))
}

// a name without a dot ends up as the extension, matching the original naming scheme
func TestStore_Save_NoExtension(t *testing.T) {
	s, err := New(t.TempDir())
	require.NoError(t, err)

	path, err := s.Save("leaf", strings.NewReader("x"))
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^\d+\.leaf$`), filepath.Base(path))
}

func TestNew_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "images")

	_, err := New(dir)
	require.NoError(t, err)

	fi, err := ioutil.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, fi)
}
