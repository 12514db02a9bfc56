package emit

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeConverter returns canned bytes or a canned error, and records
// whether it was invoked.
type fakeConverter struct {
	out    []byte
	err    error
	called bool
}

func (f *fakeConverter) Convert(_ context.Context, _ string) ([]byte, error) {
	f.called = true
	return f.out, f.err
}

func TestEmit_WritesOutputFile(t *testing.T) {
	conv := &fakeConverter{out: []byte("%PDF-1.7 fake")}
	emitter := NewEmitter(conv)
	path := filepath.Join(t.TempDir(), "resume.pdf")

	err := emitter.Emit(context.Background(), "<html></html>", path, nil)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.7 fake"), data)
}

func TestEmit_CreatesParentDirectories(t *testing.T) {
	conv := &fakeConverter{out: []byte("%PDF-1.7 fake")}
	emitter := NewEmitter(conv)
	path := filepath.Join(t.TempDir(), "new_dir", "nested", "resume.pdf")

	err := emitter.Emit(context.Background(), "<html></html>", path, nil)
	require.NoError(t, err)
	assert.FileExists(t, path)
}

func TestEmit_UnknownMetadataKeyRejectedBeforeConversion(t *testing.T) {
	conv := &fakeConverter{out: []byte("%PDF-1.7 fake")}
	emitter := NewEmitter(conv)
	path := filepath.Join(t.TempDir(), "resume.pdf")

	err := emitter.Emit(context.Background(), "<html></html>", path, map[string]string{"color": "red"})

	var ee *EmitError
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, UnknownMetadataKey, ee.Kind)
	assert.Equal(t, "color", ee.Subject)
	assert.False(t, conv.called, "conversion must not start on a bad metadata key")
	assert.NoFileExists(t, path)
}

func TestEmit_ConversionFailure(t *testing.T) {
	conv := &fakeConverter{err: errors.New("chrome exploded")}
	emitter := NewEmitter(conv)
	path := filepath.Join(t.TempDir(), "resume.pdf")

	err := emitter.Emit(context.Background(), "<html></html>", path, nil)

	var ee *EmitError
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, ConversionFailure, ee.Kind)
	assert.NoFileExists(t, path)
}

func TestEmit_UnwritablePath(t *testing.T) {
	conv := &fakeConverter{out: []byte("%PDF-1.7 fake")}
	emitter := NewEmitter(conv)

	// A file where a directory is needed makes MkdirAll fail.
	base := t.TempDir()
	blocker := filepath.Join(base, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	err := emitter.Emit(context.Background(), "<html></html>", filepath.Join(blocker, "resume.pdf"), nil)

	var ee *EmitError
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, IOFailure, ee.Kind)
}

func TestMapMetadata_RecognizedKeys(t *testing.T) {
	props, err := mapMetadata(map[string]string{
		"title":    "My Resume",
		"author":   "Test Person",
		"subject":  "Resume",
		"keywords": "go,backend,senior",
		"creator":  "resumegen",
		"producer": "resumegen",
	})
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		"Title":    "My Resume",
		"Author":   "Test Person",
		"Subject":  "Resume",
		"Keywords": "go,backend,senior",
		"Creator":  "resumegen",
		"Producer": "resumegen",
	}, props)
}

func TestMapMetadata_EmptyMap(t *testing.T) {
	props, err := mapMetadata(nil)
	require.NoError(t, err)
	assert.Nil(t, props)
}

func TestMapMetadata_UnknownKeyNamesOffender(t *testing.T) {
	_, err := mapMetadata(map[string]string{"title": "ok", "color": "red"})

	var ee *EmitError
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, UnknownMetadataKey, ee.Kind)
	assert.Contains(t, ee.Error(), "color")
}

func TestMapMetadata_KeysAreCaseSensitive(t *testing.T) {
	// Normalization is the CLI's job; the emitter enforces the closed set.
	_, err := mapMetadata(map[string]string{"Title": "x"})
	assert.Error(t, err)
}

func TestNewChromeConverter_DefaultTimeout(t *testing.T) {
	conv := NewChromeConverter()
	assert.Equal(t, DefaultConvertTimeout, conv.Timeout)
}
