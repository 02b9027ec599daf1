package fonts

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ordigital/spotled-gui/internal/logger"
)

const sampleFont = `{
	"name": "Tiny",
	"width": 4,
	"height": 3,
	"chars": {
		"A": ["####", "#  #", "#  #"],
		"?": ["##", "#"]
	}
}`

func TestParseNormalizesGlyphs(t *testing.T) {
	font, err := Parse("tiny.slf", []byte(sampleFont))
	require.NoError(t, err)
	assert.Equal(t, "Tiny", font.Name)
	assert.Equal(t, 4, font.Width)
	assert.Equal(t, 3, font.Height)

	assert.Equal(t, []string{"1111", "1..1", "1..1"}, font.Glyphs['A'])
	assert.Equal(t, []string{"11..", "1...", "...."}, font.Glyphs['?'],
		"short rows are padded and missing rows filled")
}

func TestParseSynthesizesSpaceGlyph(t *testing.T) {
	font, err := Parse("tiny.slf", []byte(sampleFont))
	require.NoError(t, err)
	assert.Equal(t, []string{"....", "....", "...."}, font.Glyphs[' '])
}

func TestParseNameFallsBackToFilename(t *testing.T) {
	font, err := Parse("myfont.slf", []byte(`{"width":2,"height":2,"chars":{"A":["##"]}}`))
	require.NoError(t, err)
	assert.Equal(t, "myfont", font.Name)
}

func TestParseErrors(t *testing.T) {
	_, err := Parse("x.slf", []byte("{"))
	require.Error(t, err)

	_, err = Parse("x.slf", []byte(`{"width":0,"height":3,"chars":{"A":[]}}`))
	require.Error(t, err)

	_, err = Parse("x.slf", []byte(`{"width":4,"height":3,"chars":{}}`))
	require.Error(t, err)
}

func TestGlyphFallbackChain(t *testing.T) {
	font, err := Parse("tiny.slf", []byte(sampleFont))
	require.NoError(t, err)

	assert.Equal(t, font.Glyphs['A'], font.Glyph('A'))
	assert.Equal(t, font.Glyphs['?'], font.Glyph('Z'), "unknown characters use '?'")

	noQuestion, err := Parse("x.slf", []byte(`{"width":2,"height":1,"chars":{"A":["##"]}}`))
	require.NoError(t, err)
	assert.Equal(t, noQuestion.Glyphs[' '], noQuestion.Glyph('Z'), "then the space glyph")
}

func TestLoadDir(t *testing.T) {
	tmp := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmp, "tiny.slf"), []byte(sampleFont), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(tmp, "broken.slf"), []byte("nope"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(tmp, "ignored.txt"), []byte("x"), 0644))

	lib := LoadDir(tmp, logger.Nop{})
	assert.Equal(t, []string{"tiny.slf"}, lib.IDs(), "broken and non-slf files are skipped")

	font := lib.Get("tiny.slf")
	require.NotNil(t, font)
	assert.Equal(t, "Tiny", font.Name)
}

func TestLoadDirMissingDirectory(t *testing.T) {
	lib := LoadDir(filepath.Join(t.TempDir(), "absent"), logger.Nop{})
	assert.Empty(t, lib.IDs())
	assert.Nil(t, lib.Get(BuiltinID))
}
