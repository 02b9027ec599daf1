// Package fonts loads .slf bitmap fonts: small JSON documents describing
// fixed-size glyphs as rows of '#'/'.' characters.
package fonts

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ordigital/spotled-gui/internal/logger"
)

// BuiltinID identifies the font baked into the display firmware; it is never
// present in the library.
const BuiltinID = "__builtin__"

// Font is one loaded .slf font. Glyph rows are normalized to width
// characters of '1'/'.'.
type Font struct {
	ID     string
	Name   string
	Width  int
	Height int
	Glyphs map[rune][]string
}

// Glyph returns the rows for ch, falling back to '?', then space, then any
// glyph at all. A loaded font always has at least a space glyph.
func (f *Font) Glyph(ch rune) []string {
	if rows, ok := f.Glyphs[ch]; ok {
		return rows
	}
	if rows, ok := f.Glyphs['?']; ok {
		return rows
	}
	if rows, ok := f.Glyphs[' ']; ok {
		return rows
	}
	for _, rows := range f.Glyphs {
		return rows
	}
	return nil
}

type fontFile struct {
	Name   string              `json:"name"`
	Width  int                 `json:"width"`
	Height int                 `json:"height"`
	Chars  map[string][]string `json:"chars"`
}

// Parse reads one .slf document. id becomes the font's stable identifier in
// settings and selectors.
func Parse(id string, data []byte) (*Font, error) {
	var raw fontFile
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse font file: %w", err)
	}
	if raw.Width <= 0 || raw.Height <= 0 {
		return nil, fmt.Errorf("font width/height must be positive")
	}
	if len(raw.Chars) == 0 {
		return nil, fmt.Errorf("font file is missing glyph data")
	}

	name := strings.TrimSpace(raw.Name)
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(id), filepath.Ext(id))
	}

	blank := strings.Repeat(".", raw.Width)
	glyphs := make(map[rune][]string, len(raw.Chars))
	for key, rows := range raw.Chars {
		if key == "" {
			continue
		}
		ch := []rune(key)[0]
		glyphs[ch] = normalizeGlyph(rows, raw.Width, raw.Height, blank)
	}
	if _, ok := glyphs[' ']; !ok {
		space := make([]string, raw.Height)
		for i := range space {
			space[i] = blank
		}
		glyphs[' '] = space
	}

	return &Font{
		ID:     id,
		Name:   name,
		Width:  raw.Width,
		Height: raw.Height,
		Glyphs: glyphs,
	}, nil
}

// normalizeGlyph pads or truncates rows to exactly height lines of width
// characters, mapping '#' to '1' and ' ' to '.'.
func normalizeGlyph(rows []string, width, height int, blank string) []string {
	out := make([]string, height)
	for i := 0; i < height; i++ {
		row := ""
		if i < len(rows) {
			row = rows[i]
		}
		row = strings.ReplaceAll(row, "#", "1")
		row = strings.ReplaceAll(row, " ", ".")
		if len(row) < width {
			row += strings.Repeat(".", width-len(row))
		} else if len(row) > width {
			row = row[:width]
		}
		out[i] = row
	}
	if len(out) == 0 {
		out = []string{blank}
	}
	return out
}

// Library holds the fonts discovered in the fonts directory.
type Library struct {
	fonts map[string]*Font
}

// LoadDir scans dir for .slf files. Files that fail to parse are logged and
// skipped; a missing directory yields an empty library.
func LoadDir(dir string, log logger.Logger) *Library {
	lib := &Library{fonts: make(map[string]*Font)}
	entries, err := os.ReadDir(dir)
	if err != nil {
		log.Debug("Fonts", "no fonts directory", map[string]interface{}{"dir": dir})
		return lib
	}
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".slf") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			log.Warning("Fonts", "could not read font file", map[string]interface{}{"path": path, "error": err.Error()})
			continue
		}
		font, err := Parse(entry.Name(), data)
		if err != nil {
			log.Warning("Fonts", "could not load font file", map[string]interface{}{"path": path, "error": err.Error()})
			continue
		}
		lib.fonts[font.ID] = font
		log.Info("Fonts", "font loaded", map[string]interface{}{
			"id":     font.ID,
			"name":   font.Name,
			"glyphs": len(font.Glyphs),
		})
	}
	return lib
}

// Get returns the font with the given id, or nil. BuiltinID always returns
// nil: the builtin font lives on the device.
func (l *Library) Get(id string) *Font {
	return l.fonts[id]
}

// IDs lists loaded font ids in a stable order.
func (l *Library) IDs() []string {
	ids := make([]string, 0, len(l.fonts))
	for id := range l.fonts {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
