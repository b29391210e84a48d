package frogger

import (
	"errors"
	"fmt"
	"os"
	"unicode"
	"unicode/utf8"
)

// DefaultGlyph is drawn for the player when nothing else is configured.
const DefaultGlyph = '@'

var errEmptySprite = errors.New("sprite file has no visible character")

// LoadGlyph returns the first visible rune of the sprite file at path.
func LoadGlyph(path string) (rune, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("frogger: read sprite %s: %w", path, err)
	}
	for len(data) > 0 {
		r, size := utf8.DecodeRune(data)
		data = data[size:]
		if r != utf8.RuneError && !unicode.IsSpace(r) && unicode.IsPrint(r) {
			return r, nil
		}
	}
	return 0, fmt.Errorf("frogger: sprite %s: %w", path, errEmptySprite)
}

// glyphFromString returns the first rune of s, or DefaultGlyph.
func glyphFromString(s string) rune {
	if r, _ := utf8.DecodeRuneInString(s); r != utf8.RuneError && !unicode.IsSpace(r) {
		return r
	}
	return DefaultGlyph
}
