package types

import (
	"fmt"
)

// Glyph упаковывает символ и его цвет в одно 32-битное значение:
//
//	[0:8]  - ASCII символ (маска 0xFF)
//	[8:32] - RGB цвет (маска 0xFFFFFF)
//
// Все символы подземелья однобайтовые, поэтому рендер (терминал или JSON)
// распаковывает глиф без аллокаций.
type Glyph uint32

const (
	bitsChar  = 8
	bitsColor = 24

	shiftColor = bitsChar

	maskChar  = (1 << bitsChar) - 1
	maskColor = (1 << bitsColor) - 1
)

// Палитра подземелья.
const (
	ColorWhite     uint32 = 0xFFFFFF
	ColorYellow    uint32 = 0xFFFF00
	ColorGreen     uint32 = 0x00FF00
	ColorDarkGreen uint32 = 0x009900
	ColorDarkRed   uint32 = 0xCC0000
	ColorViolet    uint32 = 0x7F00FF
	ColorLightBlue uint32 = 0x72B7FF
	ColorOrange    uint32 = 0xFF8C00

	ColorDarkWall    uint32 = 0x000064
	ColorLightWall   uint32 = 0x826E32
	ColorDarkGround  uint32 = 0x323296
	ColorLightGround uint32 = 0xC8B432
)

// MakeGlyph собирает Glyph из RGB-цвета (0xRRGGBB) и ASCII символа.
// Лишние старшие биты цвета отбрасываются.
func MakeGlyph(colorRGB uint32, char byte) Glyph {
	return Glyph((colorRGB&maskColor)<<shiftColor | (uint32(char) & maskChar))
}

// Color возвращает цвет в формате 0xRRGGBB.
func (g Glyph) Color() uint32 {
	return uint32(g>>shiftColor) & maskColor
}

// Char возвращает символ.
func (g Glyph) Char() byte {
	return byte(g & maskChar)
}

// Rune удобен для tcell.SetContent.
func (g Glyph) Rune() rune {
	return rune(g.Char())
}

// WithColor возвращает тот же символ другим цветом.
func (g Glyph) WithColor(colorRGB uint32) Glyph {
	return MakeGlyph(colorRGB, g.Char())
}

// HexColor возвращает цвет строкой вида "#00FF00".
func (g Glyph) HexColor() string {
	return fmt.Sprintf("#%06X", g.Color())
}

// String реализует fmt.Stringer: "Glyph{char='o', color=#00FF00}".
func (g Glyph) String() string {
	char := g.Char()
	charStr := string([]byte{char})
	if char < 32 || char > 126 {
		charStr = fmt.Sprintf("\\x%02X", char)
	}
	return fmt.Sprintf("Glyph{char='%s', color=%s}", charStr, g.HexColor())
}
