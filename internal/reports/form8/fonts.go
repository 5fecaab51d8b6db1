package form8

import (
	"bytes"

	"github.com/spf13/afero"
)

// Семейства, под которыми шрифты регистрируются в рендерере.
const (
	FamilyRegular = "form8-regular"
	FamilyBold    = "form8-bold"
)

// FontKind - откуда взят шрифт.
type FontKind string

const (
	FontSerif   FontKind = "serif"
	FontSans    FontKind = "sans"
	FontBuiltIn FontKind = "builtin"
)

// FontFace - найденный на диске TTF или встроенный шрифт (Path пустой).
type FontFace struct {
	Kind FontKind
	Path string
	Data []byte
}

func (f FontFace) BuiltIn() bool { return f.Kind == FontBuiltIn || len(f.Data) == 0 }

// FontSet выбирается один раз при старте и дальше только читается.
type FontSet struct {
	Regular FontFace
	Bold    FontFace
}

type fontCandidate struct {
	kind FontKind
	path string
}

// Порядок важен: сначала serif, потом sans.
var (
	regularCandidates = []fontCandidate{
		{FontSerif, "/usr/share/fonts/truetype/dejavu/DejaVuSerif.ttf"},
		{FontSerif, "/usr/share/fonts/dejavu/DejaVuSerif.ttf"},
		{FontSerif, "/usr/share/fonts/TTF/DejaVuSerif.ttf"},
		{FontSerif, "/usr/share/fonts/truetype/liberation/LiberationSerif-Regular.ttf"},
		{FontSerif, "/usr/share/fonts/liberation/LiberationSerif-Regular.ttf"},
		{FontSerif, "/Library/Fonts/Times New Roman.ttf"},
		{FontSerif, "C:/Windows/Fonts/times.ttf"},
		{FontSans, "/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf"},
		{FontSans, "/usr/share/fonts/dejavu/DejaVuSans.ttf"},
		{FontSans, "/usr/share/fonts/TTF/DejaVuSans.ttf"},
		{FontSans, "/usr/share/fonts/truetype/liberation/LiberationSans-Regular.ttf"},
		{FontSans, "/usr/share/fonts/liberation/LiberationSans-Regular.ttf"},
		{FontSans, "/Library/Fonts/Arial.ttf"},
		{FontSans, "C:/Windows/Fonts/arial.ttf"},
	}
	boldCandidates = []fontCandidate{
		{FontSerif, "/usr/share/fonts/truetype/dejavu/DejaVuSerif-Bold.ttf"},
		{FontSerif, "/usr/share/fonts/dejavu/DejaVuSerif-Bold.ttf"},
		{FontSerif, "/usr/share/fonts/TTF/DejaVuSerif-Bold.ttf"},
		{FontSerif, "/usr/share/fonts/truetype/liberation/LiberationSerif-Bold.ttf"},
		{FontSerif, "/usr/share/fonts/liberation/LiberationSerif-Bold.ttf"},
		{FontSerif, "/Library/Fonts/Times New Roman Bold.ttf"},
		{FontSerif, "C:/Windows/Fonts/timesbd.ttf"},
		{FontSans, "/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf"},
		{FontSans, "/usr/share/fonts/dejavu/DejaVuSans-Bold.ttf"},
		{FontSans, "/usr/share/fonts/TTF/DejaVuSans-Bold.ttf"},
		{FontSans, "/usr/share/fonts/truetype/liberation/LiberationSans-Bold.ttf"},
		{FontSans, "/usr/share/fonts/liberation/LiberationSans-Bold.ttf"},
		{FontSans, "/Library/Fonts/Arial Bold.ttf"},
		{FontSans, "C:/Windows/Fonts/arialbd.ttf"},
	}
)

// ResolveFonts подбирает обычное и жирное начертание независимо друг от друга.
func ResolveFonts(fs afero.Fs) FontSet {
	return FontSet{
		Regular: probe(fs, regularCandidates),
		Bold:    probe(fs, boldCandidates),
	}
}

func probe(fs afero.Fs, candidates []fontCandidate) FontFace {
	for _, c := range candidates {
		data, err := afero.ReadFile(fs, c.path)
		if err != nil || !isTrueType(data) {
			continue
		}
		return FontFace{Kind: c.kind, Path: c.path, Data: data}
	}
	return FontFace{Kind: FontBuiltIn}
}

// isTrueType проверяет сигнатуру sfnt: TrueType (0x00010000 или "true").
func isTrueType(data []byte) bool {
	if len(data) < 4 {
		return false
	}
	head := data[:4]
	return bytes.Equal(head, []byte{0x00, 0x01, 0x00, 0x00}) || bytes.Equal(head, []byte("true"))
}
