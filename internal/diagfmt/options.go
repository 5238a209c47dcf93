package diagfmt

// PathMode is how a diagnostic location names its file.
type PathMode uint8

const (
	PathModeAuto     PathMode = iota // короткий путь как есть, длинный абсолютный до имени файла
	PathModeAbsolute                 // always absolute
	PathModeRelative                 // relative to the FileSet base dir
	PathModeBasename
)

var pathModeNames = [...]string{"auto", "absolute", "relative", "basename"}

func (m PathMode) String() string {
	if int(m) < len(pathModeNames) {
		return pathModeNames[m]
	}
	return "auto"
}

// PrettyOpts configures Pretty.
type PrettyOpts struct {
	Color    bool
	Context  int8 // строк контекста вокруг первичной строки
	PathMode PathMode
	Width    uint8 // обрезка сообщений и строк кода, 0 без ограничения

	ShowNotes   bool
	ShowFixes   bool
	ShowPreview bool // требует ShowFixes
}

// JSONOpts configures JSON.
type JSONOpts struct {
	IncludePositions bool // line/col рядом с байтовыми смещениями
	PathMode         PathMode
	Max              int // ограничивает вывод, а не Bag

	IncludeNotes    bool
	IncludeFixes    bool
	IncludePreviews bool
}
