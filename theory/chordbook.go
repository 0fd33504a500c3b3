package theory

// Interval patterns of the chord qualities in the book.
var (
	MajorTriad             = []Note{MajorThird, PerfectFifth}
	MinorTriad             = []Note{MinorThird, PerfectFifth}
	MinorAugmented         = []Note{MinorThird, AugmentedFifth}
	MajorAugmented         = []Note{MajorThird, AugmentedFifth}
	MinorDiminished        = []Note{MinorThird, DiminishedFifth}
	MajorDiminished        = []Note{MajorThird, DiminishedFifth}
	Sus2                   = []Note{MajorSecond, PerfectFifth}
	Sus4                   = []Note{PerfectFourth, PerfectFifth}
	SuperSus               = []Note{MajorSecond, PerfectFourth}
	PhrygianTriad          = []Note{MinorSecond, PerfectFifth}
	LydianTriad            = []Note{AugmentedFourth, PerfectFifth}
	Locrian2Triad          = []Note{MinorSecond, DiminishedFifth}
	Locrian4Triad          = []Note{PerfectFourth, DiminishedFifth}
	SuperLocrian           = []Note{MinorSecond, PerfectFourth, DiminishedFifth}
	MajorSixthChord        = []Note{MajorThird, PerfectFifth, MajorSixth}
	MinorSixthChord        = []Note{MinorThird, PerfectFifth, MajorSixth}
	MajorSeventhChord      = []Note{MajorThird, PerfectFifth, MajorSeventh}
	MinorSeventhChord      = []Note{MinorThird, PerfectFifth, MinorSeventh}
	DominantSeventh        = []Note{MajorThird, PerfectFifth, MinorSeventh}
	MinorMajorSeventh      = []Note{MinorThird, PerfectFifth, MajorSeventh}
	HalfDiminishedSeventh  = []Note{MinorThird, DiminishedFifth, MinorSeventh}
	DiminishedSeventhChord = []Note{MinorThird, DiminishedFifth, DiminishedSeventh}
	AugmentedSeventhChord  = []Note{MajorThird, AugmentedFifth, MinorSeventh}
	MuChord                = []Note{MajorSecond, MajorThird, PerfectFifth}
	SixNineChord           = []Note{MajorThird, PerfectFifth, MajorSixth, Ninth}
)

// BookEntry is one chord quality: its intervals, the suffix appended to the
// chord base, whether the base keeps its major casing and whether the entry
// only applies under Extended styling.
type BookEntry struct {
	Pattern   []Note
	Suffix    string
	MajorBase bool
	Extended  bool
}

// Order matters: the first exact match and the first of the longest partial
// matches win.
var stdChordBook = []BookEntry{
	{MajorTriad, "", true, false},
	{MinorTriad, "", false, false},
	{MinorAugmented, "+", false, true},
	{MajorAugmented, "+", true, false},
	{MinorDiminished, "°", false, false},
	{MajorDiminished, "°", true, true},
	{SuperSus, "ssus", true, true},
	{PhrygianTriad, "phry", true, false},
	{LydianTriad, "lyd", true, false},
	{Locrian2Triad, "loc2", true, false},
	{Locrian4Triad, "loc4", true, false},
	{SuperLocrian, "o", true, true},
	{MajorSixthChord, "⁶", true, false},
	{MinorSixthChord, "⁶", false, false},
	{MajorSeventhChord, "∆", true, false},
	{MinorSeventhChord, "-", false, false},
	{DominantSeventh, "⁷", true, false},
	{MinorMajorSeventh, "-∆", true, false},
	{HalfDiminishedSeventh, "ø", false, false},
	{DiminishedSeventhChord, "°⁷", false, false},
	{AugmentedSeventhChord, "+⁷", true, false},
	{MuChord, "μ", true, true},
	{SixNineChord, "6/9", true, false},
}

// ChordBook returns a copy of the chord qualities in lookup order.
func ChordBook() []BookEntry {
	res := make([]BookEntry, len(stdChordBook))
	for i, e := range stdChordBook {
		e.Pattern = append([]Note(nil), e.Pattern...)
		res[i] = e
	}
	return res
}
