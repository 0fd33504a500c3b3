package theory_test

import (
	"fmt"

	"github.com/jsphweid/chordbook/theory"
)

func ExampleChord_Quality() {
	c := theory.NewChord(theory.MinorThird, theory.PerfectFifth, theory.MinorSeventh, theory.Ninth)
	fmt.Println(c.Quality("D", true, theory.Std))
	fmt.Println(c.Quality("D", false, theory.Std))
	fmt.Println(c.Quality("D", true, theory.SpelledOut))
	// Output:
	// d-(♮9)
	// Dm-(♮9)
	// D[♭3♮5♭7♮9]
}

func ExampleScaleChordNamesRoman() {
	steps := theory.Steps{theory.Whole, theory.Whole, theory.Semi, theory.Whole, theory.Whole, theory.Whole, theory.Semi}
	for mode := 0; mode < 3; mode++ {
		fmt.Println(theory.ScaleChordNamesRoman(theory.ModeOfScale(steps, mode), 3, theory.Std))
	}
	// Output:
	// [I ii iii IV V vi vii°]
	// [i ii III IV v vi° VII]
	// [i II III iv v° VI vii]
}

func ExampleRootedChord_AllInversions() {
	c := theory.RootedChordFromIntervals(theory.C4, theory.MajorSeventhChord...)
	for _, inv := range c.AllInversions() {
		fmt.Println(theory.NoteName(inv.Root), inv.Chord.Key(), inv.AsString(true, theory.Std))
	}
	// Output:
	// E4 3-7-8 e(♭6)
	// G4 4-5-9 G[♮3♮4♮6]
	// B4 1-5-8 B[♭2♮4♭6]
	// C5 4-7-11 C∆
}
