// Package zikr models guided recitation: fixed long and short
// sequences, a menu of single recitations, and the counting session
// that walks through them one keypress at a time.
package zikr

import (
	"errors"
	"fmt"
)

type (
	// Phrase is one recitation with its repetition count.
	Phrase struct {
		Name  string
		Count int
	}

	// Sequence is an ordered run of phrases.
	Sequence []Phrase
)

var ErrInvalidCount = errors.New("count must be a positive integer")

// Title renders the phrase the way the counter displays it.
func (p Phrase) Title() string {
	return fmt.Sprintf("%s [ x %d ]", p.Name, p.Count)
}

var sequencePhrases = []string{
	"Allahumna Ajirni minan naar",
	"Surah baqarah Last 2 ayats",
	"Subhanallah",
	"Alhamdulillah",
	"Allahu Akbar",
	"Astagfirullah",
	"Duruud-e-Ibraheem",
	"Duruud-e-Shareef Short",
	"Subhanallahi Wabihamdihi Subhanallahil Azeem",
	"3rd Kalima",
	"4th Kalima",
	"Surah Ikhlaas",
	"Surah Falaq",
	"Surah Naas",
	"Surah Kaafiruun",
	"1st Kalima",
}

var (
	longCounts  = []int{7, 1, 33, 33, 34, 70, 3, 10, 10, 10, 10, 10, 3, 3, 3, 10}
	shortCounts = []int{7, 1, 10, 10, 10, 10, 1, 3, 3, 3, 3, 3, 1, 1, 1, 3}
)

// Long returns the full-length sequence.
func Long() Sequence { return build(longCounts) }

// Short returns the simplified sequence.
func Short() Sequence { return build(shortCounts) }

func build(counts []int) Sequence {
	seq := make(Sequence, len(sequencePhrases))
	for i, name := range sequencePhrases {
		seq[i] = Phrase{Name: name, Count: counts[i]}
	}
	return seq
}

// SingleOptions lists the recitations offered by the single-zikr menu.
func SingleOptions() []string {
	return []string{
		"Subhanallah",
		"Alhamdulillah",
		"Allahu Akbar",
		"Astagfirullah",
		"Duruud-e-Ibraheem",
		"Duruud-e-Shareef Short",
		"Subhanallahi Wabihamdihi Subhanallahil Azeem",
		"1st Kalima",
		"3rd Kalima",
		"4th Kalima",
		"Surah Ikhlaas",
	}
}

// Single builds a one-phrase sequence with a user-chosen count.
func Single(name string, count int) (Sequence, error) {
	if count < 1 {
		return nil, ErrInvalidCount
	}
	return Sequence{{Name: name, Count: count}}, nil
}
