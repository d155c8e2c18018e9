// Package mushaf maps pages of the 604-page Madani mushaf to surahs, juz
// and reading progress.
package mushaf

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Gulur101/quran-toolkit/internal/model"
)

const (
	// TotalPages is the page count of the Madani mushaf.
	TotalPages = 604
	// JuzCount is the number of juz the pages are divided into.
	JuzCount = 30
	// SurahCount is the number of surahs.
	SurahCount = 114

	nameSeparator = " / "
)

// Section is the resolved table row for a page. End is the page before the
// next row starts, or the last page for the final row.
type Section struct {
	Index       int      `json:"index"`
	Start       int      `json:"start"`
	End         int      `json:"end"`
	FirstSurah  int      `json:"firstSurah"`
	Names       []string `json:"names"`
	ArabicNames []string `json:"arabicNames"`
}

func (s Section) Name() string {
	return strings.Join(s.Names, nameSeparator)
}

func (s Section) ArabicName() string {
	return strings.Join(s.ArabicNames, nameSeparator)
}

// Contains reports whether page falls inside the section.
func (s Section) Contains(page int) bool {
	return page >= s.Start && page <= s.End
}

// sections is built once from surahStarts; lookups only read it.
var sections = buildSections(surahStarts)

func buildSections(rows []entry) []Section {
	out := make([]Section, len(rows))
	surah := 1
	for i, row := range rows {
		end := TotalPages
		if i+1 < len(rows) {
			end = rows[i+1].Start - 1
		}
		out[i] = Section{
			Index:       i,
			Start:       row.Start,
			End:         end,
			FirstSurah:  surah,
			Names:       row.Names,
			ArabicNames: row.ArabicNames,
		}
		surah += len(row.Names)
	}
	return out
}

// ClampPage forces page into [1, TotalPages].
func ClampPage(page int) int {
	if page < 1 {
		return 1
	}
	if page > TotalPages {
		return TotalPages
	}
	return page
}

// ValidPage reports whether page is a real page number.
func ValidPage(page int) bool {
	return page >= 1 && page <= TotalPages
}

// FindSection returns the section whose start page is the greatest start
// page not after the (clamped) page.
func FindSection(page int) Section {
	p := ClampPage(page)
	// first row starting after p, minus one
	idx := sort.Search(len(sections), func(i int) bool {
		return sections[i].Start > p
	}) - 1
	if idx < 0 {
		idx = 0
	}
	return sections[idx]
}

// Sections returns a copy of the whole table.
func Sections() []Section {
	out := make([]Section, len(sections))
	copy(out, sections)
	return out
}

// Percent is the share of the mushaf read once page is reached.
func Percent(page int) float64 {
	return float64(ClampPage(page)) / TotalPages * 100
}

// FormatPercent renders a percentage with one decimal, e.g. "12.3".
func FormatPercent(p float64) string {
	return fmt.Sprintf("%.1f", p)
}

// Juz returns ceil(page*30/604) computed in integers.
func Juz(page int) int {
	p := ClampPage(page)
	return (p*JuzCount + TotalPages - 1) / TotalPages
}

// Derive attaches the page-derived fields to a participant.
func Derive(p model.Participant) model.Standing {
	sec := FindSection(p.CurrentPage)
	pct := Percent(p.CurrentPage)
	return model.Standing{
		Participant: p,
		Juz:         Juz(p.CurrentPage),
		Surah:       sec.Name(),
		SurahArabic: sec.ArabicName(),
		SurahIndex:  sec.Index,
		SurahStart:  sec.Start,
		SurahEnd:    sec.End,
		Progress:    FormatPercent(pct),
		Percent:     pct,
	}
}

// DeriveAll derives every participant, keeping order.
func DeriveAll(ps []model.Participant) []model.Standing {
	out := make([]model.Standing, 0, len(ps))
	for _, p := range ps {
		out = append(out, Derive(p))
	}
	return out
}

// PageInfo is the derivation for a bare page number.
type PageInfo struct {
	Page     int     `json:"page"`
	Juz      int     `json:"juz"`
	Percent  float64 `json:"percent"`
	Progress string  `json:"progress"`
	Section  Section `json:"section"`
}

// Lookup resolves a page without a participant.
func Lookup(page int) PageInfo {
	p := ClampPage(page)
	pct := Percent(p)
	return PageInfo{
		Page:     p,
		Juz:      Juz(p),
		Percent:  pct,
		Progress: FormatPercent(pct),
		Section:  FindSection(p),
	}
}
