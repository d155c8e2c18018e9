package ranking

import (
	"sort"

	"github.com/Gulur101/quran-toolkit/internal/model"
	"github.com/Gulur101/quran-toolkit/internal/mushaf"
)

// Ranked is a standing with its place on the board.
type Ranked struct {
	model.Standing
	Position int  `json:"position"`
	Leader   bool `json:"leader"`
	Second   bool `json:"second"`
	Lagger   bool `json:"lagger"`
}

type Summary struct {
	Participants    int      `json:"participants"`
	PagesRead       int      `json:"pagesRead"`
	AveragePercent  float64  `json:"averagePercent"`
	AverageProgress string   `json:"averageProgress"`
	Finished        int      `json:"finished"`
	Leaders         []string `json:"leaders"`
}

// Rank orders standings by page, furthest first. Equal pages keep their
// input order and share a position. Pages are clamped to the mushaf first,
// so a stored 0 or 700 ranks as 1 or 604.
//
// Badges: every participant on the highest page leads, every one on the
// lowest page lags, and those on the highest page strictly below the
// leaders are second. With everyone on the same page there is no second.
func Rank(standings []model.Standing) []Ranked {
	out := make([]Ranked, len(standings))
	for i, s := range standings {
		out[i] = Ranked{Standing: s}
	}
	page := func(i int) int {
		return mushaf.ClampPage(out[i].CurrentPage)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return page(i) > page(j)
	})
	if len(out) == 0 {
		return out
	}

	highest := page(0)
	lowest := page(len(out) - 1)
	second := 0
	for i := range out {
		if page(i) < highest {
			second = page(i)
			break
		}
	}

	for i := range out {
		if i > 0 && page(i) == page(i-1) {
			out[i].Position = out[i-1].Position
		} else {
			out[i].Position = i + 1
		}
		out[i].Leader = page(i) == highest
		out[i].Lagger = page(i) == lowest
		out[i].Second = second > 0 && page(i) == second
	}
	return out
}

// Summarize computes group totals over a ranked board.
func Summarize(ranked []Ranked) Summary {
	s := Summary{Participants: len(ranked), Leaders: []string{}}
	if len(ranked) == 0 {
		s.AverageProgress = mushaf.FormatPercent(0)
		return s
	}
	total := 0.0
	for _, r := range ranked {
		s.PagesRead += mushaf.ClampPage(r.CurrentPage)
		total += mushaf.Percent(r.CurrentPage)
		if r.CurrentPage >= mushaf.TotalPages {
			s.Finished++
		}
		if r.Leader {
			s.Leaders = append(s.Leaders, r.Name)
		}
	}
	s.AveragePercent = total / float64(len(ranked))
	s.AverageProgress = mushaf.FormatPercent(s.AveragePercent)
	return s
}

// Board derives, ranks and summarizes participants in one call.
func Board(ps []model.Participant) ([]Ranked, Summary) {
	ranked := Rank(mushaf.DeriveAll(ps))
	return ranked, Summarize(ranked)
}
