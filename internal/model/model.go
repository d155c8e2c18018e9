package model

// Participant is one tracked reader. The JSON field names are shared by the
// data file and the HTTP API.
type Participant struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	CurrentPage int    `json:"currentPage"`
}

// Standing is a participant together with the fields derived from its page.
type Standing struct {
	Participant
	Juz         int     `json:"juz"`
	Surah       string  `json:"surah"`
	SurahArabic string  `json:"surahArabic"`
	SurahIndex  int     `json:"surahIndex"`
	SurahStart  int     `json:"surahStart"`
	SurahEnd    int     `json:"surahEnd"`
	Progress    string  `json:"progress"`
	Percent     float64 `json:"-"`
}

// Participants is the stored list, kept in insertion order.
type Participants []Participant

// MaxID returns the highest id in the list, or 0 when it is empty.
func (ps Participants) MaxID() int {
	highest := 0
	for _, p := range ps {
		if p.ID > highest {
			highest = p.ID
		}
	}
	return highest
}

// IndexOf returns the position of the participant with id, or -1.
func (ps Participants) IndexOf(id int) int {
	for i, p := range ps {
		if p.ID == id {
			return i
		}
	}
	return -1
}
