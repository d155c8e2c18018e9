package ui

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gulur101/quran-toolkit/internal/api"
	"github.com/Gulur101/quran-toolkit/internal/model"
	"github.com/Gulur101/quran-toolkit/internal/ranking"
)

// fakeAPI keeps participants in memory and records calls.
type fakeAPI struct {
	participants []model.Participant
	updates      []model.Participant
	deleted      []int
	failBoard    error
}

func (f *fakeAPI) ListUsers(context.Context) ([]model.Standing, error) {
	return nil, nil
}

func (f *fakeAPI) CreateUser(_ context.Context, name string) (model.Participant, error) {
	p := model.Participant{ID: model.Participants(f.participants).MaxID() + 1, Name: name, CurrentPage: 1}
	f.participants = append(f.participants, p)
	return p, nil
}

func (f *fakeAPI) UpdatePage(_ context.Context, id, page int) (model.Participant, error) {
	idx := model.Participants(f.participants).IndexOf(id)
	if idx < 0 {
		return model.Participant{}, errors.New("not found")
	}
	f.participants[idx].CurrentPage = page
	f.updates = append(f.updates, f.participants[idx])
	return f.participants[idx], nil
}

func (f *fakeAPI) DeleteUser(_ context.Context, id int) (model.Participant, error) {
	idx := model.Participants(f.participants).IndexOf(id)
	if idx < 0 {
		return model.Participant{}, errors.New("not found")
	}
	p := f.participants[idx]
	f.participants = append(f.participants[:idx], f.participants[idx+1:]...)
	f.deleted = append(f.deleted, id)
	return p, nil
}

func (f *fakeAPI) Leaderboard(context.Context) (api.Leaderboard, error) {
	if f.failBoard != nil {
		return api.Leaderboard{}, f.failBoard
	}
	ranked, summary := ranking.Board(f.participants)
	return api.Leaderboard{Standings: ranked, Summary: summary}, nil
}

func keyPress(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// send feeds msg to the model and runs any command it returns, feeding our
// own result messages back until the model settles.
func send(t *testing.T, m UiModel, msg tea.Msg) UiModel {
	t.Helper()
	next, cmd := m.Update(msg)
	m = next.(UiModel)
	for cmd != nil {
		out := runOwn(cmd)
		if out == nil {
			return m
		}
		next, cmd = m.Update(out)
		m = next.(UiModel)
	}
	return m
}

func runOwn(cmd tea.Cmd) tea.Msg {
	switch msg := cmd().(type) {
	case boardMsg, actionMsg, errMsg:
		return msg
	}
	return nil
}

// newModel uses static cursors so focusing an input does not start a blink
// timer.
func newModel(f *fakeAPI) UiModel {
	m := InitialModel(f)
	m.pageInput.Cursor.SetMode(cursor.CursorStatic)
	m.nameInput.Cursor.SetMode(cursor.CursorStatic)
	return m
}

func loaded(t *testing.T, f *fakeAPI) UiModel {
	t.Helper()
	m := newModel(f)
	m = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	return send(t, m, runOwn(m.Init()))
}

func TestInitLoadsRankedBoard(t *testing.T) {
	f := &fakeAPI{participants: []model.Participant{
		{ID: 1, Name: "Aisha", CurrentPage: 10},
		{ID: 2, Name: "Omar", CurrentPage: 300},
	}}
	m := loaded(t, f)

	require.Len(t, m.standings, 2)
	assert.Equal(t, "Omar", m.standings[0].Name)
	view := m.View()
	assert.Contains(t, view, "Omar")
	assert.Contains(t, view, "🏆 Leader")
	assert.Contains(t, view, "🐢 Behind")
	assert.Contains(t, view, "Participants: 2")
	assert.NotContains(t, view, "—")
}

func TestNavigationIsBounded(t *testing.T) {
	f := &fakeAPI{participants: []model.Participant{
		{ID: 1, Name: "A", CurrentPage: 10},
		{ID: 2, Name: "B", CurrentPage: 20},
	}}
	m := loaded(t, f)

	m = send(t, m, keyPress("k"))
	assert.Equal(t, 0, m.currentIdx)
	m = send(t, m, keyPress("j"))
	m = send(t, m, keyPress("j"))
	assert.Equal(t, 1, m.currentIdx)
}

func TestSetPageDialog(t *testing.T) {
	f := &fakeAPI{participants: []model.Participant{{ID: 7, Name: "Zaid", CurrentPage: 3}}}
	m := loaded(t, f)

	m = send(t, m, keyPress("g"))
	require.True(t, m.showPageDlg)
	assert.Contains(t, m.View(), "Set page for Zaid")

	m = send(t, m, keyPress("4"))
	m = send(t, m, keyPress("x"))
	m = send(t, m, keyPress("9"))
	assert.Equal(t, "49", m.pageInput.Value())

	m = send(t, m, keyPress("enter"))
	assert.False(t, m.showPageDlg)
	require.Len(t, f.updates, 1)
	assert.Equal(t, 49, f.updates[0].CurrentPage)
	assert.Equal(t, 49, m.standings[0].CurrentPage)
	assert.Equal(t, "Zaid is on page 49", m.status)
}

func TestSetPageRejectsOutOfRange(t *testing.T) {
	f := &fakeAPI{participants: []model.Participant{{ID: 1, Name: "A", CurrentPage: 3}}}
	m := loaded(t, f)

	m = send(t, m, keyPress("g"))
	for _, r := range "700" {
		m = send(t, m, keyPress(string(r)))
	}
	m = send(t, m, keyPress("enter"))
	assert.True(t, m.showPageDlg)
	assert.Contains(t, m.dialogErr, "between 1 and 604")
	assert.Empty(t, f.updates)

	m = send(t, m, keyPress("esc"))
	assert.False(t, m.showPageDlg)
}

func TestAddAndDelete(t *testing.T) {
	f := &fakeAPI{}
	m := loaded(t, f)
	assert.Contains(t, m.View(), "No participants yet")

	m = send(t, m, keyPress("n"))
	require.True(t, m.showAddDlg)
	m = send(t, m, keyPress("enter"))
	assert.Equal(t, "Name required", m.dialogErr)

	m = send(t, m, keyPress("Maryam"))
	m = send(t, m, keyPress("enter"))
	assert.False(t, m.showAddDlg)
	require.Len(t, m.standings, 1)
	assert.Equal(t, "Maryam", m.standings[0].Name)

	m = send(t, m, keyPress("d"))
	assert.Equal(t, []int{1}, f.deleted)
	assert.Empty(t, m.standings)
	assert.Equal(t, "Removed Maryam", m.status)
}

func TestSelectionFollowsParticipantAfterRefresh(t *testing.T) {
	f := &fakeAPI{participants: []model.Participant{
		{ID: 1, Name: "A", CurrentPage: 100},
		{ID: 2, Name: "B", CurrentPage: 50},
	}}
	m := loaded(t, f)
	m = send(t, m, keyPress("j"))
	require.Equal(t, "B", m.standings[m.currentIdx].Name)

	f.participants[1].CurrentPage = 200
	m = send(t, m, keyPress("r"))
	assert.Equal(t, "B", m.standings[m.currentIdx].Name)
	assert.Equal(t, 0, m.currentIdx)
}

func TestCopyLeaderboard(t *testing.T) {
	f := &fakeAPI{participants: []model.Participant{{ID: 1, Name: "A", CurrentPage: 100}}}
	m := loaded(t, f)

	var copied string
	m.writeClipboard = func(s string) error {
		copied = s
		return nil
	}
	m = send(t, m, keyPress("c"))
	assert.True(t, strings.HasPrefix(copied, "# "))
	assert.Contains(t, copied, "| 1 | A | 100 |")
	assert.Equal(t, "Leaderboard copied to clipboard", m.status)

	m.writeClipboard = func(string) error { return errors.New("no clipboard") }
	m = send(t, m, keyPress("c"))
	require.Error(t, m.err)
	assert.Contains(t, m.View(), "no clipboard")
}

func TestBoardErrorIsShown(t *testing.T) {
	f := &fakeAPI{failBoard: errors.New("connection refused")}
	m := loaded(t, f)
	assert.Contains(t, m.View(), "Error: connection refused")
}

func TestSurahsTab(t *testing.T) {
	f := &fakeAPI{participants: []model.Participant{{ID: 1, Name: "A", CurrentPage: 49}}}
	m := loaded(t, f)

	m = send(t, m, keyPress("2"))
	assert.Equal(t, surahsTab, m.currentTab)
	assert.Equal(t, 2, m.surahTable.Cursor())
	assert.Contains(t, m.View(), "Aal-Imran")

	m = send(t, m, keyPress("g"))
	assert.False(t, m.showPageDlg)

	m = send(t, m, keyPress("1"))
	assert.Equal(t, trackerTab, m.currentTab)
}

func TestQuit(t *testing.T) {
	m := newModel(&fakeAPI{})
	_, cmd := m.Update(keyPress("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
