package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/pokedex/internal/lookup"
	"github.com/appengine-ltd/pokedex/internal/ui/theme"
)

const searchMaxLen = 24

// searchState is the list view "jump to" prompt. Matches refresh on every
// edit.
type searchState struct {
	Active  bool
	Query   string
	Matches []lookup.Match
}

func (s *searchState) Open() {
	*s = searchState{Active: true}
}

func (s *searchState) Close() {
	*s = searchState{}
}

func (s *searchState) Type(r rune, idx *lookup.Index) {
	if r < 32 || r > 126 || len(s.Query) >= searchMaxLen {
		return
	}
	s.Query += string(r)
	s.refresh(idx)
}

func (s *searchState) Backspace(idx *lookup.Index) {
	if s.Query == "" {
		return
	}
	s.Query = s.Query[:len(s.Query)-1]
	s.refresh(idx)
}

func (s *searchState) refresh(idx *lookup.Index) {
	s.Matches = nil
	if idx != nil {
		s.Matches = idx.Find(s.Query, 3)
	}
}

// Submit returns the id to jump to and closes the prompt.
func (s *searchState) Submit() (int, bool) {
	defer s.Close()
	if len(s.Matches) == 0 {
		return 0, false
	}
	return s.Matches[0].ID, true
}

// captureSearchKeys feeds raw keyboard text into the prompt. It reports
// whether the prompt submitted or was dismissed this frame.
func captureSearchKeys(s *searchState, idx *lookup.Index) (submit, dismiss bool) {
	for ch := rl.GetCharPressed(); ch > 0; ch = rl.GetCharPressed() {
		s.Type(ch, idx)
	}
	if rl.IsKeyPressed(rl.KeyBackspace) {
		s.Backspace(idx)
	}
	return rl.IsKeyPressed(rl.KeyEnter), rl.IsKeyPressed(rl.KeyEscape)
}

func drawSearch(s *searchState, w int32) {
	rect := rl.NewRectangle(spaceM, 28, float32(w)-2*spaceM, float32(theme.RowHeight)*float32(len(s.Matches)+1)+spaceS)
	theme.DrawPanel(rect, theme.PanelLifted)
	theme.DrawText("/ "+s.Query+"_", int32(rect.X+spaceS), int32(rect.Y+spaceXS), theme.Type.Body, theme.TextPrimary)
	for i, m := range s.Matches {
		y := rect.Y + float32(i+1)*theme.RowHeight
		theme.DrawListItem(listRowRect(rect.X+spaceXS, y, rect.Width-2*spaceXS), listRowState(i == 0, true), m.Name, "")
	}
}
