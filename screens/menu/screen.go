package menu

import (
	"context"
	"fmt"
	"log"

	"pico-arcade/pkg/buzzer"
	"pico-arcade/pkg/games"
	"pico-arcade/pkg/hal"
	"pico-arcade/pkg/input"
	"pico-arcade/widgets/gamelist"
)

// NewScreen creates the menu on board with the first entry highlighted
func NewScreen(board *hal.Board, table games.Table, options Options) *Screen {
	return &Screen{
		board:   board,
		table:   table,
		list:    gamelist.NewWidget(games.List[:], hal.ScreenWidth),
		buzzer:  buzzer.New(board.Tone, board.Clock),
		options: options,
		state:   State{Current: 0, Selected: NoSelection},
		tracker: input.NewPressTracker(),
	}
}

// State returns a copy of the current menu state
func (s *Screen) State() State {
	return s.state
}

// Decide applies the button priority rules to one sample. Moves win over
// confirmation, and down/right wins over up/left. A move past either end
// of the list is not an event.
func Decide(buttons hal.ButtonState, current, length int) Event {
	switch {
	case buttons.Pressed(hal.Down, hal.Right) && current < length-1:
		return EventMoveDown
	case buttons.Pressed(hal.Up, hal.Left) && current > 0:
		return EventMoveUp
	case buttons.Pressed(hal.Button1, hal.Button2):
		return EventConfirm
	}
	return EventNone
}

// apply mutates the state for ev
func (s *Screen) apply(ev Event) {
	switch ev {
	case EventMoveDown:
		s.state.Current++
	case EventMoveUp:
		s.state.Current--
	case EventConfirm:
		s.state.Selected = s.state.Current
	}
}

// sample reads the buttons once, filtered through the press tracker when
// RequireRelease is set
func (s *Screen) sample() hal.ButtonState {
	buttons := hal.ReadButtons(s.board.Buttons)
	if s.options.RequireRelease {
		return s.tracker.JustPressed(buttons)
	}
	return buttons
}

// Poll samples the buttons every PollInterval until one of them produces
// an event, and returns it. It only gives up when ctx is done.
func (s *Screen) Poll(ctx context.Context) (Event, error) {
	for {
		if err := ctx.Err(); err != nil {
			return EventNone, err
		}

		ev := Decide(s.sample(), s.state.Current, s.list.Len())
		s.apply(ev)
		s.board.Clock.Sleep(PollInterval)

		if ev != EventNone {
			return ev, nil
		}
	}
}

// Step runs one full iteration of the menu: redraw, settle, wait for an
// event, beep, and start the selected game if there is one.
func (s *Screen) Step(ctx context.Context) (Event, error) {
	if err := s.list.Draw(s.board.Display, s.state.Current); err != nil {
		log.Printf("menu: redraw failed | err=%v", err)
	}

	s.board.Clock.Sleep(SettleDelay)

	ev, err := s.Poll(ctx)
	if err != nil {
		return ev, err
	}
	log.Printf("menu: event | kind=%s current=%d", ev, s.state.Current)

	// Make beep sound on button press
	if err := s.buzzer.Beep(); err != nil {
		log.Printf("menu: beep failed | err=%v", err)
	}

	if s.state.Selected != NoSelection {
		s.launch(s.state.Selected)
		s.state.Selected = NoSelection
	}

	return ev, nil
}

// launch blanks the screen and hands the board to the selected game
func (s *Screen) launch(index int) {
	s.board.Display.Clear()
	if err := s.board.Display.Display(); err != nil {
		log.Printf("menu: clear before launch failed | err=%v", err)
	}

	log.Printf("menu: launching game | index=%d title=%s", index, games.List[index].Label)
	s.table.Launch(index, s.board)
}

// Run loops Step until ctx is done. With a background context it never
// returns.
func (s *Screen) Run(ctx context.Context) error {
	log.Printf("menu: started | games=%d require_release=%v", s.list.Len(), s.options.RequireRelease)
	for {
		if _, err := s.Step(ctx); err != nil {
			return fmt.Errorf("menu: %w", err)
		}
	}
}
