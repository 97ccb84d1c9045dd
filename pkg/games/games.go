package games

import (
	"log"

	"pico-arcade/pkg/hal"
)

// Count is the number of games on the menu
const Count = 8

// Entry is a single line of the menu
type Entry struct {
	Index int
	Label string
}

// List is the fixed set of games, in display order
var List = [Count]Entry{
	{Index: 0, Label: "Pong"},
	{Index: 1, Label: "Snake"},
	{Index: 2, Label: "Space Invaders"},
	{Index: 3, Label: "Dino"},
	{Index: 4, Label: "2048"},
	{Index: 5, Label: "Tetris"},
	{Index: 6, Label: "Full Speed"},
	{Index: 7, Label: "Lunar Module"},
}

// Handler runs a game to completion and returns control to the menu
type Handler interface {
	Run(board *hal.Board)
}

// HandlerFunc adapts a plain function to Handler
type HandlerFunc func(board *hal.Board)

// Run calls f(board)
func (f HandlerFunc) Run(board *hal.Board) {
	f(board)
}

// Table maps a game index to its handler
type Table [Count]Handler

// Stub returns a handler for a game that has not been written yet.
// It returns immediately.
func Stub(e Entry) Handler {
	return HandlerFunc(func(*hal.Board) {
		log.Printf("games: %s is not implemented yet | index=%d", e.Label, e.Index)
	})
}

// DefaultTable wires every entry of List to its stub
func DefaultTable() Table {
	var t Table
	for i, e := range List {
		t[i] = Stub(e)
	}
	return t
}

// Launch runs the handler registered for index. Unknown or empty slots are
// ignored and reported as false.
func (t *Table) Launch(index int, board *hal.Board) bool {
	if index < 0 || index >= Count || t[index] == nil {
		log.Printf("games: no handler registered | index=%d", index)
		return false
	}
	t[index].Run(board)
	return true
}
