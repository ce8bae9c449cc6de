// Package cli implements the interactive terminal menu that drives a
// game, per spec.md §6's CLI states collaborator: Main Menu, Player vs
// Player, Engine vs Player, each recognizing a fixed set of commands.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/corvidchess/corvid/engine"
	"github.com/corvidchess/corvid/notation"
)

const (
	stateMainMenu       = "Main Menu"
	statePlayerVsPlayer = "Player vs Player"
	stateEngineVsPlayer = "Engine vs Player"
)

const helpMessage = `Commands:
  menu            return to the main menu
  exit            quit
  play-player     start a player vs player game
  play-engine     start an engine vs player game
  undo            undo the last move
  redo            redo the last undone move
  reset           reset the board to the starting position
  print-moves     print all moves played so far
  stop-search     cancel the engine's search in progress
  update-depth    set the engine's maximum search depth
  update-timelimit  set the engine's per-move time budget, in ms
  update-window   toggle aspiration-window search
  update-info     toggle search-progress logging
  update-pondering  toggle pondering (currently advisory only)
  help            print this message`

// CLI drives one game session: it owns the board, the search engine
// and the current state's name, and reads commands from in.
type CLI struct {
	in  *bufio.Reader
	out io.Writer
	log *zap.SugaredLogger

	bs    *engine.BoardState
	eng   *engine.Engine
	state string

	redoStack []engine.Move
	exit      bool
}

// New builds a CLI reading commands from in and writing output to out.
// The game starts from the standard starting position.
func New(in io.Reader, out io.Writer, log *zap.SugaredLogger) *CLI {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	c := &CLI{
		in:    bufio.NewReader(in),
		out:   out,
		log:   log,
		state: stateMainMenu,
	}
	c.resetGame()
	return c
}

func (c *CLI) resetGame() {
	bs, err := notation.ParseFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	if err != nil {
		panic(err) // the starting position always parses
	}
	c.bs = bs
	c.eng = engine.NewEngine(bs, engine.DefaultOptions(), c.log)
	c.redoStack = nil
}

// Run executes the state machine until the user asks to exit or input
// is exhausted.
func (c *CLI) Run() {
	fmt.Fprintln(c.out, helpMessage)
	for !c.exit {
		fmt.Fprintf(c.out, "[%s] > ", c.state)
		line, err := c.in.ReadString('\n')
		line = strings.TrimSpace(line)
		if line != "" {
			c.dispatch(line)
		}
		if err != nil {
			break // EOF or read error: stop the loop
		}
	}
}

func (c *CLI) dispatch(line string) {
	fields := strings.Fields(line)
	cmd := strings.ToLower(fields[0])
	args := fields[1:]

	if c.handleGeneralCommand(cmd, args) {
		return
	}
	if c.handleBoardCommand(cmd, args) {
		return
	}

	switch c.state {
	case stateMainMenu:
		c.mainMenuState(cmd)
	case statePlayerVsPlayer:
		c.playerVsPlayerState(line)
	case stateEngineVsPlayer:
		c.engineVsPlayerState(line)
	}
}

// handleGeneralCommand handles commands valid in every state: menu,
// exit, help, and the engine-option toggles.
func (c *CLI) handleGeneralCommand(cmd string, args []string) bool {
	switch cmd {
	case "menu":
		c.state = stateMainMenu
		return true
	case "exit":
		c.exit = true
		return true
	case "help":
		fmt.Fprintln(c.out, helpMessage)
		return true
	case "stop-search":
		c.eng.Threads.Stop()
		return true
	case "update-depth":
		c.updateIntOption(args, func(n int) { c.eng.Options.MaxDepth = n })
		return true
	case "update-timelimit":
		c.updateIntOption(args, func(n int) { c.eng.Options.MoveTimeMS = n })
		return true
	case "update-window":
		c.eng.Options.UseAspirationWindow = !c.eng.Options.UseAspirationWindow
		fmt.Fprintf(c.out, "aspiration window: %v\n", c.eng.Options.UseAspirationWindow)
		return true
	case "update-info":
		c.eng.Options.ShowSearchInfo = !c.eng.Options.ShowSearchInfo
		fmt.Fprintf(c.out, "search info: %v\n", c.eng.Options.ShowSearchInfo)
		return true
	case "update-pondering":
		c.eng.Options.PonderingEnabled = !c.eng.Options.PonderingEnabled
		fmt.Fprintf(c.out, "pondering: %v\n", c.eng.Options.PonderingEnabled)
		return true
	}
	return false
}

func (c *CLI) updateIntOption(args []string, apply func(int)) {
	if len(args) == 0 {
		fmt.Fprintln(c.out, "usage: <command> <value>")
		return
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Fprintf(c.out, "not a number: %q\n", args[0])
		return
	}
	apply(n)
	fmt.Fprintf(c.out, "set to %d\n", n)
}

// handleBoardCommand handles commands that manipulate move history:
// undo, redo, reset, print-moves.
func (c *CLI) handleBoardCommand(cmd string, args []string) bool {
	switch cmd {
	case "reset":
		c.resetGame()
		fmt.Fprintln(c.out, "board reset")
		return true
	case "undo":
		if len(c.bs.PreviousMoveStack) == 0 {
			fmt.Fprintln(c.out, "nothing to undo")
			return true
		}
		last := c.bs.LastMove()
		c.bs.Undo()
		c.redoStack = append(c.redoStack, last)
		return true
	case "redo":
		if len(c.redoStack) == 0 {
			fmt.Fprintln(c.out, "nothing to redo")
			return true
		}
		m := c.redoStack[len(c.redoStack)-1]
		c.redoStack = c.redoStack[:len(c.redoStack)-1]
		c.bs.Apply(m)
		return true
	case "print-moves":
		c.printMoves()
		return true
	}
	return false
}

func (c *CLI) printMoves() {
	for i, m := range c.bs.PreviousMoveStack {
		fmt.Fprintf(c.out, "%d. %s\n", i+1, notation.MoveText(m))
	}
}

func (c *CLI) mainMenuState(cmd string) {
	switch cmd {
	case "play-player":
		c.state = statePlayerVsPlayer
	case "play-engine":
		c.state = stateEngineVsPlayer
	default:
		fmt.Fprintln(c.out, "unrecognized command, try help")
	}
}

func (c *CLI) playerVsPlayerState(line string) {
	c.applyMoveText(line)
	c.checkAndHandleIfGameOver()
}

func (c *CLI) engineVsPlayerState(line string) {
	if !c.applyMoveText(line) {
		return
	}
	if c.checkAndHandleIfGameOver() {
		return
	}

	m := c.eng.Play()
	if m.IsNull() {
		fmt.Fprintln(c.out, "engine has no legal move")
		return
	}
	fmt.Fprintf(c.out, "engine plays %s\n", notation.MoveText(m))
	c.bs.Apply(m)
	c.redoStack = nil
	c.checkAndHandleIfGameOver()
}

// applyMoveText parses and applies line as a move, reporting an error
// and returning false if it is malformed or illegal.
func (c *CLI) applyMoveText(line string) bool {
	m, err := notation.ParseMove(c.bs, line)
	if err != nil {
		fmt.Fprintf(c.out, "error: %v\n", err)
		return false
	}
	if engine.MoveLeavesOwnKingInCheck(c.bs, m) {
		fmt.Fprintln(c.out, "error: move leaves own king in check")
		return false
	}
	c.bs.Apply(m)
	c.redoStack = nil
	return true
}

// checkAndHandleIfGameOver reports checkmate, stalemate or threefold
// repetition and returns to the main menu if the game has ended.
func (c *CLI) checkAndHandleIfGameOver() bool {
	side := c.bs.SideToMove
	switch {
	case engine.IsCheckmate(c.bs, side):
		fmt.Fprintf(c.out, "checkmate, %s wins\n", side.Opposite())
	case engine.IsStalemate(c.bs, side):
		fmt.Fprintln(c.out, "stalemate, draw")
	case c.bs.CurrentStateRepeatedThreeTimes():
		fmt.Fprintln(c.out, "threefold repetition, draw")
	default:
		return false
	}
	c.state = stateMainMenu
	return true
}
