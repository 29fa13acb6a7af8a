// Package console is the presentation collaborator of the record
// core: it routes typed commands to the record and codec, renders the
// observable state, and owns the policy decisions the core leaves to
// callers (which color to place, whether to confirm a placement that
// discards redo history).
package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"gomoku/internal/bootstrap"
	"gomoku/internal/codec"
	"gomoku/internal/domain/game"
	"gomoku/internal/usecase/record"
)

var starPoints = []game.Point{{X: 3, Y: 3}, {X: 3, Y: 11}, {X: 7, Y: 7}, {X: 11, Y: 3}, {X: 11, Y: 11}}

type Handler struct {
	cfg    bootstrap.Config
	log    *zap.SugaredLogger
	rec    *record.Record
	gameID string
	stone  game.Stone
	review bool
	in     *bufio.Scanner
	out    io.Writer
}

func NewHandler(cfg bootstrap.Config, log *zap.SugaredLogger, in io.Reader, out io.Writer) *Handler {
	h := &Handler{
		cfg:    cfg,
		log:    log,
		stone:  game.BlackStone,
		review: cfg.ReviewMode,
		in:     bufio.NewScanner(in),
		out:    out,
	}
	h.newGame(record.New())
	return h
}

func (h *Handler) newGame(rec *record.Record) {
	h.rec = rec
	h.gameID = uuid.NewString()
	h.log.Infow("game started", "game_id", h.gameID, "moves", rec.Total())
}

// Run reads commands until EOF or quit.
func (h *Handler) Run() error {
	h.render()
	for {
		fmt.Fprint(h.out, "> ")
		if !h.in.Scan() {
			return h.in.Err()
		}
		line := strings.TrimSpace(h.in.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			return nil
		}
		h.dispatch(line)
	}
}

func (h *Handler) dispatch(line string) {
	fields := strings.Fields(line)
	switch fields[0] {
	case "help":
		h.printHelp()
	case "show":
		h.render()
	case "move":
		h.handleMove(fields[1:])
	case "undo":
		if h.rec.Unset() {
			h.render()
		} else {
			fmt.Fprintln(h.out, "nothing to undo")
		}
	case "redo":
		if h.rec.Reset() {
			h.render()
		} else {
			fmt.Fprintln(h.out, "nothing to redo")
		}
	case "jump":
		h.handleJump(fields[1:])
	case "stone":
		h.handleStone(fields[1:])
	case "turn":
		fmt.Fprintf(h.out, "%s to play\n", h.nextStone())
	case "export":
		uri := codec.FormatURI(h.rec.PastMoves())
		fmt.Fprintln(h.out, uri)
		h.log.Infow("game exported", "game_id", h.gameID, "moves", h.rec.Index())
	case "import":
		h.handleImport(fields[1:])
	case "new":
		if h.rec.Total() > 0 && !h.confirm(fmt.Sprintf("discard the current game of %d moves", h.rec.Total())) {
			return
		}
		h.review = h.cfg.ReviewMode
		h.newGame(record.New())
		h.render()
	default:
		fmt.Fprintf(h.out, "unknown command %q, try \"help\"\n", fields[0])
	}
}

func (h *Handler) handleMove(args []string) {
	if len(args) != 2 {
		fmt.Fprintln(h.out, "usage: move <x> <y>")
		return
	}
	x, errX := strconv.Atoi(args[0])
	y, errY := strconv.Atoi(args[1])
	if errX != nil || errY != nil {
		fmt.Fprintln(h.out, "usage: move <x> <y>")
		return
	}
	p := game.Point{X: x, Y: y}
	if cur, err := h.rec.Get(p); err != nil {
		fmt.Fprintf(h.out, "point (%d, %d) is out of board\n", x, y)
		return
	} else if cur != game.NoStone {
		fmt.Fprintf(h.out, "point (%d, %d) is occupied\n", x, y)
		return
	}

	if future := h.rec.Total() - h.rec.Index(); future > 0 && h.cfg.ConfirmOverwrite {
		if !h.confirm(fmt.Sprintf("discard %d future move(s)", future)) {
			return
		}
	}

	stone := h.nextStone()
	h.rec.Set(p, stone)
	h.log.Infow("move made", "game_id", h.gameID, "index", h.rec.Index(), "stone", stone.String())
	h.render()
}

func (h *Handler) handleJump(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(h.out, "usage: jump <index>")
		return
	}
	to, err := strconv.Atoi(args[0])
	if err != nil || to < 0 {
		fmt.Fprintln(h.out, "usage: jump <index>")
		return
	}
	moved, err := h.rec.Jump(to)
	if err != nil {
		fmt.Fprintf(h.out, "index %d exceeds the move total %d\n", to, h.rec.Total())
		return
	}
	if moved {
		h.render()
	}
}

func (h *Handler) handleStone(args []string) {
	if !h.cfg.LockStone {
		fmt.Fprintln(h.out, "stone selection is inferred; set LOCK_STONE to pick manually")
		return
	}
	if len(args) != 1 {
		fmt.Fprintln(h.out, "usage: stone black|white")
		return
	}
	switch args[0] {
	case "black":
		h.stone = game.BlackStone
	case "white":
		h.stone = game.WhiteStone
	default:
		fmt.Fprintln(h.out, "usage: stone black|white")
	}
}

func (h *Handler) handleImport(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(h.out, "usage: import <uri>")
		return
	}
	rec, err := codec.ParseURI(args[0])
	if err != nil {
		fmt.Fprintf(h.out, "import failed: %v\n", err)
		h.log.Warnw("import failed", "game_id", h.gameID, "error", err)
		return
	}
	if h.rec.Total() > 0 && !h.confirm(fmt.Sprintf("import %d move(s) and overwrite the current game", rec.Total())) {
		return
	}
	h.review = true
	h.newGame(rec)
	h.render()
}

// nextStone applies the stone-lock policy: a locked color sticks
// across placements, otherwise the turn is inferred from the record.
func (h *Handler) nextStone() game.Stone {
	if h.cfg.LockStone {
		return h.stone
	}
	return h.rec.InferTurn()
}

func (h *Handler) confirm(consequence string) bool {
	fmt.Fprintf(h.out, "this will %s, continue? [y/N] ", consequence)
	if !h.in.Scan() {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(h.in.Text()))
	return answer == "y" || answer == "yes"
}

func (h *Handler) render() {
	fmt.Fprintln(h.out, RenderBoard(h.rec))
	fmt.Fprintf(h.out, "move %d of %d", h.rec.Index(), h.rec.Total())
	if h.review {
		fmt.Fprint(h.out, " (review)")
	}
	fmt.Fprintln(h.out)
	if win, ok := h.rec.FirstWin(); ok && h.cfg.ShowWinHint {
		winner, _ := h.rec.Get(win.Row.Start)
		fmt.Fprintf(h.out, "%s wins: (%d, %d)-(%d, %d) at move %d\n",
			winner, win.Row.Start.X, win.Row.Start.Y,
			win.Row.End.X, win.Row.End.Y, win.Index)
	}
}

func (h *Handler) printHelp() {
	fmt.Fprintln(h.out, `commands:
  move <x> <y>   place the next stone
  undo / redo    step through the record
  jump <index>   go to a move index
  stone <color>  pick the color to place (with LOCK_STONE)
  turn           show whose turn is inferred
  export         print the game as a gomoku:// URI
  import <uri>   replace the game with a gomoku:// URI
  show           redraw the board
  new            start over
  quit           leave`)
}

// RenderBoard draws the occupancy grid with star points on empty
// cells and the latest move marked.
func RenderBoard(rec *record.Record) string {
	past := rec.PastMoves()
	var last game.Point
	hasLast := len(past) > 0
	if hasLast {
		last = past[len(past)-1].Pos
	}

	var sb strings.Builder
	sb.WriteString("   ")
	for x := 0; x < game.BoardSize; x++ {
		fmt.Fprintf(&sb, "%2d", x)
	}
	sb.WriteByte('\n')
	for y := 0; y < game.BoardSize; y++ {
		fmt.Fprintf(&sb, "%2d ", y)
		for x := 0; x < game.BoardSize; x++ {
			p := game.Point{X: x, Y: y}
			stone, _ := rec.Get(p)
			if hasLast && p == last {
				sb.WriteByte('>')
			} else {
				sb.WriteByte(' ')
			}
			sb.WriteByte(cellRune(p, stone))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func cellRune(p game.Point, stone game.Stone) byte {
	switch stone {
	case game.BlackStone:
		return 'X'
	case game.WhiteStone:
		return 'O'
	}
	for _, star := range starPoints {
		if p == star {
			return '+'
		}
	}
	return '.'
}
