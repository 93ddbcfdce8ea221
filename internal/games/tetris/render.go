package tetris

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

const (
	cellWidth = 2 // Terminal columns per board cell
	boardW    = BoardWidth*cellWidth + 2
	boardH    = BoardHeight + 2
	panelW    = 22
	layoutW   = boardW + 2 + panelW
)

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	snap := g.engine.Snapshot()
	if snap.Phase == PhaseIdle {
		g.renderTitle(dst, snap)
		return
	}

	boardX := (g.screenW - layoutW) / 2
	boardY := 1

	dst.DrawTextCentered(0, "TETRIS")
	g.renderBoard(dst, snap, boardX, boardY)
	g.renderPanel(dst, snap, boardX+boardW+2, boardY)
	g.renderOverlays(dst, snap, boardX, boardY)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
}

// renderTitle draws the start screen.
func (g *Game) renderTitle(dst *core.Screen, snap Snapshot) {
	title := "T E T R I S"
	y := g.screenH/2 - 7
	if y < 0 {
		y = 0
	}

	x := (g.screenW - len(title)) / 2
	for i, k := range Kinds[:6] {
		dst.SetCell(x+i*2, y, rune(title[i*2]), g.pieceColor(Cell(k)))
	}

	dst.DrawTextCentered(y+2, "Press Enter to start")

	dst.DrawTextCentered(y+4, "HIGH SCORES")
	lines := highScoreLines(snap.HighScores)
	for i, line := range lines {
		dst.DrawTextCentered(y+5+i, line)
	}

	hints := []string{
		"←/A →/D  move",
		"↑/W      rotate",
		"↓/S      soft drop",
		"Space    hard drop",
		"P/Esc    pause",
	}
	base := y + 6 + len(lines)
	hx := (g.screenW - 18) / 2
	for i, h := range hints {
		dst.DrawTextColor(hx, base+i, h, core.ColorGray)
	}
}

// renderBoard draws the well, the settled cells, the landing preview and the
// active piece.
func (g *Game) renderBoard(dst *core.Screen, snap Snapshot, boardX, boardY int) {
	dst.DrawBox(core.NewRect(boardX, boardY, boardW, boardH))

	empty := []rune(g.cfg.Board.Empty)
	block := []rune(g.cfg.Board.Block)

	for y := range BoardHeight {
		for x := range BoardWidth {
			g.drawCell(dst, boardX, boardY, x, y, empty, core.ColorGray)
		}
	}

	if ghost := []rune(g.cfg.Board.Ghost); len(ghost) == cellWidth && snap.Phase == PhaseRunning {
		pos := snap.Ghost()
		color := g.pieceColor(Cell(snap.Current.Kind()))
		for r, row := range snap.Current {
			for c, v := range row {
				x, y := pos.X+c, pos.Y+r
				if v == Empty || y < 0 || y >= BoardHeight || x < 0 || x >= BoardWidth {
					continue
				}
				g.drawCell(dst, boardX, boardY, x, y, ghost, color)
			}
		}
	}

	board := snap.Board()
	for y := range BoardHeight {
		for x := range BoardWidth {
			if v := board[y][x]; v != Empty {
				g.drawCell(dst, boardX, boardY, x, y, block, g.pieceColor(v))
			}
		}
	}
}

func (g *Game) drawCell(dst *core.Screen, boardX, boardY, x, y int, glyph []rune, color core.Color) {
	px := boardX + 1 + x*cellWidth
	py := boardY + 1 + y
	for i := 0; i < cellWidth && i < len(glyph); i++ {
		dst.SetCell(px+i, py, glyph[i], color)
	}
}

// renderPanel draws score, level, lives, the next piece and the high scores.
func (g *Game) renderPanel(dst *core.Screen, snap Snapshot, x, y int) {
	dst.DrawTextColor(x, y, "SCORE", core.ColorGray)
	dst.DrawText(x, y+1, strconv.Itoa(snap.Score))

	dst.DrawTextColor(x, y+3, "LEVEL", core.ColorGray)
	dst.DrawText(x, y+4, strconv.Itoa(snap.Level))

	dst.DrawTextColor(x, y+6, "LIVES", core.ColorGray)
	hearts := strings.Repeat("♥ ", snap.Lives)
	dst.DrawTextColor(x, y+7, hearts, core.ColorHotPink)

	dst.DrawTextColor(x, y+9, "NEXT", core.ColorGray)
	block := []rune(g.cfg.Board.Block)
	color := g.pieceColor(Cell(snap.Next.Kind()))
	for r, row := range snap.Next {
		for c, v := range row {
			if v == Empty {
				continue
			}
			for i := 0; i < cellWidth && i < len(block); i++ {
				dst.SetCell(x+c*cellWidth+i, y+10+r, block[i], color)
			}
		}
	}

	dst.DrawTextColor(x, y+15, "HIGH SCORES", core.ColorGray)
	for i, line := range highScoreLines(snap.HighScores) {
		dst.DrawText(x, y+16+i, line)
	}

	if g.effectLines > 0 {
		msg := fmt.Sprintf("+%d LINE", g.effectLines)
		if g.effectLines > 1 {
			msg += "S"
		}
		dst.DrawTextColor(x, y+20, msg+"!", core.ColorBrightYellow)
	}
}

// renderOverlays draws pause and game-over boxes over the board.
func (g *Game) renderOverlays(dst *core.Screen, snap Snapshot, boardX, boardY int) {
	centerX, centerY := core.NewRect(boardX, boardY, boardW, boardH).Center()

	switch snap.Phase {
	case PhasePaused:
		drawOverlay(dst, centerX, centerY, "PAUSED", "P: resume")
	case PhaseGameOver:
		drawOverlay(dst, centerX, centerY,
			"GAME OVER",
			fmt.Sprintf("Score: %d", snap.Score),
			"Enter: again",
		)
	}
}

// drawOverlay draws a centered text box.
func drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = core.Max(maxLen, len([]rune(line)))
	}

	box := core.NewRect(centerX-(maxLen+4)/2, centerY-(len(lines)+2)/2, maxLen+4, len(lines)+2)
	dst.FillRect(box)
	dst.DrawBox(box)

	for i, line := range lines {
		x := centerX - len([]rune(line))/2
		dst.DrawText(x, box.Y+1+i, line)
	}
}

func highScoreLines(scores []int) []string {
	if len(scores) == 0 {
		return []string{"No scores yet"}
	}
	lines := make([]string, len(scores))
	for i, s := range scores {
		lines[i] = fmt.Sprintf("%d. %d", i+1, s)
	}
	return lines
}

func (g *Game) pieceColor(v Cell) core.Color {
	if v == Empty {
		return core.ColorDefault
	}
	return g.cfg.Color(Kind(v).String())
}
