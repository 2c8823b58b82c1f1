package game

import (
	"errors"
	"fmt"
)

const scoreCooldownPeriod = 10 // ticks both goals stay dead after a score

// ScoreBoard keeps both scores and the single cooldown shared by the two
// goals. Scores only ever go up; the one sanctioned reset is the tutorial's
// on returning to the menu.
type ScoreBoard struct {
	playerScore int
	botScore    int

	cooldownPeriod int
	cooldown       int
}

func NewScoreBoard(period int) *ScoreBoard {
	return &ScoreBoard{cooldownPeriod: period}
}

func (sb *ScoreBoard) Player() int { return sb.playerScore }
func (sb *ScoreBoard) Bot() int    { return sb.botScore }

// PlayerGoal awards the player a point unless the shared cooldown is still
// running. Reports whether the point counted.
func (sb *ScoreBoard) PlayerGoal() bool {
	return sb.award(&sb.playerScore)
}

// BotGoal awards the bot a point under the same cooldown.
func (sb *ScoreBoard) BotGoal() bool {
	return sb.award(&sb.botScore)
}

func (sb *ScoreBoard) award(score *int) bool {
	if sb.cooldown > 0 {
		return false
	}
	*score++
	sb.cooldown += sb.cooldownPeriod
	return true
}

// TickCooldown runs the shared timer down one step. The match calls this
// once per tick, after the goal checks.
func (sb *ScoreBoard) TickCooldown() {
	if sb.cooldown > 0 {
		sb.cooldown--
	}
}

func (sb *ScoreBoard) CoolingDown() bool { return sb.cooldown > 0 }

// Reset zeroes both scores and the cooldown.
func (sb *ScoreBoard) Reset() {
	sb.playerScore = 0
	sb.botScore = 0
	sb.cooldown = 0
}

func (sb *ScoreBoard) String() string {
	return fmt.Sprintf("player %d : %d bot", sb.playerScore, sb.botScore)
}

// --- Score readout layout ---

// Score readouts sit either side of the centre line: the player's row ends
// a fixed gap left of centre, the bot's starts the same gap right of it.
const (
	scoreGap  = 30.0
	scoreRowY = 30.0
)

var errScoreSidesSwapped = errors.New("score readouts rendered on swapped sides")

// scoreRows returns the screen rectangles the two score readouts occupy for
// the given scores, at the sprite font's score scale. Pure layout math so
// the side invariant can be checked without a GPU.
func scoreRows(playerScore, botScore int, font *SpriteFont) (playerRow, botRow Rect) {
	scale := float64(font.Scale)
	playerText := fmt.Sprintf("%d", playerScore)
	botText := fmt.Sprintf("%d", botScore)

	centre := float64(logicalWidth) / 2
	pw := textWidth(playerText, font.Scale)
	bw := textWidth(botText, font.Scale)
	playerRow = NewRect(centre-float64(len(playerText))*scale*glyphW-scoreGap, scoreRowY, pw, glyphH*scale)
	botRow = NewRect(centre+scoreGap, scoreRowY, bw, glyphH*scale)
	return playerRow, botRow
}

// checkScoreLayout is the render-sanity assertion: the player's readout
// belongs entirely left of centre and the bot's entirely right of it. Only
// the both-swapped case is fatal; a single odd row is left to the eye.
func checkScoreLayout(playerRow, botRow Rect) error {
	centre := float64(logicalWidth) / 2
	playerWrong := playerRow.X >= centre
	botWrong := botRow.Right() <= centre
	if playerWrong && botWrong {
		return errScoreSidesSwapped
	}
	return nil
}
