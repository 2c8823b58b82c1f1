package game

import (
	"errors"
	"testing"
)

func TestScoreBoard_SharedCooldownGatesBothGoals(t *testing.T) {
	sb := NewScoreBoard(scoreCooldownPeriod)

	if !sb.PlayerGoal() {
		t.Fatal("first goal must count")
	}
	// The cooldown is shared: the other goal is dead too.
	if sb.BotGoal() {
		t.Fatal("goal during shared cooldown must not count")
	}
	if sb.Player() != 1 || sb.Bot() != 0 {
		t.Fatalf("expected 1:0, got %d:%d", sb.Player(), sb.Bot())
	}

	for i := 0; i < scoreCooldownPeriod; i++ {
		if !sb.CoolingDown() {
			t.Fatalf("cooldown expired early at step %d", i)
		}
		sb.TickCooldown()
	}
	if sb.CoolingDown() {
		t.Fatal("cooldown should be spent")
	}
	if !sb.BotGoal() {
		t.Fatal("goal after cooldown must count")
	}
	if sb.Player() != 1 || sb.Bot() != 1 {
		t.Fatalf("expected 1:1, got %d:%d", sb.Player(), sb.Bot())
	}
}

func TestScoreBoard_Reset(t *testing.T) {
	sb := NewScoreBoard(scoreCooldownPeriod)
	sb.PlayerGoal()
	sb.Reset()

	if sb.Player() != 0 || sb.Bot() != 0 {
		t.Fatalf("expected 0:0 after reset, got %d:%d", sb.Player(), sb.Bot())
	}
	if sb.CoolingDown() {
		t.Fatal("reset must clear the cooldown")
	}
	if !sb.PlayerGoal() {
		t.Fatal("goal right after reset must count")
	}
}

func TestScoreBoard_String(t *testing.T) {
	sb := NewScoreBoard(scoreCooldownPeriod)
	sb.PlayerGoal()
	if got := sb.String(); got != "player 1 : 0 bot" {
		t.Fatalf("unexpected string: %q", got)
	}
}

func TestScoreRows_SidesOfCentre(t *testing.T) {
	font := NewSpriteFont(scoreScale)
	centre := float64(logicalWidth) / 2

	// Single digits and a wider readout both stay on their own side.
	for _, scores := range [][2]int{{0, 0}, {12, 3}, {123, 456}} {
		playerRow, botRow := scoreRows(scores[0], scores[1], font)
		if playerRow.Right() >= centre {
			t.Fatalf("player row %+v crosses centre for %v", playerRow, scores)
		}
		if botRow.X <= centre {
			t.Fatalf("bot row %+v crosses centre for %v", botRow, scores)
		}
		if err := checkScoreLayout(playerRow, botRow); err != nil {
			t.Fatalf("layout check failed for %v: %v", scores, err)
		}
	}
}

func TestScoreRows_WidthGrowsLeftward(t *testing.T) {
	font := NewSpriteFont(scoreScale)

	one, _ := scoreRows(5, 0, font)
	three, _ := scoreRows(100, 0, font)

	// Extra digits push the player row's left edge further out.
	if three.X >= one.X {
		t.Fatalf("wider readout should start further left: %v vs %v", three.X, one.X)
	}
}

func TestCheckScoreLayout_SwappedSides(t *testing.T) {
	font := NewSpriteFont(scoreScale)
	playerRow, botRow := scoreRows(3, 7, font)

	if err := checkScoreLayout(botRow, playerRow); !errors.Is(err, errScoreSidesSwapped) {
		t.Fatalf("expected swapped-sides error, got %v", err)
	}
}
