package game

import "testing"

func newTutorialFixture() (*TutorialMachine, *Match) {
	return NewTutorialMachine(), NewMatch(1)
}

func TestTutorialMachine_StartsAtIntro(t *testing.T) {
	tm, _ := newTutorialFixture()

	if tm.Stage() != StageIntro {
		t.Fatalf("expected intro, got %s", tm.Stage())
	}
	if !tm.Paused() {
		t.Fatal("intro must pause the match")
	}
	if tm.Completed() || tm.ShotsUnlocked() {
		t.Fatal("fresh machine must carry no progress")
	}
}

func TestTutorialMachine_AdvanceWalksDialogue(t *testing.T) {
	tm, m := newTutorialFixture()

	if tm.Advance(m) {
		t.Fatal("intro confirm must not close the game")
	}
	if tm.Stage() != StageMoveHint {
		t.Fatalf("expected move_hint, got %s", tm.Stage())
	}
	tm.Advance(m)
	if tm.Stage() != StageDifficultyProbe {
		t.Fatalf("expected difficulty_probe, got %s", tm.Stage())
	}

	// Combat stages ignore confirms outright.
	tm.Advance(m)
	if tm.Stage() != StageDifficultyProbe {
		t.Fatalf("confirm during combat moved the stage to %s", tm.Stage())
	}
}

func TestTutorialMachine_ProbeRoutesEasyAndTunes(t *testing.T) {
	tm, m := newTutorialFixture()
	tm.enterStage(StageDifficultyProbe, m)

	m.score.playerScore = 7
	tm.CheckStage(m)

	if tm.Stage() != StageEasyExplain {
		t.Fatalf("expected easy_explain, got %s", tm.Stage())
	}
	if m.BotTuning() != easyBotTuning() {
		t.Fatalf("easy branch must apply the easy tuning, got %+v", m.BotTuning())
	}
}

func TestTutorialMachine_ProbeRoutesHard(t *testing.T) {
	tm, m := newTutorialFixture()
	tm.enterStage(StageDifficultyProbe, m)

	m.score.botScore = 10
	tm.CheckStage(m)

	if tm.Stage() != StageHardExplain {
		t.Fatalf("expected hard_explain, got %s", tm.Stage())
	}
	// The hard branch explains shots before the drill; tuning is untouched.
	if m.BotTuning() != defaultBotTuning() {
		t.Fatalf("hard branch must not retune, got %+v", m.BotTuning())
	}
}

func TestTutorialMachine_DrillEntryCapturesBaselines(t *testing.T) {
	tm, m := newTutorialFixture()
	tm.enterStage(StageHardExplain, m)
	m.score.playerScore = 1
	m.score.botScore = 2

	tm.Advance(m) // shoot_explain
	tm.Advance(m) // shoot_probe_1

	if tm.Stage() != StageShootProbe1 {
		t.Fatalf("expected shoot_probe_1, got %s", tm.Stage())
	}
	if tm.probePlayer != 1 || tm.probeBot != 2 {
		t.Fatalf("baselines not captured: %d/%d", tm.probePlayer, tm.probeBot)
	}
	if m.BotPolicy().Name() != "tutorial" {
		t.Fatalf("drill stage must install the drill policy, got %q", m.BotPolicy().Name())
	}
}

func TestTutorialMachine_DrillChainToSuccess(t *testing.T) {
	tm, m := newTutorialFixture()
	tm.enterStage(StageShootProbe1, m)

	// Three goals clear the first checkpoint and rebase the counters.
	m.score.playerScore = 3
	tm.CheckStage(m)
	if tm.Stage() != StageShootProbe2 {
		t.Fatalf("expected shoot_probe_2, got %s", tm.Stage())
	}
	if tm.probePlayer != 3 {
		t.Fatalf("checkpoint must rebase, got %d", tm.probePlayer)
	}

	m.score.playerScore = 6
	tm.CheckStage(m)
	if tm.Stage() != StageShootProbe3 {
		t.Fatalf("expected shoot_probe_3, got %s", tm.Stage())
	}

	m.score.playerScore = 9
	tm.CheckStage(m)
	if tm.Stage() != StageSuccess {
		t.Fatalf("expected success, got %s", tm.Stage())
	}
	// Leaving the drill returns the bot to plain follow.
	if m.BotPolicy().Name() != "follow" {
		t.Fatalf("expected follow after the drill, got %q", m.BotPolicy().Name())
	}

	// Confirming success lands in idle combat and marks completion.
	tm.Advance(m)
	if tm.Stage() != StageIdleCombat || !tm.Completed() {
		t.Fatalf("expected completed idle combat, got %s completed=%v", tm.Stage(), tm.Completed())
	}
}

func TestTutorialMachine_DrillFailLoopsBack(t *testing.T) {
	tm, m := newTutorialFixture()
	tm.enterStage(StageShootProbe1, m)

	m.score.playerScore = 3
	m.score.botScore = 5
	tm.CheckStage(m)

	if tm.Stage() != StageFail {
		t.Fatalf("expected fail, got %s", tm.Stage())
	}

	// The fail dialogue sends the player back to the first checkpoint with
	// fresh baselines.
	tm.Advance(m)
	if tm.Stage() != StageShootProbe1 {
		t.Fatalf("expected shoot_probe_1 after fail, got %s", tm.Stage())
	}
	if tm.probePlayer != 3 || tm.probeBot != 5 {
		t.Fatalf("baselines not rebased after fail: %d/%d", tm.probePlayer, tm.probeBot)
	}
}

func TestTutorialMachine_IdleHardenFiresOnce(t *testing.T) {
	tm, m := newTutorialFixture()
	tm.enterStage(StageIdleCombat, m)

	m.score.playerScore = 10
	tm.CheckStage(m)

	want := defaultBotTuning().Harden()
	if m.BotTuning() != want {
		t.Fatalf("expected hardened tuning %+v, got %+v", want, m.BotTuning())
	}
	if n, ok := tm.PopNotice(); !ok || n != "get_harder" {
		t.Fatalf("expected get_harder notice, got %q %v", n, ok)
	}

	// One-shot: the next tick must not stack another halving.
	tm.CheckStage(m)
	if m.BotTuning() != want {
		t.Fatalf("harden stacked: %+v", m.BotTuning())
	}
	if _, ok := tm.PopNotice(); ok {
		t.Fatal("no second notice expected")
	}
}

func TestTutorialMachine_IdleSoftenAndUnlock(t *testing.T) {
	tm, m := newTutorialFixture()
	tm.enterStage(StageIdleCombat, m)
	m.SetBotTuning(defaultBotTuning().Harden())

	m.score.playerScore = 10
	m.score.botScore = 20
	tm.CheckStage(m)

	// Soften undoes the earlier harden and the bot total unlocks shots.
	if m.BotTuning() != defaultBotTuning() {
		t.Fatalf("expected softened baseline, got %+v", m.BotTuning())
	}
	if !tm.ShotsUnlocked() {
		t.Fatal("expected shots unlocked")
	}
	if m.BotPolicy().Name() != "tutorial" {
		t.Fatalf("unlock must install the drill policy, got %q", m.BotPolicy().Name())
	}
	if n, _ := tm.PopNotice(); n != "go_softer" {
		t.Fatalf("expected go_softer first, got %q", n)
	}
	if n, _ := tm.PopNotice(); n != "shots_unlocked" {
		t.Fatalf("expected shots_unlocked second, got %q", n)
	}
}

func TestTutorialMachine_LeaveToMenuResetsScores(t *testing.T) {
	tm, m := newTutorialFixture()
	tm.enterStage(StageDifficultyProbe, m)
	m.score.playerScore = 4
	m.score.botScore = 2

	tm.LeaveToMenu(m)

	if m.Score().Player() != 0 || m.Score().Bot() != 0 {
		t.Fatalf("expected 0:0 after leave, got %d:%d", m.Score().Player(), m.Score().Bot())
	}
	// Not completed yet: no scolding chain.
	if tm.Stage() != StageDifficultyProbe {
		t.Fatalf("expected stage held, got %s", tm.Stage())
	}
}

func TestTutorialMachine_ReturnWarnChainEndsInClosing(t *testing.T) {
	tm, m := newTutorialFixture()
	tm.enterStage(StageIdleCombat, m) // marks completion

	tm.LeaveToMenu(m)
	if tm.Stage() != StageReturnWarn1 {
		t.Fatalf("completed leave must arm the warn chain, got %s", tm.Stage())
	}

	for _, want := range []Stage{StageReturnWarn2, StageReturnWarn3, StageReturnWarn4, StageClosing} {
		if tm.Advance(m) {
			t.Fatalf("chain closed early at %s", tm.Stage())
		}
		if tm.Stage() != want {
			t.Fatalf("expected %s, got %s", want, tm.Stage())
		}
	}
	// The closing line's confirm asks the caller to shut down.
	if !tm.Advance(m) {
		t.Fatal("closing confirm must request shutdown")
	}
}

func TestTutorialMachine_PopNoticeEmpty(t *testing.T) {
	tm, _ := newTutorialFixture()
	if n, ok := tm.PopNotice(); ok || n != "" {
		t.Fatalf("expected empty drain, got %q %v", n, ok)
	}
}
