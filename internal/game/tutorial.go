package game

import "fmt"

// TutorialMachine walks the tutorial script. It owns the stage, the probe
// baselines and the one-shot escalation flags; all mutation of the match
// (tuning swaps, policy swaps) happens on stage entry or in the per-tick
// check, never from the outside.
type TutorialMachine struct {
	stage     Stage
	completed bool // reached idle combat at least once

	shotsUnlocked bool

	// Baselines captured on entry to each shoot drill checkpoint.
	probePlayer int
	probeBot    int

	// Idle-combat escalations fire once per tutorial.
	hardenDone bool
	softenDone bool
	unlockDone bool

	drill *TutorialPolicy // one instance so the reload timer persists

	notices []string // banner keys for the scene to drain
}

func NewTutorialMachine() *TutorialMachine {
	return &TutorialMachine{stage: StageIntro, drill: &TutorialPolicy{}}
}

func (tm *TutorialMachine) Stage() Stage        { return tm.stage }
func (tm *TutorialMachine) Paused() bool        { return tm.stage.Paused() }
func (tm *TutorialMachine) Completed() bool     { return tm.completed }
func (tm *TutorialMachine) ShotsUnlocked() bool { return tm.shotsUnlocked }

// Advance applies one confirm press. Only dialogue stages react; the
// return value is true when the press closed the Closing stage and the
// caller should shut the game down.
func (tm *TutorialMachine) Advance(m *Match) bool {
	if !tm.stage.Paused() {
		return false
	}
	if tm.stage == StageClosing {
		return true
	}
	tm.enterStage(nextStage(tm.stage), m)
	return false
}

// CheckStage runs the per-tick score-driven transitions.
func (tm *TutorialMachine) CheckStage(m *Match) {
	if tm.stage == StageIdleCombat {
		tm.checkIdleCombat(m)
		return
	}
	sc := scoreState{
		player:      m.Score().Player(),
		bot:         m.Score().Bot(),
		probePlayer: tm.probePlayer,
		probeBot:    tm.probeBot,
	}
	if next, ok := advanceCondition(tm.stage, sc); ok {
		tm.enterStage(next, m)
	}
}

// checkIdleCombat fires the three idle escalations, each at most once.
func (tm *TutorialMachine) checkIdleCombat(m *Match) {
	p, b := m.Score().Player(), m.Score().Bot()
	if !tm.hardenDone && p >= hardenScore && p >= b*2 {
		tm.hardenDone = true
		m.SetBotTuning(m.BotTuning().Harden())
		tm.pushNotice("get_harder")
	}
	if !tm.softenDone && b >= softenScore && b >= p*2 {
		tm.softenDone = true
		m.SetBotTuning(m.BotTuning().Soften())
		tm.pushNotice("go_softer")
	}
	if !tm.unlockDone && b >= unlockShotsScore {
		tm.unlockDone = true
		tm.shotsUnlocked = true
		tm.applyPolicy(m)
		tm.pushNotice("shots_unlocked")
	}
}

// LeaveToMenu handles the escape exit: both scores reset (the one
// sanctioned reset in the game), drill baselines follow them, and a
// completed tutorial re-arms the scolding chain for the next visit.
func (tm *TutorialMachine) LeaveToMenu(m *Match) {
	m.Score().Reset()
	m.logEvent("--", "score", "score_reset", "tutorial exit", 0)
	if tm.stage.ShootDrill() {
		tm.probePlayer = 0
		tm.probeBot = 0
	}
	if tm.completed {
		tm.enterStage(StageReturnWarn1, m)
	}
}

// enterStage moves to the next stage and applies its entry effects.
func (tm *TutorialMachine) enterStage(next Stage, m *Match) {
	if next == tm.stage {
		return
	}
	prev := tm.stage
	tm.stage = next
	m.logEvent("--", "stage", "stage_change",
		fmt.Sprintf("%s -> %s", prev, next), float64(next))

	if next == StageEasyExplain {
		m.SetBotTuning(easyBotTuning())
	}
	if next.ShootDrill() {
		tm.probePlayer = m.Score().Player()
		tm.probeBot = m.Score().Bot()
	}
	if next == StageIdleCombat && !tm.completed {
		tm.completed = true
		m.logEvent("--", "stage", "tutorial_complete", m.Score().String(), 0)
	}
	tm.applyPolicy(m)
}

// applyPolicy installs the bot policy the current stage calls for: the
// drill during shoot checkpoints and unlocked idle combat, plain follow
// everywhere else.
func (tm *TutorialMachine) applyPolicy(m *Match) {
	if tm.stage.ShootDrill() || (tm.stage == StageIdleCombat && tm.shotsUnlocked) {
		m.SetBotPolicy(tm.drill)
		return
	}
	m.SetBotPolicy(FollowPolicy{})
}

func (tm *TutorialMachine) pushNotice(key string) {
	tm.notices = append(tm.notices, key)
}

// PopNotice drains one pending banner key, oldest first.
func (tm *TutorialMachine) PopNotice() (string, bool) {
	if len(tm.notices) == 0 {
		return "", false
	}
	n := tm.notices[0]
	tm.notices = tm.notices[1:]
	return n, true
}
