package game

// Stage is one step of the tutorial script. Dialogue stages pause the
// simulation until the player confirms; combat stages run the match and
// wait on score conditions instead.
type Stage int

const (
	StageIntro Stage = iota
	StageMoveHint
	StageDifficultyProbe
	StageEasyExplain
	StageHardExplain
	StageShootExplain
	StageShootProbe1
	StageShootProbe2
	StageShootProbe3
	StageSuccess
	StageFail
	StageReturnWarn1
	StageReturnWarn2
	StageReturnWarn3
	StageReturnWarn4
	StageClosing
	StageIdleCombat
)

func (s Stage) String() string {
	switch s {
	case StageIntro:
		return "intro"
	case StageMoveHint:
		return "move_hint"
	case StageDifficultyProbe:
		return "difficulty_probe"
	case StageEasyExplain:
		return "easy_explain"
	case StageHardExplain:
		return "hard_explain"
	case StageShootExplain:
		return "shoot_explain"
	case StageShootProbe1:
		return "shoot_probe_1"
	case StageShootProbe2:
		return "shoot_probe_2"
	case StageShootProbe3:
		return "shoot_probe_3"
	case StageSuccess:
		return "success"
	case StageFail:
		return "fail"
	case StageReturnWarn1:
		return "return_warn_1"
	case StageReturnWarn2:
		return "return_warn_2"
	case StageReturnWarn3:
		return "return_warn_3"
	case StageReturnWarn4:
		return "return_warn_4"
	case StageClosing:
		return "closing"
	case StageIdleCombat:
		return "idle_combat"
	default:
		return "unknown"
	}
}

// Paused reports whether the stage holds the simulation for dialogue.
func (s Stage) Paused() bool {
	switch s {
	case StageIntro, StageMoveHint, StageEasyExplain, StageHardExplain,
		StageShootExplain, StageSuccess, StageFail,
		StageReturnWarn1, StageReturnWarn2, StageReturnWarn3, StageReturnWarn4,
		StageClosing:
		return true
	default:
		return false
	}
}

// ShootDrill reports whether the stage runs the offense/defense drill, the
// stages where the bot's TutorialPolicy is active.
func (s Stage) ShootDrill() bool {
	switch s {
	case StageShootProbe1, StageShootProbe2, StageShootProbe3:
		return true
	default:
		return false
	}
}

// nextStage is the forward table: the stage reached when the player
// confirms the current dialogue line. Combat stages return themselves;
// their exits are score conditions, not confirms.
func nextStage(s Stage) Stage {
	switch s {
	case StageIntro:
		return StageMoveHint
	case StageMoveHint:
		return StageDifficultyProbe
	case StageEasyExplain:
		return StageIdleCombat
	case StageHardExplain:
		return StageShootExplain
	case StageShootExplain:
		return StageShootProbe1
	case StageSuccess:
		return StageIdleCombat
	case StageFail:
		return StageShootProbe1
	case StageReturnWarn1:
		return StageReturnWarn2
	case StageReturnWarn2:
		return StageReturnWarn3
	case StageReturnWarn3:
		return StageReturnWarn4
	case StageReturnWarn4:
		return StageClosing
	default:
		return s
	}
}

// scoreState is the tuple the conditional transitions read: the live
// scores plus the baselines captured on entry to the current probe stage.
type scoreState struct {
	player      int
	bot         int
	probePlayer int
	probeBot    int
}

// Score thresholds for the conditional stage transitions.
const (
	easyBranchScore  = 7  // player lead that routes the probe to the easy branch
	hardBranchScore  = 10 // bot lead that routes the probe to the escalation branch
	probeGoalTarget  = 3  // player goals that finish one shoot drill checkpoint
	probeFailMargin  = 5  // bot goals during a checkpoint that fail the drill
	hardenScore      = 10 // player lead that triggers the idle "get harder" one-shot
	softenScore      = 10 // bot lead that triggers the idle soften one-shot
	unlockShotsScore = 15 // bot total that unlocks shots in idle combat
)

// advanceCondition evaluates the score-driven transitions for the current
// stage. It reports the stage to jump to and whether a jump fires; pure,
// so branch routing is testable without running a match.
func advanceCondition(s Stage, sc scoreState) (Stage, bool) {
	switch s {
	case StageDifficultyProbe:
		if sc.player >= easyBranchScore && sc.player >= sc.bot*2 {
			return StageEasyExplain, true
		}
		if sc.bot >= hardBranchScore && sc.bot >= sc.player*2 {
			return StageHardExplain, true
		}
	case StageShootProbe1, StageShootProbe2, StageShootProbe3:
		if sc.player-sc.probePlayer >= probeGoalTarget {
			if sc.bot-sc.probeBot >= probeFailMargin {
				return StageFail, true
			}
			switch s {
			case StageShootProbe1:
				return StageShootProbe2, true
			case StageShootProbe2:
				return StageShootProbe3, true
			default:
				return StageSuccess, true
			}
		}
	}
	return s, false
}
