package game

type MatchOutcome int

const (
	OutcomeLevel MatchOutcome = iota
	OutcomePlayerAhead
	OutcomeBotAhead
	OutcomePlayerDominant
	OutcomeBotDominant
)

func (o MatchOutcome) String() string {
	switch o {
	case OutcomeLevel:
		return "level"
	case OutcomePlayerAhead:
		return "player_ahead"
	case OutcomeBotAhead:
		return "bot_ahead"
	case OutcomePlayerDominant:
		return "player_dominant"
	case OutcomeBotDominant:
		return "bot_dominant"
	default:
		return "unknown"
	}
}

// dominantScoreFloor is the minimum goal count before a double-margin lead
// counts as dominance rather than a small-sample streak.
const dominantScoreFloor = 7

type MatchOutcomeReason struct {
	Outcome     MatchOutcome
	PlayerScore int
	BotScore    int
	Margin      int
	Description string
}

func DetermineMatchOutcome(playerScore, botScore int) MatchOutcomeReason {
	reason := MatchOutcomeReason{
		PlayerScore: playerScore,
		BotScore:    botScore,
		Margin:      playerScore - botScore,
	}

	switch {
	case playerScore == botScore && playerScore == 0:
		reason.Outcome = OutcomeLevel
		reason.Description = "level_no_goals_yet"
	case playerScore == botScore:
		reason.Outcome = OutcomeLevel
		reason.Description = "level_scores_tied"
	case playerScore >= dominantScoreFloor && playerScore >= botScore*2:
		reason.Outcome = OutcomePlayerDominant
		reason.Description = "player_dominant_double_margin"
	case botScore >= dominantScoreFloor && botScore >= playerScore*2:
		reason.Outcome = OutcomeBotDominant
		reason.Description = "bot_dominant_double_margin"
	case playerScore > botScore:
		reason.Outcome = OutcomePlayerAhead
		reason.Description = "player_leads_on_goals"
	default:
		reason.Outcome = OutcomeBotAhead
		reason.Description = "bot_leads_on_goals"
	}
	return reason
}
