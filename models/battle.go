package models

// BattleState is the sanitized snapshot of a match handed to the UI.
// The current question never carries its correct answer; the answer key is
// only revealed through AnswerResult after the round is resolved.
type BattleState struct {
	MatchID              string        `json:"matchId"`
	SlotNumber           int           `json:"slotNumber"`
	Team1                TeamPublic    `json:"team1"`
	Team2                TeamPublic    `json:"team2"`
	CurrentTurn          Side          `json:"currentTurn"`
	CurrentQuestion      *SafeQuestion `json:"currentQuestion"`
	Team1Score           int           `json:"team1Score"`
	Team2Score           int           `json:"team2Score"`
	Team1RoundsCompleted int           `json:"team1RoundsCompleted"`
	Team2RoundsCompleted int           `json:"team2RoundsCompleted"`
	QuestionsPerTeam     int           `json:"questionsPerTeam"`
	Status               MatchStatus   `json:"status"`
	WinnerID             *string       `json:"winnerId"`
	IsTiebreaker         bool          `json:"isTiebreaker"`
}

// AnswerResult is returned from a submitted answer or timeout. BattleState
// is nil once the match has completed.
type AnswerResult struct {
	IsCorrect       bool         `json:"isCorrect"`
	CorrectAnswer   string       `json:"correctAnswer"`
	IsTimeout       bool         `json:"isTimeout"`
	IsMatchComplete bool         `json:"isMatchComplete"`
	IsTiebreaker    bool         `json:"isTiebreaker"`
	Team1Score      int          `json:"team1Score"`
	Team2Score      int          `json:"team2Score"`
	WinnerID        *string      `json:"winnerId"`
	BattleState     *BattleState `json:"battleState"`
}

// HistoryRound resolves a recorded round against the current pool and
// registry. Deleted questions show placeholder text rather than failing.
type HistoryRound struct {
	Index          int     `json:"index"`
	TeamName       string  `json:"teamName"`
	TeamID         string  `json:"teamId"`
	Question       string  `json:"question"`
	CorrectAnswer  string  `json:"correctAnswer"`
	SelectedAnswer *string `json:"selectedAnswer"`
	IsCorrect      bool    `json:"isCorrect"`
	IsTimeout      bool    `json:"isTimeout"`
}

type MatchHistory struct {
	MatchID             string         `json:"matchId"`
	SlotNumber          int            `json:"slotNumber"`
	Team1               *Team          `json:"team1"`
	Team2               *Team          `json:"team2"`
	Winner              *Team          `json:"winner"`
	Team1Score          int            `json:"team1Score"`
	Team2Score          int            `json:"team2Score"`
	Status              MatchStatus    `json:"status"`
	Rounds              []HistoryRound `json:"rounds"`
	TiebreakerActivated bool           `json:"tiebreakerActivated"`
}
