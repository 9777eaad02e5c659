package services

import "errors"

// Shared sentinel errors, mapped onto HTTP statuses by the handler layer.
var (
	// Not found (routine lookups from the UI)
	ErrNotFound         = errors.New("requested resource not found")
	ErrTeamNotFound     = errors.New("team not found")
	ErrQuestionNotFound = errors.New("question not found")
	ErrMatchNotFound    = errors.New("match not found")

	// Validation
	ErrQuestionTextRequired = errors.New("question text is required")
	ErrSchoolNameRequired   = errors.New("school name is required")
	ErrInvalidAnswerOption  = errors.New("correct answer must be one of A, B, C or D")

	// Scheduling preconditions; the whole operation is rejected and no
	// state changes.
	ErrNotEnoughTeams     = errors.New("need at least 2 teams")
	ErrOddTeamCount       = errors.New("need an even number of teams")
	ErrNotEnoughQuestions = errors.New("not enough available questions")

	// Battle preconditions
	ErrMatchAlreadyActive    = errors.New("match already active")
	ErrMatchAlreadyCompleted = errors.New("match already completed")
	ErrAnotherMatchActive    = errors.New("another match is active, complete it first")
	ErrMatchNotActive        = errors.New("match is not active")
	ErrNoCurrentQuestion     = errors.New("match has no current question")
	ErrNoQuestionsAvailable  = errors.New("no questions available in bank")
)
