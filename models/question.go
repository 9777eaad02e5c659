package models

// Option labels as stored in Question.CorrectAnswer and Round.SelectedAnswer.
const (
	OptionA = "A"
	OptionB = "B"
	OptionC = "C"
	OptionD = "D"
)

type Question struct {
	ID            string `json:"id"`
	Question      string `json:"question"`
	OptionA       string `json:"optionA"`
	OptionB       string `json:"optionB"`
	OptionC       string `json:"optionC"`
	OptionD       string `json:"optionD"`
	CorrectAnswer string `json:"correctAnswer"`
	IsUsed        bool   `json:"isUsed"`
}

// SafeQuestion is the view of a live question handed to the UI.
// It deliberately omits the correct answer.
type SafeQuestion struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	OptionA  string `json:"optionA"`
	OptionB  string `json:"optionB"`
	OptionC  string `json:"optionC"`
	OptionD  string `json:"optionD"`
}

func (q *Question) Sanitized() *SafeQuestion {
	return &SafeQuestion{
		ID:       q.ID,
		Question: q.Question,
		OptionA:  q.OptionA,
		OptionB:  q.OptionB,
		OptionC:  q.OptionC,
		OptionD:  q.OptionD,
	}
}
