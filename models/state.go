package models

// State is the full persisted data set: one tournament's worth of teams,
// questions and matches. The store owns exactly one live copy and writes
// the whole snapshot after every mutation.
type State struct {
	Teams     []*Team     `json:"teams"`
	Questions []*Question `json:"questions"`
	Matches   []*Match    `json:"matches"`
}

func NewState() *State {
	return &State{
		Teams:     []*Team{},
		Questions: []*Question{},
		Matches:   []*Match{},
	}
}

func (s *State) TeamByID(id string) *Team {
	for _, t := range s.Teams {
		if t.ID == id {
			return t
		}
	}
	return nil
}

func (s *State) QuestionByID(id string) *Question {
	for _, q := range s.Questions {
		if q.ID == id {
			return q
		}
	}
	return nil
}

func (s *State) MatchByID(id string) *Match {
	for _, m := range s.Matches {
		if m.ID == id {
			return m
		}
	}
	return nil
}

// ActiveMatch returns the single in-flight match, if any.
func (s *State) ActiveMatch() *Match {
	for _, m := range s.Matches {
		if m.Status == MatchStatusActive {
			return m
		}
	}
	return nil
}

// UnusedQuestions returns the questions still available for drawing.
func (s *State) UnusedQuestions() []*Question {
	var out []*Question
	for _, q := range s.Questions {
		if !q.IsUsed {
			out = append(out, q)
		}
	}
	return out
}
