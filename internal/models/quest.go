package models

// Difficulty labels. Other labels are tolerated and get the default reward.
const (
	DifficultyEasy   = "Easy"
	DifficultyMedium = "Medium"
	DifficultyHard   = "Hard"
	DifficultyEpic   = "Epic"
)

const (
	MaxQuestTitle = 80
	MaxQuestNotes = 240
	MinQuestTitle = 3
)

type Quest struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Notes       string  `json:"notes"`
	Difficulty  string  `json:"difficulty"`
	CreatedAt   string  `json:"createdAt"`
	CompletedAt *string `json:"completedAt"`
}

// Active reports whether the quest has not been completed.
func (q *Quest) Active() bool {
	return q.CompletedAt == nil
}
