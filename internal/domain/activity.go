package domain

// Activity describes one extracurricular offering and its current roster.
type Activity struct {
	Name            string
	Description     string
	Schedule        string
	MaxParticipants int
	Participants    []string
}

// SpotsLeft reports how many seats remain.
func (a Activity) SpotsLeft() int {
	return a.MaxParticipants - len(a.Participants)
}
