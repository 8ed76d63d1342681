package models

// BuilderDraft is the serializable snapshot of a practitioner's in-progress
// questionnaire: the accumulated questions plus draft metadata. It is loaded
// and saved whole (last write wins) and cleared explicitly.
type BuilderDraft struct {
	Questions     []Question         `json:"questions"`
	Questionnaire DraftQuestionnaire `json:"questionnaire"`
	IsInitialized bool               `json:"is_initialized"`
}

type DraftQuestionnaire struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
}

// NextOrder returns the order value the next appended question receives.
func (d *BuilderDraft) NextOrder() int {
	next := 0
	for _, question := range d.Questions {
		if question.Order >= next {
			next = question.Order + 1
		}
	}
	return next
}
