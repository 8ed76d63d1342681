package models

// QuestionBankEntry is a reusable question definition. An empty OwnerID marks
// a system-owned entry visible to every practitioner.
type QuestionBankEntry struct {
	ID        string   `json:"id" bson:"_id,omitempty"`
	OwnerID   string   `json:"owner_id,omitempty" bson:"ownerId,omitempty"`
	Category  string   `json:"category,omitempty" bson:"category,omitempty"`
	Question  Question `json:"question" bson:"question"`
	TimeModel `bson:",inline"`
}

func (e *QuestionBankEntry) SystemOwned() bool {
	return e.OwnerID == ""
}
