package models

import (
	"fmt"
	"time"
	"vitalia-service/internal/pkg/exceptions"
)

type Questionnaire struct {
	ID             string     `json:"id" bson:"_id,omitempty"`
	PractitionerID string     `json:"practitioner_id" bson:"practitionerId"`
	Title          string     `json:"title" bson:"title"`
	Description    string     `json:"description,omitempty" bson:"description,omitempty"`
	Questions      []Question `json:"questions" bson:"questions"`
	TimeModel      `bson:",inline"`
}

const dateLayout = "2006-01-02"

// ValidateQuestionnaire structurally validates every question against its
// variant rules, then checks the cross-question invariants (pairwise distinct
// ids, pairwise distinct orders). Every violation found is returned; an empty
// slice means the questionnaire is valid.
func ValidateQuestionnaire(questionnaire *Questionnaire) []exceptions.FieldError {
	var fieldErrors []exceptions.FieldError

	if questionnaire.Title == "" {
		fieldErrors = append(fieldErrors, exceptions.FieldError{Field: "title", Reason: "is required"})
	}
	if len(questionnaire.Questions) == 0 {
		fieldErrors = append(fieldErrors, exceptions.FieldError{Field: "questions", Reason: "must contain at least one question"})
	}

	seenIDs := make(map[string]int, len(questionnaire.Questions))
	seenOrders := make(map[int]int, len(questionnaire.Questions))
	for i := range questionnaire.Questions {
		question := &questionnaire.Questions[i]
		index := i
		field := func(name string) string { return fmt.Sprintf("questions[%d].%s", index, name) }
		fieldErrors = append(fieldErrors, validateQuestion(field, question)...)

		if question.ID != "" {
			if firstIndex, dup := seenIDs[question.ID]; dup {
				fieldErrors = append(fieldErrors, exceptions.FieldError{
					Field:  fmt.Sprintf("questions[%d].id", i),
					Reason: fmt.Sprintf("duplicates id of questions[%d]", firstIndex),
				})
			} else {
				seenIDs[question.ID] = i
			}
		}
		if question.Order >= 0 {
			if firstIndex, dup := seenOrders[question.Order]; dup {
				fieldErrors = append(fieldErrors, exceptions.FieldError{
					Field:  fmt.Sprintf("questions[%d].order", i),
					Reason: fmt.Sprintf("duplicates order of questions[%d]", firstIndex),
				})
			} else {
				seenOrders[question.Order] = i
			}
		}
	}

	return fieldErrors
}

// ValidateQuestion checks one question in isolation, as when storing a
// question bank entry. Field names are prefixed "question.".
func ValidateQuestion(question *Question) []exceptions.FieldError {
	field := func(name string) string { return "question." + name }
	return validateQuestion(field, question)
}

func validateQuestion(field func(string) string, question *Question) []exceptions.FieldError {
	var fieldErrors []exceptions.FieldError

	if question.ID == "" {
		fieldErrors = append(fieldErrors, exceptions.FieldError{Field: field("id"), Reason: "is required"})
	}
	if question.QuestionText == "" {
		fieldErrors = append(fieldErrors, exceptions.FieldError{Field: field("question_text"), Reason: "is required"})
	}
	if question.Order < 0 {
		fieldErrors = append(fieldErrors, exceptions.FieldError{Field: field("order"), Reason: "must not be negative"})
	}

	switch question.QuestionType {
	case QuestionTypeText:
		if question.MaxLength != nil && *question.MaxLength <= 0 {
			fieldErrors = append(fieldErrors, exceptions.FieldError{Field: field("max_length"), Reason: "must be greater than 0"})
		}

	case QuestionTypeRadio, QuestionTypeCheckbox:
		if len(question.Options) < 2 {
			fieldErrors = append(fieldErrors, exceptions.FieldError{Field: field("options"), Reason: "must contain at least 2 options"})
		}
		optionIDs := make(map[string]bool, len(question.Options))
		for j, option := range question.Options {
			if option.ID == "" {
				fieldErrors = append(fieldErrors, exceptions.FieldError{Field: field(fmt.Sprintf("options[%d].id", j)), Reason: "is required"})
			} else if optionIDs[option.ID] {
				fieldErrors = append(fieldErrors, exceptions.FieldError{Field: field(fmt.Sprintf("options[%d].id", j)), Reason: "duplicates another option id"})
			}
			optionIDs[option.ID] = true
			if option.Label == "" {
				fieldErrors = append(fieldErrors, exceptions.FieldError{Field: field(fmt.Sprintf("options[%d].label", j)), Reason: "is required"})
			}
		}
		if question.QuestionType == QuestionTypeCheckbox && question.MaxSelections != nil && *question.MaxSelections <= 0 {
			fieldErrors = append(fieldErrors, exceptions.FieldError{Field: field("max_selections"), Reason: "must be greater than 0"})
		}
		if question.QuestionType == QuestionTypeRadio && question.MaxSelections != nil {
			fieldErrors = append(fieldErrors, exceptions.FieldError{Field: field("max_selections"), Reason: "is not allowed for radio questions"})
		}

	case QuestionTypeScale, QuestionTypeSlider:
		if question.MinValue == nil {
			fieldErrors = append(fieldErrors, exceptions.FieldError{Field: field("min_value"), Reason: "is required"})
		}
		if question.MaxValue == nil {
			fieldErrors = append(fieldErrors, exceptions.FieldError{Field: field("max_value"), Reason: "is required"})
		}
		if question.MinValue != nil && question.MaxValue != nil && *question.MaxValue <= *question.MinValue {
			fieldErrors = append(fieldErrors, exceptions.FieldError{Field: field("max_value"), Reason: "must be greater than min_value"})
		}
		if question.Step != nil && *question.Step <= 0 {
			fieldErrors = append(fieldErrors, exceptions.FieldError{Field: field("step"), Reason: "must be greater than 0"})
		}

	case QuestionTypeDate:
		var minDate, maxDate time.Time
		var minOk, maxOk bool
		if question.MinDate != nil {
			var err error
			minDate, err = time.Parse(dateLayout, *question.MinDate)
			if err != nil {
				fieldErrors = append(fieldErrors, exceptions.FieldError{Field: field("min_date"), Reason: "must be a valid ISO date"})
			} else {
				minOk = true
			}
		}
		if question.MaxDate != nil {
			var err error
			maxDate, err = time.Parse(dateLayout, *question.MaxDate)
			if err != nil {
				fieldErrors = append(fieldErrors, exceptions.FieldError{Field: field("max_date"), Reason: "must be a valid ISO date"})
			} else {
				maxOk = true
			}
		}
		if minOk && maxOk && maxDate.Before(minDate) {
			fieldErrors = append(fieldErrors, exceptions.FieldError{Field: field("max_date"), Reason: "must not be before min_date"})
		}

	case QuestionTypeFile:
		if len(question.AcceptedTypes) == 0 {
			fieldErrors = append(fieldErrors, exceptions.FieldError{Field: field("accepted_types"), Reason: "must contain at least one MIME pattern"})
		}
		if question.MaxSizeMB == nil || *question.MaxSizeMB <= 0 {
			fieldErrors = append(fieldErrors, exceptions.FieldError{Field: field("max_size_mb"), Reason: "must be greater than 0"})
		}
		if question.MaxFiles != nil && *question.MaxFiles <= 0 {
			fieldErrors = append(fieldErrors, exceptions.FieldError{Field: field("max_files"), Reason: "must be greater than 0"})
		}

	case QuestionTypeYesNo, QuestionTypeFacialComplaints, QuestionTypeBodyComplaints:
		// no extra fields beyond the common ones

	default:
		fieldErrors = append(fieldErrors, exceptions.FieldError{Field: field("question_type"), Reason: "is not a known question type"})
	}

	return fieldErrors
}
