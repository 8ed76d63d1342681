package models

import (
	"fmt"
	"strings"
	"time"
	"vitalia-service/internal/pkg/exceptions"
)

type YesNoValue string

const (
	YesNoValueYes     YesNoValue = "yes"
	YesNoValueNo      YesNoValue = "no"
	YesNoValueUnknown YesNoValue = "unknown"
)

// FileDescriptor describes an already-uploaded file referenced by a file
// answer. ObjectKey points at the stored object; the bytes themselves are
// uploaded through the documents service before submission.
type FileDescriptor struct {
	Name        string `json:"name" bson:"name"`
	ContentType string `json:"content_type" bson:"contentType"`
	SizeBytes   int64  `json:"size_bytes" bson:"sizeBytes"`
	ObjectKey   string `json:"object_key" bson:"objectKey"`
}

// Answer mirrors the question union. Exactly one payload field group is
// meaningful, selected by QuestionType.
type Answer struct {
	QuestionID   string       `json:"question_id" bson:"questionId"`
	QuestionType QuestionType `json:"question_type" bson:"questionType"`

	Text     *string          `json:"text,omitempty" bson:"text,omitempty"`
	OptionID *string          `json:"option_id,omitempty" bson:"optionId,omitempty"`
	Options  []string         `json:"option_ids,omitempty" bson:"optionIds,omitempty"`
	Number   *float64         `json:"number,omitempty" bson:"number,omitempty"`
	Date     *string          `json:"date,omitempty" bson:"date,omitempty"`
	Files    []FileDescriptor `json:"files,omitempty" bson:"files,omitempty"`
	YesNo    *YesNoValue      `json:"yes_no,omitempty" bson:"yesNo,omitempty"`
	Regions  []string         `json:"regions,omitempty" bson:"regions,omitempty"`
}

// ValidateAnswerSet checks a candidate answer set against the questionnaire it
// answers: every answer must reference an existing question, carry the payload
// matching that question's type, and satisfy the variant constraints; every
// required question must be answered with a non-empty payload. All violations
// are returned.
func ValidateAnswerSet(questionnaire *Questionnaire, answers []Answer) []exceptions.FieldError {
	var fieldErrors []exceptions.FieldError

	questionsByID := make(map[string]*Question, len(questionnaire.Questions))
	for i := range questionnaire.Questions {
		questionsByID[questionnaire.Questions[i].ID] = &questionnaire.Questions[i]
	}

	// seen tracks every referenced question for duplicate detection;
	// answered only the ones with a non-empty payload, for the required
	// check. An empty duplicate still counts as a duplicate.
	seen := make(map[string]bool, len(answers))
	answered := make(map[string]bool, len(answers))
	for i := range answers {
		answer := &answers[i]
		field := func(name string) string { return fmt.Sprintf("answers[%d].%s", i, name) }

		question, exists := questionsByID[answer.QuestionID]
		if !exists {
			fieldErrors = append(fieldErrors, exceptions.FieldError{
				Field:  field("question_id"),
				Reason: "does not reference a question in this questionnaire",
			})
			continue
		}
		if seen[answer.QuestionID] {
			fieldErrors = append(fieldErrors, exceptions.FieldError{
				Field:  field("question_id"),
				Reason: "is answered more than once",
			})
			continue
		}
		seen[answer.QuestionID] = true
		if answer.QuestionType != question.QuestionType {
			fieldErrors = append(fieldErrors, exceptions.FieldError{
				Field:  field("question_type"),
				Reason: fmt.Sprintf("must be %q to answer this question", question.QuestionType),
			})
			continue
		}

		if hasPayload(answer) {
			answered[answer.QuestionID] = true
		}
		fieldErrors = append(fieldErrors, validateAnswerPayload(i, question, answer)...)
	}

	for i := range questionnaire.Questions {
		question := &questionnaire.Questions[i]
		if question.Required && !answered[question.ID] {
			fieldErrors = append(fieldErrors, exceptions.FieldError{
				Field:  question.ID,
				Reason: "required question has no answer",
			})
		}
	}

	return fieldErrors
}

// hasPayload reports whether the answer carries a non-empty value for its
// type. Empty string, empty slice and absent value all count as missing.
func hasPayload(answer *Answer) bool {
	switch answer.QuestionType {
	case QuestionTypeText:
		return answer.Text != nil && strings.TrimSpace(*answer.Text) != ""
	case QuestionTypeRadio:
		return answer.OptionID != nil && *answer.OptionID != ""
	case QuestionTypeCheckbox:
		return len(answer.Options) > 0
	case QuestionTypeScale, QuestionTypeSlider:
		return answer.Number != nil
	case QuestionTypeDate:
		return answer.Date != nil && *answer.Date != ""
	case QuestionTypeFile:
		return len(answer.Files) > 0
	case QuestionTypeYesNo:
		return answer.YesNo != nil && *answer.YesNo != ""
	case QuestionTypeFacialComplaints, QuestionTypeBodyComplaints:
		return len(answer.Regions) > 0
	default:
		return false
	}
}

func validateAnswerPayload(index int, question *Question, answer *Answer) []exceptions.FieldError {
	var fieldErrors []exceptions.FieldError
	field := func(name string) string { return fmt.Sprintf("answers[%d].%s", index, name) }

	switch question.QuestionType {
	case QuestionTypeText:
		if answer.Text != nil && question.MaxLength != nil && len(*answer.Text) > *question.MaxLength {
			fieldErrors = append(fieldErrors, exceptions.FieldError{
				Field:  field("text"),
				Reason: fmt.Sprintf("must be at most %d characters long", *question.MaxLength),
			})
		}

	case QuestionTypeRadio:
		if answer.OptionID != nil && !optionExists(question.Options, *answer.OptionID) {
			fieldErrors = append(fieldErrors, exceptions.FieldError{
				Field:  field("option_id"),
				Reason: "is not one of the question's options",
			})
		}

	case QuestionTypeCheckbox:
		seen := make(map[string]bool, len(answer.Options))
		for _, optionID := range answer.Options {
			if !optionExists(question.Options, optionID) {
				fieldErrors = append(fieldErrors, exceptions.FieldError{
					Field:  field("option_ids"),
					Reason: fmt.Sprintf("%q is not one of the question's options", optionID),
				})
			}
			if seen[optionID] {
				fieldErrors = append(fieldErrors, exceptions.FieldError{
					Field:  field("option_ids"),
					Reason: fmt.Sprintf("%q is selected more than once", optionID),
				})
			}
			seen[optionID] = true
		}
		if question.MaxSelections != nil && len(answer.Options) > *question.MaxSelections {
			fieldErrors = append(fieldErrors, exceptions.FieldError{
				Field:  field("option_ids"),
				Reason: fmt.Sprintf("must not select more than %d options", *question.MaxSelections),
			})
		}

	case QuestionTypeScale, QuestionTypeSlider:
		if answer.Number != nil {
			if question.MinValue != nil && *answer.Number < *question.MinValue {
				fieldErrors = append(fieldErrors, exceptions.FieldError{
					Field:  field("number"),
					Reason: fmt.Sprintf("must be at least %v", *question.MinValue),
				})
			}
			if question.MaxValue != nil && *answer.Number > *question.MaxValue {
				fieldErrors = append(fieldErrors, exceptions.FieldError{
					Field:  field("number"),
					Reason: fmt.Sprintf("must be at most %v", *question.MaxValue),
				})
			}
		}

	case QuestionTypeDate:
		if answer.Date != nil && *answer.Date != "" {
			answerDate, err := time.Parse(dateLayout, *answer.Date)
			if err != nil {
				fieldErrors = append(fieldErrors, exceptions.FieldError{
					Field:  field("date"),
					Reason: "must be a valid ISO date",
				})
				break
			}
			if question.MinDate != nil {
				if minDate, err := time.Parse(dateLayout, *question.MinDate); err == nil && answerDate.Before(minDate) {
					fieldErrors = append(fieldErrors, exceptions.FieldError{
						Field:  field("date"),
						Reason: fmt.Sprintf("must not be before %s", *question.MinDate),
					})
				}
			}
			if question.MaxDate != nil {
				if maxDate, err := time.Parse(dateLayout, *question.MaxDate); err == nil && answerDate.After(maxDate) {
					fieldErrors = append(fieldErrors, exceptions.FieldError{
						Field:  field("date"),
						Reason: fmt.Sprintf("must not be after %s", *question.MaxDate),
					})
				}
			}
		}

	case QuestionTypeFile:
		if question.MaxFiles != nil && len(answer.Files) > *question.MaxFiles {
			fieldErrors = append(fieldErrors, exceptions.FieldError{
				Field:  field("files"),
				Reason: fmt.Sprintf("must not contain more than %d files", *question.MaxFiles),
			})
		}
		for j, file := range answer.Files {
			if !mimeTypeAccepted(question.AcceptedTypes, file.ContentType) {
				fieldErrors = append(fieldErrors, exceptions.FieldError{
					Field:  field(fmt.Sprintf("files[%d].content_type", j)),
					Reason: fmt.Sprintf("%q is not an accepted type", file.ContentType),
				})
			}
			if question.MaxSizeMB != nil && float64(file.SizeBytes) > *question.MaxSizeMB*1024*1024 {
				fieldErrors = append(fieldErrors, exceptions.FieldError{
					Field:  field(fmt.Sprintf("files[%d].size_bytes", j)),
					Reason: fmt.Sprintf("must be at most %v MB", *question.MaxSizeMB),
				})
			}
		}

	case QuestionTypeYesNo:
		if answer.YesNo != nil {
			switch *answer.YesNo {
			case YesNoValueYes, YesNoValueNo, YesNoValueUnknown:
			default:
				fieldErrors = append(fieldErrors, exceptions.FieldError{
					Field:  field("yes_no"),
					Reason: `must be one of "yes", "no", "unknown"`,
				})
			}
		}

	case QuestionTypeFacialComplaints, QuestionTypeBodyComplaints:
		allowedRegions := RegionsForQuestionType(question.QuestionType)
		seen := make(map[string]bool, len(answer.Regions))
		for _, region := range answer.Regions {
			if !allowedRegions[region] {
				fieldErrors = append(fieldErrors, exceptions.FieldError{
					Field:  field("regions"),
					Reason: fmt.Sprintf("%q is not a known region for this body area", region),
				})
			}
			if seen[region] {
				fieldErrors = append(fieldErrors, exceptions.FieldError{
					Field:  field("regions"),
					Reason: fmt.Sprintf("%q is selected more than once", region),
				})
			}
			seen[region] = true
		}
	}

	return fieldErrors
}

func optionExists(options []QuestionOption, optionID string) bool {
	for _, option := range options {
		if option.ID == optionID {
			return true
		}
	}
	return false
}

// SortAnswersByQuestionOrder orders answers by the referenced question's
// display order; answers are persisted in this order.
func SortAnswersByQuestionOrder(questionnaire *Questionnaire, answers []Answer) []Answer {
	orderByID := make(map[string]int, len(questionnaire.Questions))
	for _, question := range questionnaire.Questions {
		orderByID[question.ID] = question.Order
	}

	sorted := make([]Answer, len(answers))
	copy(sorted, answers)
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && orderByID[sorted[j].QuestionID] < orderByID[sorted[j-1].QuestionID]; j-- {
			sorted[j], sorted[j-1] = sorted[j-1], sorted[j]
		}
	}
	return sorted
}

func mimeTypeAccepted(patterns []string, contentType string) bool {
	for _, pattern := range patterns {
		if pattern == contentType || pattern == "*/*" {
			return true
		}
		if strings.HasSuffix(pattern, "/*") && strings.HasPrefix(contentType, strings.TrimSuffix(pattern, "*")) {
			return true
		}
	}
	return false
}
