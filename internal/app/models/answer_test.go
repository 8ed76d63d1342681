package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func yesNoPtr(v YesNoValue) *YesNoValue { return &v }

func answerableQuestionnaire() *Questionnaire {
	return &Questionnaire{
		Title: "Follow-up",
		Questions: []Question{
			{
				ID:           "q-text",
				QuestionType: QuestionTypeText,
				QuestionText: "Describe your symptoms",
				Required:     true,
				Order:        0,
				MaxLength:    intPtr(20),
			},
			{
				ID:           "q-scale",
				QuestionType: QuestionTypeScale,
				QuestionText: "Rate your pain",
				Order:        1,
				MinValue:     floatPtr(0),
				MaxValue:     floatPtr(10),
			},
			{
				ID:           "q-checkbox",
				QuestionType: QuestionTypeCheckbox,
				QuestionText: "Select all that apply",
				Order:        2,
				Options: []QuestionOption{
					{ID: "opt-a", Label: "A"},
					{ID: "opt-b", Label: "B"},
					{ID: "opt-c", Label: "C"},
				},
				MaxSelections: intPtr(2),
			},
		},
	}
}

func TestValidateAnswerSet_Valid(t *testing.T) {
	questionnaire := answerableQuestionnaire()
	answers := []Answer{
		{QuestionID: "q-text", QuestionType: QuestionTypeText, Text: strPtr("headache")},
		{QuestionID: "q-scale", QuestionType: QuestionTypeScale, Number: floatPtr(7)},
	}

	fieldErrors := ValidateAnswerSet(questionnaire, answers)
	assert.Empty(t, fieldErrors, "optional questions may be omitted")
}

func TestValidateAnswerSet_UnknownQuestion(t *testing.T) {
	questionnaire := answerableQuestionnaire()
	answers := []Answer{
		{QuestionID: "q-text", QuestionType: QuestionTypeText, Text: strPtr("ok")},
		{QuestionID: "q-ghost", QuestionType: QuestionTypeText, Text: strPtr("huh")},
	}

	fieldErrors := ValidateAnswerSet(questionnaire, answers)
	assert.Len(t, fieldErrors, 1)
	assert.Equal(t, "answers[1].question_id", fieldErrors[0].Field)
	assert.Equal(t, "does not reference a question in this questionnaire", fieldErrors[0].Reason)
}

func TestValidateAnswerSet_DuplicateAnswer(t *testing.T) {
	questionnaire := answerableQuestionnaire()
	answers := []Answer{
		{QuestionID: "q-text", QuestionType: QuestionTypeText, Text: strPtr("first")},
		{QuestionID: "q-text", QuestionType: QuestionTypeText, Text: strPtr("second")},
	}

	fieldErrors := ValidateAnswerSet(questionnaire, answers)
	assert.Len(t, fieldErrors, 1)
	assert.Equal(t, "answers[1].question_id", fieldErrors[0].Field)
	assert.Equal(t, "is answered more than once", fieldErrors[0].Reason)
}

func TestValidateAnswerSet_DuplicateAfterEmptyAnswer(t *testing.T) {
	questionnaire := answerableQuestionnaire()
	answers := []Answer{
		{QuestionID: "q-text", QuestionType: QuestionTypeText},
		{QuestionID: "q-text", QuestionType: QuestionTypeText, Text: strPtr("filled in later")},
	}

	fieldErrors := ValidateAnswerSet(questionnaire, answers)

	// The filled duplicate is rejected, so the empty first answer also
	// leaves the required question unanswered.
	assert.Len(t, fieldErrors, 2)
	assert.Equal(t, "answers[1].question_id", fieldErrors[0].Field)
	assert.Equal(t, "is answered more than once", fieldErrors[0].Reason)
	assert.Equal(t, "q-text", fieldErrors[1].Field)
	assert.Equal(t, "required question has no answer", fieldErrors[1].Reason)
}

func TestValidateAnswerSet_TypeMismatch(t *testing.T) {
	questionnaire := answerableQuestionnaire()
	answers := []Answer{
		{QuestionID: "q-text", QuestionType: QuestionTypeText, Text: strPtr("ok")},
		{QuestionID: "q-scale", QuestionType: QuestionTypeText, Text: strPtr("seven")},
	}

	fieldErrors := ValidateAnswerSet(questionnaire, answers)
	assert.Len(t, fieldErrors, 1)
	assert.Equal(t, "answers[1].question_type", fieldErrors[0].Field)
	assert.Equal(t, `must be "scale" to answer this question`, fieldErrors[0].Reason)
}

func TestValidateAnswerSet_RequiredMissing(t *testing.T) {
	questionnaire := answerableQuestionnaire()

	t.Run("not answered at all", func(t *testing.T) {
		fieldErrors := ValidateAnswerSet(questionnaire, nil)
		assert.Len(t, fieldErrors, 1)
		assert.Equal(t, "q-text", fieldErrors[0].Field)
		assert.Equal(t, "required question has no answer", fieldErrors[0].Reason)
	})

	t.Run("answered with blank text", func(t *testing.T) {
		answers := []Answer{
			{QuestionID: "q-text", QuestionType: QuestionTypeText, Text: strPtr("   ")},
		}
		fieldErrors := ValidateAnswerSet(questionnaire, answers)
		assert.Len(t, fieldErrors, 1)
		assert.Equal(t, "q-text", fieldErrors[0].Field)
	})
}

func TestValidateAnswerSet_TextTooLong(t *testing.T) {
	questionnaire := answerableQuestionnaire()
	answers := []Answer{
		{QuestionID: "q-text", QuestionType: QuestionTypeText, Text: strPtr("this answer is far longer than allowed")},
	}

	fieldErrors := ValidateAnswerSet(questionnaire, answers)
	assert.Len(t, fieldErrors, 1)
	assert.Equal(t, "answers[0].text", fieldErrors[0].Field)
	assert.Equal(t, "must be at most 20 characters long", fieldErrors[0].Reason)
}

func TestValidateAnswerSet_ScaleBounds(t *testing.T) {
	questionnaire := answerableQuestionnaire()

	t.Run("boundary values pass", func(t *testing.T) {
		for _, number := range []float64{0, 10} {
			answers := []Answer{
				{QuestionID: "q-text", QuestionType: QuestionTypeText, Text: strPtr("ok")},
				{QuestionID: "q-scale", QuestionType: QuestionTypeScale, Number: floatPtr(number)},
			}
			assert.Empty(t, ValidateAnswerSet(questionnaire, answers))
		}
	})

	t.Run("above max", func(t *testing.T) {
		answers := []Answer{
			{QuestionID: "q-text", QuestionType: QuestionTypeText, Text: strPtr("ok")},
			{QuestionID: "q-scale", QuestionType: QuestionTypeScale, Number: floatPtr(11)},
		}
		fieldErrors := ValidateAnswerSet(questionnaire, answers)
		assert.Len(t, fieldErrors, 1)
		assert.Equal(t, "answers[1].number", fieldErrors[0].Field)
		assert.Equal(t, "must be at most 10", fieldErrors[0].Reason)
	})
}

func TestValidateAnswerSet_CheckboxRules(t *testing.T) {
	questionnaire := answerableQuestionnaire()
	textAnswer := Answer{QuestionID: "q-text", QuestionType: QuestionTypeText, Text: strPtr("ok")}

	t.Run("unknown option id", func(t *testing.T) {
		answers := []Answer{textAnswer, {
			QuestionID: "q-checkbox", QuestionType: QuestionTypeCheckbox,
			Options: []string{"opt-a", "opt-z"},
		}}
		fieldErrors := ValidateAnswerSet(questionnaire, answers)
		assert.Len(t, fieldErrors, 1)
		assert.Equal(t, "answers[1].option_ids", fieldErrors[0].Field)
		assert.Equal(t, `"opt-z" is not one of the question's options`, fieldErrors[0].Reason)
	})

	t.Run("duplicate selection", func(t *testing.T) {
		answers := []Answer{textAnswer, {
			QuestionID: "q-checkbox", QuestionType: QuestionTypeCheckbox,
			Options: []string{"opt-a", "opt-a"},
		}}
		fieldErrors := ValidateAnswerSet(questionnaire, answers)
		assert.Len(t, fieldErrors, 1)
		assert.Equal(t, `"opt-a" is selected more than once`, fieldErrors[0].Reason)
	})

	t.Run("over max selections", func(t *testing.T) {
		answers := []Answer{textAnswer, {
			QuestionID: "q-checkbox", QuestionType: QuestionTypeCheckbox,
			Options: []string{"opt-a", "opt-b", "opt-c"},
		}}
		fieldErrors := ValidateAnswerSet(questionnaire, answers)
		assert.Len(t, fieldErrors, 1)
		assert.Equal(t, "must not select more than 2 options", fieldErrors[0].Reason)
	})
}

func TestValidateAnswerSet_DateBounds(t *testing.T) {
	questionnaire := &Questionnaire{
		Title: "Booking",
		Questions: []Question{
			{
				ID:           "q-date",
				QuestionType: QuestionTypeDate,
				QuestionText: "Preferred date",
				Order:        0,
				MinDate:      strPtr("2026-01-01"),
				MaxDate:      strPtr("2026-12-31"),
			},
		},
	}

	t.Run("inside bounds", func(t *testing.T) {
		answers := []Answer{{QuestionID: "q-date", QuestionType: QuestionTypeDate, Date: strPtr("2026-06-15")}}
		assert.Empty(t, ValidateAnswerSet(questionnaire, answers))
	})

	t.Run("unparseable", func(t *testing.T) {
		answers := []Answer{{QuestionID: "q-date", QuestionType: QuestionTypeDate, Date: strPtr("15/06/2026")}}
		fieldErrors := ValidateAnswerSet(questionnaire, answers)
		assert.Len(t, fieldErrors, 1)
		assert.Equal(t, "must be a valid ISO date", fieldErrors[0].Reason)
	})

	t.Run("before min", func(t *testing.T) {
		answers := []Answer{{QuestionID: "q-date", QuestionType: QuestionTypeDate, Date: strPtr("2025-12-31")}}
		fieldErrors := ValidateAnswerSet(questionnaire, answers)
		assert.Len(t, fieldErrors, 1)
		assert.Equal(t, "must not be before 2026-01-01", fieldErrors[0].Reason)
	})

	t.Run("after max", func(t *testing.T) {
		answers := []Answer{{QuestionID: "q-date", QuestionType: QuestionTypeDate, Date: strPtr("2027-01-01")}}
		fieldErrors := ValidateAnswerSet(questionnaire, answers)
		assert.Len(t, fieldErrors, 1)
		assert.Equal(t, "must not be after 2026-12-31", fieldErrors[0].Reason)
	})
}

func TestValidateAnswerSet_FileRules(t *testing.T) {
	questionnaire := &Questionnaire{
		Title: "Uploads",
		Questions: []Question{
			{
				ID:            "q-file",
				QuestionType:  QuestionTypeFile,
				QuestionText:  "Attach referrals",
				Order:         0,
				AcceptedTypes: []string{"application/pdf", "image/*"},
				MaxSizeMB:     floatPtr(5),
				MaxFiles:      intPtr(2),
			},
		},
	}

	t.Run("exact and wildcard types accepted", func(t *testing.T) {
		answers := []Answer{{QuestionID: "q-file", QuestionType: QuestionTypeFile, Files: []FileDescriptor{
			{Name: "a.pdf", ContentType: "application/pdf", SizeBytes: 1024},
			{Name: "b.png", ContentType: "image/png", SizeBytes: 1024},
		}}}
		assert.Empty(t, ValidateAnswerSet(questionnaire, answers))
	})

	t.Run("rejected type", func(t *testing.T) {
		answers := []Answer{{QuestionID: "q-file", QuestionType: QuestionTypeFile, Files: []FileDescriptor{
			{Name: "x.zip", ContentType: "application/zip", SizeBytes: 1024},
		}}}
		fieldErrors := ValidateAnswerSet(questionnaire, answers)
		assert.Len(t, fieldErrors, 1)
		assert.Equal(t, "answers[0].files[0].content_type", fieldErrors[0].Field)
	})

	t.Run("oversize file", func(t *testing.T) {
		answers := []Answer{{QuestionID: "q-file", QuestionType: QuestionTypeFile, Files: []FileDescriptor{
			{Name: "big.pdf", ContentType: "application/pdf", SizeBytes: 6 * 1024 * 1024},
		}}}
		fieldErrors := ValidateAnswerSet(questionnaire, answers)
		assert.Len(t, fieldErrors, 1)
		assert.Equal(t, "answers[0].files[0].size_bytes", fieldErrors[0].Field)
	})

	t.Run("too many files", func(t *testing.T) {
		answers := []Answer{{QuestionID: "q-file", QuestionType: QuestionTypeFile, Files: []FileDescriptor{
			{Name: "1.pdf", ContentType: "application/pdf", SizeBytes: 1},
			{Name: "2.pdf", ContentType: "application/pdf", SizeBytes: 1},
			{Name: "3.pdf", ContentType: "application/pdf", SizeBytes: 1},
		}}}
		fieldErrors := ValidateAnswerSet(questionnaire, answers)
		assert.Len(t, fieldErrors, 1)
		assert.Equal(t, "must not contain more than 2 files", fieldErrors[0].Reason)
	})
}

func TestValidateAnswerSet_YesNo(t *testing.T) {
	questionnaire := &Questionnaire{
		Title: "Consent",
		Questions: []Question{
			{ID: "q-yn", QuestionType: QuestionTypeYesNo, QuestionText: "Smoker?", Order: 0},
		},
	}

	t.Run("accepted values", func(t *testing.T) {
		for _, value := range []YesNoValue{YesNoValueYes, YesNoValueNo, YesNoValueUnknown} {
			answers := []Answer{{QuestionID: "q-yn", QuestionType: QuestionTypeYesNo, YesNo: yesNoPtr(value)}}
			assert.Empty(t, ValidateAnswerSet(questionnaire, answers))
		}
	})

	t.Run("rejected value", func(t *testing.T) {
		answers := []Answer{{QuestionID: "q-yn", QuestionType: QuestionTypeYesNo, YesNo: yesNoPtr("maybe")}}
		fieldErrors := ValidateAnswerSet(questionnaire, answers)
		assert.Len(t, fieldErrors, 1)
		assert.Equal(t, "answers[0].yes_no", fieldErrors[0].Field)
	})
}

func TestValidateAnswerSet_Regions(t *testing.T) {
	questionnaire := &Questionnaire{
		Title: "Pain map",
		Questions: []Question{
			{ID: "q-face", QuestionType: QuestionTypeFacialComplaints, QuestionText: "Facial pain", Order: 0},
			{ID: "q-body", QuestionType: QuestionTypeBodyComplaints, QuestionText: "Body pain", Order: 1},
		},
	}

	t.Run("known regions pass", func(t *testing.T) {
		answers := []Answer{
			{QuestionID: "q-face", QuestionType: QuestionTypeFacialComplaints, Regions: []string{"forehead", "jaw_left"}},
			{QuestionID: "q-body", QuestionType: QuestionTypeBodyComplaints, Regions: []string{"knee_left", "lower_back"}},
		}
		assert.Empty(t, ValidateAnswerSet(questionnaire, answers))
	})

	t.Run("region from the wrong body area", func(t *testing.T) {
		answers := []Answer{
			{QuestionID: "q-face", QuestionType: QuestionTypeFacialComplaints, Regions: []string{"knee_left"}},
		}
		fieldErrors := ValidateAnswerSet(questionnaire, answers)
		assert.Len(t, fieldErrors, 1)
		assert.Equal(t, `"knee_left" is not a known region for this body area`, fieldErrors[0].Reason)
	})
}

func TestSortAnswersByQuestionOrder(t *testing.T) {
	questionnaire := &Questionnaire{
		Title: "Ordered",
		Questions: []Question{
			{ID: "q-a", QuestionType: QuestionTypeText, QuestionText: "A", Order: 2},
			{ID: "q-b", QuestionType: QuestionTypeText, QuestionText: "B", Order: 0},
			{ID: "q-c", QuestionType: QuestionTypeText, QuestionText: "C", Order: 1},
		},
	}
	answers := []Answer{
		{QuestionID: "q-a", QuestionType: QuestionTypeText, Text: strPtr("a")},
		{QuestionID: "q-b", QuestionType: QuestionTypeText, Text: strPtr("b")},
		{QuestionID: "q-c", QuestionType: QuestionTypeText, Text: strPtr("c")},
	}

	sorted := SortAnswersByQuestionOrder(questionnaire, answers)

	assert.Equal(t, "q-b", sorted[0].QuestionID)
	assert.Equal(t, "q-c", sorted[1].QuestionID)
	assert.Equal(t, "q-a", sorted[2].QuestionID)
	assert.Equal(t, "q-a", answers[0].QuestionID, "input slice is not mutated")
}
