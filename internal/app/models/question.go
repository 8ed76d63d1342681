package models

// QuestionType discriminates the question tagged union.
type QuestionType string

const (
	QuestionTypeText             QuestionType = "text"
	QuestionTypeRadio            QuestionType = "radio"
	QuestionTypeCheckbox         QuestionType = "checkbox"
	QuestionTypeScale            QuestionType = "scale"
	QuestionTypeSlider           QuestionType = "slider"
	QuestionTypeDate             QuestionType = "date"
	QuestionTypeFile             QuestionType = "file"
	QuestionTypeYesNo            QuestionType = "yes_no"
	QuestionTypeFacialComplaints QuestionType = "facial_complaints"
	QuestionTypeBodyComplaints   QuestionType = "body_complaints"
)

type QuestionOption struct {
	ID    string `json:"id" bson:"id"`
	Label string `json:"label" bson:"label"`
	Value string `json:"value" bson:"value"`
}

type RangeLabels struct {
	Min string `json:"min,omitempty" bson:"min,omitempty"`
	Max string `json:"max,omitempty" bson:"max,omitempty"`
}

type YesNoLabels struct {
	Yes     string `json:"yes,omitempty" bson:"yes,omitempty"`
	No      string `json:"no,omitempty" bson:"no,omitempty"`
	Unknown string `json:"unknown,omitempty" bson:"unknown,omitempty"`
}

// Question is the persisted question shape. The variant-specific fields are
// pointers/slices and only the ones matching QuestionType may be set;
// validateQuestion enforces the variant rules.
type Question struct {
	ID           string       `json:"id" bson:"id"`
	QuestionType QuestionType `json:"question_type" bson:"questionType"`
	QuestionText string       `json:"question_text" bson:"questionText"`
	Required     bool         `json:"required" bson:"required"`
	Order        int          `json:"order" bson:"order"`

	// text
	Placeholder *string `json:"placeholder,omitempty" bson:"placeholder,omitempty"`
	MaxLength   *int    `json:"max_length,omitempty" bson:"maxLength,omitempty"`

	// radio / checkbox
	Options       []QuestionOption `json:"options,omitempty" bson:"options,omitempty"`
	MaxSelections *int             `json:"max_selections,omitempty" bson:"maxSelections,omitempty"`

	// scale / slider
	MinValue *float64     `json:"min_value,omitempty" bson:"minValue,omitempty"`
	MaxValue *float64     `json:"max_value,omitempty" bson:"maxValue,omitempty"`
	Step     *float64     `json:"step,omitempty" bson:"step,omitempty"`
	Labels   *RangeLabels `json:"labels,omitempty" bson:"labels,omitempty"`

	// date
	MinDate *string `json:"min_date,omitempty" bson:"minDate,omitempty"`
	MaxDate *string `json:"max_date,omitempty" bson:"maxDate,omitempty"`

	// file
	AcceptedTypes []string `json:"accepted_types,omitempty" bson:"acceptedTypes,omitempty"`
	MaxSizeMB     *float64 `json:"max_size_mb,omitempty" bson:"maxSizeMb,omitempty"`
	MaxFiles      *int     `json:"max_files,omitempty" bson:"maxFiles,omitempty"`

	// yes_no
	YesNoLabels *YesNoLabels `json:"yes_no_labels,omitempty" bson:"yesNoLabels,omitempty"`
}
