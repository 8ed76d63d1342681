package models

// Fixed per-body-area enumerations backing the complaint picker questions.
// The client renders these as interactive diagrams; here they are only the
// allowed value sets for complaint answers.

var FacialRegions = map[string]bool{
	"forehead":    true,
	"temple_left": true, "temple_right": true,
	"eyebrow_left": true, "eyebrow_right": true,
	"eye_left": true, "eye_right": true,
	"nose": true,
	"cheek_left": true, "cheek_right": true,
	"ear_left": true, "ear_right": true,
	"lips": true,
	"chin": true,
	"jaw_left": true, "jaw_right": true,
	"neck_front": true,
}

var BodyRegions = map[string]bool{
	"head": true,
	"neck": true,
	"shoulder_left": true, "shoulder_right": true,
	"chest":      true,
	"abdomen":    true,
	"upper_back": true,
	"lower_back": true,
	"arm_left":   true, "arm_right": true,
	"elbow_left": true, "elbow_right": true,
	"wrist_left": true, "wrist_right": true,
	"hand_left": true, "hand_right": true,
	"hip_left": true, "hip_right": true,
	"leg_left": true, "leg_right": true,
	"knee_left": true, "knee_right": true,
	"ankle_left": true, "ankle_right": true,
	"foot_left": true, "foot_right": true,
}

// RegionsForQuestionType returns the allowed region set for a complaint
// question type, or nil for any other type.
func RegionsForQuestionType(questionType QuestionType) map[string]bool {
	switch questionType {
	case QuestionTypeFacialComplaints:
		return FacialRegions
	case QuestionTypeBodyComplaints:
		return BodyRegions
	default:
		return nil
	}
}
