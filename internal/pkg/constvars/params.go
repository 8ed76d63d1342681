package constvars

const (
	URLParamPatientID       = "patient_id"
	URLParamQuestionnaireID = "questionnaire_id"
	URLParamQuestionBankID  = "question_bank_id"
	URLParamDocumentID      = "document_id"
	URLParamResponseID      = "response_id"
	URLParamToken           = "token"
)

const (
	URLQueryParamSearch         = "search"
	URLQueryParamPage           = "page"
	URLQueryParamPageSize       = "page_size"
	URLQueryParamCategory       = "category"
	URLQueryParamIncludeDeleted = "include_deleted"
)
