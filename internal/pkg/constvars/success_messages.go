package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Patient messages
	PatientCreatedSuccess  = "patient created successfully"
	PatientUpdatedSuccess  = "patient updated successfully"
	PatientDeletedSuccess  = "patient deleted successfully"
	PatientRestoredSuccess = "patient restored successfully"
	PatientFetchSuccess    = "patients fetched successfully"
	PatientGetSuccess      = "patient fetched successfully"

	// Questionnaire messages
	QuestionnaireCreatedSuccess = "questionnaire created successfully"
	QuestionnaireUpdatedSuccess = "questionnaire updated successfully"
	QuestionnaireDeletedSuccess = "questionnaire deleted successfully"
	QuestionnaireFetchSuccess   = "questionnaires fetched successfully"
	QuestionnaireGetSuccess     = "questionnaire fetched successfully"

	// Question bank messages
	QuestionBankCreatedSuccess = "question bank entry created successfully"
	QuestionBankUpdatedSuccess = "question bank entry updated successfully"
	QuestionBankDeletedSuccess = "question bank entry deleted successfully"
	QuestionBankFetchSuccess   = "question bank entries fetched successfully"

	// Public link messages
	PublicLinkCreatedSuccess  = "public link created successfully"
	PublicLinkResolvedSuccess = "public link resolved successfully"
	ResponseSubmittedSuccess  = "response submitted successfully"

	// Response messages
	ResponseFetchSuccess   = "responses fetched successfully"
	ResponseGetSuccess     = "response fetched successfully"
	ResponseSummarySuccess = "response summary computed successfully"

	// Builder draft messages
	BuilderDraftGetSuccess      = "builder draft fetched successfully"
	BuilderDraftSavedSuccess    = "builder draft saved successfully"
	BuilderDraftAppendedSuccess = "questions appended to builder draft successfully"
	BuilderDraftClearedSuccess  = "builder draft cleared successfully"

	// Document messages
	DocumentUploadedSuccess = "document uploaded successfully"
	DocumentFetchSuccess    = "documents fetched successfully"
	DocumentURLSuccess      = "document download url generated successfully"
	DocumentDeletedSuccess  = "document deleted successfully"
)
