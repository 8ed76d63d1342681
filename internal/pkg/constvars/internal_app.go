package constvars

type contextKey string

const (
	CONTEXT_REQUEST_ID_KEY           contextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY contextKey = "is_client_request_id"
	CONTEXT_SESSION_KEY              contextKey = "session"
	CONTEXT_PRACTITIONER_ID_KEY      contextKey = "practitioner_id"
)

const (
	MongoCollectionPatients               = "patients"
	MongoCollectionQuestionnaires         = "questionnaires"
	MongoCollectionQuestionBank           = "question_bank"
	MongoCollectionPublicLinks            = "public_links"
	MongoCollectionQuestionnaireResponses = "questionnaire_responses"
	MongoCollectionDocuments              = "documents"
)

const (
	RedisKeySessionFormat          = "session:%s"
	RedisKeyBuilderDraftFormat     = "builder_draft:%s"
	RedisKeySubmitLockFormat       = "public_link_submit_lock:%s"
	RedisKeyPublicThrottleFormat   = "public_link_throttle:%s:%d"
	AppPaginationUrlFormat         = "%s?page=%d&page_size=%d"
	PublicLinkTokenByteLength      = 32
	SubmitLockExpirationInSeconds  = 10
	MongoIndexResponsePerLink      = "uniq_public_link_id"
	MongoIndexPublicLinkToken      = "uniq_token"
	ResponseReceivedEventQueueName = "questionnaire_response_events"
)
