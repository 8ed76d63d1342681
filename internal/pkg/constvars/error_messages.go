package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"numeric":  "must be a number",
	"len":      "must be %s characters long",
	"oneof":    "must be one of [%s]",
	"gt":       "must be greater than %s",
	"gte":      "must be greater than or equal to %s",
	"lt":       "must be less than %s",
	"lte":      "must be less than or equal to %s",
	"url":      "must be a valid URL",
	"uuid":     "must be a valid UUID",
	"datetime": "must be a valid date in %s format",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":      true,
	"max":      true,
	"len":      true,
	"gt":       true,
	"gte":      true,
	"lt":       true,
	"lte":      true,
	"oneof":    true,
	"datetime": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientTooManyRequests               = "too many requests, please slow down"

	ErrClientInvalidOrExpiredLink     = "this link is invalid or has expired"
	ErrClientLinkAlreadyAnswered      = "this questionnaire has already been answered"
	ErrClientQuestionnaireInvalid     = "the questionnaire contains invalid questions"
	ErrClientAnswersInvalid           = "some answers are missing or invalid"
	ErrClientPatientNotFound          = "patient not found"
	ErrClientQuestionnaireNotFound    = "questionnaire not found"
	ErrClientQuestionBankNotFound     = "question bank entry not found"
	ErrClientDocumentNotFound         = "document not found"
	ErrClientResponseNotFound         = "response not found"
	ErrClientFileTooLarge             = "the uploaded file exceeds the size limit"
	ErrClientFileTypeNotAllowed       = "the uploaded file type is not allowed"
	ErrClientDuplicateEntry           = "a record with the same identifying data already exists"
	ErrClientSubmissionBeingProcessed = "your submission is being processed, please try again shortly"
)

// Error messages for developers
const (
	ErrDevInvalidInput             = "invalid input"
	ErrDevValidationFailed         = "request validation failed"
	ErrDevCannotParseJSON          = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON        = "cannot convert struct or other data types to JSON"
	ErrDevCannotParseMultipartForm = "cannot parse multipart form body"
	ErrDevURLParamIDValidation     = "invalid %s url parameter"
	ErrDevServerDeadlineExceeded   = "server deadline exceeded while processing request"
	ErrDevServerProcess            = "unexpected error while processing request"
	ErrDevTooManyRequests          = "per-minute request window exceeded"

	ErrDevDBFailedToFindDocument     = "failed to find document on mongoDB"
	ErrDevDBFailedToInsertDocument   = "failed to insert document on mongoDB"
	ErrDevDBFailedToUpdateDocument   = "failed to update document on mongoDB"
	ErrDevDBFailedToDeleteDocument   = "failed to delete document on mongoDB"
	ErrDevDBFailedToIterateDocuments = "failed to iterate documents on mongoDB"
	ErrDevDBFailedToCountDocuments   = "failed to count documents on mongoDB"
	ErrDevDBStringNotObjectID        = "given string cannot be converted to mongoDB ObjectID"
	ErrDevDBDuplicateKey             = "unique index violated on mongoDB insert"

	ErrDevRedisGetNoData      = "failed to get data with key: %s"
	ErrDevRedisSetData        = "failed to set data to redis"
	ErrDevRedisGetData        = "failed to get data from redis"
	ErrDevRedisDeleteData     = "failed to delete data from redis"
	ErrDevRedisSetNX          = "failed to set data with NX to redis"
	ErrDevRedisIncrementValue = "failed to increment value on redis"

	ErrDevMinioFailedToCreateObject = "failed to create object on bucket: %s"
	ErrDevMinioFailedToPresignURL   = "failed to presign object URL on bucket: %s"
	ErrDevMinioFailedToRemoveObject = "failed to remove object on bucket: %s"

	ErrDevRabbitMQPublishMessage = "failed to publish message to queue: %s"

	ErrDevAuthTokenMissing          = "authorization token is missing"
	ErrDevAuthTokenInvalidOrExpired = "authorization token is invalid or expired"
	ErrDevAuthInvalidSession        = "session not found or no longer valid"

	ErrDevPublicLinkNotFound        = "no public link found for the given token"
	ErrDevPublicLinkExpired         = "public link exists but its expiry time has passed"
	ErrDevPublicLinkAlreadyAnswered = "a response already exists for this public link"
	ErrDevQuestionnaireValidation   = "questionnaire failed structural validation"
	ErrDevAnswerValidation          = "answer set failed validation against questionnaire"
	ErrDevEntityNotFound            = "no %s found for the given identifier"
	ErrDevFileTooLarge              = "uploaded file exceeds %d MB"
	ErrDevFileTypeNotAllowed        = "uploaded content type %s is not in the allowlist"
)
