package response

const (
	MessageSuccess      = "Success"
	DefaultErrorMessage = "Something went wrong"
)

// Error codes carried in Resp.ErrorCode. 0 means success.
const (
	BadRequestCode          = 1
	NotFoundCode            = 404
	TooManyRequestsCode     = 429
	InternalServerErrorCode = 500
	ServiceUnavailableCode  = 503
)
