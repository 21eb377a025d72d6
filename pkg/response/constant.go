package response

// Response messages and codes
const (
	MessageSuccess          = "Success"
	DefaultErrorMessage     = "Something went wrong"
	InternalServerErrorCode = 500
	NotFoundCode            = 404
	ForbiddenCode           = 403
	ForbiddenMessage        = "Forbidden"
	TooManyRequestsCode     = 429
	TooManyRequestsMessage  = "Too many requests"
)

// DateTimeFormat is the layout of DateTime values.
const DateTimeFormat = "2006-01-02 15:04:05"
