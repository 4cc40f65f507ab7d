package handler

const oopsErr = "Oops! Something went wrong. Please try again later."

// Extension codes assigned by the gateway itself. Resolver errors carry their own.
const (
	codeBadRequest       = "BAD_REQUEST"
	codeValidationFailed = "GRAPHQL_VALIDATION_FAILED"
	codeInternal         = "INTERNAL_SERVER_ERROR"
)

const internalErrMessage = "internal server error"
