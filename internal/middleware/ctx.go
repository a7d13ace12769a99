package middleware

type ctxKey string

const (
	ContextRequestID ctxKey = "request_id"
	ContextUserID    ctxKey = "user_id"
	ContextRole      ctxKey = "role"
	ContextName      ctxKey = "name"
)
