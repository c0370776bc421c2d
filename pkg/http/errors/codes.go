package errors

// The API deliberately exposes a coarse, two-code error taxonomy. Every
// internal failure is collapsed into one of these before it reaches a client.
const (
	CodeNotFound      = 404
	CodeUnprocessable = 422
)

// Canonical messages for each code.
const (
	MsgNotFound      = "not found"
	MsgUnprocessable = "unprocessable entity"
)
