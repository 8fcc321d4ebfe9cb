package response

// Resp is the envelope every API response is wrapped in.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}

// NewOKResp wraps data in a success envelope.
func NewOKResp(data any) Resp {
	return Resp{Message: MessageSuccess, Data: data}
}

// NewErrResp builds a failure envelope. Detail lands in Errors so that
// Data stays reserved for payloads.
func NewErrResp(code int, err error, detail any) Resp {
	msg := DefaultErrorMessage
	if err != nil {
		msg = err.Error()
	}
	return Resp{ErrorCode: code, Message: msg, Errors: detail}
}

// Failed reports whether the envelope carries an error.
func (r Resp) Failed() bool {
	return r.ErrorCode != 0
}
