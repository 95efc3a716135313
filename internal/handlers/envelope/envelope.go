package envelope

import (
	"context"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/transaction-server/internal/errcode"
	"github.com/carson-networks/transaction-server/internal/logging"
)

// Error is the failure form of the {code, msg, data} envelope. It satisfies
// huma.StatusError so handlers can return it directly.
type Error struct {
	status int
	Code   int    `json:"code" doc:"Error code, never 0"`
	Msg    string `json:"msg" doc:"Human readable message"`
	Data   any    `json:"data" doc:"Always null on error"`
}

func (e *Error) Error() string {
	return e.Msg
}

func (e *Error) GetStatus() int {
	return e.status
}

// FromError renders err as an envelope. Uncoded errors become a generic
// system exception so internal detail never reaches the client. The cause is
// recorded on the request's LogData instead.
func FromError(ctx context.Context, err error) *Error {
	coded, ok := errcode.As(err)
	if !ok {
		coded = errcode.System(err)
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("code", int(coded.Code))
		if coded.Err != nil {
			logData.AddData("cause", coded.Err.Error())
		}
	}

	return &Error{
		status: StatusFor(coded.Code),
		Code:   int(coded.Code),
		Msg:    coded.Msg,
	}
}

// StatusFor maps an error code to the HTTP status sent with it.
func StatusFor(code errcode.Code) int {
	switch code {
	case errcode.Success:
		return http.StatusOK
	case errcode.IllegalParam:
		return http.StatusBadRequest
	case errcode.NotFoundCode:
		return http.StatusNotFound
	case errcode.ServiceDegraded:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Install makes huma's own request errors (bad JSON, bad query values,
// schema violations) use the envelope too. Client errors carry the
// parameter validation code and are sent as 400.
func Install() {
	huma.NewError = func(status int, msg string, errs ...error) huma.StatusError {
		code := errcode.SystemException
		if status >= 400 && status < 500 {
			code = errcode.IllegalParam
			status = http.StatusBadRequest
		}

		details := make([]string, 0, len(errs))
		for _, err := range errs {
			if err != nil {
				details = append(details, err.Error())
			}
		}
		if len(details) > 0 && code == errcode.IllegalParam {
			msg = msg + ": " + strings.Join(details, "; ")
		}

		return &Error{status: status, Code: int(code), Msg: msg}
	}
}
