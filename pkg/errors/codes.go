package errors

type Code string

const (
	CodeUnknown            Code = "UNKNOWN"
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeNotFound           Code = "NOT_FOUND"
	CodeAlreadyExists      Code = "ALREADY_EXISTS"
	CodePermissionDenied   Code = "PERMISSION_DENIED"
	CodeUnauthenticated    Code = "UNAUTHENTICATED"
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	CodeInternal           Code = "INTERNAL"
	CodeDeadlineExceeded   Code = "DEADLINE_EXCEEDED"
)

// Kind groups codes into the coarse error families callers branch on.
type Kind string

const (
	KindAuthorization Kind = "authorization"
	KindNotFound      Kind = "not_found"
	KindState         Kind = "state"
	KindValidation    Kind = "validation"
	KindInternal      Kind = "internal"
)

func (c Code) Kind() Kind {
	switch c {
	case CodeUnauthenticated, CodePermissionDenied:
		return KindAuthorization
	case CodeNotFound:
		return KindNotFound
	case CodeAlreadyExists, CodeFailedPrecondition:
		return KindState
	case CodeInvalidArgument:
		return KindValidation
	default:
		return KindInternal
	}
}
