package assertions

import (
	"fmt"
	"strings"
)

// messageFromMsgAndArgs renders the optional caller message. A single value is
// used as is; a leading format string is applied to the remaining values.
// Without a leading string every value is rendered with %+v and joined.
func messageFromMsgAndArgs(msgAndArgs ...any) string {
	switch len(msgAndArgs) {
	case 0:
		return ""
	case 1:
		if msg, ok := msgAndArgs[0].(string); ok {
			return msg
		}
		return fmt.Sprintf("%+v", msgAndArgs[0])
	default:
		if format, ok := msgAndArgs[0].(string); ok {
			return fmt.Sprintf(format, msgAndArgs[1:]...)
		}
		parts := make([]string, len(msgAndArgs))
		for i, v := range msgAndArgs {
			parts[i] = fmt.Sprintf("%+v", v)
		}
		return strings.Join(parts, " ")
	}
}

// fail builds the Failure for a violated check. A caller message, when given,
// replaces the default one.
func fail(msgAndArgs []any, format string, args ...any) error {
	if len(msgAndArgs) > 0 {
		return newFailure(messageFromMsgAndArgs(msgAndArgs...))
	}
	return newFailure(fmt.Sprintf(format, args...))
}

// Fail always returns a Failure carrying the rendered message. It lets code
// outside this package report a violated expectation of its own.
func Fail(msgAndArgs ...any) error {
	return newFailure(messageFromMsgAndArgs(msgAndArgs...))
}
