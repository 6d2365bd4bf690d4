package bundle

import "fmt"

// UsageError reports invalid command usage, such as a missing include
// pattern or a malformed glob. The CLI layer shows usage text for these.
type UsageError struct {
	Msg string
	Err error
}

func (e *UsageError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *UsageError) Unwrap() error { return e.Err }

// ConfigError reports an unusable environment, such as a base directory
// that does not exist or an unreadable exclude-pattern file.
type ConfigError struct {
	Msg string
	Err error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *ConfigError) Unwrap() error { return e.Err }

// SinkError reports a failure to create or write the output document.
// It is fatal for the run; a partial output file must not be trusted.
type SinkError struct {
	Path string
	Err  error
}

func (e *SinkError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *SinkError) Unwrap() error { return e.Err }
