package ipc

// CoreConfig is passed verbatim to the supervised core process as
// command-line arguments of the form "-d <config_dir> -f <config_path>".
type CoreConfig struct {
	CorePath   string `json:"core_path"`
	ConfigPath string `json:"config_path"`
	ConfigDir  string `json:"config_dir"`
}

// WriterConfig governs the rotating file log sink.
type WriterConfig struct {
	Directory   string `json:"directory"`
	MaxLogSize  uint64 `json:"max_log_size"`
	MaxLogFiles int    `json:"max_log_files"`
}

// ClashConfig is the StartClash request body.
type ClashConfig struct {
	CoreConfig CoreConfig   `json:"core_config"`
	LogConfig  WriterConfig `json:"log_config"`
}

// Response is the envelope every JSON endpoint responds with. Code 0
// means success; any non-zero code is a domain error, independent of the
// HTTP status carrying the transport-level outcome.
type Response[T any] struct {
	Code    uint16 `json:"code"`
	Message string `json:"message"`
	Data    *T     `json:"data"`
}

// Ok builds a success envelope.
func Ok[T any](message string, data *T) Response[T] {
	return Response[T]{Code: 0, Message: message, Data: data}
}

// Fail builds a domain-error envelope. Code 1 is the only non-zero code
// this service emits; the taxonomy doesn't need more granularity than
// "succeeded" vs "didn't".
func Fail[T any](message string) Response[T] {
	return Response[T]{Code: 1, Message: message, Data: nil}
}
