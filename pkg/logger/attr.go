package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Path records a dotted field path under the key "path".
func Path(path string) slog.Attr {
	return slog.String("path", path)
}

// Validator records a validator kind name under the key "validator".
func Validator(name string) slog.Attr {
	return slog.String("validator", name)
}

// Schema records a schema name under the key "schema".
func Schema(name string) slog.Attr {
	return slog.String("schema", name)
}

// File records an input file name under the key "file".
func File(name string) slog.Attr {
	return slog.String("file", name)
}
