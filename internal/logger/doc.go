// Package logger provides a small wrapper around zap to offer:
//   - a global sugared logger with a console encoder,
//   - context helpers (ToContext/FromContext/WithName/WithKV),
//   - level configuration and parsing utilities,
//   - an adapter that routes third-party Println/Printf loggers into zap.
//
// Services accept a context and extract the logger from it, so every
// component logs with the name and fields of its caller.
package logger
