// Package logging provides structured logging configuration for the
// shortuuid CLI.
//
// It wraps log/slog with a small Config so commands can honor --verbose
// and machine-readable output modes consistently:
//
//	logger := logging.New(logging.Config{
//	    Level:  logging.LevelDebug,
//	    Format: logging.FormatText,
//	})
//	logger.Debug("resolved alphabet", "name", "base58", "size", 58)
//
// The codec package itself never logs; components that accept a
// *slog.Logger should use logging.Nop() when logging is disabled.
package logging
