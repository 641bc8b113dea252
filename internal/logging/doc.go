// Package logging provides structured logging for irframe.
//
// Logs are JSON lines written through log/slog. The TUI owns the terminal
// while it runs, so logging goes to a file ({dir}/irframe.log) and is off
// unless enabled in the config:
//
//	logging:
//	  enabled: true
//	  level: debug
//	  max_size_mb: 10
//	  max_backups: 3
//
// # Basic Usage
//
//	logger, err := logging.NewLoggerWithRotation(dir, "INFO", logging.DefaultRotationConfig())
//	if err != nil {
//	    return err
//	}
//	defer logger.Close()
//
//	logger.WithPhase("containment").Info("phase selected", "source", "key")
//
// Output:
//
//	{"time":"...","level":"INFO","msg":"phase selected","phase":"containment","source":"key"}
//
// # Rotation
//
// [RotatingWriter] rotates the file when a write would push it past
// MaxSizeMB. Rotated files are irframe.log.1 (newest) through
// irframe.log.N, gzipped to irframe.log.1.gz when Compress is set.
//
// # Testing
//
// Use [NopLogger] to discard output, or [New] with a bytes.Buffer to inspect it.
package logging
