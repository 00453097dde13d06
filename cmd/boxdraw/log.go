package main

import "go.uber.org/zap"

// zapFields builds the structured fields render and batch attach to their
// debug-level "rendered diagram" log line.
func zapFields(source string, inputBytes, outputBytes int) []zap.Field {
	if source == "" {
		source = "<stdin>"
	}
	return []zap.Field{
		zap.String("source", source),
		zap.Int("input_bytes", inputBytes),
		zap.Int("output_bytes", outputBytes),
	}
}

// appLogger wraps the zap.Logger that the commands log through.
type appLogger struct {
	*zap.Logger
}

func newLogger(verbose bool) *appLogger {
	var z *zap.Logger
	if verbose {
		z, _ = zap.NewDevelopment()
	} else {
		cfg := zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
		z, _ = cfg.Build()
	}
	return &appLogger{Logger: z}
}
