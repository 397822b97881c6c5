package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/pocket/internal/logging"
)

// gooseLogger routes goose output into the store logger.
type gooseLogger struct {
	log logging.Logger
}

func (l gooseLogger) Printf(format string, v ...any) {
	l.log.Debug(context.Background(), strings.TrimSpace(fmt.Sprintf(format, v...)))
}

// Fatalf logs at error level; the failure itself reaches Open as an error.
func (l gooseLogger) Fatalf(format string, v ...any) {
	l.log.Error(context.Background(), strings.TrimSpace(fmt.Sprintf(format, v...)))
}
