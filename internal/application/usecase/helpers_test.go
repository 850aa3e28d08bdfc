package usecase_test

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/termify/termify/internal/application/usecase"
	"github.com/termify/termify/internal/logging"
)

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

// seqIDs returns a deterministic generator: prefix1, prefix2, ...
func seqIDs(prefix string) usecase.IDGenerator {
	var counter uint64
	return func() string {
		return fmt.Sprintf("%s%d", prefix, atomic.AddUint64(&counter, 1))
	}
}
