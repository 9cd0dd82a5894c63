// Structures — the record, builder, and value-copy demo.
package main

import (
	"log"
	"log/slog"
	"os"

	"type-lab/services"

	"github.com/mama165/sdk-go/logs"
)

func main() {
	svc := services.NewDemoService(logs.GetLoggerFromLevel(slog.LevelWarn))
	if _, err := svc.Run("structures", os.Stdout); err != nil {
		log.Fatalf("structures demo: %v", err)
	}
}
