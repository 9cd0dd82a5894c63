// Restaurant — the namespace hierarchy walk.
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
	if _, err := svc.Run("restaurant", os.Stdout); err != nil {
		log.Fatalf("restaurant demo: %v", err)
	}
}
