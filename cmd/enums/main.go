// Enums — the closed sum type demo: four message variants through a dispatcher.
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
	if _, err := svc.Run("enums", os.Stdout); err != nil {
		log.Fatalf("enums demo: %v", err)
	}
}
