// Rectangles — the area and containment demo.
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
	if _, err := svc.Run("rectangles", os.Stdout); err != nil {
		log.Fatalf("rectangles demo: %v", err)
	}
}
