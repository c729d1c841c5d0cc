package main

import (
	"fmt"
	"os"

	"github.com/lumenlearn/lumenlearn-backend/internal/app"
	"github.com/lumenlearn/lumenlearn-backend/internal/utils"
)

func main() {
	a, err := app.New()
	if err != nil {
		fmt.Printf("Failed to start: %v\n", err)
		os.Exit(1)
	}
	defer a.Close()

	port := utils.GetEnv("PORT", "8080", a.Log)
	a.Log.Info("Server listening", "port", port, "storage_engine", string(a.Engine))
	if err := a.Run(":" + port); err != nil {
		a.Log.Error("Server failed", "error", err)
	}
}
