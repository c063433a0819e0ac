// @title CoderEdu 学习前端 API
// @version 1.0
// @description CoderEdu 学习平台的前端服务（BFF）。

// @host localhost:3000
// @BasePath /

package main

import (
	"coder_edu_frontend/internal/app"
	"coder_edu_frontend/internal/config"
	"coder_edu_frontend/pkg/logger"
	"log"
)

func main() {
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	application.Run()
}
