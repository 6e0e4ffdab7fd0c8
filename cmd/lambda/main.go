// Command lambda serves podcast generation behind an API Gateway proxy
// integration. Configuration comes from the environment (see config.Load).
package main

import (
	"github.com/aws/aws-lambda-go/lambda"

	"PodcastDaily/internal/app"
	"PodcastDaily/internal/config"
	"PodcastDaily/internal/logging"
)

func main() {
	cfg := config.Load()
	logger := logging.New(cfg.Logging.Level, cfg.Logging.Format)

	application := app.New(cfg, logger)
	lambda.Start(application.Handler().APIGateway)
}
