package main

import (
	"context"
	"os"

	awslambda "github.com/aws/aws-lambda-go/lambda"
	"github.com/joho/godotenv"
	"github.com/relevanceai/fetch-listings/config"
	"github.com/relevanceai/fetch-listings/constants"
	"github.com/relevanceai/fetch-listings/lambda"
	"github.com/relevanceai/fetch-listings/telemetry"
	"github.com/relevanceai/fetch-listings/utils"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load("")
	if err != nil {
		utils.Error("failed to load config: %v", err)
		os.Exit(1)
	}
	utils.SetLevel(cfg.Log.Level)

	shutdown, err := telemetry.Init(cfg)
	if err != nil {
		utils.Warn("tracing disabled: %v", err)
	}
	defer func() { _ = shutdown(context.Background()) }()

	h, err := lambda.NewHandler(cfg)
	if err != nil {
		utils.Error("failed to build handler: %v", err)
		os.Exit(1)
	}

	// HTTP APIs and function URLs send v2 payloads.
	switch payload := os.Getenv(constants.EnvLambdaPayload); payload {
	case "", constants.LambdaPayloadV1:
		awslambda.Start(lambda.NewProxy(h))
	case constants.LambdaPayloadV2:
		awslambda.Start(lambda.NewProxyV2(h))
	default:
		utils.Error("unsupported %s: %q", constants.EnvLambdaPayload, payload)
		os.Exit(1)
	}
}
