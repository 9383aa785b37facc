package main

import (
	"log"

	"github.com/aws/aws-lambda-go/lambda"

	"github.com/chainfront/rpc-relay/relay"
)

func main() {
	config, err := relay.LoadConfig()
	if err != nil {
		log.Fatalf("relay misconfigured: %+v", err)
	}

	handler := relay.NewHandler(config)

	lambda.Start(handler.Handle)
}
