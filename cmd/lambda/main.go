package main

import (
	"github.com/supercontrast-ai/vis-demo/pkg/serverless"
)

func main() {
	serverless.LambdaMain()
}
