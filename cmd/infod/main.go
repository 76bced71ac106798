package main

import "github.com/devopscloud/info-service/pkg/cli"

func main() {
	cli.Execute()
}
