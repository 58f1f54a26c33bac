package main

import "github.com/inference-gateway/touchbridge/cmd"

func main() {
	cmd.Execute()
}
