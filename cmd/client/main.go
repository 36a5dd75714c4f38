package main

import "jsonapi/cmd/client/cmd"

func main() {
	cmd.Execute()
}
