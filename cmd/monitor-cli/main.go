package main

import "sessionwatch/cmd/monitor-cli/cmd"

func main() {
	cmd.Execute()
}
