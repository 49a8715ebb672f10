package main

import "extension-monitor/cmd"

func main() {
	cmd.Execute()
}
