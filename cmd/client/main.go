package main

import "itemdesk/cmd/client/cmd"

func main() {
	cmd.Execute()
}
