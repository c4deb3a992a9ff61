package main

import (
	"PlexFM/cmd"
)

func main() {
	cmd.Execute()
}
