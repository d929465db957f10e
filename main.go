package main

import "github.com/peaktwilight/fhnw-dashboard-sub000/cmd"

func main() {
	cmd.Execute()
}
