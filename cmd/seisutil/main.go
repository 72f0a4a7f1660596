package main

import "github.com/quakeworks/seisutil/cmd/seisutil/cmd"

func main() {
	cmd.Execute()
}
