package main

import "github.com/OpenTraceLab/OpenTraceLink/cmd/adalink/cmd"

func main() {
	cmd.Execute()
}
