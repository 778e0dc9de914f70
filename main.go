package main

import "github.com/jsphweid/beeptable/cmd"

func main() {
	cmd.Execute()
}
