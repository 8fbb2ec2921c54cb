package main

import "github.com/boozedog/smoovboard/cmd"

func main() {
	cmd.Execute()
}
