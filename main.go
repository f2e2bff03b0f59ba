package main

import "github.com/insightai/site/cmd"

func main() {
	cmd.Execute()
}
