package main

import "github.com/circleous/gitbib/cmd"

func main() {
	cmd.Execute()
}
