package main

import "github.com/blogem/radiocalco/cmd"

func main() {
	cmd.Execute()
}
