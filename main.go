package main

import "taskphoto.com/taskphoto/cmd"

func main() {
	cmd.Execute()
}
