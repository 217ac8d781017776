package main

import "image-rotator/cmd"

func main() {
	cmd.Execute()
}
