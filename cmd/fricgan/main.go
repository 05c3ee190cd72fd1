package main

import "github.com/rawbytedev/fricgan/cmd/fricgan/cmd"

func main() {
	cmd.Execute()
}
