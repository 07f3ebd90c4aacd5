package main

import "github.com/dbsmedya/goclean/cmd/goclean/cmd"

func main() {
	cmd.Execute()
}
