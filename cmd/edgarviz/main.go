package main

import "github.com/dbsmedya/edgarviz/cmd/edgarviz/cmd"

func main() {
	cmd.Execute()
}
