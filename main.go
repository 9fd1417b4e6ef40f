package main

import "github.com/func/overwrite/cmd"

func main() {
	cmd.Exec()
}
