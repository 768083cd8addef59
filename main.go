package main

import (
	"filebak/cmd"
)

func main() {
	cmd.Execute()
}
