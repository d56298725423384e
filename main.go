package main

import (
	"github.com/Rakhulsr/go-logistics/app/cmd"
)

func main() {
	cmd.RunCli()
}
