package main

import (
	"github.com/ivolkov/salesoffice/internal/cmd"
)

func main() {
	cmd.Execute()
}
