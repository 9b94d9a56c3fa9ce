package main

import (
	"github.com/openpurse/go-openpurse/cmd/openpurse/cmd"
)

func main() {
	cmd.Execute()
}
