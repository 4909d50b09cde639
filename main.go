package main

import (
	"github.com/hustlecli/hustle/cmd"
)

func main() {
	cmd.Execute()
}
