package main

import (
	"batepapo/internal/cli"
)

func main() {
	cli.Execute()
}
