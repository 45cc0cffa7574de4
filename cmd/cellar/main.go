package main

import (
	"github.com/redhat/wine-cellar/pkg/cli"
)

func main() {
	cli.Execute()
}
