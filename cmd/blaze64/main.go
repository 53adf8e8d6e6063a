/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import (
	"github.com/avelis/blaze64/cmd/blaze64/cmd"
)

func main() {
	cmd.Execute()
}
