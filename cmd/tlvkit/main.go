/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import (
	"github.com/emvkit/tlvkit/cmd/tlvkit/cmd"
)

func main() {
	cmd.Execute()
}
