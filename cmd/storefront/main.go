package main

import "github.com/techstore/storefront/internal/cmd"

func main() {
	cmd.Execute()
}
