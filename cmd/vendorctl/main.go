package main

import "vendor-admin/internal/cmd"

func main() {
	cmd.Execute()
}
