// cmd/main.go
package main

import cmd "github.com/mwiater/farmprompts/cmd/farmprompts"

// main starts the farmprompts CLI by delegating to the cobra root command
// defined in the farmprompts package.
func main() {
	cmd.Execute()
}
