/*
Copyright © 2024 induct-lang
*/
package main

import "github.com/induct-lang/induct/cmd"

func main() {
	cmd.Execute()
}
