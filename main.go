package main

import "github.com/gadams999/f123telem/cmd"

func main() {
	cmd.Execute()
}
