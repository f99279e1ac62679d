package main

import "github.com/theirongolddev/mburn/cmd"

func main() {
	cmd.Execute()
}
