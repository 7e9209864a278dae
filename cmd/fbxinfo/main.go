package main

import "fbxscene/cmd/fbxinfo/cmd"

func main() {
	cmd.Execute()
}
