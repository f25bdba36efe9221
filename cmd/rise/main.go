package main

import "rise/cmd/rise/root"

func main() {
	root.Execute()
}
