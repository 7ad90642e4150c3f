package main

import "petrack/cmd/petrack/root"

func main() {
	root.Execute()
}
