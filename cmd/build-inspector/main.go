package main

import "github.com/oshokin/kodi-build-tools/cmd/build-inspector/cmd"

func main() {
	cmd.Execute()
}
