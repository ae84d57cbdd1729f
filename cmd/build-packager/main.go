package main

import "github.com/oshokin/kodi-build-tools/cmd/build-packager/cmd"

func main() {
	cmd.Execute()
}
