package main

import (
	"yt-transcribe/cmd/transcribe/cmd"
)

func main() {
	cmd.Execute()
}
