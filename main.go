package main

import "github.com/Aditya200247/Ai-Video-editor/internal/cli"

func main() { cli.Main() }
