package main

import "github.com/mvp-joe/mermaid-corpus/internal/cli"

func main() {
	cli.Execute()
}
