package main

import "github.com/VakaruGIT/NSMS/internal/cli"

func main() {
	cli.Execute()
}
