package main

import "flasherp/internal/app/server"

func main() {
	server.Run()
}
