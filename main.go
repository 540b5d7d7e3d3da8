package main

import "birthday-timeline-api/config"

func main() {
	config.RunServer()
}
