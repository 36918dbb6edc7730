package main

import "serveeny_backend/internal/app"

func main() {
	app.Run()
}
