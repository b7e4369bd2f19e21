package main

import (
	"peersupport/app"
	"peersupport/handlers"
)

func main() {
	app.Run(handlers.Dispatch)
}
