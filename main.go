package main

import "quotation-management-api/app"

func main() {
	app.Run()
}
