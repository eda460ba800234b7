package main

import "shoestore_be/app"

func main() {
	app.Execute()
}
