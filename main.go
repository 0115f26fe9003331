package main

import (
	"github.com/appdotbuilder/simple-todo-app-a8eb/app"
	_ "github.com/appdotbuilder/simple-todo-app-a8eb/docs"
)

func main() {
	// setup and run app
	err := app.SetupAndRunApp()
	if err != nil {
		panic(err)
	}
}
