package main

import (
	"github.com/joho/godotenv"
	"github.com/quillnotes/quill/internal/app"
)

func main() {
	// Missing .env is fine; configuration then comes from the environment.
	_ = godotenv.Load()

	if err := app.NewQuillApp().Run(); err != nil {
		panic(err)
	}
}
