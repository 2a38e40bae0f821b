package main

import (
	"log"
	"os"

	"Pulse/FiberConfig"
	"Pulse/Notifications"
	"Pulse/PreviewData"
	"Pulse/Store"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found, using environment defaults")
	}

	feed := Notifications.NewFeed()
	store := Store.NewReportStore(feed)
	roster := Store.NewEmployeeRoster()

	if os.Getenv("SEED_DEMO_DATA") == "true" {
		PreviewData.Load(store, roster)
	}

	FiberConfig.FiberConfig(store, roster, feed)
}
