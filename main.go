package main

import (
	"log"
	"taskboard-server/confs"
	"taskboard-server/db"
	"taskboard-server/server"
)

func main() {
	// load config
	err := confs.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// signing secret is injected, never a literal
	jwtSecret := confs.GetEnvAsString("JWT_SECRET", "")
	if jwtSecret == "" {
		log.Fatalf("JWT_SECRET is required")
	}

	// connect to database Postgres
	database, err := db.Connect()
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}

	// run server
	srv := server.NewServer(database, jwtSecret)
	srv.Start()
}
