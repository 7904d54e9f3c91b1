// seed-demo populates a local database with demo users and some kuu
// history so the ranking page has something to show during development.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"

	"kuu/internal/progress"
	"kuu/internal/user"
	"kuu/pkg/database"
)

func main() {
	dbPath := flag.String("db", "./data/kuu.db", "sqlite database path")
	users := flag.Int("users", 5, "number of demo users to create")
	maxKuu := flag.Int("max-kuu", 75, "upper bound on kuu count per demo user")
	flag.Parse()

	db, err := database.Open(*dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}
	if _, err := database.SeedTitles(db); err != nil {
		log.Fatal(err)
	}

	for i := 1; i <= *users; i++ {
		name := fmt.Sprintf("demo%d", i)
		email := fmt.Sprintf("demo%d@example.com", i)

		u, err := user.Create(db, name, email, "password")
		if err != nil {
			// Re-running against the same database is fine; skip
			// users that already exist.
			log.Printf("skip %s: %v", email, err)
			continue
		}

		n := 1 + rand.Intn(*maxKuu)
		for j := 0; j < n; j++ {
			if _, err := progress.Increment(db, u.ID); err != nil {
				log.Fatal(err)
			}
		}
		log.Printf("created %s with %d kuu", name, n)
	}
}
