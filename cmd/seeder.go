package cmd

import (
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with a demo organisation, admin user, employees and a team.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		db, err := sqlx.Connect("pgx", cfg.Database.Source)
		if err != nil {
			log.Fatalf("failed to connect: %v", err)
		}
		defer db.Close()

		orgName := "Demo Corp"
		adminEmail := "admin@democorp.test"

		var orgID int64
		err = db.Get(&orgID, "SELECT id FROM organisations WHERE name = $1", orgName)
		if err == nil {
			fmt.Println("demo organisation already exists, skipping seed")
			return
		}

		if err := db.Get(&orgID, "INSERT INTO organisations (name) VALUES ($1) RETURNING id", orgName); err != nil {
			log.Fatalf("failed to insert organisation: %v", err)
		}

		hash, _ := bcrypt.GenerateFromPassword([]byte("password"), cfg.Security.BCryptCost)
		var userID int64
		err = db.Get(&userID,
			"INSERT INTO users (organisation_id, name, email, password_hash) VALUES ($1, $2, $3, $4) RETURNING id",
			orgID, "Demo Admin", adminEmail, string(hash))
		if err != nil {
			log.Fatalf("failed to insert admin user: %v", err)
		}

		employees := []struct {
			First, Last, Email, Phone string
		}{
			{"Ayu", "Wulandari", "ayu@democorp.test", "+62-811-0001"},
			{"Budi", "Santoso", "budi@democorp.test", "+62-811-0002"},
			{"Citra", "Lestari", "citra@democorp.test", "+62-811-0003"},
		}

		var teamID int64
		if err := db.Get(&teamID,
			"INSERT INTO teams (organisation_id, name, description) VALUES ($1, $2, $3) RETURNING id",
			orgID, "Engineering", "Product engineering team"); err != nil {
			log.Fatalf("failed to insert team: %v", err)
		}

		for _, e := range employees {
			var employeeID int64
			err := db.Get(&employeeID,
				"INSERT INTO employees (organisation_id, first_name, last_name, email, phone) VALUES ($1, $2, $3, $4, $5) RETURNING id",
				orgID, e.First, e.Last, e.Email, e.Phone)
			if err != nil {
				log.Fatalf("failed to insert employee %s: %v", e.Email, err)
			}
			if _, err := db.Exec(
				"INSERT INTO employee_teams (employee_id, team_id) VALUES ($1, $2) ON CONFLICT DO NOTHING",
				employeeID, teamID); err != nil {
				log.Fatalf("failed to assign employee %s: %v", e.Email, err)
			}
		}

		fmt.Printf("Seeded organisation %q with admin %s (password: password)\n", orgName, adminEmail)
	},
}
