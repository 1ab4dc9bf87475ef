package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"
)

const schema = `
CREATE TABLE IF NOT EXISTS credits (
	id UUID PRIMARY KEY,
	reference TEXT NOT NULL DEFAULT '',
	mode TEXT NOT NULL,
	interest_kind TEXT NOT NULL,
	principal_total NUMERIC(14,2) NOT NULL,
	principal_financed NUMERIC(14,2) NOT NULL,
	total_interest NUMERIC(14,2) NOT NULL,
	total_payable NUMERIC(14,2) NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS credit_installments (
	credit_id UUID NOT NULL REFERENCES credits(id) ON DELETE CASCADE,
	number INT NOT NULL,
	due_date TIMESTAMPTZ NOT NULL,
	amount NUMERIC(14,2) NOT NULL,
	label TEXT NOT NULL,
	PRIMARY KEY (credit_id, number)
);

CREATE INDEX IF NOT EXISTS idx_credits_created_at ON credits (created_at DESC);
CREATE INDEX IF NOT EXISTS idx_credit_installments_due_date ON credit_installments (due_date);
`

func main() {
	fmt.Println("=== Database Initialization Script ===")
	fmt.Println()

	// Load environment variables
	if err := godotenv.Load(); err != nil {
		fmt.Printf("⚠️  Warning: Could not load .env file: %v\n", err)
	}

	// Get database URL
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		fmt.Println("❌ DATABASE_URL environment variable not set")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	// First connect to default 'postgres' database to create our database
	postgresURL := strings.Replace(databaseURL, "/creditplans", "/postgres", 1)
	fmt.Println("📡 Connecting to PostgreSQL server...")

	adminConn, err := pgx.Connect(ctx, postgresURL)
	if err != nil {
		fmt.Printf("❌ Failed to connect to PostgreSQL: %v\n", err)
		os.Exit(1)
	}

	// Check if database exists
	var exists bool
	err = adminConn.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = 'creditplans')").Scan(&exists)
	if err != nil {
		fmt.Printf("❌ Failed to check database existence: %v\n", err)
		adminConn.Close(ctx)
		os.Exit(1)
	}

	if !exists {
		fmt.Println("📦 Creating 'creditplans' database...")
		_, err = adminConn.Exec(ctx, "CREATE DATABASE creditplans")
		if err != nil {
			fmt.Printf("❌ Failed to create database: %v\n", err)
			adminConn.Close(ctx)
			os.Exit(1)
		}
		fmt.Println("✅ Database 'creditplans' created!")
	} else {
		fmt.Println("✅ Database 'creditplans' already exists")
	}
	adminConn.Close(ctx)

	// Now connect to the creditplans database
	fmt.Println("📡 Connecting to creditplans database...")
	conn, err := pgx.Connect(ctx, databaseURL)
	if err != nil {
		fmt.Printf("❌ Failed to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer conn.Close(ctx)

	fmt.Println("✅ Connected to database successfully!")
	fmt.Println()

	// Execute schema
	fmt.Println("🚀 Executing database schema...")
	_, err = conn.Exec(ctx, schema)
	if err != nil {
		fmt.Printf("❌ Failed to execute SQL: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("✅ Database schema executed successfully!")
	fmt.Println()

	// Verify by counting credits
	fmt.Println("🔍 Verifying database setup...")

	var creditCount int
	err = conn.QueryRow(ctx, "SELECT COUNT(*) FROM credits").Scan(&creditCount)
	if err != nil {
		fmt.Printf("⚠️  Warning: Could not count credits: %v\n", err)
	} else {
		fmt.Printf("   📦 Credits in database: %d\n", creditCount)
	}

	fmt.Println()
	fmt.Println("🎉 Database initialization completed successfully!")
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("  1. Start the server: go run ./cmd/server")
	fmt.Println("  2. POST a plan preview to /api/plans/preview")
}
