package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/siammpl/arena/internal/dbconfig"
)

// MysteryQuestion mirrors the JSON snapshot structure
type MysteryQuestion struct {
	Difficulty string `json:"difficulty"`
	Question   string `json:"question"`
}

func main() {
	path := "sql/mystery_questions.json"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	// 1) Load the JSON snapshot
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read JSON: %v\n", err)
		os.Exit(1)
	}
	var questions []MysteryQuestion
	if err := json.Unmarshal(data, &questions); err != nil {
		fmt.Fprintf(os.Stderr, "unmarshal JSON: %v\n", err)
		os.Exit(1)
	}

	// 2) Connect using shared dbconfig
	cfg := dbconfig.NewConfigFromEnv()
	pool, err := pgxpool.New(context.Background(), cfg.DSN())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to connect: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	// 3) Insert and count
	var (
		total    = len(questions)
		inserted int
		skipped  int
		errs     int
	)

	for _, q := range questions {
		cmdTag, err := pool.Exec(context.Background(), `
            INSERT INTO mystery_question (difficulty, question, question_status)
            SELECT $1, $2, 'UNALLOCATED'
            WHERE NOT EXISTS (
                SELECT 1 FROM mystery_question
                WHERE difficulty = $1 AND question = $2
            )`,
			q.Difficulty, q.Question,
		)
		if err != nil {
			fmt.Fprintf(os.Stderr, "insert %q: %v\n", q.Question, err)
			errs++
			continue
		}
		if cmdTag.RowsAffected() == 0 {
			skipped++
		} else {
			inserted++
		}
	}

	fmt.Printf("seeded mystery questions: total=%d inserted=%d skipped=%d errors=%d\n",
		total, inserted, skipped, errs)
}
