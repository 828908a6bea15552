package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gen"
	"gorm.io/gorm"
)

// Tables backing the game store. Migrations must be applied before the
// models are regenerated.
var tables = []string{
	"games",
	"game_chunks",
	"battle_reports",
	"generated_chunks",
}

func main() {
	var dsn, out string
	flag.StringVar(&dsn, "dsn", os.Getenv("NEWWORLD_DB_DSN"), "postgres dsn")
	flag.StringVar(&out, "out", "internal/adapter/repo/gorm/model", "output dir for generated models")
	flag.Parse()

	if dsn == "" {
		log.Fatal("missing --dsn or NEWWORLD_DB_DSN")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("open postgres: %v", err)
	}

	g := gen.NewGenerator(gen.Config{
		OutPath:      out,
		ModelPkgPath: "model",
		Mode:         gen.WithoutContext,
	})
	g.UseDB(db)
	models := make([]any, 0, len(tables))
	for _, table := range tables {
		models = append(models, g.GenerateModel(table))
	}
	g.ApplyBasic(models...)
	g.Execute()

	fmt.Printf("generated %d gorm models at %s\n", len(models), out)
}
