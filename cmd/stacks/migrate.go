package main

import (
	"fmt"

	"github.com/hollowbeak/stacks/pkg/database"
)

const (
	docMigrate = `Apply pending database schema migrations`
)

type optsMigrate struct {
	optsGeneral
	optsDatabase
}

func (c *optsMigrate) Execute(args []string) error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("migrate needs a database url")
	}
	return database.Migrate(c.DatabaseURL)
}
