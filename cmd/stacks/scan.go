package main

import (
	"context"

	"github.com/hollowbeak/stacks/pkg/api"
)

const (
	docScan = `Enqueue a scan of one library, or of every library`
)

type optsScan struct {
	optsGeneral
	optsDatabase
	optsQueue

	LibraryID string `long:"library" env:"LIBRARY" description:"Library to scan; empty scans all of them"`
}

func (c *optsScan) Execute(args []string) error {
	opts, err := buildOptions(c.optsGeneral, c.optsDatabase, c.optsQueue)
	if err != nil {
		return err
	}

	svc, err := api.New(opts)
	if err != nil {
		return err
	}
	defer svc.Close()

	ctx := context.Background()
	if c.LibraryID != "" {
		return svc.Scan(ctx, c.LibraryID)
	}
	return svc.ScanAll(ctx)
}
