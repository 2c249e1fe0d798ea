package main

import (
	"github.com/hollowbeak/stacks/pkg/api"
	server "github.com/hollowbeak/stacks/pkg/api/http"
)

const (
	docAPI = `Run the API server`
)

type optsAPI struct {
	optsGeneral
	optsDatabase
	optsQueue

	Addr string `long:"addr" env:"ADDR" default:"localhost:8100" description:"Address to bind to"`
}

func (c *optsAPI) Execute(args []string) error {
	// This serves the API over HTTP without running any consumers; requests
	// land on the queue and a worker process (see cmd worker) picks them up.
	// It needs a shared database and queue to be useful, ie. postgres and
	// redis URLs.
	opts, err := buildOptions(c.optsGeneral, c.optsDatabase, c.optsQueue)
	if err != nil {
		return err
	}

	svc, err := api.New(opts)
	if err != nil {
		return err
	}
	defer svc.Close()

	s := server.NewServer(c.Addr, c.Debug, logger())
	return s.ServeForever(svc)
}
