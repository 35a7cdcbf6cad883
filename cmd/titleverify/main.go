/*
Title Verification Service
Copyright (c) 2026 The Title Verification Service Contributors.

This file is part of Title Verification Service.

Title Verification Service is free software: you can redistribute it and/or
modify it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

Title Verification Service is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with Title Verification Service.  If not, see <http://www.gnu.org/licenses/>.
*/

package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/AshCoder07/Title-verification/pkg/api"
	"github.com/AshCoder07/Title-verification/pkg/config"
	"github.com/AshCoder07/Title-verification/pkg/corpus"
	"github.com/AshCoder07/Title-verification/pkg/helpers"
	"github.com/AshCoder07/Title-verification/pkg/verify"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func run() error {
	configDir := flag.String(
		"config",
		".",
		"path to config and log directory",
	)
	datasetPath := flag.String(
		"dataset",
		"",
		"override path to the registered titles CSV",
	)
	quiet := flag.Bool(
		"quiet",
		false,
		"log to file only, not stderr",
	)
	flag.Parse()

	var logWriters []io.Writer
	if !*quiet {
		logWriters = []io.Writer{os.Stderr}
	}
	if err := helpers.InitLogging(*configDir, logWriters); err != nil {
		return fmt.Errorf("error initializing logging: %w", err)
	}

	cfg, err := config.NewConfig(*configDir, config.BaseDefaults)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	helpers.SetDebugLogging(cfg.DebugLogging())

	if *datasetPath != "" {
		cfg.SetDatasetPath(*datasetPath)
	}

	fs := afero.NewOsFs()
	buildCorpus := func() (*corpus.Corpus, error) {
		rows, loadErr := corpus.NewLoader(fs, cfg.DatasetPath()).Load()
		if loadErr != nil {
			return nil, loadErr
		}
		return corpus.Build(rows)
	}

	c, err := buildCorpus()
	if err != nil {
		return fmt.Errorf("error building corpus: %w", err)
	}

	vc := cfg.Verification()
	svc := verify.New(c, verify.NewRuleSet(cfg.Rules()), verify.Options{
		SimilarityThreshold:   vc.SimilarityThreshold,
		TopK:                  vc.TopK,
		FlatRejectProbability: vc.FlatRejectProbability,
	})

	server := api.NewServer(cfg, svc, buildCorpus)
	httpServer := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.APIPort()),
		Handler:           server.Router(),
		ReadHeaderTimeout: config.APIRequestTimeout,
	}

	errs := make(chan error, 1)
	go func() {
		log.Info().Str("addr", httpServer.Addr).Msg("starting http server")
		errs <- httpServer.ListenAndServe()
	}()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errs:
		return fmt.Errorf("error running http server: %w", err)
	case sig := <-sigs:
		log.Info().Str("signal", sig.String()).Msg("shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("error shutting down http server: %w", err)
	}

	return nil
}
