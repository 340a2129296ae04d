// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/AccelByte/extend-court-allocator/pkg/allocator"
	"github.com/AccelByte/extend-court-allocator/pkg/config"
	"github.com/AccelByte/extend-court-allocator/pkg/envelope"
	"github.com/AccelByte/extend-court-allocator/pkg/metrics"
	"github.com/AccelByte/extend-court-allocator/pkg/models"
	"github.com/AccelByte/extend-court-allocator/pkg/tracing"
)

const (
	flagRequest     = "request"
	flagSeed        = "seed"
	flagTraceID     = "trace-id"
	flagZipkinURL   = "zipkin-url"
	flagSampleRatio = "trace-sample-ratio"
	flagLogLevel    = "log-level"
)

// NewRootCmd reads one allocation request as json and writes the allocation result as json.
// Engine settings come from the environment, see config.Config.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "court-allocator",
		Short:   "Allocate one round of participants to courts",
		Example: "court-allocator --request round.json --seed 42",
		Args:    cobra.ExactArgs(0),
		RunE:    runAllocate,
	}

	flags := cmd.Flags()
	flags.String(flagRequest, "-", "allocation request json file, - reads stdin")
	flags.Int64(flagSeed, 0, "random seed overriding the request seed, 0 keeps it")
	flags.String(flagTraceID, "", "trace id to log with, generated when empty")
	flags.String(flagZipkinURL, "", "zipkin collector url, empty disables span export")
	flags.Float64(flagSampleRatio, 1, "trace sample ratio")
	flags.String(flagLogLevel, "info", "log level")

	return cmd
}

func runAllocate(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()

	levelName, _ := flags.GetString(flagLogLevel)
	level, err := logrus.ParseLevel(levelName)
	if err != nil {
		return err
	}
	logger := logrus.New()
	logger.SetLevel(level)
	logger.SetOutput(cmd.ErrOrStderr())
	logger.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("unable to load config: %w", err)
	}

	zipkinURL, _ := flags.GetString(flagZipkinURL)
	sampleRatio, _ := flags.GetFloat64(flagSampleRatio)
	_, shutdown, err := tracing.Setup(tracing.Options{ServiceName: cmd.Name(), ZipkinURL: zipkinURL, SampleRatio: sampleRatio})
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			logger.WithError(err).Warn("tracer shutdown failed")
		}
	}()

	path, _ := flags.GetString(flagRequest)
	request, err := readRequest(cmd.InOrStdin(), path)
	if err != nil {
		return err
	}
	if seed, _ := flags.GetInt64(flagSeed); seed != 0 {
		request.RandomSeed = seed
	}

	alloc, err := allocator.New(cfg, metrics.NewMetrics(prometheus.NewRegistry()))
	if err != nil {
		return err
	}

	traceID, _ := flags.GetString(flagTraceID)
	scope := envelope.NewRootScope(cmd.Context(), cmd.Name(), traceID)
	defer scope.Finish()
	scope.SetLogger(logger)

	result := alloc.Allocate(scope, request)

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

func readRequest(stdin io.Reader, path string) (models.AllocationRequest, error) {
	var request models.AllocationRequest

	in := stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return request, fmt.Errorf("unable to open request: %w", err)
		}
		defer f.Close()
		in = f
	}

	if err := json.NewDecoder(in).Decode(&request); err != nil {
		return request, fmt.Errorf("unable to decode request: %w", err)
	}
	return request, nil
}
