package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/transaction-server/internal/loadtest"
	"github.com/carson-networks/transaction-server/internal/loadtest/actions"
	"github.com/carson-networks/transaction-server/internal/logging"
)

func main() {
	var (
		url      = flag.String("url", "http://localhost:8080", "Base URL of the transaction server")
		workers  = flag.Int("workers", 100, "Number of concurrent workers")
		requests = flag.Int("requests", 200, "Requests sent by each worker")
		timeout  = flag.Duration("timeout", 5*time.Second, "Per request timeout")
	)
	flag.Parse()

	logger := logging.SetupLogging(logrus.InfoLevel)
	if *workers < 1 || *requests < 1 {
		logger.Error("loadtest: -workers and -requests must be positive")
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.WithFields(logrus.Fields{
		"url":      *url,
		"workers":  *workers,
		"requests": *requests,
	}).Info("LoadTest.Start")

	runner := loadtest.NewRunner(actions.NewClient(*url, *timeout), *workers)
	report := runner.Run(ctx, actions.SampleDeposit(), *requests)

	logger.WithFields(report.Fields()).Info("LoadTest.Complete")
	if report.Success == 0 {
		os.Exit(1)
	}
}
