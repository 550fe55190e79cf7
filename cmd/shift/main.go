package main

import (
	"alphabetic/internal/ctxlog"
	"alphabetic/internal/rec"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
)

func runJob(ctx context.Context, w io.Writer, i int, job Job) (err error) {
	defer rec.Wrap(&err, "job %d: %w", i)

	logger := ctxlog.Get(ctxlog.With(ctx, "job", i, "word", job.Word))

	res, err := job.Apply()
	if err != nil {
		return err
	}
	logger.Info("shifted", "amount", job.Amount, "index", job.Index, "result", res)

	_, err = fmt.Fprintln(w, res)
	return err
}

func run(ctx context.Context, w io.Writer, jobsFile string, args []string) (err error) {
	defer rec.Error(&err)

	var jobs Jobs
	if jobsFile != "" {
		jobs, err = LoadJobs(ctx, jobsFile)
		if err != nil {
			return fmt.Errorf("jobs: %w", err)
		}
	} else {
		job, err := ParseArgs(args)
		if err != nil {
			return fmt.Errorf("args: %w", err)
		}
		jobs.Jobs = append(jobs.Jobs, job)
	}

	for i, job := range jobs.Jobs {
		if err := runJob(ctx, w, i, job); err != nil {
			return err
		}
	}
	return nil
}

func main() {
	jobsFile := flag.String("f", "", "YAML file with a list of jobs")
	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), "Usage: shift <word> <amount> [index]")
		fmt.Fprintln(flag.CommandLine.Output(), "       shift -f <jobs.yaml>")
		flag.PrintDefaults()
	}
	flag.Parse()

	ctx := ctxlog.Setup(context.Background(), "shift")
	logger := ctxlog.Get(ctx)

	err := run(ctx, os.Stdout, *jobsFile, flag.Args())
	if err != nil {
		logger.Error("shift failed", "error", err)
		os.Exit(1)
	}
}
