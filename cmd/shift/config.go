package main

import (
	"alphabetic/internal/ctxlog"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/goccy/go-yaml"
)

type Jobs struct {
	Jobs []Job `yaml:"jobs"`
}

func LoadJobs(ctx context.Context, filename string) (Jobs, error) {
	file, err := os.Open(filename)
	if err != nil {
		return Jobs{}, fmt.Errorf("open %q: %w", filename, err)
	}
	defer ctxlog.Close(ctx, "jobs file", file)

	return decodeJobs(file)
}

func decodeJobs(r io.Reader) (Jobs, error) {
	dec := yaml.NewDecoder(r, yaml.Strict())

	var jobs Jobs
	err := dec.Decode(&jobs)
	if err != nil {
		return Jobs{}, fmt.Errorf("yaml: %w", err)
	}

	return jobs, nil
}

// ParseArgs reads a single job from <word> <amount> [index].
func ParseArgs(args []string) (Job, error) {
	if len(args) < 2 || len(args) > 3 {
		return Job{}, fmt.Errorf("want 2 or 3 arguments, got %d", len(args))
	}

	job := Job{Word: args[0]}

	amount, err := strconv.Atoi(args[1])
	if err != nil {
		return Job{}, fmt.Errorf("amount: %w", err)
	}
	job.Amount = amount

	if len(args) == 3 {
		index, err := strconv.Atoi(args[2])
		if err != nil {
			return Job{}, fmt.Errorf("index: %w", err)
		}
		job.Index = index
	}

	return job, nil
}
