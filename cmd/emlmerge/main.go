package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/google/gops/agent"
	"github.com/viant/emlmerge/service"
	"github.com/viant/emlmerge/source"
)

func main() {
	startGops()
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "merge":
		mergeCmd(os.Args[2:])
	case "order":
		orderCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: emlmerge <command> [options]")
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  merge   Merge documents ordered by the timestamp in their file names")
	fmt.Fprintln(os.Stderr, "  order   Print the merge order without merging")
}

// commonFlags are shared by merge and order.
type commonFlags struct {
	input      *string
	configPath *string
	ext        *string
	exclude    *string
	workers    *int
	verbose    *bool
	debugSleep *int
}

func registerCommon(flags *flag.FlagSet) *commonFlags {
	return &commonFlags{
		input:      flags.String("input", "", "input folder or comma-separated list of files (required)"),
		configPath: flags.String("config", "", "config yaml (optional)"),
		ext:        flags.String("ext", "", "comma-separated document extensions (default pdf)"),
		exclude:    flags.String("exclude", "", "comma-separated file name patterns to skip"),
		workers:    flags.Int("workers", 0, "concurrent timestamp extractions (default NumCPU)"),
		verbose:    flags.Bool("verbose", false, "log per-file dates and merge progress"),
		debugSleep: flags.Int("debug-sleep", 0, "debug: sleep N seconds before execution (for gops)"),
	}
}

// resolve layers config file, environment and flags, in that order.
func (c *commonFlags) resolve() (*service.Config, error) {
	var cfg *service.Config
	if *c.configPath != "" {
		loaded, err := service.LoadConfig(*c.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	cfg, err := service.ConfigFromEnv(cfg)
	if err != nil {
		return nil, err
	}
	if *c.ext != "" {
		cfg.Extensions = source.ParseCSV(*c.ext)
	}
	if *c.exclude != "" {
		cfg.Exclude = source.ParseCSV(*c.exclude)
	}
	if *c.workers > 0 {
		cfg.Workers = *c.workers
	}
	if *c.verbose {
		cfg.Verbose = true
	}
	return cfg, nil
}

func (c *commonFlags) planRequest(cfg *service.Config) service.PlanRequest {
	req := service.PlanRequest{
		Input:      *c.input,
		Extensions: cfg.Extensions,
		Exclude:    cfg.Exclude,
		Workers:    cfg.Workers,
	}
	if cfg.Verbose {
		req.Logf = log.Printf
	}
	return req
}

func mergeCmd(args []string) {
	if err := runMerge(args, os.Stdout); err != nil {
		log.Fatalf("merge: %v", err)
	}
}

func runMerge(args []string, stdout io.Writer) error {
	flags := flag.NewFlagSet("merge", flag.ContinueOnError)
	common := registerCommon(flags)
	output := flags.String("output", "", "output file, or directory for merged_emails.<ext> (required)")
	if err := flags.Parse(args); err != nil {
		return err
	}
	cfg, err := common.resolve()
	if err != nil {
		return err
	}
	if *output == "" {
		*output = cfg.Output
	}
	if *common.input == "" || *output == "" {
		flags.Usage()
		return errors.New("--input and --output are required")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	maybeDebugSleep("merge", *common.debugSleep)

	svc, err := service.NewService(service.WithWorkers(cfg.Workers))
	if err != nil {
		return fmt.Errorf("service init: %w", err)
	}
	result, err := svc.Merge(ctx, service.MergeRequest{
		PlanRequest: common.planRequest(cfg),
		Output:      *output,
	})
	if err != nil {
		return err
	}
	if cfg.Verbose {
		log.Printf("pages=%d checksum=%016x", result.Pages, result.Checksum)
	}
	fmt.Fprintf(stdout, "Successfully merged %d files into %s\n", result.Count, result.Path)
	return nil
}

func orderCmd(args []string) {
	if err := runOrder(args, os.Stdout); err != nil {
		log.Fatalf("order: %v", err)
	}
}

func runOrder(args []string, stdout io.Writer) error {
	flags := flag.NewFlagSet("order", flag.ContinueOnError)
	common := registerCommon(flags)
	if err := flags.Parse(args); err != nil {
		return err
	}
	cfg, err := common.resolve()
	if err != nil {
		return err
	}
	if *common.input == "" {
		flags.Usage()
		return errors.New("--input is required")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	maybeDebugSleep("order", *common.debugSleep)

	svc, err := service.NewService(service.WithWorkers(cfg.Workers))
	if err != nil {
		return fmt.Errorf("service init: %w", err)
	}
	m, err := svc.Plan(ctx, common.planRequest(cfg))
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Sorted order (%d files):\n", m.Len())
	return m.Print(stdout)
}

func maybeDebugSleep(cmd string, seconds int) {
	if seconds <= 0 {
		seconds = debugSleepFromEnv()
	}
	if seconds <= 0 {
		return
	}
	log.Printf("debug: cmd=%s pid=%d sleep=%ds", cmd, os.Getpid(), seconds)
	time.Sleep(time.Duration(seconds) * time.Second)
}

func startGops() {
	if err := agent.Listen(agent.Options{ShutdownCleanup: true}); err != nil {
		log.Printf("gops: %v", err)
	}
}

func debugSleepFromEnv() int {
	val := strings.TrimSpace(os.Getenv("EMLMERGE_DEBUG_SLEEP"))
	if val == "" {
		return 0
	}
	n, err := strconv.Atoi(val)
	if err != nil || n <= 0 {
		return 0
	}
	return n
}
