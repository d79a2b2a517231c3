// Copyright 2025 The go-parallel Authors. SPDX-License-Identifier: Apache-2.0

// Command parbench drives representative workloads through the
// algorithm facades under each execution policy and reports timings.
// It doubles as a smoke test for an installed pool: worker count and
// seed come from flags or a config file, the way the library's own
// regression harness configures its runs.
//
//	parbench --os-threads all --seed 42 --size 1000000
//	parbench --config bench.yaml
package main

import (
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	_ "github.com/KimMachineGun/automemlimit"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"

	"github.com/ajroetker/go-parallel/par"
	"github.com/ajroetker/go-parallel/par/algo"
	"github.com/ajroetker/go-parallel/par/parinit"
	"github.com/ajroetker/go-parallel/par/threadpool"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:           "parbench",
		Short:         "drive the parallel algorithm facades and report timings",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, configPath)
		},
	}

	cmd.Flags().String("os-threads", "all", `worker count, or "all" for every processor`)
	cmd.Flags().Uint32("seed", 0, "random number generator seed (0 derives one)")
	cmd.Flags().Int("size", 1_000_000, "elements per workload")
	cmd.Flags().StringVar(&configPath, "config", "", "optional config file (yaml/toml)")

	return cmd
}

func run(cmd *cobra.Command, configPath string) error {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	v := viper.New()
	_ = v.BindPFlag("os_threads", cmd.Flags().Lookup("os-threads"))
	_ = v.BindPFlag("seed", cmd.Flags().Lookup("seed"))
	_ = v.BindPFlag("size", cmd.Flags().Lookup("size"))
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return err
		}
	}

	var cfg parinit.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return err
	}
	size := v.GetInt("size")
	seed := cfg.ResolveSeed()

	pool, err := parinit.Install(cfg)
	if err != nil {
		return err
	}
	defer pool.Close()

	log.Info().
		Int("workers", pool.Workers()).
		Uint32("seed", seed).
		Int("size", size).
		Msg("pool installed")

	rng := rand.New(rand.NewSource(int64(seed)))
	data := make([]int64, size)
	for i := range data {
		data[i] = int64(rng.Intn(1000))
	}

	policies := []par.Policy{par.Seq, par.Unseq, par.Par.On(pool), par.ParUnseq.On(pool)}

	// The workloads are independent; a small errgroup keeps the run
	// bounded without serialising it.
	var eg errgroup.Group
	eg.SetLimit(2)

	eg.Go(func() error { return benchReduce(log, policies, data) })
	eg.Go(func() error { return benchScan(log, policies, data) })
	eg.Go(func() error { return benchCount(log, policies, data) })
	if err := eg.Wait(); err != nil {
		return err
	}

	return demoAnnotated(log, pool)
}

func benchReduce(log zerolog.Logger, policies []par.Policy, data []int64) error {
	timings := lo.Map(policies, func(pol par.Policy, _ int) string {
		begin := time.Now()
		sum, err := algo.Reduce(pol, par.Begin(data), par.End(data), 0, func(a, b int64) int64 { return a + b })
		if err != nil {
			return fmt.Sprintf("%s=error", pol.Kind())
		}
		return fmt.Sprintf("%s=%s(sum=%d)", pol.Kind(), time.Since(begin).Round(time.Microsecond), sum)
	})
	log.Info().Str("timings", strings.Join(timings, " ")).Msg("reduce")
	return nil
}

func benchScan(log zerolog.Logger, policies []par.Policy, data []int64) error {
	dst := make([]int64, len(data))
	timings := lo.Map(policies, func(pol par.Policy, _ int) string {
		begin := time.Now()
		if _, err := algo.InclusiveScan(pol, par.Begin(data), par.End(data), dst, func(a, b int64) int64 { return a + b }); err != nil {
			return fmt.Sprintf("%s=error", pol.Kind())
		}
		return fmt.Sprintf("%s=%s", pol.Kind(), time.Since(begin).Round(time.Microsecond))
	})
	log.Info().Str("timings", strings.Join(timings, " ")).Msg("inclusive scan")
	return nil
}

func benchCount(log zerolog.Logger, policies []par.Policy, data []int64) error {
	timings := lo.Map(policies, func(pol par.Policy, _ int) string {
		begin := time.Now()
		c, err := algo.Count(pol, data, 500)
		if err != nil {
			return fmt.Sprintf("%s=error", pol.Kind())
		}
		return fmt.Sprintf("%s=%s(hits=%d)", pol.Kind(), time.Since(begin).Round(time.Microsecond), c)
	})
	log.Info().Str("timings", strings.Join(timings, " ")).Msg("count")
	return nil
}

func demoAnnotated(log zerolog.Logger, pool *threadpool.Pool) error {
	indexes := lo.Range(10007)

	// Count only bodies that observed their own label while running.
	labelled := 0
	red := par.ReductionPlus(&labelled)
	err := algo.ForLoopReduce(par.Par.On(pool), par.Begin(indexes), par.End(indexes), red,
		func(it par.SliceIter[int], n *int) {
			threadpool.WithLabel("bench-body", func() {
				if threadpool.CurrentLabel() == "bench-body" {
					*n++
				}
			})()
		})
	if err != nil {
		return err
	}
	log.Info().Int("labelled_invocations", labelled).Msg("annotated for-loop")
	return nil
}
