// SPDX-License-Identifier: Apache-2.0

// Command regionpool is a CLI driver for exercising a regionpool.Pool:
// open a region, run a scripted allocate/release workload against it,
// and print an inspect dump. It is a demonstration/test harness, not
// part of the allocator engine's core.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/regionpool/regionpool"
	"github.com/regionpool/regionpool/registry"
)

func main() {
	log := logrus.New()

	app := &cli.App{
		Name:  "regionpool",
		Usage: "drive a fixed-region memory pool allocator",
		Flags: []cli.Flag{
			&cli.Int64Flag{Name: "size", Value: 1 << 20, Usage: "region size in bytes"},
			&cli.StringFlag{Name: "policy", Value: "best-fit", Usage: "first-fit or best-fit"},
		},
		Commands: []*cli.Command{
			{
				Name:  "demo",
				Usage: "open a pool, allocate/release a fixed workload, print the result",
				Flags: []cli.Flag{
					&cli.IntSliceFlag{Name: "alloc", Usage: "sizes to allocate, in order"},
				},
				Action: func(c *cli.Context) error {
					return runDemo(log, c)
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.WithError(err).Fatal("regionpool command failed")
	}
}

func parsePolicy(name string) (regionpool.Policy, error) {
	switch name {
	case "first-fit":
		return regionpool.FirstFit, nil
	case "best-fit":
		return regionpool.BestFit, nil
	default:
		return 0, fmt.Errorf("unknown policy %q (want first-fit or best-fit)", name)
	}
}

func runDemo(log *logrus.Logger, c *cli.Context) error {
	policy, err := parsePolicy(c.String("policy"))
	if err != nil {
		return err
	}

	reg := registry.New(log)
	if err := reg.Init(); err != nil {
		return err
	}
	defer func() {
		if err := reg.Shutdown(); err != nil {
			log.WithError(err).Warn("registry shutdown deferred with pools still open")
		}
	}()

	id, err := reg.Open(c.Int64("size"), regionpool.WithPolicy(policy))
	if err != nil {
		return err
	}

	pool, ok := reg.Get(id)
	if !ok {
		return fmt.Errorf("pool %d vanished after open", id)
	}

	sizes := c.IntSlice("alloc")
	if len(sizes) == 0 {
		sizes = []int{128, 256, 64}
	}

	var handles []regionpool.Handle
	for _, sz := range sizes {
		h, err := pool.Allocate(int64(sz))
		if err != nil {
			log.WithError(err).WithField("size", sz).Warn("allocate failed")
			continue
		}
		handles = append(handles, h)
	}

	fmt.Println(pool.Dump())

	for i := len(handles) - 1; i >= 0; i-- {
		if err := pool.Release(handles[i]); err != nil {
			log.WithError(err).Warn("release failed")
		}
	}

	fmt.Println(pool.Dump())

	return reg.Close(id)
}
