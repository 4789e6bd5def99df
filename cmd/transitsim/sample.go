package main

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/deppfellow/transitsim/internal/binding"
	"github.com/deppfellow/transitsim/internal/config"
	"github.com/deppfellow/transitsim/internal/lib/utils"
	"github.com/deppfellow/transitsim/internal/model"
	"github.com/deppfellow/transitsim/internal/server"
	"github.com/deppfellow/transitsim/internal/service"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type sampler func(ctx context.Context, s *service.Services, f binding.Fields) any

var samplers = map[string]sampler{
	"ai-optimize": func(ctx context.Context, s *service.Services, f binding.Fields) any {
		req := &model.AIOptimizeRequest{}
		req.Bind(f)
		return s.Optimization.AIOptimize(ctx, req)
	},
	"genetic-optimize": func(ctx context.Context, s *service.Services, f binding.Fields) any {
		req := &model.GeneticOptimizeRequest{}
		req.Bind(f)
		return s.Optimization.GeneticOptimize(ctx, req)
	},
	"lstm-forecast": func(ctx context.Context, s *service.Services, _ binding.Fields) any {
		return s.Forecast.LSTM(ctx)
	},
	"prophet-forecast": func(ctx context.Context, s *service.Services, _ binding.Fields) any {
		return s.Forecast.Prophet(ctx)
	},
	"run-simulation": func(ctx context.Context, s *service.Services, f binding.Fields) any {
		req := &model.SimulationRequest{}
		req.Bind(f)
		return s.Simulation.Run(ctx, req)
	},
}

func samplerNames() []string {
	names := make([]string, 0, len(samplers))
	for name := range samplers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// newSampleCmd prints one canned response without starting the server or
// waiting out the simulated latency.
func newSampleCmd(configPath *string) *cobra.Command {
	var body string

	cmd := &cobra.Command{
		Use:       "sample <operation>",
		Short:     "Print a canned response for an operation",
		Long:      "Print a canned response for one of: " + strings.Join(samplerNames(), ", "),
		Args:      cobra.ExactArgs(1),
		ValidArgs: samplerNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			generate, ok := samplers[args[0]]
			if !ok {
				return fmt.Errorf("unknown operation %q (want one of: %s)", args[0], strings.Join(samplerNames(), ", "))
			}

			cfg, err := config.LoadConfig(*configPath)
			if err != nil {
				return err
			}
			cfg.Simulation.Latency = config.LatencyConfig{}

			fields, err := binding.Parse([]byte(body))
			if err != nil {
				return err
			}

			logger := zerolog.Nop()
			srv, err := server.New(cfg, &logger, nil)
			if err != nil {
				return err
			}

			services, err := service.NewServices(srv)
			if err != nil {
				return err
			}

			return utils.PrintJSON(cmd.OutOrStdout(), generate(cmd.Context(), services, fields))
		},
	}

	cmd.Flags().StringVar(&body, "body", "", "JSON request body, e.g. '{\"duration\": 14}'")

	return cmd
}
