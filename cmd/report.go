package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	awsclient "netdoc.dev/aws-netdoc/internal/aws"
	"netdoc.dev/aws-netdoc/internal/collector"
	"netdoc.dev/aws-netdoc/internal/config"
	"netdoc.dev/aws-netdoc/internal/report"
)

func NewReportCmd(log *logrus.Logger) *cobra.Command {
	var profile string
	var region string
	var output string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Collect networking resources and write a markdown report",
		Long: `Collect VPCs, subnets, route tables, gateways, security groups, NACLs,
peering connections, endpoints, instances, load balancers and Direct
Connect resources for one region, and write them as markdown tables.
Only read-only describe/list permissions are required; resource types the
credentials cannot describe are marked unavailable in the output.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			profile, region, output = cfg.Merge(profile, region, output)

			ctx := cmd.Context()
			client, err := awsclient.NewServiceClient(ctx, profile, region)
			if err != nil {
				return fmt.Errorf("initializing AWS client: %w", err)
			}

			log.WithField("region", client.Region).Info("collecting network configuration")
			snap, err := collector.New(client, log).Collect(ctx)
			if err != nil {
				return fmt.Errorf("collecting network configuration: %w", err)
			}

			log.WithFields(logrus.Fields{
				"vpcs":              len(snap.VPCs),
				"subnets":           len(snap.Subnets),
				"route_tables":      len(snap.RouteTables),
				"nat_gateways":      len(snap.NATGateways),
				"security_groups":   len(snap.SecurityGroups),
				"instances":         snap.InstanceSummary.Total,
				"instances_running": snap.InstanceSummary.Running,
				"instances_stopped": snap.InstanceSummary.Stopped,
				"nat_instances":     snap.InstanceSummary.NAT,
			}).Info("collection complete")

			doc := report.Render(snap)
			if err := os.WriteFile(output, []byte(doc), 0o644); err != nil {
				return fmt.Errorf("writing report: %w", err)
			}

			log.WithFields(logrus.Fields{
				"path":  output,
				"bytes": len(doc),
			}).Info("network configuration written")
			return nil
		},
	}

	cmd.Flags().StringVarP(&profile, "profile", "p", "", "AWS profile to use")
	cmd.Flags().StringVarP(&region, "region", "r", "", "AWS region to query")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file path (default network-config.md)")

	return cmd
}
