package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/directconnect"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	elbv2 "github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2"

	awsdx "netdoc.dev/aws-netdoc/internal/aws/dx"
	awsec2 "netdoc.dev/aws-netdoc/internal/aws/ec2"
	awselb "netdoc.dev/aws-netdoc/internal/aws/elb"
	awsvpc "netdoc.dev/aws-netdoc/internal/aws/vpc"
)

type ServiceClient struct {
	VPC       *awsvpc.Client
	EC2       *awsec2.Client
	ELB       *awselb.Client
	DX        *awsdx.Client
	Region    string
	AccountID string
}

func NewServiceClient(ctx context.Context, profile, region string) (*ServiceClient, error) {
	cfg, err := LoadConfig(ctx, profile, region)
	if err != nil {
		return nil, fmt.Errorf("loading AWS config: %w", err)
	}

	ec2Client := ec2.NewFromConfig(cfg)

	return &ServiceClient{
		VPC:       awsvpc.NewClient(ec2Client),
		EC2:       awsec2.NewClient(ec2Client),
		ELB:       awselb.NewClient(elbv2.NewFromConfig(cfg)),
		DX:        awsdx.NewClient(directconnect.NewFromConfig(cfg)),
		Region:    cfg.Region,
		AccountID: GetAccountID(ctx, cfg),
	}, nil
}
