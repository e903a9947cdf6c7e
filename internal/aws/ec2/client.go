package ec2

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsec2 "github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
)

type EC2API interface {
	DescribeInstances(ctx context.Context, params *awsec2.DescribeInstancesInput, optFns ...func(*awsec2.Options)) (*awsec2.DescribeInstancesOutput, error)
}

type Client struct {
	api EC2API
}

func NewClient(api EC2API) *Client {
	return &Client{api: api}
}

func stringOrNA(s *string) string {
	if s == nil {
		return "N/A"
	}
	return aws.ToString(s)
}

func (c *Client) ListInstances(ctx context.Context) ([]InstanceInfo, InstanceSummary, error) {
	var instances []InstanceInfo
	var summary InstanceSummary
	var nextToken *string

	for {
		out, err := c.api.DescribeInstances(ctx, &awsec2.DescribeInstancesInput{
			NextToken: nextToken,
		})
		if err != nil {
			return nil, InstanceSummary{}, fmt.Errorf("DescribeInstances: %w", err)
		}

		for _, reservation := range out.Reservations {
			for _, inst := range reservation.Instances {
				name := ""
				for _, tag := range inst.Tags {
					if aws.ToString(tag.Key) == "Name" {
						name = aws.ToString(tag.Value)
						break
					}
				}

				primaryENI := "N/A"
				if len(inst.NetworkInterfaces) > 0 {
					primaryENI = aws.ToString(inst.NetworkInterfaces[0].NetworkInterfaceId)
				}

				var groups []string
				for _, sg := range inst.SecurityGroups {
					groups = append(groups, aws.ToString(sg.GroupId))
				}

				// NAT instances route traffic for other hosts, which
				// requires disabling the source/destination check.
				isNAT := inst.SourceDestCheck != nil && !aws.ToBool(inst.SourceDestCheck)

				state := ""
				if inst.State != nil {
					state = string(inst.State.Name)
				}

				instances = append(instances, InstanceInfo{
					InstanceID:     aws.ToString(inst.InstanceId),
					Name:           name,
					Type:           string(inst.InstanceType),
					State:          state,
					VPCID:          stringOrNA(inst.VpcId),
					SubnetID:       stringOrNA(inst.SubnetId),
					PrivateIP:      stringOrNA(inst.PrivateIpAddress),
					PublicIP:       stringOrNA(inst.PublicIpAddress),
					PrimaryENIID:   primaryENI,
					SecurityGroups: groups,
					IsNATInstance:  isNAT,
				})

				summary.Total++
				if isNAT {
					summary.NAT++
				}
				if inst.State != nil {
					switch inst.State.Name {
					case types.InstanceStateNameRunning:
						summary.Running++
					case types.InstanceStateNameStopped:
						summary.Stopped++
					}
				}
			}
		}

		if out.NextToken == nil {
			break
		}
		nextToken = out.NextToken
	}

	return instances, summary, nil
}
