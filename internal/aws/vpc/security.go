package vpc

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsec2 "github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
)

// maxRuleSummaries caps how many inbound rules are summarized per group.
const maxRuleSummaries = 5

func portRange(rule types.IpPermission) string {
	if rule.FromPort == nil {
		return "All"
	}
	from := aws.ToInt32(rule.FromPort)
	to := from
	if rule.ToPort != nil {
		to = aws.ToInt32(rule.ToPort)
	}
	if from == to {
		return strconv.Itoa(int(from))
	}
	return fmt.Sprintf("%d-%d", from, to)
}

// summarizeRule renders an inbound permission as "proto/ports from sources".
func summarizeRule(rule types.IpPermission) string {
	protocol := NormalizeProtocol(aws.ToString(rule.IpProtocol))
	if protocol == "" {
		protocol = "All"
	}

	var sources []string
	for _, ipRange := range rule.IpRanges {
		if cidr := aws.ToString(ipRange.CidrIp); cidr != "" {
			sources = append(sources, cidr)
		}
	}
	for _, pair := range rule.UserIdGroupPairs {
		if id := aws.ToString(pair.GroupId); id != "" {
			sources = append(sources, id)
		}
	}
	source := "All"
	if len(sources) > 0 {
		source = strings.Join(sources, ", ")
	}

	return fmt.Sprintf("%s/%s from %s", protocol, portRange(rule), source)
}

func (c *Client) ListSecurityGroups(ctx context.Context) ([]SecurityGroupInfo, error) {
	var sgs []SecurityGroupInfo
	var nextToken *string

	for {
		out, err := c.api.DescribeSecurityGroups(ctx, &awsec2.DescribeSecurityGroupsInput{
			NextToken: nextToken,
		})
		if err != nil {
			return nil, fmt.Errorf("DescribeSecurityGroups: %w", err)
		}

		for _, sg := range out.SecurityGroups {
			vpcID := aws.ToString(sg.VpcId)
			if vpcID == "" {
				vpcID = "EC2-Classic"
			}

			var rules []string
			for i, rule := range sg.IpPermissions {
				if i == maxRuleSummaries {
					break
				}
				rules = append(rules, summarizeRule(rule))
			}

			sgs = append(sgs, SecurityGroupInfo{
				GroupID:      aws.ToString(sg.GroupId),
				Name:         aws.ToString(sg.GroupName),
				VPCID:        vpcID,
				InboundRules: rules,
			})
		}

		if out.NextToken == nil {
			break
		}
		nextToken = out.NextToken
	}
	return sgs, nil
}

func (c *Client) ListNetworkACLs(ctx context.Context) ([]NetworkACLInfo, error) {
	var nacls []NetworkACLInfo
	var nextToken *string

	for {
		out, err := c.api.DescribeNetworkAcls(ctx, &awsec2.DescribeNetworkAclsInput{
			NextToken: nextToken,
		})
		if err != nil {
			return nil, fmt.Errorf("DescribeNetworkAcls: %w", err)
		}

		for _, nacl := range out.NetworkAcls {
			var subnetIDs []string
			for _, assoc := range nacl.Associations {
				if assoc.SubnetId != nil {
					subnetIDs = append(subnetIDs, aws.ToString(assoc.SubnetId))
				}
			}
			nacls = append(nacls, NetworkACLInfo{
				NACLID:    aws.ToString(nacl.NetworkAclId),
				VPCID:     aws.ToString(nacl.VpcId),
				SubnetIDs: subnetIDs,
				IsDefault: aws.ToBool(nacl.IsDefault),
			})
		}

		if out.NextToken == nil {
			break
		}
		nextToken = out.NextToken
	}
	return nacls, nil
}
