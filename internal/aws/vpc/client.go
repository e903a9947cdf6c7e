package vpc

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsec2 "github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
)

type VPCAPI interface {
	DescribeVpcs(ctx context.Context, params *awsec2.DescribeVpcsInput, optFns ...func(*awsec2.Options)) (*awsec2.DescribeVpcsOutput, error)
	DescribeSubnets(ctx context.Context, params *awsec2.DescribeSubnetsInput, optFns ...func(*awsec2.Options)) (*awsec2.DescribeSubnetsOutput, error)
	DescribeRouteTables(ctx context.Context, params *awsec2.DescribeRouteTablesInput, optFns ...func(*awsec2.Options)) (*awsec2.DescribeRouteTablesOutput, error)
	DescribeInternetGateways(ctx context.Context, params *awsec2.DescribeInternetGatewaysInput, optFns ...func(*awsec2.Options)) (*awsec2.DescribeInternetGatewaysOutput, error)
	DescribeNatGateways(ctx context.Context, params *awsec2.DescribeNatGatewaysInput, optFns ...func(*awsec2.Options)) (*awsec2.DescribeNatGatewaysOutput, error)
	DescribeTransitGateways(ctx context.Context, params *awsec2.DescribeTransitGatewaysInput, optFns ...func(*awsec2.Options)) (*awsec2.DescribeTransitGatewaysOutput, error)
	DescribeVpnGateways(ctx context.Context, params *awsec2.DescribeVpnGatewaysInput, optFns ...func(*awsec2.Options)) (*awsec2.DescribeVpnGatewaysOutput, error)
	DescribeSecurityGroups(ctx context.Context, params *awsec2.DescribeSecurityGroupsInput, optFns ...func(*awsec2.Options)) (*awsec2.DescribeSecurityGroupsOutput, error)
	DescribeNetworkAcls(ctx context.Context, params *awsec2.DescribeNetworkAclsInput, optFns ...func(*awsec2.Options)) (*awsec2.DescribeNetworkAclsOutput, error)
	DescribeVpcPeeringConnections(ctx context.Context, params *awsec2.DescribeVpcPeeringConnectionsInput, optFns ...func(*awsec2.Options)) (*awsec2.DescribeVpcPeeringConnectionsOutput, error)
	DescribeVpcEndpoints(ctx context.Context, params *awsec2.DescribeVpcEndpointsInput, optFns ...func(*awsec2.Options)) (*awsec2.DescribeVpcEndpointsOutput, error)
	DescribeFlowLogs(ctx context.Context, params *awsec2.DescribeFlowLogsInput, optFns ...func(*awsec2.Options)) (*awsec2.DescribeFlowLogsOutput, error)
}

type Client struct {
	api VPCAPI
}

func NewClient(api VPCAPI) *Client {
	return &Client{api: api}
}

func nameFromTags(tags []types.Tag) string {
	for _, tag := range tags {
		if aws.ToString(tag.Key) == "Name" {
			return aws.ToString(tag.Value)
		}
	}
	return ""
}

func (c *Client) ListVPCs(ctx context.Context) ([]VPCInfo, error) {
	var vpcs []VPCInfo
	var nextToken *string

	for {
		out, err := c.api.DescribeVpcs(ctx, &awsec2.DescribeVpcsInput{
			NextToken: nextToken,
		})
		if err != nil {
			return nil, fmt.Errorf("DescribeVpcs: %w", err)
		}

		for _, v := range out.Vpcs {
			vpcs = append(vpcs, VPCInfo{
				VPCID:     aws.ToString(v.VpcId),
				Name:      nameFromTags(v.Tags),
				CIDR:      aws.ToString(v.CidrBlock),
				State:     string(v.State),
				IsDefault: aws.ToBool(v.IsDefault),
			})
		}

		if out.NextToken == nil {
			break
		}
		nextToken = out.NextToken
	}
	return vpcs, nil
}

func (c *Client) ListSubnets(ctx context.Context) ([]SubnetInfo, error) {
	var subnets []SubnetInfo
	var nextToken *string

	for {
		out, err := c.api.DescribeSubnets(ctx, &awsec2.DescribeSubnetsInput{
			NextToken: nextToken,
		})
		if err != nil {
			return nil, fmt.Errorf("DescribeSubnets: %w", err)
		}

		for _, s := range out.Subnets {
			subnets = append(subnets, SubnetInfo{
				SubnetID:     aws.ToString(s.SubnetId),
				Name:         nameFromTags(s.Tags),
				VPCID:        aws.ToString(s.VpcId),
				CIDR:         aws.ToString(s.CidrBlock),
				AZ:           aws.ToString(s.AvailabilityZone),
				AvailableIPs: int(aws.ToInt32(s.AvailableIpAddressCount)),
			})
		}

		if out.NextToken == nil {
			break
		}
		nextToken = out.NextToken
	}
	return subnets, nil
}

// routeTarget picks the most specific target field set on a route.
func routeTarget(r types.Route) string {
	switch {
	case r.GatewayId != nil:
		return aws.ToString(r.GatewayId)
	case r.NatGatewayId != nil:
		return aws.ToString(r.NatGatewayId)
	case r.TransitGatewayId != nil:
		return aws.ToString(r.TransitGatewayId)
	case r.NetworkInterfaceId != nil:
		return aws.ToString(r.NetworkInterfaceId)
	case r.VpcPeeringConnectionId != nil:
		return aws.ToString(r.VpcPeeringConnectionId)
	case r.InstanceId != nil:
		return aws.ToString(r.InstanceId)
	default:
		return "local"
	}
}

func routeDestination(r types.Route) string {
	if r.DestinationCidrBlock != nil {
		return aws.ToString(r.DestinationCidrBlock)
	}
	if r.DestinationIpv6CidrBlock != nil {
		return aws.ToString(r.DestinationIpv6CidrBlock)
	}
	if r.DestinationPrefixListId != nil {
		return aws.ToString(r.DestinationPrefixListId)
	}
	return "N/A"
}

func (c *Client) ListRouteTables(ctx context.Context) ([]RouteTableInfo, error) {
	var tables []RouteTableInfo
	var nextToken *string

	for {
		out, err := c.api.DescribeRouteTables(ctx, &awsec2.DescribeRouteTablesInput{
			NextToken: nextToken,
		})
		if err != nil {
			return nil, fmt.Errorf("DescribeRouteTables: %w", err)
		}

		for _, rt := range out.RouteTables {
			var subnetIDs []string
			isMain := false
			for _, assoc := range rt.Associations {
				if assoc.SubnetId != nil {
					subnetIDs = append(subnetIDs, aws.ToString(assoc.SubnetId))
				}
				if aws.ToBool(assoc.Main) {
					isMain = true
				}
			}

			var routes []RouteEntry
			for _, r := range rt.Routes {
				routes = append(routes, RouteEntry{
					Destination: routeDestination(r),
					Target:      routeTarget(r),
					State:       string(r.State),
				})
			}

			tables = append(tables, RouteTableInfo{
				RouteTableID: aws.ToString(rt.RouteTableId),
				Name:         nameFromTags(rt.Tags),
				VPCID:        aws.ToString(rt.VpcId),
				SubnetIDs:    subnetIDs,
				IsMain:       isMain,
				Routes:       routes,
			})
		}

		if out.NextToken == nil {
			break
		}
		nextToken = out.NextToken
	}
	return tables, nil
}

func (c *Client) ListVPCPeerings(ctx context.Context) ([]PeeringInfo, error) {
	var peerings []PeeringInfo
	var nextToken *string

	for {
		out, err := c.api.DescribeVpcPeeringConnections(ctx, &awsec2.DescribeVpcPeeringConnectionsInput{
			NextToken: nextToken,
		})
		if err != nil {
			return nil, fmt.Errorf("DescribeVpcPeeringConnections: %w", err)
		}

		for _, p := range out.VpcPeeringConnections {
			info := PeeringInfo{
				PeeringID:     aws.ToString(p.VpcPeeringConnectionId),
				Name:          nameFromTags(p.Tags),
				RequesterVPC:  "N/A",
				RequesterCIDR: "N/A",
				AccepterVPC:   "N/A",
				AccepterCIDR:  "N/A",
			}
			if p.RequesterVpcInfo != nil {
				if p.RequesterVpcInfo.VpcId != nil {
					info.RequesterVPC = aws.ToString(p.RequesterVpcInfo.VpcId)
				}
				if p.RequesterVpcInfo.CidrBlock != nil {
					info.RequesterCIDR = aws.ToString(p.RequesterVpcInfo.CidrBlock)
				}
			}
			if p.AccepterVpcInfo != nil {
				if p.AccepterVpcInfo.VpcId != nil {
					info.AccepterVPC = aws.ToString(p.AccepterVpcInfo.VpcId)
				}
				if p.AccepterVpcInfo.CidrBlock != nil {
					info.AccepterCIDR = aws.ToString(p.AccepterVpcInfo.CidrBlock)
				}
			}
			if p.Status != nil {
				info.Status = string(p.Status.Code)
			}
			peerings = append(peerings, info)
		}

		if out.NextToken == nil {
			break
		}
		nextToken = out.NextToken
	}
	return peerings, nil
}

func (c *Client) ListVPCEndpoints(ctx context.Context) ([]EndpointInfo, error) {
	var endpoints []EndpointInfo
	var nextToken *string

	for {
		out, err := c.api.DescribeVpcEndpoints(ctx, &awsec2.DescribeVpcEndpointsInput{
			NextToken: nextToken,
		})
		if err != nil {
			return nil, fmt.Errorf("DescribeVpcEndpoints: %w", err)
		}

		for _, ep := range out.VpcEndpoints {
			endpoints = append(endpoints, EndpointInfo{
				EndpointID:  aws.ToString(ep.VpcEndpointId),
				Name:        nameFromTags(ep.Tags),
				Type:        string(ep.VpcEndpointType),
				VPCID:       aws.ToString(ep.VpcId),
				ServiceName: aws.ToString(ep.ServiceName),
				State:       string(ep.State),
			})
		}

		if out.NextToken == nil {
			break
		}
		nextToken = out.NextToken
	}
	return endpoints, nil
}

func (c *Client) ListFlowLogs(ctx context.Context) ([]FlowLogInfo, error) {
	var flowLogs []FlowLogInfo
	var nextToken *string

	for {
		out, err := c.api.DescribeFlowLogs(ctx, &awsec2.DescribeFlowLogsInput{
			NextToken: nextToken,
		})
		if err != nil {
			return nil, fmt.Errorf("DescribeFlowLogs: %w", err)
		}

		for _, fl := range out.FlowLogs {
			dest := aws.ToString(fl.LogDestination)
			if dest == "" {
				dest = aws.ToString(fl.LogGroupName)
			}
			flowLogs = append(flowLogs, FlowLogInfo{
				FlowLogID:   aws.ToString(fl.FlowLogId),
				ResourceID:  aws.ToString(fl.ResourceId),
				TrafficType: string(fl.TrafficType),
				Status:      aws.ToString(fl.FlowLogStatus),
				Destination: dest,
			})
		}

		if out.NextToken == nil {
			break
		}
		nextToken = out.NextToken
	}
	return flowLogs, nil
}
