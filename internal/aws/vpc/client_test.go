package vpc

import (
	"context"
	"testing"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	awsec2 "github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
)

type mockVPCAPI struct {
	describeVpcsFunc                  func(ctx context.Context, params *awsec2.DescribeVpcsInput, optFns ...func(*awsec2.Options)) (*awsec2.DescribeVpcsOutput, error)
	describeSubnetsFunc               func(ctx context.Context, params *awsec2.DescribeSubnetsInput, optFns ...func(*awsec2.Options)) (*awsec2.DescribeSubnetsOutput, error)
	describeRouteTablesFunc           func(ctx context.Context, params *awsec2.DescribeRouteTablesInput, optFns ...func(*awsec2.Options)) (*awsec2.DescribeRouteTablesOutput, error)
	describeInternetGatewaysFunc      func(ctx context.Context, params *awsec2.DescribeInternetGatewaysInput, optFns ...func(*awsec2.Options)) (*awsec2.DescribeInternetGatewaysOutput, error)
	describeNatGatewaysFunc           func(ctx context.Context, params *awsec2.DescribeNatGatewaysInput, optFns ...func(*awsec2.Options)) (*awsec2.DescribeNatGatewaysOutput, error)
	describeTransitGatewaysFunc       func(ctx context.Context, params *awsec2.DescribeTransitGatewaysInput, optFns ...func(*awsec2.Options)) (*awsec2.DescribeTransitGatewaysOutput, error)
	describeVpnGatewaysFunc           func(ctx context.Context, params *awsec2.DescribeVpnGatewaysInput, optFns ...func(*awsec2.Options)) (*awsec2.DescribeVpnGatewaysOutput, error)
	describeSecurityGroupsFunc        func(ctx context.Context, params *awsec2.DescribeSecurityGroupsInput, optFns ...func(*awsec2.Options)) (*awsec2.DescribeSecurityGroupsOutput, error)
	describeNetworkAclsFunc           func(ctx context.Context, params *awsec2.DescribeNetworkAclsInput, optFns ...func(*awsec2.Options)) (*awsec2.DescribeNetworkAclsOutput, error)
	describeVpcPeeringConnectionsFunc func(ctx context.Context, params *awsec2.DescribeVpcPeeringConnectionsInput, optFns ...func(*awsec2.Options)) (*awsec2.DescribeVpcPeeringConnectionsOutput, error)
	describeVpcEndpointsFunc          func(ctx context.Context, params *awsec2.DescribeVpcEndpointsInput, optFns ...func(*awsec2.Options)) (*awsec2.DescribeVpcEndpointsOutput, error)
	describeFlowLogsFunc              func(ctx context.Context, params *awsec2.DescribeFlowLogsInput, optFns ...func(*awsec2.Options)) (*awsec2.DescribeFlowLogsOutput, error)
}

func (m *mockVPCAPI) DescribeVpcs(ctx context.Context, params *awsec2.DescribeVpcsInput, optFns ...func(*awsec2.Options)) (*awsec2.DescribeVpcsOutput, error) {
	return m.describeVpcsFunc(ctx, params, optFns...)
}
func (m *mockVPCAPI) DescribeSubnets(ctx context.Context, params *awsec2.DescribeSubnetsInput, optFns ...func(*awsec2.Options)) (*awsec2.DescribeSubnetsOutput, error) {
	return m.describeSubnetsFunc(ctx, params, optFns...)
}
func (m *mockVPCAPI) DescribeRouteTables(ctx context.Context, params *awsec2.DescribeRouteTablesInput, optFns ...func(*awsec2.Options)) (*awsec2.DescribeRouteTablesOutput, error) {
	return m.describeRouteTablesFunc(ctx, params, optFns...)
}
func (m *mockVPCAPI) DescribeInternetGateways(ctx context.Context, params *awsec2.DescribeInternetGatewaysInput, optFns ...func(*awsec2.Options)) (*awsec2.DescribeInternetGatewaysOutput, error) {
	return m.describeInternetGatewaysFunc(ctx, params, optFns...)
}
func (m *mockVPCAPI) DescribeNatGateways(ctx context.Context, params *awsec2.DescribeNatGatewaysInput, optFns ...func(*awsec2.Options)) (*awsec2.DescribeNatGatewaysOutput, error) {
	return m.describeNatGatewaysFunc(ctx, params, optFns...)
}
func (m *mockVPCAPI) DescribeTransitGateways(ctx context.Context, params *awsec2.DescribeTransitGatewaysInput, optFns ...func(*awsec2.Options)) (*awsec2.DescribeTransitGatewaysOutput, error) {
	return m.describeTransitGatewaysFunc(ctx, params, optFns...)
}
func (m *mockVPCAPI) DescribeVpnGateways(ctx context.Context, params *awsec2.DescribeVpnGatewaysInput, optFns ...func(*awsec2.Options)) (*awsec2.DescribeVpnGatewaysOutput, error) {
	return m.describeVpnGatewaysFunc(ctx, params, optFns...)
}
func (m *mockVPCAPI) DescribeSecurityGroups(ctx context.Context, params *awsec2.DescribeSecurityGroupsInput, optFns ...func(*awsec2.Options)) (*awsec2.DescribeSecurityGroupsOutput, error) {
	return m.describeSecurityGroupsFunc(ctx, params, optFns...)
}
func (m *mockVPCAPI) DescribeNetworkAcls(ctx context.Context, params *awsec2.DescribeNetworkAclsInput, optFns ...func(*awsec2.Options)) (*awsec2.DescribeNetworkAclsOutput, error) {
	return m.describeNetworkAclsFunc(ctx, params, optFns...)
}
func (m *mockVPCAPI) DescribeVpcPeeringConnections(ctx context.Context, params *awsec2.DescribeVpcPeeringConnectionsInput, optFns ...func(*awsec2.Options)) (*awsec2.DescribeVpcPeeringConnectionsOutput, error) {
	return m.describeVpcPeeringConnectionsFunc(ctx, params, optFns...)
}
func (m *mockVPCAPI) DescribeVpcEndpoints(ctx context.Context, params *awsec2.DescribeVpcEndpointsInput, optFns ...func(*awsec2.Options)) (*awsec2.DescribeVpcEndpointsOutput, error) {
	return m.describeVpcEndpointsFunc(ctx, params, optFns...)
}
func (m *mockVPCAPI) DescribeFlowLogs(ctx context.Context, params *awsec2.DescribeFlowLogsInput, optFns ...func(*awsec2.Options)) (*awsec2.DescribeFlowLogsOutput, error) {
	return m.describeFlowLogsFunc(ctx, params, optFns...)
}

func TestListVPCs(t *testing.T) {
	mock := &mockVPCAPI{
		describeVpcsFunc: func(ctx context.Context, params *awsec2.DescribeVpcsInput, optFns ...func(*awsec2.Options)) (*awsec2.DescribeVpcsOutput, error) {
			return &awsec2.DescribeVpcsOutput{
				Vpcs: []types.Vpc{
					{
						VpcId:     awssdk.String("vpc-abc123"),
						CidrBlock: awssdk.String("10.0.0.0/16"),
						IsDefault: awssdk.Bool(false),
						State:     types.VpcStateAvailable,
						Tags: []types.Tag{
							{Key: awssdk.String("Name"), Value: awssdk.String("prod-vpc")},
						},
					},
				},
			}, nil
		},
	}

	client := NewClient(mock)
	vpcs, err := client.ListVPCs(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(vpcs) != 1 {
		t.Fatalf("expected 1 VPC, got %d", len(vpcs))
	}
	if vpcs[0].Name != "prod-vpc" {
		t.Errorf("Name = %s, want prod-vpc", vpcs[0].Name)
	}
	if vpcs[0].CIDR != "10.0.0.0/16" {
		t.Errorf("CIDR = %s, want 10.0.0.0/16", vpcs[0].CIDR)
	}
	if vpcs[0].State != "available" {
		t.Errorf("State = %s, want available", vpcs[0].State)
	}
}

func TestListVPCs_Pagination(t *testing.T) {
	callCount := 0
	mock := &mockVPCAPI{
		describeVpcsFunc: func(ctx context.Context, params *awsec2.DescribeVpcsInput, optFns ...func(*awsec2.Options)) (*awsec2.DescribeVpcsOutput, error) {
			callCount++
			if callCount == 1 {
				if params.NextToken != nil {
					t.Errorf("first call should have nil NextToken, got %v", *params.NextToken)
				}
				return &awsec2.DescribeVpcsOutput{
					Vpcs: []types.Vpc{{
						VpcId:     awssdk.String("vpc-1"),
						CidrBlock: awssdk.String("10.0.0.0/16"),
						State:     types.VpcStateAvailable,
					}},
					NextToken: awssdk.String("page2"),
				}, nil
			}
			if awssdk.ToString(params.NextToken) != "page2" {
				t.Errorf("second call NextToken = %v, want page2", params.NextToken)
			}
			return &awsec2.DescribeVpcsOutput{
				Vpcs: []types.Vpc{{
					VpcId:     awssdk.String("vpc-2"),
					CidrBlock: awssdk.String("10.1.0.0/16"),
					State:     types.VpcStateAvailable,
				}},
			}, nil
		},
	}

	client := NewClient(mock)
	vpcs, err := client.ListVPCs(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if callCount != 2 {
		t.Errorf("expected 2 API calls, got %d", callCount)
	}
	if len(vpcs) != 2 {
		t.Fatalf("expected 2 VPCs, got %d", len(vpcs))
	}
	if vpcs[0].VPCID != "vpc-1" || vpcs[1].VPCID != "vpc-2" {
		t.Errorf("unexpected VPC IDs: %s, %s", vpcs[0].VPCID, vpcs[1].VPCID)
	}
}

func TestListSubnets(t *testing.T) {
	mock := &mockVPCAPI{
		describeSubnetsFunc: func(ctx context.Context, params *awsec2.DescribeSubnetsInput, optFns ...func(*awsec2.Options)) (*awsec2.DescribeSubnetsOutput, error) {
			return &awsec2.DescribeSubnetsOutput{
				Subnets: []types.Subnet{
					{
						SubnetId:                awssdk.String("subnet-1"),
						VpcId:                   awssdk.String("vpc-abc123"),
						CidrBlock:               awssdk.String("10.0.1.0/24"),
						AvailabilityZone:        awssdk.String("us-east-1a"),
						AvailableIpAddressCount: awssdk.Int32(250),
					},
				},
			}, nil
		},
	}

	client := NewClient(mock)
	subnets, err := client.ListSubnets(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(subnets) != 1 {
		t.Fatalf("expected 1 subnet, got %d", len(subnets))
	}
	if subnets[0].VPCID != "vpc-abc123" {
		t.Errorf("VPCID = %s, want vpc-abc123", subnets[0].VPCID)
	}
	if subnets[0].AvailableIPs != 250 {
		t.Errorf("AvailableIPs = %d, want 250", subnets[0].AvailableIPs)
	}
}

func TestListRouteTables_TargetPrecedence(t *testing.T) {
	mock := &mockVPCAPI{
		describeRouteTablesFunc: func(ctx context.Context, params *awsec2.DescribeRouteTablesInput, optFns ...func(*awsec2.Options)) (*awsec2.DescribeRouteTablesOutput, error) {
			return &awsec2.DescribeRouteTablesOutput{
				RouteTables: []types.RouteTable{
					{
						RouteTableId: awssdk.String("rtb-1"),
						VpcId:        awssdk.String("vpc-1"),
						Associations: []types.RouteTableAssociation{
							{SubnetId: awssdk.String("subnet-1")},
							{Main: awssdk.Bool(true)},
						},
						Routes: []types.Route{
							{
								DestinationCidrBlock: awssdk.String("10.0.0.0/16"),
								GatewayId:            awssdk.String("local"),
								State:                types.RouteStateActive,
							},
							{
								DestinationCidrBlock: awssdk.String("0.0.0.0/0"),
								GatewayId:            awssdk.String("igw-1"),
								State:                types.RouteStateActive,
							},
							{
								DestinationCidrBlock: awssdk.String("192.168.0.0/16"),
								NatGatewayId:         awssdk.String("nat-1"),
								State:                types.RouteStateBlackhole,
							},
							{
								DestinationPrefixListId: awssdk.String("pl-1234"),
								VpcPeeringConnectionId:  awssdk.String("pcx-1"),
								State:                   types.RouteStateActive,
							},
						},
					},
				},
			}, nil
		},
	}

	client := NewClient(mock)
	tables, err := client.ListRouteTables(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tables) != 1 {
		t.Fatalf("expected 1 route table, got %d", len(tables))
	}
	rt := tables[0]
	if !rt.IsMain {
		t.Error("expected main route table")
	}
	if len(rt.SubnetIDs) != 1 || rt.SubnetIDs[0] != "subnet-1" {
		t.Errorf("SubnetIDs = %v, want [subnet-1]", rt.SubnetIDs)
	}
	if len(rt.Routes) != 4 {
		t.Fatalf("expected 4 routes, got %d", len(rt.Routes))
	}
	if rt.Routes[1].Target != "igw-1" {
		t.Errorf("route target = %s, want igw-1", rt.Routes[1].Target)
	}
	if rt.Routes[2].State != "blackhole" {
		t.Errorf("route state = %s, want blackhole", rt.Routes[2].State)
	}
	if rt.Routes[3].Destination != "pl-1234" {
		t.Errorf("route destination = %s, want pl-1234", rt.Routes[3].Destination)
	}
	if rt.Routes[3].Target != "pcx-1" {
		t.Errorf("route target = %s, want pcx-1", rt.Routes[3].Target)
	}
}

func TestListVPCPeerings(t *testing.T) {
	mock := &mockVPCAPI{
		describeVpcPeeringConnectionsFunc: func(ctx context.Context, params *awsec2.DescribeVpcPeeringConnectionsInput, optFns ...func(*awsec2.Options)) (*awsec2.DescribeVpcPeeringConnectionsOutput, error) {
			return &awsec2.DescribeVpcPeeringConnectionsOutput{
				VpcPeeringConnections: []types.VpcPeeringConnection{
					{
						VpcPeeringConnectionId: awssdk.String("pcx-1"),
						RequesterVpcInfo: &types.VpcPeeringConnectionVpcInfo{
							VpcId:     awssdk.String("vpc-1"),
							CidrBlock: awssdk.String("10.0.0.0/16"),
						},
						AccepterVpcInfo: &types.VpcPeeringConnectionVpcInfo{
							VpcId:     awssdk.String("vpc-2"),
							CidrBlock: awssdk.String("10.1.0.0/16"),
						},
						Status: &types.VpcPeeringConnectionStateReason{
							Code: types.VpcPeeringConnectionStateReasonCodeActive,
						},
					},
				},
			}, nil
		},
	}

	client := NewClient(mock)
	peerings, err := client.ListVPCPeerings(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(peerings) != 1 {
		t.Fatalf("expected 1 peering, got %d", len(peerings))
	}
	p := peerings[0]
	if p.RequesterVPC != "vpc-1" || p.RequesterCIDR != "10.0.0.0/16" {
		t.Errorf("requester = %s (%s), want vpc-1 (10.0.0.0/16)", p.RequesterVPC, p.RequesterCIDR)
	}
	if p.Status != "active" {
		t.Errorf("Status = %s, want active", p.Status)
	}
}

func TestListVPCEndpoints(t *testing.T) {
	mock := &mockVPCAPI{
		describeVpcEndpointsFunc: func(ctx context.Context, params *awsec2.DescribeVpcEndpointsInput, optFns ...func(*awsec2.Options)) (*awsec2.DescribeVpcEndpointsOutput, error) {
			return &awsec2.DescribeVpcEndpointsOutput{
				VpcEndpoints: []types.VpcEndpoint{
					{
						VpcEndpointId:   awssdk.String("vpce-1"),
						VpcEndpointType: types.VpcEndpointTypeGateway,
						VpcId:           awssdk.String("vpc-1"),
						ServiceName:     awssdk.String("com.amazonaws.us-east-1.s3"),
						State:           types.StateAvailable,
					},
				},
			}, nil
		},
	}

	client := NewClient(mock)
	endpoints, err := client.ListVPCEndpoints(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(endpoints) != 1 {
		t.Fatalf("expected 1 endpoint, got %d", len(endpoints))
	}
	if endpoints[0].Type != "Gateway" {
		t.Errorf("Type = %s, want Gateway", endpoints[0].Type)
	}
	if endpoints[0].ServiceName != "com.amazonaws.us-east-1.s3" {
		t.Errorf("ServiceName = %s", endpoints[0].ServiceName)
	}
}

func TestListFlowLogs_LogGroupFallback(t *testing.T) {
	mock := &mockVPCAPI{
		describeFlowLogsFunc: func(ctx context.Context, params *awsec2.DescribeFlowLogsInput, optFns ...func(*awsec2.Options)) (*awsec2.DescribeFlowLogsOutput, error) {
			return &awsec2.DescribeFlowLogsOutput{
				FlowLogs: []types.FlowLog{
					{
						FlowLogId:     awssdk.String("fl-1"),
						ResourceId:    awssdk.String("vpc-1"),
						TrafficType:   types.TrafficTypeAll,
						FlowLogStatus: awssdk.String("ACTIVE"),
						LogGroupName:  awssdk.String("/vpc/flow-logs"),
					},
				},
			}, nil
		},
	}

	client := NewClient(mock)
	flowLogs, err := client.ListFlowLogs(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(flowLogs) != 1 {
		t.Fatalf("expected 1 flow log, got %d", len(flowLogs))
	}
	if flowLogs[0].Destination != "/vpc/flow-logs" {
		t.Errorf("Destination = %s, want /vpc/flow-logs", flowLogs[0].Destination)
	}
}
