package dx

import (
	"context"
	"fmt"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsdx "github.com/aws/aws-sdk-go-v2/service/directconnect"
)

type DirectConnectAPI interface {
	DescribeConnections(ctx context.Context, params *awsdx.DescribeConnectionsInput, optFns ...func(*awsdx.Options)) (*awsdx.DescribeConnectionsOutput, error)
	DescribeVirtualInterfaces(ctx context.Context, params *awsdx.DescribeVirtualInterfacesInput, optFns ...func(*awsdx.Options)) (*awsdx.DescribeVirtualInterfacesOutput, error)
	DescribeDirectConnectGateways(ctx context.Context, params *awsdx.DescribeDirectConnectGatewaysInput, optFns ...func(*awsdx.Options)) (*awsdx.DescribeDirectConnectGatewaysOutput, error)
}

type Client struct {
	api DirectConnectAPI
}

func NewClient(api DirectConnectAPI) *Client {
	return &Client{api: api}
}

func (c *Client) ListConnections(ctx context.Context) ([]ConnectionInfo, error) {
	out, err := c.api.DescribeConnections(ctx, &awsdx.DescribeConnectionsInput{})
	if err != nil {
		return nil, fmt.Errorf("DescribeConnections: %w", err)
	}

	var conns []ConnectionInfo
	for _, conn := range out.Connections {
		device := "N/A"
		if conn.AwsDeviceV2 != nil {
			device = aws.ToString(conn.AwsDeviceV2)
		}
		conns = append(conns, ConnectionInfo{
			ConnectionID: aws.ToString(conn.ConnectionId),
			Name:         aws.ToString(conn.ConnectionName),
			State:        string(conn.ConnectionState),
			Location:     aws.ToString(conn.Location),
			Bandwidth:    aws.ToString(conn.Bandwidth),
			AWSDevice:    device,
		})
	}
	return conns, nil
}

func (c *Client) ListVirtualInterfaces(ctx context.Context) ([]VirtualInterfaceInfo, error) {
	out, err := c.api.DescribeVirtualInterfaces(ctx, &awsdx.DescribeVirtualInterfacesInput{})
	if err != nil {
		return nil, fmt.Errorf("DescribeVirtualInterfaces: %w", err)
	}

	var vifs []VirtualInterfaceInfo
	for _, vif := range out.VirtualInterfaces {
		// BGP status lives on the peer, not the interface itself.
		bgpStatus := "N/A"
		if len(vif.BgpPeers) > 0 {
			bgpStatus = string(vif.BgpPeers[0].BgpStatus)
		}
		vifs = append(vifs, VirtualInterfaceInfo{
			VIFID:       aws.ToString(vif.VirtualInterfaceId),
			Name:        aws.ToString(vif.VirtualInterfaceName),
			Type:        aws.ToString(vif.VirtualInterfaceType),
			VLAN:        int(vif.Vlan),
			State:       string(vif.VirtualInterfaceState),
			BGPStatus:   bgpStatus,
			CustomerASN: int(vif.Asn),
		})
	}
	return vifs, nil
}

func (c *Client) ListGateways(ctx context.Context) ([]GatewayInfo, error) {
	var gateways []GatewayInfo
	var nextToken *string

	for {
		out, err := c.api.DescribeDirectConnectGateways(ctx, &awsdx.DescribeDirectConnectGatewaysInput{
			NextToken: nextToken,
		})
		if err != nil {
			return nil, fmt.Errorf("DescribeDirectConnectGateways: %w", err)
		}

		for _, gw := range out.DirectConnectGateways {
			asn := "N/A"
			if gw.AmazonSideAsn != nil {
				asn = strconv.FormatInt(aws.ToInt64(gw.AmazonSideAsn), 10)
			}
			gateways = append(gateways, GatewayInfo{
				GatewayID:     aws.ToString(gw.DirectConnectGatewayId),
				Name:          aws.ToString(gw.DirectConnectGatewayName),
				State:         string(gw.DirectConnectGatewayState),
				AmazonSideASN: asn,
			})
		}

		if out.NextToken == nil {
			break
		}
		nextToken = out.NextToken
	}
	return gateways, nil
}
